package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BillDateLayout is the timestamp format stored in the flat log
const BillDateLayout = "2006-01-02 15:04:05"

// SaleRow is one flat-log row: one line item of one transaction. TotalPrice,
// GST and FinalPrice repeat the transaction aggregate on every row belonging
// to that transaction; readers group rows to reconstruct bills.
type SaleRow struct {
	BillDate     time.Time
	CustomerName string
	ItemName     string
	Quantity     int
	Price        decimal.Decimal
	TotalPrice   decimal.Decimal
	GST          decimal.Decimal
	FinalPrice   decimal.Decimal
}

// SalesRecorder appends one transaction's rows to the durable log
type SalesRecorder interface {
	Append(ctx context.Context, rows []SaleRow) error
}

// SalesReader reads the full log back
type SalesReader interface {
	ReadAll(ctx context.Context) ([]SaleRow, error)
}

// Bill is one archived transaction summary for the relational bills table
type Bill struct {
	ID         int64
	Date       time.Time
	Items      string
	TotalPrice decimal.Decimal
	GST        decimal.Decimal
	FinalPrice decimal.Decimal
}

// BillArchive persists transaction summaries to the relational store. The
// flat log stays authoritative for history; the archive is a secondary sink.
type BillArchive interface {
	Archive(ctx context.Context, bill *Bill) error
}

// SummaryRow is one reported history row, keyed by (calendar date, customer).
// Two same-day transactions by one customer merge into a single row.
type SummaryRow struct {
	Date         string          `json:"date"`
	CustomerName string          `json:"customer_name"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	GST          decimal.Decimal `json:"gst"`
	FinalPrice   decimal.Decimal `json:"final_price"`
	Cost         decimal.Decimal `json:"cost"`
}

// SalesSummary is the aggregate view over the whole log
type SalesSummary struct {
	Rows       []SummaryRow    `json:"rows"`
	TotalSales decimal.Decimal `json:"total_sales"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	Profit     decimal.Decimal `json:"profit"`
	Loss       decimal.Decimal `json:"loss"`
}
