package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/pos-backend/internal/sales/domain"
)

type fakeReader struct {
	rows []domain.SaleRow
	err  error
}

func (f *fakeReader) ReadAll(context.Context) ([]domain.SaleRow, error) {
	return f.rows, f.err
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func at(day int, hour int) time.Time {
	return time.Date(2026, 8, day, hour, 0, 0, 0, time.UTC)
}

func TestSummarize_MergesSameDayCustomer(t *testing.T) {
	// Two separate Alice transactions on the same calendar day, one row each.
	reader := &fakeReader{rows: []domain.SaleRow{
		{BillDate: at(29, 10), CustomerName: "Alice", ItemName: "Widget", Quantity: 4,
			Price: d("2.00"), TotalPrice: d("8.00"), GST: d("1.20"), FinalPrice: d("9.20")},
		{BillDate: at(29, 16), CustomerName: "Alice", ItemName: "Gadget", Quantity: 1,
			Price: d("5.00"), TotalPrice: d("5.00"), GST: d("0.75"), FinalPrice: d("5.75")},
		{BillDate: at(30, 10), CustomerName: "Alice", ItemName: "Widget", Quantity: 1,
			Price: d("2.00"), TotalPrice: d("2.00"), GST: d("0.30"), FinalPrice: d("2.30")},
	}}
	handler := NewSummarizeHandler(reader)

	summary, err := handler.Handle(context.Background(), SummarizeQuery{})
	require.NoError(t, err)
	require.Len(t, summary.Rows, 2)

	merged := summary.Rows[0]
	assert.Equal(t, "2026-08-29", merged.Date)
	assert.Equal(t, "Alice", merged.CustomerName)
	assert.Equal(t, "13.00", merged.TotalPrice.StringFixed(2))
	assert.Equal(t, "1.95", merged.GST.StringFixed(2))
	assert.Equal(t, "14.95", merged.FinalPrice.StringFixed(2))

	assert.Equal(t, "2026-08-30", summary.Rows[1].Date)
	assert.Equal(t, "2.30", summary.Rows[1].FinalPrice.StringFixed(2))
}

func TestSummarize_MultiRowTransactionRepeatsAggregates(t *testing.T) {
	// One transaction with two line rows; the aggregates repeat on each row
	// and the summary accumulates them per row, as the flat log defines.
	reader := &fakeReader{rows: []domain.SaleRow{
		{BillDate: at(29, 10), CustomerName: "Bob", ItemName: "Widget", Quantity: 2,
			Price: d("2.00"), TotalPrice: d("9.00"), GST: d("1.35"), FinalPrice: d("10.35")},
		{BillDate: at(29, 10), CustomerName: "Bob", ItemName: "Gadget", Quantity: 1,
			Price: d("5.00"), TotalPrice: d("9.00"), GST: d("1.35"), FinalPrice: d("10.35")},
	}}
	handler := NewSummarizeHandler(reader)

	summary, err := handler.Handle(context.Background(), SummarizeQuery{})
	require.NoError(t, err)
	require.Len(t, summary.Rows, 1)
	assert.Equal(t, "18.00", summary.Rows[0].TotalPrice.StringFixed(2))
	assert.Equal(t, "20.70", summary.Rows[0].FinalPrice.StringFixed(2))
	// Cost sums the true per-line amounts, not the repeated aggregates
	assert.Equal(t, "9.00", summary.Rows[0].Cost.StringFixed(2))
}

func TestSummarize_ProfitAndLoss(t *testing.T) {
	profit := &fakeReader{rows: []domain.SaleRow{
		{BillDate: at(29, 10), CustomerName: "Alice", ItemName: "Widget", Quantity: 4,
			Price: d("2.00"), TotalPrice: d("8.00"), GST: d("1.20"), FinalPrice: d("9.20")},
	}}
	summary, err := NewSummarizeHandler(profit).Handle(context.Background(), SummarizeQuery{})
	require.NoError(t, err)
	assert.Equal(t, "9.20", summary.TotalSales.StringFixed(2))
	assert.Equal(t, "8.00", summary.TotalCost.StringFixed(2))
	assert.Equal(t, "1.20", summary.Profit.StringFixed(2))
	assert.True(t, summary.Loss.IsZero())
}

func TestSummarize_LossNeverNegative(t *testing.T) {
	// A row whose recorded cost exceeds its final price reports a loss,
	// never a negative profit.
	loss := &fakeReader{rows: []domain.SaleRow{
		{BillDate: at(29, 10), CustomerName: "Alice", ItemName: "Widget", Quantity: 10,
			Price: d("2.00"), TotalPrice: d("8.00"), GST: d("1.20"), FinalPrice: d("9.20")},
	}}
	summary, err := NewSummarizeHandler(loss).Handle(context.Background(), SummarizeQuery{})
	require.NoError(t, err)
	assert.True(t, summary.Profit.IsZero())
	assert.Equal(t, "10.80", summary.Loss.StringFixed(2))
}

func TestSummarize_EmptyLog(t *testing.T) {
	summary, err := NewSummarizeHandler(&fakeReader{}).Handle(context.Background(), SummarizeQuery{})
	require.NoError(t, err)
	assert.Empty(t, summary.Rows)
	assert.True(t, summary.TotalSales.IsZero())
	assert.True(t, summary.Profit.IsZero())
	assert.True(t, summary.Loss.IsZero())
}

func TestSummarize_ReadFailure(t *testing.T) {
	_, err := NewSummarizeHandler(&fakeReader{err: errors.New("log unreadable")}).
		Handle(context.Background(), SummarizeQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read sales history")
}
