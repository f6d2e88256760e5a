package recorder

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shoplite/pos-backend/internal/sales/domain"
)

// logHeader is the fixed flat-log header. Column order is part of the format.
var logHeader = []string{
	"Bill Date", "Customer Name", "Item Name", "Quantity",
	"Price", "Total Price", "GST", "Final Price",
}

// CSVRecorder is the append-only flat transaction log. One row per line item;
// the transaction aggregates repeat on every row. There is no dedup and no
// transaction id column.
type CSVRecorder struct {
	path string
}

// NewCSVRecorder creates a recorder writing to path. The file is created
// with its header on first append (or first read).
func NewCSVRecorder(path string) *CSVRecorder {
	return &CSVRecorder{path: path}
}

// Append durably appends one transaction's rows
func (r *CSVRecorder) Append(ctx context.Context, rows []domain.SaleRow) error {
	if err := r.ensureLog(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open sales log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range rows {
		record := []string{
			row.BillDate.Format(domain.BillDateLayout),
			row.CustomerName,
			row.ItemName,
			strconv.Itoa(row.Quantity),
			row.Price.StringFixed(2),
			row.TotalPrice.StringFixed(2),
			row.GST.StringFixed(2),
			row.FinalPrice.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write sales log row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush sales log: %w", err)
	}
	return f.Sync()
}

// ReadAll reads the full log back, skipping the header
func (r *CSVRecorder) ReadAll(ctx context.Context) ([]domain.SaleRow, error) {
	if err := r.ensureLog(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sales log: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read sales log: %w", err)
	}

	var rows []domain.SaleRow
	for i, record := range records {
		if i == 0 {
			continue // header
		}
		row, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("malformed sales log row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ensureLog creates the log file with its header if it does not exist yet
func (r *CSVRecorder) ensureLog() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat sales log: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create sales log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(logHeader); err != nil {
		return fmt.Errorf("failed to write sales log header: %w", err)
	}
	w.Flush()
	return w.Error()
}

func parseBillDate(raw string) (time.Time, error) {
	t, err := time.Parse(domain.BillDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad bill date %q: %w", raw, err)
	}
	return t, nil
}

func parseRow(record []string) (domain.SaleRow, error) {
	if len(record) != len(logHeader) {
		return domain.SaleRow{}, fmt.Errorf("expected %d columns, got %d", len(logHeader), len(record))
	}

	billDate, err := parseBillDate(record[0])
	if err != nil {
		return domain.SaleRow{}, err
	}
	quantity, err := strconv.Atoi(record[3])
	if err != nil {
		return domain.SaleRow{}, fmt.Errorf("bad quantity %q: %w", record[3], err)
	}

	money := make([]decimal.Decimal, 4)
	for i, raw := range record[4:8] {
		money[i], err = decimal.NewFromString(raw)
		if err != nil {
			return domain.SaleRow{}, fmt.Errorf("bad amount %q: %w", raw, err)
		}
	}

	return domain.SaleRow{
		BillDate:     billDate,
		CustomerName: record[1],
		ItemName:     record[2],
		Quantity:     quantity,
		Price:        money[0],
		TotalPrice:   money[1],
		GST:          money[2],
		FinalPrice:   money[3],
	}, nil
}
