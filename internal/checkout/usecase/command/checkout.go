package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/pos-backend/internal/checkout/domain"
	salesdomain "github.com/shoplite/pos-backend/internal/sales/domain"
	stockdomain "github.com/shoplite/pos-backend/internal/stock/domain"
	"github.com/shoplite/pos-backend/pkg/logger"
)

// CheckoutCommand represents one fully resolved checkout attempt
type CheckoutCommand struct {
	CustomerName string
	Lines        []domain.RequestedLine
}

// CheckoutHandler orchestrates a checkout: validate requested quantities
// against a ledger snapshot, compute totals and tax, decrement stock, append
// the transaction to the sales log, archive the bill summary and render the
// receipt. The two persistence steps are independent writes with no rollback:
// a failed decrement stops the pipeline before any log row is written, and a
// failed append leaves the decrements in place.
type CheckoutHandler struct {
	stock    stockdomain.StockRepository
	recorder salesdomain.SalesRecorder
	archive  salesdomain.BillArchive
	renderer domain.ReceiptRenderer
	events   domain.SalePublisher
}

// NewCheckoutHandler creates a new checkout handler. archive and events may
// be nil; both are optional sinks.
func NewCheckoutHandler(
	stock stockdomain.StockRepository,
	recorder salesdomain.SalesRecorder,
	archive salesdomain.BillArchive,
	renderer domain.ReceiptRenderer,
	events domain.SalePublisher,
) *CheckoutHandler {
	return &CheckoutHandler{
		stock:    stock,
		recorder: recorder,
		archive:  archive,
		renderer: renderer,
		events:   events,
	}
}

// Handle executes the checkout command
func (h *CheckoutHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*domain.Result, error) {
	if strings.TrimSpace(cmd.CustomerName) == "" {
		return nil, &domain.ValidationError{Field: "customer_name", Reason: "must not be empty"}
	}

	lines, warnings, err := h.validate(ctx, cmd.Lines)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyTransaction
	}

	tx := buildTransaction(cmd.CustomerName, lines)

	if err := h.persist(ctx, tx); err != nil {
		return nil, err
	}

	receiptPath, err := h.renderer.Render(ctx, tx)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "receipt render", Err: err}
	}

	if h.events != nil {
		if err := h.events.PublishSaleCompleted(ctx, tx); err != nil {
			logger.Warn(ctx).Err(err).
				Str("transaction_id", tx.ID).
				Msg("Failed to publish sale completed event")
		}
	}

	logger.Info(ctx).
		Str("transaction_id", tx.ID).
		Str("customer", tx.CustomerName).
		Int("lines", len(tx.Lines)).
		Str("final_price", tx.FinalPrice.StringFixed(2)).
		Msg("Checkout completed")

	return &domain.Result{
		Transaction: tx,
		ReceiptPath: receiptPath,
		Warnings:    warnings,
	}, nil
}

// validate compares every requested line against the ledger snapshot taken
// now. A bad line drops with a warning; only the read itself failing aborts.
func (h *CheckoutHandler) validate(ctx context.Context, requested []domain.RequestedLine) ([]domain.LineItem, []domain.Warning, error) {
	var lines []domain.LineItem
	var warnings []domain.Warning

	for _, req := range requested {
		if req.Quantity < 1 {
			warnings = append(warnings, domain.Warning{
				ItemName: req.ItemName,
				Message:  "requested quantity must be at least 1, item skipped",
			})
			continue
		}

		item, err := h.stock.FindByName(ctx, req.ItemName)
		if errors.Is(err, stockdomain.ErrNotFound) {
			warnings = append(warnings, domain.Warning{
				ItemName: req.ItemName,
				Message:  "item not found in stock, item skipped",
			})
			continue
		}
		if err != nil {
			return nil, nil, &domain.PersistenceError{Op: "stock lookup", Err: err}
		}

		if req.Quantity > item.Quantity {
			insufficient := &domain.InsufficientStockError{
				ItemName:  req.ItemName,
				Requested: req.Quantity,
				Available: item.Quantity,
			}
			warnings = append(warnings, domain.Warning{
				ItemName: req.ItemName,
				Message:  insufficient.Error(),
			})
			continue
		}

		qty := decimal.NewFromInt(int64(req.Quantity))
		lines = append(lines, domain.LineItem{
			ItemName:  item.Name,
			Quantity:  req.Quantity,
			UnitPrice: item.Price,
			Subtotal:  item.Price.Mul(qty),
		})
	}

	return lines, warnings, nil
}

func buildTransaction(customer string, lines []domain.LineItem) *domain.Transaction {
	total := decimal.Zero
	for _, ln := range lines {
		total = total.Add(ln.Subtotal)
	}
	gst := total.Mul(domain.TaxRate).Round(2)

	return &domain.Transaction{
		ID:           uuid.New().String(),
		CustomerName: customer,
		BilledAt:     time.Now(),
		Lines:        lines,
		TotalPrice:   total,
		GST:          gst,
		FinalPrice:   total.Add(gst),
	}
}

// persist applies the ledger decrements, then the sales log append, then the
// best-effort bill archive, in that order.
func (h *CheckoutHandler) persist(ctx context.Context, tx *domain.Transaction) error {
	for _, ln := range tx.Lines {
		if err := h.stock.DecrementQuantity(ctx, ln.ItemName, ln.Quantity); err != nil {
			return &domain.PersistenceError{
				Op:  fmt.Sprintf("stock decrement for %s", ln.ItemName),
				Err: err,
			}
		}
	}

	rows := make([]salesdomain.SaleRow, 0, len(tx.Lines))
	for _, ln := range tx.Lines {
		rows = append(rows, salesdomain.SaleRow{
			BillDate:     tx.BilledAt,
			CustomerName: tx.CustomerName,
			ItemName:     ln.ItemName,
			Quantity:     ln.Quantity,
			Price:        ln.UnitPrice,
			TotalPrice:   tx.TotalPrice,
			GST:          tx.GST,
			FinalPrice:   tx.FinalPrice,
		})
	}
	if err := h.recorder.Append(ctx, rows); err != nil {
		return &domain.PersistenceError{Op: "sales log append", Err: err}
	}

	if h.archive != nil {
		bill := &salesdomain.Bill{
			Date:       tx.BilledAt,
			Items:      describeItems(tx.Lines),
			TotalPrice: tx.TotalPrice,
			GST:        tx.GST,
			FinalPrice: tx.FinalPrice,
		}
		if err := h.archive.Archive(ctx, bill); err != nil {
			// The flat log is authoritative; a failed archive row is not.
			logger.Warn(ctx).Err(err).
				Str("transaction_id", tx.ID).
				Msg("Failed to archive bill summary")
		}
	}

	return nil
}

func describeItems(lines []domain.LineItem) string {
	parts := make([]string, 0, len(lines))
	for _, ln := range lines {
		parts = append(parts, fmt.Sprintf("%d x %s", ln.Quantity, ln.ItemName))
	}
	return strings.Join(parts, ", ")
}
