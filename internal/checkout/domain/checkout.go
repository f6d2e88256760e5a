package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is the fixed GST rate applied to every transaction
var TaxRate = decimal.RequireFromString("0.15")

// RequestedLine is one (item, quantity) decision supplied by the caller.
// Interactive prompting is a presentation concern; by the time a checkout
// starts, the selection is fully resolved.
type RequestedLine struct {
	ItemName string `json:"name"`
	Quantity int    `json:"quantity"`
}

// LineItem is one approved billing line of a transaction
type LineItem struct {
	ItemName  string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Transaction is one completed customer bill. It is assembled in full by the
// checkout workflow and immutable afterwards.
type Transaction struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	BilledAt     time.Time       `json:"billed_at"`
	Lines        []LineItem      `json:"lines"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	GST          decimal.Decimal `json:"gst"`
	FinalPrice   decimal.Decimal `json:"final_price"`
}

// Warning reports a line item dropped during validation. Dropping a line is
// never fatal to the rest of the checkout.
type Warning struct {
	ItemName string `json:"item"`
	Message  string `json:"message"`
}

// Result is returned on a completed checkout
type Result struct {
	Transaction *Transaction `json:"transaction"`
	ReceiptPath string       `json:"receipt_path"`
	Warnings    []Warning    `json:"warnings,omitempty"`
}

// ReceiptRenderer turns a completed transaction into a printable document
// and returns a reference to it.
type ReceiptRenderer interface {
	Render(ctx context.Context, tx *Transaction) (string, error)
}

// SalePublisher emits a completed-sale event for downstream consumers.
// Publishing is best effort and never fails a checkout.
type SalePublisher interface {
	PublishSaleCompleted(ctx context.Context, tx *Transaction) error
}
