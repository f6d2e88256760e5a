package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockItem represents one inventory row. Rows are keyed by (name, price):
// restocking an existing (name, price) pair merges quantities instead of
// inserting a duplicate row.
type StockItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"not null;index"`
	Quantity  int             `json:"quantity" gorm:"not null;default:0"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (StockItem) TableName() string {
	return "inventory"
}

// StockRepository defines the contract for stock ledger data access
type StockRepository interface {
	Create(ctx context.Context, item *StockItem) error
	FindByID(ctx context.Context, id uint) (*StockItem, error)
	FindByName(ctx context.Context, name string) (*StockItem, error)
	FindByNameAndPrice(ctx context.Context, name string, price decimal.Decimal) (*StockItem, error)
	FindAll(ctx context.Context, limit, offset int) ([]StockItem, error)
	AddQuantity(ctx context.Context, id uint, delta int) error
	// DecrementQuantity lowers the quantity of the row matching name. The
	// availability check is owned by the checkout workflow; this is a raw
	// update on purpose.
	DecrementQuantity(ctx context.Context, name string, quantity int) error
	Delete(ctx context.Context, id uint) error
}
