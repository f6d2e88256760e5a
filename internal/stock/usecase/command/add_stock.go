package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shoplite/pos-backend/internal/stock/domain"
)

// AddStockCommand represents the command to add or merge stock
type AddStockCommand struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// AddStockHandler handles add stock command
type AddStockHandler struct {
	repo domain.StockRepository
}

// NewAddStockHandler creates a new add stock handler
func NewAddStockHandler(repo domain.StockRepository) *AddStockHandler {
	return &AddStockHandler{repo: repo}
}

// Handle executes the add stock command. An existing (name, price) row gains
// the quantity; otherwise a new row is inserted.
func (h *AddStockHandler) Handle(ctx context.Context, cmd AddStockCommand) (*domain.StockItem, error) {
	if cmd.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if cmd.Quantity < 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	if cmd.Price.IsNegative() {
		return nil, &domain.ValidationError{Field: "price", Reason: "must not be negative"}
	}

	existing, err := h.repo.FindByNameAndPrice(ctx, cmd.Name, cmd.Price)
	switch {
	case err == nil:
		if err := h.repo.AddQuantity(ctx, existing.ID, cmd.Quantity); err != nil {
			return nil, fmt.Errorf("failed to update stock quantity: %w", err)
		}
		existing.Quantity += cmd.Quantity
		return existing, nil
	case errors.Is(err, domain.ErrNotFound):
		item := &domain.StockItem{
			Name:     cmd.Name,
			Quantity: cmd.Quantity,
			Price:    cmd.Price,
		}
		if err := h.repo.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to create stock item: %w", err)
		}
		return item, nil
	default:
		return nil, fmt.Errorf("failed to look up stock item: %w", err)
	}
}
