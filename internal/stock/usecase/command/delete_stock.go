package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/shoplite/pos-backend/internal/stock/domain"
)

// DeleteStockCommand represents the command to delete a stock item
type DeleteStockCommand struct {
	ID uint
}

// DeleteStockHandler handles delete stock command
type DeleteStockHandler struct {
	repo domain.StockRepository
}

// NewDeleteStockHandler creates a new delete stock handler
func NewDeleteStockHandler(repo domain.StockRepository) *DeleteStockHandler {
	return &DeleteStockHandler{repo: repo}
}

// Handle executes the delete stock command
func (h *DeleteStockHandler) Handle(ctx context.Context, cmd DeleteStockCommand) error {
	if cmd.ID == 0 {
		return &domain.ValidationError{Field: "id", Reason: "is required"}
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete stock item: %w", err)
	}
	return nil
}
