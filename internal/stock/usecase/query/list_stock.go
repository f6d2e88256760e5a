package query

import (
	"context"
	"fmt"

	"github.com/shoplite/pos-backend/internal/stock/domain"
)

// ListStockQuery represents the query to list stock items
type ListStockQuery struct {
	Limit  int
	Offset int
}

// ListStockHandler handles list stock query
type ListStockHandler struct {
	repo domain.StockRepository
}

// NewListStockHandler creates a new list stock handler
func NewListStockHandler(repo domain.StockRepository) *ListStockHandler {
	return &ListStockHandler{repo: repo}
}

// Handle executes the list stock query. Each call issues a fresh read,
// ordered by insertion.
func (h *ListStockHandler) Handle(ctx context.Context, query ListStockQuery) ([]domain.StockItem, error) {
	if query.Limit == 0 {
		query.Limit = 50
	}
	if query.Limit > 500 {
		query.Limit = 500
	}

	items, err := h.repo.FindAll(ctx, query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}
	return items, nil
}
