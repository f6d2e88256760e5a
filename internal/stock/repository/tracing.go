package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/shoplite/pos-backend/internal/stock/domain"
)

var tracer = otel.Tracer("stock-repository")

// StockRepositoryWithTracing decorates a StockRepository with spans on the
// hot-path operations. The remaining methods pass through undecorated.
type StockRepositoryWithTracing struct {
	domain.StockRepository
}

// NewStockRepositoryWithTracing wraps base with tracing
func NewStockRepositoryWithTracing(base domain.StockRepository) *StockRepositoryWithTracing {
	return &StockRepositoryWithTracing{StockRepository: base}
}

// FindByName reads one item by name inside a span
func (r *StockRepositoryWithTracing) FindByName(ctx context.Context, name string) (*domain.StockItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByName",
		trace.WithAttributes(
			attribute.String("stock.name", name),
		),
	)
	defer span.End()

	item, err := r.StockRepository.FindByName(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("stock.id", int(item.ID)),
		attribute.Int("stock.quantity", item.Quantity),
	)
	return item, nil
}

// DecrementQuantity applies a checkout decrement inside a span
func (r *StockRepositoryWithTracing) DecrementQuantity(ctx context.Context, name string, quantity int) error {
	ctx, span := tracer.Start(ctx, "repository.DecrementQuantity",
		trace.WithAttributes(
			attribute.String("stock.name", name),
			attribute.Int("stock.decrement", quantity),
		),
	)
	defer span.End()

	if err := r.StockRepository.DecrementQuantity(ctx, name, quantity); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// FindAll lists items inside a span
func (r *StockRepositoryWithTracing) FindAll(ctx context.Context, limit, offset int) ([]domain.StockItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	items, err := r.StockRepository.FindAll(ctx, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}
