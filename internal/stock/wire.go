//go:build wireinject
// +build wireinject

package stock

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/shoplite/pos-backend/internal/stock/delivery/http"
	"github.com/shoplite/pos-backend/internal/stock/domain"
	"github.com/shoplite/pos-backend/internal/stock/repository"
)

// ProvideStockRepository provides the stock repository
func ProvideStockRepository(db *gorm.DB) domain.StockRepository {
	return repository.NewStockRepositoryWithTracing(repository.NewGormStockRepository(db))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideStockRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.StockHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewStockHandler,
	)
	return nil, nil
}
