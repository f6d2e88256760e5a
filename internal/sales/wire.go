//go:build wireinject
// +build wireinject

package sales

import (
	"github.com/google/wire"

	"github.com/shoplite/pos-backend/internal/sales/delivery/http"
	"github.com/shoplite/pos-backend/internal/sales/domain"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(reader domain.SalesReader) (*http.SalesHandler, error) {
	wire.Build(
		http.NewSalesHandler,
	)
	return nil, nil
}
