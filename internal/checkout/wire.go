//go:build wireinject
// +build wireinject

package checkout

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/shoplite/pos-backend/internal/checkout/delivery/http"
	"github.com/shoplite/pos-backend/internal/checkout/domain"
	"github.com/shoplite/pos-backend/internal/checkout/usecase/command"
	salesdomain "github.com/shoplite/pos-backend/internal/sales/domain"
	"github.com/shoplite/pos-backend/internal/stock"
)

// InitializeHTTPHandler initializes the checkout HTTP handler with all its
// collaborators. archive and events may be nil.
func InitializeHTTPHandler(
	db *gorm.DB,
	recorder salesdomain.SalesRecorder,
	archive salesdomain.BillArchive,
	renderer domain.ReceiptRenderer,
	events domain.SalePublisher,
) (*http.CheckoutHandler, error) {
	wire.Build(
		stock.RepositorySet,
		command.NewCheckoutHandler,
		http.NewCheckoutHandler,
	)
	return nil, nil
}
