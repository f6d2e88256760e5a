package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Checkout godoc
// @Summary Run a checkout
// @Description Validate requested quantities against stock, compute totals and 15% GST, decrement stock, record the sale and render a receipt
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{customer_name=string,items=array} true "Customer and resolved item selection"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 422 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/checkout [post]
func (h *CheckoutHandler) CheckoutDoc() {}
