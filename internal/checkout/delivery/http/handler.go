package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shoplite/pos-backend/internal/checkout/domain"
	"github.com/shoplite/pos-backend/internal/checkout/usecase/command"
	usermw "github.com/shoplite/pos-backend/internal/user/delivery/http"
	"github.com/shoplite/pos-backend/pkg/logger"
)

// CheckoutHandler handles HTTP requests for the checkout workflow
type CheckoutHandler struct {
	checkout *command.CheckoutHandler

	checkoutsTotal  *prometheus.CounterVec
	checkoutAmount  prometheus.Histogram
	checkoutLatency prometheus.Histogram
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout *command.CheckoutHandler) *CheckoutHandler {
	checkoutsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_checkouts_total",
			Help: "Total number of checkout attempts by outcome",
		},
		[]string{"status"},
	)

	checkoutAmount := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pos_checkout_final_price",
			Help:    "Final price of completed checkouts",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	checkoutLatency := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pos_checkout_duration_seconds",
			Help:    "Duration of checkout requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	prometheus.MustRegister(checkoutsTotal)
	prometheus.MustRegister(checkoutAmount)
	prometheus.MustRegister(checkoutLatency)

	return &CheckoutHandler{
		checkout:        checkout,
		checkoutsTotal:  checkoutsTotal,
		checkoutAmount:  checkoutAmount,
		checkoutLatency: checkoutLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type lineItemResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type transactionResponse struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"customer_name"`
	BilledAt     time.Time          `json:"billed_at"`
	Lines        []lineItemResponse `json:"lines"`
	TotalPrice   string             `json:"total_price"`
	GST          string             `json:"gst"`
	FinalPrice   string             `json:"final_price"`
}

type checkoutResponse struct {
	Transaction transactionResponse `json:"transaction"`
	ReceiptPath string              `json:"receipt_path"`
	Warnings    []domain.Warning    `json:"warnings,omitempty"`
}

// newCheckoutResponse formats money at two decimals, matching the receipt
// and the sales log.
func newCheckoutResponse(result *domain.Result) checkoutResponse {
	tx := result.Transaction
	lines := make([]lineItemResponse, 0, len(tx.Lines))
	for _, ln := range tx.Lines {
		lines = append(lines, lineItemResponse{
			Name:      ln.ItemName,
			Quantity:  ln.Quantity,
			UnitPrice: ln.UnitPrice.StringFixed(2),
			Subtotal:  ln.Subtotal.StringFixed(2),
		})
	}
	return checkoutResponse{
		Transaction: transactionResponse{
			ID:           tx.ID,
			CustomerName: tx.CustomerName,
			BilledAt:     tx.BilledAt,
			Lines:        lines,
			TotalPrice:   tx.TotalPrice.StringFixed(2),
			GST:          tx.GST.StringFixed(2),
			FinalPrice:   tx.FinalPrice.StringFixed(2),
		},
		ReceiptPath: result.ReceiptPath,
		Warnings:    result.Warnings,
	}
}

// Checkout handles POST /api/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		h.checkoutLatency.Observe(time.Since(start).Seconds())
	}()

	var req struct {
		CustomerName string                 `json:"customer_name"`
		Items        []domain.RequestedLine `json:"items"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.checkoutsTotal.WithLabelValues("bad_request").Inc()
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.checkout.Handle(r.Context(), command.CheckoutCommand{
		CustomerName: req.CustomerName,
		Lines:        req.Items,
	})
	if err != nil {
		h.respondCheckoutError(w, r, err)
		return
	}

	h.checkoutsTotal.WithLabelValues("completed").Inc()
	amount, _ := result.Transaction.FinalPrice.Float64()
	h.checkoutAmount.Observe(amount)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Checkout completed",
		Data:    newCheckoutResponse(result),
	})
}

func (h *CheckoutHandler) respondCheckoutError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	var perr *domain.PersistenceError

	switch {
	case errors.As(err, &verr):
		h.checkoutsTotal.WithLabelValues("invalid").Inc()
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   verr.Error(),
		})
	case errors.Is(err, domain.ErrEmptyTransaction):
		h.checkoutsTotal.WithLabelValues("empty").Inc()
		respondJSON(w, http.StatusUnprocessableEntity, Response{
			Success: false,
			Error:   domain.ErrEmptyTransaction.Error(),
		})
	case errors.As(err, &perr):
		h.checkoutsTotal.WithLabelValues("persistence_error").Inc()
		logger.Error(r.Context()).Err(err).Msg("Checkout persistence failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   perr.Error(),
		})
	default:
		h.checkoutsTotal.WithLabelValues("error").Inc()
		logger.Error(r.Context()).Err(err).Msg("Checkout failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Checkout failed",
		})
	}
}

// RegisterRoutes registers the checkout route behind login
func (h *CheckoutHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/checkout", usermw.AuthMiddleware(h.Checkout)).Methods("POST")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
