package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shoplite/pos-backend/internal/sales/domain"
	"github.com/shoplite/pos-backend/internal/sales/usecase/query"
	usermw "github.com/shoplite/pos-backend/internal/user/delivery/http"
	"github.com/shoplite/pos-backend/pkg/logger"
)

// SalesHandler handles HTTP requests for sales history
type SalesHandler struct {
	summarizeHandler *query.SummarizeHandler
	reader           domain.SalesReader
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(reader domain.SalesReader) *SalesHandler {
	return &SalesHandler{
		summarizeHandler: query.NewSummarizeHandler(reader),
		reader:           reader,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// GetSummary handles GET /api/sales/summary
func (h *SalesHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summarizeHandler.Handle(r.Context(), query.SummarizeQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to summarize sales history")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load sales history",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    summary,
	})
}

// RegisterRoutes registers all sales routes behind login
func (h *SalesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sales/summary", usermw.AuthMiddleware(h.GetSummary)).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
