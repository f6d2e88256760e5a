package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/shoplite/pos-backend/internal/stock/domain"
	"github.com/shoplite/pos-backend/internal/stock/usecase/command"
	"github.com/shoplite/pos-backend/internal/stock/usecase/query"
	usermw "github.com/shoplite/pos-backend/internal/user/delivery/http"
	"github.com/shoplite/pos-backend/pkg/logger"
)

// StockHandler handles HTTP requests for the stock ledger
type StockHandler struct {
	addHandler    *command.AddStockHandler
	deleteHandler *command.DeleteStockHandler
	listHandler   *query.ListStockHandler
}

// NewStockHandler creates a new stock handler
func NewStockHandler(repo domain.StockRepository) *StockHandler {
	return &StockHandler{
		addHandler:    command.NewAddStockHandler(repo),
		deleteHandler: command.NewDeleteStockHandler(repo),
		listHandler:   query.NewListStockHandler(repo),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// AddStock handles POST /api/stock
func (h *StockHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string          `json:"name"`
		Quantity int             `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	item, err := h.addHandler.Handle(r.Context(), command.AddStockCommand{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   verr.Error(),
			})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to add stock")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to add stock",
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Stock added",
		Data:    item,
	})
}

// ListStock handles GET /api/stock
func (h *StockHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := h.listHandler.Handle(r.Context(), query.ListStockQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list stock")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list stock",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// DeleteStock handles DELETE /api/stock/{id}
func (h *StockHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid stock ID",
		})
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteStockCommand{ID: uint(id)}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Stock item not found",
			})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to delete stock")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to delete stock",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock item deleted",
	})
}

// RegisterRoutes registers all stock routes; every route sits behind login
func (h *StockHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/stock", usermw.AuthMiddleware(h.ListStock)).Methods("GET")
	router.HandleFunc("/api/stock", usermw.AuthMiddleware(h.AddStock)).Methods("POST")
	router.HandleFunc("/api/stock/{id}", usermw.AuthMiddleware(h.DeleteStock)).Methods("DELETE")
}

// RegisterHealthCheck registers health check endpoint
func (h *StockHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "pos backend is healthy",
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
