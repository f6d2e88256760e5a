package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/pos-backend/internal/stock/domain"
)

type memRepo struct {
	items  map[uint]*domain.StockItem
	nextID uint
}

func newMemRepo() *memRepo {
	return &memRepo{items: make(map[uint]*domain.StockItem), nextID: 1}
}

func (r *memRepo) Create(_ context.Context, item *domain.StockItem) error {
	item.ID = r.nextID
	r.nextID++
	copied := *item
	r.items[item.ID] = &copied
	return nil
}
func (r *memRepo) FindByID(_ context.Context, id uint) (*domain.StockItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *item
	return &copied, nil
}
func (r *memRepo) FindByName(_ context.Context, name string) (*domain.StockItem, error) {
	for _, item := range r.items {
		if item.Name == name {
			copied := *item
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}
func (r *memRepo) FindByNameAndPrice(_ context.Context, name string, price decimal.Decimal) (*domain.StockItem, error) {
	for _, item := range r.items {
		if item.Name == name && item.Price.Equal(price) {
			copied := *item
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}
func (r *memRepo) FindAll(_ context.Context, limit, offset int) ([]domain.StockItem, error) {
	var out []domain.StockItem
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}
func (r *memRepo) AddQuantity(_ context.Context, id uint, delta int) error {
	item, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.Quantity += delta
	return nil
}
func (r *memRepo) DecrementQuantity(_ context.Context, name string, quantity int) error {
	for _, item := range r.items {
		if item.Name == name {
			item.Quantity -= quantity
			return nil
		}
	}
	return domain.ErrNotFound
}
func (r *memRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func newTestRouter(h *StockHandler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/stock", h.ListStock).Methods("GET")
	router.HandleFunc("/api/stock", h.AddStock).Methods("POST")
	router.HandleFunc("/api/stock/{id}", h.DeleteStock).Methods("DELETE")
	return router
}

func TestAddStockEndpoint(t *testing.T) {
	router := newTestRouter(NewStockHandler(newMemRepo()))

	body := `{"name":"Widget","quantity":5,"price":"2.50"}`
	req := httptest.NewRequest(http.MethodPost, "/api/stock", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestAddStockEndpoint_Validation(t *testing.T) {
	router := newTestRouter(NewStockHandler(newMemRepo()))

	req := httptest.NewRequest(http.MethodPost, "/api/stock",
		bytes.NewBufferString(`{"name":"","quantity":5,"price":"2.50"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListStockEndpoint(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, repo.Create(context.Background(), &domain.StockItem{Name: "Widget", Quantity: 5, Price: decimal.NewFromInt(2)}))
	router := newTestRouter(NewStockHandler(repo))

	req := httptest.NewRequest(http.MethodGet, "/api/stock", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Widget")
}

func TestDeleteStockEndpoint(t *testing.T) {
	repo := newMemRepo()
	item := &domain.StockItem{Name: "Widget", Quantity: 5, Price: decimal.NewFromInt(2)}
	require.NoError(t, repo.Create(context.Background(), item))
	router := newTestRouter(NewStockHandler(repo))

	req := httptest.NewRequest(http.MethodDelete, "/api/stock/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Gone now
	req = httptest.NewRequest(http.MethodDelete, "/api/stock/1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteStockEndpoint_BadID(t *testing.T) {
	router := newTestRouter(NewStockHandler(newMemRepo()))

	req := httptest.NewRequest(http.MethodDelete, "/api/stock/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
