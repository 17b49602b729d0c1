package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/usecase/command"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/usecase/query"
)

// StockHandler handles HTTP requests for the stock ledger
type StockHandler struct {
	adjustHandler *command.AdjustStockHandler
	listHandler   *query.ListStockHandler

	metrics *Metrics
	auth    *AdminAuth
}

// NewStockHandler wires the stock command/query handlers
func NewStockHandler(stock domain.StockRepository, products domain.ProductRepository, metrics *Metrics, auth *AdminAuth) *StockHandler {
	return &StockHandler{
		adjustHandler: command.NewAdjustStockHandler(stock, products),
		listHandler:   query.NewListStockHandler(stock),
		metrics:       metrics,
		auth:          auth,
	}
}

// RegisterRoutes mounts the stock ledger routes
func (h *StockHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products/{productId}/stock", h.metrics.Instrument("/api/products/{productId}/stock", h.List)).Methods("GET")
	router.HandleFunc("/api/products/{productId}/stock", h.metrics.Instrument("/api/products/{productId}/stock", h.auth.Middleware(h.Adjust))).Methods("PUT")
}

// List handles GET /api/products/{productId}/stock
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "productId")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	records, err := h.listHandler.Handle(r.Context(), query.ListStockQuery{ProductID: productID})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: records})
}

// Adjust handles PUT /api/products/{productId}/stock. The quantity replaces
// the ledger value for the (product, variant, location) key; it is not a
// delta.
func (h *StockHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "productId")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req struct {
		VariantID *int64  `json:"variant_id"`
		Location  *string `json:"location"`
		Quantity  int     `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	record, err := h.adjustHandler.Handle(r.Context(), command.AdjustStockCommand{
		ProductID: productID,
		VariantID: req.VariantID,
		Location:  req.Location,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated successfully",
		Data:    record,
	})
}
