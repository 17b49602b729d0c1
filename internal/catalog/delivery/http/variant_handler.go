package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/usecase/command"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/usecase/query"
)

// VariantHandler handles HTTP requests for product variants
type VariantHandler struct {
	createHandler *command.CreateVariantHandler
	updateHandler *command.UpdateVariantHandler
	deleteHandler *command.DeleteVariantHandler
	listHandler   *query.ListVariantsHandler

	metrics *Metrics
	auth    *AdminAuth
}

// NewVariantHandler wires the variant command/query handlers
func NewVariantHandler(variants domain.VariantRepository, products domain.ProductRepository, metrics *Metrics, auth *AdminAuth) *VariantHandler {
	return &VariantHandler{
		createHandler: command.NewCreateVariantHandler(variants, products),
		updateHandler: command.NewUpdateVariantHandler(variants),
		deleteHandler: command.NewDeleteVariantHandler(variants),
		listHandler:   query.NewListVariantsHandler(variants),
		metrics:       metrics,
		auth:          auth,
	}
}

// RegisterRoutes mounts the variant routes
func (h *VariantHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products/{productId}/variants", h.metrics.Instrument("/api/products/{productId}/variants", h.List)).Methods("GET")

	router.HandleFunc("/api/products/{productId}/variants", h.metrics.Instrument("/api/products/{productId}/variants", h.auth.Middleware(h.Create))).Methods("POST")
	router.HandleFunc("/api/variants/{id}", h.metrics.Instrument("/api/variants/{id}", h.auth.Middleware(h.Update))).Methods("PUT")
	router.HandleFunc("/api/variants/{id}", h.metrics.Instrument("/api/variants/{id}", h.auth.Middleware(h.Delete))).Methods("DELETE")
}

// List handles GET /api/products/{productId}/variants
func (h *VariantHandler) List(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "productId")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	variants, err := h.listHandler.Handle(query.ListVariantsQuery{ProductID: productID})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: variants})
}

// Create handles POST /api/products/{productId}/variants
func (h *VariantHandler) Create(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "productId")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req struct {
		Size     *string `json:"size"`
		Color    *string `json:"color"`
		Material *string `json:"material"`
		Stock    int     `json:"stock"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	variant, err := h.createHandler.Handle(command.CreateVariantCommand{
		ProductID: productID,
		Size:      req.Size,
		Color:     req.Color,
		Material:  req.Material,
		Stock:     req.Stock,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Variant created successfully",
		Data:    variant,
	})
}

// Update handles PUT /api/variants/{id}
func (h *VariantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid variant ID"})
		return
	}

	var req struct {
		Size     *string `json:"size"`
		Color    *string `json:"color"`
		Material *string `json:"material"`
		Stock    *int    `json:"stock"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	variant, err := h.updateHandler.Handle(command.UpdateVariantCommand{
		ID:       id,
		Size:     req.Size,
		Color:    req.Color,
		Material: req.Material,
		Stock:    req.Stock,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Variant updated successfully",
		Data:    variant,
	})
}

// Delete handles DELETE /api/variants/{id}
func (h *VariantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid variant ID"})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteVariantCommand{ID: id}); err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Variant deleted successfully"})
}
