package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/usecase/command"
)

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	createHandler *command.CreateCategoryHandler
	updateHandler *command.UpdateCategoryHandler
	deleteHandler *command.DeleteCategoryHandler

	repo    domain.CategoryRepository
	metrics *Metrics
	auth    *AdminAuth
}

// NewCategoryHandler wires the category command handlers
func NewCategoryHandler(categories domain.CategoryRepository, metrics *Metrics, auth *AdminAuth) *CategoryHandler {
	return &CategoryHandler{
		createHandler: command.NewCreateCategoryHandler(categories),
		updateHandler: command.NewUpdateCategoryHandler(categories),
		deleteHandler: command.NewDeleteCategoryHandler(categories),
		repo:          categories,
		metrics:       metrics,
		auth:          auth,
	}
}

// RegisterRoutes mounts the category routes
func (h *CategoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/categories", h.metrics.Instrument("/api/categories", h.List)).Methods("GET")
	router.HandleFunc("/api/categories/{id}", h.metrics.Instrument("/api/categories/{id}", h.Get)).Methods("GET")

	router.HandleFunc("/api/categories", h.metrics.Instrument("/api/categories", h.auth.Middleware(h.Create))).Methods("POST")
	router.HandleFunc("/api/categories/{id}", h.metrics.Instrument("/api/categories/{id}", h.auth.Middleware(h.Update))).Methods("PUT")
	router.HandleFunc("/api/categories/{id}", h.metrics.Instrument("/api/categories/{id}", h.auth.Middleware(h.Delete))).Methods("DELETE")
}

// List handles GET /api/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.FindAll()
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: categories})
}

// Get handles GET /api/categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid category ID"})
		return
	}

	category, err := h.repo.FindByID(id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: category})
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name             string `json:"name"`
		ParentCategoryID *uint  `json:"parent_category_id"`
		Featured         bool   `json:"featured"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	category, err := h.createHandler.Handle(command.CreateCategoryCommand{
		Name:             req.Name,
		ParentCategoryID: req.ParentCategoryID,
		Featured:         req.Featured,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
	})
}

// Update handles PUT /api/categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid category ID"})
		return
	}

	var req struct {
		Name             *string `json:"name"`
		ParentCategoryID *uint   `json:"parent_category_id"`
		Featured         *bool   `json:"featured"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	category, err := h.updateHandler.Handle(command.UpdateCategoryCommand{
		ID:               id,
		Name:             req.Name,
		ParentCategoryID: req.ParentCategoryID,
		Featured:         req.Featured,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Category updated successfully",
		Data:    category,
	})
}

// Delete handles DELETE /api/categories/{id}. Deleting a category that still
// has products returns 409 with the category intact.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid category ID"})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteCategoryCommand{ID: id}); err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Category deleted successfully"})
}
