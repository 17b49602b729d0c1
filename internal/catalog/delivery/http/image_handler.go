package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/storage"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/usecase/command"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/usecase/query"
)

// ImageHandler handles HTTP requests for product images
type ImageHandler struct {
	createHandler *command.CreateImageHandler
	updateHandler *command.UpdateImageHandler
	deleteHandler *command.DeleteImageHandler
	listHandler   *query.ListImagesHandler

	metrics *Metrics
	auth    *AdminAuth
}

// NewImageHandler wires the image command/query handlers
func NewImageHandler(
	images domain.ImageRepository,
	products domain.ProductRepository,
	store *storage.ImageStore,
	metrics *Metrics,
	auth *AdminAuth,
) *ImageHandler {
	return &ImageHandler{
		createHandler: command.NewCreateImageHandler(images, products, store),
		updateHandler: command.NewUpdateImageHandler(images, store),
		deleteHandler: command.NewDeleteImageHandler(images, store),
		listHandler:   query.NewListImagesHandler(images),
		metrics:       metrics,
		auth:          auth,
	}
}

// RegisterRoutes mounts the image routes
func (h *ImageHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products/{productId}/images", h.metrics.Instrument("/api/products/{productId}/images", h.List)).Methods("GET")

	router.HandleFunc("/api/products/{productId}/images", h.metrics.Instrument("/api/products/{productId}/images", h.auth.Middleware(h.Create))).Methods("POST")
	router.HandleFunc("/api/images", h.metrics.Instrument("/api/images", h.auth.Middleware(h.CreateFromBody))).Methods("POST")
	router.HandleFunc("/api/images/{id}", h.metrics.Instrument("/api/images/{id}", h.auth.Middleware(h.Update))).Methods("PUT")
	router.HandleFunc("/api/images/{id}", h.metrics.Instrument("/api/images/{id}", h.auth.Middleware(h.Delete))).Methods("DELETE")
}

// List handles GET /api/products/{productId}/images
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "productId")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	images, err := h.listHandler.Handle(query.ListImagesQuery{ProductID: productID})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: images})
}

// Create handles POST /api/products/{productId}/images. The url field accepts
// either a remote URL or an inline base64 data URL; inline payloads are
// written to the upload directory and stored by their public path.
func (h *ImageHandler) Create(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "productId")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req struct {
		URL     string  `json:"url"`
		AltText *string `json:"alt_text"`
		Order   int     `json:"order"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	image, err := h.createHandler.Handle(command.CreateImageCommand{
		ProductID: productID,
		URL:       req.URL,
		AltText:   req.AltText,
		Order:     req.Order,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Image created successfully",
		Data:    image,
	})
}

// CreateFromBody handles POST /api/images, where the product is referenced in
// the payload instead of the path. The admin dashboard sends the product as a
// nested object, so both product_id and product.id are accepted.
func (h *ImageHandler) CreateFromBody(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL       string  `json:"url"`
		AltText   *string `json:"alt_text"`
		Order     int     `json:"order"`
		ProductID uint    `json:"product_id"`
		Product   *struct {
			ID uint `json:"id"`
		} `json:"product"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	productID := req.ProductID
	if productID == 0 && req.Product != nil {
		productID = req.Product.ID
	}
	if productID == 0 {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Product reference is required"})
		return
	}

	image, err := h.createHandler.Handle(command.CreateImageCommand{
		ProductID: productID,
		URL:       req.URL,
		AltText:   req.AltText,
		Order:     req.Order,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Image created successfully",
		Data:    image,
	})
}

// Update handles PUT /api/images/{id}
func (h *ImageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid image ID"})
		return
	}

	var req struct {
		URL     *string `json:"url"`
		AltText *string `json:"alt_text"`
		Order   *int    `json:"order"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	image, err := h.updateHandler.Handle(r.Context(), command.UpdateImageCommand{
		ID:      id,
		URL:     req.URL,
		AltText: req.AltText,
		Order:   req.Order,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Image updated successfully",
		Data:    image,
	})
}

// Delete handles DELETE /api/images/{id}
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid image ID"})
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteImageCommand{ID: id}); err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Image deleted successfully"})
}
