package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/usecase/command"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/usecase/query"
)

// ReviewHandler handles HTTP requests for product reviews
type ReviewHandler struct {
	createHandler *command.CreateReviewHandler
	listHandler   *query.ListReviewsHandler

	metrics *Metrics
	auth    *AdminAuth
}

// NewReviewHandler wires the review command/query handlers
func NewReviewHandler(reviews domain.ReviewRepository, products domain.ProductRepository, metrics *Metrics, auth *AdminAuth) *ReviewHandler {
	return &ReviewHandler{
		createHandler: command.NewCreateReviewHandler(reviews, products),
		listHandler:   query.NewListReviewsHandler(reviews),
		metrics:       metrics,
		auth:          auth,
	}
}

// RegisterRoutes mounts the review routes. Review submission is open to
// shoppers, so it is not behind the admin guard.
func (h *ReviewHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products/{productId}/reviews", h.metrics.Instrument("/api/products/{productId}/reviews", h.List)).Methods("GET")
	router.HandleFunc("/api/products/{productId}/reviews", h.metrics.Instrument("/api/products/{productId}/reviews", h.Create)).Methods("POST")
}

// List handles GET /api/products/{productId}/reviews
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "productId")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	reviews, err := h.listHandler.Handle(query.ListReviewsQuery{ProductID: productID})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: reviews})
}

// Create handles POST /api/products/{productId}/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "productId")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
		UserID  uint   `json:"user_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	review, err := h.createHandler.Handle(command.CreateReviewCommand{
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		UserID:    req.UserID,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Review created successfully",
		Data:    review,
	})
}
