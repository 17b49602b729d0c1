package query

import (
	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// ListReviewsQuery lists the reviews of a product
type ListReviewsQuery struct {
	ProductID uint
}

// ListReviewsHandler handles list reviews query
type ListReviewsHandler struct {
	repo domain.ReviewRepository
}

// NewListReviewsHandler creates a new list reviews handler
func NewListReviewsHandler(repo domain.ReviewRepository) *ListReviewsHandler {
	return &ListReviewsHandler{repo: repo}
}

// Handle executes the list reviews query
func (h *ListReviewsHandler) Handle(query ListReviewsQuery) ([]domain.Review, error) {
	return h.repo.FindByProductID(query.ProductID)
}
