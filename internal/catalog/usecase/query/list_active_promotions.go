package query

import (
	"time"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// ListActivePromotionsQuery lists promotions currently inside their window
type ListActivePromotionsQuery struct {
	AsOf time.Time
}

// ListActivePromotionsHandler handles the active promotions query
type ListActivePromotionsHandler struct {
	repo domain.PromotionRepository
}

// NewListActivePromotionsHandler creates a new list active promotions handler
func NewListActivePromotionsHandler(repo domain.PromotionRepository) *ListActivePromotionsHandler {
	return &ListActivePromotionsHandler{repo: repo}
}

// Handle executes the query
func (h *ListActivePromotionsHandler) Handle(query ListActivePromotionsQuery) ([]domain.Promotion, error) {
	asOf := query.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}
	return h.repo.FindActive(asOf)
}
