package query

import (
	"time"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// ListProductPromotionsQuery lists the currently applicable promotions of one
// product. The filter matches the /promotions/active policy: IsActive AND
// window containment, so the two endpoints never disagree.
type ListProductPromotionsQuery struct {
	ProductID uint
	AsOf      time.Time
}

// ListProductPromotionsHandler handles the product promotions query
type ListProductPromotionsHandler struct {
	repo domain.PromotionRepository
}

// NewListProductPromotionsHandler creates a new list product promotions handler
func NewListProductPromotionsHandler(repo domain.PromotionRepository) *ListProductPromotionsHandler {
	return &ListProductPromotionsHandler{repo: repo}
}

// Handle executes the query
func (h *ListProductPromotionsHandler) Handle(query ListProductPromotionsQuery) ([]domain.Promotion, error) {
	asOf := query.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	all, err := h.repo.FindByProductID(query.ProductID)
	if err != nil {
		return nil, err
	}

	applicable := make([]domain.Promotion, 0, len(all))
	for _, p := range all {
		if p.ApplicableAt(asOf) {
			applicable = append(applicable, p)
		}
	}
	return applicable, nil
}
