package query

import (
	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// ListVariantsQuery lists the variants of a product
type ListVariantsQuery struct {
	ProductID uint
}

// ListVariantsHandler handles list variants query
type ListVariantsHandler struct {
	repo domain.VariantRepository
}

// NewListVariantsHandler creates a new list variants handler
func NewListVariantsHandler(repo domain.VariantRepository) *ListVariantsHandler {
	return &ListVariantsHandler{repo: repo}
}

// Handle executes the list variants query
func (h *ListVariantsHandler) Handle(query ListVariantsQuery) ([]domain.Variant, error) {
	return h.repo.FindByProductID(query.ProductID)
}
