package query

import (
	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// GetSEOQuery fetches the SEO entry of a product
type GetSEOQuery struct {
	ProductID uint
}

// GetSEOHandler handles get SEO query
type GetSEOHandler struct {
	repo domain.SEORepository
}

// NewGetSEOHandler creates a new get SEO handler
func NewGetSEOHandler(repo domain.SEORepository) *GetSEOHandler {
	return &GetSEOHandler{repo: repo}
}

// Handle executes the get SEO query
func (h *GetSEOHandler) Handle(query GetSEOQuery) (*domain.SEO, error) {
	return h.repo.FindByProductID(query.ProductID)
}
