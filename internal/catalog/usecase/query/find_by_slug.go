package query

import (
	"fmt"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// FindBySlugQuery looks up a product by its SEO url slug
type FindBySlugQuery struct {
	Slug string
}

// FindBySlugHandler handles find by slug query
type FindBySlugHandler struct {
	repo domain.ProductRepository
}

// NewFindBySlugHandler creates a new find by slug handler
func NewFindBySlugHandler(repo domain.ProductRepository) *FindBySlugHandler {
	return &FindBySlugHandler{repo: repo}
}

// Handle executes the find by slug query
func (h *FindBySlugHandler) Handle(query FindBySlugQuery) (*domain.Product, error) {
	if query.Slug == "" {
		return nil, fmt.Errorf("%w: slug is required", domain.ErrInvalidPayload)
	}
	return h.repo.FindBySlug(query.Slug)
}
