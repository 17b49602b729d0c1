package command

import (
	"fmt"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// UpsertSEOCommand represents the command to set a product's SEO entry
type UpsertSEOCommand struct {
	ProductID       uint
	URLSlug         string
	MetaTitle       string
	MetaDescription string
	Keywords        string
}

// UpsertSEOHandler handles SEO upserts
type UpsertSEOHandler struct {
	seo      domain.SEORepository
	products domain.ProductRepository
}

// NewUpsertSEOHandler creates a new upsert SEO handler
func NewUpsertSEOHandler(seo domain.SEORepository, products domain.ProductRepository) *UpsertSEOHandler {
	return &UpsertSEOHandler{seo: seo, products: products}
}

// Handle executes the upsert SEO command
func (h *UpsertSEOHandler) Handle(cmd UpsertSEOCommand) (*domain.SEO, error) {
	if cmd.URLSlug == "" {
		return nil, fmt.Errorf("%w: url_slug is required", domain.ErrInvalidPayload)
	}
	if _, err := h.products.FindByID(cmd.ProductID); err != nil {
		return nil, fmt.Errorf("product %d: %w", cmd.ProductID, err)
	}

	// A slug must stay unique across products.
	if existing, err := h.seo.FindBySlug(cmd.URLSlug); err == nil && existing.ProductID != cmd.ProductID {
		return nil, fmt.Errorf("%w: slug already in use", domain.ErrInvalidPayload)
	}

	seo := &domain.SEO{
		ProductID:       cmd.ProductID,
		URLSlug:         cmd.URLSlug,
		MetaTitle:       cmd.MetaTitle,
		MetaDescription: cmd.MetaDescription,
		Keywords:        cmd.Keywords,
	}

	if err := h.seo.Upsert(seo); err != nil {
		return nil, fmt.Errorf("failed to upsert seo entry: %w", err)
	}

	return seo, nil
}
