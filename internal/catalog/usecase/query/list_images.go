package query

import (
	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// ListImagesQuery lists the images of a product in display order
type ListImagesQuery struct {
	ProductID uint
}

// ListImagesHandler handles list images query
type ListImagesHandler struct {
	repo domain.ImageRepository
}

// NewListImagesHandler creates a new list images handler
func NewListImagesHandler(repo domain.ImageRepository) *ListImagesHandler {
	return &ListImagesHandler{repo: repo}
}

// Handle executes the list images query
func (h *ListImagesHandler) Handle(query ListImagesQuery) ([]domain.Image, error) {
	return h.repo.FindByProductID(query.ProductID)
}
