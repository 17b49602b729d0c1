package command

import (
	"fmt"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// CreateReviewCommand represents the command to create a review
type CreateReviewCommand struct {
	ProductID uint
	Rating    int
	Comment   string
	UserID    uint
}

// CreateReviewHandler handles review creation
type CreateReviewHandler struct {
	reviews  domain.ReviewRepository
	products domain.ProductRepository
}

// NewCreateReviewHandler creates a new create review handler
func NewCreateReviewHandler(reviews domain.ReviewRepository, products domain.ProductRepository) *CreateReviewHandler {
	return &CreateReviewHandler{reviews: reviews, products: products}
}

// Handle executes the create review command
func (h *CreateReviewHandler) Handle(cmd CreateReviewCommand) (*domain.Review, error) {
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidPayload)
	}
	if _, err := h.products.FindByID(cmd.ProductID); err != nil {
		return nil, fmt.Errorf("product %d: %w", cmd.ProductID, err)
	}

	review := &domain.Review{
		ProductID: cmd.ProductID,
		Rating:    cmd.Rating,
		Comment:   cmd.Comment,
		UserID:    cmd.UserID,
	}

	if err := h.reviews.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}
