package command

import (
	"fmt"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// CreateCategoryCommand represents the command to create a category
type CreateCategoryCommand struct {
	Name             string
	ParentCategoryID *uint
	Featured         bool
}

// CreateCategoryHandler handles category creation
type CreateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.CategoryRepository) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(cmd CreateCategoryCommand) (*domain.Category, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: category name is required", domain.ErrInvalidPayload)
	}

	if cmd.ParentCategoryID != nil {
		if _, err := h.repo.FindByID(*cmd.ParentCategoryID); err != nil {
			return nil, fmt.Errorf("parent category: %w", err)
		}
	}

	category := &domain.Category{
		Name:             cmd.Name,
		ParentCategoryID: cmd.ParentCategoryID,
		Featured:         cmd.Featured,
	}

	if err := h.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}
