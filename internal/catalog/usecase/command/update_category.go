package command

import (
	"fmt"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// UpdateCategoryCommand represents the command to update a category.
// Nil fields are left unchanged.
type UpdateCategoryCommand struct {
	ID               uint
	Name             *string
	ParentCategoryID *uint
	Featured         *bool
}

// UpdateCategoryHandler handles category updates
type UpdateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(repo domain.CategoryRepository) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{repo: repo}
}

// Handle executes the update category command
func (h *UpdateCategoryHandler) Handle(cmd UpdateCategoryCommand) (*domain.Category, error) {
	category, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, fmt.Errorf("%w: category name cannot be empty", domain.ErrInvalidPayload)
		}
		category.Name = *cmd.Name
	}
	if cmd.ParentCategoryID != nil {
		category.ParentCategoryID = cmd.ParentCategoryID
	}
	if cmd.Featured != nil {
		category.Featured = *cmd.Featured
	}

	if err := h.repo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}
