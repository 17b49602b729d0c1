package command

import (
	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// DeleteCategoryCommand represents the command to delete a category
type DeleteCategoryCommand struct {
	ID uint
}

// DeleteCategoryHandler handles category deletion
type DeleteCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(repo domain.CategoryRepository) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{repo: repo}
}

// Handle executes the delete category command. A category that still has
// products returns domain.ErrCategoryHasProducts; the check lives in the
// service layer, not the dashboard UI.
func (h *DeleteCategoryHandler) Handle(cmd DeleteCategoryCommand) error {
	return h.repo.Delete(cmd.ID)
}
