package command

import (
	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// DeleteVariantCommand represents the command to delete a variant
type DeleteVariantCommand struct {
	ID uint
}

// DeleteVariantHandler handles variant deletion
type DeleteVariantHandler struct {
	variants domain.VariantRepository
}

// NewDeleteVariantHandler creates a new delete variant handler
func NewDeleteVariantHandler(variants domain.VariantRepository) *DeleteVariantHandler {
	return &DeleteVariantHandler{variants: variants}
}

// Handle executes the delete variant command
func (h *DeleteVariantHandler) Handle(cmd DeleteVariantCommand) error {
	return h.variants.Delete(cmd.ID)
}
