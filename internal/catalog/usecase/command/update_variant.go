package command

import (
	"fmt"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// UpdateVariantCommand represents a partial variant update. Nil fields are
// left unchanged.
type UpdateVariantCommand struct {
	ID       uint
	Size     *string
	Color    *string
	Material *string
	Stock    *int
}

// UpdateVariantHandler handles variant updates
type UpdateVariantHandler struct {
	variants domain.VariantRepository
}

// NewUpdateVariantHandler creates a new update variant handler
func NewUpdateVariantHandler(variants domain.VariantRepository) *UpdateVariantHandler {
	return &UpdateVariantHandler{variants: variants}
}

// Handle executes the update variant command
func (h *UpdateVariantHandler) Handle(cmd UpdateVariantCommand) (*domain.Variant, error) {
	variant, err := h.variants.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Size != nil {
		variant.Size = cmd.Size
	}
	if cmd.Color != nil {
		variant.Color = cmd.Color
	}
	if cmd.Material != nil {
		variant.Material = cmd.Material
	}
	if cmd.Stock != nil {
		if *cmd.Stock < 0 {
			return nil, fmt.Errorf("%w: stock cannot be negative", domain.ErrInvalidPayload)
		}
		variant.Stock = *cmd.Stock
	}

	if err := h.variants.Update(variant); err != nil {
		return nil, fmt.Errorf("failed to update variant: %w", err)
	}

	return variant, nil
}
