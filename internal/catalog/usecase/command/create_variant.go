package command

import (
	"fmt"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// CreateVariantCommand represents the command to create a product variant
type CreateVariantCommand struct {
	ProductID uint
	Size      *string
	Color     *string
	Material  *string
	Stock     int
}

// CreateVariantHandler handles variant creation
type CreateVariantHandler struct {
	variants domain.VariantRepository
	products domain.ProductRepository
}

// NewCreateVariantHandler creates a new create variant handler
func NewCreateVariantHandler(variants domain.VariantRepository, products domain.ProductRepository) *CreateVariantHandler {
	return &CreateVariantHandler{variants: variants, products: products}
}

// Handle executes the create variant command
func (h *CreateVariantHandler) Handle(cmd CreateVariantCommand) (*domain.Variant, error) {
	if _, err := h.products.FindByID(cmd.ProductID); err != nil {
		return nil, fmt.Errorf("product %d: %w", cmd.ProductID, err)
	}
	if cmd.Stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", domain.ErrInvalidPayload)
	}

	variant := &domain.Variant{
		ProductID: cmd.ProductID,
		Size:      cmd.Size,
		Color:     cmd.Color,
		Material:  cmd.Material,
		Stock:     cmd.Stock,
	}

	if err := h.variants.Create(variant); err != nil {
		return nil, fmt.Errorf("failed to create variant: %w", err)
	}

	return variant, nil
}
