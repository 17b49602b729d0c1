package command

import (
	"fmt"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// UpdateProductCommand represents a partial product update. Nil fields are
// left unchanged.
type UpdateProductCommand struct {
	ID           uint
	Name         *string
	Description  *string
	SKU          *string
	Price        *float64
	Discount     *float64
	Stock        *int
	Brand        *string
	Manufacturer *string
	Supplier     *string
	CategoryID   *uint
}

// UpdateProductHandler handles product updates
type UpdateProductHandler struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(products domain.ProductRepository, categories domain.CategoryRepository) *UpdateProductHandler {
	return &UpdateProductHandler{products: products, categories: categories}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	product, err := h.products.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		product.Name = *cmd.Name
	}
	if cmd.Description != nil {
		product.Description = *cmd.Description
	}
	if cmd.SKU != nil && *cmd.SKU != product.SKU {
		if existing, _ := h.products.FindBySKU(*cmd.SKU); existing != nil && existing.ID != cmd.ID {
			return nil, fmt.Errorf("%w: SKU already exists", domain.ErrInvalidPayload)
		}
		product.SKU = *cmd.SKU
	}
	if cmd.Price != nil {
		if *cmd.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidPayload)
		}
		product.Price = *cmd.Price
	}
	if cmd.Discount != nil {
		if *cmd.Discount < 0 {
			return nil, fmt.Errorf("%w: discount cannot be negative", domain.ErrInvalidPayload)
		}
		product.Discount = *cmd.Discount
	}
	if cmd.Stock != nil {
		product.Stock = *cmd.Stock
	}
	if cmd.Brand != nil {
		product.Brand = *cmd.Brand
	}
	if cmd.Manufacturer != nil {
		product.Manufacturer = *cmd.Manufacturer
	}
	if cmd.Supplier != nil {
		product.Supplier = *cmd.Supplier
	}
	if cmd.CategoryID != nil {
		if _, err := h.categories.FindByID(*cmd.CategoryID); err != nil {
			return nil, fmt.Errorf("category %d: %w", *cmd.CategoryID, err)
		}
		product.CategoryID = *cmd.CategoryID
	}

	if err := h.products.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
