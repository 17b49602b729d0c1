package command

import (
	"fmt"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/storage"
)

// CreateProductCommand represents the command to create a product together
// with optional initial variants, images and SEO entry.
type CreateProductCommand struct {
	Name         string
	Description  string
	SKU          string
	Price        float64
	Discount     float64
	Stock        *int
	Brand        string
	Manufacturer string
	Supplier     string
	CategoryID   uint
	Variants     []domain.Variant
	Images       []domain.Image
	SEO          *domain.SEO
}

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(products domain.ProductRepository, categories domain.CategoryRepository) *CreateProductHandler {
	return &CreateProductHandler{products: products, categories: categories}
}

// Handle executes the create product command. The category reference is
// validated up front so a missing category surfaces as a domain error rather
// than a foreign key violation. Product and assets are written in one
// transaction.
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", domain.ErrInvalidPayload)
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidPayload)
	}
	if cmd.Discount < 0 {
		return nil, fmt.Errorf("%w: discount cannot be negative", domain.ErrInvalidPayload)
	}
	if cmd.CategoryID == 0 {
		return nil, fmt.Errorf("%w: category_id is required", domain.ErrInvalidPayload)
	}

	if _, err := h.categories.FindByID(cmd.CategoryID); err != nil {
		return nil, fmt.Errorf("category %d: %w", cmd.CategoryID, err)
	}

	// Inline payloads go through the image endpoint, which materializes them
	// to files; accepting them here would persist megabytes of base64 as the
	// image URL.
	for _, img := range cmd.Images {
		if storage.IsInlinePayload(img.URL) {
			return nil, fmt.Errorf("%w: inline image payloads must be uploaded via the images endpoint", domain.ErrInvalidPayload)
		}
	}

	if cmd.SKU != "" {
		if existing, _ := h.products.FindBySKU(cmd.SKU); existing != nil {
			return nil, fmt.Errorf("%w: SKU already exists", domain.ErrInvalidPayload)
		}
	}

	stock := 1
	if cmd.Stock != nil {
		stock = *cmd.Stock
	}

	product := &domain.Product{
		Name:         cmd.Name,
		Description:  cmd.Description,
		SKU:          cmd.SKU,
		Price:        cmd.Price,
		Discount:     cmd.Discount,
		Stock:        stock,
		Brand:        cmd.Brand,
		Manufacturer: cmd.Manufacturer,
		Supplier:     cmd.Supplier,
		CategoryID:   cmd.CategoryID,
		Variants:     cmd.Variants,
		Images:       cmd.Images,
	}

	if err := h.products.CreateWithAssets(product, cmd.SEO); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
