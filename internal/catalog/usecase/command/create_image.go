package command

import (
	"fmt"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/storage"
)

// CreateImageCommand represents the command to attach an image to a product.
// URL may be a remote reference or an inline base64 data URL.
type CreateImageCommand struct {
	ProductID uint
	URL       string
	AltText   *string
	Order     int
}

// CreateImageHandler handles image creation
type CreateImageHandler struct {
	images   domain.ImageRepository
	products domain.ProductRepository
	store    *storage.ImageStore
}

// NewCreateImageHandler creates a new create image handler
func NewCreateImageHandler(images domain.ImageRepository, products domain.ProductRepository, store *storage.ImageStore) *CreateImageHandler {
	return &CreateImageHandler{images: images, products: products, store: store}
}

// Handle executes the create image command. Inline payloads are decoded and
// written to the upload directory; the persisted URL is the resulting public
// path, never the inline payload itself.
func (h *CreateImageHandler) Handle(cmd CreateImageCommand) (*domain.Image, error) {
	if cmd.URL == "" {
		return nil, fmt.Errorf("%w: image url is required", domain.ErrInvalidPayload)
	}
	if _, err := h.products.FindByID(cmd.ProductID); err != nil {
		return nil, fmt.Errorf("product %d: %w", cmd.ProductID, err)
	}

	url, err := h.store.Materialize(cmd.ProductID, cmd.URL)
	if err != nil {
		return nil, err
	}

	image := &domain.Image{
		URL:       url,
		AltText:   cmd.AltText,
		Order:     cmd.Order,
		ProductID: cmd.ProductID,
	}

	if err := h.images.Create(image); err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}

	return image, nil
}
