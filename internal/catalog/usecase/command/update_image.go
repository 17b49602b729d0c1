package command

import (
	"context"
	"fmt"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/storage"
	"github.com/yealoro/shop-cart-sub000/pkg/logger"
)

// UpdateImageCommand represents a partial image update. Nil fields are left
// unchanged. A replacement URL goes through the same inline-payload
// materialization as creation.
type UpdateImageCommand struct {
	ID      uint
	URL     *string
	AltText *string
	Order   *int
}

// UpdateImageHandler handles image updates
type UpdateImageHandler struct {
	images domain.ImageRepository
	store  *storage.ImageStore
}

// NewUpdateImageHandler creates a new update image handler
func NewUpdateImageHandler(images domain.ImageRepository, store *storage.ImageStore) *UpdateImageHandler {
	return &UpdateImageHandler{images: images, store: store}
}

// Handle executes the update image command
func (h *UpdateImageHandler) Handle(ctx context.Context, cmd UpdateImageCommand) (*domain.Image, error) {
	image, err := h.images.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.URL != nil && *cmd.URL != image.URL {
		url, err := h.store.Materialize(image.ProductID, *cmd.URL)
		if err != nil {
			return nil, err
		}

		// Best-effort cleanup of the file the row used to point at.
		if err := h.store.Remove(image.URL); err != nil {
			logger.Warn(ctx).Err(err).Str("url", image.URL).Msg("Failed to remove replaced image file")
		}

		image.URL = url
	}
	if cmd.AltText != nil {
		image.AltText = cmd.AltText
	}
	if cmd.Order != nil {
		image.Order = *cmd.Order
	}

	if err := h.images.Update(image); err != nil {
		return nil, fmt.Errorf("failed to update image: %w", err)
	}

	return image, nil
}
