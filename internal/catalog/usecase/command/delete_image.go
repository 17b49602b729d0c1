package command

import (
	"context"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/storage"
	"github.com/yealoro/shop-cart-sub000/pkg/logger"
)

// DeleteImageCommand represents the command to delete an image
type DeleteImageCommand struct {
	ID uint
}

// DeleteImageHandler handles image deletion
type DeleteImageHandler struct {
	images domain.ImageRepository
	store  *storage.ImageStore
}

// NewDeleteImageHandler creates a new delete image handler
func NewDeleteImageHandler(images domain.ImageRepository, store *storage.ImageStore) *DeleteImageHandler {
	return &DeleteImageHandler{images: images, store: store}
}

// Handle executes the delete image command. The row is the source of truth;
// removing the materialized file is best effort and never fails the request.
func (h *DeleteImageHandler) Handle(ctx context.Context, cmd DeleteImageCommand) error {
	image, err := h.images.FindByID(cmd.ID)
	if err != nil {
		return err
	}

	if err := h.images.Delete(cmd.ID); err != nil {
		return err
	}

	if err := h.store.Remove(image.URL); err != nil {
		logger.Warn(ctx).Err(err).Str("url", image.URL).Msg("Failed to remove image file")
	}

	return nil
}
