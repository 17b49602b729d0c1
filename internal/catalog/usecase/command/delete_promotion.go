package command

import (
	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// DeletePromotionCommand represents the command to delete a promotion
type DeletePromotionCommand struct {
	ID uint
}

// DeletePromotionHandler handles promotion deletion
type DeletePromotionHandler struct {
	promotions domain.PromotionRepository
}

// NewDeletePromotionHandler creates a new delete promotion handler
func NewDeletePromotionHandler(promotions domain.PromotionRepository) *DeletePromotionHandler {
	return &DeletePromotionHandler{promotions: promotions}
}

// Handle executes the delete promotion command
func (h *DeletePromotionHandler) Handle(cmd DeletePromotionCommand) error {
	return h.promotions.Delete(cmd.ID)
}
