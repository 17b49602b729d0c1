package command

import (
	"fmt"
	"time"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// UpdatePromotionCommand represents a partial promotion update. Nil fields
// are left unchanged.
type UpdatePromotionCommand struct {
	ID            uint
	Name          *string
	DiscountType  *domain.DiscountType
	DiscountValue *float64
	StartDate     *time.Time
	EndDate       *time.Time
	IsActive      *bool
}

// UpdatePromotionHandler handles promotion updates
type UpdatePromotionHandler struct {
	promotions domain.PromotionRepository
}

// NewUpdatePromotionHandler creates a new update promotion handler
func NewUpdatePromotionHandler(promotions domain.PromotionRepository) *UpdatePromotionHandler {
	return &UpdatePromotionHandler{promotions: promotions}
}

// Handle executes the update promotion command. The merged result is
// revalidated so an update cannot sneak in an out-of-range percentage or an
// inverted window.
func (h *UpdatePromotionHandler) Handle(cmd UpdatePromotionCommand) (*domain.Promotion, error) {
	promotion, err := h.promotions.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		promotion.Name = *cmd.Name
	}
	if cmd.DiscountType != nil {
		promotion.DiscountType = *cmd.DiscountType
	}
	if cmd.DiscountValue != nil {
		promotion.DiscountValue = *cmd.DiscountValue
	}
	if cmd.StartDate != nil {
		promotion.StartDate = *cmd.StartDate
	}
	if cmd.EndDate != nil {
		promotion.EndDate = *cmd.EndDate
	}
	if cmd.IsActive != nil {
		promotion.IsActive = *cmd.IsActive
	}

	if err := validateDiscount(promotion.DiscountType, promotion.DiscountValue, promotion.StartDate, promotion.EndDate); err != nil {
		return nil, err
	}

	if err := h.promotions.Update(promotion); err != nil {
		return nil, fmt.Errorf("failed to update promotion: %w", err)
	}

	return promotion, nil
}
