package command

import (
	"fmt"
	"time"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// CreatePromotionCommand represents the command to create a promotion
type CreatePromotionCommand struct {
	ProductID     uint
	Name          string
	DiscountType  domain.DiscountType
	DiscountValue float64
	StartDate     time.Time
	EndDate       time.Time
	IsActive      bool
}

// CreatePromotionHandler handles promotion creation
type CreatePromotionHandler struct {
	promotions domain.PromotionRepository
	products   domain.ProductRepository
}

// NewCreatePromotionHandler creates a new create promotion handler
func NewCreatePromotionHandler(promotions domain.PromotionRepository, products domain.ProductRepository) *CreatePromotionHandler {
	return &CreatePromotionHandler{promotions: promotions, products: products}
}

// validateDiscount rejects discount configurations that could never produce a
// sensible price: unknown types, negative values, percentages above 100 and
// inverted windows.
func validateDiscount(discountType domain.DiscountType, value float64, start, end time.Time) error {
	if !discountType.Valid() {
		return fmt.Errorf("%w: unknown discount type %q", domain.ErrInvalidPayload, discountType)
	}
	if value < 0 {
		return fmt.Errorf("%w: discount value cannot be negative", domain.ErrInvalidPayload)
	}
	if discountType == domain.DiscountPercentage && value > 100 {
		return fmt.Errorf("%w: percentage discount cannot exceed 100", domain.ErrInvalidPayload)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date precedes start date", domain.ErrInvalidPayload)
	}
	return nil
}

// Handle executes the create promotion command
func (h *CreatePromotionHandler) Handle(cmd CreatePromotionCommand) (*domain.Promotion, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: promotion name is required", domain.ErrInvalidPayload)
	}
	if err := validateDiscount(cmd.DiscountType, cmd.DiscountValue, cmd.StartDate, cmd.EndDate); err != nil {
		return nil, err
	}
	if _, err := h.products.FindByID(cmd.ProductID); err != nil {
		return nil, fmt.Errorf("product %d: %w", cmd.ProductID, err)
	}

	promotion := &domain.Promotion{
		ProductID:     cmd.ProductID,
		Name:          cmd.Name,
		DiscountType:  cmd.DiscountType,
		DiscountValue: cmd.DiscountValue,
		StartDate:     cmd.StartDate,
		EndDate:       cmd.EndDate,
		IsActive:      cmd.IsActive,
	}

	if err := h.promotions.Create(promotion); err != nil {
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}

	return promotion, nil
}
