// Package pricing holds the pure price computation logic: picking the single
// applicable promotion for a product and applying it to a base price.
package pricing

import (
	"time"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// FindApplicablePromotion selects the promotion that applies to basePrice at
// the given instant, or nil when none does. A promotion applies when it is
// active and asOf falls inside [StartDate, EndDate], boundaries inclusive.
//
// When several promotions apply at once the one yielding the largest discount
// amount against basePrice wins; ties break on the lowest promotion ID. The
// choice is a policy decision, documented in DESIGN.md.
func FindApplicablePromotion(promotions []domain.Promotion, basePrice float64, asOf time.Time) *domain.Promotion {
	var best *domain.Promotion
	var bestAmount float64

	for i := range promotions {
		p := &promotions[i]
		if !p.ApplicableAt(asOf) {
			continue
		}
		amount := basePrice - FinalPrice(basePrice, p)
		if best == nil || amount > bestAmount || (amount == bestAmount && p.ID < best.ID) {
			best = p
			bestAmount = amount
		}
	}

	return best
}

// FinalPrice applies a promotion to a base price. A nil promotion returns the
// base unchanged. Percentage values are clamped to [0,100] so bad stored data
// can never inflate a price or push it negative; fixed amounts floor at zero.
func FinalPrice(basePrice float64, promotion *domain.Promotion) float64 {
	if promotion == nil {
		return basePrice
	}

	switch promotion.DiscountType {
	case domain.DiscountPercentage:
		v := promotion.DiscountValue
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		return basePrice * (1 - v/100)
	case domain.DiscountFixed:
		result := basePrice - promotion.DiscountValue
		if result < 0 {
			return 0
		}
		return result
	default:
		return basePrice
	}
}

// Quote is the result of a quantity-aware price computation.
type Quote struct {
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	Quantity    int     `json:"quantity"`
	PromotionID *uint   `json:"promotion_id,omitempty"`
}

// QuoteProduct computes the unit and total price for a product at the given
// instant. The product's flat Discount field is applied first, then the best
// applicable promotion. Total multiplies by quantity (quantity < 1 is treated
// as 1).
func QuoteProduct(product *domain.Product, promotions []domain.Promotion, quantity int, asOf time.Time) Quote {
	if quantity < 1 {
		quantity = 1
	}

	base := product.EffectiveBasePrice()
	promo := FindApplicablePromotion(promotions, base, asOf)
	unit := FinalPrice(base, promo)

	q := Quote{
		UnitPrice:  unit,
		TotalPrice: unit * float64(quantity),
		Quantity:   quantity,
	}
	if promo != nil {
		id := promo.ID
		q.PromotionID = &id
	}
	return q
}
