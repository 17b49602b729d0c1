package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

func promo(id uint, t domain.DiscountType, value float64, start, end time.Time, active bool) domain.Promotion {
	return domain.Promotion{
		ID:            id,
		ProductID:     1,
		Name:          "test",
		DiscountType:  t,
		DiscountValue: value,
		StartDate:     start,
		EndDate:       end,
		IsActive:      active,
	}
}

func TestFinalPriceNoPromotion(t *testing.T) {
	assert.Equal(t, 100.0, FinalPrice(100.0, nil))
	assert.Equal(t, 0.0, FinalPrice(0.0, nil))
}

func TestFinalPricePercentage(t *testing.T) {
	now := time.Now()
	p := promo(1, domain.DiscountPercentage, 20, now, now, true)

	assert.InDelta(t, 80.0, FinalPrice(100.0, &p), 1e-9)

	p.DiscountValue = 0
	assert.InDelta(t, 100.0, FinalPrice(100.0, &p), 1e-9)

	p.DiscountValue = 100
	assert.InDelta(t, 0.0, FinalPrice(100.0, &p), 1e-9)
}

func TestFinalPricePercentageClamped(t *testing.T) {
	now := time.Now()
	p := promo(1, domain.DiscountPercentage, 150, now, now, true)
	assert.Equal(t, 0.0, FinalPrice(100.0, &p), "over 100 percent clamps to free, never negative")

	p.DiscountValue = -10
	assert.Equal(t, 100.0, FinalPrice(100.0, &p), "negative percentage clamps to no discount")
}

func TestFinalPricePercentageMonotonic(t *testing.T) {
	now := time.Now()
	prev := 101.0
	for v := 0.0; v <= 100; v += 5 {
		p := promo(1, domain.DiscountPercentage, v, now, now, true)
		got := FinalPrice(100.0, &p)
		assert.Less(t, got, prev)
		prev = got
	}
}

func TestFinalPriceFixedAmountFloorsAtZero(t *testing.T) {
	now := time.Now()
	p := promo(1, domain.DiscountFixed, 60, now, now, true)

	assert.Equal(t, 40.0, FinalPrice(100.0, &p))
	// Fixed discount exceeding the base price floors at zero.
	assert.Equal(t, 0.0, FinalPrice(50.0, &p))
}

func TestFindApplicablePromotionWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	promos := []domain.Promotion{promo(1, domain.DiscountPercentage, 20, start, end, true)}

	cases := []struct {
		name  string
		asOf  time.Time
		match bool
	}{
		{"before window", start.Add(-time.Second), false},
		{"at start boundary", start, true},
		{"inside window", start.AddDate(0, 0, 15), true},
		{"at end boundary", end, true},
		{"after window", end.Add(time.Second), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FindApplicablePromotion(promos, 100, tc.asOf)
			if tc.match {
				require.NotNil(t, got)
				assert.Equal(t, uint(1), got.ID)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestFindApplicablePromotionIgnoresInactive(t *testing.T) {
	now := time.Now()
	promos := []domain.Promotion{
		promo(1, domain.DiscountPercentage, 50, now.Add(-time.Hour), now.Add(time.Hour), false),
	}
	assert.Nil(t, FindApplicablePromotion(promos, 100, now))
}

func TestFindApplicablePromotionTieBreak(t *testing.T) {
	now := time.Now()
	start, end := now.Add(-time.Hour), now.Add(time.Hour)

	// 30% of 100 beats a flat 25.
	promos := []domain.Promotion{
		promo(1, domain.DiscountFixed, 25, start, end, true),
		promo(2, domain.DiscountPercentage, 30, start, end, true),
	}
	got := FindApplicablePromotion(promos, 100, now)
	require.NotNil(t, got)
	assert.Equal(t, uint(2), got.ID)

	// Equal discount amounts: lowest ID wins regardless of slice order.
	promos = []domain.Promotion{
		promo(5, domain.DiscountFixed, 20, start, end, true),
		promo(3, domain.DiscountPercentage, 20, start, end, true),
	}
	got = FindApplicablePromotion(promos, 100, now)
	require.NotNil(t, got)
	assert.Equal(t, uint(3), got.ID)
}

func TestFindApplicablePromotionEmpty(t *testing.T) {
	assert.Nil(t, FindApplicablePromotion(nil, 100, time.Now()))
}

func TestQuoteProductAppliesFlatDiscountFirst(t *testing.T) {
	now := time.Now()
	product := &domain.Product{ID: 1, Price: 120, Discount: 20}
	promos := []domain.Promotion{
		promo(1, domain.DiscountPercentage, 20, now.Add(-time.Hour), now.Add(time.Hour), true),
	}

	// Effective base 100, then 20% off.
	q := QuoteProduct(product, promos, 1, now)
	assert.InDelta(t, 80.0, q.UnitPrice, 1e-9)
	assert.InDelta(t, 80.0, q.TotalPrice, 1e-9)
	require.NotNil(t, q.PromotionID)
	assert.Equal(t, uint(1), *q.PromotionID)
}

func TestQuoteProductQuantity(t *testing.T) {
	now := time.Now()
	product := &domain.Product{ID: 1, Price: 100}
	promos := []domain.Promotion{
		promo(1, domain.DiscountPercentage, 20, now.Add(-24*time.Hour), now.Add(24*time.Hour), true),
	}

	q := QuoteProduct(product, promos, 3, now)
	assert.InDelta(t, 80.0, q.UnitPrice, 1e-9)
	assert.InDelta(t, 240.0, q.TotalPrice, 1e-9)
	assert.Equal(t, 3, q.Quantity)

	// Zero or negative quantity is treated as one unit.
	q = QuoteProduct(product, promos, 0, now)
	assert.Equal(t, 1, q.Quantity)
	assert.InDelta(t, 80.0, q.TotalPrice, 1e-9)
}

func TestQuoteProductNoPromotion(t *testing.T) {
	product := &domain.Product{ID: 1, Price: 50}
	q := QuoteProduct(product, nil, 2, time.Now())
	assert.Equal(t, 50.0, q.UnitPrice)
	assert.Equal(t, 100.0, q.TotalPrice)
	assert.Nil(t, q.PromotionID)
}
