package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

func seedProduct(t *testing.T, products *fakeProductRepo, categories *fakeCategoryRepo) *domain.Product {
	t.Helper()
	category := seedCategory(t, categories, "Electronics")
	product, err := NewCreateProductHandler(products, categories).Handle(CreateProductCommand{
		Name:       "Keyboard",
		Price:      100,
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	return product
}

func TestCreatePromotionValidation(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	promotions := newFakePromotionRepo()
	product := seedProduct(t, products, categories)

	handler := NewCreatePromotionHandler(promotions, products)
	now := time.Now()

	cases := []struct {
		name string
		cmd  CreatePromotionCommand
	}{
		{"empty name", CreatePromotionCommand{
			ProductID: product.ID, DiscountType: domain.DiscountPercentage,
			DiscountValue: 10, StartDate: now, EndDate: now.Add(time.Hour),
		}},
		{"unknown type", CreatePromotionCommand{
			ProductID: product.ID, Name: "Sale", DiscountType: "BOGO",
			DiscountValue: 10, StartDate: now, EndDate: now.Add(time.Hour),
		}},
		{"negative value", CreatePromotionCommand{
			ProductID: product.ID, Name: "Sale", DiscountType: domain.DiscountFixed,
			DiscountValue: -5, StartDate: now, EndDate: now.Add(time.Hour),
		}},
		{"percentage over 100", CreatePromotionCommand{
			ProductID: product.ID, Name: "Sale", DiscountType: domain.DiscountPercentage,
			DiscountValue: 120, StartDate: now, EndDate: now.Add(time.Hour),
		}},
		{"inverted window", CreatePromotionCommand{
			ProductID: product.ID, Name: "Sale", DiscountType: domain.DiscountPercentage,
			DiscountValue: 10, StartDate: now.Add(time.Hour), EndDate: now,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(tc.cmd)
			assert.ErrorIs(t, err, domain.ErrInvalidPayload)
		})
	}
}

func TestCreatePromotionForMissingProduct(t *testing.T) {
	products := newFakeProductRepo()
	promotions := newFakePromotionRepo()

	handler := NewCreatePromotionHandler(promotions, products)
	now := time.Now()

	_, err := handler.Handle(CreatePromotionCommand{
		ProductID:     99,
		Name:          "Sale",
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 10,
		StartDate:     now,
		EndDate:       now.Add(time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdatePromotionRevalidatesMergedState(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	promotions := newFakePromotionRepo()
	product := seedProduct(t, products, categories)

	now := time.Now()
	promotion, err := NewCreatePromotionHandler(promotions, products).Handle(CreatePromotionCommand{
		ProductID:     product.ID,
		Name:          "Launch",
		DiscountType:  domain.DiscountFixed,
		DiscountValue: 20,
		StartDate:     now,
		EndDate:       now.Add(24 * time.Hour),
		IsActive:      true,
	})
	require.NoError(t, err)

	handler := NewUpdatePromotionHandler(promotions)

	// Switching to percentage with the existing value 20 is fine.
	newType := domain.DiscountPercentage
	updated, err := handler.Handle(UpdatePromotionCommand{ID: promotion.ID, DiscountType: &newType})
	require.NoError(t, err)
	assert.Equal(t, domain.DiscountPercentage, updated.DiscountType)

	// But pushing the percentage over 100 is not.
	tooHigh := 150.0
	_, err = handler.Handle(UpdatePromotionCommand{ID: promotion.ID, DiscountValue: &tooHigh})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	// And shrinking the window so it inverts is rejected too.
	badEnd := now.Add(-time.Hour)
	_, err = handler.Handle(UpdatePromotionCommand{ID: promotion.ID, EndDate: &badEnd})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestUpsertSEORejectsTakenSlug(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	seo := newFakeSEORepo()
	first := seedProduct(t, products, categories)

	second, err := NewCreateProductHandler(products, categories).Handle(CreateProductCommand{
		Name:       "Mouse",
		Price:      30,
		CategoryID: first.CategoryID,
	})
	require.NoError(t, err)

	handler := NewUpsertSEOHandler(seo, products)

	_, err = handler.Handle(UpsertSEOCommand{ProductID: first.ID, URLSlug: "mechanical-keyboard"})
	require.NoError(t, err)

	_, err = handler.Handle(UpsertSEOCommand{ProductID: second.ID, URLSlug: "mechanical-keyboard"})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	// Re-upserting the same product's slug replaces the entry.
	_, err = handler.Handle(UpsertSEOCommand{ProductID: first.ID, URLSlug: "mechanical-keyboard", MetaTitle: "Keyboard"})
	assert.NoError(t, err)
}
