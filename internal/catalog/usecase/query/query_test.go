package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

type stubProductRepo struct {
	products   map[uint]*domain.Product
	byCategory map[uint][]domain.Product
	lastLimit  int
	lastOffset int
}

func (r *stubProductRepo) Create(*domain.Product) error                        { return nil }
func (r *stubProductRepo) CreateWithAssets(*domain.Product, *domain.SEO) error { return nil }

func (r *stubProductRepo) FindByID(id uint) (*domain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (r *stubProductRepo) FindBySKU(string) (*domain.Product, error)  { return nil, domain.ErrNotFound }
func (r *stubProductRepo) FindBySlug(string) (*domain.Product, error) { return nil, domain.ErrNotFound }

func (r *stubProductRepo) FindAll(limit, offset int) ([]domain.Product, error) {
	r.lastLimit, r.lastOffset = limit, offset
	return nil, nil
}

func (r *stubProductRepo) FindByCategoryID(categoryID uint, limit, offset int) ([]domain.Product, error) {
	r.lastLimit, r.lastOffset = limit, offset
	return r.byCategory[categoryID], nil
}

func (r *stubProductRepo) Update(*domain.Product) error { return nil }
func (r *stubProductRepo) DeleteCascade(uint) error     { return nil }
func (r *stubProductRepo) Count() (int64, error)        { return int64(len(r.products)), nil }

type stubCategoryRepo struct {
	categories map[uint]*domain.Category
}

func (r *stubCategoryRepo) Create(*domain.Category) error { return nil }

func (r *stubCategoryRepo) FindByID(id uint) (*domain.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func (r *stubCategoryRepo) FindByName(name string) (*domain.Category, error) {
	for _, category := range r.categories {
		if category.Name == name {
			return category, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubCategoryRepo) FindAll() ([]domain.Category, error)  { return nil, nil }
func (r *stubCategoryRepo) Update(*domain.Category) error        { return nil }
func (r *stubCategoryRepo) Delete(uint) error                    { return nil }
func (r *stubCategoryRepo) CountProducts(uint) (int64, error)    { return 0, nil }

type stubPromotionRepo struct {
	promotions []domain.Promotion
}

func (r *stubPromotionRepo) Create(*domain.Promotion) error { return nil }
func (r *stubPromotionRepo) FindByID(uint) (*domain.Promotion, error) {
	return nil, domain.ErrNotFound
}

func (r *stubPromotionRepo) FindByProductID(productID uint) ([]domain.Promotion, error) {
	var out []domain.Promotion
	for _, promotion := range r.promotions {
		if promotion.ProductID == productID {
			out = append(out, promotion)
		}
	}
	return out, nil
}

func (r *stubPromotionRepo) FindActive(at time.Time) ([]domain.Promotion, error) {
	var out []domain.Promotion
	for _, promotion := range r.promotions {
		if promotion.ApplicableAt(at) {
			out = append(out, promotion)
		}
	}
	return out, nil
}

func (r *stubPromotionRepo) Update(*domain.Promotion) error { return nil }
func (r *stubPromotionRepo) Delete(uint) error              { return nil }

func TestListProductsClampsPaging(t *testing.T) {
	repo := &stubProductRepo{}
	handler := NewListProductsHandler(repo)

	_, err := handler.Handle(ListProductsQuery{Limit: 0, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastLimit)
	assert.Equal(t, 0, repo.lastOffset)

	_, err = handler.Handle(ListProductsQuery{Limit: 500, Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastLimit)
	assert.Equal(t, 10, repo.lastOffset)
}

func TestFindByCategoryResolvesNumericAndName(t *testing.T) {
	categories := &stubCategoryRepo{categories: map[uint]*domain.Category{
		7: {ID: 7, Name: "Audio"},
	}}
	products := &stubProductRepo{byCategory: map[uint][]domain.Product{
		7: {{ID: 1, Name: "Headphones", CategoryID: 7}},
	}}

	handler := NewFindByCategoryHandler(products, categories)

	byID, err := handler.Handle(FindByCategoryQuery{Category: "7"})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "Headphones", byID[0].Name)

	byName, err := handler.Handle(FindByCategoryQuery{Category: "Audio"})
	require.NoError(t, err)
	assert.Equal(t, byID, byName)

	_, err = handler.Handle(FindByCategoryQuery{Category: "Garden"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetPriceAppliesPromotionAndQuantity(t *testing.T) {
	now := time.Now()
	products := &stubProductRepo{products: map[uint]*domain.Product{
		1: {ID: 1, Name: "Keyboard", Price: 100, Discount: 10},
	}}
	promotions := &stubPromotionRepo{promotions: []domain.Promotion{
		{
			ID: 1, ProductID: 1, Name: "Sale",
			DiscountType: domain.DiscountPercentage, DiscountValue: 50,
			StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour), IsActive: true,
		},
	}}

	handler := NewGetPriceHandler(products, promotions, nil)

	quote, err := handler.Handle(context.Background(), GetPriceQuery{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	// Flat discount brings 100 to 90, the 50% promotion to 45, times 3.
	assert.InDelta(t, 45.0, quote.UnitPrice, 1e-9)
	assert.InDelta(t, 135.0, quote.TotalPrice, 1e-9)
	assert.Equal(t, 3, quote.Quantity)
	require.NotNil(t, quote.PromotionID)
	assert.Equal(t, uint(1), *quote.PromotionID)
}

func TestGetPriceMissingProduct(t *testing.T) {
	handler := NewGetPriceHandler(&stubProductRepo{}, &stubPromotionRepo{}, nil)

	_, err := handler.Handle(context.Background(), GetPriceQuery{ProductID: 9})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListProductPromotionsFiltersWindowAndFlag(t *testing.T) {
	now := time.Now()
	promotions := &stubPromotionRepo{promotions: []domain.Promotion{
		{ID: 1, ProductID: 1, DiscountType: domain.DiscountFixed, DiscountValue: 5,
			StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour), IsActive: true},
		{ID: 2, ProductID: 1, DiscountType: domain.DiscountFixed, DiscountValue: 5,
			StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour), IsActive: false},
		{ID: 3, ProductID: 1, DiscountType: domain.DiscountFixed, DiscountValue: 5,
			StartDate: now.Add(time.Hour), EndDate: now.Add(2 * time.Hour), IsActive: true},
		{ID: 4, ProductID: 2, DiscountType: domain.DiscountFixed, DiscountValue: 5,
			StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour), IsActive: true},
	}}

	handler := NewListProductPromotionsHandler(promotions)

	applicable, err := handler.Handle(ListProductPromotionsQuery{ProductID: 1, AsOf: now})
	require.NoError(t, err)
	require.Len(t, applicable, 1)
	assert.Equal(t, uint(1), applicable[0].ID)
}
