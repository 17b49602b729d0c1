package command

import (
	"context"
	"time"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// In-memory repositories for handler tests.

type fakeProductRepo struct {
	products map[uint]*domain.Product
	nextID   uint
	deleted  []uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uint]*domain.Product), nextID: 1}
}

func (r *fakeProductRepo) Create(product *domain.Product) error {
	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) CreateWithAssets(product *domain.Product, seo *domain.SEO) error {
	return r.Create(product)
}

func (r *fakeProductRepo) FindByID(id uint) (*domain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) FindBySKU(sku string) (*domain.Product, error) {
	for _, product := range r.products {
		if product.SKU == sku {
			clone := *product
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeProductRepo) FindBySlug(slug string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (r *fakeProductRepo) FindAll(limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	for _, product := range r.products {
		out = append(out, *product)
	}
	return out, nil
}

func (r *fakeProductRepo) FindByCategoryID(categoryID uint, limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	for _, product := range r.products {
		if product.CategoryID == categoryID {
			out = append(out, *product)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(product *domain.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) DeleteCascade(id uint) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeProductRepo) Count() (int64, error) {
	return int64(len(r.products)), nil
}

type fakeCategoryRepo struct {
	categories map[uint]*domain.Category
	productCnt map[uint]int64
	nextID     uint
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[uint]*domain.Category),
		productCnt: make(map[uint]int64),
		nextID:     1,
	}
}

func (r *fakeCategoryRepo) Create(category *domain.Category) error {
	category.ID = r.nextID
	r.nextID++
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(id uint) (*domain.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *category
	return &clone, nil
}

func (r *fakeCategoryRepo) FindByName(name string) (*domain.Category, error) {
	for _, category := range r.categories {
		if category.Name == name {
			clone := *category
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeCategoryRepo) FindAll() ([]domain.Category, error) {
	var out []domain.Category
	for _, category := range r.categories {
		out = append(out, *category)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(category *domain.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) Delete(id uint) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrNotFound
	}
	if r.productCnt[id] > 0 {
		return domain.ErrCategoryHasProducts
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) CountProducts(id uint) (int64, error) {
	return r.productCnt[id], nil
}

type fakePromotionRepo struct {
	promotions map[uint]*domain.Promotion
	nextID     uint
}

func newFakePromotionRepo() *fakePromotionRepo {
	return &fakePromotionRepo{promotions: make(map[uint]*domain.Promotion), nextID: 1}
}

func (r *fakePromotionRepo) Create(promotion *domain.Promotion) error {
	promotion.ID = r.nextID
	r.nextID++
	r.promotions[promotion.ID] = promotion
	return nil
}

func (r *fakePromotionRepo) FindByID(id uint) (*domain.Promotion, error) {
	promotion, ok := r.promotions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *promotion
	return &clone, nil
}

func (r *fakePromotionRepo) FindByProductID(productID uint) ([]domain.Promotion, error) {
	var out []domain.Promotion
	for _, promotion := range r.promotions {
		if promotion.ProductID == productID {
			out = append(out, *promotion)
		}
	}
	return out, nil
}

func (r *fakePromotionRepo) FindActive(at time.Time) ([]domain.Promotion, error) {
	var out []domain.Promotion
	for _, promotion := range r.promotions {
		if promotion.ApplicableAt(at) {
			out = append(out, *promotion)
		}
	}
	return out, nil
}

func (r *fakePromotionRepo) Update(promotion *domain.Promotion) error {
	if _, ok := r.promotions[promotion.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *promotion
	r.promotions[promotion.ID] = &clone
	return nil
}

func (r *fakePromotionRepo) Delete(id uint) error {
	if _, ok := r.promotions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.promotions, id)
	return nil
}

type fakeSEORepo struct {
	entries map[uint]*domain.SEO // keyed by product ID
}

func newFakeSEORepo() *fakeSEORepo {
	return &fakeSEORepo{entries: make(map[uint]*domain.SEO)}
}

func (r *fakeSEORepo) Upsert(seo *domain.SEO) error {
	r.entries[seo.ProductID] = seo
	return nil
}

func (r *fakeSEORepo) FindByProductID(productID uint) (*domain.SEO, error) {
	seo, ok := r.entries[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *seo
	return &clone, nil
}

func (r *fakeSEORepo) FindBySlug(slug string) (*domain.SEO, error) {
	for _, seo := range r.entries {
		if seo.URLSlug == slug {
			clone := *seo
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeSEORepo) Delete(id uint) error {
	for productID, seo := range r.entries {
		if seo.ID == id {
			delete(r.entries, productID)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeStockRepo struct {
	records []domain.StockRecord
	deleted []int64
}

func (r *fakeStockRepo) Upsert(ctx context.Context, record *domain.StockRecord) error {
	record.LastUpdated = time.Now()
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeStockRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.StockRecord, error) {
	var out []domain.StockRecord
	for _, record := range r.records {
		if record.ProductID == productID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) DeleteByProduct(ctx context.Context, productID int64) error {
	r.deleted = append(r.deleted, productID)
	var kept []domain.StockRecord
	for _, record := range r.records {
		if record.ProductID != productID {
			kept = append(kept, record)
		}
	}
	r.records = kept
	return nil
}
