package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

// CreateWithAssets writes the product, its inline variants/images and the SEO
// entry in one transaction so a partial failure leaves no orphan rows.
func (r *GormProductRepository) CreateWithAssets(product *domain.Product, seo *domain.SEO) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if seo != nil {
			seo.ProductID = product.ID
			if err := tx.Create(seo).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindBySKU(sku string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("sku = ?", sku).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindBySlug(slug string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.
		Joins("JOIN seo_entries ON seo_entries.product_id = products.id").
		Where("seo_entries.url_slug = ?", slug).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByCategoryID(categoryID uint, limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("category_id = ?", categoryID).Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

// DeleteCascade removes the product and every dependent row in one
// transaction. Variants and Images also cascade at the schema level; Reviews,
// SEO and Promotions have no schema cascade and are deleted here so they never
// dangle.
func (r *GormProductRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var product domain.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		for _, dependent := range []interface{}{
			&domain.Variant{},
			&domain.Image{},
			&domain.Review{},
			&domain.SEO{},
			&domain.Promotion{},
		} {
			if err := tx.Where("product_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&domain.Product{}, id).Error
	})
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}
