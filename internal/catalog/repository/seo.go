package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

type GormSEORepository struct {
	db *gorm.DB
}

func NewGormSEORepository(db *gorm.DB) *GormSEORepository {
	return &GormSEORepository{db: db}
}

// Upsert writes the SEO entry for a product, replacing the existing one.
func (r *GormSEORepository) Upsert(seo *domain.SEO) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"url_slug", "meta_title", "meta_description", "keywords", "updated_at",
		}),
	}).Create(seo).Error
}

func (r *GormSEORepository) FindByProductID(productID uint) (*domain.SEO, error) {
	var seo domain.SEO
	err := r.db.Where("product_id = ?", productID).First(&seo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &seo, nil
}

func (r *GormSEORepository) FindBySlug(slug string) (*domain.SEO, error) {
	var seo domain.SEO
	err := r.db.Where("url_slug = ?", slug).First(&seo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &seo, nil
}

func (r *GormSEORepository) Delete(id uint) error {
	result := r.db.Delete(&domain.SEO{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
