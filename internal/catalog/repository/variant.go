package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

type GormVariantRepository struct {
	db *gorm.DB
}

func NewGormVariantRepository(db *gorm.DB) *GormVariantRepository {
	return &GormVariantRepository{db: db}
}

func (r *GormVariantRepository) Create(variant *domain.Variant) error {
	return r.db.Create(variant).Error
}

func (r *GormVariantRepository) FindByID(id uint) (*domain.Variant, error) {
	var variant domain.Variant
	err := r.db.First(&variant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *GormVariantRepository) FindByProductID(productID uint) ([]domain.Variant, error) {
	var variants []domain.Variant
	err := r.db.Where("product_id = ?", productID).Find(&variants).Error
	return variants, err
}

func (r *GormVariantRepository) Update(variant *domain.Variant) error {
	return r.db.Save(variant).Error
}

func (r *GormVariantRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Variant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
