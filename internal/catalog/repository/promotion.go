package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

type GormPromotionRepository struct {
	db *gorm.DB
}

func NewGormPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

func (r *GormPromotionRepository) Create(promotion *domain.Promotion) error {
	return r.db.Create(promotion).Error
}

func (r *GormPromotionRepository) FindByID(id uint) (*domain.Promotion, error) {
	var promotion domain.Promotion
	err := r.db.First(&promotion, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *GormPromotionRepository) FindByProductID(productID uint) ([]domain.Promotion, error) {
	var promotions []domain.Promotion
	err := r.db.Where("product_id = ?", productID).Find(&promotions).Error
	return promotions, err
}

// FindActive returns active promotions whose window contains the instant.
// Both listing endpoints use this filter so the policy stays consistent.
func (r *GormPromotionRepository) FindActive(at time.Time) ([]domain.Promotion, error) {
	var promotions []domain.Promotion
	err := r.db.
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, at, at).
		Find(&promotions).Error
	return promotions, err
}

func (r *GormPromotionRepository) Update(promotion *domain.Promotion) error {
	return r.db.Save(promotion).Error
}

func (r *GormPromotionRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Promotion{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
