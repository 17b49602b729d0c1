package repository

import (
	"gorm.io/gorm"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Create(review *domain.Review) error {
	return r.db.Create(review).Error
}

func (r *GormReviewRepository) FindByProductID(productID uint) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.Where("product_id = ?", productID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *GormReviewRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
