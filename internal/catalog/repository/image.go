package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

type GormImageRepository struct {
	db *gorm.DB
}

func NewGormImageRepository(db *gorm.DB) *GormImageRepository {
	return &GormImageRepository{db: db}
}

func (r *GormImageRepository) Create(image *domain.Image) error {
	return r.db.Create(image).Error
}

func (r *GormImageRepository) FindByID(id uint) (*domain.Image, error) {
	var image domain.Image
	err := r.db.First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *GormImageRepository) FindByProductID(productID uint) ([]domain.Image, error) {
	var images []domain.Image
	err := r.db.
		Where("product_id = ?", productID).
		Order("display_order, id").
		Find(&images).Error
	return images, err
}

func (r *GormImageRepository) Update(image *domain.Image) error {
	return r.db.Save(image).Error
}

func (r *GormImageRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Image{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
