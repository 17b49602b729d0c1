package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Create(category *domain.Category) error {
	return r.db.Create(category).Error
}

func (r *GormCategoryRepository) FindByID(id uint) (*domain.Category, error) {
	var category domain.Category
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindByName matches case-insensitively so storefront paths like
// /products/category/stickers resolve against "Stickers".
func (r *GormCategoryRepository) FindByName(name string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindAll() ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *GormCategoryRepository) Update(category *domain.Category) error {
	return r.db.Save(category).Error
}

// Delete enforces the dependent check server-side: a category that still has
// products returns domain.ErrCategoryHasProducts instead of a raw constraint
// violation.
func (r *GormCategoryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var category domain.Category
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&domain.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrCategoryHasProducts
		}

		return tx.Delete(&domain.Category{}, id).Error
	})
}

func (r *GormCategoryRepository) CountProducts(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}
