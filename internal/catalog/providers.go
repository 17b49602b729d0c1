package catalog

import (
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/repository"
)

// ProvideProductRepository provides the product repository with tracing
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepositoryWithTracing(db)
}

// ProvideCategoryRepository provides the category repository
func ProvideCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return repository.NewGormCategoryRepository(db)
}

// ProvideVariantRepository provides the variant repository
func ProvideVariantRepository(db *gorm.DB) domain.VariantRepository {
	return repository.NewGormVariantRepository(db)
}

// ProvideImageRepository provides the image repository
func ProvideImageRepository(db *gorm.DB) domain.ImageRepository {
	return repository.NewGormImageRepository(db)
}

// ProvideReviewRepository provides the review repository
func ProvideReviewRepository(db *gorm.DB) domain.ReviewRepository {
	return repository.NewGormReviewRepository(db)
}

// ProvideSEORepository provides the SEO repository
func ProvideSEORepository(db *gorm.DB) domain.SEORepository {
	return repository.NewGormSEORepository(db)
}

// ProvidePromotionRepository provides the promotion repository
func ProvidePromotionRepository(db *gorm.DB) domain.PromotionRepository {
	return repository.NewGormPromotionRepository(db)
}

// ProvideStockRepository provides the sqlx-backed stock ledger repository
func ProvideStockRepository(ledger *sqlx.DB) domain.StockRepository {
	return repository.NewSqlxStockRepository(ledger)
}
