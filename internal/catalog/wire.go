//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	httpDelivery "github.com/yealoro/shop-cart-sub000/internal/catalog/delivery/http"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/storage"
	"github.com/yealoro/shop-cart-sub000/kafka"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideCategoryRepository,
	ProvideVariantRepository,
	ProvideImageRepository,
	ProvideReviewRepository,
	ProvideSEORepository,
	ProvidePromotionRepository,
	ProvideStockRepository,
)

var HandlerSet = wire.NewSet(
	httpDelivery.NewProductHandler,
	httpDelivery.NewCategoryHandler,
	httpDelivery.NewVariantHandler,
	httpDelivery.NewImageHandler,
	httpDelivery.NewReviewHandler,
	httpDelivery.NewPromotionHandler,
	httpDelivery.NewStockHandler,
)

// InitializeHandlers initializes all HTTP handlers with their dependencies.
// cache and publisher may be nil when Redis or Kafka are not configured.
func InitializeHandlers(
	db *gorm.DB,
	ledger *sqlx.DB,
	store *storage.ImageStore,
	cache *redis.Client,
	publisher *kafka.Publisher,
	metrics *httpDelivery.Metrics,
	auth *httpDelivery.AdminAuth,
) (*Handlers, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		NewHandlers,
	)
	return nil, nil
}
