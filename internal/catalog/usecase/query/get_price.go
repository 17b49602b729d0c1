package query

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/pricing"
	"github.com/yealoro/shop-cart-sub000/pkg/logger"
)

// priceCacheTTL keeps quotes fresh enough that a promotion flipping on or off
// is visible within a minute.
const priceCacheTTL = time.Minute

// GetPriceQuery computes the sale price of a product for a quantity
type GetPriceQuery struct {
	ProductID uint
	Quantity  int
}

// GetPriceHandler handles the price query, with an optional redis cache in
// front of the computation.
type GetPriceHandler struct {
	products   domain.ProductRepository
	promotions domain.PromotionRepository
	cache      *redis.Client
}

// NewGetPriceHandler creates a new get price handler. cache may be nil.
func NewGetPriceHandler(products domain.ProductRepository, promotions domain.PromotionRepository, cache *redis.Client) *GetPriceHandler {
	return &GetPriceHandler{products: products, promotions: promotions, cache: cache}
}

// Handle executes the price query. The product's flat discount applies first,
// then the single applicable promotion resolved as of now; the total
// multiplies by quantity.
func (h *GetPriceHandler) Handle(ctx context.Context, query GetPriceQuery) (*pricing.Quote, error) {
	if query.Quantity < 1 {
		query.Quantity = 1
	}

	cacheKey := fmt.Sprintf("price:%d:%d", query.ProductID, query.Quantity)
	if h.cache != nil {
		if data, err := h.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var quote pricing.Quote
			if err := json.Unmarshal(data, &quote); err == nil {
				return &quote, nil
			}
		}
	}

	product, err := h.products.FindByID(query.ProductID)
	if err != nil {
		return nil, err
	}

	promotions, err := h.promotions.FindByProductID(query.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to load promotions: %w", err)
	}

	quote := pricing.QuoteProduct(product, promotions, query.Quantity, time.Now())

	if h.cache != nil {
		if data, err := json.Marshal(quote); err == nil {
			if err := h.cache.Set(ctx, cacheKey, data, priceCacheTTL).Err(); err != nil {
				logger.Warn(ctx).Err(err).Str("key", cacheKey).Msg("Failed to cache price quote")
			}
		}
	}

	return &quote, nil
}
