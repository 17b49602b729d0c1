package command

import (
	"context"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/pkg/logger"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles product deletion
type DeleteProductHandler struct {
	products domain.ProductRepository
	stock    domain.StockRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(products domain.ProductRepository, stock domain.StockRepository) *DeleteProductHandler {
	return &DeleteProductHandler{products: products, stock: stock}
}

// Handle executes the delete product command. Variants, images, reviews, SEO
// and promotions go in one transaction; the stock ledger lives in a separate
// store, so its rows are removed afterwards and a failure there is logged
// rather than resurrecting the product.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := h.products.DeleteCascade(cmd.ID); err != nil {
		return err
	}

	if h.stock != nil {
		if err := h.stock.DeleteByProduct(ctx, int64(cmd.ID)); err != nil {
			logger.Warn(ctx).
				Err(err).
				Uint("product_id", cmd.ID).
				Msg("Failed to clean up stock ledger for deleted product")
		}
	}

	return nil
}
