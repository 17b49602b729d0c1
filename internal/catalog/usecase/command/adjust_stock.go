package command

import (
	"context"
	"fmt"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// AdjustStockCommand sets the ledger quantity for a (product, variant,
// location) key.
type AdjustStockCommand struct {
	ProductID uint
	VariantID *int64
	Location  *string
	Quantity  int
}

// AdjustStockHandler handles stock ledger adjustments
type AdjustStockHandler struct {
	stock    domain.StockRepository
	products domain.ProductRepository
}

// NewAdjustStockHandler creates a new adjust stock handler
func NewAdjustStockHandler(stock domain.StockRepository, products domain.ProductRepository) *AdjustStockHandler {
	return &AdjustStockHandler{stock: stock, products: products}
}

// Handle executes the adjust stock command
func (h *AdjustStockHandler) Handle(ctx context.Context, cmd AdjustStockCommand) (*domain.StockRecord, error) {
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", domain.ErrInvalidPayload)
	}
	if _, err := h.products.FindByID(cmd.ProductID); err != nil {
		return nil, fmt.Errorf("product %d: %w", cmd.ProductID, err)
	}

	record := &domain.StockRecord{
		ProductID: int64(cmd.ProductID),
		VariantID: cmd.VariantID,
		Quantity:  cmd.Quantity,
		Location:  cmd.Location,
	}

	if err := h.stock.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	return record, nil
}
