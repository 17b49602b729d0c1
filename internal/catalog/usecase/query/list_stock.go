package query

import (
	"context"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// ListStockQuery lists the stock ledger rows of a product
type ListStockQuery struct {
	ProductID uint
}

// ListStockHandler handles list stock query
type ListStockHandler struct {
	repo domain.StockRepository
}

// NewListStockHandler creates a new list stock handler
func NewListStockHandler(repo domain.StockRepository) *ListStockHandler {
	return &ListStockHandler{repo: repo}
}

// Handle executes the list stock query
func (h *ListStockHandler) Handle(ctx context.Context, query ListStockQuery) ([]domain.StockRecord, error) {
	return h.repo.ListByProduct(ctx, int64(query.ProductID))
}
