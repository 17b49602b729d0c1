package domain

import (
	"context"
	"time"
)

// StockRecord is one row of the per-location stock ledger. It is independent
// of Product.Stock and Variant.Stock; the three counters are deliberately not
// synchronized and callers pick the one matching their use case.
type StockRecord struct {
	ID          int64     `json:"id" db:"id"`
	ProductID   int64     `json:"product_id" db:"product_id"`
	VariantID   *int64    `json:"variant_id" db:"variant_id"`
	Quantity    int       `json:"quantity" db:"quantity"`
	Location    *string   `json:"location" db:"location"`
	LastUpdated time.Time `json:"last_updated" db:"last_updated"`
}

// StockRepository defines the contract for the stock ledger
type StockRepository interface {
	// Upsert sets the quantity for the (product, variant, location) key,
	// stamping LastUpdated, and creates the row when absent.
	Upsert(ctx context.Context, record *StockRecord) error
	ListByProduct(ctx context.Context, productID int64) ([]StockRecord, error)
	DeleteByProduct(ctx context.Context, productID int64) error
}
