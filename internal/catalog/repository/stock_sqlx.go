package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

const stockSchema = `
CREATE TABLE IF NOT EXISTS stock_records (
	id BIGSERIAL PRIMARY KEY,
	product_id BIGINT NOT NULL,
	variant_id BIGINT,
	quantity INTEGER NOT NULL DEFAULT 0,
	location TEXT,
	last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_stock_records_product ON stock_records(product_id);
`

// SqlxStockRepository is the per-location stock ledger, kept on plain SQL
// rather than the ORM.
type SqlxStockRepository struct {
	db *sqlx.DB
}

func NewSqlxStockRepository(db *sqlx.DB) *SqlxStockRepository {
	return &SqlxStockRepository{db: db}
}

// EnsureSchema creates the ledger table when absent.
func (r *SqlxStockRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, stockSchema); err != nil {
		return fmt.Errorf("failed to ensure stock schema: %w", err)
	}
	return nil
}

// Upsert sets the quantity for the (product, variant, location) key and
// stamps last_updated. The row is created when missing.
func (r *SqlxStockRepository) Upsert(ctx context.Context, record *domain.StockRecord) error {
	record.LastUpdated = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		UPDATE stock_records
		SET quantity = $1, last_updated = $2
		WHERE product_id = $3
		  AND variant_id IS NOT DISTINCT FROM $4
		  AND location IS NOT DISTINCT FROM $5`,
		record.Quantity, record.LastUpdated, record.ProductID, record.VariantID, record.Location,
	)
	if err != nil {
		return fmt.Errorf("failed to update stock record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	err = r.db.QueryRowxContext(ctx, `
		INSERT INTO stock_records (product_id, variant_id, quantity, location, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		record.ProductID, record.VariantID, record.Quantity, record.Location, record.LastUpdated,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("failed to insert stock record: %w", err)
	}
	return nil
}

func (r *SqlxStockRepository) ListByProduct(ctx context.Context, productID int64) ([]domain.StockRecord, error) {
	records := []domain.StockRecord{}
	err := r.db.SelectContext(ctx, &records, `
		SELECT id, product_id, variant_id, quantity, location, last_updated
		FROM stock_records
		WHERE product_id = $1
		ORDER BY id`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock records: %w", err)
	}
	return records, nil
}

func (r *SqlxStockRepository) DeleteByProduct(ctx context.Context, productID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM stock_records WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("failed to delete stock records: %w", err)
	}
	return nil
}
