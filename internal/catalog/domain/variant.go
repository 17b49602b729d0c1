package domain

import "time"

// Variant represents one purchasable permutation of a product (size, color,
// material). Stock here is independent of Product.Stock and the stock ledger.
type Variant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Size      *string   `json:"size"`
	Color     *string   `json:"color"`
	Material  *string   `json:"material"`
	Stock     int       `json:"stock" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Variant) TableName() string {
	return "variants"
}

// VariantRepository defines the contract for variant data access
type VariantRepository interface {
	Create(variant *Variant) error
	FindByID(id uint) (*Variant, error)
	FindByProductID(productID uint) ([]Variant, error)
	Update(variant *Variant) error
	Delete(id uint) error
}
