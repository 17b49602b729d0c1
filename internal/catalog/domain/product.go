package domain

import "time"

// Product represents the product entity and the root of the catalog
// aggregate. Variants and Images are schema-level cascades; Reviews, SEO,
// Promotions and stock ledger rows are removed transactionally on delete.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	SKU         string  `json:"sku" gorm:"uniqueIndex"`
	Price       float64 `json:"price" gorm:"not null"`
	// Discount is a flat amount subtracted from Price before any promotion
	// applies.
	Discount     float64   `json:"discount" gorm:"default:0"`
	Stock        int       `json:"stock" gorm:"not null;default:1"`
	Brand        string    `json:"brand"`
	Manufacturer string    `json:"manufacturer"`
	Supplier     string    `json:"supplier"`
	CategoryID   uint      `json:"category_id" gorm:"not null;index"`
	Variants     []Variant `json:"variants,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Images       []Image   `json:"images,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// EffectiveBasePrice is the list price after the product's own flat discount,
// floored at zero. Promotions apply on top of this.
func (p *Product) EffectiveBasePrice() float64 {
	base := p.Price - p.Discount
	if base < 0 {
		return 0
	}
	return base
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	// CreateWithAssets persists the product together with its initial
	// variants, images and SEO entry in a single transaction.
	CreateWithAssets(product *Product, seo *SEO) error
	FindByID(id uint) (*Product, error)
	FindBySKU(sku string) (*Product, error)
	FindBySlug(slug string) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	FindByCategoryID(categoryID uint, limit, offset int) ([]Product, error)
	Update(product *Product) error
	// DeleteCascade removes the product and every dependent row (variants,
	// images, reviews, SEO, promotions) in one transaction.
	DeleteCascade(id uint) error
	Count() (int64, error)
}
