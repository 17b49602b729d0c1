package domain

import "time"

// SEO holds search metadata for a product. URLSlug backs the storefront's
// /products/slug/:slug lookup.
type SEO struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	ProductID       uint      `json:"product_id" gorm:"not null;uniqueIndex"`
	URLSlug         string    `json:"url_slug" gorm:"uniqueIndex;not null"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	Keywords        string    `json:"keywords" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (SEO) TableName() string {
	return "seo_entries"
}

// SEORepository defines the contract for SEO metadata access
type SEORepository interface {
	// Upsert creates or replaces the SEO entry for the product.
	Upsert(seo *SEO) error
	FindByProductID(productID uint) (*SEO, error)
	FindBySlug(slug string) (*SEO, error)
	Delete(id uint) error
}
