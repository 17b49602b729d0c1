package domain

import "time"

// DiscountType enumerates how a promotion's DiscountValue is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED_AMOUNT"
)

// Valid reports whether the discount type is a known value.
func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

// Promotion represents a time-windowed discount on a single product.
type Promotion struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	ProductID     uint         `json:"product_id" gorm:"not null;index"`
	Name          string       `json:"name" gorm:"not null"`
	DiscountType  DiscountType `json:"discount_type" gorm:"not null"`
	DiscountValue float64      `json:"discount_value" gorm:"not null"`
	StartDate     time.Time    `json:"start_date" gorm:"not null"`
	EndDate       time.Time    `json:"end_date" gorm:"not null"`
	IsActive      bool         `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TableName specifies the table name
func (Promotion) TableName() string {
	return "promotions"
}

// ApplicableAt reports whether the promotion is eligible at the given
// instant. Window boundaries are inclusive.
func (p *Promotion) ApplicableAt(t time.Time) bool {
	return p.IsActive && !t.Before(p.StartDate) && !t.After(p.EndDate)
}

// PromotionRepository defines the contract for promotion data access
type PromotionRepository interface {
	Create(promotion *Promotion) error
	FindByID(id uint) (*Promotion, error)
	FindByProductID(productID uint) ([]Promotion, error)
	// FindActive returns promotions with IsActive set whose window contains
	// the given instant.
	FindActive(at time.Time) ([]Promotion, error)
	Update(promotion *Promotion) error
	Delete(id uint) error
}
