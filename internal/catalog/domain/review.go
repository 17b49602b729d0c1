package domain

import "time"

// Review represents a customer review. UserID is an unauthenticated
// reference supplied by the storefront.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:text"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Review) TableName() string {
	return "reviews"
}

// ReviewRepository defines the contract for review data access
type ReviewRepository interface {
	Create(review *Review) error
	FindByProductID(productID uint) ([]Review, error)
	Delete(id uint) error
}
