package domain

import "time"

// Image represents a product image. URL is either a remote reference or a
// local path produced by the image store; Order defines ascending display
// sequence and is not required to be unique.
type Image struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	URL       string    `json:"url" gorm:"not null;type:text"`
	AltText   *string   `json:"alt_text"`
	Order     int       `json:"order" gorm:"column:display_order;default:0"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Image) TableName() string {
	return "images"
}

// ImageRepository defines the contract for image data access
type ImageRepository interface {
	Create(image *Image) error
	FindByID(id uint) (*Image, error)
	// FindByProductID returns images ordered by display order, then ID.
	FindByProductID(productID uint) ([]Image, error)
	Update(image *Image) error
	Delete(id uint) error
}
