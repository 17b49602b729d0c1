package domain

import "time"

// Category represents a product category. Categories form a tree via
// ParentCategoryID.
type Category struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null;index"`
	ParentCategoryID *uint     `json:"parent_category_id" gorm:"index"`
	Featured         bool      `json:"featured" gorm:"default:false"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	Create(category *Category) error
	FindByID(id uint) (*Category, error)
	FindByName(name string) (*Category, error)
	FindAll() ([]Category, error)
	Update(category *Category) error
	// Delete removes the category. It returns ErrCategoryHasProducts when
	// at least one product still references it.
	Delete(id uint) error
	CountProducts(id uint) (int64, error)
}
