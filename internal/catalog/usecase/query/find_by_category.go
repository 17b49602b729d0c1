package query

import (
	"strconv"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// FindByCategoryQuery looks up products by a category reference that may be a
// numeric ID or a category name.
type FindByCategoryQuery struct {
	Category string
	Limit    int
	Offset   int
}

// FindByCategoryHandler handles find by category query
type FindByCategoryHandler struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
}

// NewFindByCategoryHandler creates a new find by category handler
func NewFindByCategoryHandler(products domain.ProductRepository, categories domain.CategoryRepository) *FindByCategoryHandler {
	return &FindByCategoryHandler{products: products, categories: categories}
}

// Handle executes the query. A purely numeric reference is tried as an ID
// first; anything else resolves by case-insensitive name. An unresolvable
// reference returns domain.ErrNotFound.
func (h *FindByCategoryHandler) Handle(query FindByCategoryQuery) ([]domain.Product, error) {
	if query.Limit <= 0 || query.Limit > 100 {
		query.Limit = 20
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	var category *domain.Category
	var err error

	if id, convErr := strconv.ParseUint(query.Category, 10, 32); convErr == nil {
		category, err = h.categories.FindByID(uint(id))
	} else {
		category, err = h.categories.FindByName(query.Category)
	}
	if err != nil {
		return nil, err
	}

	return h.products.FindByCategoryID(category.ID, query.Limit, query.Offset)
}
