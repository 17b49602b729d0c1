package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

func TestCreateCategoryRequiresName(t *testing.T) {
	handler := NewCreateCategoryHandler(newFakeCategoryRepo())

	_, err := handler.Handle(CreateCategoryCommand{})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestDeleteCategoryWithProductsConflicts(t *testing.T) {
	categories := newFakeCategoryRepo()
	category := seedCategory(t, categories, "Electronics")
	categories.productCnt[category.ID] = 3

	handler := NewDeleteCategoryHandler(categories)

	err := handler.Handle(DeleteCategoryCommand{ID: category.ID})
	assert.ErrorIs(t, err, domain.ErrCategoryHasProducts)

	// The category survives the failed delete.
	_, err = categories.FindByID(category.ID)
	assert.NoError(t, err)
}

func TestDeleteEmptyCategorySucceeds(t *testing.T) {
	categories := newFakeCategoryRepo()
	category := seedCategory(t, categories, "Empty")

	handler := NewDeleteCategoryHandler(categories)
	require.NoError(t, handler.Handle(DeleteCategoryCommand{ID: category.ID}))

	_, err := categories.FindByID(category.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateCategoryMergesFields(t *testing.T) {
	categories := newFakeCategoryRepo()
	category := seedCategory(t, categories, "Electronics")

	handler := NewUpdateCategoryHandler(categories)

	featured := true
	updated, err := handler.Handle(UpdateCategoryCommand{ID: category.ID, Featured: &featured})
	require.NoError(t, err)

	assert.Equal(t, "Electronics", updated.Name)
	assert.True(t, updated.Featured)
}
