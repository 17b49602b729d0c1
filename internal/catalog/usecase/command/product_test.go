package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

func seedCategory(t *testing.T, categories *fakeCategoryRepo, name string) *domain.Category {
	t.Helper()
	category := &domain.Category{Name: name}
	require.NoError(t, categories.Create(category))
	return category
}

func TestCreateProductDefaultsStockToOne(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	category := seedCategory(t, categories, "Electronics")

	handler := NewCreateProductHandler(products, categories)

	product, err := handler.Handle(CreateProductCommand{
		Name:       "Keyboard",
		Price:      49.90,
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, product.Stock)
	assert.NotZero(t, product.ID)
}

func TestCreateProductRejectsMissingCategory(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()

	handler := NewCreateProductHandler(products, categories)

	_, err := handler.Handle(CreateProductCommand{
		Name:       "Keyboard",
		Price:      49.90,
		CategoryID: 42,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateProductRejectsInvalidPayloads(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	category := seedCategory(t, categories, "Electronics")

	handler := NewCreateProductHandler(products, categories)

	cases := []struct {
		name string
		cmd  CreateProductCommand
	}{
		{"empty name", CreateProductCommand{Price: 10, CategoryID: category.ID}},
		{"negative price", CreateProductCommand{Name: "X", Price: -1, CategoryID: category.ID}},
		{"negative discount", CreateProductCommand{Name: "X", Price: 10, Discount: -1, CategoryID: category.ID}},
		{"missing category", CreateProductCommand{Name: "X", Price: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(tc.cmd)
			assert.ErrorIs(t, err, domain.ErrInvalidPayload)
		})
	}
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	category := seedCategory(t, categories, "Electronics")

	handler := NewCreateProductHandler(products, categories)

	_, err := handler.Handle(CreateProductCommand{Name: "A", SKU: "KB-1", Price: 10, CategoryID: category.ID})
	require.NoError(t, err)

	_, err = handler.Handle(CreateProductCommand{Name: "B", SKU: "KB-1", Price: 10, CategoryID: category.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestCreateProductRejectsInlineImagePayload(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	category := seedCategory(t, categories, "Electronics")

	handler := NewCreateProductHandler(products, categories)

	_, err := handler.Handle(CreateProductCommand{
		Name:       "Keyboard",
		Price:      10,
		CategoryID: category.ID,
		Images:     []domain.Image{{URL: "data:image/png;base64,aGVsbG8="}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestUpdateProductMergesOnlyProvidedFields(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	category := seedCategory(t, categories, "Electronics")

	create := NewCreateProductHandler(products, categories)
	product, err := create.Handle(CreateProductCommand{
		Name:        "Keyboard",
		Description: "Mechanical",
		SKU:         "KB-1",
		Price:       49.90,
		CategoryID:  category.ID,
	})
	require.NoError(t, err)

	newPrice := 39.90
	update := NewUpdateProductHandler(products, categories)
	updated, err := update.Handle(UpdateProductCommand{
		ID:    product.ID,
		Price: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, 39.90, updated.Price)
	assert.Equal(t, "Keyboard", updated.Name)
	assert.Equal(t, "Mechanical", updated.Description)
	assert.Equal(t, "KB-1", updated.SKU)
}

func TestUpdateProductRejectsTakenSKU(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	category := seedCategory(t, categories, "Electronics")

	create := NewCreateProductHandler(products, categories)
	first, err := create.Handle(CreateProductCommand{Name: "A", SKU: "KB-1", Price: 10, CategoryID: category.ID})
	require.NoError(t, err)
	_, err = create.Handle(CreateProductCommand{Name: "B", SKU: "KB-2", Price: 10, CategoryID: category.ID})
	require.NoError(t, err)

	taken := "KB-2"
	update := NewUpdateProductHandler(products, categories)
	_, err = update.Handle(UpdateProductCommand{ID: first.ID, SKU: &taken})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	// Re-submitting its own SKU is fine.
	same := "KB-1"
	_, err = update.Handle(UpdateProductCommand{ID: first.ID, SKU: &same})
	assert.NoError(t, err)
}

func TestDeleteProductRemovesStockLedgerRows(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	category := seedCategory(t, categories, "Electronics")

	create := NewCreateProductHandler(products, categories)
	product, err := create.Handle(CreateProductCommand{Name: "Keyboard", Price: 10, CategoryID: category.ID})
	require.NoError(t, err)

	stock := &fakeStockRepo{}
	require.NoError(t, stock.Upsert(context.Background(), &domain.StockRecord{
		ProductID: int64(product.ID),
		Quantity:  5,
	}))

	del := NewDeleteProductHandler(products, stock)
	require.NoError(t, del.Handle(context.Background(), DeleteProductCommand{ID: product.ID}))

	assert.Equal(t, []uint{product.ID}, products.deleted)
	assert.Equal(t, []int64{int64(product.ID)}, stock.deleted)

	err = del.Handle(context.Background(), DeleteProductCommand{ID: product.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
