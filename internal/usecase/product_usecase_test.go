package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/service"
	"localmarket/pkg/errors"
)

func newProductFixture() (*ProductUseCase, *memProductRepo) {
	products := newMemProductRepo()
	sellers := &memSellerRepo{sellers: []*entity.Seller{{ID: "seller-1", UserID: sellerSession.UserID}}}
	return NewProductUseCase(products, sellers), products
}

func TestCreateProductRequiresSeller(t *testing.T) {
	uc, _ := newProductFixture()

	_, err := uc.CreateProduct(context.Background(), buyerSession, ProductInput{Name: "Jam", Category: "pantry"})
	assert.True(t, errors.Is(err, errors.CodeForbidden))
}

func TestCreateProductDerivesStock(t *testing.T) {
	ctx := context.Background()
	uc, _ := newProductFixture()

	untracked, err := uc.CreateProduct(ctx, sellerSession, ProductInput{Name: "Jam", Category: "pantry", Price: 6})
	require.NoError(t, err)
	assert.Equal(t, "seller-1", untracked.SellerID)
	assert.True(t, untracked.InStock)
	assert.Nil(t, untracked.Quantity)

	empty, err := uc.CreateProduct(ctx, sellerSession, ProductInput{Name: "Eggs", Category: "dairy", Quantity: intPtr(0)})
	require.NoError(t, err)
	assert.False(t, empty.InStock)
}

func TestSetStockAndQuantity(t *testing.T) {
	ctx := context.Background()
	uc, _ := newProductFixture()

	product, err := uc.CreateProduct(ctx, sellerSession, ProductInput{Name: "Eggs", Category: "dairy", Quantity: intPtr(0)})
	require.NoError(t, err)

	_, err = uc.SetStock(ctx, sellerSession, product.ID, true)
	assert.True(t, errors.Is(err, errors.CodeValidation))

	updated, err := uc.SetQuantity(ctx, sellerSession, product.ID, 12)
	require.NoError(t, err)
	assert.True(t, updated.InStock)
	assert.Equal(t, 12, *updated.Quantity)

	updated, err = uc.SetStock(ctx, sellerSession, product.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.InStock)

	_, err = uc.SetQuantity(ctx, sellerSession, product.ID, -1)
	assert.True(t, errors.Is(err, errors.CodeValidation))

	_, err = uc.SetQuantity(ctx, buyerSession, product.ID, 3)
	assert.True(t, errors.Is(err, errors.CodeForbidden))
}

func TestUpdateProductKeepsStockConsistent(t *testing.T) {
	ctx := context.Background()
	uc, _ := newProductFixture()

	product, err := uc.CreateProduct(ctx, sellerSession, ProductInput{Name: "Eggs", Category: "dairy", Quantity: intPtr(0)})
	require.NoError(t, err)

	inStock := true
	_, err = uc.UpdateProduct(ctx, sellerSession, product.ID, ProductInput{Name: "Eggs", Category: "dairy", InStock: &inStock})
	assert.True(t, errors.Is(err, errors.CodeValidation))

	stored, err := uc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, stored.InStock)

	hits, err := uc.Search(ctx, service.ProductFilter{InStock: &inStock})
	require.NoError(t, err)
	assert.Empty(t, hits)

	outOfStock := false
	updated, err := uc.UpdateProduct(ctx, sellerSession, product.ID, ProductInput{Name: "Brown Eggs", Category: "dairy", InStock: &outOfStock})
	require.NoError(t, err)
	assert.Equal(t, "Brown Eggs", updated.Name)
	assert.False(t, updated.InStock)
}

func TestSearchFiltersCatalog(t *testing.T) {
	ctx := context.Background()
	uc, _ := newProductFixture()

	for _, in := range []ProductInput{
		{Name: "Raw Honey", Category: "pantry", Price: 9, Tags: []string{"local"}},
		{Name: "Goat Cheese", Category: "dairy", Price: 7},
		{Name: "Honeycrisp Apples", Category: "produce", Price: 4},
	} {
		_, err := uc.CreateProduct(ctx, sellerSession, in)
		require.NoError(t, err)
	}

	all, err := uc.Search(ctx, service.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	maxPrice := 8.0
	hits, err := uc.Search(ctx, service.ProductFilter{SearchQuery: "HONEY", MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Honeycrisp Apples", hits[0].Name)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	uc, products := newProductFixture()

	product, err := uc.CreateProduct(ctx, sellerSession, ProductInput{Name: "Jam", Category: "pantry"})
	require.NoError(t, err)

	assert.True(t, errors.Is(uc.DeleteProduct(ctx, buyerSession, product.ID), errors.CodeForbidden))
	require.NoError(t, uc.DeleteProduct(ctx, sellerSession, product.ID))

	_, err = products.GetByID(ctx, product.ID)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}
