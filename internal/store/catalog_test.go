package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/guetofya/storefront/internal/models"
	"github.com/guetofya/storefront/internal/storage"
)

func TestOpenSeedsCatalog(t *testing.T) {
	adapter := storage.NewMemory()

	s, err := Open(context.Background(), adapter)
	require.NoError(t, err)

	products := s.Products()
	require.NotEmpty(t, products)
	for _, p := range products {
		require.NotEmpty(t, p.Name)
		require.True(t, p.Category.Valid())
		require.False(t, p.Price.IsNegative())
		require.NotEmpty(t, p.Sizes)
	}

	// The seed is persisted, so a second open sees the same catalog
	// instead of reseeding.
	_, err = s.Product("c1")
	require.NoError(t, err)

	reopened, err := Open(context.Background(), adapter)
	require.NoError(t, err)
	require.Equal(t, len(products), len(reopened.Products()))
}

func TestAddProduct(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.AddProduct(ctx, models.Product{
		Name:     "Touca Chronic",
		Price:    decimal.NewFromFloat(45.00),
		Sizes:    []string{"ÚNICO"},
		Category: models.CategoryToucas,
		Stock:    20,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := s.Product(created.ID)
	require.NoError(t, err)
	require.Equal(t, "Touca Chronic", got.Name)
}

func TestAddProductDefaults(t *testing.T) {
	s := newTestStore(t)

	created, err := s.AddProduct(context.Background(), models.Product{
		Name:  "Sem Categoria",
		Price: decimal.NewFromInt(10),
		Sizes: []string{"M"},
	})
	require.NoError(t, err)
	require.Equal(t, models.CategoryCamisetas, created.Category)
	require.Len(t, created.Images, 1)
}

func TestAddProductValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddProduct(ctx, models.Product{Price: decimal.NewFromInt(10)})
	require.ErrorIs(t, err, ErrInvalidProduct)

	_, err = s.AddProduct(ctx, models.Product{Name: "X", Price: decimal.NewFromInt(-1)})
	require.ErrorIs(t, err, ErrInvalidProduct)

	_, err = s.AddProduct(ctx, models.Product{Name: "X", Price: decimal.NewFromInt(1), Stock: -5})
	require.ErrorIs(t, err, ErrInvalidProduct)

	_, err = s.AddProduct(ctx, models.Product{Name: "X", Price: decimal.NewFromInt(1), Category: "Sapatos"})
	require.ErrorIs(t, err, ErrInvalidProduct)
}

func TestUpdateProduct(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	product, err := s.Product("c1")
	require.NoError(t, err)

	product.Price = decimal.NewFromFloat(69.99)
	require.NoError(t, s.UpdateProduct(ctx, product))

	got, err := s.Product("c1")
	require.NoError(t, err)
	require.True(t, got.Price.Equal(decimal.NewFromFloat(69.99)))

	product.ID = "missing"
	require.ErrorIs(t, s.UpdateProduct(ctx, product), ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	adapter := storage.NewMemory()
	s, err := Open(context.Background(), adapter)
	require.NoError(t, err)
	ctx := context.Background()

	before := len(s.Products())

	require.NoError(t, s.DeleteProduct(ctx, "c1"))
	require.Len(t, s.Products(), before-1)

	_, err = s.Product("c1")
	require.ErrorIs(t, err, ErrProductNotFound)

	// Absent identifier is a no-op.
	require.NoError(t, s.DeleteProduct(ctx, "c1"))
	require.Len(t, s.Products(), before-1)

	// The deletion is persisted.
	reopened, err := Open(context.Background(), adapter)
	require.NoError(t, err)
	_, err = reopened.Product("c1")
	require.ErrorIs(t, err, ErrProductNotFound)
}
