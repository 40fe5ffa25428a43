package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/guetofya/storefront/internal/models"
	"github.com/guetofya/storefront/internal/storage"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProduct   = errors.New("invalid product")
	ErrCartLineNotFound = errors.New("cart line not found")
	ErrSizeNotAvailable = errors.New("size not available for product")
	ErrCartNotReady     = errors.New("cart not ready for checkout")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderFinalized   = errors.New("order status is final")
	ErrInvalidStatus    = errors.New("invalid order status")
)

// Store holds the storefront collections in memory and mirrors every
// mutation to the persistence adapter. One mutex serializes all
// mutating sequences; checkout touches the order and customer
// collections together and must not interleave with other writers.
type Store struct {
	mu      sync.Mutex
	adapter storage.Adapter

	products  []models.Product
	orders    []models.Order // newest first
	customers []models.Customer
	cart      []models.CartLine
}

// Open loads all collections from the adapter, seeding the catalog on
// first run.
func Open(ctx context.Context, adapter storage.Adapter) (*Store, error) {
	products, err := adapter.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if len(products) == 0 {
		products = storage.SeedProducts()
		if err := adapter.SaveProducts(ctx, products); err != nil {
			return nil, fmt.Errorf("seed products: %w", err)
		}
	}

	orders, err := adapter.LoadOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	customers, err := adapter.LoadCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	return &Store{
		adapter:   adapter,
		products:  products,
		orders:    orders,
		customers: customers,
	}, nil
}
