package storage

import (
	"context"
	"errors"

	"github.com/guetofya/storefront/internal/models"
)

// Collection keys. Kept stable so payloads written by older deployments
// of the storefront remain readable.
const (
	KeyProducts  = "guetofya_products"
	KeyOrders    = "guetofya_orders"
	KeyCustomers = "guetofya_customers"
)

// ErrCorrupted marks a stored payload that could not be decoded. Callers
// can treat it as recoverable instead of crashing on bad data.
var ErrCorrupted = errors.New("stored payload corrupted")

// Adapter persists the three storefront collections. Each Load returns
// nil when nothing has been stored yet; each Save overwrites the
// collection wholesale. Orders are stored newest-first.
type Adapter interface {
	LoadProducts(ctx context.Context) ([]models.Product, error)
	SaveProducts(ctx context.Context, products []models.Product) error

	LoadOrders(ctx context.Context) ([]models.Order, error)
	SaveOrders(ctx context.Context, orders []models.Order) error

	LoadCustomers(ctx context.Context) ([]models.Customer, error)
	SaveCustomers(ctx context.Context, customers []models.Customer) error

	// SaveCheckout writes the order and customer collections as one
	// atomic unit. Checkout touches both, and a partial write would
	// leave a customer referencing an order that was never stored.
	SaveCheckout(ctx context.Context, orders []models.Order, customers []models.Customer) error
}
