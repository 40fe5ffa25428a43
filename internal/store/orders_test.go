package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/guetofya/storefront/internal/models"
	"github.com/guetofya/storefront/internal/storage"
)

func fillCart(t *testing.T, s *Store) {
	t.Helper()

	shirt, err := s.AddToCart("c1")
	require.NoError(t, err)
	require.NoError(t, s.SetLineSize(shirt.LineID, "M"))

	hat, err := s.AddToCart("b1")
	require.NoError(t, err)
	require.NoError(t, s.SetLineSize(hat.LineID, "ÚNICO"))
}

var testCustomer = CustomerInput{
	Name:  "Maria Silva",
	Phone: "(11) 99999-9999",
	Email: "maria@example.com",
}

func TestCreateOrder(t *testing.T) {
	s := newTestStore(t)
	fillCart(t, s)

	order, err := s.CreateOrder(context.Background(), testCustomer)
	require.NoError(t, err)

	require.Equal(t, strings.ToUpper(order.ID), order.ID)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.False(t, order.CreatedAt.IsZero())
	require.Len(t, order.Items, 2)

	require.True(t, order.Subtotal.Equal(decimal.RequireFromString("154.99")))
	require.True(t, order.Discount.Equal(decimal.RequireFromString("7.7495")))
	require.True(t, order.Total.Equal(decimal.RequireFromString("147.2405")))

	// Submitting clears the cart.
	require.Empty(t, s.Cart())

	orders := s.Orders()
	require.Len(t, orders, 1)
	require.Equal(t, order.ID, orders[0].ID)

	customers := s.Customers()
	require.Len(t, customers, 1)
	require.Equal(t, "maria@example.com", customers[0].Email)
	require.Equal(t, []string{order.ID}, customers[0].Orders)

	// The embedded snapshot predates the history append.
	require.Empty(t, order.Customer.Orders)
	require.Equal(t, customers[0].ID, order.Customer.ID)
}

func TestCreateOrderCartNotReady(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateOrder(ctx, testCustomer)
	require.ErrorIs(t, err, ErrCartNotReady)

	_, err = s.AddToCart("c1")
	require.NoError(t, err)

	_, err = s.CreateOrder(ctx, testCustomer)
	require.ErrorIs(t, err, ErrCartNotReady)
	require.Len(t, s.Cart(), 1, "failed checkout must not clear the cart")
}

func TestCreateOrderReusesCustomerByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	fillCart(t, s)
	first, err := s.CreateOrder(ctx, testCustomer)
	require.NoError(t, err)

	fillCart(t, s)
	second, err := s.CreateOrder(ctx, testCustomer)
	require.NoError(t, err)

	customers := s.Customers()
	require.Len(t, customers, 1)
	require.Equal(t, []string{first.ID, second.ID}, customers[0].Orders)
	require.Equal(t, first.Customer.ID, second.Customer.ID)
}

func TestCreateOrderEmailMatchIsCaseSensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	fillCart(t, s)
	_, err := s.CreateOrder(ctx, testCustomer)
	require.NoError(t, err)

	upper := testCustomer
	upper.Email = "MARIA@example.com"

	fillCart(t, s)
	_, err = s.CreateOrder(ctx, upper)
	require.NoError(t, err)

	require.Len(t, s.Customers(), 2)
}

func TestOrdersNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	fillCart(t, s)
	first, err := s.CreateOrder(ctx, testCustomer)
	require.NoError(t, err)

	fillCart(t, s)
	second, err := s.CreateOrder(ctx, testCustomer)
	require.NoError(t, err)

	orders := s.Orders()
	require.Len(t, orders, 2)
	require.Equal(t, second.ID, orders[0].ID)
	require.Equal(t, first.ID, orders[1].ID)
}

func TestOrderSnapshotSurvivesCatalogDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	fillCart(t, s)
	order, err := s.CreateOrder(ctx, testCustomer)
	require.NoError(t, err)

	require.NoError(t, s.DeleteProduct(ctx, "c1"))

	got, err := s.Order(order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	require.Equal(t, "Camiseta Chronic 1", got.Items[0].Name)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	fillCart(t, s)
	order, err := s.CreateOrder(ctx, testCustomer)
	require.NoError(t, err)

	require.NoError(t, s.UpdateOrderStatus(ctx, order.ID, models.OrderStatusAccepted))

	got, err := s.Order(order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusAccepted, got.Status)

	// ACCEPTED is terminal.
	err = s.UpdateOrderStatus(ctx, order.ID, models.OrderStatusRejected)
	require.ErrorIs(t, err, ErrOrderFinalized)

	got, err = s.Order(order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusAccepted, got.Status)
}

func TestUpdateOrderStatusRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	fillCart(t, s)
	order, err := s.CreateOrder(ctx, testCustomer)
	require.NoError(t, err)

	require.NoError(t, s.UpdateOrderStatus(ctx, order.ID, models.OrderStatusRejected))
	err = s.UpdateOrderStatus(ctx, order.ID, models.OrderStatusAccepted)
	require.ErrorIs(t, err, ErrOrderFinalized)
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	fillCart(t, s)
	order, err := s.CreateOrder(ctx, testCustomer)
	require.NoError(t, err)

	err = s.UpdateOrderStatus(ctx, order.ID, models.OrderStatus("SHIPPED"))
	require.ErrorIs(t, err, ErrInvalidStatus)

	err = s.UpdateOrderStatus(ctx, order.ID, models.OrderStatusPending)
	require.ErrorIs(t, err, ErrInvalidStatus)

	err = s.UpdateOrderStatus(ctx, "missing", models.OrderStatusAccepted)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

// checkoutFailingAdapter refuses the atomic checkout write, simulating
// an unavailable backend at the worst moment.
type checkoutFailingAdapter struct {
	*storage.Memory
}

var errBackendDown = errors.New("backend down")

func (a *checkoutFailingAdapter) SaveCheckout(ctx context.Context, orders []models.Order, customers []models.Customer) error {
	return errBackendDown
}

func TestCreateOrderPersistFailureLeavesStateUntouched(t *testing.T) {
	adapter := &checkoutFailingAdapter{Memory: storage.NewMemory()}
	s, err := Open(context.Background(), adapter)
	require.NoError(t, err)

	fillCart(t, s)
	_, err = s.CreateOrder(context.Background(), testCustomer)
	require.ErrorIs(t, err, errBackendDown)

	require.Len(t, s.Cart(), 2, "cart must survive a failed checkout")
	require.Empty(t, s.Orders())
	require.Empty(t, s.Customers())
}
