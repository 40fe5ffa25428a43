package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/guetofya/storefront/internal/models"
)

type CustomerInput struct {
	Name  string
	Phone string
	Email string
}

func newOrderID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9])
}

// CreateOrder snapshots the current cart into a new PENDING order tied
// to the customer with the given email, creating the customer on first
// contact. The order append, customer history append and cart clear are
// committed as one unit: nothing is mutated unless the adapter persists
// both collections.
func (s *Store) CreateOrder(ctx context.Context, input CustomerInput) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !checkoutReady(s.cart) {
		return models.Order{}, ErrCartNotReady
	}

	customers := append([]models.Customer(nil), s.customers...)
	idx := -1
	for i := range customers {
		if customers[i].Email == input.Email {
			idx = i
			break
		}
	}
	if idx == -1 {
		customers = append(customers, models.Customer{
			ID:    uuid.NewString(),
			Name:  input.Name,
			Phone: input.Phone,
			Email: input.Email,
		})
		idx = len(customers) - 1
	}

	totals := ComputeTotals(s.cart)
	order := models.Order{
		ID: newOrderID(),
		// Snapshot taken before the history append; the embedded
		// customer lists only prior orders.
		Customer:  customers[idx],
		Items:     append([]models.CartLine(nil), s.cart...),
		Subtotal:  totals.Subtotal,
		Discount:  totals.Discount,
		Total:     totals.Total,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	customers[idx].Orders = append(append([]string(nil), customers[idx].Orders...), order.ID)
	orders := append([]models.Order{order}, s.orders...)

	if err := s.adapter.SaveCheckout(ctx, orders, customers); err != nil {
		return models.Order{}, fmt.Errorf("persist checkout: %w", err)
	}

	s.orders = orders
	s.customers = customers
	s.cart = nil
	return order, nil
}

// UpdateOrderStatus moves a PENDING order to ACCEPTED or REJECTED. Both
// destination states are terminal.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	if status != models.OrderStatusAccepted && status != models.OrderStatusRejected {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders := append([]models.Order(nil), s.orders...)
	idx := -1
	for i := range orders {
		if orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrOrderNotFound
	}
	if orders[idx].Status.Terminal() {
		return ErrOrderFinalized
	}

	orders[idx].Status = status
	if err := s.adapter.SaveOrders(ctx, orders); err != nil {
		return fmt.Errorf("persist orders: %w", err)
	}

	s.orders = orders
	return nil
}

// Orders returns all orders, newest first.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Order(nil), s.orders...)
}

func (s *Store) Order(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (s *Store) Customers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Customer(nil), s.customers...)
}
