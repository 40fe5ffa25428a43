package store

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/guetofya/storefront/internal/models"
)

// DiscountRate returns the progressive discount rate for a cart holding
// totalQuantity items: nothing below two items, 5% for exactly two, 10%
// for exactly three, flat 15% from four up.
func DiscountRate(totalQuantity int) decimal.Decimal {
	switch {
	case totalQuantity >= 4:
		return decimal.NewFromFloat(0.15)
	case totalQuantity == 3:
		return decimal.NewFromFloat(0.10)
	case totalQuantity == 2:
		return decimal.NewFromFloat(0.05)
	default:
		return decimal.Zero
	}
}

// ComputeTotals derives quantity, subtotal, discount and total for a set
// of cart lines. Pure; callers re-evaluate on every read.
func ComputeTotals(lines []models.CartLine) models.CartTotals {
	totals := models.CartTotals{
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
		Total:    decimal.Zero,
	}

	for _, line := range lines {
		totals.TotalQuantity += line.Quantity
		totals.Subtotal = totals.Subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	totals.Discount = totals.Subtotal.Mul(DiscountRate(totals.TotalQuantity))
	totals.Total = totals.Subtotal.Sub(totals.Discount)
	return totals
}

// AddToCart clones the catalog product into a new cart line with a fresh
// line identifier, quantity 1 and no selected size. The same product may
// appear on several lines; there is no merge.
func (s *Store) AddToCart(productID string) (models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.findProduct(productID)
	if !ok {
		return models.CartLine{}, ErrProductNotFound
	}

	line := models.CartLine{
		Product:  product,
		LineID:   uuid.NewString(),
		Quantity: 1,
	}
	s.cart = append(s.cart, line)
	return line, nil
}

// RemoveFromCart drops the line with the given identifier. Removing an
// absent line is a no-op.
func (s *Store) RemoveFromCart(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cart[:0]
	for _, line := range s.cart {
		if line.LineID != lineID {
			kept = append(kept, line)
		}
	}
	s.cart = kept
}

// SetLineSize selects a size on a cart line. The size must be one of the
// parent product's available sizes.
func (s *Store) SetLineSize(lineID, size string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].LineID != lineID {
			continue
		}
		if !s.cart[i].HasSize(size) {
			return ErrSizeNotAvailable
		}
		s.cart[i].SelectedSize = size
		return nil
	}
	return ErrCartLineNotFound
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

func (s *Store) Cart() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartLine(nil), s.cart...)
}

func (s *Store) CartTotals() models.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeTotals(s.cart)
}

// CheckoutReady reports whether the cart can proceed to order
// submission: non-empty, with a selected size on every line.
func (s *Store) CheckoutReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return checkoutReady(s.cart)
}

func checkoutReady(lines []models.CartLine) bool {
	if len(lines) == 0 {
		return false
	}
	for _, line := range lines {
		if line.SelectedSize == "" {
			return false
		}
	}
	return true
}
