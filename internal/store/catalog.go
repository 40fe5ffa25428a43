package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/guetofya/storefront/internal/models"
)

const placeholderImage = "https://via.placeholder.com/500"

func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.products...)
}

func (s *Store) Product(id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.findProduct(id)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return product, nil
}

func (s *Store) findProduct(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// AddProduct validates and stores a new catalog entry. A missing ID gets
// a fresh identifier, a missing category defaults to Camisetas and an
// empty image list gets a placeholder.
func (s *Store) AddProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if err := validateProduct(&product); err != nil {
		return models.Product{}, err
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products := append(append([]models.Product(nil), s.products...), product)
	if err := s.adapter.SaveProducts(ctx, products); err != nil {
		return models.Product{}, fmt.Errorf("persist products: %w", err)
	}

	s.products = products
	return product, nil
}

// UpdateProduct replaces the catalog entry with the same identifier.
func (s *Store) UpdateProduct(ctx context.Context, product models.Product) error {
	if err := validateProduct(&product); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products := append([]models.Product(nil), s.products...)
	found := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			found = true
			break
		}
	}
	if !found {
		return ErrProductNotFound
	}

	if err := s.adapter.SaveProducts(ctx, products); err != nil {
		return fmt.Errorf("persist products: %w", err)
	}

	s.products = products
	return nil
}

// DeleteProduct removes a catalog entry. Deleting an absent identifier
// is a no-op; orders hold copies, so past orders are unaffected.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ID != id {
			products = append(products, p)
		}
	}
	if len(products) == len(s.products) {
		return nil
	}

	if err := s.adapter.SaveProducts(ctx, products); err != nil {
		return fmt.Errorf("persist products: %w", err)
	}

	s.products = products
	return nil
}

func validateProduct(product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if product.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if product.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidProduct)
	}
	if product.Category == "" {
		product.Category = models.CategoryCamisetas
	}
	if !product.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidProduct, product.Category)
	}
	if len(product.Images) == 0 {
		product.Images = []string{placeholderImage}
	}
	return nil
}
