package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guetofya/storefront/internal/database"
	"github.com/guetofya/storefront/internal/models"
)

// Postgres stores each collection as a single JSON document in the
// collections table, keeping the wholesale load/save contract while
// getting a real transaction boundary for checkout.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Init creates the collections table. Safe to call on every startup.
func (s *Postgres) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS collections (
			key        TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create collections table: %w", err)
	}
	return nil
}

func (s *Postgres) loadKey(ctx context.Context, key string, v interface{}) error {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM collections WHERE key = $1`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	return decodeCollection(payload, v)
}

func (s *Postgres) saveKey(ctx context.Context, key string, v interface{}) error {
	payload, err := encodeCollection(v)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, upsertCollection, key, payload)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

const upsertCollection = `
	INSERT INTO collections (key, payload, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (key) DO UPDATE
	SET payload = EXCLUDED.payload, updated_at = NOW()`

func (s *Postgres) LoadProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.loadKey(ctx, KeyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Postgres) SaveProducts(ctx context.Context, products []models.Product) error {
	return s.saveKey(ctx, KeyProducts, products)
}

func (s *Postgres) LoadOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.loadKey(ctx, KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Postgres) SaveOrders(ctx context.Context, orders []models.Order) error {
	return s.saveKey(ctx, KeyOrders, orders)
}

func (s *Postgres) LoadCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.loadKey(ctx, KeyCustomers, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *Postgres) SaveCustomers(ctx context.Context, customers []models.Customer) error {
	return s.saveKey(ctx, KeyCustomers, customers)
}

func (s *Postgres) SaveCheckout(ctx context.Context, orders []models.Order, customers []models.Customer) error {
	orderPayload, err := encodeCollection(orders)
	if err != nil {
		return err
	}
	customerPayload, err := encodeCollection(customers)
	if err != nil {
		return err
	}

	return database.WithRetry(ctx, s.db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, upsertCollection, KeyOrders, orderPayload); err != nil {
			return fmt.Errorf("save %s: %w", KeyOrders, err)
		}
		if _, err := tx.ExecContext(ctx, upsertCollection, KeyCustomers, customerPayload); err != nil {
			return fmt.Errorf("save %s: %w", KeyCustomers, err)
		}
		return nil
	})
}
