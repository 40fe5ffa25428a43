package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/guetofya/storefront/internal/models"
)

// Memory is an in-process Adapter. It stores each collection as its
// JSON payload, the same representation the durable backends use, so
// decode failures surface identically in tests.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) load(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}

func (m *Memory) save(key string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = payload
}

func (m *Memory) LoadProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := decodeCollection(m.load(KeyProducts), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (m *Memory) SaveProducts(ctx context.Context, products []models.Product) error {
	payload, err := encodeCollection(products)
	if err != nil {
		return err
	}
	m.save(KeyProducts, payload)
	return nil
}

func (m *Memory) LoadOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := decodeCollection(m.load(KeyOrders), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (m *Memory) SaveOrders(ctx context.Context, orders []models.Order) error {
	payload, err := encodeCollection(orders)
	if err != nil {
		return err
	}
	m.save(KeyOrders, payload)
	return nil
}

func (m *Memory) LoadCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := decodeCollection(m.load(KeyCustomers), &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (m *Memory) SaveCustomers(ctx context.Context, customers []models.Customer) error {
	payload, err := encodeCollection(customers)
	if err != nil {
		return err
	}
	m.save(KeyCustomers, payload)
	return nil
}

func (m *Memory) SaveCheckout(ctx context.Context, orders []models.Order, customers []models.Customer) error {
	orderPayload, err := encodeCollection(orders)
	if err != nil {
		return err
	}
	customerPayload, err := encodeCollection(customers)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[KeyOrders] = orderPayload
	m.data[KeyCustomers] = customerPayload
	return nil
}

// Put stores a raw payload under key, bypassing encoding. Test hook for
// pre-seeding collections and for exercising corruption handling.
func (m *Memory) Put(key string, payload []byte) {
	m.save(key, payload)
}

func encodeCollection(v interface{}) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}
	return payload, nil
}

func decodeCollection(payload []byte, v interface{}) error {
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	return nil
}
