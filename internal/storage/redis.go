package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guetofya/storefront/internal/config"
	"github.com/guetofya/storefront/internal/models"
)

// Redis stores each collection as a JSON payload under its key.
type Redis struct {
	client *redis.Client
}

func NewRedis(cfg *config.RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Redis{client: client}, nil
}

func (s *Redis) Close() error {
	return s.client.Close()
}

func (s *Redis) loadKey(ctx context.Context, key string, v interface{}) error {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	return decodeCollection(payload, v)
}

func (s *Redis) saveKey(ctx context.Context, key string, v interface{}) error {
	payload, err := encodeCollection(v)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *Redis) LoadProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.loadKey(ctx, KeyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Redis) SaveProducts(ctx context.Context, products []models.Product) error {
	return s.saveKey(ctx, KeyProducts, products)
}

func (s *Redis) LoadOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.loadKey(ctx, KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Redis) SaveOrders(ctx context.Context, orders []models.Order) error {
	return s.saveKey(ctx, KeyOrders, orders)
}

func (s *Redis) LoadCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.loadKey(ctx, KeyCustomers, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *Redis) SaveCustomers(ctx context.Context, customers []models.Customer) error {
	return s.saveKey(ctx, KeyCustomers, customers)
}

func (s *Redis) SaveCheckout(ctx context.Context, orders []models.Order, customers []models.Customer) error {
	orderPayload, err := encodeCollection(orders)
	if err != nil {
		return err
	}
	customerPayload, err := encodeCollection(customers)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, KeyOrders, orderPayload, 0)
		pipe.Set(ctx, KeyCustomers, customerPayload, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save checkout: %w", err)
	}
	return nil
}
