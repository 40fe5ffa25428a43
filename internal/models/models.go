package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryCamisetas Category = "Camisetas"
	CategoryBermudas  Category = "Bermudas"
	CategoryCalcas    Category = "Calças"
	CategoryBones     Category = "Bonés"
	CategoryToucas    Category = "Toucas"
	CategoryMoletons  Category = "Moletons"
	CategoryCuecas    Category = "Cuecas"
	CategoryBags      Category = "Bags"
)

func Categories() []Category {
	return []Category{
		CategoryCamisetas,
		CategoryBermudas,
		CategoryCalcas,
		CategoryBones,
		CategoryToucas,
		CategoryMoletons,
		CategoryCuecas,
		CategoryBags,
	}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusAccepted OrderStatus = "ACCEPTED"
	OrderStatusRejected OrderStatus = "REJECTED"
)

// Terminal reports whether no further status change is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusAccepted || s == OrderStatusRejected
}

func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusAccepted || s == OrderStatusRejected
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Images      []string        `json:"images"`
	Sizes       []string        `json:"sizes"`
	Category    Category        `json:"category"`
	Stock       int             `json:"stock"`
}

func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// CartLine is one product instance staged for purchase. The embedded
// Product is a copy taken at add time, not a live catalog reference.
type CartLine struct {
	Product
	LineID       string `json:"line_id"`
	Quantity     int    `json:"quantity"`
	SelectedSize string `json:"selected_size"`
}

type CartTotals struct {
	TotalQuantity int             `json:"total_quantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
}

type Customer struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Phone  string   `json:"phone"`
	Email  string   `json:"email"`
	Orders []string `json:"orders"`
}

// Order is immutable after creation except for Status. Customer and
// Items are snapshots taken at submission time.
type Order struct {
	ID        string          `json:"id"`
	Customer  Customer        `json:"customer"`
	Items     []CartLine      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type Stats struct {
	DailyRevenue           decimal.Decimal `json:"daily_revenue"`
	MonthlyRevenue         decimal.Decimal `json:"monthly_revenue"`
	TrailingQuarterRevenue decimal.Decimal `json:"trailing_quarter_revenue"`
	BestSeller             string          `json:"best_seller,omitempty"`
	BestSellerQuantity     int             `json:"best_seller_quantity"`
	PendingOrders          int             `json:"pending_orders"`
	TotalOrders            int             `json:"total_orders"`
}
