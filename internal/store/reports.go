package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guetofya/storefront/internal/models"
)

// Stats aggregates the admin dashboard figures as of now.
func (s *Store) Stats() models.Stats {
	return s.StatsAt(time.Now())
}

// StatsAt computes revenue and sales aggregates relative to the given
// reference time. Only ACCEPTED orders contribute to revenue and to the
// best-seller ranking; PENDING and REJECTED orders appear in counts
// only. Date comparisons are calendar-based in the reference time's
// location.
func (s *Store) StatsAt(now time.Time) models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.Stats{
		DailyRevenue:           decimal.Zero,
		MonthlyRevenue:         decimal.Zero,
		TrailingQuarterRevenue: decimal.Zero,
	}

	quarterStart := now.AddDate(0, -3, 0)
	sales := make(map[string]int)

	for _, order := range s.orders {
		stats.TotalOrders++
		if order.Status == models.OrderStatusPending {
			stats.PendingOrders++
		}
		if order.Status != models.OrderStatusAccepted {
			continue
		}

		created := order.CreatedAt.In(now.Location())
		if sameDay(created, now) {
			stats.DailyRevenue = stats.DailyRevenue.Add(order.Total)
		}
		if created.Year() == now.Year() && created.Month() == now.Month() {
			stats.MonthlyRevenue = stats.MonthlyRevenue.Add(order.Total)
		}
		if !created.Before(quarterStart) {
			stats.TrailingQuarterRevenue = stats.TrailingQuarterRevenue.Add(order.Total)
		}

		for _, item := range order.Items {
			sales[item.Name] += item.Quantity
		}
	}

	// Ties break alphabetically so the ranking is deterministic.
	for name, quantity := range sales {
		switch {
		case quantity > stats.BestSellerQuantity:
			stats.BestSeller = name
			stats.BestSellerQuantity = quantity
		case quantity == stats.BestSellerQuantity && stats.BestSeller != "" && name < stats.BestSeller:
			stats.BestSeller = name
		}
	}

	return stats
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
