package store

import "github.com/ayms/backoffice-system/internal/model"

// DashboardStats — сводка для главной страницы бэкофиса.
type DashboardStats struct {
	Users              int     `json:"users"`
	Products           int     `json:"products"`
	Orders             int     `json:"orders"`
	Revenue            float64 `json:"revenue"`
	PendingOrders      int     `json:"pendingOrders"`
	LowStockProducts   int     `json:"lowStockProducts"`
	OutOfStockProducts int     `json:"outOfStockProducts"`
}

// GetDashboardStats возвращает сводку по текущему состоянию коллекций.
func (s *Store) GetDashboardStats() DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := DashboardStats{
		Users:    len(s.doc.Users),
		Products: len(s.doc.Products),
		Orders:   len(s.doc.Orders),
		Revenue:  s.doc.Analytics.TotalRevenue,
	}
	for _, o := range s.doc.Orders {
		if o.Status == model.OrderPending {
			stats.PendingOrders++
		}
	}
	for _, p := range s.doc.Products {
		switch p.Status {
		case model.ProductLowStock:
			stats.LowStockProducts++
		case model.ProductOutOfStock:
			stats.OutOfStockProducts++
		}
	}
	return stats
}

// MonthlyStat — число заказов и выручка за один месяц.
type MonthlyStat struct {
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// GetMonthlyStats группирует заказы по месяцу создания (ключ YYYY-MM).
func (s *Store) GetMonthlyStats() map[string]MonthlyStat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	monthly := make(map[string]MonthlyStat)
	for _, o := range s.doc.Orders {
		if len(o.CreatedAt) < 7 {
			continue
		}
		month := o.CreatedAt[:7]
		stat := monthly[month]
		stat.Orders++
		stat.Revenue += o.TotalAmount
		monthly[month] = stat
	}
	return monthly
}
