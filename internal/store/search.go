package store

import (
	"strings"

	"github.com/ayms/backoffice-system/internal/model"
)

// SearchUsers возвращает пользователей, у которых имя, почта, имя или
// фамилия содержат запрос без учёта регистра. Результаты не ранжируются.
func (s *Store) SearchUsers(query string) []model.User {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []model.User
	for _, u := range s.doc.Users {
		if containsFold(q, u.Username, u.Email, u.FirstName, u.LastName) {
			res = append(res, u)
		}
	}
	return res
}

// SearchProducts возвращает товары, у которых название, описание или
// категория содержат запрос без учёта регистра.
func (s *Store) SearchProducts(query string) []model.Product {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []model.Product
	for _, p := range s.doc.Products {
		if containsFold(q, p.Name, p.Description, p.Category) {
			res = append(res, p)
		}
	}
	return res
}

// SearchOrders возвращает заказы, у которых номер, имя или почта покупателя
// содержат запрос без учёта регистра.
func (s *Store) SearchOrders(query string) []model.Order {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []model.Order
	for _, o := range s.doc.Orders {
		if containsFold(q, o.OrderNumber, o.UserName, o.UserEmail) {
			res = append(res, o)
		}
	}
	return res
}

func containsFold(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
