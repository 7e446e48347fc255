package store

import "github.com/ayms/backoffice-system/internal/model"

// Массовые операции применяют одиночную операцию к каждому идентификатору
// и возвращают число успехов. Неудачи (уже удалённые записи, защищённый
// admin) молча пропускаются.

// BulkDeleteUsers удаляет пользователей по списку идентификаторов.
func (s *Store) BulkDeleteUsers(ids []int64) (int, error) {
	count := 0
	for _, id := range ids {
		deleted, err := s.DeleteUser(id)
		if err != nil {
			return count, err
		}
		if deleted != nil {
			count++
		}
	}
	return count, nil
}

// BulkUpdateUsers накладывает одно и то же частичное обновление на каждого
// пользователя из списка.
func (s *Store) BulkUpdateUsers(ids []int64, upd model.UserUpdate) (int, error) {
	count := 0
	for _, id := range ids {
		updated, err := s.UpdateUser(id, upd)
		if err != nil {
			return count, err
		}
		if updated != nil {
			count++
		}
	}
	return count, nil
}

// BulkDeleteProducts удаляет товары по списку идентификаторов.
func (s *Store) BulkDeleteProducts(ids []int64) (int, error) {
	count := 0
	for _, id := range ids {
		deleted, err := s.DeleteProduct(id)
		if err != nil {
			return count, err
		}
		if deleted != nil {
			count++
		}
	}
	return count, nil
}

// BulkUpdateStock выставляет указанный остаток каждому товару из списка;
// статус каждого товара выводится заново.
func (s *Store) BulkUpdateStock(ids []int64, stock int) (int, error) {
	count := 0
	for _, id := range ids {
		updated, err := s.UpdateProduct(id, model.ProductUpdate{Stock: &stock})
		if err != nil {
			return count, err
		}
		if updated != nil {
			count++
		}
	}
	return count, nil
}

// BulkDeleteOrders удаляет заказы по списку идентификаторов.
func (s *Store) BulkDeleteOrders(ids []int64) (int, error) {
	count := 0
	for _, id := range ids {
		deleted, err := s.DeleteOrder(id)
		if err != nil {
			return count, err
		}
		if deleted != nil {
			count++
		}
	}
	return count, nil
}

// BulkUpdateOrderStatus выставляет указанный статус каждому заказу из списка.
func (s *Store) BulkUpdateOrderStatus(ids []int64, status model.OrderStatus) (int, error) {
	count := 0
	for _, id := range ids {
		updated, err := s.UpdateOrder(id, model.OrderUpdate{Status: &status})
		if err != nil {
			return count, err
		}
		if updated != nil {
			count++
		}
	}
	return count, nil
}
