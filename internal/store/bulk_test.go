package store

import (
	"testing"

	"github.com/ayms/backoffice-system/internal/model"
)

func TestBulkDeleteUsersSkipsFailures(t *testing.T) {
	s := newTestStore(t)

	u1, _ := s.CreateUser(model.NewUser{Username: "u1", Password: "pw", Role: model.RoleUser})
	u2, _ := s.CreateUser(model.NewUser{Username: "u2", Password: "pw", Role: model.RoleUser})
	admin := s.GetUserByUsername("admin")

	// Защищённый admin и несуществующий id молча пропускаются.
	count, err := s.BulkDeleteUsers([]int64{u1.ID, admin.ID, 999, u2.ID})
	if err != nil {
		t.Fatalf("bulk delete: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if got := len(s.GetUsers()); got != 1 {
		t.Fatalf("users = %d, want 1", got)
	}
	if got := s.GetAnalytics().TotalUsers; got != 1 {
		t.Fatalf("totalUsers = %d, want 1", got)
	}
}

func TestBulkUpdateUsers(t *testing.T) {
	s := newTestStore(t)

	u1, _ := s.CreateUser(model.NewUser{Username: "u1", Password: "pw", Role: model.RoleUser})
	u2, _ := s.CreateUser(model.NewUser{Username: "u2", Password: "pw", Role: model.RoleUser})

	inactive := model.UserStatusInactive
	count, err := s.BulkUpdateUsers([]int64{u1.ID, u2.ID, 999}, model.UserUpdate{Status: &inactive})
	if err != nil {
		t.Fatalf("bulk update: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	for _, id := range []int64{u1.ID, u2.ID} {
		if got := s.GetUserByID(id); got.Status != model.UserStatusInactive {
			t.Fatalf("user %d status = %s, want INACTIVE", id, got.Status)
		}
	}
}

func TestBulkUpdateStock(t *testing.T) {
	s := newTestStore(t)

	p1, _ := s.CreateProduct(model.NewProduct{Name: "A", Category: "Maison", Price: 1, Stock: 100})
	p2, _ := s.CreateProduct(model.NewProduct{Name: "B", Category: "Maison", Price: 1, Stock: 100})

	count, err := s.BulkUpdateStock([]int64{p1.ID, p2.ID}, 0)
	if err != nil {
		t.Fatalf("bulk update stock: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	for _, id := range []int64{p1.ID, p2.ID} {
		got := s.GetProductByID(id)
		if got.Stock != 0 || got.Status != model.ProductOutOfStock {
			t.Fatalf("product %d = %+v, want OUT_OF_STOCK", id, got)
		}
	}
}

func TestBulkDeleteProductsKeepsCountsInSync(t *testing.T) {
	s := newTestStore(t)

	p1, _ := s.CreateProduct(model.NewProduct{Name: "A", Category: "Livres", Price: 1, Stock: 1})
	p2, _ := s.CreateProduct(model.NewProduct{Name: "B", Category: "Livres", Price: 1, Stock: 1})

	count, err := s.BulkDeleteProducts([]int64{p1.ID, p2.ID, p1.ID})
	if err != nil {
		t.Fatalf("bulk delete: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	verifyCategoryCounts(t, s)
	if got := s.GetAnalytics().TotalProducts; got != 0 {
		t.Fatalf("totalProducts = %d, want 0", got)
	}
}

func TestBulkOrderOperations(t *testing.T) {
	s := newTestStore(t)

	o1, _ := s.CreateOrder(model.NewOrder{TotalAmount: 10})
	o2, _ := s.CreateOrder(model.NewOrder{TotalAmount: 20})
	o3, _ := s.CreateOrder(model.NewOrder{TotalAmount: 30})

	count, err := s.BulkUpdateOrderStatus([]int64{o1.ID, o2.ID}, model.OrderShipped)
	if err != nil {
		t.Fatalf("bulk status: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if got := s.GetOrderByID(o1.ID); got.Status != model.OrderShipped {
		t.Fatalf("order status = %s", got.Status)
	}

	count, err = s.BulkDeleteOrders([]int64{o2.ID, o3.ID, 999})
	if err != nil {
		t.Fatalf("bulk delete: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if got := s.GetAnalytics().TotalRevenue; got != 10 {
		t.Fatalf("revenue = %v, want 10", got)
	}
}
