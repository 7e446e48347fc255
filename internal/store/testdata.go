package store

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/ayms/backoffice-system/internal/model"
)

var seedCategories = []string{"Électronique", "Informatique", "Vêtements", "Livres", "Maison"}

var seedProductNames = []string{
	"Smartphone", "Laptop", "Tablette", "Casque", "Montre",
	"T-shirt", "Jean", "Chaussures", "Veste", "Robe",
	"Livre", "Cahier", "Stylo", "Bureau", "Chaise",
}

// GenerateTestData наполняет хранилище демонстрационными данными:
// 10 пользователей, 20 товаров и 15 заказов. Всё проходит через обычные
// операции создания, поэтому производные поля и сводные счётчики
// поддерживаются тем же инкрементальным путём, что и при ручных мутациях.
func (s *Store) GenerateTestData() error {
	for i := 1; i <= 10; i++ {
		role := model.RoleUser
		switch {
		case i == 1:
			role = model.RoleAdmin
		case i <= 3:
			role = model.RoleManager
		case i <= 6:
			role = model.RoleEditor
		}
		status := model.UserStatusActive
		if rand.Float64() <= 0.1 {
			status = model.UserStatusInactive
		}
		if _, err := s.CreateUser(model.NewUser{
			Username:  fmt.Sprintf("user%d", i),
			Password:  fmt.Sprintf("pass%d", i),
			Email:     fmt.Sprintf("user%d@example.com", i),
			FirstName: fmt.Sprintf("Prénom%d", i),
			LastName:  fmt.Sprintf("Nom%d", i),
			Role:      role,
			Status:    status,
		}); err != nil {
			return err
		}
	}

	for i := 1; i <= 20; i++ {
		price := math.Round((rand.Float64()*1000+10)*100) / 100
		if _, err := s.CreateProduct(model.NewProduct{
			Name:        fmt.Sprintf("%s Modèle %d", seedProductNames[rand.IntN(len(seedProductNames))], i),
			Description: fmt.Sprintf("Description détaillée du produit %d", i),
			Category:    seedCategories[rand.IntN(len(seedCategories))],
			Price:       price,
			Stock:       rand.IntN(100),
		}); err != nil {
			return err
		}
	}

	users := s.GetUsers()
	products := s.GetProducts()
	orderStatuses := []model.OrderStatus{
		model.OrderPending, model.OrderProcessing, model.OrderShipped,
		model.OrderDelivered, model.OrderCancelled,
	}
	paymentStatuses := []model.PaymentStatus{
		model.PaymentPending, model.PaymentPaid, model.PaymentFailed, model.PaymentRefunded,
	}

	for i := 1; i <= 15; i++ {
		u := users[rand.IntN(len(users))]

		var items []model.OrderItem
		var total float64
		for j := 0; j < rand.IntN(3)+1; j++ {
			p := products[rand.IntN(len(products))]
			quantity := rand.IntN(2) + 1
			subtotal := p.Price * float64(quantity)
			items = append(items, model.OrderItem{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Quantity:  quantity,
				Subtotal:  subtotal,
			})
			total += subtotal
		}

		if _, err := s.CreateOrder(model.NewOrder{
			UserID:          &u.ID,
			UserName:        u.FirstName + " " + u.LastName,
			UserEmail:       u.Email,
			Products:        items,
			TotalAmount:     math.Round(total*100) / 100,
			Status:          orderStatuses[rand.IntN(len(orderStatuses))],
			PaymentStatus:   paymentStatuses[rand.IntN(len(paymentStatuses))],
			ShippingAddress: fmt.Sprintf("%d Rue de Test, %d Paris", rand.IntN(1000), 75000+rand.IntN(20)),
			Notes:           fmt.Sprintf("Commande test %d", i),
		}); err != nil {
			return err
		}
	}

	// Счётчики коллекций приводятся к фактическим длинам; totalRevenue
	// уже поддержан инкрементально операциями создания заказов.
	totalUsers := len(s.GetUsers())
	totalProducts := len(s.GetProducts())
	totalOrders := len(s.GetOrders())
	growth := 12.5
	_, err := s.UpdateAnalytics(model.AnalyticsUpdate{
		TotalUsers:    &totalUsers,
		TotalProducts: &totalProducts,
		TotalOrders:   &totalOrders,
		MonthlyGrowth: &growth,
	})
	return err
}
