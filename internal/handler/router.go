package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/ayms/backoffice-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware бэкофиса.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware.Middleware)

			r.Post("/auth/logout", h.Logout)
			r.Get("/auth/me", h.Me)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.ListUsers)
				r.Post("/", h.CreateUser)
				r.Post("/bulk-delete", h.BulkDeleteUsers)
				r.Post("/bulk-status", h.BulkUpdateUserStatus)
				r.Get("/{id}", h.GetUser)
				r.Put("/{id}", h.UpdateUser)
				r.Delete("/{id}", h.DeleteUser)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.ListProducts)
				r.Post("/", h.CreateProduct)
				r.Post("/bulk-delete", h.BulkDeleteProducts)
				r.Post("/bulk-stock", h.BulkUpdateStock)
				r.Get("/{id}", h.GetProduct)
				r.Put("/{id}", h.UpdateProduct)
				r.Delete("/{id}", h.DeleteProduct)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.ListOrders)
				r.Post("/", h.CreateOrder)
				r.Post("/bulk-delete", h.BulkDeleteOrders)
				r.Post("/bulk-status", h.BulkUpdateOrderStatus)
				r.Get("/{id}", h.GetOrder)
				r.Put("/{id}", h.UpdateOrder)
				r.Delete("/{id}", h.DeleteOrder)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.ListCategories)
				r.Post("/", h.CreateCategory)
				r.Get("/{id}", h.GetCategory)
				r.Put("/{id}", h.UpdateCategory)
				r.Delete("/{id}", h.DeleteCategory)
			})

			r.Get("/settings", h.GetSettings)
			r.Put("/settings", h.UpdateSettings)
			r.Get("/analytics", h.GetAnalytics)
			r.Put("/analytics", h.UpdateAnalytics)

			r.Get("/stats/dashboard", h.DashboardStats)
			r.Get("/stats/monthly", h.MonthlyStats)

			r.Get("/data/export", h.ExportData)
			r.Post("/data/import", h.ImportData)
			r.Post("/data/seed", h.SeedData)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
