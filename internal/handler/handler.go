// Package handler содержит HTTP-обработчики JSON API бэкофиса.
package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ayms/backoffice-system/internal/middleware"
	"github.com/ayms/backoffice-system/internal/model"
	"github.com/ayms/backoffice-system/internal/store"
)

// Store определяет контракт хранилища данных, используемый HTTP-обработчиками.
type Store interface {
	GetUsers() []model.User
	GetUserByID(id int64) *model.User
	CreateUser(in model.NewUser) (*model.User, error)
	UpdateUser(id int64, upd model.UserUpdate) (*model.User, error)
	DeleteUser(id int64) (*model.User, error)
	SearchUsers(query string) []model.User
	BulkDeleteUsers(ids []int64) (int, error)
	BulkUpdateUsers(ids []int64, upd model.UserUpdate) (int, error)

	GetProducts() []model.Product
	GetProductByID(id int64) *model.Product
	GetProductsByCategory(category string) []model.Product
	CreateProduct(in model.NewProduct) (*model.Product, error)
	UpdateProduct(id int64, upd model.ProductUpdate) (*model.Product, error)
	DeleteProduct(id int64) (*model.Product, error)
	SearchProducts(query string) []model.Product
	BulkDeleteProducts(ids []int64) (int, error)
	BulkUpdateStock(ids []int64, stock int) (int, error)

	GetOrders() []model.Order
	GetOrderByID(id int64) *model.Order
	GetOrdersByUser(userID int64) []model.Order
	CreateOrder(in model.NewOrder) (*model.Order, error)
	UpdateOrder(id int64, upd model.OrderUpdate) (*model.Order, error)
	DeleteOrder(id int64) (*model.Order, error)
	SearchOrders(query string) []model.Order
	BulkDeleteOrders(ids []int64) (int, error)
	BulkUpdateOrderStatus(ids []int64, status model.OrderStatus) (int, error)

	GetCategories() []model.Category
	GetCategoryByID(id int64) *model.Category
	CreateCategory(in model.NewCategory) (*model.Category, error)
	UpdateCategory(id int64, upd model.CategoryUpdate) (*model.Category, error)
	DeleteCategory(id int64) (*model.Category, error)

	GetSettings() model.Settings
	UpdateSettings(upd model.SettingsUpdate) (model.Settings, error)
	GetAnalytics() model.Analytics
	UpdateAnalytics(upd model.AnalyticsUpdate) (model.Analytics, error)
	GetDashboardStats() store.DashboardStats
	GetMonthlyStats() map[string]store.MonthlyStat

	Login(username, password string) (*model.User, error)
	Logout() error
	CurrentUser() (*model.User, error)

	Export(w io.Writer) error
	ExportFilename() string
	Import(r io.Reader) error
	GenerateTestData() error
}

// Handler реализует HTTP-обработчики JSON API бэкофиса.
type Handler struct {
	store          Store
	logger         *zap.Logger
	authMiddleware *middleware.AuthMiddleware
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Store, logger *zap.Logger, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{
		store:          s,
		logger:         logger,
		authMiddleware: auth,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

// idParam извлекает числовой идентификатор из URL. Строковое
// представление приводится к числу здесь, на границе системы.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badRequest(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func (h *Handler) internalError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

type bulkIDsRequest struct {
	IDs []int64 `json:"ids"`
}

type bulkCountResponse struct {
	Count int `json:"count"`
}
