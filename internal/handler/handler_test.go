package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ayms/backoffice-system/internal/middleware"
	"github.com/ayms/backoffice-system/internal/model"
	"github.com/ayms/backoffice-system/internal/store"
)

type stubStore struct {
	userResp    *model.User
	usersResp   []model.User
	createdUser *model.User
	updatedUser *model.User
	deletedUser *model.User

	productResp    *model.Product
	productsResp   []model.Product
	createdProduct *model.Product
	updatedProduct *model.Product
	deletedProduct *model.Product

	orderResp    *model.Order
	ordersResp   []model.Order
	createdOrder *model.Order

	categoryResp    *model.Category
	categoriesResp  []model.Category
	createdCategory *model.Category

	bulkCount int

	loginUser   *model.User
	loginErr    error
	currentUser *model.User

	exportName string
	exportBody string
	importErr  error

	searchQuery string
}

func (s *stubStore) GetUsers() []model.User           { return s.usersResp }
func (s *stubStore) GetUserByID(id int64) *model.User { return s.userResp }
func (s *stubStore) CreateUser(in model.NewUser) (*model.User, error) {
	return s.createdUser, nil
}
func (s *stubStore) UpdateUser(id int64, upd model.UserUpdate) (*model.User, error) {
	return s.updatedUser, nil
}
func (s *stubStore) DeleteUser(id int64) (*model.User, error) { return s.deletedUser, nil }
func (s *stubStore) SearchUsers(query string) []model.User {
	s.searchQuery = query
	return s.usersResp
}
func (s *stubStore) BulkDeleteUsers(ids []int64) (int, error) { return s.bulkCount, nil }
func (s *stubStore) BulkUpdateUsers(ids []int64, upd model.UserUpdate) (int, error) {
	return s.bulkCount, nil
}

func (s *stubStore) GetProducts() []model.Product           { return s.productsResp }
func (s *stubStore) GetProductByID(id int64) *model.Product { return s.productResp }
func (s *stubStore) GetProductsByCategory(category string) []model.Product {
	return s.productsResp
}
func (s *stubStore) CreateProduct(in model.NewProduct) (*model.Product, error) {
	return s.createdProduct, nil
}
func (s *stubStore) UpdateProduct(id int64, upd model.ProductUpdate) (*model.Product, error) {
	return s.updatedProduct, nil
}
func (s *stubStore) DeleteProduct(id int64) (*model.Product, error) {
	return s.deletedProduct, nil
}
func (s *stubStore) SearchProducts(query string) []model.Product { return s.productsResp }
func (s *stubStore) BulkDeleteProducts(ids []int64) (int, error) { return s.bulkCount, nil }
func (s *stubStore) BulkUpdateStock(ids []int64, stock int) (int, error) {
	return s.bulkCount, nil
}

func (s *stubStore) GetOrders() []model.Order           { return s.ordersResp }
func (s *stubStore) GetOrderByID(id int64) *model.Order { return s.orderResp }
func (s *stubStore) GetOrdersByUser(userID int64) []model.Order {
	return s.ordersResp
}
func (s *stubStore) CreateOrder(in model.NewOrder) (*model.Order, error) {
	return s.createdOrder, nil
}
func (s *stubStore) UpdateOrder(id int64, upd model.OrderUpdate) (*model.Order, error) {
	return s.orderResp, nil
}
func (s *stubStore) DeleteOrder(id int64) (*model.Order, error) { return s.orderResp, nil }
func (s *stubStore) SearchOrders(query string) []model.Order    { return s.ordersResp }
func (s *stubStore) BulkDeleteOrders(ids []int64) (int, error)  { return s.bulkCount, nil }
func (s *stubStore) BulkUpdateOrderStatus(ids []int64, status model.OrderStatus) (int, error) {
	return s.bulkCount, nil
}

func (s *stubStore) GetCategories() []model.Category          { return s.categoriesResp }
func (s *stubStore) GetCategoryByID(id int64) *model.Category { return s.categoryResp }
func (s *stubStore) CreateCategory(in model.NewCategory) (*model.Category, error) {
	return s.createdCategory, nil
}
func (s *stubStore) UpdateCategory(id int64, upd model.CategoryUpdate) (*model.Category, error) {
	return s.categoryResp, nil
}
func (s *stubStore) DeleteCategory(id int64) (*model.Category, error) {
	return s.categoryResp, nil
}

func (s *stubStore) GetSettings() model.Settings { return model.Settings{} }
func (s *stubStore) UpdateSettings(upd model.SettingsUpdate) (model.Settings, error) {
	return model.Settings{}, nil
}
func (s *stubStore) GetAnalytics() model.Analytics { return model.Analytics{} }
func (s *stubStore) UpdateAnalytics(upd model.AnalyticsUpdate) (model.Analytics, error) {
	return model.Analytics{}, nil
}
func (s *stubStore) GetDashboardStats() store.DashboardStats {
	return store.DashboardStats{}
}
func (s *stubStore) GetMonthlyStats() map[string]store.MonthlyStat {
	return map[string]store.MonthlyStat{}
}

func (s *stubStore) Login(username, password string) (*model.User, error) {
	return s.loginUser, s.loginErr
}
func (s *stubStore) Logout() error { return nil }
func (s *stubStore) CurrentUser() (*model.User, error) {
	return s.currentUser, nil
}

func (s *stubStore) Export(w io.Writer) error {
	_, err := w.Write([]byte(s.exportBody))
	return err
}
func (s *stubStore) ExportFilename() string { return s.exportName }
func (s *stubStore) Import(r io.Reader) error {
	_, _ = io.ReadAll(r)
	return s.importErr
}
func (s *stubStore) GenerateTestData() error { return nil }

func newTestHandler(t *testing.T, s Store) *Handler {
	t.Helper()

	logger, err := zap.NewDevelopment()
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	auth := middleware.NewAuthMiddleware("test-secret")

	return NewHandler(s, logger, auth)
}

// withIDParam подкладывает параметр {id} в контекст маршрутизации chi.
func withIDParam(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestLogin_Success(t *testing.T) {
	s := &stubStore{
		loginUser: &model.User{ID: 1, Username: "admin", Role: model.RoleAdmin},
	}
	h := newTestHandler(t, s)

	body, _ := json.Marshal(credentialsRequest{
		Username: "admin",
		Password: "admin123",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}
	if len(res.Cookies()) == 0 {
		t.Fatalf("session cookie not set")
	}

	var got model.User
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Username != "admin" {
		t.Fatalf("username = %q, want %q", got.Username, "admin")
	}
}

func TestLogin_WrongCredentials(t *testing.T) {
	s := &stubStore{}
	h := newTestHandler(t, s)

	body, _ := json.Marshal(credentialsRequest{
		Username: "admin",
		Password: "wrong",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusUnauthorized)
	}
}

func TestLogin_EmptyCredentials(t *testing.T) {
	s := &stubStore{}
	h := newTestHandler(t, s)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":""}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Result().StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusBadRequest)
	}
}

func TestMe_Unauthorized(t *testing.T) {
	s := &stubStore{}
	h := newTestHandler(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	if rec.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusUnauthorized)
	}
}

func TestGetUser_Found(t *testing.T) {
	s := &stubStore{
		userResp: &model.User{ID: 7, Username: "jdupont"},
	}
	h := newTestHandler(t, s)

	req := withIDParam(httptest.NewRequest(http.MethodGet, "/api/users/7", nil), "7")
	rec := httptest.NewRecorder()

	h.GetUser(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	var got model.User
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("id = %d, want 7", got.ID)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	s := &stubStore{}
	h := newTestHandler(t, s)

	req := withIDParam(httptest.NewRequest(http.MethodGet, "/api/users/99", nil), "99")
	rec := httptest.NewRecorder()

	h.GetUser(rec, req)

	if rec.Result().StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusNotFound)
	}
}

func TestGetUser_BadID(t *testing.T) {
	s := &stubStore{
		userResp: &model.User{ID: 7},
	}
	h := newTestHandler(t, s)

	for _, raw := range []string{"abc", "0", "-3", ""} {
		req := withIDParam(httptest.NewRequest(http.MethodGet, "/api/users/"+raw, nil), raw)
		rec := httptest.NewRecorder()

		h.GetUser(rec, req)

		if rec.Result().StatusCode != http.StatusBadRequest {
			t.Fatalf("id %q: status = %d, want %d", raw, rec.Result().StatusCode, http.StatusBadRequest)
		}
	}
}

func TestCreateUser_Created(t *testing.T) {
	s := &stubStore{
		createdUser: &model.User{ID: 3, Username: "mmartin"},
	}
	h := newTestHandler(t, s)

	body, _ := json.Marshal(createUserRequest{
		Username: "mmartin",
		Password: "pass123",
		Email:    "mmartin@example.com",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	if rec.Result().StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusCreated)
	}
}

func TestCreateUser_MissingUsername(t *testing.T) {
	s := &stubStore{}
	h := newTestHandler(t, s)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"password":"x"}`))
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	if rec.Result().StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusBadRequest)
	}
}

func TestDeleteUser_ProtectedIsNotFound(t *testing.T) {
	// Хранилище возвращает nil для защищённой учётной записи admin.
	s := &stubStore{}
	h := newTestHandler(t, s)

	req := withIDParam(httptest.NewRequest(http.MethodDelete, "/api/users/1", nil), "1")
	rec := httptest.NewRecorder()

	h.DeleteUser(rec, req)

	if rec.Result().StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusNotFound)
	}
}

func TestCreateProduct_StringPrice(t *testing.T) {
	s := &stubStore{
		createdProduct: &model.Product{ID: 5, Name: "Clavier"},
	}
	h := newTestHandler(t, s)

	body := `{"name":"Clavier","price":"49.90","stock":"15"}`

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateProduct(rec, req)

	if rec.Result().StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusCreated)
	}
}

func TestCreateProduct_InvalidPrice(t *testing.T) {
	s := &stubStore{
		createdProduct: &model.Product{ID: 5},
	}
	h := newTestHandler(t, s)

	tests := []struct {
		name string
		body string
	}{
		{"non-numeric price", `{"name":"Clavier","price":"abc","stock":5}`},
		{"null price", `{"name":"Clavier","price":null,"stock":5}`},
		{"negative price", `{"name":"Clavier","price":-10,"stock":5}`},
		{"negative stock", `{"name":"Clavier","price":10,"stock":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.CreateProduct(rec, req)

			if rec.Result().StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusBadRequest)
			}
		})
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	s := &stubStore{}
	h := newTestHandler(t, s)

	req := withIDParam(httptest.NewRequest(http.MethodPut, "/api/products/42", strings.NewReader(`{"stock":7}`)), "42")
	rec := httptest.NewRecorder()

	h.UpdateProduct(rec, req)

	if rec.Result().StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusNotFound)
	}
}

func TestListUsers_Search(t *testing.T) {
	s := &stubStore{
		usersResp: []model.User{{ID: 2, Username: "jdupont"}},
	}
	h := newTestHandler(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/users?q=dupont", nil)
	rec := httptest.NewRecorder()

	h.ListUsers(rec, req)

	if rec.Result().StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusOK)
	}
	if s.searchQuery != "dupont" {
		t.Fatalf("search query = %q, want %q", s.searchQuery, "dupont")
	}
}

func TestBulkDeleteUsers_Count(t *testing.T) {
	s := &stubStore{bulkCount: 2}
	h := newTestHandler(t, s)

	req := httptest.NewRequest(http.MethodPost, "/api/users/bulk-delete", strings.NewReader(`{"ids":[2,3,99]}`))
	rec := httptest.NewRecorder()

	h.BulkDeleteUsers(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	var got bulkCountResponse
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Count != 2 {
		t.Fatalf("count = %d, want 2", got.Count)
	}
}

func TestExportData_Headers(t *testing.T) {
	s := &stubStore{
		exportName: "backoffice-data-2025-03-01.json",
		exportBody: `{"users":[],"products":[]}`,
	}
	h := newTestHandler(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/data/export", nil)
	rec := httptest.NewRecorder()

	h.ExportData(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type = %q", ct)
	}
	cd := res.Header.Get("Content-Disposition")
	if !strings.Contains(cd, s.exportName) {
		t.Fatalf("content-disposition %q does not name the file", cd)
	}

	body, _ := io.ReadAll(res.Body)
	if string(body) != s.exportBody {
		t.Fatalf("body = %q, want %q", string(body), s.exportBody)
	}
}

func TestImportData_Malformed(t *testing.T) {
	s := &stubStore{importErr: store.ErrMalformedDocument}
	h := newTestHandler(t, s)

	req := httptest.NewRequest(http.MethodPost, "/api/data/import", strings.NewReader(`{"broken":`))
	rec := httptest.NewRecorder()

	h.ImportData(rec, req)

	if rec.Result().StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusUnprocessableEntity)
	}
}

func TestRouter_RequiresAuth(t *testing.T) {
	s := &stubStore{
		usersResp: []model.User{{ID: 1, Username: "admin"}},
	}
	h := newTestHandler(t, s)
	router := h.SetupRouter()

	// Без cookie защищённые маршруты закрыты.
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusUnauthorized)
	}

	// С валидной cookie запрос проходит до обработчика.
	cookieRec := httptest.NewRecorder()
	h.authMiddleware.SetAuthCookie(cookieRec, 1)

	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.AddCookie(cookieRec.Result().Cookies()[0])
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Result().StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusOK)
	}
}
