// Package store реализует хранилище данных бэкофиса: единый документ со
// всеми коллекциями и CRUD-операции над ним. Каждая мутация приводит
// производные поля в согласованное состояние и синхронно сохраняет
// документ целиком через Backend до возврата управления.
package store

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/ayms/backoffice-system/internal/model"
	"github.com/ayms/backoffice-system/internal/storage"
)

// CategoryUncategorized — категория, назначаемая товарам удалённой категории.
const CategoryUncategorized = "Non catégorisé"

// Порог остатка, выше которого товар считается в наличии.
const lowStockThreshold = 20

// Store — единственный источник истины для всех коллекций бэкофиса.
// Отсутствие записи сигнализируется nil-результатом, а не ошибкой;
// ошибки возвращаются только при сбоях персистентности.
type Store struct {
	mu      sync.RWMutex
	backend storage.Backend
	doc     *model.Document
	current *model.User
}

// New создаёт хранилище поверх указанного Backend. Если сохранённого
// документа нет, инициализирует документ по умолчанию и сохраняет его.
func New(backend storage.Backend) (*Store, error) {
	doc, err := backend.Load()
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	s := &Store{backend: backend, doc: doc}

	if s.doc == nil {
		s.doc = defaultDocument()
		if err := s.persist(); err != nil {
			return nil, err
		}
	}

	current, err := backend.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	s.current = current

	return s, nil
}

// Close освобождает ресурсы хранилища.
func (s *Store) Close() error {
	return s.backend.Close()
}

func defaultDocument() *model.Document {
	today := dateStamp()
	return &model.Document{
		Users: []model.User{
			{
				ID:        1,
				Username:  "admin",
				Password:  "admin123",
				Email:     "admin@backoffice.com",
				FirstName: "Admin",
				LastName:  "System",
				Role:      model.RoleAdmin,
				Status:    model.UserStatusActive,
				Avatar:    "https://ui-avatars.com/api/?name=Admin+System&background=3498db&color=fff",
				CreatedAt: "2024-01-01",
				LastLogin: &today,
			},
		},
		Products: []model.Product{},
		Orders:   []model.Order{},
		Categories: []model.Category{
			{ID: 1, Name: "Électronique"},
			{ID: 2, Name: "Informatique"},
			{ID: 3, Name: "Vêtements"},
			{ID: 4, Name: "Livres"},
			{ID: 5, Name: "Maison"},
		},
		Settings: model.Settings{
			SiteName:   "Backoffice Admin",
			Currency:   "EUR",
			DateFormat: "DD/MM/YYYY",
			Timezone:   "Europe/Paris",
		},
		Analytics: model.Analytics{
			TotalUsers: 1,
		},
	}
}

func (s *Store) persist() error {
	if err := s.backend.Save(s.doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func dateStamp() string {
	return time.Now().Format("2006-01-02")
}

// nextID возвращает очередной идентификатор: max(существующих)+1 или 1 для
// пустой коллекции. Идентификаторы удалённых записей не переиспользуются,
// пока в коллекции остаётся запись с большим id.
func nextID(ids []int64) int64 {
	var maxID int64
	for _, id := range ids {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func userIDs(users []model.User) []int64 {
	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

func productIDs(products []model.Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func orderIDs(orders []model.Order) []int64 {
	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	return ids
}

func categoryIDs(categories []model.Category) []int64 {
	ids := make([]int64, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return ids
}

// stockStatus выводит складской статус из остатка.
func stockStatus(stock int) model.ProductStatus {
	switch {
	case stock > lowStockThreshold:
		return model.ProductInStock
	case stock > 0:
		return model.ProductLowStock
	default:
		return model.ProductOutOfStock
	}
}

// adjustCategoryCount изменяет счётчик товаров категории на delta,
// не опуская его ниже нуля. Неизвестные категории игнорируются.
func (s *Store) adjustCategoryCount(name string, delta int) {
	for i := range s.doc.Categories {
		if s.doc.Categories[i].Name != name {
			continue
		}
		count := s.doc.Categories[i].ProductCount + delta
		if count < 0 {
			count = 0
		}
		s.doc.Categories[i].ProductCount = count
		return
	}
}

func avatarURL(firstName, lastName string) string {
	name := url.QueryEscape(firstName + " " + lastName)
	return "https://ui-avatars.com/api/?name=" + name + "&background=random"
}

func placeholderImage(name string) string {
	runes := []rune(name)
	if len(runes) > 20 {
		runes = runes[:20]
	}
	return "https://via.placeholder.com/300x200/random/ffffff?text=" + url.QueryEscape(string(runes))
}

// ========== USERS ==========

// GetUsers возвращает всех пользователей в порядке вставки.
func (s *Store) GetUsers() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]model.User, len(s.doc.Users))
	copy(users, s.doc.Users)
	return users
}

// GetUserByID возвращает пользователя по идентификатору или nil.
func (s *Store) GetUserByID(id int64) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUser(id)
}

func (s *Store) findUser(id int64) *model.User {
	for i := range s.doc.Users {
		if s.doc.Users[i].ID == id {
			u := s.doc.Users[i]
			return &u
		}
	}
	return nil
}

// GetUserByUsername возвращает пользователя по имени или nil.
func (s *Store) GetUserByUsername(username string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.doc.Users {
		if s.doc.Users[i].Username == username {
			u := s.doc.Users[i]
			return &u
		}
	}
	return nil
}

// CreateUser создаёт пользователя: назначает идентификатор, аватар и дату
// создания, по умолчанию выставляет статус ACTIVE, увеличивает счётчик
// totalUsers и сохраняет документ.
func (s *Store) CreateUser(in model.NewUser) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := model.User{
		ID:        nextID(userIDs(s.doc.Users)),
		Username:  in.Username,
		Password:  in.Password,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      in.Role,
		Status:    in.Status,
		Avatar:    in.Avatar,
		CreatedAt: dateStamp(),
	}
	if u.Status == "" {
		u.Status = model.UserStatusActive
	}
	if u.Avatar == "" {
		u.Avatar = avatarURL(in.FirstName, in.LastName)
	}

	s.doc.Users = append(s.doc.Users, u)
	s.doc.Analytics.TotalUsers++
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser накладывает частичное обновление на пользователя.
// Возвращает nil, если пользователь не найден.
func (s *Store) UpdateUser(id int64, upd model.UserUpdate) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Users {
		if s.doc.Users[i].ID != id {
			continue
		}
		u := &s.doc.Users[i]
		if upd.Password != nil {
			u.Password = *upd.Password
		}
		if upd.Email != nil {
			u.Email = *upd.Email
		}
		if upd.FirstName != nil {
			u.FirstName = *upd.FirstName
		}
		if upd.LastName != nil {
			u.LastName = *upd.LastName
		}
		if upd.Role != nil {
			u.Role = *upd.Role
		}
		if upd.Status != nil {
			u.Status = *upd.Status
		}
		if upd.Avatar != nil {
			u.Avatar = *upd.Avatar
		}
		if upd.LastLogin != nil {
			u.LastLogin = upd.LastLogin
		}
		if err := s.persist(); err != nil {
			return nil, err
		}
		out := *u
		return &out, nil
	}
	return nil, nil
}

// DeleteUser удаляет пользователя и уменьшает счётчик totalUsers.
// Пользователь admin защищён: попытка удаления эквивалентна «не найдено».
func (s *Store) DeleteUser(id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Users {
		if s.doc.Users[i].ID != id {
			continue
		}
		if s.doc.Users[i].Username == "admin" {
			return nil, nil
		}
		deleted := s.doc.Users[i]
		s.doc.Users = append(s.doc.Users[:i], s.doc.Users[i+1:]...)
		s.doc.Analytics.TotalUsers--
		if err := s.persist(); err != nil {
			return nil, err
		}
		return &deleted, nil
	}
	return nil, nil
}

// ========== PRODUCTS ==========

// GetProducts возвращает все товары в порядке вставки.
func (s *Store) GetProducts() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]model.Product, len(s.doc.Products))
	copy(products, s.doc.Products)
	return products
}

// GetProductByID возвращает товар по идентификатору или nil.
func (s *Store) GetProductByID(id int64) *model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.doc.Products {
		if s.doc.Products[i].ID == id {
			p := s.doc.Products[i]
			return &p
		}
	}
	return nil
}

// GetProductsByCategory возвращает товары с точным совпадением категории.
func (s *Store) GetProductsByCategory(category string) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var products []model.Product
	for _, p := range s.doc.Products {
		if p.Category == category {
			products = append(products, p)
		}
	}
	return products
}

// CreateProduct создаёт товар: назначает идентификатор, выводит статус из
// остатка, подставляет изображение-заглушку при его отсутствии, увеличивает
// счётчик категории и totalProducts, сохраняет документ.
func (s *Store) CreateProduct(in model.NewProduct) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Product{
		ID:          nextID(productIDs(s.doc.Products)),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		Status:      stockStatus(in.Stock),
		Image:       in.Image,
		CreatedAt:   dateStamp(),
	}
	if p.Image == "" {
		p.Image = placeholderImage(in.Name)
	}

	s.doc.Products = append(s.doc.Products, p)
	s.adjustCategoryCount(p.Category, 1)
	s.doc.Analytics.TotalProducts++
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct накладывает частичное обновление на товар. Статус всегда
// выводится из итогового остатка; при смене категории счётчики обеих
// категорий корректируются. Возвращает nil, если товар не найден.
func (s *Store) UpdateProduct(id int64, upd model.ProductUpdate) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Products {
		if s.doc.Products[i].ID != id {
			continue
		}
		p := &s.doc.Products[i]
		oldCategory := p.Category

		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if upd.Category != nil {
			p.Category = *upd.Category
		}
		if upd.Price != nil {
			p.Price = *upd.Price
		}
		if upd.Stock != nil {
			p.Stock = *upd.Stock
		}
		if upd.Image != nil {
			p.Image = *upd.Image
		}
		p.Status = stockStatus(p.Stock)

		if p.Category != oldCategory {
			s.adjustCategoryCount(oldCategory, -1)
			s.adjustCategoryCount(p.Category, 1)
		}

		if err := s.persist(); err != nil {
			return nil, err
		}
		out := *p
		return &out, nil
	}
	return nil, nil
}

// DeleteProduct удаляет товар, уменьшает счётчик его категории и
// totalProducts. Возвращает nil, если товар не найден.
func (s *Store) DeleteProduct(id int64) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Products {
		if s.doc.Products[i].ID != id {
			continue
		}
		deleted := s.doc.Products[i]
		s.doc.Products = append(s.doc.Products[:i], s.doc.Products[i+1:]...)
		s.adjustCategoryCount(deleted.Category, -1)
		s.doc.Analytics.TotalProducts--
		if err := s.persist(); err != nil {
			return nil, err
		}
		return &deleted, nil
	}
	return nil, nil
}

// ========== ORDERS ==========

// GetOrders возвращает все заказы в порядке вставки.
func (s *Store) GetOrders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]model.Order, len(s.doc.Orders))
	copy(orders, s.doc.Orders)
	return orders
}

// GetOrderByID возвращает заказ по идентификатору или nil.
func (s *Store) GetOrderByID(id int64) *model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.doc.Orders {
		if s.doc.Orders[i].ID == id {
			o := s.doc.Orders[i]
			return &o
		}
	}
	return nil
}

// GetOrdersByUser возвращает заказы указанного пользователя.
// Гостевые заказы (UserID == nil) сюда не попадают.
func (s *Store) GetOrdersByUser(userID int64) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var orders []model.Order
	for _, o := range s.doc.Orders {
		if o.UserID != nil && *o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders
}

// CreateOrder создаёт заказ: назначает идентификатор и номер вида ORD-007,
// проставляет даты, увеличивает totalOrders и totalRevenue, сохраняет документ.
func (s *Store) CreateOrder(in model.NewOrder) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := nextID(orderIDs(s.doc.Orders))
	today := dateStamp()
	o := model.Order{
		ID:              id,
		OrderNumber:     fmt.Sprintf("ORD-%03d", id),
		UserID:          in.UserID,
		UserName:        in.UserName,
		UserEmail:       in.UserEmail,
		Products:        in.Products,
		TotalAmount:     in.TotalAmount,
		Status:          in.Status,
		PaymentStatus:   in.PaymentStatus,
		ShippingAddress: in.ShippingAddress,
		Notes:           in.Notes,
		CreatedAt:       today,
		UpdatedAt:       today,
	}
	if o.Products == nil {
		o.Products = []model.OrderItem{}
	}

	s.doc.Orders = append(s.doc.Orders, o)
	s.doc.Analytics.TotalOrders++
	s.doc.Analytics.TotalRevenue += o.TotalAmount
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOrder накладывает частичное обновление на заказ. При изменении
// суммы totalRevenue корректируется ровно на разницу. Возвращает nil,
// если заказ не найден.
func (s *Store) UpdateOrder(id int64, upd model.OrderUpdate) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Orders {
		if s.doc.Orders[i].ID != id {
			continue
		}
		o := &s.doc.Orders[i]

		if upd.UserName != nil {
			o.UserName = *upd.UserName
		}
		if upd.UserEmail != nil {
			o.UserEmail = *upd.UserEmail
		}
		if upd.Products != nil {
			o.Products = upd.Products
		}
		if upd.TotalAmount != nil {
			s.doc.Analytics.TotalRevenue += *upd.TotalAmount - o.TotalAmount
			o.TotalAmount = *upd.TotalAmount
		}
		if upd.Status != nil {
			o.Status = *upd.Status
		}
		if upd.PaymentStatus != nil {
			o.PaymentStatus = *upd.PaymentStatus
		}
		if upd.ShippingAddress != nil {
			o.ShippingAddress = *upd.ShippingAddress
		}
		if upd.Notes != nil {
			o.Notes = *upd.Notes
		}
		o.UpdatedAt = dateStamp()

		if err := s.persist(); err != nil {
			return nil, err
		}
		out := *o
		return &out, nil
	}
	return nil, nil
}

// DeleteOrder удаляет заказ, уменьшает totalOrders и вычитает его сумму
// из totalRevenue. Возвращает nil, если заказ не найден.
func (s *Store) DeleteOrder(id int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Orders {
		if s.doc.Orders[i].ID != id {
			continue
		}
		deleted := s.doc.Orders[i]
		s.doc.Orders = append(s.doc.Orders[:i], s.doc.Orders[i+1:]...)
		s.doc.Analytics.TotalOrders--
		s.doc.Analytics.TotalRevenue -= deleted.TotalAmount
		if err := s.persist(); err != nil {
			return nil, err
		}
		return &deleted, nil
	}
	return nil, nil
}

// ========== CATEGORIES ==========

// GetCategories возвращает все категории в порядке вставки.
func (s *Store) GetCategories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	categories := make([]model.Category, len(s.doc.Categories))
	copy(categories, s.doc.Categories)
	return categories
}

// GetCategoryByID возвращает категорию по идентификатору или nil.
func (s *Store) GetCategoryByID(id int64) *model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.doc.Categories {
		if s.doc.Categories[i].ID == id {
			c := s.doc.Categories[i]
			return &c
		}
	}
	return nil
}

// CreateCategory создаёт категорию с нулевым счётчиком товаров.
func (s *Store) CreateCategory(in model.NewCategory) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := model.Category{
		ID:   nextID(categoryIDs(s.doc.Categories)),
		Name: in.Name,
	}
	s.doc.Categories = append(s.doc.Categories, c)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCategory накладывает частичное обновление на категорию.
// Возвращает nil, если категория не найдена.
func (s *Store) UpdateCategory(id int64, upd model.CategoryUpdate) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Categories {
		if s.doc.Categories[i].ID != id {
			continue
		}
		if upd.Name != nil {
			s.doc.Categories[i].Name = *upd.Name
		}
		if err := s.persist(); err != nil {
			return nil, err
		}
		c := s.doc.Categories[i]
		return &c, nil
	}
	return nil, nil
}

// DeleteCategory удаляет категорию, предварительно переводя все её товары
// в категорию CategoryUncategorized. Счётчик удаляемой категории
// отбрасывается вместе с ней. Возвращает nil, если категория не найдена.
func (s *Store) DeleteCategory(id int64) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Categories {
		if s.doc.Categories[i].ID != id {
			continue
		}
		deleted := s.doc.Categories[i]

		for j := range s.doc.Products {
			if s.doc.Products[j].Category == deleted.Name {
				s.doc.Products[j].Category = CategoryUncategorized
			}
		}

		s.doc.Categories = append(s.doc.Categories[:i], s.doc.Categories[i+1:]...)
		if err := s.persist(); err != nil {
			return nil, err
		}
		return &deleted, nil
	}
	return nil, nil
}

// ========== SETTINGS / ANALYTICS ==========

// GetSettings возвращает настройки бэкофиса.
func (s *Store) GetSettings() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Settings
}

// UpdateSettings накладывает частичное обновление на настройки.
func (s *Store) UpdateSettings(upd model.SettingsUpdate) (model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if upd.SiteName != nil {
		s.doc.Settings.SiteName = *upd.SiteName
	}
	if upd.Currency != nil {
		s.doc.Settings.Currency = *upd.Currency
	}
	if upd.DateFormat != nil {
		s.doc.Settings.DateFormat = *upd.DateFormat
	}
	if upd.Timezone != nil {
		s.doc.Settings.Timezone = *upd.Timezone
	}
	if upd.Maintenance != nil {
		s.doc.Settings.Maintenance = *upd.Maintenance
	}
	if err := s.persist(); err != nil {
		return model.Settings{}, err
	}
	return s.doc.Settings, nil
}

// GetAnalytics возвращает сводные счётчики.
func (s *Store) GetAnalytics() model.Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Analytics
}

// UpdateAnalytics накладывает частичное обновление на сводные счётчики.
func (s *Store) UpdateAnalytics(upd model.AnalyticsUpdate) (model.Analytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if upd.TotalUsers != nil {
		s.doc.Analytics.TotalUsers = *upd.TotalUsers
	}
	if upd.TotalProducts != nil {
		s.doc.Analytics.TotalProducts = *upd.TotalProducts
	}
	if upd.TotalOrders != nil {
		s.doc.Analytics.TotalOrders = *upd.TotalOrders
	}
	if upd.TotalRevenue != nil {
		s.doc.Analytics.TotalRevenue = *upd.TotalRevenue
	}
	if upd.MonthlyGrowth != nil {
		s.doc.Analytics.MonthlyGrowth = *upd.MonthlyGrowth
	}
	if err := s.persist(); err != nil {
		return model.Analytics{}, err
	}
	return s.doc.Analytics, nil
}
