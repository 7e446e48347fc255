// Package model содержит доменные сущности бэкофиса.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Role определяет роль пользователя бэкофиса.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleEditor  Role = "EDITOR"
	RoleUser    Role = "USER"
)

// UserStatus описывает состояние учётной записи пользователя.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// User представляет учётную запись пользователя бэкофиса.
// Пароль хранится в открытом виде: так устроен исходный контракт данных,
// криптографической аутентификации здесь нет.
type User struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	Avatar    string     `json:"avatar"`
	CreatedAt string     `json:"createdAt"`
	LastLogin *string    `json:"lastLogin"`
}

// ProductStatus описывает складской статус товара. Значение всегда
// выводится из остатка и никогда не принимается от вызывающего кода.
type ProductStatus string

const (
	ProductInStock    ProductStatus = "IN_STOCK"
	ProductLowStock   ProductStatus = "LOW_STOCK"
	ProductOutOfStock ProductStatus = "OUT_OF_STOCK"
)

// Product представляет товар каталога.
type Product struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	Status      ProductStatus `json:"status"`
	Image       string        `json:"image"`
	CreatedAt   string        `json:"createdAt"`
}

// OrderStatus описывает статус обработки заказа.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// PaymentStatus описывает статус оплаты заказа.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// OrderItem описывает позицию заказа.
type OrderItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Order представляет заказ. UserID равен nil для гостевых заказов.
type Order struct {
	ID              int64         `json:"id"`
	OrderNumber     string        `json:"orderNumber"`
	UserID          *int64        `json:"userId"`
	UserName        string        `json:"userName"`
	UserEmail       string        `json:"userEmail"`
	Products        []OrderItem   `json:"products"`
	TotalAmount     float64       `json:"totalAmount"`
	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	ShippingAddress string        `json:"shippingAddress"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       string        `json:"createdAt"`
	UpdatedAt       string        `json:"updatedAt"`
}

// Category представляет категорию каталога. ProductCount — производное
// поле, поддерживаемое операциями над товарами.
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
}

// Settings содержит общие настройки бэкофиса.
type Settings struct {
	SiteName    string `json:"siteName"`
	Currency    string `json:"currency"`
	DateFormat  string `json:"dateFormat"`
	Timezone    string `json:"timezone"`
	Maintenance bool   `json:"maintenance"`
}

// Analytics содержит сводные счётчики, поддерживаемые инкрементально
// при каждой мутации соответствующей коллекции.
type Analytics struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalProducts int     `json:"totalProducts"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	MonthlyGrowth float64 `json:"monthlyGrowth"`
}

// Document — полный снимок всех коллекций, единица персистентности
// и импорта/экспорта.
type Document struct {
	Users      []User     `json:"users"`
	Products   []Product  `json:"products"`
	Orders     []Order    `json:"orders"`
	Categories []Category `json:"categories"`
	Settings   Settings   `json:"settings"`
	Analytics  Analytics  `json:"analytics"`
}

// Amount — денежное или числовое значение, принимаемое из JSON как числом,
// так и строкой ("499.99"). Нечисловые значения отвергаются на этапе разбора.
type Amount float64

// UnmarshalJSON реализует разбор числа или его строкового представления.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("amount: empty value")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("amount: %q is not a number", s)
		}
		*a = Amount(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("amount: %s is not a number", data)
	}
	*a = Amount(v)
	return nil
}

// Quantity — целое значение, принимаемое из JSON числом или строкой ("15").
type Quantity int

// UnmarshalJSON реализует разбор целого числа или его строкового представления.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("quantity: empty value")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("quantity: %q is not an integer", s)
		}
		*q = Quantity(v)
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("quantity: %s is not an integer", data)
	}
	*q = Quantity(v)
	return nil
}
