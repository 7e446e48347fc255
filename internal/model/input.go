package model

// NewUser содержит поля для создания пользователя. Avatar и Status
// необязательны: хранилище подставит сгенерированный аватар и ACTIVE.
type NewUser struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Role      Role
	Status    UserStatus
	Avatar    string
}

// UserUpdate описывает частичное обновление пользователя. Username
// неизменяем после создания и потому отсутствует.
type UserUpdate struct {
	Password  *string
	Email     *string
	FirstName *string
	LastName  *string
	Role      *Role
	Status    *UserStatus
	Avatar    *string
	LastLogin *string
}

// NewProduct содержит поля для создания товара. Image необязателен.
type NewProduct struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
	Image       string
}

// ProductUpdate описывает частичное обновление товара. Status не
// принимается: он всегда выводится из итогового остатка.
type ProductUpdate struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Stock       *int
	Image       *string
}

// NewOrder содержит поля для создания заказа.
type NewOrder struct {
	UserID          *int64
	UserName        string
	UserEmail       string
	Products        []OrderItem
	TotalAmount     float64
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	ShippingAddress string
	Notes           string
}

// OrderUpdate описывает частичное обновление заказа.
type OrderUpdate struct {
	UserName        *string
	UserEmail       *string
	Products        []OrderItem
	TotalAmount     *float64
	Status          *OrderStatus
	PaymentStatus   *PaymentStatus
	ShippingAddress *string
	Notes           *string
}

// NewCategory содержит поля для создания категории. ProductCount
// инициализируется нулём и не принимается от вызывающего кода.
type NewCategory struct {
	Name string
}

// CategoryUpdate описывает частичное обновление категории.
type CategoryUpdate struct {
	Name *string
}

// SettingsUpdate описывает частичное обновление настроек.
type SettingsUpdate struct {
	SiteName    *string
	Currency    *string
	DateFormat  *string
	Timezone    *string
	Maintenance *bool
}

// AnalyticsUpdate описывает частичное обновление сводных счётчиков.
type AnalyticsUpdate struct {
	TotalUsers    *int
	TotalProducts *int
	TotalOrders   *int
	TotalRevenue  *float64
	MonthlyGrowth *float64
}
