package models

import (
	"time"

	"github.com/google/uuid"
)

// Статус заказа — строковый тип, значения фиксированы CHECK-ограничением в миграции.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsTerminal: из delivered и cancelled переходов нет.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Вид позиции меню: блюдо или напиток. Определяет таблицу каталога при resolve.
type ItemKind string

const (
	ItemKindDish  ItemKind = "dish"
	ItemKindDrink ItemKind = "drink"
)

func (k ItemKind) Valid() bool {
	return k == ItemKindDish || k == ItemKindDrink
}

const (
	DefaultPaymentMethod = "cash"
	DefaultPaymentStatus = "awaiting"
)

type Order struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       *uuid.UUID  `gorm:"type:uuid;index" json:"userId,omitempty"` // nil для гостевых заказов
	RestaurantID uuid.UUID   `gorm:"type:uuid;not null;index" json:"restaurantId"`
	Status       OrderStatus `gorm:"type:text;not null;default:'pending';index" json:"status"`

	City        string `gorm:"type:text;not null" json:"city"`
	Address     string `gorm:"type:text;not null" json:"address"`
	PhoneNumber string `gorm:"type:text;not null" json:"phoneNumber"`

	// Считается один раз при создании по ценам каталога на тот момент,
	// дальше не пересчитывается.
	TotalCents int64 `gorm:"not null;default:0" json:"totalCents"`

	PaymentMethod string `gorm:"type:text;not null;default:'cash'" json:"paymentMethod"`
	PaymentStatus string `gorm:"type:text;not null;default:'awaiting'" json:"paymentStatus"`

	CreatedAt time.Time `gorm:"not null;default:now();index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Order) TableName() string { return "orders" }

// Позиция хранится ровно так, как пришла в заказе: id + вид + количество.
// Имя и цена не снимаются в снапшот — на чтении они резолвятся из каталога заново.
type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null" json:"itemId"`
	Kind     ItemKind  `gorm:"type:text;not null" json:"kind"`
	Quantity uint32    `gorm:"type:int;not null" json:"quantity"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"-"`
}

func (OrderItem) TableName() string { return "order_items" }

type Dish struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	PriceCents  int64      `gorm:"not null" json:"priceCents"`
	Kcal        int32      `gorm:"not null;default:0" json:"kcal"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	Available   bool       `gorm:"not null;default:true" json:"available"`
	FilePath    string     `gorm:"type:text" json:"filePath,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"-"`
}

func (Dish) TableName() string { return "dishes" }

type Drink struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	PriceCents  int64      `gorm:"not null" json:"priceCents"`
	Kcal        int32      `gorm:"not null;default:0" json:"kcal"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	Available   bool       `gorm:"not null;default:true" json:"available"`
	FilePath    string     `gorm:"type:text" json:"filePath,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"-"`
}

func (Drink) TableName() string { return "drinks" }
