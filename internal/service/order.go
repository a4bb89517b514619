package service

import (
	"context"

	"restaurant-service/internal/models"

	"github.com/google/uuid"
)

type CreateOrderItem struct {
	ItemID   uuid.UUID
	Quantity uint32
	Kind     models.ItemKind
}

type CreateOrderInput struct {
	City          string
	Address       string
	PhoneNumber   string
	RestaurantID  uuid.UUID
	Items         []CreateOrderItem
	PaymentMethod string
	PaymentStatus string
}

type ListFilter struct {
	Status *models.OrderStatus
	Limit  int
	Offset int
}

type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*DisplayOrder, error)
	ListOrders(ctx context.Context, f ListFilter) ([]DisplayOrder, int64, error)
	ListMyOrders(ctx context.Context, f ListFilter) ([]DisplayOrder, int64, error)
	TransitionOrder(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*DisplayOrder, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
