package service

import (
	"context"
	"time"

	"restaurant-service/internal/models"

	"github.com/google/uuid"
)

type OrderItemEvent struct {
	ItemID   uuid.UUID       `json:"item_id"`
	Kind     models.ItemKind `json:"kind"`
	Quantity uint32          `json:"quantity"`
}

type OrderCreatedEvent struct {
	OrderID      uuid.UUID        `json:"order_id"`
	UserID       *uuid.UUID       `json:"user_id,omitempty"`
	RestaurantID uuid.UUID        `json:"restaurant_id"`
	Items        []OrderItemEvent `json:"items"`
	TotalCents   int64            `json:"total_cents"`
	CreatedAt    time.Time        `json:"created_at"`
}

type OrderStatusChangedEvent struct {
	OrderID      uuid.UUID          `json:"order_id"`
	RestaurantID uuid.UUID          `json:"restaurant_id"`
	From         models.OrderStatus `json:"from"`
	To           models.OrderStatus `json:"to"`
	ChangedAt    time.Time          `json:"changed_at"`
}

type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
	PublishOrderStatusChanged(ctx context.Context, e OrderStatusChangedEvent) error
}
