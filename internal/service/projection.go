package service

import (
	"context"
	"time"

	"restaurant-service/internal/models"

	"github.com/google/uuid"
)

// Имя-заглушка для позиций, удалённых из каталога после оформления заказа.
const UnavailableItemName = "product unavailable"

type DisplayItem struct {
	ItemID     uuid.UUID       `json:"itemId"`
	Name       string          `json:"name"`
	PriceCents int64           `json:"priceCents"`
	Quantity   uint32          `json:"quantity"`
	Kind       models.ItemKind `json:"kind"`
}

// DisplayOrder — заказ, обогащённый актуальными данными каталога для показа.
// TotalCents всегда равен сохранённому значению и не пересчитывается,
// даже если цены в каталоге с тех пор изменились.
type DisplayOrder struct {
	ID            uuid.UUID          `json:"id"`
	UserID        *uuid.UUID         `json:"userId,omitempty"`
	RestaurantID  uuid.UUID          `json:"restaurantId"`
	Status        models.OrderStatus `json:"status"`
	City          string             `json:"city"`
	Address       string             `json:"address"`
	PhoneNumber   string             `json:"phoneNumber"`
	Items         []DisplayItem      `json:"items"`
	TotalCents    int64              `json:"totalCents"`
	PaymentMethod string             `json:"paymentMethod"`
	PaymentStatus string             `json:"paymentStatus"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// project резолвит каждую позицию заказа в каталоге заново. Отсутствующая
// позиция не ошибка: вместо неё подставляется заглушка с нулевой ценой,
// количество и id сохраняются, чтобы клиент мог показать строку.
func (s *orderService) project(ctx context.Context, o *models.Order) (*DisplayOrder, error) {
	items := make([]DisplayItem, 0, len(o.Items))
	for _, it := range o.Items {
		di := DisplayItem{
			ItemID:   it.ItemID,
			Quantity: it.Quantity,
			Kind:     it.Kind,
		}
		resolved, err := s.catalog.Resolve(ctx, it.ItemID, it.Kind)
		if err != nil {
			return nil, err
		}
		if resolved != nil {
			di.Name = resolved.Name
			di.PriceCents = resolved.PriceCents
		} else {
			di.Name = UnavailableItemName
			di.PriceCents = 0
		}
		items = append(items, di)
	}

	return &DisplayOrder{
		ID:            o.ID,
		UserID:        o.UserID,
		RestaurantID:  o.RestaurantID,
		Status:        o.Status,
		City:          o.City,
		Address:       o.Address,
		PhoneNumber:   o.PhoneNumber,
		Items:         items,
		TotalCents:    o.TotalCents,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}, nil
}
