package service

import (
	"context"
	"fmt"
	"time"

	"restaurant-service/internal/models"
	"restaurant-service/internal/repository"

	"github.com/google/uuid"
)

type orderService struct {
	repo    repository.OrderRepo
	catalog CatalogLookup
	events  EventBus
	now     func() time.Time
}

func NewOrderService(repo repository.OrderRepo, catalog CatalogLookup, events EventBus) OrderService {
	return &orderService{
		repo:    repo,
		catalog: catalog,
		events:  events,
		now:     time.Now,
	}
}

func requireActor(ctx context.Context) (Actor, error) {
	actor, ok := ActorFromContext(ctx)
	if !ok {
		return Actor{}, ErrUnauthorized
	}
	return actor, nil
}

// CreateOrder валидирует позиции, считает сумму по текущим ценам каталога
// и сохраняет заказ одним вызовом. Любая нерезолвящаяся позиция отменяет
// создание целиком — частичных заказов не бывает. Гостевые заказы разрешены:
// если в контексте есть актор, его id прикрепляется к заказу.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if in.RestaurantID == uuid.Nil {
		return nil, ErrRestaurantRequired
	}
	for _, it := range in.Items {
		if it.Quantity == 0 {
			return nil, ErrQuantityInvalid
		}
		if !it.Kind.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownItemKind, it.Kind)
		}
	}

	var (
		total   int64
		now     = s.now()
		itemsDB = make([]models.OrderItem, 0, len(in.Items))
	)

	for _, it := range in.Items {
		resolved, err := s.catalog.Resolve(ctx, it.ItemID, it.Kind)
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			return nil, fmt.Errorf("%w: %s %s", ErrItemNotFound, it.Kind, it.ItemID)
		}

		total += resolved.PriceCents * int64(it.Quantity)

		itemsDB = append(itemsDB, models.OrderItem{
			ItemID:    it.ItemID,
			Kind:      it.Kind,
			Quantity:  it.Quantity,
			CreatedAt: now,
		})
	}

	var userID *uuid.UUID
	if actor, ok := ActorFromContext(ctx); ok {
		uid := actor.ID
		userID = &uid
	}

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.DefaultPaymentMethod
	}
	paymentStatus := in.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.DefaultPaymentStatus
	}

	order := &models.Order{
		ID:            uuid.New(),
		UserID:        userID,
		RestaurantID:  in.RestaurantID,
		Status:        models.OrderStatusPending,
		City:          in.City,
		Address:       in.Address,
		PhoneNumber:   in.PhoneNumber,
		TotalCents:    total,
		PaymentMethod: paymentMethod,
		PaymentStatus: paymentStatus,
		CreatedAt:     now,
		UpdatedAt:     now,
		Items:         itemsDB,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.events != nil {
		evItems := make([]OrderItemEvent, 0, len(order.Items))
		for _, it := range order.Items {
			evItems = append(evItems, OrderItemEvent{
				ItemID:   it.ItemID,
				Kind:     it.Kind,
				Quantity: it.Quantity,
			})
		}
		_ = s.events.PublishOrderCreated(ctx, OrderCreatedEvent{
			OrderID:      order.ID,
			UserID:       order.UserID,
			RestaurantID: order.RestaurantID,
			Items:        evItems,
			TotalCents:   order.TotalCents,
			CreatedAt:    order.CreatedAt,
		})
	}

	return order, nil
}

// GetOrder: клиент получает только собственный заказ; чужой для него
// выглядит как несуществующий, а не как запретный. Персонал и админ
// читают любой заказ.
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*DisplayOrder, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	var ord *models.Order
	if actor.Role.AtLeast(RoleWorker) {
		ord, err = s.repo.GetByID(ctx, id)
	} else {
		ord, err = s.repo.GetByIDForUser(ctx, id, actor.ID)
	}
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return s.project(ctx, ord)
}

// ListOrders скоупит выборку на сервере: клиент видит свои заказы,
// worker/manager — заказы своего ресторана, админ — все.
func (s *orderService) ListOrders(ctx context.Context, f ListFilter) ([]DisplayOrder, int64, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, 0, err
	}

	rf := repository.OrderListFilter{
		Status: f.Status,
		Limit:  f.Limit,
		Offset: f.Offset,
	}
	switch {
	case actor.Role == RoleAdmin:
		// без ограничений
	case actor.Role.IsStaff():
		if actor.RestaurantID == nil {
			return nil, 0, ErrForbidden
		}
		rf.RestaurantID = actor.RestaurantID
	default:
		uid := actor.ID
		rf.UserID = &uid
	}

	orders, total, err := s.repo.List(ctx, rf)
	if err != nil {
		return nil, 0, err
	}

	out := make([]DisplayOrder, 0, len(orders))
	for _, o := range orders {
		d, err := s.project(ctx, o)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *d)
	}
	return out, total, nil
}

// ListMyOrders — история заказов самого актора независимо от роли:
// worker тоже может заказывать еду как обычный клиент.
func (s *orderService) ListMyOrders(ctx context.Context, f ListFilter) ([]DisplayOrder, int64, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, 0, err
	}

	uid := actor.ID
	orders, total, err := s.repo.List(ctx, repository.OrderListFilter{
		UserID: &uid,
		Status: f.Status,
		Limit:  f.Limit,
		Offset: f.Offset,
	})
	if err != nil {
		return nil, 0, err
	}

	out := make([]DisplayOrder, 0, len(orders))
	for _, o := range orders {
		d, err := s.project(ctx, o)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *d)
	}
	return out, total, nil
}

// TransitionOrder переводит заказ в новый статус с проверкой графа переходов
// и полномочий актора. Запись в хранилище — compare-and-set по текущему
// статусу: параллельный конкурирующий переход даёт ErrStatusConflict,
// а не молчаливую перезапись.
func (s *orderService) TransitionOrder(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*DisplayOrder, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTransition, status)
	}

	ord, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	if err := authorizeTransition(actor, ord, status); err != nil {
		return nil, err
	}
	if !CanTransition(ord.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, ord.Status, status)
	}

	ok, err := s.repo.UpdateStatus(ctx, id, ord.Status, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		// строка не совпала: заказ либо исчез, либо статус успел измениться
		exists, exErr := s.repo.Exists(ctx, id)
		if exErr != nil {
			return nil, exErr
		}
		if !exists {
			return nil, ErrOrderNotFound
		}
		return nil, ErrStatusConflict
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}

	if s.events != nil {
		_ = s.events.PublishOrderStatusChanged(ctx, OrderStatusChangedEvent{
			OrderID:      updated.ID,
			RestaurantID: updated.RestaurantID,
			From:         ord.Status,
			To:           status,
			ChangedAt:    s.now(),
		})
	}

	return s.project(ctx, updated)
}

// authorizeTransition решает, может ли актор запрашивать данный переход.
// Клиент (и любая неизвестная роль) может только отменить собственный
// ещё pending-заказ; preparing-заказ для клиента уже не отменяем, хотя
// персоналу граф это разрешает. Worker/manager ограничены своим рестораном.
func authorizeTransition(actor Actor, ord *models.Order, status models.OrderStatus) error {
	switch {
	case actor.Role == RoleAdmin:
		return nil
	case actor.Role.IsStaff():
		if actor.RestaurantID == nil || *actor.RestaurantID != ord.RestaurantID {
			return ErrForbidden
		}
		return nil
	default:
		if ord.UserID == nil || *ord.UserID != actor.ID {
			return ErrForbidden
		}
		if status != models.OrderStatusCancelled {
			return ErrForbidden
		}
		if ord.Status != models.OrderStatusPending {
			return ErrForbidden
		}
		return nil
	}
}

// DeleteOrder: удаление заказов сознательно не реализовано — операция
// всегда завершается определённой ошибкой, а не тихо игнорируется.
func (s *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if _, err := requireActor(ctx); err != nil {
		return err
	}
	return ErrDeleteUnsupported
}
