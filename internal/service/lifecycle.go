package service

import "restaurant-service/internal/models"

// Граф переходов статуса заказа. Линейный happy path
// pending → preparing → ready → delivered; отмена возможна только
// из pending и preparing. Из терминальных статусов переходов нет.
var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:   {models.OrderStatusPreparing, models.OrderStatusCancelled},
	models.OrderStatusPreparing: {models.OrderStatusReady, models.OrderStatusCancelled},
	models.OrderStatusReady:     {models.OrderStatusDelivered},
}

// CanTransition проверяет, есть ли ребро from→to в графе статусов.
func CanTransition(from, to models.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
