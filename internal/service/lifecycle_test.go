package service_test

import (
	"testing"

	"restaurant-service/internal/models"
	"restaurant-service/internal/service"

	"github.com/stretchr/testify/assert"
)

// Полное замыкание графа: разрешены ровно пять рёбер, всё остальное
// отвергается независимо от роли.
func TestCanTransition_Closure(t *testing.T) {
	allowed := map[[2]models.OrderStatus]bool{
		{models.OrderStatusPending, models.OrderStatusPreparing}:   true,
		{models.OrderStatusPreparing, models.OrderStatusReady}:     true,
		{models.OrderStatusReady, models.OrderStatusDelivered}:     true,
		{models.OrderStatusPending, models.OrderStatusCancelled}:   true,
		{models.OrderStatusPreparing, models.OrderStatusCancelled}: true,
	}

	all := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]models.OrderStatus{from, to}]
			assert.Equalf(t, want, service.CanTransition(from, to), "%s → %s", from, to)
		}
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	all := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	}
	for _, terminal := range []models.OrderStatus{models.OrderStatusDelivered, models.OrderStatusCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, to := range all {
			assert.Falsef(t, service.CanTransition(terminal, to), "%s → %s", terminal, to)
		}
	}
}
