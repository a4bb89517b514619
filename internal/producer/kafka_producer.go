package producer

import (
	"context"
	"encoding/json"
	"time"

	"restaurant-service/internal/service"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// OrderEventProducer публикует события заказов в Kafka. Отправка
// best-effort: ошибка логируется и не валит запрос.
type OrderEventProducer struct {
	writer *kafka.Writer
	log    *zap.Logger
}

func NewOrderEventProducer(brokers []string, topic string, log *zap.Logger) *OrderEventProducer {
	return &OrderEventProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
		log: log,
	}
}

func (p *OrderEventProducer) publish(ctx context.Context, key string, eventType string, payload any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
	if err != nil {
		p.log.Warn("Не удалось опубликовать событие заказа",
			zap.String("event_type", eventType), zap.Error(err))
	}
	return err
}

func (p *OrderEventProducer) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	return p.publish(ctx, e.OrderID.String(), "order.created", e)
}

func (p *OrderEventProducer) PublishOrderStatusChanged(ctx context.Context, e service.OrderStatusChangedEvent) error {
	return p.publish(ctx, e.OrderID.String(), "order.status_changed", e)
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
