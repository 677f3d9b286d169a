package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"overcooked-orders/order-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher emits order events keyed by order id and rating events keyed
// by restaurant id, so ratings for one restaurant stay on one partition.
type KafkaPublisher struct {
	Orders  MessageWriter
	Ratings MessageWriter
}

func NewKafkaPublisher(orders, ratings MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Orders: orders, Ratings: ratings}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Orders.WriteMessages(ctx, kafka.Message{
		Key:     []byte(strconv.Itoa(event.OrderID)),
		Value:   payload,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(event.Type)}},
	})
}

func (p *KafkaPublisher) PublishRating(ctx context.Context, event domain.RatingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Ratings.WriteMessages(ctx, kafka.Message{
		Key:     []byte(strconv.Itoa(event.RestaurantID)),
		Value:   payload,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(event.Type)}},
	})
}
