package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"overcooked-orders/order-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type RatingApplier interface {
	Apply(ctx context.Context, restaurantID int, rating decimal.Decimal) (domain.Restaurant, error)
}

// Consumer applies rating events read from Kafka.
type Consumer struct {
	Reader  MessageReader
	Ratings RatingApplier
	Log     *slog.Logger
}

func NewConsumer(reader MessageReader, ratings RatingApplier, log *slog.Logger) *Consumer {
	if log == nil {
		log = slog.Default()
	}
	return &Consumer{Reader: reader, Ratings: ratings, Log: log}
}

// Start reads until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info("starting rating consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.Log.Info("rating consumer stopped")
				return
			}
			c.Log.Error("error reading message", "err", err)
			continue
		}

		var event domain.RatingEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Log.Error("error unmarshaling message", "err", err, "offset", message.Offset)
			continue
		}
		c.ProcessRating(ctx, event)
	}
}

func (c *Consumer) ProcessRating(ctx context.Context, event domain.RatingEvent) {
	if event.Type != domain.EventNewRating {
		return
	}
	c.Log.Info("processing rating",
		"order_id", event.OrderID,
		"restaurant_id", event.RestaurantID,
		"rating", event.Rating.String())

	if _, err := c.Ratings.Apply(ctx, event.RestaurantID, event.Rating); err != nil {
		c.Log.Error("error applying rating", "restaurant_id", event.RestaurantID, "err", err)
	}
}
