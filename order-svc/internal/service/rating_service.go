package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"overcooked-orders/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const DefaultRatingAttempts = 5

type RatingService struct {
	orders      OrderRepository
	restaurants RestaurantRepository
	cache       RatingCache
	publisher   RatingPublisher
	aggregator  domain.RatingAggregator
	maxAttempts int
	log         *slog.Logger
	now         func() time.Time
}

func NewRatingService(
	orders OrderRepository,
	restaurants RestaurantRepository,
	cache RatingCache,
	publisher RatingPublisher,
	aggregator domain.RatingAggregator,
	maxAttempts int,
	log *slog.Logger,
) *RatingService {
	if maxAttempts <= 0 {
		maxAttempts = DefaultRatingAttempts
	}
	if log == nil {
		log = slog.Default()
	}
	return &RatingService{
		orders:      orders,
		restaurants: restaurants,
		cache:       cache,
		publisher:   publisher,
		aggregator:  aggregator,
		maxAttempts: maxAttempts,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Submit records the customer's rating for a delivered order. Each order may
// be rated once: the marker is claimed before anything is recorded and given
// back if recording fails. With a publisher configured the rating is applied
// by the consumer; otherwise it is applied before Submit returns.
func (s *RatingService) Submit(ctx context.Context, orderID int, rating decimal.Decimal) error {
	if rating.LessThan(domain.MinRating) || rating.GreaterThan(domain.MaxRating) {
		return fmt.Errorf("%w: got %s", domain.ErrInvalidRating, rating)
	}

	order, err := s.orders.LoadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusDelivered {
		return fmt.Errorf("%w: order %d is %s", domain.ErrOrderNotDelivered, orderID, order.Status)
	}

	var markerKey string
	if s.cache != nil {
		markerKey = s.cache.RatingMarkerKey(orderID)
		claimed, err := s.cache.ClaimMarker(ctx, markerKey)
		if err != nil {
			return err
		}
		if !claimed {
			return domain.ErrDuplicateRating
		}
	}

	if err := s.record(ctx, order, rating); err != nil {
		if s.cache != nil {
			if relErr := s.cache.ReleaseMarker(ctx, markerKey); relErr != nil {
				s.log.Warn("failed to release rating marker", "order_id", orderID, "err", relErr)
			}
		}
		return err
	}
	return nil
}

func (s *RatingService) record(ctx context.Context, order domain.Order, rating decimal.Decimal) error {
	if s.publisher == nil {
		_, err := s.Apply(ctx, order.RestaurantID, rating)
		return err
	}
	err := s.publisher.PublishRating(ctx, domain.RatingEvent{
		Type:         domain.EventNewRating,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Rating:       rating,
		Timestamp:    s.now(),
	})
	if err != nil {
		return fmt.Errorf("failed to publish rating: %w", err)
	}
	return nil
}

// Apply folds rating into the restaurant's average. Concurrent writers are
// detected by the version check in SaveRestaurant; the loser reloads and
// recomputes from the winner's result.
func (s *RatingService) Apply(ctx context.Context, restaurantID int, rating decimal.Decimal) (domain.Restaurant, error) {
	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		current, err := s.restaurants.LoadRestaurant(ctx, restaurantID)
		if err != nil {
			return domain.Restaurant{}, err
		}

		updated, err := s.aggregator.Apply(current, rating, s.now())
		if err != nil {
			return domain.Restaurant{}, err
		}

		saved, err := s.restaurants.SaveRestaurant(ctx, updated, current.Version)
		if errors.Is(err, domain.ErrConcurrentModification) {
			lastErr = err
			s.log.Debug("rating update lost race, retrying", "restaurant_id", restaurantID, "attempt", attempt)
			continue
		}
		if err != nil {
			return domain.Restaurant{}, err
		}

		if s.cache != nil {
			if err := s.cache.CacheRestaurant(ctx, saved); err != nil {
				s.log.Warn("failed to cache restaurant rating", "restaurant_id", restaurantID, "err", err)
			}
		}
		s.log.Info("restaurant rating updated",
			"restaurant_id", restaurantID,
			"rating", saved.Rating.StringFixed(1),
			"reviews", saved.Reviews)
		return saved, nil
	}
	return domain.Restaurant{}, fmt.Errorf("rating for restaurant %d not applied after %d attempts: %w",
		restaurantID, s.maxAttempts, lastErr)
}
