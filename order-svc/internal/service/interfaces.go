package service

import (
	"context"

	"overcooked-orders/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type OrderServiceInterface interface {
	Checkout(ctx context.Context, req CheckoutRequest) (domain.Order, error)
	Get(ctx context.Context, orderID int) (domain.Order, error)
	Cancel(ctx context.Context, orderID int) (domain.Order, error)
	Transition(ctx context.Context, orderID int, target domain.Status) (domain.Order, error)
	Reorder(ctx context.Context, orderID int) (*domain.Cart, []int, error)
	ListForUser(ctx context.Context, userID int) ([]domain.Order, error)
	CurrentActiveOrder(ctx context.Context, userID int) (domain.Order, bool, error)
	TrackingQRCode(ctx context.Context, orderID int) ([]byte, error)
}

type RatingServiceInterface interface {
	Submit(ctx context.Context, orderID int, rating decimal.Decimal) error
	Apply(ctx context.Context, restaurantID int, rating decimal.Decimal) (domain.Restaurant, error)
}

// OrderRepository persists orders. SaveOrder succeeds only when the stored
// version equals expectedVersion and returns the order with its new version;
// otherwise it fails with domain.ErrConcurrentModification.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	LoadOrder(ctx context.Context, orderID int) (domain.Order, error)
	SaveOrder(ctx context.Context, order domain.Order, expectedVersion int) (domain.Order, error)
	ListUserOrders(ctx context.Context, userID int) ([]domain.Order, error)
}

type RestaurantRepository interface {
	LoadRestaurant(ctx context.Context, restaurantID int) (domain.Restaurant, error)
	SaveRestaurant(ctx context.Context, restaurant domain.Restaurant, expectedVersion int) (domain.Restaurant, error)
}

type FoodItemRepository interface {
	LoadFoodItems(ctx context.Context, ids []int) (map[int]domain.FoodItem, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type RatingPublisher interface {
	PublishRating(ctx context.Context, event domain.RatingEvent) error
}

type RatingCache interface {
	RatingMarkerKey(orderID int) string
	ClaimMarker(ctx context.Context, key string) (bool, error)
	ReleaseMarker(ctx context.Context, key string) error
	CacheRestaurant(ctx context.Context, restaurant domain.Restaurant) error
}

var (
	_ OrderServiceInterface  = (*OrderService)(nil)
	_ RatingServiceInterface = (*RatingService)(nil)
)
