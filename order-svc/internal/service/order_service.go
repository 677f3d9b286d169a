package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"overcooked-orders/order-svc/internal/domain"

	"github.com/google/uuid"
)

var ErrNoTrackingCode = errors.New("order has no tracking code")

type CheckoutItem struct {
	FoodItemID          int     `json:"food_item_id"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

type CheckoutRequest struct {
	UserID              int            `json:"user_id"`
	RestaurantID        int            `json:"restaurant_id"`
	Items               []CheckoutItem `json:"items"`
	DeliveryAddress     string         `json:"delivery_address"`
	PaymentMethod       string         `json:"payment_method"`
	SpecialInstructions *string        `json:"special_instructions,omitempty"`
	Jurisdiction        string         `json:"jurisdiction,omitempty"`
}

// Policies groups the pricing and lifecycle rules an OrderService applies.
type Policies struct {
	Checkout     domain.Checkout
	StateMachine domain.StateMachine
	Rounding     domain.RoundingMode
}

type OrderService struct {
	orders      OrderRepository
	restaurants RestaurantRepository
	foods       FoodItemRepository
	publisher   OrderPublisher
	qrEncoder   QRGenerator
	policies    Policies
	log         *slog.Logger

	now        func() time.Time
	trackingID func() string
}

func NewOrderService(
	orders OrderRepository,
	restaurants RestaurantRepository,
	foods FoodItemRepository,
	publisher OrderPublisher,
	qr QRGenerator,
	policies Policies,
	log *slog.Logger,
) *OrderService {
	if log == nil {
		log = slog.Default()
	}
	s := &OrderService{
		orders:      orders,
		restaurants: restaurants,
		foods:       foods,
		publisher:   publisher,
		qrEncoder:   qr,
		policies:    policies,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
		trackingID:  uuid.NewString,
	}
	if policies.Checkout.Now != nil {
		s.now = policies.Checkout.Now
	}
	return s
}

// Checkout builds a cart from the requested items at current catalog prices
// and places it as a new order.
func (s *OrderService) Checkout(ctx context.Context, req CheckoutRequest) (domain.Order, error) {
	if len(req.Items) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	restaurant, err := s.restaurants.LoadRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return domain.Order{}, err
	}

	ids := make([]int, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("%w: food item %d", domain.ErrInvalidQuantity, it.FoodItemID)
		}
		ids = append(ids, it.FoodItemID)
	}
	catalog, err := s.foods.LoadFoodItems(ctx, ids)
	if err != nil {
		return domain.Order{}, err
	}

	cart := domain.NewCart()
	for _, it := range req.Items {
		food, ok := catalog[it.FoodItemID]
		if !ok || food.RestaurantID != restaurant.ID {
			return domain.Order{}, fmt.Errorf("%w: %d is not on the menu of restaurant %d",
				domain.ErrFoodItemNotFound, it.FoodItemID, restaurant.ID)
		}
		cart.AddOrAdjust(food, it.Quantity, it.SpecialInstructions)
	}

	return s.PlaceOrder(ctx, cart, restaurant, domain.CheckoutDetails{
		UserID:              req.UserID,
		DeliveryAddress:     req.DeliveryAddress,
		PaymentMethod:       req.PaymentMethod,
		SpecialInstructions: req.SpecialInstructions,
		Jurisdiction:        req.Jurisdiction,
	})
}

// PlaceOrder promotes cart to an order and persists it.
func (s *OrderService) PlaceOrder(ctx context.Context, cart *domain.Cart, restaurant domain.Restaurant, details domain.CheckoutDetails) (domain.Order, error) {
	order, err := s.policies.Checkout.CreateFromCart(cart, restaurant, details)
	if err != nil {
		return domain.Order{}, err
	}
	order.TrackingID = s.trackingID()

	order = order.Rounded(s.policies.Rounding)
	if err := s.orders.CreateOrder(ctx, &order); err != nil {
		return domain.Order{}, err
	}

	s.log.Info("order placed",
		"order_id", order.ID,
		"restaurant_id", order.RestaurantID,
		"grand_total", order.GrandTotal.StringFixed(2))
	s.publish(ctx, domain.EventOrderPlaced, order)
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, orderID int) (domain.Order, error) {
	return s.orders.LoadOrder(ctx, orderID)
}

func (s *OrderService) Cancel(ctx context.Context, orderID int) (domain.Order, error) {
	return s.mutate(ctx, orderID, func(o domain.Order) (domain.Order, error) {
		return s.policies.StateMachine.Cancel(o, s.now())
	})
}

func (s *OrderService) Transition(ctx context.Context, orderID int, target domain.Status) (domain.Order, error) {
	return s.mutate(ctx, orderID, func(o domain.Order) (domain.Order, error) {
		return s.policies.StateMachine.Transition(o, target, s.now())
	})
}

// mutate applies change to the stored order and saves it against the version
// it was loaded at. A lost race surfaces as domain.ErrConcurrentModification;
// it is never retried, so a transition cannot be applied twice.
func (s *OrderService) mutate(ctx context.Context, orderID int, change func(domain.Order) (domain.Order, error)) (domain.Order, error) {
	current, err := s.orders.LoadOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	next, err := change(current)
	if err != nil {
		return domain.Order{}, err
	}

	saved, err := s.orders.SaveOrder(ctx, next.Rounded(s.policies.Rounding), current.Version)
	if err != nil {
		return domain.Order{}, err
	}

	s.log.Info("order status changed",
		"order_id", saved.ID,
		"from", current.Status,
		"to", saved.Status)
	s.publish(ctx, domain.EventOrderStatusChanged, saved)
	return saved, nil
}

// Reorder returns a fresh cart holding the order's lines at current prices.
// It does not place an order.
func (s *OrderService) Reorder(ctx context.Context, orderID int) (*domain.Cart, []int, error) {
	order, err := s.orders.LoadOrder(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]int, 0, len(order.Lines))
	for _, line := range order.Lines {
		ids = append(ids, line.FoodItemID)
	}
	catalog, err := s.foods.LoadFoodItems(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	cart, missing := domain.Reorder(order, catalog)
	if len(missing) > 0 {
		s.log.Warn("reorder skipped unavailable items", "order_id", orderID, "food_item_ids", missing)
	}
	return cart, missing, nil
}

// ListForUser returns the user's orders, most recent first.
func (s *OrderService) ListForUser(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.orders.ListUserOrders(ctx, userID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(orders, func(a, b domain.Order) int {
		return b.OrderDate.Compare(a.OrderDate)
	})
	return orders, nil
}

// CurrentActiveOrder returns the most recent order that is still active. The
// boolean is false when the user has none.
func (s *OrderService) CurrentActiveOrder(ctx context.Context, userID int) (domain.Order, bool, error) {
	orders, err := s.ListForUser(ctx, userID)
	if err != nil {
		return domain.Order{}, false, err
	}
	for _, o := range orders {
		if o.Status.IsActive() {
			return o, true, nil
		}
	}
	return domain.Order{}, false, nil
}

func (s *OrderService) TrackingQRCode(ctx context.Context, orderID int) ([]byte, error) {
	order, err := s.orders.LoadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.TrackingID == "" || s.qrEncoder == nil {
		return nil, ErrNoTrackingCode
	}
	return s.qrEncoder.Generate(order.TrackingID)
}

func (s *OrderService) publish(ctx context.Context, eventType string, o domain.Order) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:         eventType,
		OrderID:      o.ID,
		UserID:       o.UserID,
		RestaurantID: o.RestaurantID,
		Status:       o.Status,
		GrandTotal:   o.GrandTotal,
		Timestamp:    s.now(),
	})
	if err != nil {
		s.log.Warn("failed to publish order event", "order_id", o.ID, "type", eventType, "err", err)
	}
}
