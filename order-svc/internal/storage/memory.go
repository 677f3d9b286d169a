package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"overcooked-orders/order-svc/internal/domain"
)

// MemoryStore keeps orders, restaurants and food items in process. It applies
// the same version checks as PostgresRepository and backs local runs with
// STORAGE=memory.
type MemoryStore struct {
	mu          sync.Mutex
	nextOrderID int
	orders      map[int]domain.Order
	restaurants map[int]domain.Restaurant
	foods       map[int]domain.FoodItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orders:      make(map[int]domain.Order),
		restaurants: make(map[int]domain.Restaurant),
		foods:       make(map[int]domain.FoodItem),
	}
}

func copyOrder(o domain.Order) domain.Order {
	o.Lines = slices.Clone(o.Lines)
	o.History = slices.Clone(o.History)
	return o
}

func (m *MemoryStore) PutRestaurant(r domain.Restaurant) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.Version == 0 {
		r.Version = 1
	}
	m.restaurants[r.ID] = r
}

func (m *MemoryStore) PutFoodItem(f domain.FoodItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.foods[f.ID] = f
}

func (m *MemoryStore) CreateOrder(_ context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextOrderID++
	order.ID = m.nextOrderID
	order.Version = 1
	m.orders[order.ID] = copyOrder(*order)
	return nil
}

func (m *MemoryStore) LoadOrder(_ context.Context, orderID int) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: %d", domain.ErrOrderNotFound, orderID)
	}
	return copyOrder(o), nil
}

func (m *MemoryStore) SaveOrder(_ context.Context, order domain.Order, expectedVersion int) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.orders[order.ID]
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: %d", domain.ErrOrderNotFound, order.ID)
	}
	if stored.Version != expectedVersion {
		return domain.Order{}, fmt.Errorf("%w: order %d is no longer at version %d",
			domain.ErrConcurrentModification, order.ID, expectedVersion)
	}
	order.Version = expectedVersion + 1
	m.orders[order.ID] = copyOrder(order)
	return copyOrder(order), nil
}

func (m *MemoryStore) ListUserOrders(_ context.Context, userID int) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, copyOrder(o))
		}
	}
	slices.SortFunc(out, func(a, b domain.Order) int {
		if c := b.OrderDate.Compare(a.OrderDate); c != 0 {
			return c
		}
		return b.ID - a.ID
	})
	return out, nil
}

func (m *MemoryStore) LoadRestaurant(_ context.Context, restaurantID int) (domain.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.restaurants[restaurantID]
	if !ok {
		return domain.Restaurant{}, fmt.Errorf("%w: %d", domain.ErrRestaurantNotFound, restaurantID)
	}
	return r, nil
}

func (m *MemoryStore) SaveRestaurant(_ context.Context, r domain.Restaurant, expectedVersion int) (domain.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.restaurants[r.ID]
	if !ok {
		return domain.Restaurant{}, fmt.Errorf("%w: %d", domain.ErrRestaurantNotFound, r.ID)
	}
	if stored.Version != expectedVersion {
		return domain.Restaurant{}, fmt.Errorf("%w: restaurant %d is no longer at version %d",
			domain.ErrConcurrentModification, r.ID, expectedVersion)
	}
	r.Version = expectedVersion + 1
	m.restaurants[r.ID] = r
	return r, nil
}

func (m *MemoryStore) LoadFoodItems(_ context.Context, ids []int) (map[int]domain.FoodItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[int]domain.FoodItem, len(ids))
	for _, id := range ids {
		if f, ok := m.foods[id]; ok {
			out[id] = f
		}
	}
	return out, nil
}
