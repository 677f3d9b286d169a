package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"overcooked-orders/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) RatingMarkerKey(orderID int) string {
	return "rating:order:" + strconv.Itoa(orderID)
}

// ClaimMarker sets key only if it is absent. It reports false when another
// caller already holds the marker.
func (c *RedisCache) ClaimMarker(ctx context.Context, key string) (bool, error) {
	ok, err := c.Client.SetNX(ctx, key, "1", c.TTL).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	return ok, nil
}

func (c *RedisCache) ReleaseMarker(ctx context.Context, key string) error {
	if err := c.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func RestaurantKey(restaurantID int) string {
	return "restaurant:" + strconv.Itoa(restaurantID)
}

// CacheRestaurant mirrors the rating aggregate for quick reads.
func (c *RedisCache) CacheRestaurant(ctx context.Context, r domain.Restaurant) error {
	key := RestaurantKey(r.ID)
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"rating":       r.Rating.StringFixed(1),
			"reviews":      r.Reviews,
			"last_updated": r.UpdatedAt.Unix(),
		})
		pipe.Expire(ctx, key, 24*time.Hour)
		return nil
	})
	return err
}
