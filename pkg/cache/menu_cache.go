package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// MenuCacheTTL is the time-to-live for cached menu items.
	MenuCacheTTL = 24 * time.Hour

	menuCacheKeyPrefix = "menu"
)

// CachedMenuItem is the denormalized menu read model stored in Redis.
// Note the cached price is only a display hint: order lines snapshot the
// price from Postgres inside the order transaction, never from here.
type CachedMenuItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description *string   `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuCache provides structured read/write operations for menu item cache
// entries. Key format: "menu:{itemID}".
type MenuCache struct {
	client *RedisClient
}

// NewMenuCache creates a MenuCache backed by the given RedisClient.
func NewMenuCache(r *RedisClient) *MenuCache {
	return &MenuCache{client: r}
}

// Get retrieves a cached menu item by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *MenuCache) Get(ctx context.Context, itemID int64) (*CachedMenuItem, error) {
	key := c.key(itemID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := strconv.ParseInt(vals["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	price, err := strconv.ParseFloat(vals["price"], 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	// An empty stored description means none was set.
	var description *string
	if d := vals["description"]; d != "" {
		description = &d
	}

	return &CachedMenuItem{
		ID:          id,
		Name:        vals["name"],
		Price:       price,
		Description: description,
		Category:    vals["category"],
		CreatedAt:   createdAt,
	}, nil
}

// Set writes a cached menu item as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *MenuCache) Set(ctx context.Context, item *CachedMenuItem) error {
	key := c.key(item.ID)
	description := ""
	if item.Description != nil {
		description = *item.Description
	}
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", strconv.FormatInt(item.ID, 10),
		"name", item.Name,
		"price", strconv.FormatFloat(item.Price, 'f', -1, 64),
		"description", description,
		"category", item.Category,
		"created_at", item.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, MenuCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached menu item. Called on every menu item update or
// delete so stale prices never linger past the write.
func (c *MenuCache) Delete(ctx context.Context, itemID int64) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "menu:{itemID}"
func (c *MenuCache) key(itemID int64) string {
	return fmt.Sprintf("%s:%d", menuCacheKeyPrefix, itemID)
}
