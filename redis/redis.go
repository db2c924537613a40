package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// slotCacheTTL keeps availability reads cheap without letting stale data
// linger. Availability is advisory only, so a stale entry can never cause a
// double booking.
const slotCacheTTL = 30 * time.Second

// SlotCache caches computed availability per (speaker, date).
type SlotCache struct {
	client *redis.Client
}

// NewSlotCache connects to redis and verifies the connection. An empty addr
// disables caching entirely (nil return).
func NewSlotCache(addr string) (*SlotCache, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	fmt.Println("✅ Connected to Redis")

	return &SlotCache{client: client}, nil
}

// NewSlotCacheWithClient wraps an existing client (tests).
func NewSlotCacheWithClient(client *redis.Client) *SlotCache {
	return &SlotCache{client: client}
}

func slotKey(speakerProfileID uint, date string) string {
	return fmt.Sprintf("slots:%d:%s", speakerProfileID, date)
}

func (c *SlotCache) GetSlots(ctx context.Context, speakerProfileID uint, date string) ([]string, bool) {
	raw, err := c.client.Get(ctx, slotKey(speakerProfileID, date)).Result()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) SetSlots(ctx context.Context, speakerProfileID uint, date string, slots []string) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.client.Set(ctx, slotKey(speakerProfileID, date), raw, slotCacheTTL)
}

func (c *SlotCache) Invalidate(ctx context.Context, speakerProfileID uint, date string) {
	c.client.Del(ctx, slotKey(speakerProfileID, date))
}
