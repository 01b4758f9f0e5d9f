package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/stats"
)

// Cache holds aggregated stats per player until they are invalidated
type Cache interface {
	// Get returns the cached stats and whether there was an entry
	Get(ctx context.Context, playerID string) (*stats.PlayerStats, bool, error)
	Set(ctx context.Context, playerStats *stats.PlayerStats) error
	Delete(ctx context.Context, playerID string) error
}

type inMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*stats.PlayerStats
}

// NewInMemoryCache creates a process-local cache
func NewInMemoryCache() Cache {
	return &inMemoryCache{
		entries: make(map[string]*stats.PlayerStats),
	}
}

func (c *inMemoryCache) Get(_ context.Context, playerID string) (*stats.PlayerStats, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[playerID]
	if !ok {
		return nil, false, nil
	}
	return entry.Clone(), true, nil
}

func (c *inMemoryCache) Set(_ context.Context, playerStats *stats.PlayerStats) error {
	if playerStats == nil {
		return fmt.Errorf("stats cannot be nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[playerStats.PlayerID] = playerStats.Clone()
	return nil
}

func (c *inMemoryCache) Delete(_ context.Context, playerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, playerID)
	return nil
}

// RedisCacheConfig holds configuration for the Redis cache
type RedisCacheConfig struct {
	Client redis.UniversalClient
	// TTL bounds how long an entry lives if nobody invalidates it, 0 keeps it forever
	TTL time.Duration
}

type redisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisCache creates a cache shared by every process using the same Redis
func NewRedisCache(cfg *RedisCacheConfig) Cache {
	if cfg == nil || cfg.Client == nil {
		panic("RedisCacheConfig and Client are required")
	}
	return &redisCache{client: cfg.Client, ttl: cfg.TTL}
}

func statsKey(playerID string) string {
	return fmt.Sprintf("stats:%s", playerID)
}

func (c *redisCache) Get(ctx context.Context, playerID string) (*stats.PlayerStats, bool, error) {
	jsonData, err := c.client.Get(ctx, statsKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get stats from Redis: %w", err)
	}

	var out stats.PlayerStats
	if err := json.Unmarshal(jsonData, &out); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	return out.Clone(), true, nil
}

func (c *redisCache) Set(ctx context.Context, playerStats *stats.PlayerStats) error {
	if playerStats == nil {
		return fmt.Errorf("stats cannot be nil")
	}

	jsonData, err := json.Marshal(playerStats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := c.client.Set(ctx, statsKey(playerStats.PlayerID), string(jsonData), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache stats in Redis: %w", err)
	}
	return nil
}

func (c *redisCache) Delete(ctx context.Context, playerID string) error {
	if err := c.client.Del(ctx, statsKey(playerID)).Err(); err != nil {
		return fmt.Errorf("failed to delete stats from Redis: %w", err)
	}
	return nil
}
