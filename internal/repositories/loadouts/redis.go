package loadouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/loadout"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a Redis-backed loadout repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}
	return &redisRepo{client: cfg.Client}
}

func loadoutKey(playerID string) string {
	return fmt.Sprintf("loadout:%s", playerID)
}

func (r *redisRepo) Get(ctx context.Context, playerID string) (*loadout.Loadout, error) {
	if playerID == "" {
		return nil, forgeerr.InvalidArgument("player ID cannot be empty")
	}

	jsonData, err := r.client.Get(ctx, loadoutKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return loadout.New(playerID), nil
		}
		return nil, fmt.Errorf("failed to get loadout from Redis: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal loadout data: %w", err)
	}
	return toLoadout(&data), nil
}

func (r *redisRepo) Save(ctx context.Context, l *loadout.Loadout) error {
	if l == nil {
		return forgeerr.InvalidArgument("loadout cannot be nil")
	}
	if l.PlayerID == "" {
		return forgeerr.InvalidArgument("player ID cannot be empty")
	}

	jsonData, err := json.Marshal(toData(l))
	if err != nil {
		return fmt.Errorf("failed to marshal loadout data: %w", err)
	}

	if err := r.client.Set(ctx, loadoutKey(l.PlayerID), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to save loadout in Redis: %w", err)
	}
	return nil
}

func (r *redisRepo) Delete(ctx context.Context, playerID string) error {
	if err := r.client.Del(ctx, loadoutKey(playerID)).Err(); err != nil {
		return fmt.Errorf("failed to delete loadout from Redis: %w", err)
	}
	return nil
}
