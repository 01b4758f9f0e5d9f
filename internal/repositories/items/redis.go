package items

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a Redis-backed equipment repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

func itemKey(id string) string {
	return fmt.Sprintf("item:%s", id)
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:items", ownerID)
}

func (r *redisRepo) Create(ctx context.Context, instance *equipment.Instance) error {
	if instance == nil {
		return forgeerr.InvalidArgument("instance cannot be nil")
	}
	if instance.ID == "" {
		return forgeerr.InvalidArgument("instance ID cannot be empty")
	}

	jsonData, err := json.Marshal(toData(instance))
	if err != nil {
		return fmt.Errorf("failed to marshal instance data: %w", err)
	}

	created, err := r.client.SetNX(ctx, itemKey(instance.ID), string(jsonData), 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create instance in Redis: %w", err)
	}
	if !created {
		return forgeerr.AlreadyExistsf("instance with ID %s already exists", instance.ID)
	}

	if instance.OwnerID != "" {
		if err := r.client.SAdd(ctx, ownerKey(instance.OwnerID), instance.ID).Err(); err != nil {
			return fmt.Errorf("failed to index instance owner: %w", err)
		}
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*equipment.Instance, error) {
	jsonData, err := r.client.Get(ctx, itemKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, forgeerr.NotFoundf("instance not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get instance from Redis: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal instance data: %w", err)
	}

	return toInstance(&data), nil
}

func (r *redisRepo) Update(ctx context.Context, instance *equipment.Instance) error {
	if instance == nil {
		return forgeerr.InvalidArgument("instance cannot be nil")
	}

	jsonData, err := json.Marshal(toData(instance))
	if err != nil {
		return fmt.Errorf("failed to marshal instance data: %w", err)
	}

	updated, err := r.client.SetXX(ctx, itemKey(instance.ID), string(jsonData), 0).Result()
	if err != nil {
		return fmt.Errorf("failed to update instance in Redis: %w", err)
	}
	if !updated {
		return forgeerr.NotFoundf("instance not found: %s", instance.ID)
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	instance, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, itemKey(id))
	if instance.OwnerID != "" {
		pipe.SRem(ctx, ownerKey(instance.OwnerID), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete instance from Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*equipment.Instance, error) {
	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get owner items from Redis: %w", err)
	}

	instances := make([]*equipment.Instance, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			instance, err := r.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get instance %s: %w", id, err)
			}
			instances[i] = instance
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortByCreated(instances)
	return instances, nil
}
