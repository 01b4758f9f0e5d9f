package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-forge/internal/await"
	"github.com/KirkDiggler/dungeon-forge/internal/config"
	"github.com/KirkDiggler/dungeon-forge/internal/db"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/items"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/loadouts"
	"github.com/KirkDiggler/dungeon-forge/internal/services/aggregator"
)

// storage is the set of repositories picked by the configured backend.
// Nil fields fall back to the in-memory defaults of the service provider.
type storage struct {
	Items      items.Repository
	Loadouts   loadouts.Repository
	StatsCache aggregator.Cache

	closers []func()
}

func (s *storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage, error) {
	store := &storage{}

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		logger.Info("using in-memory storage")
		return store, nil

	case config.BackendRedis:
		client, err := connectRedis(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		store.closers = append(store.closers, func() {
			if err := client.Close(); err != nil {
				logger.Warn("error closing redis", "error", err)
			}
		})
		store.Items = items.NewRedisRepository(&items.RedisRepoConfig{Client: client})
		store.Loadouts = loadouts.NewRedisRepository(&loadouts.RedisRepoConfig{Client: client})
		store.StatsCache = aggregator.NewRedisCache(&aggregator.RedisCacheConfig{
			Client: client,
			TTL:    cfg.Forge.StatsCacheTTL,
		})
		return store, nil

	case config.BackendPostgres:
		pool, err := connectPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		store.closers = append(store.closers, pool.Close)
		store.Items = items.NewPostgresRepository(pool)
		store.Loadouts = loadouts.NewPostgresRepository(pool)
		return store, nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

func connectRedis(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	err := await.Until(ctx, await.Options{
		Name:     "redis " + cfg.Redis.Addr,
		Attempts: cfg.Storage.ConnectAttempts,
		Timeout:  cfg.Storage.ConnectTimeout,
		Interval: time.Second,
		Logger:   logger,
		OnFailure: func(err error) {
			logger.Error("giving up on redis", "addr", cfg.Redis.Addr, "error", err)
		},
	}, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("connected to redis", "addr", cfg.Redis.Addr)
	return client, nil
}

func connectPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	err := await.Until(ctx, await.Options{
		Name:     "postgres",
		Attempts: cfg.Storage.ConnectAttempts,
		Timeout:  cfg.Storage.ConnectTimeout,
		Interval: time.Second,
		Logger:   logger,
		OnFailure: func(err error) {
			logger.Error("giving up on postgres", "error", err)
		},
	}, func(ctx context.Context) error {
		p, err := db.Connect(ctx, cfg.Storage.PostgresDSN)
		if err != nil {
			return err
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := db.RunMigrations(ctx, cfg.Storage.PostgresDSN); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to postgres and applied migrations")
	return pool, nil
}
