package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-forge/internal/await"
)

// RedisAddrEnv names the variable pointing integration tests at a redis server
const RedisAddrEnv = "FORGE_TEST_REDIS_ADDR"

// testRedisDB keeps test keys away from a developer's working data
const testRedisDB = 15

// SetupTestRedis connects to the redis server named by FORGE_TEST_REDIS_ADDR,
// flushes the test database and flushes it again on cleanup. The test is
// skipped when the variable is unset or the server never answers.
func SetupTestRedis(tb testing.TB) redis.UniversalClient {
	tb.Helper()

	addr := os.Getenv(RedisAddrEnv)
	if addr == "" {
		tb.Skipf("%s not set", RedisAddrEnv)
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   testRedisDB,
	})

	ctx := context.Background()
	err := await.Until(ctx, await.Options{
		Name:     "redis " + addr,
		Attempts: 3,
		Timeout:  time.Second,
		Interval: 200 * time.Millisecond,
	}, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		_ = client.Close()
		tb.Skipf("redis not available for testing: %v", err)
	}

	require.NoError(tb, client.FlushDB(ctx).Err(), "failed to flush test redis database")

	tb.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}
