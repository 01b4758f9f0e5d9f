package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FORGE_CONFIG", "")
	t.Setenv("FORGE_STORAGE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 10*time.Minute, cfg.Forge.StatsCacheTTL)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forge.yaml")
	body := `storage:
  backend: redis
redis:
  addr: cache:6379
  db: 2
forge:
  seed: 1234
  stats_cache_ttl: 30s
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	t.Setenv("FORGE_CONFIG", path)
	t.Setenv("REDIS_DB", "5")
	t.Setenv("FORGE_STATS_CACHE_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 5, cfg.Redis.DB, "env wins over the file")
	assert.Equal(t, uint64(1234), cfg.Forge.Seed)
	assert.Equal(t, 30*time.Second, cfg.Forge.StatsCacheTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFileIsIgnored(t *testing.T) {
	t.Setenv("FORGE_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = BackendPostgres
	assert.Error(t, cfg.Validate())

	cfg.Storage.PostgresDSN = "postgres://forge@localhost/forge"
	assert.NoError(t, cfg.Validate())

	cfg.Storage.Backend = "sqlite"
	assert.Error(t, cfg.Validate())
}
