package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Redis   RedisConfig   `yaml:"redis"`
	Forge   ForgeConfig   `yaml:"forge"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// StorageConfig selects where instances and loadouts live
type StorageConfig struct {
	Backend     string `yaml:"backend"`
	PostgresDSN string `yaml:"postgres_dsn"`
	// ConnectAttempts bounds the readiness wait for the backend
	ConnectAttempts int           `yaml:"connect_attempts"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// ForgeConfig holds generation and caching settings
type ForgeConfig struct {
	// CatalogDir overrides the embedded catalog tables when set
	CatalogDir string `yaml:"catalog_dir"`
	// Seed makes item rolls repeatable; 0 seeds from the clock
	Seed          uint64        `yaml:"seed"`
	StatsCacheTTL time.Duration `yaml:"stats_cache_ttl"`
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the prometheus endpoint; an empty address disables it
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:         BackendMemory,
			ConnectAttempts: 10,
			ConnectTimeout:  2 * time.Second,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Forge: ForgeConfig{
			StatsCacheTTL: 10 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the optional YAML file named by FORGE_CONFIG, then applies environment overrides
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("FORGE_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Storage.Backend = getEnvOrDefault("FORGE_STORAGE", cfg.Storage.Backend)
	cfg.Storage.PostgresDSN = getEnvOrDefault("DATABASE_URL", cfg.Storage.PostgresDSN)
	cfg.Storage.ConnectAttempts = getEnvAsIntOrDefault("FORGE_CONNECT_ATTEMPTS", cfg.Storage.ConnectAttempts)
	cfg.Storage.ConnectTimeout = getEnvAsDurationOrDefault("FORGE_CONNECT_TIMEOUT", cfg.Storage.ConnectTimeout)

	cfg.Redis.Addr = getEnvOrDefault("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnvOrDefault("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsIntOrDefault("REDIS_DB", cfg.Redis.DB)

	cfg.Forge.CatalogDir = getEnvOrDefault("FORGE_CATALOG_DIR", cfg.Forge.CatalogDir)
	cfg.Forge.Seed = uint64(getEnvAsIntOrDefault("FORGE_SEED", int(cfg.Forge.Seed)))
	cfg.Forge.StatsCacheTTL = getEnvAsDurationOrDefault("FORGE_STATS_CACHE_TTL", cfg.Forge.StatsCacheTTL)

	cfg.Log.Level = getEnvOrDefault("FORGE_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnvOrDefault("FORGE_LOG_FORMAT", cfg.Log.Format)

	cfg.Metrics.Addr = getEnvOrDefault("FORGE_METRICS_ADDR", cfg.Metrics.Addr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Validate checks the combination of settings is usable
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendRedis:
	case BackendPostgres:
		if c.Storage.PostgresDSN == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.ConnectAttempts < 1 {
		return fmt.Errorf("connect attempts must be >= 1, got %d", c.Storage.ConnectAttempts)
	}
	if c.Forge.StatsCacheTTL < 0 {
		return fmt.Errorf("stats cache TTL must not be negative")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
