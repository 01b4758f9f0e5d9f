package services

import (
	"log/slog"

	"github.com/KirkDiggler/dungeon-forge/internal/catalog"
	"github.com/KirkDiggler/dungeon-forge/internal/dice"
	"github.com/KirkDiggler/dungeon-forge/internal/events"
	"github.com/KirkDiggler/dungeon-forge/internal/metrics"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/items"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/loadouts"
	"github.com/KirkDiggler/dungeon-forge/internal/services/aggregator"
	"github.com/KirkDiggler/dungeon-forge/internal/services/currency"
	"github.com/KirkDiggler/dungeon-forge/internal/services/damage"
	"github.com/KirkDiggler/dungeon-forge/internal/services/forge"
	loadoutService "github.com/KirkDiggler/dungeon-forge/internal/services/loadout"
	"github.com/KirkDiggler/dungeon-forge/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	ForgeService    forge.Service
	CurrencyService currency.Service
	DamageService   damage.Service
	StatsService    aggregator.Service
	LoadoutService  loadoutService.Service
	Events          *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Catalog           *catalog.Catalog
	ItemRepository    items.Repository
	LoadoutRepository loadouts.Repository
	StatsCache        aggregator.Cache
	Roller            dice.Roller
	UUIDGenerator     uuid.Generator
	Metrics           *metrics.Metrics
	Logger            *slog.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.MustLoad()
	}

	// Use in-memory repositories if none provided
	itemRepo := cfg.ItemRepository
	if itemRepo == nil {
		itemRepo = items.NewInMemoryRepository()
	}

	loadoutRepo := cfg.LoadoutRepository
	if loadoutRepo == nil {
		loadoutRepo = loadouts.NewInMemoryRepository()
	}

	// One roller shared by forge and currency so a seed replays a whole session
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller(0)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bus := events.NewBus(logger.With("component", "events"))

	forgeSvc := forge.NewService(&forge.ServiceConfig{
		Catalog:       cat,
		Repository:    itemRepo,
		Roller:        roller,
		UUIDGenerator: cfg.UUIDGenerator,
		Metrics:       cfg.Metrics,
		Logger:        logger.With("service", "forge"),
	})

	currencySvc := currency.NewService(&currency.ServiceConfig{
		Catalog:    cat,
		Repository: itemRepo,
		Roller:     roller,
		Metrics:    cfg.Metrics,
		Events:     bus,
		Logger:     logger.With("service", "currency"),
	})

	damageSvc := damage.NewService(&damage.ServiceConfig{
		Skills:  cat,
		Metrics: cfg.Metrics,
		Logger:  logger.With("service", "damage"),
	})

	statsSvc := aggregator.NewService(&aggregator.ServiceConfig{
		Loadouts: loadoutRepo,
		Items:    itemRepo,
		Runes:    cat,
		Cache:    cfg.StatsCache,
		Metrics:  cfg.Metrics,
		Logger:   logger.With("service", "stats"),
	})

	// Currency changes to owned items must not leave stale stats behind
	bus.Subscribe(events.EventTypeItemModified, aggregator.NewInvalidationListener(statsSvc))

	loadoutSvc := loadoutService.NewService(&loadoutService.ServiceConfig{
		Loadouts: loadoutRepo,
		Items:    itemRepo,
		Runes:    cat,
		Stats:    statsSvc,
		Logger:   logger.With("service", "loadout"),
	})

	return &Provider{
		ForgeService:    forgeSvc,
		CurrencyService: currencySvc,
		DamageService:   damageSvc,
		StatsService:    statsSvc,
		LoadoutService:  loadoutSvc,
		Events:          bus,
	}
}
