package forge

//go:generate mockgen -destination=mock/mock_service.go -package=mockforge -source=service.go

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/dungeon-forge/internal/affixes"
	"github.com/KirkDiggler/dungeon-forge/internal/catalog"
	"github.com/KirkDiggler/dungeon-forge/internal/dice"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
	"github.com/KirkDiggler/dungeon-forge/internal/metrics"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/items"
	"github.com/KirkDiggler/dungeon-forge/internal/uuid"
)

// Service generates and looks up equipment instances
type Service interface {
	// GenerateRandomEquipment rolls and stores a new instance
	GenerateRandomEquipment(ctx context.Context, input *GenerateInput) (*equipment.Instance, error)

	// Get retrieves a stored instance
	Get(ctx context.Context, id string) (*equipment.Instance, error)

	// ListByOwner returns every instance an owner holds
	ListByOwner(ctx context.Context, ownerID string) ([]*equipment.Instance, error)
}

// GenerateInput describes the item to roll. Rarity and Slot are rolled when nil.
type GenerateInput struct {
	ItemLevel int               `validate:"gte=1"`
	Rarity    *equipment.Rarity `validate:"omitempty,rarity"`
	Slot      *equipment.Slot   `validate:"omitempty,slot"`
	OwnerID   string            `validate:"omitempty,max=64"`
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog       *catalog.Catalog
	Repository    items.Repository
	Roller        dice.Roller      // Optional - defaults to a time-seeded roller
	UUIDGenerator uuid.Generator   // Optional - defaults to random UUIDs
	Metrics       *metrics.Metrics // Optional
	Logger        *slog.Logger     // Optional - defaults to slog.Default()
	Clock         func() time.Time // Optional - defaults to time.Now
}

type service struct {
	catalog  *catalog.Catalog
	repo     items.Repository
	roller   dice.Roller
	affixes  *affixes.Roller
	uuid     uuid.Generator
	metrics  *metrics.Metrics
	logger   *slog.Logger
	clock    func() time.Time
	validate *validator.Validate
}

// NewService creates a new forge service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Catalog == nil || cfg.Repository == nil {
		panic("forge ServiceConfig requires Catalog and Repository")
	}

	svc := &service{
		catalog: cfg.Catalog,
		repo:    cfg.Repository,
		roller:  cfg.Roller,
		uuid:    cfg.UUIDGenerator,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
		clock:   cfg.Clock,
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller(0)
	}
	if svc.uuid == nil {
		svc.uuid = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.clock == nil {
		svc.clock = time.Now
	}
	svc.affixes = affixes.NewRoller(svc.catalog, svc.roller)
	svc.validate = newValidator()

	return svc
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("rarity", func(fl validator.FieldLevel) bool {
		return equipment.Rarity(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("slot", func(fl validator.FieldLevel) bool {
		return equipment.Slot(fl.Field().String()).IsValid()
	})
	return v
}

func (s *service) validateInput(input *GenerateInput) error {
	if input == nil {
		return forgeerr.InvalidArgument("input is required")
	}
	if err := s.validate.Struct(input); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
			}
		}
		return forgeerr.WrapWithCode(err, forgeerr.CodeInvalidArgument,
			"invalid generate input: "+strings.Join(fields, ", "))
	}
	return nil
}

// GenerateRandomEquipment picks a base type, rarity and affixes and stores the result
func (s *service) GenerateRandomEquipment(ctx context.Context, input *GenerateInput) (*equipment.Instance, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	candidates := s.catalog.BasesFor(input.ItemLevel, input.Slot)
	if len(candidates) == 0 {
		slot := "any"
		if input.Slot != nil {
			slot = string(*input.Slot)
		}
		return nil, forgeerr.NoCandidateBaseTypef("no base type for slot %s at item level %d", slot, input.ItemLevel).
			WithMeta("item_level", input.ItemLevel).
			WithMeta("slot", slot)
	}
	base := candidates[s.roller.Intn(len(candidates))]

	rarity := equipment.RarityNormal
	if input.Rarity != nil {
		rarity = *input.Rarity
	} else {
		rarity = s.rollRarity(input.ItemLevel)
	}

	now := s.clock()
	instance := &equipment.Instance{
		ID:         s.uuid.New(),
		OwnerID:    input.OwnerID,
		BaseTypeID: base.ID,
		Name:       base.Name,
		Slot:       base.Slot,
		Icon:       base.Icon,
		Rarity:     rarity,
		ItemLevel:  input.ItemLevel,
		Implicit:   s.affixes.RollImplicit(base),
		Prefixes:   []equipment.AffixInstance{},
		Suffixes:   []equipment.AffixInstance{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if base.Damage != nil {
		dmg := *base.Damage
		instance.Damage = &dmg
	}

	prefixes, suffixes := s.rollCounts(rarity)
	if err := s.rollAffixes(instance, equipment.PositionPrefix, prefixes); err != nil {
		return nil, err
	}
	if err := s.rollAffixes(instance, equipment.PositionSuffix, suffixes); err != nil {
		return nil, err
	}
	if err := instance.CheckMinimums(); err != nil {
		return nil, forgeerr.WrapWithCode(err, forgeerr.CodeAffixPoolExhausted,
			"affix pools cannot fill the rarity minimum").
			WithMeta("base", base.ID).
			WithMeta("rarity", rarity).
			WithMeta("item_level", input.ItemLevel)
	}
	instance.Name = instance.DisplayName(base.Name)

	if err := instance.Validate(); err != nil {
		return nil, forgeerr.Wrap(err, "generated instance is invalid")
	}

	if err := s.repo.Create(ctx, instance); err != nil {
		return nil, forgeerr.Wrapf(err, "failed to store instance %s", instance.ID)
	}

	s.metrics.RecordItemGenerated(string(instance.Rarity), string(instance.Slot))
	s.logger.InfoContext(ctx, "generated equipment",
		"id", instance.ID,
		"base", instance.BaseTypeID,
		"rarity", instance.Rarity,
		"item_level", instance.ItemLevel,
		"prefixes", len(instance.Prefixes),
		"suffixes", len(instance.Suffixes))

	return instance, nil
}

// rollAffixes adds up to count affixes of one position. A dry pool shrinks the count;
// the caller checks the rarity minimums afterwards.
func (s *service) rollAffixes(instance *equipment.Instance, pos equipment.AffixPosition, count int) error {
	for i := 0; i < count; i++ {
		affix, err := s.affixes.Roll(instance.Slot, pos, instance.ItemLevel, instance.AffixIDs())
		if err != nil {
			if forgeerr.Is(err, forgeerr.CodeAffixPoolExhausted) {
				s.logger.Warn("affix pool ran dry during generation",
					"base", instance.BaseTypeID,
					"position", pos,
					"wanted", count,
					"rolled", i)
				return nil
			}
			return err
		}
		if err := instance.AddAffix(affix); err != nil {
			return forgeerr.Wrap(err, "failed to add rolled affix")
		}
	}
	return nil
}

// Get retrieves a stored instance
func (s *service) Get(ctx context.Context, id string) (*equipment.Instance, error) {
	if id == "" {
		return nil, forgeerr.InvalidArgument("instance ID is required")
	}
	return s.repo.Get(ctx, id)
}

// ListByOwner returns every instance an owner holds
func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*equipment.Instance, error) {
	if ownerID == "" {
		return nil, forgeerr.InvalidArgument("owner ID is required")
	}
	return s.repo.ListByOwner(ctx, ownerID)
}
