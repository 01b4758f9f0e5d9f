package forge_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dungeon-forge/internal/catalog"
	"github.com/KirkDiggler/dungeon-forge/internal/dice"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/stats"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
	"github.com/KirkDiggler/dungeon-forge/internal/metrics"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/items"
	mockitems "github.com/KirkDiggler/dungeon-forge/internal/repositories/items/mock"
	"github.com/KirkDiggler/dungeon-forge/internal/services/forge"
	"github.com/KirkDiggler/dungeon-forge/internal/testutils"
	"github.com/KirkDiggler/dungeon-forge/internal/uuid"
	mockuuid "github.com/KirkDiggler/dungeon-forge/internal/uuid/mocks"
)

type ForgeServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	catalog *catalog.Catalog
	repo    items.Repository
	metrics *metrics.Metrics
	service forge.Service
}

func (s *ForgeServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.catalog = catalog.MustLoad()
	s.repo = items.NewInMemoryRepository()
	s.metrics = metrics.NewWithRegistry(prometheus.NewRegistry())
	s.service = forge.NewService(&forge.ServiceConfig{
		Catalog:       s.catalog,
		Repository:    s.repo,
		Roller:        dice.NewRandomRoller(42),
		UUIDGenerator: uuid.NewSequenceGenerator("item"),
		Metrics:       s.metrics,
		Clock:         func() time.Time { return testutils.FixedTime },
	})
}

func TestForgeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ForgeServiceTestSuite))
}

func rarityPtr(r equipment.Rarity) *equipment.Rarity { return &r }
func slotPtr(s equipment.Slot) *equipment.Slot       { return &s }

func (s *ForgeServiceTestSuite) TestGeneratedItemsHonorRarityCaps() {
	for i := 0; i < 300; i++ {
		instance, err := s.service.GenerateRandomEquipment(s.ctx, &forge.GenerateInput{ItemLevel: 1 + i%80})
		s.Require().NoError(err)

		rule := instance.Rarity.Rule()
		s.LessOrEqual(len(instance.Prefixes), rule.MaxPrefixes)
		s.LessOrEqual(len(instance.Suffixes), rule.MaxSuffixes)
		s.LessOrEqual(instance.AffixCount(), rule.MaxAffixes)
		s.NoError(instance.Validate())

		seen := map[string]bool{}
		for _, a := range instance.Affixes() {
			s.False(seen[a.AffixID], "duplicate affix %s", a.AffixID)
			seen[a.AffixID] = true
			s.True(a.InRange(), "%s value %d outside %d-%d", a.AffixID, a.Value, a.MinValue, a.MaxValue)
		}
	}
}

func (s *ForgeServiceTestSuite) TestRareAtItemLevel25() {
	for i := 0; i < 100; i++ {
		instance, err := s.service.GenerateRandomEquipment(s.ctx, &forge.GenerateInput{
			ItemLevel: 25,
			Rarity:    rarityPtr(equipment.RarityRare),
		})
		s.Require().NoError(err)

		s.Equal(equipment.RarityRare, instance.Rarity)
		s.GreaterOrEqual(len(instance.Prefixes), 1)
		s.LessOrEqual(len(instance.Prefixes), 3)
		s.GreaterOrEqual(len(instance.Suffixes), 1)
		s.LessOrEqual(len(instance.Suffixes), 3)
	}
}

func (s *ForgeServiceTestSuite) TestLegendaryIsAlwaysFull() {
	instance, err := s.service.GenerateRandomEquipment(s.ctx, &forge.GenerateInput{
		ItemLevel: 70,
		Rarity:    rarityPtr(equipment.RarityLegendary),
		Slot:      slotPtr(equipment.SlotChest),
	})
	s.Require().NoError(err)

	s.Len(instance.Prefixes, 3)
	s.Len(instance.Suffixes, 3)
	s.Equal(equipment.SlotChest, instance.Slot)
}

func (s *ForgeServiceTestSuite) TestMagicHasAtLeastOneAffix() {
	for i := 0; i < 50; i++ {
		instance, err := s.service.GenerateRandomEquipment(s.ctx, &forge.GenerateInput{
			ItemLevel: 5,
			Rarity:    rarityPtr(equipment.RarityMagic),
		})
		s.Require().NoError(err)
		s.GreaterOrEqual(instance.AffixCount(), 1)
		s.LessOrEqual(instance.AffixCount(), 2)
	}
}

func (s *ForgeServiceTestSuite) TestNormalHasNoAffixes() {
	instance, err := s.service.GenerateRandomEquipment(s.ctx, &forge.GenerateInput{
		ItemLevel: 10,
		Rarity:    rarityPtr(equipment.RarityNormal),
	})
	s.Require().NoError(err)
	s.Zero(instance.AffixCount())
}

func (s *ForgeServiceTestSuite) TestGeneratedItemIsStored() {
	instance, err := s.service.GenerateRandomEquipment(s.ctx, &forge.GenerateInput{
		ItemLevel: 12,
		OwnerID:   "player-1",
	})
	s.Require().NoError(err)

	s.Equal("item-1", instance.ID)
	s.Equal(testutils.FixedTime, instance.CreatedAt)

	stored, err := s.service.Get(s.ctx, instance.ID)
	s.Require().NoError(err)
	s.Equal(instance, stored)

	owned, err := s.service.ListByOwner(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Len(owned, 1)

	s.Equal(1.0, testutil.ToFloat64(
		s.metrics.ItemsGeneratedTotal.WithLabelValues(string(instance.Rarity), string(instance.Slot))))
}

func (s *ForgeServiceTestSuite) TestWeaponCarriesDamageRange() {
	instance, err := s.service.GenerateRandomEquipment(s.ctx, &forge.GenerateInput{
		ItemLevel: 1,
		Slot:      slotPtr(equipment.SlotWeapon),
	})
	s.Require().NoError(err)
	s.NotNil(instance.Damage)
}

func (s *ForgeServiceTestSuite) TestBaseTypesRespectItemLevel() {
	for i := 0; i < 50; i++ {
		instance, err := s.service.GenerateRandomEquipment(s.ctx, &forge.GenerateInput{ItemLevel: 1})
		s.Require().NoError(err)

		base, ok := s.catalog.Base(instance.BaseTypeID)
		s.Require().True(ok)
		s.LessOrEqual(base.LevelRequirement, 1)
	}
}

func (s *ForgeServiceTestSuite) TestRejectsInvalidInput() {
	_, err := s.service.GenerateRandomEquipment(s.ctx, &forge.GenerateInput{ItemLevel: 0})
	s.True(forgeerr.IsInvalidArgument(err))

	_, err = s.service.GenerateRandomEquipment(s.ctx, &forge.GenerateInput{
		ItemLevel: 5,
		Rarity:    rarityPtr("mythic"),
	})
	s.True(forgeerr.IsInvalidArgument(err))

	_, err = s.service.GenerateRandomEquipment(s.ctx, &forge.GenerateInput{
		ItemLevel: 5,
		Slot:      slotPtr("tail"),
	})
	s.True(forgeerr.IsInvalidArgument(err))

	_, err = s.service.GenerateRandomEquipment(s.ctx, nil)
	s.True(forgeerr.IsInvalidArgument(err))
}

func TestNoCandidateBaseType(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockitems.NewMockRepository(ctrl)

	bases := []*equipment.BaseType{{ID: "crown", Name: "Crown", Slot: equipment.SlotHelmet, LevelRequirement: 50}}
	cat, err := catalog.New(bases, nil, nil, nil)
	require.NoError(t, err)

	svc := forge.NewService(&forge.ServiceConfig{Catalog: cat, Repository: repo, Roller: dice.NewRandomRoller(1)})

	_, err = svc.GenerateRandomEquipment(context.Background(), &forge.GenerateInput{ItemLevel: 10})
	require.Error(t, err)
	assert.Equal(t, forgeerr.CodeNoCandidateBaseType, forgeerr.GetCode(err))

	_, err = svc.GenerateRandomEquipment(context.Background(), &forge.GenerateInput{
		ItemLevel: 60,
		Slot:      slotPtr(equipment.SlotRing),
	})
	assert.Equal(t, forgeerr.CodeNoCandidateBaseType, forgeerr.GetCode(err))
}

func TestGenerateFailsWhenPoolsCannotFillRarityMinimum(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockitems.NewMockRepository(ctrl)

	bases := []*equipment.BaseType{{ID: "band", Name: "Band", Slot: equipment.SlotRing, LevelRequirement: 1}}
	affixDefs := []*equipment.AffixDefinition{{
		ID:       "sharp",
		Name:     "Sharp",
		Position: equipment.PositionPrefix,
		Stat:     stats.StatIncreasedDamage,
		Tiers:    []equipment.AffixTier{{Tier: 1, MinItemLevel: 1, MinValue: 1, MaxValue: 5, Weight: 10}},
	}}
	cat, err := catalog.New(bases, affixDefs, nil, nil)
	require.NoError(t, err)

	svc := forge.NewService(&forge.ServiceConfig{Catalog: cat, Repository: repo, Roller: dice.NewRandomRoller(3)})

	for _, rarity := range []equipment.Rarity{equipment.RarityRare, equipment.RarityLegendary} {
		_, err = svc.GenerateRandomEquipment(context.Background(), &forge.GenerateInput{
			ItemLevel: 10,
			Rarity:    rarityPtr(rarity),
		})
		require.Error(t, err, rarity)
		assert.Equal(t, forgeerr.CodeAffixPoolExhausted, forgeerr.GetCode(err), rarity)
	}
}

func TestGenerateUsesInjectedDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockitems.NewMockRepository(ctrl)
	gen := mockuuid.NewMockGenerator(ctrl)

	gen.EXPECT().New().Return("fixed-id")
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, instance *equipment.Instance) error {
			assert.Equal(t, "fixed-id", instance.ID)
			assert.Equal(t, "owner-9", instance.OwnerID)
			return nil
		})

	svc := forge.NewService(&forge.ServiceConfig{
		Catalog:       catalog.MustLoad(),
		Repository:    repo,
		Roller:        dice.NewRandomRoller(7),
		UUIDGenerator: gen,
	})

	instance, err := svc.GenerateRandomEquipment(context.Background(), &forge.GenerateInput{
		ItemLevel: 20,
		OwnerID:   "owner-9",
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", instance.ID)
}

func TestGenerateSurfacesRepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockitems.NewMockRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	svc := forge.NewService(&forge.ServiceConfig{
		Catalog:    catalog.MustLoad(),
		Repository: repo,
		Roller:     dice.NewRandomRoller(3),
	})

	_, err := svc.GenerateRandomEquipment(context.Background(), &forge.GenerateInput{ItemLevel: 20})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRarityWeightsShiftWithItemLevel(t *testing.T) {
	low := forge.RarityWeights(1)
	high := forge.RarityWeights(90)

	assert.Greater(t, low[0], high[0])
	assert.Less(t, low[3], high[3])
	assert.Equal(t, []int{40, 35, 20, 5}, forge.RarityWeights(25))
}
