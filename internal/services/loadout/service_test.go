package loadout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dungeon-forge/internal/catalog"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	loadoutdomain "github.com/KirkDiggler/dungeon-forge/internal/domain/loadout"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/items"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/loadouts"
	"github.com/KirkDiggler/dungeon-forge/internal/services/loadout"
	mockloadout "github.com/KirkDiggler/dungeon-forge/internal/services/loadout/mock"
	"github.com/KirkDiggler/dungeon-forge/internal/testutils"
)

type LoadoutServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	stats    *mockloadout.MockStatsInvalidator
	items    items.Repository
	loadouts loadouts.Repository
	service  loadout.Service
}

func (s *LoadoutServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.stats = mockloadout.NewMockStatsInvalidator(s.ctrl)
	s.items = items.NewInMemoryRepository()
	s.loadouts = loadouts.NewInMemoryRepository()
	s.service = loadout.NewService(&loadout.ServiceConfig{
		Loadouts: s.loadouts,
		Items:    s.items,
		Runes:    catalog.MustLoad(),
		Stats:    s.stats,
	})

	s.Require().NoError(s.items.Create(s.ctx, testutils.CreateTestWeapon("sword-1", "p1")))
	s.Require().NoError(s.items.Create(s.ctx, testutils.CreateTestWeapon("sword-2", "p1")))
	s.Require().NoError(s.items.Create(s.ctx, testutils.CreateTestInstance("chest-1", "p2")))
}

func TestLoadoutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoadoutServiceTestSuite))
}

func (s *LoadoutServiceTestSuite) TestEquipInvalidatesStats() {
	s.stats.EXPECT().InvalidateCache(gomock.Any(), "p1").Return(nil).Times(2)

	result, err := s.service.Equip(s.ctx, "p1", "sword-1")
	s.Require().NoError(err)
	s.Equal(equipment.SlotWeapon, result.Slot)
	s.Empty(result.Previous)

	result, err = s.service.Equip(s.ctx, "p1", "sword-2")
	s.Require().NoError(err)
	s.Equal("sword-1", result.Previous)

	stored, err := s.service.Get(s.ctx, "p1")
	s.Require().NoError(err)
	id, ok := stored.ItemIn(equipment.SlotWeapon)
	s.True(ok)
	s.Equal("sword-2", id)
}

func (s *LoadoutServiceTestSuite) TestEquipRejectsOtherPlayersItems() {
	_, err := s.service.Equip(s.ctx, "p1", "chest-1")
	s.True(forgeerr.IsInvalidArgument(err))

	_, err = s.service.Equip(s.ctx, "p1", "missing")
	s.True(forgeerr.IsNotFound(err))
}

func (s *LoadoutServiceTestSuite) TestEquipRejectsUnownedItems() {
	s.Require().NoError(s.items.Create(s.ctx, testutils.CreateTestWeapon("loose-1", "")))

	_, err := s.service.Equip(s.ctx, "p1", "loose-1")
	s.True(forgeerr.IsInvalidArgument(err))

	l, err := s.service.Get(s.ctx, "p1")
	s.Require().NoError(err)
	s.Empty(l.Equipped)
}

func (s *LoadoutServiceTestSuite) TestUnequip() {
	s.stats.EXPECT().InvalidateCache(gomock.Any(), "p1").Return(nil).Times(2)

	_, err := s.service.Equip(s.ctx, "p1", "sword-1")
	s.Require().NoError(err)

	l, err := s.service.Unequip(s.ctx, "p1", equipment.SlotWeapon)
	s.Require().NoError(err)
	s.Empty(l.Equipped)

	_, err = s.service.Unequip(s.ctx, "p1", equipment.SlotWeapon)
	s.True(forgeerr.IsNotFound(err))

	_, err = s.service.Unequip(s.ctx, "p1", "tail")
	s.True(forgeerr.IsInvalidArgument(err))
}

func (s *LoadoutServiceTestSuite) TestBindRune() {
	s.stats.EXPECT().InvalidateCache(gomock.Any(), "p1").Return(nil).Times(2)

	l, err := s.service.BindRune(s.ctx, "p1", loadoutdomain.RuneBinding{SkillSlot: 2, RuneID: "fury", Level: 5})
	s.Require().NoError(err)
	s.Len(l.Runes, 1)

	_, err = s.service.BindRune(s.ctx, "p1", loadoutdomain.RuneBinding{SkillSlot: 2, RuneID: "gloom", Level: 1})
	s.True(forgeerr.IsInvalidArgument(err))

	_, err = s.service.BindRune(s.ctx, "p1", loadoutdomain.RuneBinding{SkillSlot: 2, RuneID: "wrath", Level: 6})
	s.True(forgeerr.IsInvalidArgument(err))

	_, err = s.service.BindRune(s.ctx, "p1", loadoutdomain.RuneBinding{SkillSlot: 9, RuneID: "fury", Level: 1})
	s.True(forgeerr.IsInvalidArgument(err))

	l, err = s.service.UnbindRune(s.ctx, "p1", 2)
	s.Require().NoError(err)
	s.Empty(l.Runes)

	_, err = s.service.UnbindRune(s.ctx, "p1", 2)
	s.True(forgeerr.IsNotFound(err))
}

func (s *LoadoutServiceTestSuite) TestInvalidationFailureIsReported() {
	s.stats.EXPECT().InvalidateCache(gomock.Any(), "p1").Return(errors.New("cache down"))

	_, err := s.service.Equip(s.ctx, "p1", "sword-1")
	s.Error(err)
}
