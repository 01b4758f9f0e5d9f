package items_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/items"
	"github.com/KirkDiggler/dungeon-forge/internal/testutils"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo items.Repository
	ctx  context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = items.NewInMemoryRepository()
	s.ctx = context.Background()
}

func TestInMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) TestCreateAndGet() {
	instance := testutils.CreateTestInstance("item-1", "player-1")

	s.Require().NoError(s.repo.Create(s.ctx, instance))

	got, err := s.repo.Get(s.ctx, "item-1")
	s.Require().NoError(err)
	s.Equal(instance, got)
}

func (s *InMemoryRepositoryTestSuite) TestCreateRejectsDuplicatesAndBadInput() {
	instance := testutils.CreateTestInstance("item-1", "player-1")
	s.Require().NoError(s.repo.Create(s.ctx, instance))

	err := s.repo.Create(s.ctx, instance)
	s.True(forgeerr.IsAlreadyExists(err))

	s.True(forgeerr.IsInvalidArgument(s.repo.Create(s.ctx, nil)))
	s.True(forgeerr.IsInvalidArgument(s.repo.Create(s.ctx, &equipment.Instance{})))
}

func (s *InMemoryRepositoryTestSuite) TestStoredCopyIsIsolated() {
	instance := testutils.CreateTestInstance("item-1", "player-1")
	s.Require().NoError(s.repo.Create(s.ctx, instance))

	// mutating the caller's value must not leak into storage
	instance.Prefixes[0].Value = 999

	got, err := s.repo.Get(s.ctx, "item-1")
	s.Require().NoError(err)
	s.Equal(12, got.Prefixes[0].Value)

	got.Suffixes[0].Value = 1
	again, err := s.repo.Get(s.ctx, "item-1")
	s.Require().NoError(err)
	s.Equal(20, again.Suffixes[0].Value)
}

func (s *InMemoryRepositoryTestSuite) TestUpdate() {
	instance := testutils.CreateTestInstance("item-1", "player-1")

	err := s.repo.Update(s.ctx, instance)
	s.True(forgeerr.IsNotFound(err))

	s.Require().NoError(s.repo.Create(s.ctx, instance))
	instance.Prefixes[0].Value = 14
	s.Require().NoError(s.repo.Update(s.ctx, instance))

	got, err := s.repo.Get(s.ctx, "item-1")
	s.Require().NoError(err)
	s.Equal(14, got.Prefixes[0].Value)
}

func (s *InMemoryRepositoryTestSuite) TestDelete() {
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestInstance("item-1", "player-1")))

	s.Require().NoError(s.repo.Delete(s.ctx, "item-1"))

	_, err := s.repo.Get(s.ctx, "item-1")
	s.True(forgeerr.IsNotFound(err))
	s.True(forgeerr.IsNotFound(s.repo.Delete(s.ctx, "item-1")))
}

func (s *InMemoryRepositoryTestSuite) TestListByOwner() {
	first := testutils.CreateTestInstance("item-b", "player-1")
	second := testutils.CreateTestWeapon("item-a", "player-1")
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	other := testutils.CreateTestInstance("item-c", "player-2")

	for _, instance := range []*equipment.Instance{second, other, first} {
		s.Require().NoError(s.repo.Create(s.ctx, instance))
	}

	owned, err := s.repo.ListByOwner(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Require().Len(owned, 2)
	s.Equal("item-b", owned[0].ID)
	s.Equal("item-a", owned[1].ID)

	none, err := s.repo.ListByOwner(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Empty(none)
}
