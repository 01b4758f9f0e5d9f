package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/stats"
)

func testStats() *stats.PlayerStats {
	p := stats.NewPlayerStats("p1")
	p.IncreasedDamage = 25
	p.MoreDamage = []float64{10, 20}
	p.SkillTagBonus[stats.TagSpell] = 15
	return p
}

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache()

	_, ok, err := c.Get(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, ok)

	p := testStats()
	require.NoError(t, c.Set(ctx, p))
	p.IncreasedDamage = 0

	got, ok, err := c.Get(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 25.0, got.IncreasedDamage)

	require.NoError(t, c.Delete(ctx, "p1"))
	_, ok, _ = c.Get(ctx, "p1")
	assert.False(t, ok)

	assert.Error(t, c.Set(ctx, nil))
}

type RedisCacheTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	cache      Cache
}

func (s *RedisCacheTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.cache = NewRedisCache(&RedisCacheConfig{Client: s.mockClient, TTL: time.Minute})
}

func (s *RedisCacheTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisCacheTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheTestSuite))
}

func (s *RedisCacheTestSuite) TestSet() {
	p := testStats()
	raw, err := json.Marshal(p)
	s.Require().NoError(err)

	s.mock.ExpectSet("stats:p1", string(raw), time.Minute).SetVal("OK")
	s.NoError(s.cache.Set(context.Background(), p))

	s.mock.ExpectSet("stats:p1", string(raw), time.Minute).SetErr(errors.New("redis error"))
	s.Error(s.cache.Set(context.Background(), p))
}

func (s *RedisCacheTestSuite) TestGet() {
	p := testStats()
	raw, err := json.Marshal(p)
	s.Require().NoError(err)

	s.mock.ExpectGet("stats:p1").SetVal(string(raw))
	got, ok, err := s.cache.Get(context.Background(), "p1")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(p, got)

	s.mock.ExpectGet("stats:p2").RedisNil()
	_, ok, err = s.cache.Get(context.Background(), "p2")
	s.NoError(err)
	s.False(ok)

	s.mock.ExpectGet("stats:p1").SetErr(errors.New("redis error"))
	_, _, err = s.cache.Get(context.Background(), "p1")
	s.Error(err)
}

func (s *RedisCacheTestSuite) TestDelete() {
	s.mock.ExpectDel("stats:p1").SetVal(1)
	s.NoError(s.cache.Delete(context.Background(), "p1"))
}
