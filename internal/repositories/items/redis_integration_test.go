//go:build integration

package items_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/items"
	"github.com/KirkDiggler/dungeon-forge/internal/testutils"
)

func TestRedisRepositoryAgainstServer(t *testing.T) {
	repo := items.NewRedisRepository(&items.RedisRepoConfig{Client: testutils.SetupTestRedis(t)})
	ctx := context.Background()

	chest := testutils.CreateTestInstance("item-1", "player-1")
	sword := testutils.CreateTestWeapon("item-2", "player-1")
	require.NoError(t, repo.Create(ctx, chest))
	require.NoError(t, repo.Create(ctx, sword))

	got, err := repo.Get(ctx, "item-2")
	require.NoError(t, err)
	assert.Equal(t, sword.Damage, got.Damage)
	assert.Equal(t, sword.Suffixes, got.Suffixes)

	owned, err := repo.ListByOwner(ctx, "player-1")
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	require.NoError(t, repo.Delete(ctx, "item-1"))
	_, err = repo.Get(ctx, "item-1")
	assert.True(t, forgeerr.IsNotFound(err))

	owned, err = repo.ListByOwner(ctx, "player-1")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "item-2", owned[0].ID)
}
