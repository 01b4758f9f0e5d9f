//go:build integration

package items_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/items"
	"github.com/KirkDiggler/dungeon-forge/internal/testutils"
)

func TestPostgresRepository(t *testing.T) {
	pool := testutils.SetupTestDB(t)
	repo := items.NewPostgresRepository(pool)
	ctx := context.Background()

	instance := testutils.CreateTestInstance("item-1", "player-1")
	require.NoError(t, repo.Create(ctx, instance))
	assert.True(t, forgeerr.IsAlreadyExists(repo.Create(ctx, instance)))

	got, err := repo.Get(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, instance.Prefixes, got.Prefixes)
	assert.Equal(t, instance.Suffixes, got.Suffixes)
	assert.Equal(t, instance.Implicit, got.Implicit)
	assert.Nil(t, got.Damage)
	assert.True(t, instance.CreatedAt.Equal(got.CreatedAt))

	got.Prefixes[0].Value = 15
	got.UpdatedAt = got.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Prefixes[0].Value)

	weapon := testutils.CreateTestWeapon("item-2", "player-1")
	weapon.CreatedAt = weapon.CreatedAt.Add(time.Hour)
	require.NoError(t, repo.Create(ctx, weapon))

	owned, err := repo.ListByOwner(ctx, "player-1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "item-1", owned[0].ID)
	assert.Equal(t, *weapon.Damage, *owned[1].Damage)

	require.NoError(t, repo.Delete(ctx, "item-1"))
	_, err = repo.Get(ctx, "item-1")
	assert.True(t, forgeerr.IsNotFound(err))
	assert.True(t, forgeerr.IsNotFound(repo.Delete(ctx, "item-1")))
	assert.True(t, forgeerr.IsNotFound(repo.Update(ctx, instance)))
}
