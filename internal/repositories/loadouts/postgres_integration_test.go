//go:build integration

package loadouts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/loadout"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/loadouts"
	"github.com/KirkDiggler/dungeon-forge/internal/testutils"
)

func TestPostgresRepository(t *testing.T) {
	repo := loadouts.NewPostgresRepository(testutils.SetupTestDB(t))
	ctx := context.Background()

	l := testutils.CreateTestLoadout("p1", testutils.CreateTestWeapon("sword-1", "p1"))
	require.NoError(t, l.BindRune(loadout.RuneBinding{SkillSlot: 1, RuneID: "fury", Level: 4}))
	l.UpdatedAt = testutils.FixedTime
	require.NoError(t, repo.Save(ctx, l))

	// upsert
	require.NoError(t, l.BindRune(loadout.RuneBinding{SkillSlot: 2, RuneID: "haste", Level: 1}))
	require.NoError(t, repo.Save(ctx, l))

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, l.Equipped, got.Equipped)
	assert.Equal(t, l.Runes, got.Runes)

	require.NoError(t, repo.Delete(ctx, "p1"))
	got, err = repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, got.Runes)
}
