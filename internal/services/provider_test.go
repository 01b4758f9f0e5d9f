package services_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-forge/internal/dice"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-forge/internal/metrics"
	"github.com/KirkDiggler/dungeon-forge/internal/services"
	"github.com/KirkDiggler/dungeon-forge/internal/services/forge"
)

func TestProviderWiresServicesTogether(t *testing.T) {
	ctx := context.Background()
	p := services.NewProvider(&services.ProviderConfig{Roller: dice.NewRandomRoller(5)})

	weapon := equipment.SlotWeapon
	instance, err := p.ForgeService.GenerateRandomEquipment(ctx, &forge.GenerateInput{
		ItemLevel: 30,
		Slot:      &weapon,
		OwnerID:   "p1",
	})
	require.NoError(t, err)

	before, err := p.StatsService.CollectStats(ctx, "p1")
	require.NoError(t, err)
	assert.Zero(t, before.WeaponDamageMax)

	_, err = p.LoadoutService.Equip(ctx, "p1", instance.ID)
	require.NoError(t, err)

	after, err := p.StatsService.CollectStats(ctx, "p1")
	require.NoError(t, err)
	assert.Greater(t, after.WeaponDamageMax, 0.0)

	breakdown, err := p.DamageService.Calculate(ctx, "cleave", 1, after)
	require.NoError(t, err)
	assert.Greater(t, breakdown.FinalDamage, before.WeaponDamageMax)
}

func TestCurrencyChangesInvalidateOwnerStats(t *testing.T) {
	ctx := context.Background()
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	p := services.NewProvider(&services.ProviderConfig{
		Roller:  dice.NewRandomRoller(8),
		Metrics: m,
	})

	legendary := equipment.RarityLegendary
	chest := equipment.SlotChest
	instance, err := p.ForgeService.GenerateRandomEquipment(ctx, &forge.GenerateInput{
		ItemLevel: 40,
		Rarity:    &legendary,
		Slot:      &chest,
		OwnerID:   "p1",
	})
	require.NoError(t, err)
	_, err = p.LoadoutService.Equip(ctx, "p1", instance.ID)
	require.NoError(t, err)

	_, err = p.StatsService.CollectStats(ctx, "p1")
	require.NoError(t, err)
	_, err = p.StatsService.CollectStats(ctx, "p1")
	require.NoError(t, err)

	_, err = p.CurrencyService.RerollAffixValues(ctx, instance.ID)
	require.NoError(t, err)

	_, err = p.StatsService.CollectStats(ctx, "p1")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatsCacheLookupsTotal.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StatsCacheLookupsTotal.WithLabelValues("miss")))
}
