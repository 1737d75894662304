//go:build integration

package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
)

func TestStats(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("CalculateTotalValueLocked - no vaults", func(t *testing.T) {
		tvl, activeVaults, err := testDB.CalculateTotalValueLocked(ctx)
		require.NoError(t, err)
		assert.Zero(t, tvl)
		assert.Zero(t, activeVaults)
	})

	t.Run("CalculateTotalValueLocked - inactive vaults still hold value", func(t *testing.T) {
		active := model.NewVaultDocument(randomOwner(t), assetID, 0)
		active.Balance = 100_000
		require.NoError(t, testDB.SaveNewVault(ctx, active))

		inactive := model.NewVaultDocument(randomOwner(t), assetID, 0)
		inactive.Balance = 25_000
		inactive.IsActive = false
		require.NoError(t, testDB.SaveNewVault(ctx, inactive))

		tvl, activeVaults, err := testDB.CalculateTotalValueLocked(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(125_000), tvl)
		assert.Equal(t, uint64(1), activeVaults)
	})

	t.Run("UpsertOverallStats", func(t *testing.T) {
		_, err := testDB.GetOverallStats(ctx)
		require.True(t, db.IsNotFoundError(err))

		require.NoError(t, testDB.UpsertOverallStats(ctx, 125_000, 1, 125_000))
		require.NoError(t, testDB.UpsertOverallStats(ctx, 130_000, 2, 131_000))

		stats, err := testDB.GetOverallStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(130_000), stats.TotalValueLocked)
		assert.Equal(t, uint64(2), stats.ActiveVaults)
		assert.Equal(t, uint64(131_000), stats.ConfigTVL)
		assert.Positive(t, stats.LastUpdated)
	})
}
