//go:build integration

package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
)

func TestVaultConfig(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	_, err := testDB.GetVaultConfig(ctx)
	require.True(t, db.IsNotFoundError(err))

	cfg := model.NewVaultConfigDocument(randomOwner(t), "reaper-pass", 0, 0, 0)
	require.NoError(t, testDB.SaveVaultConfig(ctx, cfg))

	err = testDB.SaveVaultConfig(ctx, cfg)
	require.True(t, db.IsDuplicateKeyError(err))

	cfg.TotalValueLocked = 9_000
	cfg.ReaperSupply = 3
	require.NoError(t, testDB.UpdateVaultConfig(ctx, cfg))

	stored, err := testDB.GetVaultConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, stored)
}

func TestAchievements(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	owner := randomOwner(t)
	rec := model.NewAchievementsDocument(owner, 1_700_000_000)
	require.NoError(t, testDB.SaveNewAchievements(ctx, rec))

	err := testDB.SaveNewAchievements(ctx, rec)
	require.True(t, db.IsDuplicateKeyError(err))

	rec.Unlocked = 1<<26 | 1
	rec.Points = 210
	require.NoError(t, testDB.UpdateAchievements(ctx, rec))

	stored, err := testDB.GetAchievements(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, rec, stored)

	err = testDB.UpdateAchievements(ctx, model.NewAchievementsDocument(randomOwner(t), 0))
	require.True(t, db.IsNotFoundError(err))
}

func TestBoostHolding(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	owner := randomOwner(t)
	_, err := testDB.GetBoostHolding(ctx, owner)
	require.True(t, db.IsNotFoundError(err))

	require.NoError(t, testDB.IncrementBoostHolding(ctx, owner, "reaper-pass", 10))
	require.NoError(t, testDB.IncrementBoostHolding(ctx, owner, "reaper-pass", 20))

	holding, err := testDB.GetBoostHolding(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), holding.Amount)
	assert.Equal(t, "reaper-pass", holding.CredentialID)
	assert.Equal(t, int64(20), holding.ReservedAt)
}

func TestTransfers(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	from := model.VaultID(randomOwner(t), assetID)
	for i := int64(1); i <= 3; i++ {
		require.NoError(t, testDB.SaveTransfer(ctx, &model.TransferDocument{
			From:      from,
			To:        "charity",
			Amount:    uint64(i * 100),
			Kind:      model.TransferKindCharity,
			CreatedAt: i,
		}))
	}

	transfers, err := testDB.FindTransfersFrom(ctx, from, 2)
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	assert.Equal(t, uint64(300), transfers[0].Amount)
	assert.Equal(t, uint64(200), transfers[1].Amount)
	assert.False(t, transfers[0].ID.IsZero())
}
