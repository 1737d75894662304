//go:build integration

package db_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
)

func TestLeaderboard(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	owners := []string{randomOwner(t), randomOwner(t), randomOwner(t)}
	for _, owner := range owners {
		require.NoError(t, testDB.SaveNewLeaderboardEntry(ctx, model.NewLeaderboardEntryDocument(owner)))
	}

	t.Run("one entry per owner", func(t *testing.T) {
		err := testDB.SaveNewLeaderboardEntry(ctx, model.NewLeaderboardEntryDocument(owners[0]))
		require.True(t, db.IsDuplicateKeyError(err))
	})

	t.Run("update tvl", func(t *testing.T) {
		require.NoError(t, testDB.UpdateLeaderboardEntryTVL(ctx, owners[1], 300))

		entry, err := testDB.GetLeaderboardEntry(ctx, owners[1])
		require.NoError(t, err)
		assert.Equal(t, uint64(300), entry.TVL)

		err = testDB.UpdateLeaderboardEntryTVL(ctx, randomOwner(t), 1)
		require.True(t, db.IsNotFoundError(err))
	})

	t.Run("persist ranks", func(t *testing.T) {
		ranks := map[string]uint32{owners[0]: 2, owners[1]: 0, owners[2]: 1}
		require.NoError(t, testDB.UpdateLeaderboardRanks(ctx, ranks))

		entries, err := testDB.GetAllLeaderboardEntries(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool {
			return entries[i].Owner < entries[j].Owner
		}), "entries are returned sorted by owner")
		for _, e := range entries {
			assert.Equal(t, ranks[e.Owner], e.Rank)
		}

		// rank survives a tvl update
		require.NoError(t, testDB.UpdateLeaderboardEntryTVL(ctx, owners[0], 5))
		entry, err := testDB.GetLeaderboardEntry(ctx, owners[0])
		require.NoError(t, err)
		assert.Equal(t, uint32(2), entry.Rank)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, testDB.DeleteLeaderboardEntry(ctx, owners[2]))

		_, err := testDB.GetLeaderboardEntry(ctx, owners[2])
		require.True(t, db.IsNotFoundError(err))
	})
}
