package leaderboard

import (
	"sort"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
)

// RankedEntry is an owner with its position in the ranking. Rank is 0-based.
type RankedEntry struct {
	Owner string
	TVL   uint64
	Rank  uint32
}

// Rank orders entries by tvl descending and assigns each its 0-based
// position. Entries with equal tvl keep their relative input order, so equal
// tvl still yields distinct ranks. The input is not modified.
func Rank(entries []model.LeaderboardEntryDocument) []RankedEntry {
	ranked := make([]RankedEntry, len(entries))
	for i, e := range entries {
		ranked[i] = RankedEntry{Owner: e.Owner, TVL: e.TVL}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TVL > ranked[j].TVL
	})

	for i := range ranked {
		ranked[i].Rank = uint32(i)
	}

	return ranked
}

// RanksByOwner indexes a ranking by owner, ready to be persisted.
func RanksByOwner(ranked []RankedEntry) map[string]uint32 {
	ranks := make(map[string]uint32, len(ranked))
	for _, r := range ranked {
		ranks[r.Owner] = r.Rank
	}
	return ranks
}

// RanksInInputOrder returns the rank of each entry at its input position.
func RanksInInputOrder(entries []model.LeaderboardEntryDocument) []uint32 {
	ranked := Rank(entries)
	// owners are unique, one entry per owner
	byOwner := RanksByOwner(ranked)

	ranks := make([]uint32, len(entries))
	for i, e := range entries {
		ranks[i] = byOwner[e.Owner]
	}
	return ranks
}
