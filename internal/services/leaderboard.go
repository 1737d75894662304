package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kiroween-labs/soul-harvest-vault/internal/leaderboard"
)

// RankLeaderboard ranks every leaderboard entry by tvl and persists the
// resulting positions. Entries are loaded sorted by owner, so equal tvl
// ranks by ascending owner.
func (s *Service) RankLeaderboard(ctx context.Context) ([]leaderboard.RankedEntry, error) {
	entries, err := s.db.GetAllLeaderboardEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard entries: %w", err)
	}
	if len(entries) == 0 {
		return []leaderboard.RankedEntry{}, nil
	}

	ranked := leaderboard.Rank(entries)
	if err := s.db.UpdateLeaderboardRanks(ctx, leaderboard.RanksByOwner(ranked)); err != nil {
		return nil, fmt.Errorf("failed to update leaderboard ranks: %w", err)
	}

	log.Ctx(ctx).Debug().Int("entries", len(ranked)).Msg("leaderboard ranked")
	return ranked, nil
}
