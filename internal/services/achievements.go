package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kiroween-labs/soul-harvest-vault/internal/achievements"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"github.com/kiroween-labs/soul-harvest-vault/internal/observability/metrics"
	"github.com/kiroween-labs/soul-harvest-vault/internal/observability/tracing"
	"github.com/kiroween-labs/soul-harvest-vault/internal/queue"
	"github.com/kiroween-labs/soul-harvest-vault/internal/rewards"
	"github.com/kiroween-labs/soul-harvest-vault/pkg"
)

// InitAchievements creates the owner's achievement record. It does not need
// a vault. An existing record is returned unchanged.
func (s *Service) InitAchievements(ctx context.Context, owner string, now int64) (*model.AchievementsDocument, error) {
	ctx = tracing.WithOwner(ctx, owner)
	if err := pkg.ValidateAddress(owner); err != nil {
		return nil, fmt.Errorf("invalid owner: %w", err)
	}

	rec := model.NewAchievementsDocument(owner, now)
	if err := s.db.SaveNewAchievements(ctx, rec); err != nil {
		if !db.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("failed to save achievements: %w", err)
		}
		log.Ctx(ctx).Debug().Msg("achievements already initialized")
		return s.db.GetAchievements(ctx, owner)
	}

	log.Ctx(ctx).Info().Msg("achievements initialized")
	return rec, nil
}

// CheckAchievements re-evaluates every milestone against the current vault
// and unlocks the ones newly satisfied. Repeating the call with unchanged
// state unlocks nothing.
func (s *Service) CheckAchievements(ctx context.Context, owner, assetID string, now int64) (*achievements.Result, error) {
	ctx = tracing.WithOwner(ctx, owner)

	var result achievements.Result
	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		vault, err := s.db.GetVault(ctx, owner, assetID)
		if err != nil {
			return fmt.Errorf("failed to get vault: %w", err)
		}
		cfg, err := s.db.GetVaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("failed to get vault config: %w", err)
		}
		rec, err := s.db.GetAchievements(ctx, owner)
		if err != nil {
			return fmt.Errorf("failed to get achievements: %w", err)
		}

		witness, err := s.boostWitness(ctx, owner)
		if err != nil {
			return err
		}
		hasBoost, err := rewards.VerifyBoostWitness(witness, cfg.BoostCredentialID)
		if err != nil {
			return err
		}

		result = achievements.Evaluate(rec, achievements.Snapshot{
			Balance:             vault.Balance,
			TotalSoulsHarvested: vault.TotalSoulsHarvested,
			HasBoost:            hasBoost,
		}, now)
		if len(result.NewlyUnlocked) == 0 {
			return nil
		}

		if err := s.db.UpdateAchievements(ctx, rec); err != nil {
			return fmt.Errorf("failed to update achievements: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result.NewlyUnlocked) > 0 {
		for _, name := range result.NewlyUnlocked {
			metrics.RecordAchievementUnlocked(name)
		}
		log.Ctx(ctx).Info().
			Strs("unlocked", result.NewlyUnlocked).
			Uint32("points_earned", result.PointsEarned).
			Str("rank", result.RankName).
			Msg("achievements unlocked")
		s.publish(ctx, &queue.AchievementEvent{
			Owner:         owner,
			NewlyUnlocked: result.NewlyUnlocked,
			PointsEarned:  result.PointsEarned,
			TotalPoints:   result.TotalPoints,
			RankName:      result.RankName,
			Timestamp:     now,
		})
	}
	return &result, nil
}
