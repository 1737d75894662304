package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"github.com/kiroween-labs/soul-harvest-vault/internal/observability/metrics"
	"github.com/kiroween-labs/soul-harvest-vault/internal/observability/tracing"
	"github.com/kiroween-labs/soul-harvest-vault/internal/utils/poller"
)

// StartHarvestPoller starts the scheduled midnight harvest over every
// active vault.
func (s *Service) StartHarvestPoller(ctx context.Context) {
	harvestPoller := poller.NewPoller(
		"harvest",
		s.cfg.Poller.HarvestPollingInterval,
		metrics.RecordPollerDuration("harvest", s.HarvestActiveVaults),
	)
	go harvestPoller.Start(ctx)
}

// HarvestActiveVaults harvests all active vaults one by one, since every
// harvest updates the global config, then sweeps achievements of the
// harvested owners in parallel.
func (s *Service) HarvestActiveVaults(ctx context.Context) error {
	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)
	now := s.now().Unix()
	batchSize := s.cfg.Poller.HarvestBatchSize

	var (
		harvested []model.VaultDocument
		failed    int
		afterID   string
	)
	for {
		vaults, err := callWithRetry(ctx, func() ([]model.VaultDocument, error) {
			return s.db.FindActiveVaults(ctx, afterID, batchSize)
		}, &s.cfg.Poller)
		if err != nil {
			return fmt.Errorf("failed to find active vaults: %w", err)
		}

		for _, vault := range vaults {
			_, err := callWithRetry(ctx, func() (*HarvestResult, error) {
				return s.HarvestWithTax(ctx, vault.Owner, vault.AssetID, now, nil)
			}, &s.cfg.Poller)
			if err != nil {
				failed++
				log.Error().
					Err(err).
					Str("vault_id", vault.ID).
					Msg("Failed to harvest vault")
				continue
			}
			harvested = append(harvested, vault)
		}

		if int64(len(vaults)) < batchSize {
			break
		}
		afterID = vaults[len(vaults)-1].ID
	}

	log.Info().
		Int("harvested", len(harvested)).
		Int("failed", failed).
		Msg("Midnight harvest finished")

	return s.sweepAchievements(ctx, harvested, now)
}

// sweepAchievements evaluates the achievements of each vault owner. Owners
// are independent, so they are checked concurrently.
func (s *Service) sweepAchievements(ctx context.Context, vaults []model.VaultDocument, now int64) error {
	if len(vaults) == 0 {
		return nil
	}

	p := pool.New().
		WithErrors().
		WithContext(ctx).
		WithMaxGoroutines(s.cfg.Poller.AchievementWorkers)

	for _, vault := range vaults {
		p.Go(func(ctx context.Context) error {
			_, err := callWithRetry(ctx, func() (struct{}, error) {
				_, err := s.CheckAchievements(ctx, vault.Owner, vault.AssetID, now)
				return struct{}{}, err
			}, &s.cfg.Poller)
			if db.IsNotFoundError(err) {
				// owner never initialized achievements
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to check achievements of %s: %w", vault.Owner, err)
			}
			return nil
		})
	}

	return p.Wait()
}

// StartLeaderboardPoller periodically ranks and persists the leaderboard.
func (s *Service) StartLeaderboardPoller(ctx context.Context) {
	leaderboardPoller := poller.NewPoller(
		"leaderboard",
		s.cfg.Poller.LeaderboardPollingInterval,
		metrics.RecordPollerDuration("leaderboard", func(ctx context.Context) error {
			_, err := s.RankLeaderboard(ctx)
			return err
		}),
	)
	go leaderboardPoller.Start(ctx)
}
