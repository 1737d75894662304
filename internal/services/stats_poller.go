package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kiroween-labs/soul-harvest-vault/internal/observability/metrics"
	"github.com/kiroween-labs/soul-harvest-vault/internal/rewards"
	"github.com/kiroween-labs/soul-harvest-vault/internal/utils/poller"
)

// StartStatsPoller starts the total value locked reconciliation poller
func (s *Service) StartStatsPoller(ctx context.Context) {
	statsPoller := poller.NewPoller(
		"stats",
		s.cfg.Poller.StatsPollingInterval,
		metrics.RecordPollerDuration("stats", s.reconcileTotalValueLocked),
	)
	go statsPoller.Start(ctx)
}

// reconcileTotalValueLocked recomputes the total value locked from the
// vault balances and compares it with the global counter kept by the ledger.
// A mismatch is reported, never corrected.
func (s *Service) reconcileTotalValueLocked(ctx context.Context) error {
	log := log.Ctx(ctx)

	startTime := time.Now()
	aggregatedTVL, activeVaults, err := s.db.CalculateTotalValueLocked(ctx)
	log.Debug().
		Dur("aggregation_duration_ms", time.Since(startTime)).
		Msg("TVL aggregation completed")
	if err != nil {
		return fmt.Errorf("failed to calculate total value locked: %w", err)
	}

	cfg, err := s.db.GetVaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to get vault config: %w", err)
	}

	metrics.RecordTotalValueLocked(cfg.TotalValueLocked)
	metrics.RecordTVLDrift(cfg.TotalValueLocked, aggregatedTVL)
	metrics.RecordCurrentAPY(rewards.ResolveAPYForTVL(cfg.TotalValueLocked, cfg.AssetScale))

	if aggregatedTVL != cfg.TotalValueLocked {
		log.Error().
			Uint64("config_tvl", cfg.TotalValueLocked).
			Uint64("aggregated_tvl", aggregatedTVL).
			Msg("Total value locked drift detected")
	}

	if err := s.db.UpsertOverallStats(ctx, aggregatedTVL, activeVaults, cfg.TotalValueLocked); err != nil {
		return fmt.Errorf("failed to upsert overall stats: %w", err)
	}

	log.Info().
		Uint64("total_value_locked", aggregatedTVL).
		Uint64("active_vaults", activeVaults).
		Msg("Updated overall stats")
	return nil
}
