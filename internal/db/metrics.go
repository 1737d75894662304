package db

import (
	"context"
	"time"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"github.com/kiroween-labs/soul-harvest-vault/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

// WithTransaction is not timed itself, the calls made inside f are.
func (d *DbWithMetrics) WithTransaction(ctx context.Context, f func(ctx context.Context) error) error {
	return d.db.WithTransaction(ctx, f)
}

func (d *DbWithMetrics) SaveVaultConfig(ctx context.Context, cfg *model.VaultConfigDocument) error {
	return d.run("SaveVaultConfig", func() error {
		return d.db.SaveVaultConfig(ctx, cfg)
	})
}

func (d *DbWithMetrics) GetVaultConfig(ctx context.Context) (result *model.VaultConfigDocument, err error) {
	//nolint:errcheck
	d.run("GetVaultConfig", func() error {
		result, err = d.db.GetVaultConfig(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateVaultConfig(ctx context.Context, cfg *model.VaultConfigDocument) error {
	return d.run("UpdateVaultConfig", func() error {
		return d.db.UpdateVaultConfig(ctx, cfg)
	})
}

func (d *DbWithMetrics) SaveNewVault(ctx context.Context, vault *model.VaultDocument) error {
	return d.run("SaveNewVault", func() error {
		return d.db.SaveNewVault(ctx, vault)
	})
}

func (d *DbWithMetrics) GetVault(ctx context.Context, owner, assetID string) (result *model.VaultDocument, err error) {
	//nolint:errcheck
	d.run("GetVault", func() error {
		result, err = d.db.GetVault(ctx, owner, assetID)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateVault(ctx context.Context, vault *model.VaultDocument) error {
	return d.run("UpdateVault", func() error {
		return d.db.UpdateVault(ctx, vault)
	})
}

func (d *DbWithMetrics) DeleteVault(ctx context.Context, owner, assetID string) error {
	return d.run("DeleteVault", func() error {
		return d.db.DeleteVault(ctx, owner, assetID)
	})
}

func (d *DbWithMetrics) FindActiveVaults(ctx context.Context, afterID string, limit int64) (result []model.VaultDocument, err error) {
	//nolint:errcheck
	d.run("FindActiveVaults", func() error {
		result, err = d.db.FindActiveVaults(ctx, afterID, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveNewLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntryDocument) error {
	return d.run("SaveNewLeaderboardEntry", func() error {
		return d.db.SaveNewLeaderboardEntry(ctx, entry)
	})
}

func (d *DbWithMetrics) GetLeaderboardEntry(ctx context.Context, owner string) (result *model.LeaderboardEntryDocument, err error) {
	//nolint:errcheck
	d.run("GetLeaderboardEntry", func() error {
		result, err = d.db.GetLeaderboardEntry(ctx, owner)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateLeaderboardEntryTVL(ctx context.Context, owner string, tvl uint64) error {
	return d.run("UpdateLeaderboardEntryTVL", func() error {
		return d.db.UpdateLeaderboardEntryTVL(ctx, owner, tvl)
	})
}

func (d *DbWithMetrics) DeleteLeaderboardEntry(ctx context.Context, owner string) error {
	return d.run("DeleteLeaderboardEntry", func() error {
		return d.db.DeleteLeaderboardEntry(ctx, owner)
	})
}

func (d *DbWithMetrics) GetAllLeaderboardEntries(ctx context.Context) (result []model.LeaderboardEntryDocument, err error) {
	//nolint:errcheck
	d.run("GetAllLeaderboardEntries", func() error {
		result, err = d.db.GetAllLeaderboardEntries(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateLeaderboardRanks(ctx context.Context, ranks map[string]uint32) error {
	return d.run("UpdateLeaderboardRanks", func() error {
		return d.db.UpdateLeaderboardRanks(ctx, ranks)
	})
}

func (d *DbWithMetrics) SaveNewAchievements(ctx context.Context, doc *model.AchievementsDocument) error {
	return d.run("SaveNewAchievements", func() error {
		return d.db.SaveNewAchievements(ctx, doc)
	})
}

func (d *DbWithMetrics) GetAchievements(ctx context.Context, owner string) (result *model.AchievementsDocument, err error) {
	//nolint:errcheck
	d.run("GetAchievements", func() error {
		result, err = d.db.GetAchievements(ctx, owner)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateAchievements(ctx context.Context, doc *model.AchievementsDocument) error {
	return d.run("UpdateAchievements", func() error {
		return d.db.UpdateAchievements(ctx, doc)
	})
}

func (d *DbWithMetrics) GetBoostHolding(ctx context.Context, owner string) (result *model.BoostHoldingDocument, err error) {
	//nolint:errcheck
	d.run("GetBoostHolding", func() error {
		result, err = d.db.GetBoostHolding(ctx, owner)
		return err
	})
	return
}

func (d *DbWithMetrics) IncrementBoostHolding(ctx context.Context, owner, credentialID string, reservedAt int64) error {
	return d.run("IncrementBoostHolding", func() error {
		return d.db.IncrementBoostHolding(ctx, owner, credentialID, reservedAt)
	})
}

func (d *DbWithMetrics) SaveTransfer(ctx context.Context, transfer *model.TransferDocument) error {
	return d.run("SaveTransfer", func() error {
		return d.db.SaveTransfer(ctx, transfer)
	})
}

func (d *DbWithMetrics) FindTransfersFrom(ctx context.Context, owner string, limit int64) (result []model.TransferDocument, err error) {
	//nolint:errcheck
	d.run("FindTransfersFrom", func() error {
		result, err = d.db.FindTransfersFrom(ctx, owner, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) CalculateTotalValueLocked(ctx context.Context) (totalValueLocked uint64, activeVaults uint64, err error) {
	//nolint:errcheck
	d.run("CalculateTotalValueLocked", func() error {
		totalValueLocked, activeVaults, err = d.db.CalculateTotalValueLocked(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertOverallStats(ctx context.Context, totalValueLocked, activeVaults, configTVL uint64) error {
	return d.run("UpsertOverallStats", func() error {
		return d.db.UpsertOverallStats(ctx, totalValueLocked, activeVaults, configTVL)
	})
}

func (d *DbWithMetrics) GetOverallStats(ctx context.Context) (result *model.OverallStatsDocument, err error) {
	//nolint:errcheck
	d.run("GetOverallStats", func() error {
		result, err = d.db.GetOverallStats(ctx)
		return err
	})
	return
}

// run is private method to keep all metrics related logic in one place
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
