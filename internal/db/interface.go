package db

import (
	"context"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../testutil/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error
	// WithTransaction runs f so that all writes made through its ctx are
	// applied together or not at all.
	WithTransaction(ctx context.Context, f func(ctx context.Context) error) error

	SaveVaultConfig(ctx context.Context, cfg *model.VaultConfigDocument) error
	GetVaultConfig(ctx context.Context) (*model.VaultConfigDocument, error)
	UpdateVaultConfig(ctx context.Context, cfg *model.VaultConfigDocument) error

	SaveNewVault(ctx context.Context, vault *model.VaultDocument) error
	GetVault(ctx context.Context, owner, assetID string) (*model.VaultDocument, error)
	UpdateVault(ctx context.Context, vault *model.VaultDocument) error
	DeleteVault(ctx context.Context, owner, assetID string) error
	FindActiveVaults(ctx context.Context, afterID string, limit int64) ([]model.VaultDocument, error)

	SaveNewLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntryDocument) error
	GetLeaderboardEntry(ctx context.Context, owner string) (*model.LeaderboardEntryDocument, error)
	UpdateLeaderboardEntryTVL(ctx context.Context, owner string, tvl uint64) error
	DeleteLeaderboardEntry(ctx context.Context, owner string) error
	GetAllLeaderboardEntries(ctx context.Context) ([]model.LeaderboardEntryDocument, error)
	UpdateLeaderboardRanks(ctx context.Context, ranks map[string]uint32) error

	SaveNewAchievements(ctx context.Context, doc *model.AchievementsDocument) error
	GetAchievements(ctx context.Context, owner string) (*model.AchievementsDocument, error)
	UpdateAchievements(ctx context.Context, doc *model.AchievementsDocument) error

	GetBoostHolding(ctx context.Context, owner string) (*model.BoostHoldingDocument, error)
	IncrementBoostHolding(ctx context.Context, owner, credentialID string, reservedAt int64) error

	SaveTransfer(ctx context.Context, transfer *model.TransferDocument) error
	FindTransfersFrom(ctx context.Context, owner string, limit int64) ([]model.TransferDocument, error)

	CalculateTotalValueLocked(ctx context.Context) (totalValueLocked uint64, activeVaults uint64, err error)
	UpsertOverallStats(ctx context.Context, totalValueLocked, activeVaults, configTVL uint64) error
	GetOverallStats(ctx context.Context) (*model.OverallStatsDocument, error)
}
