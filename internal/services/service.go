package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kiroween-labs/soul-harvest-vault/internal/config"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"github.com/kiroween-labs/soul-harvest-vault/internal/queue"
	"github.com/kiroween-labs/soul-harvest-vault/internal/rewards"
	"github.com/rs/zerolog/log"
)

type Service struct {
	cfg       *config.Config
	db        db.DbInterface
	publisher queue.Publisher
	// now is the clock used by pollers. Entry points take the time explicitly.
	now func() time.Time
}

func NewService(cfg *config.Config, db db.DbInterface, publisher queue.Publisher) *Service {
	if publisher == nil {
		publisher = queue.NoopPublisher{}
	}
	return &Service{
		cfg:       cfg,
		db:        db,
		publisher: publisher,
		now:       time.Now,
	}
}

// StartPollers launches the scheduled harvest, leaderboard and stats pollers.
// They stop when ctx is cancelled.
func (s *Service) StartPollers(ctx context.Context) {
	s.StartHarvestPoller(ctx)
	s.StartLeaderboardPoller(ctx)
	s.StartStatsPoller(ctx)
}

// vaultState is everything a balance changing operation reads and writes.
type vaultState struct {
	vault *model.VaultDocument
	entry *model.LeaderboardEntryDocument
	cfg   *model.VaultConfigDocument
}

func (s *Service) loadVaultState(ctx context.Context, owner, assetID string) (*vaultState, error) {
	vault, err := s.db.GetVault(ctx, owner, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vault: %w", err)
	}

	entry, err := s.db.GetLeaderboardEntry(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard entry: %w", err)
	}

	cfg, err := s.db.GetVaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get vault config: %w", err)
	}

	return &vaultState{vault: vault, entry: entry, cfg: cfg}, nil
}

// persistVaultState writes the three balances back. It must run inside
// WithTransaction to be atomic.
func (s *Service) persistVaultState(ctx context.Context, st *vaultState) error {
	if err := s.db.UpdateVault(ctx, st.vault); err != nil {
		return fmt.Errorf("failed to update vault: %w", err)
	}

	if err := s.db.UpdateLeaderboardEntryTVL(ctx, st.entry.Owner, st.entry.TVL); err != nil {
		return fmt.Errorf("failed to update leaderboard entry: %w", err)
	}

	if err := s.db.UpdateVaultConfig(ctx, st.cfg); err != nil {
		return fmt.Errorf("failed to update vault config: %w", err)
	}

	return nil
}

// boostWitness reads the owner's boost holding. A missing holding is not an
// error, it yields no witness.
func (s *Service) boostWitness(ctx context.Context, owner string) (*rewards.BoostWitness, error) {
	holding, err := s.db.GetBoostHolding(ctx, owner)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get boost holding: %w", err)
	}

	return &rewards.BoostWitness{
		CredentialID: holding.CredentialID,
		Amount:       holding.Amount,
	}, nil
}

// achievementsOf returns the owner's achievement record or nil when the
// owner never initialized one.
func (s *Service) achievementsOf(ctx context.Context, owner string) (*model.AchievementsDocument, error) {
	rec, err := s.db.GetAchievements(ctx, owner)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}
	return rec, nil
}

// publish sends an event after its mutation committed. Failures are logged
// only, the committed state is authoritative.
func (s *Service) publish(ctx context.Context, event queue.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("event_type", string(event.Type())).
			Msg("failed to publish event")
	}
}

var errNotInitialized = errors.New("vault config is not initialized")
