package services

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/rs/zerolog/log"

	"github.com/kiroween-labs/soul-harvest-vault/internal/achievements"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"github.com/kiroween-labs/soul-harvest-vault/internal/ledger"
	"github.com/kiroween-labs/soul-harvest-vault/internal/observability/metrics"
	"github.com/kiroween-labs/soul-harvest-vault/internal/observability/tracing"
	"github.com/kiroween-labs/soul-harvest-vault/internal/queue"
	"github.com/kiroween-labs/soul-harvest-vault/internal/types"
	"github.com/kiroween-labs/soul-harvest-vault/pkg"
)

// CreateVault opens a vault for owner with an initial deposit. The vault,
// its leaderboard entry and the global counters are written together.
func (s *Service) CreateVault(ctx context.Context, owner, assetID string, initialDeposit uint64, now int64) (*model.VaultDocument, error) {
	ctx = tracing.WithOwner(ctx, owner)
	if err := pkg.ValidateAddress(owner); err != nil {
		return nil, fmt.Errorf("invalid owner: %w", err)
	}
	if initialDeposit == 0 {
		return nil, errorsmod.Wrap(types.ErrInvalidDepositAmount, "initial deposit must be positive")
	}

	var vault *model.VaultDocument
	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		cfg, err := s.db.GetVaultConfig(ctx)
		if err != nil {
			if db.IsNotFoundError(err) {
				return errNotInitialized
			}
			return fmt.Errorf("failed to get vault config: %w", err)
		}

		vault = model.NewVaultDocument(owner, assetID, now)
		entry := model.NewLeaderboardEntryDocument(owner)
		if err := ledger.Apply(vault, entry, cfg, ledger.Delta{Kind: ledger.KindDeposit, Amount: initialDeposit}); err != nil {
			return err
		}
		cfg.TotalDepositors, err = ledger.AddUint64(cfg.TotalDepositors, 1)
		if err != nil {
			return errorsmod.Wrap(err, "total depositors")
		}

		// one vault per owner: the leaderboard entry is keyed by owner alone
		if err := s.db.SaveNewLeaderboardEntry(ctx, entry); err != nil {
			return fmt.Errorf("failed to save leaderboard entry: %w", err)
		}
		if err := s.db.SaveNewVault(ctx, vault); err != nil {
			return fmt.Errorf("failed to save vault: %w", err)
		}
		if err := s.db.UpdateVaultConfig(ctx, cfg); err != nil {
			return fmt.Errorf("failed to update vault config: %w", err)
		}

		return s.assignDepositorOrdinal(ctx, owner, cfg.TotalDepositors, now)
	})
	metrics.RecordVaultOperation("create", err != nil)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Str("asset_id", assetID).
		Uint64("initial_deposit", initialDeposit).
		Msg("vault created")
	s.publish(ctx, &queue.VaultEvent{
		Owner:     owner,
		AssetID:   assetID,
		Action:    queue.VaultActionCreated,
		Amount:    initialDeposit,
		Balance:   vault.Balance,
		Timestamp: now,
	})
	return vault, nil
}

// assignDepositorOrdinal stamps the owner's achievement record with its
// position among all depositors, creating the record when needed.
func (s *Service) assignDepositorOrdinal(ctx context.Context, owner string, ordinal uint64, now int64) error {
	rec, err := s.achievementsOf(ctx, owner)
	if err != nil {
		return err
	}

	if rec == nil {
		rec = model.NewAchievementsDocument(owner, now)
		rec.DepositorOrdinal = ordinal
		if err := s.db.SaveNewAchievements(ctx, rec); err != nil {
			return fmt.Errorf("failed to save achievements: %w", err)
		}
		return nil
	}

	if rec.DepositorOrdinal != 0 {
		return nil
	}
	rec.DepositorOrdinal = ordinal
	if err := s.db.UpdateAchievements(ctx, rec); err != nil {
		return fmt.Errorf("failed to update achievements: %w", err)
	}
	return nil
}

// Deposit adds amount to the vault principal.
func (s *Service) Deposit(ctx context.Context, owner, assetID string, amount uint64, now int64) error {
	ctx = tracing.WithOwner(ctx, owner)
	if amount == 0 {
		return errorsmod.Wrap(types.ErrInvalidDepositAmount, "deposit must be positive")
	}

	var balance uint64
	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		st, err := s.loadVaultState(ctx, owner, assetID)
		if err != nil {
			return err
		}
		if err := ledger.Apply(st.vault, st.entry, st.cfg, ledger.Delta{Kind: ledger.KindDeposit, Amount: amount}); err != nil {
			return err
		}
		balance = st.vault.Balance
		return s.persistVaultState(ctx, st)
	})
	metrics.RecordVaultOperation("deposit", err != nil)
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().Uint64("amount", amount).Uint64("balance", balance).Msg("deposit applied")
	s.publish(ctx, &queue.VaultEvent{
		Owner:     owner,
		AssetID:   assetID,
		Action:    queue.VaultActionDeposit,
		Amount:    amount,
		Balance:   balance,
		Timestamp: now,
	})
	return nil
}

// Withdraw removes amount from the vault principal. It is allowed on
// inactive vaults.
func (s *Service) Withdraw(ctx context.Context, owner, assetID string, amount uint64, now int64) error {
	ctx = tracing.WithOwner(ctx, owner)

	var balance uint64
	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		st, err := s.loadVaultState(ctx, owner, assetID)
		if err != nil {
			return err
		}
		if err := ledger.Apply(st.vault, st.entry, st.cfg, ledger.Delta{Kind: ledger.KindWithdrawal, Amount: amount}); err != nil {
			return err
		}
		balance = st.vault.Balance
		if err := s.persistVaultState(ctx, st); err != nil {
			return err
		}

		rec, err := s.achievementsOf(ctx, owner)
		if err != nil || rec == nil {
			return err
		}
		achievements.RecordWithdrawal(rec, now)
		if err := s.db.UpdateAchievements(ctx, rec); err != nil {
			return fmt.Errorf("failed to update achievements: %w", err)
		}
		return nil
	})
	metrics.RecordVaultOperation("withdraw", err != nil)
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().Uint64("amount", amount).Uint64("balance", balance).Msg("withdrawal applied")
	s.publish(ctx, &queue.VaultEvent{
		Owner:     owner,
		AssetID:   assetID,
		Action:    queue.VaultActionWithdraw,
		Amount:    amount,
		Balance:   balance,
		Timestamp: now,
	})
	return nil
}

// Close destroys an empty vault together with its leaderboard entry. The
// achievement record is kept.
func (s *Service) Close(ctx context.Context, owner, assetID string, now int64) error {
	ctx = tracing.WithOwner(ctx, owner)

	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		vault, err := s.db.GetVault(ctx, owner, assetID)
		if err != nil {
			return fmt.Errorf("failed to get vault: %w", err)
		}
		if vault.Balance != 0 {
			return errorsmod.Wrapf(types.ErrNonZeroBalance, "vault %s holds %d", vault.ID, vault.Balance)
		}

		if err := s.db.DeleteVault(ctx, owner, assetID); err != nil {
			return fmt.Errorf("failed to delete vault: %w", err)
		}
		if err := s.db.DeleteLeaderboardEntry(ctx, owner); err != nil {
			return fmt.Errorf("failed to delete leaderboard entry: %w", err)
		}
		return nil
	})
	metrics.RecordVaultOperation("close", err != nil)
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().Str("asset_id", assetID).Msg("vault closed")
	s.publish(ctx, &queue.VaultEvent{
		Owner:     owner,
		AssetID:   assetID,
		Action:    queue.VaultActionClosed,
		Timestamp: now,
	})
	return nil
}
