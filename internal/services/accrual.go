package services

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/rs/zerolog/log"

	"github.com/kiroween-labs/soul-harvest-vault/internal/achievements"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"github.com/kiroween-labs/soul-harvest-vault/internal/ledger"
	"github.com/kiroween-labs/soul-harvest-vault/internal/observability/metrics"
	"github.com/kiroween-labs/soul-harvest-vault/internal/observability/tracing"
	"github.com/kiroween-labs/soul-harvest-vault/internal/queue"
	"github.com/kiroween-labs/soul-harvest-vault/internal/rewards"
	"github.com/kiroween-labs/soul-harvest-vault/internal/types"
)

type AccrueResult struct {
	Reward       uint64
	SoulsEarned  uint64
	RateBps      uint16
	BoostApplied bool
}

type HarvestResult struct {
	Rewards       uint64
	SoulTax       uint64
	CharityAmount uint64
	NetReward     uint64
	SoulsEarned   uint64
}

// CharityTransfer moves the charity portion of a harvest out of a vault.
type CharityTransfer struct {
	From      string
	To        string
	Amount    uint64
	Timestamp int64
}

// CharityTransferFunc performs a charity transfer. It runs inside the
// harvest transaction, so an error aborts the whole harvest.
type CharityTransferFunc func(ctx context.Context, transfer CharityTransfer) error

// RecordCharityTransfer is the default CharityTransferFunc: it appends the
// transfer to the transfer ledger.
func (s *Service) RecordCharityTransfer(ctx context.Context, transfer CharityTransfer) error {
	err := s.db.SaveTransfer(ctx, &model.TransferDocument{
		From:      transfer.From,
		To:        transfer.To,
		Amount:    transfer.Amount,
		Kind:      model.TransferKindCharity,
		CreatedAt: transfer.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to save charity transfer: %w", err)
	}
	return nil
}

// computeAccrual runs the reward pipeline for an active vault at time now.
// It does not mutate st.
func (s *Service) computeAccrual(ctx context.Context, st *vaultState, now int64) (rewards.Accrual, uint16, error) {
	witness, err := s.boostWitness(ctx, st.vault.Owner)
	if err != nil {
		return rewards.Accrual{}, 0, err
	}
	hasBoost, err := rewards.VerifyBoostWitness(witness, st.cfg.BoostCredentialID)
	if err != nil {
		return rewards.Accrual{}, 0, err
	}

	rate := rewards.ResolveAPYForTVL(st.cfg.TotalValueLocked, st.cfg.AssetScale)
	accrual, err := rewards.Accrue(rewards.AccrualInput{
		Balance:       st.vault.Balance,
		RateBps:       rate,
		Elapsed:       now - st.vault.LastAccrualTime,
		HasBoost:      hasBoost,
		BoostBps:      st.cfg.BoostMultiplierBps,
		SoulsPerToken: st.cfg.SoulsPerToken,
	})
	if err != nil {
		return rewards.Accrual{}, 0, err
	}

	log.Ctx(ctx).Debug().
		Uint16("rate_bps", rate).
		Bool("boost", hasBoost).
		Int64("elapsed", now-st.vault.LastAccrualTime).
		Uint64("reward", accrual.Reward).
		Msg("accrual computed")
	return accrual, rate, nil
}

// Accrue compounds the reward earned since the last accrual into the vault.
// Calling it again at the same timestamp changes nothing.
func (s *Service) Accrue(ctx context.Context, owner, assetID string, now int64) (*AccrueResult, error) {
	ctx = tracing.WithOwner(ctx, owner)

	result := &AccrueResult{}
	var balance uint64
	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		*result = AccrueResult{}

		st, err := s.loadVaultState(ctx, owner, assetID)
		if err != nil {
			return err
		}
		if !st.vault.IsActive {
			return errorsmod.Wrapf(types.ErrVaultInactive, "accrual on vault %s", st.vault.ID)
		}
		if now <= st.vault.LastAccrualTime {
			balance = st.vault.Balance
			return nil
		}

		accrual, rate, err := s.computeAccrual(ctx, st, now)
		if err != nil {
			return err
		}
		souls, err := ledger.AddUint64(st.vault.TotalSoulsHarvested, accrual.SoulsEarned)
		if err != nil {
			return errorsmod.Wrap(err, "total souls harvested")
		}
		if err := ledger.Apply(st.vault, st.entry, st.cfg, ledger.Delta{Kind: ledger.KindAccrual, Amount: accrual.Reward}); err != nil {
			return err
		}
		st.vault.TotalSoulsHarvested = souls
		st.vault.LastAccrualTime = now

		if err := s.persistVaultState(ctx, st); err != nil {
			return err
		}
		if accrual.Reward > 0 {
			if err := s.recordCompound(ctx, owner, func(rec *model.AchievementsDocument) {
				achievements.RecordCompound(rec, accrual.Reward, now)
			}); err != nil {
				return err
			}
		}

		*result = AccrueResult{
			Reward:       accrual.Reward,
			SoulsEarned:  accrual.SoulsEarned,
			RateBps:      rate,
			BoostApplied: accrual.BoostApplied,
		}
		balance = st.vault.Balance
		return nil
	})
	metrics.RecordVaultOperation("accrue", err != nil)
	if err != nil {
		return nil, err
	}

	if result.Reward > 0 {
		log.Ctx(ctx).Info().
			Uint64("reward", result.Reward).
			Uint64("souls_earned", result.SoulsEarned).
			Uint64("balance", balance).
			Msg("rewards accrued")
		s.publish(ctx, &queue.VaultEvent{
			Owner:     owner,
			AssetID:   assetID,
			Action:    queue.VaultActionAccrue,
			Amount:    result.Reward,
			Balance:   balance,
			Timestamp: now,
		})
	}
	return result, nil
}

// HarvestWithTax is the scheduled midnight harvest. The gross reward is
// split into soul tax, charity and net; only the net is compounded into the
// vault and souls are earned on the gross. A nil transfer records the
// charity portion in the transfer ledger.
func (s *Service) HarvestWithTax(
	ctx context.Context, owner, assetID string, now int64, transfer CharityTransferFunc,
) (*HarvestResult, error) {
	ctx = tracing.WithOwner(ctx, owner)
	if transfer == nil {
		transfer = s.RecordCharityTransfer
	}

	result := &HarvestResult{}
	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		*result = HarvestResult{}

		st, err := s.loadVaultState(ctx, owner, assetID)
		if err != nil {
			return err
		}
		if !st.vault.IsActive {
			return errorsmod.Wrapf(types.ErrVaultInactive, "harvest on vault %s", st.vault.ID)
		}
		if now <= st.vault.LastAccrualTime {
			return nil
		}

		accrual, _, err := s.computeAccrual(ctx, st, now)
		if err != nil {
			return err
		}
		split, err := rewards.SplitHarvest(accrual.Reward)
		if err != nil {
			return err
		}

		souls, err := ledger.AddUint64(st.vault.TotalSoulsHarvested, accrual.SoulsEarned)
		if err != nil {
			return errorsmod.Wrap(err, "total souls harvested")
		}
		totalTax, err := ledger.AddUint64(st.cfg.TotalSoulTax, split.Tax)
		if err != nil {
			return errorsmod.Wrap(err, "total soul tax")
		}
		totalCharity, err := ledger.AddUint64(st.cfg.TotalCharity, split.Charity)
		if err != nil {
			return errorsmod.Wrap(err, "total charity")
		}
		if err := ledger.Apply(st.vault, st.entry, st.cfg, ledger.Delta{Kind: ledger.KindAccrual, Amount: split.Net}); err != nil {
			return err
		}
		st.vault.TotalSoulsHarvested = souls
		st.vault.LastAccrualTime = now
		st.cfg.TotalSoulTax = totalTax
		st.cfg.TotalCharity = totalCharity

		if split.Charity > 0 {
			err := transfer(ctx, CharityTransfer{
				From:      st.vault.ID,
				To:        s.cfg.Vault.CharityWallet,
				Amount:    split.Charity,
				Timestamp: now,
			})
			if err != nil {
				return fmt.Errorf("charity transfer failed: %w", err)
			}
		}

		if err := s.persistVaultState(ctx, st); err != nil {
			return err
		}
		if split.Gross > 0 {
			if err := s.recordCompound(ctx, owner, func(rec *model.AchievementsDocument) {
				achievements.RecordMidnightHarvest(rec, split.Gross, split.Charity, now)
			}); err != nil {
				return err
			}
		}

		*result = HarvestResult{
			Rewards:       split.Gross,
			SoulTax:       split.Tax,
			CharityAmount: split.Charity,
			NetReward:     split.Net,
			SoulsEarned:   accrual.SoulsEarned,
		}
		return nil
	})
	metrics.RecordVaultOperation("harvest", err != nil)
	if err != nil {
		return nil, err
	}

	if result.Rewards > 0 {
		metrics.RecordHarvest(result.Rewards, result.SoulTax, result.CharityAmount, result.NetReward)
		log.Ctx(ctx).Info().
			Uint64("rewards", result.Rewards).
			Uint64("soul_tax", result.SoulTax).
			Uint64("charity", result.CharityAmount).
			Uint64("net_reward", result.NetReward).
			Msg("midnight harvest complete")
		s.publish(ctx, &queue.HarvestEvent{
			Owner:         owner,
			AssetID:       assetID,
			Rewards:       result.Rewards,
			SoulTax:       result.SoulTax,
			CharityAmount: result.CharityAmount,
			NetReward:     result.NetReward,
			SoulsEarned:   result.SoulsEarned,
			Timestamp:     now,
		})
	}
	return result, nil
}

// recordCompound applies update to the owner's achievement record if one
// exists.
func (s *Service) recordCompound(ctx context.Context, owner string, update func(rec *model.AchievementsDocument)) error {
	rec, err := s.achievementsOf(ctx, owner)
	if err != nil || rec == nil {
		return err
	}
	update(rec)
	if err := s.db.UpdateAchievements(ctx, rec); err != nil {
		return fmt.Errorf("failed to update achievements: %w", err)
	}
	return nil
}
