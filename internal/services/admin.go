package services

import (
	"context"
	"errors"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/rs/zerolog/log"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"github.com/kiroween-labs/soul-harvest-vault/internal/ledger"
	"github.com/kiroween-labs/soul-harvest-vault/internal/types"
	"github.com/kiroween-labs/soul-harvest-vault/pkg"
)

// Initialize creates the global vault configuration. It fails with a
// db.DuplicateKeyError when the configuration already exists.
func (s *Service) Initialize(
	ctx context.Context, authority, boostCredentialID string, baseAPYBps uint16, soulsPerToken uint64,
) (*model.VaultConfigDocument, error) {
	if err := pkg.ValidateAddress(authority); err != nil {
		return nil, fmt.Errorf("invalid authority: %w", err)
	}
	if boostCredentialID == "" {
		return nil, errors.New("boost credential id is required")
	}

	cfg := model.NewVaultConfigDocument(authority, boostCredentialID, baseAPYBps, soulsPerToken, s.cfg.Vault.AssetScale)
	if err := s.db.SaveVaultConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save vault config: %w", err)
	}

	log.Ctx(ctx).Info().
		Str("authority", authority).
		Uint16("base_apy_bps", cfg.BaseAPYBps).
		Uint64("souls_per_token", cfg.SoulsPerToken).
		Msg("vault config initialized")
	return cfg, nil
}

// EnsureInitialized initializes the global configuration from the service
// config unless it already exists.
func (s *Service) EnsureInitialized(ctx context.Context) error {
	_, err := s.Initialize(ctx,
		s.cfg.Vault.Authority,
		s.cfg.Vault.BoostCredentialID,
		s.cfg.Vault.BaseAPYBps,
		s.cfg.Vault.SoulsPerToken,
	)
	if err != nil && !db.IsDuplicateKeyError(err) {
		return err
	}
	return nil
}

// UpdateRates changes the boost multiplier and souls conversion rate.
// Only the authority may call it.
func (s *Service) UpdateRates(ctx context.Context, caller string, boostMultiplierBps uint16, soulsPerToken uint64) error {
	return s.db.WithTransaction(ctx, func(ctx context.Context) error {
		cfg, err := s.authorize(ctx, caller)
		if err != nil {
			return err
		}

		cfg.BoostMultiplierBps = boostMultiplierBps
		cfg.SoulsPerToken = soulsPerToken
		if err := s.db.UpdateVaultConfig(ctx, cfg); err != nil {
			return fmt.Errorf("failed to update vault config: %w", err)
		}

		log.Ctx(ctx).Info().
			Uint16("boost_multiplier_bps", boostMultiplierBps).
			Uint64("souls_per_token", soulsPerToken).
			Msg("rates updated")
		return nil
	})
}

// ReserveBoostCredential hands one boost credential to recipient, up to the
// fixed supply cap. It returns the supply after the reservation.
func (s *Service) ReserveBoostCredential(ctx context.Context, caller, recipient string, now int64) (uint64, error) {
	if err := pkg.ValidateAddress(recipient); err != nil {
		return 0, fmt.Errorf("invalid recipient: %w", err)
	}

	var supply uint64
	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		cfg, err := s.authorize(ctx, caller)
		if err != nil {
			return err
		}
		if cfg.ReaperSupply >= cfg.MaxSupply {
			return errorsmod.Wrapf(types.ErrSupplyExhausted, "%d of %d reserved", cfg.ReaperSupply, cfg.MaxSupply)
		}

		cfg.ReaperSupply, err = ledger.AddUint64(cfg.ReaperSupply, 1)
		if err != nil {
			return err
		}
		if err := s.db.UpdateVaultConfig(ctx, cfg); err != nil {
			return fmt.Errorf("failed to update vault config: %w", err)
		}
		if err := s.db.IncrementBoostHolding(ctx, recipient, cfg.BoostCredentialID, now); err != nil {
			return fmt.Errorf("failed to record boost holding: %w", err)
		}

		supply = cfg.ReaperSupply
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Ctx(ctx).Info().
		Str("recipient", recipient).
		Uint64("supply", supply).
		Msg("boost credential reserved")
	return supply, nil
}

func (s *Service) authorize(ctx context.Context, caller string) (*model.VaultConfigDocument, error) {
	cfg, err := s.db.GetVaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get vault config: %w", err)
	}
	if caller != cfg.Authority {
		return nil, errorsmod.Wrapf(types.ErrUnauthorized, "caller %s", caller)
	}
	return cfg, nil
}
