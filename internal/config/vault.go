package config

import (
	"errors"
)

const (
	defaultAssetScale    uint64 = 1_000_000_000
	defaultSoulsPerToken uint64 = 1
	defaultBaseAPYBps    uint16 = 1_000
)

// VaultConfig holds the parameters used to initialize the global vault
// configuration and to run scheduled harvests.
type VaultConfig struct {
	Authority         string `mapstructure:"authority"`
	AssetID           string `mapstructure:"asset-id"`
	BoostCredentialID string `mapstructure:"boost-credential-id"`
	CharityWallet     string `mapstructure:"charity-wallet"`
	AssetScale        uint64 `mapstructure:"asset-scale"`
	SoulsPerToken     uint64 `mapstructure:"souls-per-token"`
	BaseAPYBps        uint16 `mapstructure:"base-apy-bps"`
}

func (cfg *VaultConfig) Validate() error {
	if cfg.Authority == "" {
		return errors.New("vault authority is required")
	}

	if cfg.AssetID == "" {
		return errors.New("vault asset-id is required")
	}

	if cfg.BoostCredentialID == "" {
		return errors.New("vault boost-credential-id is required")
	}

	if cfg.CharityWallet == "" {
		return errors.New("vault charity-wallet is required")
	}

	if cfg.CharityWallet == cfg.Authority {
		return errors.New("vault charity-wallet must differ from authority")
	}

	if cfg.AssetScale == 0 {
		cfg.AssetScale = defaultAssetScale
	}

	if cfg.SoulsPerToken == 0 {
		cfg.SoulsPerToken = defaultSoulsPerToken
	}

	if cfg.BaseAPYBps == 0 {
		cfg.BaseAPYBps = defaultBaseAPYBps
	}

	return nil
}
