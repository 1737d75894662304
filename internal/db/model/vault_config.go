package model

const (
	VaultConfigCollection = "vault_config"
	// VaultConfigID is the _id of the singleton configuration document.
	VaultConfigID = "config"
)

const (
	DefaultBaseAPYBps         uint16 = 1_000
	DefaultBoostMultiplierBps uint16 = 20_000
	DefaultSoulsPerToken      uint64 = 1
	// ReaperMaxSupply caps the number of boost credentials ever reserved.
	ReaperMaxSupply uint64 = 1_666
	// DefaultAssetScale is the number of smallest units in one whole asset.
	DefaultAssetScale uint64 = 1_000_000_000
)

// VaultConfigDocument is the global vault configuration. TotalValueLocked is
// the sum of every vault balance and moves in the same write as the vault.
type VaultConfigDocument struct {
	ID                 string `bson:"_id"`
	Authority          string `bson:"authority"`
	BoostCredentialID  string `bson:"boost_credential_id"`
	ReaperSupply       uint64 `bson:"reaper_supply"`
	MaxSupply          uint64 `bson:"max_supply"`
	BaseAPYBps         uint16 `bson:"base_apy_bps"`
	BoostMultiplierBps uint16 `bson:"boost_multiplier_bps"`
	SoulsPerToken      uint64 `bson:"souls_per_token"`
	TotalValueLocked   uint64 `bson:"total_value_locked"`
	AssetScale         uint64 `bson:"asset_scale"`
	TotalSoulTax       uint64 `bson:"total_soul_tax"`
	TotalCharity       uint64 `bson:"total_charity"`
	TotalDepositors    uint64 `bson:"total_depositors"`
}

// NewVaultConfigDocument builds a fresh configuration. Zero values fall back
// to the defaults.
func NewVaultConfigDocument(
	authority, boostCredentialID string,
	baseAPYBps uint16,
	soulsPerToken, assetScale uint64,
) *VaultConfigDocument {
	if baseAPYBps == 0 {
		baseAPYBps = DefaultBaseAPYBps
	}
	if soulsPerToken == 0 {
		soulsPerToken = DefaultSoulsPerToken
	}
	if assetScale == 0 {
		assetScale = DefaultAssetScale
	}

	return &VaultConfigDocument{
		ID:                 VaultConfigID,
		Authority:          authority,
		BoostCredentialID:  boostCredentialID,
		MaxSupply:          ReaperMaxSupply,
		BaseAPYBps:         baseAPYBps,
		BoostMultiplierBps: DefaultBoostMultiplierBps,
		SoulsPerToken:      soulsPerToken,
		AssetScale:         assetScale,
	}
}
