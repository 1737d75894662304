package model

const VaultsCollection = "vaults"

// VaultDocument holds one owner's stake of a single asset.
type VaultDocument struct {
	ID                  string `bson:"_id"` // owner:asset
	Owner               string `bson:"owner"`
	AssetID             string `bson:"asset_id"`
	Balance             uint64 `bson:"balance"`
	LastAccrualTime     int64  `bson:"last_accrual_time"`
	TotalSoulsHarvested uint64 `bson:"total_souls_harvested"`
	IsActive            bool   `bson:"is_active"`
	CreatedAt           int64  `bson:"created_at"`
}

func VaultID(owner, assetID string) string {
	return owner + ":" + assetID
}

func NewVaultDocument(owner, assetID string, now int64) *VaultDocument {
	return &VaultDocument{
		ID:              VaultID(owner, assetID),
		Owner:           owner,
		AssetID:         assetID,
		LastAccrualTime: now,
		IsActive:        true,
		CreatedAt:       now,
	}
}
