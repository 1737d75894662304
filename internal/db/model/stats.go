package model

const (
	OverallStatsCollection = "overall_stats"
	OverallStatsID         = "overall_stats"
)

// OverallStatsDocument is the last reconciled view of the vaults
type OverallStatsDocument struct {
	ID               string `bson:"_id"`                // Always "overall_stats"
	TotalValueLocked uint64 `bson:"total_value_locked"` // Sum of all vault balances
	ActiveVaults     uint64 `bson:"active_vaults"`      // Number of active vaults
	ConfigTVL        uint64 `bson:"config_tvl"`         // Global counter at reconciliation time
	LastUpdated      int64  `bson:"last_updated"`       // Unix timestamp of last update
}
