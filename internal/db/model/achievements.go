package model

const AchievementsCollection = "achievements"

// AchievementsDocument tracks an owner's unlocked milestones. Unlocked is a
// bitfield indexed by types.Achievement; bits are never cleared and Points
// never decreases.
type AchievementsDocument struct {
	Owner                string `bson:"_id"`
	Unlocked             uint64 `bson:"unlocked"`
	Points               uint32 `bson:"points"`
	RankTier             uint8  `bson:"rank_tier"`
	FirstDepositTime     int64  `bson:"first_deposit_time"`
	MidnightHarvestCount uint32 `bson:"midnight_harvest_count"`
	TotalCompounds       uint64 `bson:"total_compounds"`
	HighestCompound      uint64 `bson:"highest_compound"`
	LastWithdrawalTime   int64  `bson:"last_withdrawal_time"`
	TotalCharityDonated  uint64 `bson:"total_charity_donated"`
	CompoundStreakDays   uint32 `bson:"compound_streak_days"`
	LastCompoundDay      int64  `bson:"last_compound_day"`
	DepositorOrdinal     uint64 `bson:"depositor_ordinal"`
}

func NewAchievementsDocument(owner string, now int64) *AchievementsDocument {
	return &AchievementsDocument{
		Owner:            owner,
		FirstDepositTime: now,
		LastCompoundDay:  -1,
	}
}
