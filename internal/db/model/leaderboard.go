package model

const LeaderboardCollection = "leaderboard"

// LeaderboardEntryDocument mirrors an owner's vault balance. Rank is written
// only by the ranking pass.
type LeaderboardEntryDocument struct {
	Owner string `bson:"_id"`
	TVL   uint64 `bson:"tvl"`
	Rank  uint32 `bson:"rank"`
}

func NewLeaderboardEntryDocument(owner string) *LeaderboardEntryDocument {
	return &LeaderboardEntryDocument{Owner: owner}
}
