package db

import (
	"context"
	"time"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertOverallStats updates or inserts overall stats
func (db *Database) UpsertOverallStats(
	ctx context.Context,
	totalValueLocked uint64,
	activeVaults uint64,
	configTVL uint64,
) error {
	filter := bson.M{"_id": model.OverallStatsID}
	update := bson.M{
		"$set": bson.M{
			"total_value_locked": totalValueLocked,
			"active_vaults":      activeVaults,
			"config_tvl":         configTVL,
			"last_updated":       time.Now().Unix(),
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.OverallStatsCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

func (db *Database) GetOverallStats(ctx context.Context) (*model.OverallStatsDocument, error) {
	var stats model.OverallStatsDocument
	err := db.collection(model.OverallStatsCollection).
		FindOne(ctx, bson.M{"_id": model.OverallStatsID}).
		Decode(&stats)
	if err != nil {
		return nil, asNotFoundError(err, model.OverallStatsID, "overall stats not found")
	}

	return &stats, nil
}
