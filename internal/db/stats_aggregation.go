package db

import (
	"context"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
)

// CalculateTotalValueLocked sums every vault balance and counts active vaults
// with an aggregation pipeline instead of loading vaults into memory.
func (db *Database) CalculateTotalValueLocked(ctx context.Context) (uint64, uint64, error) {
	pipeline := bson.A{
		bson.M{
			"$group": bson.M{
				"_id":       nil,
				"total_tvl": bson.M{"$sum": "$balance"},
				"active_vaults": bson.M{
					"$sum": bson.M{"$cond": bson.A{"$is_active", 1, 0}},
				},
			},
		},
	}

	cursor, err := db.collection(model.VaultsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return 0, 0, cursor.Err()
	}

	var result struct {
		TotalTVL     uint64 `bson:"total_tvl"`
		ActiveVaults uint64 `bson:"active_vaults"`
	}
	if err := cursor.Decode(&result); err != nil {
		return 0, 0, err
	}

	return result.TotalTVL, result.ActiveVaults, nil
}
