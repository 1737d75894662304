package db

import (
	"context"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *Database) GetBoostHolding(ctx context.Context, owner string) (*model.BoostHoldingDocument, error) {
	var holding model.BoostHoldingDocument
	err := db.collection(model.BoostHoldingsCollection).
		FindOne(ctx, bson.M{"_id": owner}).
		Decode(&holding)
	if err != nil {
		return nil, asNotFoundError(err, owner, "boost holding not found")
	}

	return &holding, nil
}

// IncrementBoostHolding adds one credential to the owner's holding, creating
// it when missing.
func (db *Database) IncrementBoostHolding(ctx context.Context, owner, credentialID string, reservedAt int64) error {
	filter := bson.M{"_id": owner}
	update := bson.M{
		"$set": bson.M{
			"credential_id": credentialID,
			"reserved_at":   reservedAt,
		},
		"$inc": bson.M{"amount": int64(1)},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.BoostHoldingsCollection).UpdateOne(ctx, filter, update, opts)
	return err
}
