package db

import (
	"context"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *Database) SaveTransfer(ctx context.Context, transfer *model.TransferDocument) error {
	_, err := db.collection(model.TransfersCollection).InsertOne(ctx, transfer)
	return err
}

// FindTransfersFrom returns the most recent transfers sent by owner.
func (db *Database) FindTransfersFrom(ctx context.Context, owner string, limit int64) ([]model.TransferDocument, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := db.collection(model.TransfersCollection).Find(ctx, bson.M{"from": owner}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var transfers []model.TransferDocument
	if err := cursor.All(ctx, &transfers); err != nil {
		return nil, err
	}

	return transfers, nil
}
