package db

import (
	"context"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *Database) SaveNewVault(ctx context.Context, vault *model.VaultDocument) error {
	_, err := db.collection(model.VaultsCollection).InsertOne(ctx, vault)
	if err != nil {
		key := ""
		if vault != nil {
			key = vault.ID
		}
		return asDuplicateKeyError(err, key, "vault already exists")
	}
	return nil
}

func (db *Database) GetVault(ctx context.Context, owner, assetID string) (*model.VaultDocument, error) {
	id := model.VaultID(owner, assetID)

	var vault model.VaultDocument
	err := db.collection(model.VaultsCollection).
		FindOne(ctx, bson.M{"_id": id}).
		Decode(&vault)
	if err != nil {
		return nil, asNotFoundError(err, id, "vault not found")
	}

	return &vault, nil
}

// UpdateVault replaces the stored vault with the given document.
func (db *Database) UpdateVault(ctx context.Context, vault *model.VaultDocument) error {
	res, err := db.collection(model.VaultsCollection).
		ReplaceOne(ctx, bson.M{"_id": vault.ID}, vault)
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     vault.ID,
			Message: "vault not found",
		}
	}

	return nil
}

func (db *Database) DeleteVault(ctx context.Context, owner, assetID string) error {
	id := model.VaultID(owner, assetID)
	res, err := db.collection(model.VaultsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return &NotFoundError{
			Key:     id,
			Message: "vault not found",
		}
	}

	return nil
}

// FindActiveVaults returns up to limit active vaults with _id greater than
// afterID, ordered by _id. Pass an empty afterID to start from the beginning.
func (db *Database) FindActiveVaults(ctx context.Context, afterID string, limit int64) ([]model.VaultDocument, error) {
	filter := bson.M{"is_active": true}
	if afterID != "" {
		filter["_id"] = bson.M{"$gt": afterID}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(limit)

	cursor, err := db.collection(model.VaultsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vaults []model.VaultDocument
	if err := cursor.All(ctx, &vaults); err != nil {
		return nil, err
	}

	return vaults, nil
}
