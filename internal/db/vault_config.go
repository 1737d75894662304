package db

import (
	"context"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
)

func (db *Database) SaveVaultConfig(ctx context.Context, cfg *model.VaultConfigDocument) error {
	_, err := db.collection(model.VaultConfigCollection).InsertOne(ctx, cfg)
	return asDuplicateKeyError(err, model.VaultConfigID, "vault config already initialized")
}

func (db *Database) GetVaultConfig(ctx context.Context) (*model.VaultConfigDocument, error) {
	var cfg model.VaultConfigDocument
	err := db.collection(model.VaultConfigCollection).
		FindOne(ctx, bson.M{"_id": model.VaultConfigID}).
		Decode(&cfg)
	if err != nil {
		return nil, asNotFoundError(err, model.VaultConfigID, "vault config not found")
	}

	return &cfg, nil
}

func (db *Database) UpdateVaultConfig(ctx context.Context, cfg *model.VaultConfigDocument) error {
	res, err := db.collection(model.VaultConfigCollection).
		ReplaceOne(ctx, bson.M{"_id": model.VaultConfigID}, cfg)
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     model.VaultConfigID,
			Message: "vault config not found",
		}
	}

	return nil
}
