package db

import (
	"context"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
)

func (db *Database) SaveNewAchievements(ctx context.Context, doc *model.AchievementsDocument) error {
	_, err := db.collection(model.AchievementsCollection).InsertOne(ctx, doc)
	if err != nil {
		key := ""
		if doc != nil {
			key = doc.Owner
		}
		return asDuplicateKeyError(err, key, "achievements already initialized")
	}
	return nil
}

func (db *Database) GetAchievements(ctx context.Context, owner string) (*model.AchievementsDocument, error) {
	var doc model.AchievementsDocument
	err := db.collection(model.AchievementsCollection).
		FindOne(ctx, bson.M{"_id": owner}).
		Decode(&doc)
	if err != nil {
		return nil, asNotFoundError(err, owner, "achievements not found")
	}

	return &doc, nil
}

// UpdateAchievements replaces the stored record. Callers must only pass a
// record derived from the stored one so unlocked bits are never cleared.
func (db *Database) UpdateAchievements(ctx context.Context, doc *model.AchievementsDocument) error {
	res, err := db.collection(model.AchievementsCollection).
		ReplaceOne(ctx, bson.M{"_id": doc.Owner}, doc)
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     doc.Owner,
			Message: "achievements not found",
		}
	}

	return nil
}
