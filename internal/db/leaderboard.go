package db

import (
	"context"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *Database) SaveNewLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntryDocument) error {
	_, err := db.collection(model.LeaderboardCollection).InsertOne(ctx, entry)
	if err != nil {
		key := ""
		if entry != nil {
			key = entry.Owner
		}
		return asDuplicateKeyError(err, key, "leaderboard entry already exists")
	}
	return nil
}

func (db *Database) GetLeaderboardEntry(ctx context.Context, owner string) (*model.LeaderboardEntryDocument, error) {
	var entry model.LeaderboardEntryDocument
	err := db.collection(model.LeaderboardCollection).
		FindOne(ctx, bson.M{"_id": owner}).
		Decode(&entry)
	if err != nil {
		return nil, asNotFoundError(err, owner, "leaderboard entry not found")
	}

	return &entry, nil
}

// UpdateLeaderboardEntryTVL sets the entry tvl. Rank is left untouched.
func (db *Database) UpdateLeaderboardEntryTVL(ctx context.Context, owner string, tvl uint64) error {
	res, err := db.collection(model.LeaderboardCollection).UpdateOne(
		ctx,
		bson.M{"_id": owner},
		bson.M{"$set": bson.M{"tvl": tvl}},
	)
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     owner,
			Message: "leaderboard entry not found",
		}
	}

	return nil
}

func (db *Database) DeleteLeaderboardEntry(ctx context.Context, owner string) error {
	_, err := db.collection(model.LeaderboardCollection).DeleteOne(ctx, bson.M{"_id": owner})
	return err
}

// GetAllLeaderboardEntries returns every entry sorted by owner (the _id).
func (db *Database) GetAllLeaderboardEntries(ctx context.Context) ([]model.LeaderboardEntryDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := db.collection(model.LeaderboardCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []model.LeaderboardEntryDocument
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// UpdateLeaderboardRanks persists ranks keyed by owner in a single bulk write.
func (db *Database) UpdateLeaderboardRanks(ctx context.Context, ranks map[string]uint32) error {
	if len(ranks) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(ranks))
	for owner, rank := range ranks {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": owner}).
			SetUpdate(bson.M{"$set": bson.M{"rank": rank}}))
	}

	_, err := db.collection(model.LeaderboardCollection).
		BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	return err
}
