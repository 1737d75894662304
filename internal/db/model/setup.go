package model

import (
	"context"
	"fmt"
	"time"

	"github.com/kiroween-labs/soul-harvest-vault/internal/config"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type index struct {
	Indexes bson.D
	Unique  bool
}

var collections = map[string][]index{
	VaultsCollection: {
		{Indexes: bson.D{{Key: "owner", Value: 1}, {Key: "asset_id", Value: 1}}, Unique: true},
		{Indexes: bson.D{{Key: "is_active", Value: 1}, {Key: "_id", Value: 1}}},
	},
	VaultConfigCollection: {},
	LeaderboardCollection: {
		{Indexes: bson.D{{Key: "tvl", Value: -1}}},
	},
	AchievementsCollection: {
		{Indexes: bson.D{{Key: "points", Value: -1}}},
	},
	BoostHoldingsCollection: {},
	TransfersCollection: {
		{Indexes: bson.D{{Key: "from", Value: 1}, {Key: "created_at", Value: -1}}},
		{Indexes: bson.D{{Key: "kind", Value: 1}}},
	},
	OverallStatsCollection: {},
}

// Setup creates the collections and indexes used by the vault. It is safe to
// run against an already initialized database.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to disconnect setup client")
		}
	}()

	setupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	database := client.Database(cfg.DbName)
	existing, err := database.ListCollectionNames(setupCtx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		known[name] = struct{}{}
	}

	for name, idxs := range collections {
		if _, ok := known[name]; !ok {
			if err := database.CreateCollection(setupCtx, name); err != nil {
				return fmt.Errorf("failed to create collection %s: %w", name, err)
			}
		}

		for _, idx := range idxs {
			if err := createIndex(setupCtx, database, name, idx); err != nil {
				return err
			}
		}
	}

	log.Ctx(ctx).Info().Msg("collections and indexes created successfully")
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	indexModel := mongo.IndexModel{
		Keys:    idx.Indexes,
		Options: options.Index().SetUnique(idx.Unique),
	}

	_, err := database.Collection(collectionName).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return fmt.Errorf("failed to create index on %s: %w", collectionName, err)
	}

	log.Ctx(ctx).Debug().Str("collection", collectionName).Msg("index created")
	return nil
}
