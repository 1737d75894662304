package db

import (
	"context"

	"github.com/kiroween-labs/soul-harvest-vault/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Database struct {
	dbName       string
	client       *mongo.Client
	transactions bool
}

func New(ctx context.Context, cfg config.DbConfig) (*Database, error) {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().
		ApplyURI(cfg.Address).
		SetAuth(credential).
		SetRegistry(NewRegistry())
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return nil, err
	}

	return &Database{
		dbName:       cfg.DbName,
		client:       client,
		transactions: cfg.Transactions,
	}, nil
}

func (db *Database) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, nil)
}

func (db *Database) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// WithTransaction runs f inside a session transaction when transactions are
// enabled, otherwise it runs f directly. Every write made through ctx inside
// f commits or aborts together.
func (db *Database) WithTransaction(ctx context.Context, f func(ctx context.Context) error) error {
	if !db.transactions {
		return f(ctx)
	}

	session, err := db.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, f(sessCtx)
	})
	return err
}

func (db *Database) collection(name string) *mongo.Collection {
	return db.client.Database(db.dbName).Collection(name)
}
