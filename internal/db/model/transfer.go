package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const TransfersCollection = "transfers"

type TransferKind string

const (
	TransferKindCharity TransferKind = "charity"
)

type TransferDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	From      string             `bson:"from"`
	To        string             `bson:"to"`
	Amount    uint64             `bson:"amount"`
	Kind      TransferKind       `bson:"kind"`
	CreatedAt int64              `bson:"created_at"`
}
