package model

const BoostHoldingsCollection = "boost_holdings"

// BoostHoldingDocument records how many boost credentials an owner holds.
type BoostHoldingDocument struct {
	Owner        string `bson:"_id"`
	CredentialID string `bson:"credential_id"`
	Amount       uint64 `bson:"amount"`
	ReservedAt   int64  `bson:"reserved_at"`
}
