package testutil

import (
	"crypto/rand"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// RandomAddress returns a base58 encoded random 32 byte account address.
func RandomAddress() (string, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}
	return base58.Encode(key), nil
}

// RandomAlphaNum returns a random base58 string of the given length.
func RandomAlphaNum(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	// a 32 byte key encodes to at least 32 base58 characters
	out := ""
	for len(out) < length {
		chunk, err := RandomAddress()
		if err != nil {
			return "", err
		}
		out += chunk
	}
	return out[:length], nil
}
