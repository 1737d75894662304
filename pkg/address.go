package pkg

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// AddressLength is the size in bytes of a decoded account address.
const AddressLength = 32

// ValidateAddress checks that address is a base58 encoded 32 byte public key.
func ValidateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("address is empty")
	}

	decoded := base58.Decode(address)
	if len(decoded) == 0 {
		return fmt.Errorf("address %q is not valid base58", address)
	}

	if len(decoded) != AddressLength {
		return fmt.Errorf("address %q decodes to %d bytes, expected %d", address, len(decoded), AddressLength)
	}

	return nil
}
