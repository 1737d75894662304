package types

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
)

// Codespace groups every vault error under a single registry namespace.
const Codespace = "soulharvest"

// Error codes keep the numbering used by deployed clients (6000 onward).
var (
	ErrInsufficientFunds    = errorsmod.Register(Codespace, 6000, "insufficient funds for operation")
	ErrInsufficientBalance  = errorsmod.Register(Codespace, 6001, "insufficient balance in vault")
	ErrNonZeroBalance       = errorsmod.Register(Codespace, 6002, "vault balance must be zero to close")
	ErrVaultInactive        = errorsmod.Register(Codespace, 6003, "vault is not active")
	ErrSupplyExhausted      = errorsmod.Register(Codespace, 6004, "reaper pass supply exhausted")
	ErrUnauthorized         = errorsmod.Register(Codespace, 6005, "unauthorized: only authority can perform this action")
	ErrInvalidMint          = errorsmod.Register(Codespace, 6006, "invalid token mint")
	ErrArithmeticOverflow   = errorsmod.Register(Codespace, 6007, "arithmetic overflow")
	ErrInvalidDepositAmount = errorsmod.Register(Codespace, 6008, "invalid deposit amount")
)

// IsDomainError reports whether err carries one of the vault error kinds.
// Pollers use it to tell terminal failures from transient storage errors.
func IsDomainError(err error) bool {
	var coded *errorsmod.Error
	if !errors.As(err, &coded) {
		return false
	}
	return coded.Codespace() == Codespace
}
