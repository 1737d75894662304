// Package ledger keeps the vault balance, the owner's leaderboard tvl and the
// global total value locked in step with each other.
package ledger

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"github.com/kiroween-labs/soul-harvest-vault/internal/types"
)

type Kind int

const (
	KindAccrual Kind = iota
	KindDeposit
	KindWithdrawal
)

func (k Kind) String() string {
	switch k {
	case KindAccrual:
		return "accrual"
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}

func (k Kind) credit() bool {
	return k == KindAccrual || k == KindDeposit
}

// Delta is a change applied to all three balances at once.
type Delta struct {
	Kind   Kind
	Amount uint64
}

// staged holds the values Apply commits once every check has passed.
type staged struct {
	vaultBalance uint64
	entryTVL     uint64
	globalTVL    uint64
}

// Apply moves d through vault, entry and cfg in that order. Either all three
// are updated or none is.
func Apply(vault *model.VaultDocument, entry *model.LeaderboardEntryDocument, cfg *model.VaultConfigDocument, d Delta) error {
	s, err := stage(vault, entry, cfg, d)
	if err != nil {
		return err
	}

	vault.Balance = s.vaultBalance
	entry.TVL = s.entryTVL
	cfg.TotalValueLocked = s.globalTVL
	return nil
}

func stage(vault *model.VaultDocument, entry *model.LeaderboardEntryDocument, cfg *model.VaultConfigDocument, d Delta) (staged, error) {
	if vault.Owner != entry.Owner {
		return staged{}, errorsmod.Wrapf(types.ErrUnauthorized,
			"leaderboard entry %s does not belong to vault owner %s", entry.Owner, vault.Owner)
	}

	switch {
	case d.Kind.credit():
		if !vault.IsActive {
			return staged{}, errorsmod.Wrapf(types.ErrVaultInactive, "%s on vault %s", d.Kind, vault.ID)
		}
		return stageCredit(vault, entry, cfg, d.Amount)
	case d.Kind == KindWithdrawal:
		return stageDebit(vault, entry, cfg, d.Amount)
	default:
		return staged{}, errorsmod.Wrapf(types.ErrArithmeticOverflow, "unknown delta kind %d", d.Kind)
	}
}

func stageCredit(vault *model.VaultDocument, entry *model.LeaderboardEntryDocument, cfg *model.VaultConfigDocument, amount uint64) (staged, error) {
	var (
		s   staged
		err error
	)

	if s.vaultBalance, err = AddUint64(vault.Balance, amount); err != nil {
		return staged{}, errorsmod.Wrap(err, "vault balance")
	}
	if s.entryTVL, err = AddUint64(entry.TVL, amount); err != nil {
		return staged{}, errorsmod.Wrap(err, "leaderboard tvl")
	}
	if s.globalTVL, err = AddUint64(cfg.TotalValueLocked, amount); err != nil {
		return staged{}, errorsmod.Wrap(err, "global tvl")
	}

	return s, nil
}

func stageDebit(vault *model.VaultDocument, entry *model.LeaderboardEntryDocument, cfg *model.VaultConfigDocument, amount uint64) (staged, error) {
	if amount > vault.Balance {
		return staged{}, errorsmod.Wrapf(types.ErrInsufficientBalance,
			"withdraw %d from balance %d", amount, vault.Balance)
	}

	var (
		s   staged
		err error
	)

	s.vaultBalance = vault.Balance - amount
	if s.entryTVL, err = SubUint64(entry.TVL, amount); err != nil {
		return staged{}, errorsmod.Wrap(err, "leaderboard tvl")
	}
	if s.globalTVL, err = SubUint64(cfg.TotalValueLocked, amount); err != nil {
		return staged{}, errorsmod.Wrap(err, "global tvl")
	}

	return s, nil
}

// AddUint64 returns a+b or ErrArithmeticOverflow.
func AddUint64(a, b uint64) (uint64, error) {
	sum := sdkmath.NewIntFromUint64(a).Add(sdkmath.NewIntFromUint64(b))
	if !sum.IsUint64() {
		return 0, errorsmod.Wrapf(types.ErrArithmeticOverflow, "%d + %d", a, b)
	}
	return sum.Uint64(), nil
}

// SubUint64 returns a-b or ErrArithmeticOverflow when b > a.
func SubUint64(a, b uint64) (uint64, error) {
	if b > a {
		return 0, errorsmod.Wrapf(types.ErrArithmeticOverflow, "%d - %d", a, b)
	}
	return a - b, nil
}
