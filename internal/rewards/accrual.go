package rewards

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/kiroween-labs/soul-harvest-vault/internal/types"
)

const (
	SecondsPerMinute int64 = 60
	SecondsPerHour         = 60 * SecondsPerMinute
	SecondsPerDay          = 24 * SecondsPerHour
	// SecondsPerYear ignores leap years.
	SecondsPerYear = 365 * SecondsPerDay

	// BasisPoints is 100% expressed in basis points.
	BasisPoints uint64 = 10_000
)

// BoostWitness is what the caller observed about the owner's boost
// credential holding. A nil witness means no credential account was found.
type BoostWitness struct {
	CredentialID string
	Amount       uint64
}

// Held reports whether the witness proves a positive credential balance.
func (w *BoostWitness) Held() bool {
	return w != nil && w.Amount > 0
}

// VerifyBoostWitness checks that the witness belongs to the configured boost
// credential and reports whether the boost applies.
func VerifyBoostWitness(w *BoostWitness, boostCredentialID string) (bool, error) {
	if w == nil {
		return false, nil
	}
	if w.CredentialID != boostCredentialID {
		return false, errorsmod.Wrapf(types.ErrInvalidMint,
			"boost witness credential %q does not match %q", w.CredentialID, boostCredentialID)
	}
	return w.Held(), nil
}

// AccrualInput is the snapshot needed to compute one accrual.
type AccrualInput struct {
	Balance       uint64
	RateBps       uint16
	Elapsed       int64
	HasBoost      bool
	BoostBps      uint16
	SoulsPerToken uint64
}

// Accrual is the outcome of an accrual computation. Reward already includes
// the boost when it applied.
type Accrual struct {
	Reward       uint64
	SoulsEarned  uint64
	BoostApplied bool
}

// Accrue runs the full accrual pipeline: base reward, optional boost and
// souls earned. A non-positive elapsed time yields a zero accrual.
func Accrue(in AccrualInput) (Accrual, error) {
	if in.Elapsed <= 0 {
		return Accrual{}, nil
	}

	reward, err := CalculateReward(in.Balance, in.RateBps, in.Elapsed)
	if err != nil {
		return Accrual{}, err
	}

	if in.HasBoost {
		reward, err = ApplyBoost(reward, in.BoostBps)
		if err != nil {
			return Accrual{}, err
		}
	}

	souls, err := SoulsEarned(reward, in.SoulsPerToken)
	if err != nil {
		return Accrual{}, err
	}

	return Accrual{
		Reward:       reward,
		SoulsEarned:  souls,
		BoostApplied: in.HasBoost,
	}, nil
}

// CalculateReward computes
//
//	floor(balance * rateBps * elapsed / (SecondsPerYear * BasisPoints))
//
// with a wide intermediate. The result must fit in uint64.
func CalculateReward(balance uint64, rateBps uint16, elapsed int64) (uint64, error) {
	if elapsed <= 0 {
		return 0, nil
	}

	numerator, err := sdkmath.NewIntFromUint64(balance).SafeMul(sdkmath.NewInt(int64(rateBps)))
	if err != nil {
		return 0, overflow(err, "balance * rate")
	}
	numerator, err = numerator.SafeMul(sdkmath.NewInt(elapsed))
	if err != nil {
		return 0, overflow(err, "balance * rate * elapsed")
	}

	denominator := sdkmath.NewInt(SecondsPerYear).Mul(sdkmath.NewIntFromUint64(BasisPoints))
	reward, err := numerator.SafeQuo(denominator)
	if err != nil {
		return 0, overflow(err, "reward division")
	}

	return narrow(reward, "reward")
}

// ApplyBoost scales a reward by a basis-point multiplier, truncating.
func ApplyBoost(reward uint64, boostBps uint16) (uint64, error) {
	return MulDivBps(reward, uint64(boostBps))
}

// SoulsEarned converts a reward to souls.
func SoulsEarned(reward, soulsPerToken uint64) (uint64, error) {
	souls, err := sdkmath.NewIntFromUint64(reward).SafeMul(sdkmath.NewIntFromUint64(soulsPerToken))
	if err != nil {
		return 0, overflow(err, "souls earned")
	}
	return narrow(souls, "souls earned")
}

// MulDivBps returns floor(amount * bps / BasisPoints).
func MulDivBps(amount, bps uint64) (uint64, error) {
	product, err := sdkmath.NewIntFromUint64(amount).SafeMul(sdkmath.NewIntFromUint64(bps))
	if err != nil {
		return 0, overflow(err, "amount * bps")
	}
	quotient, err := product.SafeQuo(sdkmath.NewIntFromUint64(BasisPoints))
	if err != nil {
		return 0, overflow(err, "bps division")
	}
	return narrow(quotient, "bps product")
}

func narrow(v sdkmath.Int, what string) (uint64, error) {
	if v.IsNegative() || !v.IsUint64() {
		return 0, errorsmod.Wrapf(types.ErrArithmeticOverflow, "%s %s does not fit in 64 bits", what, v)
	}
	return v.Uint64(), nil
}

func overflow(err error, step string) error {
	return errorsmod.Wrapf(types.ErrArithmeticOverflow, "%s: %v", step, err)
}
