// Package achievements evaluates milestone predicates against vault
// snapshots and records unlocks into an owner's achievement bitfield.
package achievements

import (
	"math"

	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"github.com/kiroween-labs/soul-harvest-vault/internal/types"
)

const (
	secondsPerHour = 3_600
	secondsPerDay  = 86_400

	nightOwlHour  = 0
	earlyBirdHour = 5

	diamondHandsDays = 30
	ogSoulMaxOrdinal = 100
	charityChampion  = 10_000
)

// Snapshot is the post-update view of a vault used by Evaluate.
type Snapshot struct {
	Balance             uint64
	TotalSoulsHarvested uint64
	HasBoost            bool
}

// Result is informational output of an evaluation pass.
type Result struct {
	NewlyUnlocked []string
	PointsEarned  uint32
	RankName      string
	TotalPoints   uint32
}

// Has reports whether a is unlocked in rec.
func Has(rec *model.AchievementsDocument, a types.Achievement) bool {
	return a.Valid() && rec.Unlocked&a.Bit() != 0
}

// Unlock sets the bit of a and returns the points granted. Unlocking an
// already unlocked milestone is a no-op returning zero.
func Unlock(rec *model.AchievementsDocument, a types.Achievement) uint32 {
	if !a.Valid() || Has(rec, a) {
		return 0
	}

	rec.Unlocked |= a.Bit()
	points := a.Points()
	rec.Points = saturatingAdd32(rec.Points, points)
	rec.RankTier = uint8(types.RankFromPoints(rec.Points))
	return points
}

// UnlockedList returns the unlocked milestones in bit order.
func UnlockedList(rec *model.AchievementsDocument) []types.Achievement {
	var unlocked []types.Achievement
	for _, a := range types.AllAchievements() {
		if Has(rec, a) {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}

type predicate struct {
	achievement types.Achievement
	satisfied   func(rec *model.AchievementsDocument, s Snapshot, now int64) bool
}

func balanceAtLeast(min uint64) func(*model.AchievementsDocument, Snapshot, int64) bool {
	return func(_ *model.AchievementsDocument, s Snapshot, _ int64) bool { return s.Balance >= min }
}

func soulsAtLeast(min uint64) func(*model.AchievementsDocument, Snapshot, int64) bool {
	return func(_ *model.AchievementsDocument, s Snapshot, _ int64) bool { return s.TotalSoulsHarvested >= min }
}

func compoundsAtLeast(min uint64) func(*model.AchievementsDocument, Snapshot, int64) bool {
	return func(rec *model.AchievementsDocument, _ Snapshot, _ int64) bool { return rec.TotalCompounds >= min }
}

func harvestsAtLeast(min uint32) func(*model.AchievementsDocument, Snapshot, int64) bool {
	return func(rec *model.AchievementsDocument, _ Snapshot, _ int64) bool { return rec.MidnightHarvestCount >= min }
}

func streakAtLeast(min uint32) func(*model.AchievementsDocument, Snapshot, int64) bool {
	return func(rec *model.AchievementsDocument, _ Snapshot, _ int64) bool { return rec.CompoundStreakDays >= min }
}

func compoundedAtHour(hour int64) func(*model.AchievementsDocument, Snapshot, int64) bool {
	return func(rec *model.AchievementsDocument, _ Snapshot, now int64) bool {
		return HourOfDay(now) == hour && rec.TotalCompounds > 0
	}
}

// predicates are checked in this order on every pass.
var predicates = []predicate{
	{types.AchievementFirstBlood, balanceAtLeast(1)},
	{types.AchievementSoulStarter, balanceAtLeast(1_000)},
	{types.AchievementGraveDigger, balanceAtLeast(10_000)},
	{types.AchievementCryptKeeper, balanceAtLeast(100_000)},
	{types.AchievementNecromancer, balanceAtLeast(1_000_000)},
	{types.AchievementWhale, balanceAtLeast(1_000_000)},

	{types.AchievementSoulCollector, soulsAtLeast(100)},
	{types.AchievementSoulReaper, soulsAtLeast(1_000)},
	{types.AchievementSoulMaster, soulsAtLeast(10_000)},
	{types.AchievementDeathLord, soulsAtLeast(100_000)},
	{types.AchievementGrimReaper, soulsAtLeast(1_000_000)},

	{types.AchievementCompoundKing, compoundsAtLeast(10)},
	{types.AchievementYieldFarmer, compoundsAtLeast(100)},
	{types.AchievementDefiDegen, compoundsAtLeast(1_000)},

	{types.AchievementWitchingHour, harvestsAtLeast(1)},
	{types.AchievementHaunted, harvestsAtLeast(7)},
	{types.AchievementPossessed, harvestsAtLeast(30)},
	{types.AchievementEternal, harvestsAtLeast(365)},

	{types.AchievementNightOwl, compoundedAtHour(nightOwlHour)},
	{types.AchievementEarlyBird, compoundedAtHour(earlyBirdHour)},

	{types.AchievementDiamondHands, func(rec *model.AchievementsDocument, s Snapshot, now int64) bool {
		return DaysHeld(rec, now) >= diamondHandsDays && s.Balance > 0
	}},
	{types.AchievementReapersChosen, func(_ *model.AchievementsDocument, s Snapshot, _ int64) bool {
		return s.HasBoost
	}},
	{types.AchievementOgSoul, func(rec *model.AchievementsDocument, _ Snapshot, _ int64) bool {
		return rec.DepositorOrdinal >= 1 && rec.DepositorOrdinal <= ogSoulMaxOrdinal
	}},
	{types.AchievementCharityChampion, func(rec *model.AchievementsDocument, _ Snapshot, _ int64) bool {
		return rec.TotalCharityDonated >= charityChampion
	}},

	{types.AchievementHotStreak, streakAtLeast(7)},
	{types.AchievementOnFire, streakAtLeast(30)},
	{types.AchievementUnstoppable, streakAtLeast(100)},
}

// Evaluate re-checks every milestone against the snapshot at time now and
// unlocks the ones newly satisfied.
func Evaluate(rec *model.AchievementsDocument, s Snapshot, now int64) Result {
	res := Result{NewlyUnlocked: []string{}}

	for _, p := range predicates {
		if Has(rec, p.achievement) || !p.satisfied(rec, s, now) {
			continue
		}
		points := Unlock(rec, p.achievement)
		res.NewlyUnlocked = append(res.NewlyUnlocked, p.achievement.String())
		res.PointsEarned = saturatingAdd32(res.PointsEarned, points)
	}

	res.TotalPoints = rec.Points
	res.RankName = types.RankFromPoints(rec.Points).String()
	return res
}

// HourOfDay returns the UTC hour (0-23) of an epoch timestamp.
func HourOfDay(now int64) int64 {
	return floorMod(now, secondsPerDay) / secondsPerHour
}

// DayIndex returns the number of whole UTC days since the epoch.
func DayIndex(now int64) int64 {
	return floorDiv(now, secondsPerDay)
}

// DaysHeld counts whole days since the later of the first deposit and the
// last withdrawal.
func DaysHeld(rec *model.AchievementsDocument, now int64) int64 {
	since := max(rec.FirstDepositTime, rec.LastWithdrawalTime)
	if now <= since {
		return 0
	}
	return (now - since) / secondsPerDay
}

func saturatingAdd32(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}

func saturatingAdd64(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
