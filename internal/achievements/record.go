package achievements

import (
	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
)

// RecordCompound counts a compounded reward. Compounds on consecutive UTC
// days extend the streak, a gap of more than a day restarts it.
func RecordCompound(rec *model.AchievementsDocument, reward uint64, now int64) {
	rec.TotalCompounds = saturatingAdd64(rec.TotalCompounds, 1)
	rec.HighestCompound = max(rec.HighestCompound, reward)

	day := DayIndex(now)
	switch {
	case rec.CompoundStreakDays > 0 && day == rec.LastCompoundDay:
		return
	case rec.CompoundStreakDays > 0 && day == rec.LastCompoundDay+1:
		rec.CompoundStreakDays = saturatingAdd32(rec.CompoundStreakDays, 1)
	case day < rec.LastCompoundDay:
		// clock went backwards, keep the streak as is
		return
	default:
		rec.CompoundStreakDays = 1
	}
	rec.LastCompoundDay = day
}

// RecordMidnightHarvest counts a scheduled harvest and the charity it donated.
func RecordMidnightHarvest(rec *model.AchievementsDocument, reward, charity uint64, now int64) {
	RecordCompound(rec, reward, now)
	rec.MidnightHarvestCount = saturatingAdd32(rec.MidnightHarvestCount, 1)
	rec.TotalCharityDonated = saturatingAdd64(rec.TotalCharityDonated, charity)
}

// RecordWithdrawal restarts the holding clock used by Diamond Hands.
func RecordWithdrawal(rec *model.AchievementsDocument, now int64) {
	if now > rec.LastWithdrawalTime {
		rec.LastWithdrawalTime = now
	}
}
