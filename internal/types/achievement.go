package types

// Achievement identifies one milestone. The numeric value is the bit index
// inside the achievements bitfield, so the order below is persisted and must
// never be rearranged.
type Achievement uint8

const (
	// deposit milestones
	AchievementFirstBlood Achievement = iota
	AchievementSoulStarter
	AchievementGraveDigger
	AchievementCryptKeeper
	AchievementNecromancer

	// soul harvesting milestones
	AchievementSoulCollector
	AchievementSoulReaper
	AchievementSoulMaster
	AchievementDeathLord
	AchievementGrimReaper

	// compound milestones
	AchievementNightOwl
	AchievementEarlyBird
	AchievementCompoundKing
	AchievementYieldFarmer
	AchievementDefiDegen

	// midnight harvest milestones
	AchievementWitchingHour
	AchievementHaunted
	AchievementPossessed
	AchievementEternal

	// special milestones
	AchievementReapersChosen
	AchievementDiamondHands
	AchievementOgSoul
	AchievementWhale
	AchievementCharityChampion

	// streak milestones
	AchievementHotStreak
	AchievementOnFire
	AchievementUnstoppable

	achievementCount
)

// AchievementCount is the number of defined milestones.
const AchievementCount = int(achievementCount)

type achievementInfo struct {
	name   string
	points uint32
}

var achievementTable = [achievementCount]achievementInfo{
	AchievementFirstBlood:      {"First Blood", 10},
	AchievementSoulStarter:     {"Soul Starter", 20},
	AchievementGraveDigger:     {"Grave Digger", 40},
	AchievementCryptKeeper:     {"Crypt Keeper", 70},
	AchievementNecromancer:     {"Necromancer", 100},
	AchievementSoulCollector:   {"Soul Collector", 15},
	AchievementSoulReaper:      {"Soul Reaper", 30},
	AchievementSoulMaster:      {"Soul Master", 60},
	AchievementDeathLord:       {"Death Lord", 100},
	AchievementGrimReaper:      {"Grim Reaper", 150},
	AchievementNightOwl:        {"Night Owl", 25},
	AchievementEarlyBird:       {"Early Bird", 25},
	AchievementCompoundKing:    {"Compound King", 20},
	AchievementYieldFarmer:     {"Yield Farmer", 35},
	AchievementDefiDegen:       {"DeFi Degen", 50},
	AchievementWitchingHour:    {"Witching Hour", 20},
	AchievementHaunted:         {"Haunted", 40},
	AchievementPossessed:       {"Possessed", 80},
	AchievementEternal:         {"Eternal", 200},
	AchievementReapersChosen:   {"Reaper's Chosen", 100},
	AchievementDiamondHands:    {"Diamond Hands", 75},
	AchievementOgSoul:          {"OG Soul", 100},
	AchievementWhale:           {"Whale", 80},
	AchievementCharityChampion: {"Charity Champion", 60},
	AchievementHotStreak:       {"Hot Streak", 30},
	AchievementOnFire:          {"On Fire", 60},
	AchievementUnstoppable:     {"Unstoppable", 100},
}

// AllAchievements returns every milestone in bit order.
func AllAchievements() []Achievement {
	all := make([]Achievement, 0, achievementCount)
	for a := range achievementCount {
		all = append(all, a)
	}
	return all
}

func (a Achievement) Valid() bool {
	return a < achievementCount
}

// Bit returns the mask of this milestone inside the bitfield.
func (a Achievement) Bit() uint64 {
	return 1 << uint64(a)
}

// Points returns the point value granted on first unlock.
func (a Achievement) Points() uint32 {
	if !a.Valid() {
		return 0
	}
	return achievementTable[a].points
}

func (a Achievement) String() string {
	if !a.Valid() {
		return "Unknown"
	}
	return achievementTable[a].name
}

// Rank is the coarse tier derived from cumulative achievement points.
type Rank uint8

const (
	RankGhost Rank = iota
	RankSpecter
	RankWraith
	RankPhantom
	RankReaper
)

// RankFromPoints maps cumulative points to a rank tier.
func RankFromPoints(points uint32) Rank {
	switch {
	case points >= 1000:
		return RankReaper
	case points >= 600:
		return RankPhantom
	case points >= 300:
		return RankWraith
	case points >= 100:
		return RankSpecter
	default:
		return RankGhost
	}
}

func (r Rank) String() string {
	switch r {
	case RankGhost:
		return "Ghost"
	case RankSpecter:
		return "Specter"
	case RankWraith:
		return "Wraith"
	case RankPhantom:
		return "Phantom"
	case RankReaper:
		return "Reaper"
	default:
		return "Unknown"
	}
}

// BonusBps is the reward multiplier a caller may apply for this rank,
// in basis points (10000 = 1.0x).
func (r Rank) BonusBps() uint16 {
	switch r {
	case RankSpecter:
		return 10100
	case RankWraith:
		return 10250
	case RankPhantom:
		return 10500
	case RankReaper:
		return 11000
	default:
		return 10000
	}
}
