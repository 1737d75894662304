package queue

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

type EventType string

const (
	EventTypeHarvest     EventType = "harvest"
	EventTypeAchievement EventType = "achievement"
	EventTypeVault       EventType = "vault"
)

// Event is a message published after a vault mutation has been committed.
type Event interface {
	Type() EventType
	// ID is deterministic so consumers can drop redelivered messages.
	ID() string
}

type HarvestEvent struct {
	Owner         string `json:"owner"`
	AssetID       string `json:"asset_id"`
	Rewards       uint64 `json:"rewards"`
	SoulTax       uint64 `json:"soul_tax"`
	CharityAmount uint64 `json:"charity_amount"`
	NetReward     uint64 `json:"net_reward"`
	SoulsEarned   uint64 `json:"souls_earned"`
	Timestamp     int64  `json:"timestamp"`
}

func (e *HarvestEvent) Type() EventType { return EventTypeHarvest }

func (e *HarvestEvent) ID() string {
	return eventID(EventTypeHarvest, e.Owner+":"+e.AssetID, e.Timestamp, e.Rewards, e.NetReward, e.SoulsEarned)
}

type AchievementEvent struct {
	Owner         string   `json:"owner"`
	NewlyUnlocked []string `json:"newly_unlocked"`
	PointsEarned  uint32   `json:"points_earned"`
	TotalPoints   uint32   `json:"total_points"`
	RankName      string   `json:"rank_name"`
	Timestamp     int64    `json:"timestamp"`
}

func (e *AchievementEvent) Type() EventType { return EventTypeAchievement }

func (e *AchievementEvent) ID() string {
	key := e.Owner
	for _, name := range e.NewlyUnlocked {
		key += "\x00" + name
	}
	return eventID(EventTypeAchievement, key, e.Timestamp, uint64(e.TotalPoints))
}

type VaultAction string

const (
	VaultActionCreated  VaultAction = "created"
	VaultActionDeposit  VaultAction = "deposit"
	VaultActionWithdraw VaultAction = "withdraw"
	VaultActionAccrue   VaultAction = "accrue"
	VaultActionClosed   VaultAction = "closed"
)

type VaultEvent struct {
	Owner     string      `json:"owner"`
	AssetID   string      `json:"asset_id"`
	Action    VaultAction `json:"action"`
	Amount    uint64      `json:"amount"`
	Balance   uint64      `json:"balance"`
	Timestamp int64       `json:"timestamp"`
}

func (e *VaultEvent) Type() EventType { return EventTypeVault }

func (e *VaultEvent) ID() string {
	return eventID(EventTypeVault, e.Owner+":"+e.AssetID+":"+string(e.Action), e.Timestamp, e.Amount, e.Balance)
}

// eventID hashes the event identity together with the amounts it carries, so
// two mutations of the same vault within one second get different ids.
func eventID(typ EventType, key string, timestamp int64, amounts ...uint64) string {
	buf := make([]byte, 0, len(typ)+len(key)+10+8*len(amounts))
	buf = append(buf, string(typ)...)
	buf = append(buf, 0)
	buf = append(buf, key...)
	buf = append(buf, 0)
	buf = binary.BigEndian.AppendUint64(buf, uint64(timestamp))
	for _, amount := range amounts {
		buf = binary.BigEndian.AppendUint64(buf, amount)
	}
	return chainhash.HashH(buf).String()
}
