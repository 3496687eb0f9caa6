// Package game holds the client-side domain types shared by the screens:
// sanctuary monsters, dungeon runs, and home-base expeditions.
package game

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Element is a monster's elemental affinity.
type Element string

// Known elements. The server may introduce new ones; unknown values pass
// through untouched so old clients keep rendering.
const (
	ElementNeutral Element = "neutral"
	ElementEmber   Element = "ember"
	ElementTide    Element = "tide"
	ElementGale    Element = "gale"
	ElementStone   Element = "stone"
	ElementUmbra   Element = "umbra"
)

// Rarity is a monster's rarity tier, ordered from common to mythic.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityMythic
)

// String returns the display name of the rarity tier.
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityMythic:
		return "mythic"
	default:
		return "unknown"
	}
}

// Monster is one creature in the player's sanctuary.
type Monster struct {
	ID        ulid.ULID
	Name      string
	Species   string
	Element   Element
	Rarity    Rarity
	Level     int
	BondLevel int
	CaughtAt  time.Time
}

// RunOutcome describes how a dungeon run ended.
type RunOutcome string

const (
	RunCleared   RunOutcome = "cleared"
	RunRetreated RunOutcome = "retreated"
	RunDefeated  RunOutcome = "defeated"
	RunOngoing   RunOutcome = "ongoing"
)

// DungeonRun is one expedition into a dungeon, past or in progress.
type DungeonRun struct {
	ID        ulid.ULID
	Dungeon   string
	Depth     int
	Outcome   RunOutcome
	GoldFound int
	StartedAt time.Time
}

// Expedition is a home-base task a monster squad is dispatched on.
type Expedition struct {
	ID       ulid.ULID
	Name     string
	Squad    []string
	Duration time.Duration
	Reward   string
	Complete bool
}
