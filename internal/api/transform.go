package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/moongate-games/sanctum/internal/game"
)

// Wire payloads use snake_case names, string enums, and numeric rarity
// tiers; the transformers below map them onto the domain types the screens
// consume. Unknown enum values pass through lowered rather than failing, so
// an older client keeps working against a newer server.

func monsterFromRecord(rec MonsterRecord) (game.Monster, error) {
	id, err := ulid.Parse(rec.ID)
	if err != nil {
		return game.Monster{}, fmt.Errorf("monster %q: bad id: %w", rec.DisplayName, err)
	}

	caughtAt, err := time.Parse(time.RFC3339, rec.CaughtAt)
	if err != nil {
		// Capture timestamps are decorative; a missing one is not worth
		// dropping the record over.
		caughtAt = time.Time{}
	}

	return game.Monster{
		ID:        id,
		Name:      rec.DisplayName,
		Species:   rec.SpeciesSlug,
		Element:   elementFromWire(rec.Element),
		Rarity:    rarityFromTier(rec.RarityTier),
		Level:     rec.Level,
		BondLevel: rec.BondLevel,
		CaughtAt:  caughtAt,
	}, nil
}

func runFromRecord(rec DungeonRunRecord) (game.DungeonRun, error) {
	id, err := ulid.Parse(rec.ID)
	if err != nil {
		return game.DungeonRun{}, fmt.Errorf("dungeon run: bad id: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339, rec.StartedAt)
	if err != nil {
		startedAt = time.Time{}
	}

	return game.DungeonRun{
		ID:        id,
		Dungeon:   rec.DungeonSlug,
		Depth:     rec.Depth,
		Outcome:   outcomeFromWire(rec.Outcome),
		GoldFound: rec.GoldFound,
		StartedAt: startedAt,
	}, nil
}

func expeditionFromRecord(rec ExpeditionRecord) (game.Expedition, error) {
	id, err := ulid.Parse(rec.ID)
	if err != nil {
		return game.Expedition{}, fmt.Errorf("expedition %q: bad id: %w", rec.DisplayName, err)
	}

	return game.Expedition{
		ID:       id,
		Name:     rec.DisplayName,
		Squad:    rec.Squad,
		Duration: time.Duration(rec.DurationSecs) * time.Second,
		Reward:   rec.Reward,
		Complete: rec.Complete,
	}, nil
}

func elementFromWire(raw string) game.Element {
	return game.Element(strings.ToLower(strings.TrimSpace(raw)))
}

func outcomeFromWire(raw string) game.RunOutcome {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cleared":
		return game.RunCleared
	case "retreated":
		return game.RunRetreated
	case "defeated":
		return game.RunDefeated
	default:
		return game.RunOngoing
	}
}

// rarityFromTier clamps the server's numeric tier into the known range.
func rarityFromTier(tier int) game.Rarity {
	switch {
	case tier < int(game.RarityCommon):
		return game.RarityCommon
	case tier > int(game.RarityMythic):
		return game.RarityMythic
	default:
		return game.Rarity(tier)
	}
}
