package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moongate-games/sanctum/internal/game"
)

func TestRarityFromTier(t *testing.T) {
	tests := []struct {
		name string
		tier int
		want game.Rarity
	}{
		{"negative clamps to common", -3, game.RarityCommon},
		{"zero is common", 0, game.RarityCommon},
		{"in range passes through", 2, game.RarityRare},
		{"above range clamps to mythic", 99, game.RarityMythic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rarityFromTier(tt.tier))
		})
	}
}

func TestOutcomeFromWire(t *testing.T) {
	assert.Equal(t, game.RunCleared, outcomeFromWire("cleared"))
	assert.Equal(t, game.RunRetreated, outcomeFromWire("  Retreated "))
	assert.Equal(t, game.RunDefeated, outcomeFromWire("DEFEATED"))
	assert.Equal(t, game.RunOngoing, outcomeFromWire("something-new"))
	assert.Equal(t, game.RunOngoing, outcomeFromWire(""))
}

func TestMonsterFromRecord_BadTimestampTolerated(t *testing.T) {
	rec := MonsterRecord{
		ID:          "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		DisplayName: "Cinderpaw",
		SpeciesSlug: "ember-fox",
		Element:     "Ember",
		RarityTier:  1,
		Level:       12,
		BondLevel:   3,
		CaughtAt:    "not-a-timestamp",
	}

	m, err := monsterFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, "Cinderpaw", m.Name)
	assert.Equal(t, game.ElementEmber, m.Element)
	assert.True(t, m.CaughtAt.IsZero())
}

func TestMonsterFromRecord_BadIDFails(t *testing.T) {
	_, err := monsterFromRecord(MonsterRecord{ID: "nope", DisplayName: "Cinderpaw"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad id")
}

func TestExpeditionFromRecord(t *testing.T) {
	rec := ExpeditionRecord{
		ID:           "01BX5ZZKBKACTAV9WEVGEMMVRZ",
		DisplayName:  "Gale Ridge Survey",
		Squad:        []string{"Cinderpaw", "Mosswing"},
		DurationSecs: 5400,
		Reward:       "250 gold",
		Complete:     true,
	}

	e, err := expeditionFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, e.Duration)
	assert.Len(t, e.Squad, 2)
	assert.True(t, e.Complete)
}
