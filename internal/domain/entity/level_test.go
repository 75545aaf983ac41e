package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		wantTier string
		wantNext string
		toNext   int
	}{
		{name: "empty ledger", total: 0, wantTier: "Explorer", wantNext: "Traveler", toNext: 50},
		{name: "top of explorer", total: 49, wantTier: "Explorer", wantNext: "Traveler", toNext: 1},
		{name: "bottom of traveler", total: 50, wantTier: "Traveler", wantNext: "Adventurer", toNext: 100},
		{name: "top of traveler", total: 149, wantTier: "Traveler", wantNext: "Adventurer", toNext: 1},
		{name: "bottom of adventurer", total: 150, wantTier: "Adventurer", wantNext: "Ambassador", toNext: 150},
		{name: "top of ambassador", total: 499, wantTier: "Ambassador", wantNext: "Legend", toNext: 1},
		{name: "bottom of legend", total: 500, wantTier: "Legend"},
		{name: "far past legend", total: 1_000_000, wantTier: "Legend"},
		{name: "negative balance", total: -10, wantTier: "Explorer", wantNext: "Traveler", toNext: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := LevelFor(tt.total)

			assert.Equal(t, tt.wantTier, level.CurrentTier)
			assert.Equal(t, tt.toNext, level.PointsToNext)
			assert.NotEmpty(t, level.Benefits)
			if tt.wantNext == "" {
				assert.Nil(t, level.NextTier)

				return
			}
			require.NotNil(t, level.NextTier)
			assert.Equal(t, tt.wantNext, *level.NextTier)
		})
	}
}

func TestLevelFor_BenefitsAreCopied(t *testing.T) {
	level := LevelFor(0)
	level.Benefits[0] = "changed"

	assert.Equal(t, "Personalized recommendations", Tiers[0].Benefits[0])
}
