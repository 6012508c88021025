package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartingHand(t *testing.T) {
	tests := map[string]string{
		"ASAD": "AA",
		"KHAH": "AKs",
		"AHKS": "AKo",
		"2C7D": "72o",
		"TCJC": "JTs",
	}
	for in, want := range tests {
		cards := MustParseCards(in)
		assert.Equal(t, want, StartingHand(cards[0], cards[1]), in)
	}
}

func TestStartingHandPercentile(t *testing.T) {
	best, ok := StartingHandPercentile(MustParseCards("ACAH"))
	require.True(t, ok)
	assert.Equal(t, 1.0, best)

	worst, ok := StartingHandPercentile(MustParseCards("7S2D"))
	require.True(t, ok)
	assert.Zero(t, worst)

	suited, _ := StartingHandPercentile(MustParseCards("AHKH"))
	offsuit, _ := StartingHandPercentile(MustParseCards("AHKD"))
	assert.Greater(t, suited, offsuit)

	_, ok = StartingHandPercentile(MustParseCards("AH"))
	assert.False(t, ok)
}

func TestStartingHandTableIsComplete(t *testing.T) {
	seen := make(map[string]bool)
	for i := range 52 {
		for j := i + 1; j < 52; j++ {
			key := StartingHand(CardFromIndex(i), CardFromIndex(j))
			_, ok := startingHands[key]
			assert.True(t, ok, "missing %s", key)
			seen[key] = true
		}
	}
	assert.Len(t, seen, 169)
}
