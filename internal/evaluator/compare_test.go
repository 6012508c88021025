package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/holdem-mcts/internal/deck"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name    string
		tracked string
		other   string
		want    Outcome
	}{
		{"flush beats straight", "ASKSQS8S6S4H3H", "ASKHQDJCTS9H8H", TrackedWins},
		{"straight loses to flush", "ASKHQDJCTS9H8H", "ASKSQS8S6S4H3H", OtherWinsOrTie},
		{"higher pair wins", "KSKH9D7C5S3H2D", "QSQH9D7C5S3H2D", TrackedWins},
		{"kicker decides", "ASAHKD7C5S3H2D", "ADACQD7C5S3H2D", TrackedWins},
		{"wheel loses to six high", "AS2H3D4C5S", "2H3D4C5S6H", OtherWinsOrTie},
		{"full house by trips", "2S2H2DKSKH", "ASAHADQSQH", OtherWinsOrTie},
		{"full house same trips higher pair", "ASAHADKSKH", "ACADAHQSQH", TrackedWins},
		{"two pair low pair decides", "ASAHKDKS2C", "ACADQDQS9H", TrackedWins},
		{"split pot is a loss", "ASKDQH7C5S", "ADKHQC7D5H", OtherWinsOrTie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracked := MustEvaluate(deck.MustParseCards(tt.tracked))
			other := MustEvaluate(deck.MustParseCards(tt.other))
			assert.Equal(t, tt.want, Compare(tracked, other), "%s vs %s", tracked, other)
		})
	}
}

func TestCompareIdenticalHandsIsLoss(t *testing.T) {
	for _, cards := range []string{"ASKSQSJSTS", "2D2C2H2S7D", "KH9D7C4S2H", "AS2H3D4C5S"} {
		h := MustEvaluate(deck.MustParseCards(cards))
		assert.Equal(t, OtherWinsOrTie, Compare(h, h), cards)
		assert.Equal(t, 0, Order(h, h))
	}
}

func TestOrderTruncatesToShorterKickers(t *testing.T) {
	a := Hand{Category: OnePair, Kickers: []int{2, 9, 12, 13, 14}}
	b := Hand{Category: OnePair, Kickers: []int{9, 12, 13, 14}}
	assert.Equal(t, 0, Order(a, b))
	assert.Equal(t, OtherWinsOrTie, Compare(a, b))
	assert.Equal(t, OtherWinsOrTie, Compare(b, a))

	// Aces tie, then 13 beats 10
	c := Hand{Category: OnePair, Kickers: []int{10, 14}}
	assert.Equal(t, 1, Order(b, c))
	assert.Equal(t, -1, Order(c, b))
	assert.Equal(t, TrackedWins, Compare(b, c))
	assert.Equal(t, OtherWinsOrTie, Compare(c, b))
}

func TestOrderByCategory(t *testing.T) {
	for i, stronger := range Categories {
		for _, weaker := range Categories[i+1:] {
			a := Hand{Category: stronger}
			b := Hand{Category: weaker}
			assert.Equal(t, 1, Order(a, b), "%s vs %s", stronger, weaker)
			assert.Equal(t, -1, Order(b, a), "%s vs %s", weaker, stronger)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "win", TrackedWins.String())
	assert.Equal(t, "loss", OtherWinsOrTie.String())
}
