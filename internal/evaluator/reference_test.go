package evaluator

import (
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-mcts/internal/deck"
	"github.com/lox/holdem-mcts/internal/randutil"
)

// toReference converts a card to the paulhankin/poker representation, where
// the ace is rank 1.
func toReference(t *testing.T, c deck.Card) poker.Card {
	t.Helper()

	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}

	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}

	card, err := poker.MakeCard(s, r)
	require.NoError(t, err)
	return card
}

func referenceScore(t *testing.T, cards []deck.Card) int16 {
	t.Helper()
	var hand [7]poker.Card
	for i, c := range cards {
		hand[i] = toReference(t, c)
	}
	return poker.Eval7(&hand)
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// TestShowdownsMatchReferenceEvaluator plays random heads-up showdowns and
// checks the ordering agrees with an independent evaluator, ties included.
func TestShowdownsMatchReferenceEvaluator(t *testing.T) {
	rng := randutil.New(7)
	d := deck.NewDeck(rng)

	for i := range 20000 {
		s, err := d.Sample(9)
		require.NoError(t, err)
		c := s.Cards()

		board := c[4:9]
		heroCards := append([]deck.Card{c[0], c[1]}, board...)
		villainCards := append([]deck.Card{c[2], c[3]}, board...)

		hero := MustEvaluate(heroCards)
		villain := MustEvaluate(villainCards)

		// Higher reference score is the stronger hand
		want := sign(int(referenceScore(t, heroCards)) - int(referenceScore(t, villainCards)))
		got := Order(hero, villain)
		require.Equal(t, want, got, "showdown %d: %s (%s) vs %s (%s)", i,
			deck.FormatCards(heroCards), hero, deck.FormatCards(villainCards), villain)

		s.Restore()
	}
}
