// Package evaluator ranks Texas Hold'em hands of five to seven cards into a
// category and an ordered kicker list that totally orders hands.
package evaluator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lox/holdem-mcts/internal/deck"
)

// ErrInvalidHand is returned for inputs that are not 5-7 distinct valid cards
var ErrInvalidHand = errors.New("invalid hand")

// lowAceBit marks an ace playing low in a rank bitmask
const lowAceBit = 1 << deck.LowAce

// Evaluate returns the best category and kickers for 5, 6 or 7 cards.
// The result depends only on the set of cards, not their order.
func Evaluate(cards []deck.Card) (Hand, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return Hand{}, fmt.Errorf("%w: need 5 to 7 cards, got %d", ErrInvalidHand, len(cards))
	}

	var (
		rankCounts [deck.Ace + 1]int
		suitCounts [deck.NumSuits]int
		suitMasks  [deck.NumSuits]uint16
		rankMask   uint16
		seen       [52]bool
	)

	for _, c := range cards {
		if !c.Valid() {
			return Hand{}, fmt.Errorf("%w: card %v is not a valid card", ErrInvalidHand, c)
		}
		if seen[c.Index()] {
			return Hand{}, fmt.Errorf("%w: duplicate card %s", ErrInvalidHand, c)
		}
		seen[c.Index()] = true

		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
		suitMasks[c.Suit] |= 1 << c.Rank
		rankMask |= 1 << c.Rank
	}

	// At most one suit can hold five of seven cards
	flushSuit := -1
	for s, n := range suitCounts {
		if n >= 5 {
			flushSuit = s
		}
	}

	if flushSuit >= 0 {
		if high, ok := straightHigh(suitMasks[flushSuit]); ok {
			if high == int(deck.Ace) {
				return Hand{Category: RoyalFlush, Kickers: straightRun(high)}, nil
			}
			return Hand{Category: StraightFlush, Kickers: straightRun(high)}, nil
		}
	}

	// Group ranks by multiplicity, highest rank first
	var quads, trips, pairs []int
	for r := int(deck.Ace); r >= int(deck.Two); r-- {
		switch rankCounts[r] {
		case 4:
			quads = append(quads, r)
		case 3:
			trips = append(trips, r)
		case 2:
			pairs = append(pairs, r)
		}
	}

	if len(quads) > 0 {
		q := quads[0]
		return Hand{Category: FourOfAKind, Kickers: ascending(highestRanks(rankCounts, 1, q), q)}, nil
	}

	if len(trips) > 0 && (len(trips) > 1 || len(pairs) > 0) {
		t := trips[0]
		p := 0
		if len(trips) > 1 {
			p = trips[1]
		}
		if len(pairs) > 0 && pairs[0] > p {
			p = pairs[0]
		}
		return Hand{Category: FullHouse, Kickers: []int{p, t}}, nil
	}

	if flushSuit >= 0 {
		return Hand{Category: Flush, Kickers: ascending(maskRanks(suitMasks[flushSuit], 5))}, nil
	}

	if high, ok := straightHigh(rankMask); ok {
		return Hand{Category: Straight, Kickers: straightRun(high)}, nil
	}

	if len(trips) > 0 {
		t := trips[0]
		return Hand{Category: ThreeOfAKind, Kickers: ascending(highestRanks(rankCounts, 2, t), t)}, nil
	}

	if len(pairs) >= 2 {
		hi, lo := pairs[0], pairs[1]
		kickers := ascending(highestRanks(rankCounts, 1, hi, lo), lo, hi)
		return Hand{Category: TwoPair, Kickers: kickers}, nil
	}

	if len(pairs) == 1 {
		p := pairs[0]
		return Hand{Category: OnePair, Kickers: ascending(highestRanks(rankCounts, 3, p), p)}, nil
	}

	return Hand{Category: HighCard, Kickers: ascending(maskRanks(rankMask, 5))}, nil
}

// MustEvaluate evaluates cards and panics on error (for tests)
func MustEvaluate(cards []deck.Card) Hand {
	h, err := Evaluate(cards)
	if err != nil {
		panic(fmt.Sprintf("failed to evaluate %s: %v", deck.FormatCards(cards), err))
	}
	return h
}

// straightHigh returns the top rank of the highest five-rank run in mask.
// An ace also counts as rank 1, which only matters when no higher run exists.
func straightHigh(mask uint16) (int, bool) {
	if mask&(1<<deck.Ace) != 0 {
		mask |= lowAceBit
	}
	for high := int(deck.Ace); high >= int(deck.Five); high-- {
		run := uint16(0x1F) << (high - 4)
		if mask&run == run {
			return high, true
		}
	}
	return 0, false
}

// straightRun lists the five ranks ending at high, ascending
func straightRun(high int) []int {
	return []int{high - 4, high - 3, high - 2, high - 1, high}
}

// highestRanks returns up to n present ranks, highest first, skipping excluded
// ones. A rank held more than once still counts as a single kicker.
func highestRanks(counts [deck.Ace + 1]int, n int, exclude ...int) []int {
	out := make([]int, 0, n)
	for r := int(deck.Ace); r >= int(deck.Two) && len(out) < n; r-- {
		if counts[r] == 0 || slices.Contains(exclude, r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// maskRanks returns up to n ranks set in mask, highest first
func maskRanks(mask uint16, n int) []int {
	out := make([]int, 0, n)
	for r := int(deck.Ace); r >= int(deck.Two) && len(out) < n; r-- {
		if mask&(1<<r) != 0 {
			out = append(out, r)
		}
	}
	return out
}

// ascending reverses a highest-first kicker list and appends the
// category-defining ranks, which must already be in ascending order
func ascending(highFirst []int, defining ...int) []int {
	out := make([]int, 0, len(highFirst)+len(defining))
	for i := len(highFirst) - 1; i >= 0; i-- {
		out = append(out, highFirst[i])
	}
	return append(out, defining...)
}
