package evaluator

import (
	"testing"

	"github.com/lox/holdem-mcts/internal/deck"
	"github.com/lox/holdem-mcts/internal/randutil"
)

// random7CardHands deals n 7-card hands from a fixed seed
func random7CardHands(seed int64, n int) [][]deck.Card {
	rng := randutil.New(seed)
	hands := make([][]deck.Card, n)
	for i := range hands {
		d := deck.NewDeck(rng)
		hand := make([]deck.Card, 7)
		for j := range hand {
			hand[j], _ = d.Draw()
		}
		hands[i] = hand
	}
	return hands
}

// tortureCases exercise each branch of the evaluator
var tortureCases = []struct {
	name  string
	cards string
}{
	{"RoyalFlush", "ASKSQSJSTS2H3D"},
	{"StraightFlush", "9H8H7H6H5H2C3D"},
	{"FourOfAKind", "ASAHADACKS2H3D"},
	{"FullHouse", "KSKHKDQCQS2H3D"},
	{"Flush", "ACJC9C7C5C2H3D"},
	{"Straight", "TS9H8D7C6S2H3D"},
	{"WheelStraight", "AS5H4D3C2SKHQD"},
	{"ThreeOfAKind", "JSJHJD9C7S2H3D"},
	{"TwoPair", "KSKHTDTC5S2H3D"},
	{"OnePair", "8S8HADKC4S2H3D"},
	{"HighCard", "ASKHQDJC9S2H3D"},
}

func BenchmarkEvaluate_RandomHands(b *testing.B) {
	hands := random7CardHands(42, 10000)
	b.ResetTimer()

	for i := 0; b.Loop(); i++ {
		_, _ = Evaluate(hands[i%len(hands)])
	}
}

func BenchmarkEvaluate_TortureCases(b *testing.B) {
	for _, tc := range tortureCases {
		cards := deck.MustParseCards(tc.cards)
		b.Run(tc.name, func(b *testing.B) {
			for b.Loop() {
				_, _ = Evaluate(cards)
			}
		})
	}
}

func BenchmarkCompare(b *testing.B) {
	hands := random7CardHands(7, 2000)
	evaluated := make([]Hand, len(hands))
	for i, h := range hands {
		evaluated[i] = MustEvaluate(h)
	}
	b.ResetTimer()

	for i := 0; b.Loop(); i++ {
		_ = Compare(evaluated[i%len(evaluated)], evaluated[(i+1)%len(evaluated)])
	}
}

func TestTortureCasesEvaluate(t *testing.T) {
	want := []Category{RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush, Straight,
		Straight, ThreeOfAKind, TwoPair, OnePair, HighCard}

	for i, tc := range tortureCases {
		hand, err := Evaluate(deck.MustParseCards(tc.cards))
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if hand.Category != want[i] {
			t.Errorf("%s: got %s, want %s", tc.name, hand.Category, want[i])
		}
	}
}
