package evaluator

import (
	"fmt"
	"strings"
)

// Category is a poker hand category. Lower values are stronger.
type Category int

// Hand categories (lower number = stronger hand)
const (
	RoyalFlush    Category = 1
	StraightFlush Category = 2
	FourOfAKind   Category = 3
	FullHouse     Category = 4
	Flush         Category = 5
	Straight      Category = 6
	ThreeOfAKind  Category = 7
	TwoPair       Category = 8
	OnePair       Category = 9
	HighCard      Category = 10
)

// Categories lists every category from strongest to weakest
var Categories = []Category{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, OnePair, HighCard,
}

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "One Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// Hand is an evaluated hand: its category plus the ranks that break ties
// within the category. Kickers are ascending; the last element is the most
// decisive, so comparisons walk the slice from the end.
type Hand struct {
	Category Category
	Kickers  []int
}

// String returns a representation like "Full House [13 14]"
func (h Hand) String() string {
	parts := make([]string, len(h.Kickers))
	for i, k := range h.Kickers {
		parts[i] = fmt.Sprint(k)
	}
	return fmt.Sprintf("%s [%s]", h.Category, strings.Join(parts, " "))
}
