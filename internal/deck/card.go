package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit int

const (
	Diamonds Suit = iota
	Clubs
	Hearts
	Spades
)

// NumSuits is the number of distinct suits
const NumSuits = 4

// String returns the single-letter suit symbol used in card notation
func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Diamonds && s <= Spades
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// LowAce is the value an Ace takes when it completes a wheel straight
const LowAce Rank = 1

// NumRanks is the number of distinct ranks
const NumRanks = 13

const rankSymbols = "23456789TJQKA"

// String returns the single-character rank symbol
func (r Rank) String() string {
	if r == LowAce {
		return "A"
	}
	if !r.Valid() {
		return "?"
	}
	return string(rankSymbols[r-Two])
}

// Valid reports whether r is in 2..14
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two-character form of the card (e.g., "AS")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Valid reports whether the card has a valid rank and suit
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// Index maps the card to 0..51, rank-major
func (c Card) Index() int {
	return int(c.Rank-Two)*NumSuits + int(c.Suit)
}

// CardFromIndex is the inverse of Card.Index
func CardFromIndex(i int) Card {
	return Card{Rank: Two + Rank(i/NumSuits), Suit: Suit(i % NumSuits)}
}

// ParseCard parses a two-character card such as "AS" or "td"
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w %q: want 2 characters", ErrInvalidCard, s)
	}
	rank, err := parseRank(s[0])
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %v", ErrInvalidCard, s, err)
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %v", ErrInvalidCard, s, err)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a string of card notation into a slice of cards.
// Whitespace and commas between cards are ignored, so "AS KD" and "ASKD"
// are equivalent.
func ParseCards(s string) ([]Card, error) {
	s = strings.NewReplacer(" ", "", ",", "", "\t", "").Replace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: card string length %d is odd", ErrInvalidCard, len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards joins the cards' text forms with spaces
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// FindDuplicate returns the first card that appears more than once
func FindDuplicate(groups ...[]Card) (Card, bool) {
	var seen [52]bool
	for _, group := range groups {
		for _, c := range group {
			if !c.Valid() {
				continue
			}
			if seen[c.Index()] {
				return c, true
			}
			seen[c.Index()] = true
		}
	}
	return Card{}, false
}

func parseRank(c byte) (Rank, error) {
	i := strings.IndexByte(rankSymbols, upper(c))
	if i < 0 {
		return 0, fmt.Errorf("unknown rank '%c'", c)
	}
	return Two + Rank(i), nil
}

func parseSuit(c byte) (Suit, error) {
	switch upper(c) {
	case 'D':
		return Diamonds, nil
	case 'C':
		return Clubs, nil
	case 'H':
		return Hearts, nil
	case 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
