package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrEmptyDeck is returned when more cards are requested than remain
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is a set of undrawn cards. Draws are uniformly random using the
// deck's own RNG, so a deck must not be shared between goroutines.
type Deck struct {
	cards  []Card
	inDeck [52]bool
	rng    *rand.Rand
}

// NewDeck creates a full 52-card deck drawing with rng
func NewDeck(rng *rand.Rand) *Deck {
	return NewDeckWithout(rng)
}

// NewDeckWithout creates a deck holding every card except the excluded ones
func NewDeckWithout(rng *rand.Rand, excluded ...Card) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}

	var skip [52]bool
	for _, c := range excluded {
		if c.Valid() {
			skip[c.Index()] = true
		}
	}

	for i := range 52 {
		if skip[i] {
			continue
		}
		d.cards = append(d.cards, CardFromIndex(i))
		d.inDeck[i] = true
	}
	return d
}

// Draw removes and returns a uniformly random card
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	return d.take(d.rng.IntN(len(d.cards))), nil
}

// take swap-removes the card at position i
func (d *Deck) take(i int) Card {
	card := d.cards[i]
	last := len(d.cards) - 1
	d.cards[i] = d.cards[last]
	d.cards = d.cards[:last]
	d.inDeck[card.Index()] = false
	return card
}

// Sample draws n cards that can later be put back with Restore. If fewer than
// n cards remain the deck is left untouched.
func (d *Deck) Sample(n int) (*Sample, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample size %d is negative", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: need %d cards, %d remaining", ErrEmptyDeck, n, len(d.cards))
	}

	s := &Sample{deck: d, cards: make([]Card, n)}
	for i := range s.cards {
		s.cards[i] = d.take(d.rng.IntN(len(d.cards)))
	}
	return s, nil
}

// Remaining returns the number of undrawn cards
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Contains reports whether c is still in the deck
func (d *Deck) Contains(c Card) bool {
	return c.Valid() && d.inDeck[c.Index()]
}

// Cards returns a copy of the undrawn cards in no particular order
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func (d *Deck) put(c Card) {
	if d.inDeck[c.Index()] {
		return
	}
	d.inDeck[c.Index()] = true
	d.cards = append(d.cards, c)
}

// Sample is a batch of speculatively drawn cards
type Sample struct {
	deck     *Deck
	cards    []Card
	restored bool
}

// Cards returns the sampled cards. The slice must not be modified.
func (s *Sample) Cards() []Card {
	return s.cards
}

// Restore returns every sampled card to the deck. Calling it again is a no-op.
func (s *Sample) Restore() {
	if s.restored {
		return
	}
	s.restored = true
	for _, c := range s.cards {
		s.deck.put(c)
	}
}
