package mcts

import (
	rand "math/rand/v2"

	"github.com/lox/holdem-mcts/internal/deck"
	"github.com/lox/holdem-mcts/internal/evaluator"
	"github.com/lox/holdem-mcts/internal/randutil"
)

// search is the state of one MCTS invocation. It is not safe for concurrent use.
type search struct {
	tree        *Tree
	deck        *deck.Deck
	rng         *rand.Rand
	hand        []deck.Card
	community   []deck.Card
	exploration float64

	iterations   int
	showdowns    int
	showdownWins int

	// reused across showdowns
	hero    []deck.Card
	villain []deck.Card
}

func newSearch(req Request, seed int64, exploration float64) *search {
	rng := randutil.New(seed)
	known := append(append([]deck.Card{}, req.Hand...), req.Community...)
	return &search{
		tree:        NewTree(req.Round),
		deck:        deck.NewDeckWithout(rng, known...),
		rng:         rng,
		hand:        req.Hand,
		community:   req.Community,
		exploration: exploration,
		hero:        make([]deck.Card, 0, 7),
		villain:     make([]deck.Card, 0, 7),
	}
}

// iterate runs one select, expand, rollout, backpropagate cycle
func (s *search) iterate() error {
	id := s.tree.Root()
	for s.tree.Node(id).Expanded() {
		id = s.tree.SelectChild(id, s.exploration)
	}

	if _, _, ok := s.tree.Expand(id); ok {
		id = s.tree.SelectChild(id, s.exploration)
	}

	value, err := s.rollout(id)
	if err != nil {
		return err
	}
	s.tree.Backpropagate(id, value)
	s.iterations++
	return nil
}

// rollout plays the hand out from id with uniformly random stay/fold choices
// at each remaining decision. Folding scores 0 without a showdown.
func (s *search) rollout(id NodeID) (float64, error) {
	n := s.tree.Node(id)
	if n.Folded() {
		return 0, nil
	}
	for r := n.Round; !r.Terminal(); r = r.Next() {
		if s.rng.IntN(2) == 0 {
			return 0, nil
		}
	}
	return s.showdown()
}

// showdown deals the rest of the board and an opponent hand, then returns the
// sampled cards to the deck.
func (s *search) showdown() (float64, error) {
	missing := 5 - len(s.community)
	sample, err := s.deck.Sample(missing + 2)
	if err != nil {
		return 0, err
	}
	defer sample.Restore()

	drawn := sample.Cards()
	board, opponent := drawn[:missing], drawn[missing:]

	s.hero = append(append(append(s.hero[:0], s.hand...), s.community...), board...)
	s.villain = append(append(append(s.villain[:0], opponent...), s.community...), board...)

	hero, err := evaluator.Evaluate(s.hero)
	if err != nil {
		return 0, err
	}
	villain, err := evaluator.Evaluate(s.villain)
	if err != nil {
		return 0, err
	}

	s.showdowns++
	if evaluator.Compare(hero, villain) == evaluator.TrackedWins {
		s.showdownWins++
		return 1, nil
	}
	return 0, nil
}
