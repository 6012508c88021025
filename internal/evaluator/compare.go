package evaluator

// Outcome is the result of a showdown from the tracked player's point of view
type Outcome int

const (
	// OtherWinsOrTie means the tracked player did not win. Ties count as losses.
	OtherWinsOrTie Outcome = iota
	// TrackedWins means the tracked player's hand is strictly stronger.
	TrackedWins
)

// String returns a readable outcome
func (o Outcome) String() string {
	if o == TrackedWins {
		return "win"
	}
	return "loss"
}

// Order returns 1 if a is stronger than b, -1 if weaker and 0 if neither list
// of kickers decides. Kickers are compared from the tail, and only as far as
// the shorter list reaches.
func Order(a, b Hand) int {
	if a.Category != b.Category {
		if a.Category < b.Category {
			return 1
		}
		return -1
	}

	i, j := len(a.Kickers)-1, len(b.Kickers)-1
	for ; i >= 0 && j >= 0; i, j = i-1, j-1 {
		switch {
		case a.Kickers[i] > b.Kickers[j]:
			return 1
		case a.Kickers[i] < b.Kickers[j]:
			return -1
		}
	}
	return 0
}

// Compare decides a showdown between the tracked hand and another hand
func Compare(tracked, other Hand) Outcome {
	if Order(tracked, other) > 0 {
		return TrackedWins
	}
	return OtherWinsOrTie
}
