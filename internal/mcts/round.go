package mcts

import (
	"fmt"
	"strings"
)

// Round is a betting round at which the tracked player decides to stay or
// fold. The round is named after what has not been dealt yet.
type Round int

const (
	PreFlop Round = iota
	PreTurn
	PreRiver
	River
)

// String returns the round name
func (r Round) String() string {
	switch r {
	case PreFlop:
		return "pre-flop"
	case PreTurn:
		return "pre-turn"
	case PreRiver:
		return "pre-river"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// CommunityCards returns how many community cards are known at this round
func (r Round) CommunityCards() int {
	switch r {
	case PreFlop:
		return 0
	case PreTurn:
		return 3
	case PreRiver:
		return 4
	default:
		return 5
	}
}

// Terminal reports whether no decision remains, so the hand goes to showdown
func (r Round) Terminal() bool {
	return r >= River
}

// Next returns the following round. River is its own successor.
func (r Round) Next() Round {
	if r.Terminal() {
		return River
	}
	return r + 1
}

// Valid reports whether r is one of the four rounds
func (r Round) Valid() bool {
	return r >= PreFlop && r <= River
}

// RoundForBoard returns the round matching a count of known community cards
func RoundForBoard(n int) (Round, error) {
	switch n {
	case 0:
		return PreFlop, nil
	case 3:
		return PreTurn, nil
	case 4:
		return PreRiver, nil
	case 5:
		return River, nil
	default:
		return 0, fmt.Errorf("no betting round has %d community cards", n)
	}
}

// ParseRound parses a round name such as "pre-flop", "preflop" or "river"
func ParseRound(s string) (Round, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "pre-flop", "preflop":
		return PreFlop, nil
	case "pre-turn", "preturn", "flop":
		return PreTurn, nil
	case "pre-river", "preriver", "turn":
		return PreRiver, nil
	case "river":
		return River, nil
	default:
		return 0, fmt.Errorf("unknown round %q", s)
	}
}
