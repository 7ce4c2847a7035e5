package strategy

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is a single player decision.
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
	NoSplit
)

// Code returns the canonical one-letter code for the action, as stored in
// the chart and accepted on input: H, S, D, Y or N.
func (a Action) Code() string {
	switch a {
	case Hit:
		return "H"
	case Stand:
		return "S"
	case Double:
		return "D"
	case Split:
		return "Y"
	case NoSplit:
		return "N"
	default:
		return "?"
	}
}

// String returns the full word used for display.
func (a Action) String() string {
	switch a {
	case Hit:
		return "HIT"
	case Stand:
		return "STAND"
	case Double:
		return "DOUBLE"
	case Split:
		return "SPLIT"
	case NoSplit:
		return "NO SPLIT"
	default:
		return "UNKNOWN"
	}
}

// ParseAction parses a one-letter action code, case-insensitively.
// The UI synonym "P" for split normalizes to Split.
func ParseAction(s string) (Action, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H":
		return Hit, nil
	case "S":
		return Stand, nil
	case "D":
		return Double, nil
	case "Y", "P":
		return Split, nil
	case "N":
		return NoSplit, nil
	}
	return 0, fmt.Errorf("unknown action code %q", s)
}

// HandCategory discriminates the three sub-tables of the chart.
type HandCategory int

const (
	// Hard is a hand with no ace, or with every ace counted as 1.
	Hard HandCategory = iota
	// Soft is a hand with exactly one ace counted as 11.
	Soft
	// Pair is two cards of identical rank, eligible for a split decision.
	Pair
)

func (c HandCategory) String() string {
	switch c {
	case Hard:
		return "hard"
	case Soft:
		return "soft"
	case Pair:
		return "pair"
	default:
		return "unknown"
	}
}

// CardString renders a card value for display, with 11 shown as an ace.
func CardString(card int) string {
	if card == 11 {
		return "A"
	}
	return strconv.Itoa(card)
}
