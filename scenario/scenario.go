package scenario

import (
	"fmt"

	"blackjack-trainer/strategy"
)

// Scenario is a single generated practice situation. For pairs PlayerTotal
// holds the rank of the paired card (11 for A,A), matching how the chart
// keys pair decisions; for hard and soft hands it is the hand total.
type Scenario struct {
	Category    strategy.HandCategory
	PlayerCards []int
	PlayerTotal int
	DealerCard  int
}

// Validate checks the hand validity rules. A generator that emits an
// invalid scenario is broken, so callers are expected to treat a non-nil
// error as a programming error.
func (s Scenario) Validate() error {
	if s.DealerCard < 2 || s.DealerCard > 11 {
		return fmt.Errorf("dealer card %d out of range", s.DealerCard)
	}
	if len(s.PlayerCards) == 0 {
		return fmt.Errorf("no player cards")
	}
	for _, card := range s.PlayerCards {
		if card < 2 || card > 11 {
			return fmt.Errorf("player card %d out of range", card)
		}
	}
	switch s.Category {
	case strategy.Pair:
		if len(s.PlayerCards) != 2 || s.PlayerCards[0] != s.PlayerCards[1] {
			return fmt.Errorf("pair hand %v is not two equal ranks", s.PlayerCards)
		}
		if s.PlayerTotal != s.PlayerCards[0] {
			return fmt.Errorf("pair total %d does not match rank %d", s.PlayerTotal, s.PlayerCards[0])
		}
	case strategy.Soft:
		if len(s.PlayerCards) != 2 || s.PlayerCards[0] != 11 {
			return fmt.Errorf("soft hand %v must be an ace plus one card", s.PlayerCards)
		}
		if s.PlayerCards[0]+s.PlayerCards[1] != s.PlayerTotal {
			return fmt.Errorf("soft hand %v does not sum to %d", s.PlayerCards, s.PlayerTotal)
		}
	case strategy.Hard:
		sum := 0
		for _, card := range s.PlayerCards {
			if card == 11 {
				return fmt.Errorf("hard hand %v contains an ace counted as 11", s.PlayerCards)
			}
			sum += card
		}
		if sum != s.PlayerTotal {
			return fmt.Errorf("hard hand %v sums to %d, want %d", s.PlayerCards, sum, s.PlayerTotal)
		}
	default:
		return fmt.Errorf("unknown hand category %d", int(s.Category))
	}
	return nil
}
