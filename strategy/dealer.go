package strategy

import "fmt"

// DealerStrength classifies the dealer up-card for practice focus and
// statistics breakdowns. The three groups partition the cards 2-11.
type DealerStrength int

const (
	// Weak covers the dealer bust cards 4, 5 and 6.
	Weak DealerStrength = iota
	// Medium covers 2, 3, 7 and 8.
	Medium
	// Strong covers 9, 10 and the ace.
	Strong
)

func (d DealerStrength) String() string {
	switch d {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	default:
		return "unknown"
	}
}

// Cards returns the dealer up-cards belonging to the group.
func (d DealerStrength) Cards() []int {
	switch d {
	case Weak:
		return []int{4, 5, 6}
	case Medium:
		return []int{2, 3, 7, 8}
	case Strong:
		return []int{9, 10, 11}
	default:
		panic(fmt.Sprintf("strategy: unknown dealer strength %d", int(d)))
	}
}

// StrengthOf classifies a dealer up-card. The card must be in 2-11.
func StrengthOf(dealerCard int) DealerStrength {
	switch dealerCard {
	case 4, 5, 6:
		return Weak
	case 2, 3, 7, 8:
		return Medium
	case 9, 10, 11:
		return Strong
	default:
		panic(fmt.Sprintf("strategy: dealer card %d out of range", dealerCard))
	}
}
