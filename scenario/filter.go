package scenario

import "blackjack-trainer/strategy"

// FilterKind discriminates the training focus variants.
type FilterKind int

const (
	// Unconstrained allows any category and any dealer card.
	Unconstrained FilterKind = iota
	// ByDealerStrength restricts the dealer card to one strength group.
	ByDealerStrength
	// ByCategory fixes the hand category.
	ByCategory
	// Absolutes restricts to the always/never situations.
	Absolutes
)

// Filter narrows what Generate may produce. Only the field matching the
// kind is meaningful.
type Filter struct {
	Kind     FilterKind
	Strength strategy.DealerStrength
	Category strategy.HandCategory
}

// Any allows every category and dealer card.
func Any() Filter {
	return Filter{Kind: Unconstrained}
}

// ForStrength restricts the dealer card to the given strength group.
func ForStrength(s strategy.DealerStrength) Filter {
	return Filter{Kind: ByDealerStrength, Strength: s}
}

// ForCategory fixes the hand category.
func ForCategory(c strategy.HandCategory) Filter {
	return Filter{Kind: ByCategory, Category: c}
}

// AbsolutesOnly restricts to the fixed absolute-rule situations.
func AbsolutesOnly() Filter {
	return Filter{Kind: Absolutes}
}
