package strategy

// Catalog selects the mnemonic or pattern text shown after a wrong answer.
// Resolution order: a curated mnemonic for the classic situations, then a
// pattern keyed on dealer strength and the charted action, then a generic
// fallback. The text never names an action other than the one the chart
// returns for the same situation.
type Catalog struct {
	chart *Chart
}

// NewCatalog builds a catalog backed by the given chart.
func NewCatalog(chart *Chart) *Catalog {
	return &Catalog{chart: chart}
}

// Curated mnemonics for the hands worth memorizing outright.
const (
	mnemonicAlwaysSplit = "Aces and eights, don't hesitate"
	mnemonicNeverSplit  = "Tens and fives, keep them alive"
	mnemonicSoft18      = "A,7 is the tricky soft hand"
	mnemonicHard12      = "12 is the exception - only stand against 4, 5 and 6"
	mnemonicFallback    = "Follow basic strategy patterns"
)

// Explain returns the feedback text for a situation. The situation must be
// inside the chart's domain.
func (c *Catalog) Explain(category HandCategory, playerTotal, dealerCard int) string {
	action := c.chart.Lookup(category, playerTotal, dealerCard)

	if text, ok := curated(category, playerTotal, action); ok {
		return text
	}
	return pattern(StrengthOf(dealerCard), action, category, playerTotal)
}

func curated(category HandCategory, playerTotal int, action Action) (string, bool) {
	switch category {
	case Pair:
		switch playerTotal {
		case 11, 8:
			return mnemonicAlwaysSplit, true
		case 10, 5:
			return mnemonicNeverSplit, true
		}
	case Soft:
		if playerTotal == 18 {
			return mnemonicSoft18, true
		}
	case Hard:
		// The hard 12 mnemonic spells out "stand", so it only applies
		// where standing is the answer.
		if playerTotal == 12 && action == Stand {
			return mnemonicHard12, true
		}
	}
	return "", false
}

func pattern(strength DealerStrength, action Action, category HandCategory, playerTotal int) string {
	if strength == Weak {
		switch action {
		case Double:
			return "Dealer shows a bust card - double down and press the advantage"
		case Split:
			return "Dealer shows a bust card - splitting puts more money against it"
		case Stand:
			return "Dealer shows a bust card - stand pat and let the dealer bust"
		case Hit:
			return "Even against a bust card this hand is too small - hit"
		}
	}
	if strength == Strong && action == Hit && category == Hard && playerTotal >= 13 && playerTotal <= 16 {
		return "Teens stay vs weak, flee from strong - keep hitting"
	}
	switch action {
	case Hit:
		return "Basic strategy says take another card here"
	case Stand:
		return "Basic strategy says stand on this one"
	case Double:
		return "Doubling turns a good spot into a bigger win"
	case Split:
		return "This pair plays stronger as two hands - split them"
	}
	return mnemonicFallback
}
