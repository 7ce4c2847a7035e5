package scenario

import (
	"fmt"
	"math/rand"
	"time"

	"blackjack-trainer/strategy"
)

// Practice ranges. Hard stops at 20 because 21 needs no practice, and
// soft 13-20 covers A,2 through A,9.
const (
	hardMin = 5
	hardMax = 20
	softMin = 13
	softMax = 20
)

// Generator produces valid scenarios for a training focus. It owns its
// random source; a zero seed picks a time-based one.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator. Pass a non-zero seed for a reproducible run.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces one scenario satisfying the filter. The result always
// passes Validate.
func (g *Generator) Generate(f Filter) Scenario {
	if f.Kind == Absolutes {
		return g.absolute()
	}

	dealerCard := g.dealerCard(f)

	category := f.Category
	if f.Kind != ByCategory {
		category = strategy.HandCategory(g.rng.Intn(3))
	}

	var cards []int
	var total int
	switch category {
	case strategy.Pair:
		rank := 2 + g.rng.Intn(10) // 2-11
		cards = []int{rank, rank}
		total = rank
	case strategy.Soft:
		total = softMin + g.rng.Intn(softMax-softMin+1)
		cards = []int{11, total - 11}
	case strategy.Hard:
		total = hardMin + g.rng.Intn(hardMax-hardMin+1)
		cards = g.hardCards(total)
	}

	return Scenario{
		Category:    category,
		PlayerCards: cards,
		PlayerTotal: total,
		DealerCard:  dealerCard,
	}
}

func (g *Generator) dealerCard(f Filter) int {
	if f.Kind == ByDealerStrength {
		cards := f.Strength.Cards()
		return cards[g.rng.Intn(len(cards))]
	}
	return 2 + g.rng.Intn(10) // 2-11
}

// hardCards builds a hard hand summing exactly to total with every card in
// 2-10. Totals up to 11 are a single card; above that the first card is
// drawn from the range that keeps the remainder a legal card, so a naive
// split can never force a card outside 2-10.
func (g *Generator) hardCards(total int) []int {
	if total < hardMin || total > hardMax {
		panic(fmt.Sprintf("scenario: hard total %d out of range", total))
	}
	if total <= 11 {
		return []int{total}
	}
	lo, hi := total-10, total-2
	if lo < 2 {
		lo = 2
	}
	if hi > 10 {
		hi = 10
	}
	first := lo + g.rng.Intn(hi-lo+1)
	return []int{first, total - first}
}

// The situations whose action never depends on the dealer card.
var absolutes = []struct {
	category strategy.HandCategory
	total    int
}{
	{strategy.Pair, 11}, // A,A
	{strategy.Pair, 8},
	{strategy.Pair, 10},
	{strategy.Pair, 5},
	{strategy.Hard, 17},
	{strategy.Hard, 18},
	{strategy.Hard, 19},
	{strategy.Hard, 20},
	{strategy.Soft, 19},
	{strategy.Soft, 20},
}

func (g *Generator) absolute() Scenario {
	pick := absolutes[g.rng.Intn(len(absolutes))]

	var cards []int
	switch pick.category {
	case strategy.Pair:
		cards = []int{pick.total, pick.total}
	case strategy.Soft:
		cards = []int{11, pick.total - 11}
	case strategy.Hard:
		cards = g.hardCards(pick.total)
	}

	return Scenario{
		Category:    pick.category,
		PlayerCards: cards,
		PlayerTotal: pick.total,
		DealerCard:  2 + g.rng.Intn(10),
	}
}
