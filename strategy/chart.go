package strategy

import "fmt"

// Chart is the fully-enumerated basic-strategy decision table.
// Build it once with NewChart; it is immutable afterwards.
type Chart struct {
	hard  map[chartKey]Action
	soft  map[chartKey]Action
	pairs map[chartKey]Action
}

type chartKey struct {
	total  int
	dealer int
}

// Row literals below spell the action for dealer up-cards 2 through 11
// (ace), one letter per card. Keeping the table literal makes it easy to
// check against a printed strategy card.
var hardRows = map[int]string{
	5:  "HHHHHHHHHH",
	6:  "HHHHHHHHHH",
	7:  "HHHHHHHHHH",
	8:  "HHHHHHHHHH",
	9:  "HDDDDHHHHH",
	10: "DDDDDDDDHH",
	11: "DDDDDDDDDH",
	12: "HHSSSHHHHH",
	13: "SSSSSHHHHH",
	14: "SSSSSHHHHH",
	15: "SSSSSHHHHH",
	16: "SSSSSHHHHH",
	17: "SSSSSSSSSS",
	18: "SSSSSSSSSS",
	19: "SSSSSSSSSS",
	20: "SSSSSSSSSS",
	21: "SSSSSSSSSS",
}

var softRows = map[int]string{
	13: "HHHDDHHHHH",
	14: "HHHDDHHHHH",
	15: "HHDDDHHHHH",
	16: "HHDDDHHHHH",
	17: "HDDDDHHHHH",
	18: "SDDDDSSHHH",
	19: "SSSSSSSSSS",
	20: "SSSSSSSSSS",
}

// Pair rows are keyed by the rank of the paired card, 11 meaning A,A.
// 5,5 is played as a hard 10 and 10,10 is never broken up.
var pairRows = map[int]string{
	2:  "YYYYYYHHHH",
	3:  "YYYYYYHHHH",
	4:  "HHHYYHHHHH",
	5:  "DDDDDDDDHH",
	6:  "YYYYYHHHHH",
	7:  "YYYYYYHHHH",
	8:  "YYYYYYYYYY",
	9:  "YYYYYSYYSS",
	10: "SSSSSSSSSS",
	11: "YYYYYYYYYY",
}

// NewChart builds the complete decision table.
func NewChart() *Chart {
	return &Chart{
		hard:  buildTable(hardRows),
		soft:  buildTable(softRows),
		pairs: buildTable(pairRows),
	}
}

func buildTable(rows map[int]string) map[chartKey]Action {
	table := make(map[chartKey]Action, len(rows)*10)
	for total, row := range rows {
		if len(row) != 10 {
			panic(fmt.Sprintf("strategy: row for total %d has %d entries, want 10", total, len(row)))
		}
		for i, code := range row {
			action, err := ParseAction(string(code))
			if err != nil {
				panic(fmt.Sprintf("strategy: row for total %d: %v", total, err))
			}
			table[chartKey{total: total, dealer: 2 + i}] = action
		}
	}
	return table
}

// Lookup returns the correct action for a situation. It is pure and total
// over the declared domain; a key outside it means the caller is broken,
// so Lookup panics instead of defaulting.
func (c *Chart) Lookup(category HandCategory, playerTotal, dealerCard int) Action {
	var table map[chartKey]Action
	switch category {
	case Hard:
		table = c.hard
	case Soft:
		table = c.soft
	case Pair:
		table = c.pairs
	default:
		panic(fmt.Sprintf("strategy: unknown hand category %d", int(category)))
	}
	action, ok := table[chartKey{total: playerTotal, dealer: dealerCard}]
	if !ok {
		panic(fmt.Sprintf("strategy: no chart entry for %s %d vs dealer %d", category, playerTotal, dealerCard))
	}
	return action
}

// IsAbsoluteRule reports whether the situation's action never depends on
// the dealer up-card: A,A and 8,8 always split, 10,10 and 5,5 never split,
// hard 17+ and soft 19+ always stand.
func (c *Chart) IsAbsoluteRule(category HandCategory, playerTotal int) bool {
	switch category {
	case Pair:
		return playerTotal == 11 || playerTotal == 8 || playerTotal == 10 || playerTotal == 5
	case Hard:
		return playerTotal >= 17
	case Soft:
		return playerTotal >= 19
	}
	return false
}
