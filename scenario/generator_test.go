package scenario

import (
	"testing"

	"blackjack-trainer/strategy"
)

func TestGenerateValidScenariosPerCategory(t *testing.T) {
	gen := New(1)

	for _, category := range []strategy.HandCategory{strategy.Hard, strategy.Soft, strategy.Pair} {
		filter := ForCategory(category)
		for i := 0; i < 1000; i++ {
			sc := gen.Generate(filter)
			if sc.Category != category {
				t.Fatalf("filter %v: got category %v", category, sc.Category)
			}
			if err := sc.Validate(); err != nil {
				t.Fatalf("filter %v: invalid scenario %+v: %v", category, sc, err)
			}
		}
	}
}

func TestGenerateHardNeverContainsAce(t *testing.T) {
	gen := New(2)
	filter := ForCategory(strategy.Hard)
	for i := 0; i < 1000; i++ {
		sc := gen.Generate(filter)
		for _, card := range sc.PlayerCards {
			if card == 11 {
				t.Fatalf("hard hand %v contains an ace", sc.PlayerCards)
			}
			if card < 2 || card > 10 {
				t.Fatalf("hard hand %v contains out-of-range card %d", sc.PlayerCards, card)
			}
		}
		if len(sc.PlayerCards) > 6 {
			t.Fatalf("hard hand %v uses too many cards", sc.PlayerCards)
		}
	}
}

func TestGenerateUnconstrainedIsValid(t *testing.T) {
	gen := New(3)
	seen := make(map[strategy.HandCategory]bool)
	for i := 0; i < 1000; i++ {
		sc := gen.Generate(Any())
		if err := sc.Validate(); err != nil {
			t.Fatalf("invalid scenario %+v: %v", sc, err)
		}
		seen[sc.Category] = true
	}
	if len(seen) != 3 {
		t.Errorf("unconstrained generation produced %d categories, want 3", len(seen))
	}
}

func TestGenerateByDealerStrength(t *testing.T) {
	gen := New(4)
	for _, strength := range []strategy.DealerStrength{strategy.Weak, strategy.Medium, strategy.Strong} {
		filter := ForStrength(strength)
		for i := 0; i < 300; i++ {
			sc := gen.Generate(filter)
			if got := strategy.StrengthOf(sc.DealerCard); got != strength {
				t.Fatalf("filter %v: dealer card %d is %v", strength, sc.DealerCard, got)
			}
			if err := sc.Validate(); err != nil {
				t.Fatalf("filter %v: invalid scenario %+v: %v", strength, sc, err)
			}
		}
	}
}

func TestGenerateAbsolutes(t *testing.T) {
	gen := New(5)
	chart := strategy.NewChart()
	for i := 0; i < 500; i++ {
		sc := gen.Generate(AbsolutesOnly())
		if err := sc.Validate(); err != nil {
			t.Fatalf("invalid scenario %+v: %v", sc, err)
		}
		if !chart.IsAbsoluteRule(sc.Category, sc.PlayerTotal) {
			t.Fatalf("%v %d is not an absolute situation", sc.Category, sc.PlayerTotal)
		}
	}
}

func TestScenarioValidateRejectsBrokenHands(t *testing.T) {
	tests := []struct {
		name string
		sc   Scenario
	}{
		{"hard with ace", Scenario{Category: strategy.Hard, PlayerCards: []int{11, 5}, PlayerTotal: 16, DealerCard: 5}},
		{"hard wrong sum", Scenario{Category: strategy.Hard, PlayerCards: []int{9, 8}, PlayerTotal: 18, DealerCard: 5}},
		{"hard card too big", Scenario{Category: strategy.Hard, PlayerCards: []int{16, 2}, PlayerTotal: 18, DealerCard: 5}},
		{"pair unequal", Scenario{Category: strategy.Pair, PlayerCards: []int{8, 9}, PlayerTotal: 8, DealerCard: 5}},
		{"pair total is sum", Scenario{Category: strategy.Pair, PlayerCards: []int{8, 8}, PlayerTotal: 16, DealerCard: 5}},
		{"soft missing ace", Scenario{Category: strategy.Soft, PlayerCards: []int{7, 11}, PlayerTotal: 18, DealerCard: 5}},
		{"dealer out of range", Scenario{Category: strategy.Hard, PlayerCards: []int{9, 8}, PlayerTotal: 17, DealerCard: 12}},
		{"no cards", Scenario{Category: strategy.Hard, PlayerTotal: 17, DealerCard: 5}},
	}
	for _, tt := range tests {
		if err := tt.sc.Validate(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestGeneratorIsReproducible(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		sa, sb := a.Generate(Any()), b.Generate(Any())
		if sa.Category != sb.Category || sa.PlayerTotal != sb.PlayerTotal || sa.DealerCard != sb.DealerCard {
			t.Fatalf("same seed diverged at %d: %+v vs %+v", i, sa, sb)
		}
	}
}
