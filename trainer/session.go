package trainer

import (
	"blackjack-trainer/scenario"
	"blackjack-trainer/stats"
	"blackjack-trainer/strategy"
)

// Kind discriminates the training session variants.
type Kind int

const (
	// Random mixes all hand types and dealer cards.
	Random Kind = iota
	// DealerGroup restricts the dealer card to a chosen strength group.
	DealerGroup
	// HandType restricts practice to a chosen hand category.
	HandType
	// Absolutes drills the always/never situations.
	Absolutes
)

func (k Kind) String() string {
	switch k {
	case Random:
		return "random"
	case DealerGroup:
		return "dealer_groups"
	case HandType:
		return "hand_types"
	case Absolutes:
		return "absolutes"
	default:
		return "unknown"
	}
}

// Session is one training run. Strength is meaningful only for
// DealerGroup sessions and Category only for HandType sessions.
type Session struct {
	Kind         Kind
	Strength     strategy.DealerStrength
	Category     strategy.HandCategory
	MaxQuestions int
}

// NewSession builds a session of the given kind with the configured
// question count. DealerGroup and HandType sessions take their chosen
// focus from the corresponding field afterwards.
func NewSession(kind Kind, cfg Config) Session {
	max := cfg.PracticeQuestions
	if kind == Absolutes {
		max = cfg.AbsolutesQuestions
	}
	return Session{Kind: kind, MaxQuestions: max}
}

// Filter returns the scenario filter the session's kind implies.
func (s Session) Filter() scenario.Filter {
	switch s.Kind {
	case DealerGroup:
		return scenario.ForStrength(s.Strength)
	case HandType:
		return scenario.ForCategory(s.Category)
	case Absolutes:
		return scenario.AbsolutesOnly()
	default:
		return scenario.Any()
	}
}

// Prompter is how the session loop talks to the user.
type Prompter interface {
	// Ask presents a scenario and returns the user's action, or
	// quit=true if the user abandons the session instead of answering.
	Ask(sc scenario.Scenario) (action strategy.Action, quit bool)
	// Feedback shows the result of one answer, with the explanation
	// filled in on a miss. It returns true if the user wants to stop
	// after this question.
	Feedback(sc scenario.Scenario, correct bool, userAction, want strategy.Action, explanation string) (quit bool)
}

// Outcome reports how a session ended.
type Outcome struct {
	Asked     int
	Correct   int
	Cancelled bool
}

// Accuracy returns the session score as a percentage.
func (o Outcome) Accuracy() float64 {
	return stats.Count{Correct: o.Correct, Total: o.Asked}.Accuracy()
}

// Run drives one session to completion or cancellation. The statistics
// aggregate is owned by the caller and survives across sessions; quits
// are honored between questions, never mid-scenario.
func Run(s Session, gen *scenario.Generator, chart *strategy.Chart, catalog *strategy.Catalog, st *stats.Statistics, p Prompter) Outcome {
	filter := s.Filter()
	var out Outcome

	for out.Asked < s.MaxQuestions {
		sc := gen.Generate(filter)

		userAction, quit := p.Ask(sc)
		if quit {
			out.Cancelled = true
			return out
		}

		want := chart.Lookup(sc.Category, sc.PlayerTotal, sc.DealerCard)
		correct := userAction == want

		var explanation string
		if !correct {
			explanation = catalog.Explain(sc.Category, sc.PlayerTotal, sc.DealerCard)
		}

		st.Record(sc.Category, strategy.StrengthOf(sc.DealerCard), correct)
		out.Asked++
		if correct {
			out.Correct++
		}

		if p.Feedback(sc, correct, userAction, want, explanation) {
			out.Cancelled = true
			return out
		}
	}
	return out
}
