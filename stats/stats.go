// Package stats accumulates answer outcomes for a training session and
// computes accuracy breakdowns by hand category and dealer strength.
// Everything is in-memory and lives only for the process; the aggregate is
// owned by its caller and is not safe for concurrent writers.
package stats

import (
	"sort"

	"blackjack-trainer/strategy"
)

// Count is a correct/total pair for one key.
type Count struct {
	Correct int
	Total   int
}

// Accuracy returns 100*Correct/Total, or 0 when nothing was recorded.
func (c Count) Accuracy() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Total) * 100
}

// Statistics tracks attempt outcomes for the current session.
type Statistics struct {
	overall    Count
	byCategory map[string]*Count
	byStrength map[string]*Count
}

// New creates a tracker with the standard category and strength keys
// already present, so a fresh report still enumerates them at 0/0.
func New() *Statistics {
	s := &Statistics{
		byCategory: make(map[string]*Count),
		byStrength: make(map[string]*Count),
	}
	for _, c := range []strategy.HandCategory{strategy.Hard, strategy.Soft, strategy.Pair} {
		s.byCategory[c.String()] = &Count{}
	}
	for _, d := range []strategy.DealerStrength{strategy.Weak, strategy.Medium, strategy.Strong} {
		s.byStrength[d.String()] = &Count{}
	}
	return s
}

// Record counts one attempt against the overall, category and strength
// buckets. Keys not seen before get their own bucket on first use.
func (s *Statistics) Record(category strategy.HandCategory, strength strategy.DealerStrength, correct bool) {
	s.overall.Total++
	if correct {
		s.overall.Correct++
	}
	bump(s.byCategory, category.String(), correct)
	bump(s.byStrength, strength.String(), correct)
}

func bump(m map[string]*Count, key string, correct bool) {
	c, ok := m[key]
	if !ok {
		c = &Count{}
		m[key] = c
	}
	c.Total++
	if correct {
		c.Correct++
	}
}

// SessionAccuracy returns the overall accuracy percentage.
func (s *Statistics) SessionAccuracy() float64 {
	return s.overall.Accuracy()
}

// CategoryAccuracy returns the accuracy percentage for one hand category.
func (s *Statistics) CategoryAccuracy(category strategy.HandCategory) float64 {
	if c, ok := s.byCategory[category.String()]; ok {
		return c.Accuracy()
	}
	return 0
}

// StrengthAccuracy returns the accuracy percentage for one dealer
// strength group.
func (s *Statistics) StrengthAccuracy(strength strategy.DealerStrength) float64 {
	if c, ok := s.byStrength[strength.String()]; ok {
		return c.Accuracy()
	}
	return 0
}

// Reset zeroes every counter but keeps all known keys.
func (s *Statistics) Reset() {
	s.overall = Count{}
	for _, c := range s.byCategory {
		*c = Count{}
	}
	for _, c := range s.byStrength {
		*c = Count{}
	}
}

// Line is one row of a report.
type Line struct {
	Name  string
	Count Count
}

// Report is a snapshot of the session for display.
type Report struct {
	Overall    Count
	Categories []Line
	Strengths  []Line
}

// Report returns a stable snapshot: the standard keys in their usual
// order followed by any extra keys sorted by name.
func (s *Statistics) Report() Report {
	return Report{
		Overall:    s.overall,
		Categories: lines(s.byCategory, []string{"hard", "soft", "pair"}),
		Strengths:  lines(s.byStrength, []string{"weak", "medium", "strong"}),
	}
}

func lines(m map[string]*Count, order []string) []Line {
	out := make([]Line, 0, len(m))
	seen := make(map[string]bool, len(order))
	for _, name := range order {
		if c, ok := m[name]; ok {
			out = append(out, Line{Name: name, Count: *c})
			seen[name] = true
		}
	}
	extra := make([]string, 0, len(m))
	for name := range m {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		out = append(out, Line{Name: name, Count: *m[name]})
	}
	return out
}
