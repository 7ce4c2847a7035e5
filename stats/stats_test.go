package stats

import (
	"testing"

	"blackjack-trainer/strategy"
)

func TestFreshStatisticsReportZero(t *testing.T) {
	s := New()

	if got := s.SessionAccuracy(); got != 0 {
		t.Errorf("fresh session accuracy = %v, want 0", got)
	}
	for _, c := range []strategy.HandCategory{strategy.Hard, strategy.Soft, strategy.Pair} {
		if got := s.CategoryAccuracy(c); got != 0 {
			t.Errorf("fresh %s accuracy = %v, want 0", c, got)
		}
	}
	for _, d := range []strategy.DealerStrength{strategy.Weak, strategy.Medium, strategy.Strong} {
		if got := s.StrengthAccuracy(d); got != 0 {
			t.Errorf("fresh %s accuracy = %v, want 0", d, got)
		}
	}
}

func TestAccuracyArithmetic(t *testing.T) {
	s := New()
	for i := 0; i < 7; i++ {
		s.Record(strategy.Hard, strategy.Weak, true)
	}
	for i := 0; i < 3; i++ {
		s.Record(strategy.Hard, strategy.Weak, false)
	}

	if got := s.SessionAccuracy(); got != 70.0 {
		t.Errorf("session accuracy = %v, want exactly 70.0", got)
	}
	if got := s.CategoryAccuracy(strategy.Hard); got != 70.0 {
		t.Errorf("hard accuracy = %v, want exactly 70.0", got)
	}
	if got := s.StrengthAccuracy(strategy.Weak); got != 70.0 {
		t.Errorf("weak accuracy = %v, want exactly 70.0", got)
	}
	if got := s.CategoryAccuracy(strategy.Soft); got != 0 {
		t.Errorf("soft accuracy = %v, want 0", got)
	}
}

func TestRecordTouchesExactlyOneBucketPerAxis(t *testing.T) {
	s := New()
	s.Record(strategy.Pair, strategy.Strong, true)

	report := s.Report()
	if report.Overall.Total != 1 || report.Overall.Correct != 1 {
		t.Fatalf("overall = %+v, want 1/1", report.Overall)
	}
	for _, line := range report.Categories {
		want := 0
		if line.Name == "pair" {
			want = 1
		}
		if line.Count.Total != want {
			t.Errorf("category %s total = %d, want %d", line.Name, line.Count.Total, want)
		}
	}
	for _, line := range report.Strengths {
		want := 0
		if line.Name == "strong" {
			want = 1
		}
		if line.Count.Total != want {
			t.Errorf("strength %s total = %d, want %d", line.Name, line.Count.Total, want)
		}
	}
}

func TestResetKeepsKnownKeys(t *testing.T) {
	s := New()
	s.Record(strategy.Soft, strategy.Medium, true)
	s.Record(strategy.Hard, strategy.Strong, false)
	s.Reset()

	if got := s.SessionAccuracy(); got != 0 {
		t.Errorf("post-reset session accuracy = %v, want 0", got)
	}
	report := s.Report()
	if report.Overall.Total != 0 {
		t.Errorf("post-reset overall total = %d, want 0", report.Overall.Total)
	}
	if len(report.Categories) != 3 {
		t.Errorf("post-reset report lists %d categories, want 3", len(report.Categories))
	}
	if len(report.Strengths) != 3 {
		t.Errorf("post-reset report lists %d strengths, want 3", len(report.Strengths))
	}
	for _, line := range append(report.Categories, report.Strengths...) {
		if line.Count.Total != 0 || line.Count.Correct != 0 {
			t.Errorf("post-reset %s = %+v, want 0/0", line.Name, line.Count)
		}
	}
}

// Unknown keys get their own bucket without disturbing the known ones.
func TestUnknownKeysAreTrackedIndependently(t *testing.T) {
	s := New()
	s.Record(strategy.Hard, strategy.Weak, true)
	s.Record(strategy.HandCategory(42), strategy.DealerStrength(42), false)

	if got := s.CategoryAccuracy(strategy.Hard); got != 100.0 {
		t.Errorf("hard accuracy = %v, want 100", got)
	}
	report := s.Report()
	if report.Overall.Total != 2 {
		t.Errorf("overall total = %d, want 2", report.Overall.Total)
	}
	if len(report.Categories) != 4 {
		t.Errorf("report lists %d categories, want 4", len(report.Categories))
	}
	last := report.Categories[len(report.Categories)-1]
	if last.Name != "unknown" || last.Count.Total != 1 {
		t.Errorf("extra bucket = %+v, want unknown with 1 attempt", last)
	}
}

func TestCountAccuracyBounds(t *testing.T) {
	if got := (Count{Correct: 5, Total: 5}).Accuracy(); got != 100.0 {
		t.Errorf("5/5 accuracy = %v, want 100", got)
	}
	if got := (Count{Correct: 0, Total: 4}).Accuracy(); got != 0 {
		t.Errorf("0/4 accuracy = %v, want 0", got)
	}
	if got := (Count{}).Accuracy(); got != 0 {
		t.Errorf("0/0 accuracy = %v, want 0", got)
	}
}
