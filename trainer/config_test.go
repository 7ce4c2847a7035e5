package trainer

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PracticeQuestions != 50 {
		t.Errorf("PracticeQuestions = %d, want 50", cfg.PracticeQuestions)
	}
	if cfg.AbsolutesQuestions != 20 {
		t.Errorf("AbsolutesQuestions = %d, want 20", cfg.AbsolutesQuestions)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TRAINER_PRACTICE_QUESTIONS", "25")
	t.Setenv("TRAINER_ABSOLUTES_QUESTIONS", "10")
	t.Setenv("TRAINER_SEED", "42")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PracticeQuestions != 25 || cfg.AbsolutesQuestions != 10 || cfg.Seed != 42 {
		t.Errorf("cfg = %+v, want overrides applied", cfg)
	}
}

func TestLoadConfigRejectsNonPositiveCounts(t *testing.T) {
	t.Setenv("TRAINER_PRACTICE_QUESTIONS", "0")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for zero practice questions")
	}
}
