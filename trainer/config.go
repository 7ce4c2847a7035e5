package trainer

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the tunables of the trainer, loaded from the
// environment.
type Config struct {
	// PracticeQuestions is the question count of the random,
	// dealer-strength and hand-type sessions.
	PracticeQuestions int `env:"TRAINER_PRACTICE_QUESTIONS" envDefault:"50"`
	// AbsolutesQuestions is the question count of the absolutes drill.
	AbsolutesQuestions int `env:"TRAINER_ABSOLUTES_QUESTIONS" envDefault:"20"`
	// Seed seeds the scenario generator; 0 picks a time-based seed.
	Seed int64 `env:"TRAINER_SEED" envDefault:"0"`
}

// LoadConfig parses the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.PracticeQuestions <= 0 {
		return fmt.Errorf("TRAINER_PRACTICE_QUESTIONS must be > 0, got %d", c.PracticeQuestions)
	}
	if c.AbsolutesQuestions <= 0 {
		return fmt.Errorf("TRAINER_ABSOLUTES_QUESTIONS must be > 0, got %d", c.AbsolutesQuestions)
	}
	return nil
}
