package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"blackjack-trainer/scenario"
	"blackjack-trainer/stats"
	"blackjack-trainer/strategy"
	"blackjack-trainer/trainer"
)

const (
	menuQuickPractice = "Quick Practice (random)"
	menuDealerGroups  = "Learn by Dealer Strength"
	menuHandTypes     = "Focus on Hand Types"
	menuAbsolutes     = "Absolutes Drill"
	menuStatistics    = "View Statistics"
	menuQuit          = "Quit"
)

func main() {
	_ = godotenv.Load()

	// Route slog through the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	cfg, err := trainer.LoadConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("lack", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("J", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ack", pterm.FgDarkGray.ToStyle()),
	).Render()
	pterm.Info.Println("Basic strategy trainer: 4-8 decks, dealer stands on soft 17")
	pterm.Println()

	chart := strategy.NewChart()
	catalog := strategy.NewCatalog(chart)
	gen := scenario.New(cfg.Seed)
	statistics := stats.New()
	prompter := &termPrompter{}

	for {
		choice, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("What would you like to practice?").
			WithOptions([]string{
				menuQuickPractice,
				menuDealerGroups,
				menuHandTypes,
				menuAbsolutes,
				menuStatistics,
				menuQuit,
			}).Show()

		var session trainer.Session
		switch choice {
		case menuQuickPractice:
			session = trainer.NewSession(trainer.Random, cfg)
		case menuDealerGroups:
			strength, ok := chooseStrength()
			if !ok {
				continue
			}
			session = trainer.NewSession(trainer.DealerGroup, cfg)
			session.Strength = strength
		case menuHandTypes:
			category, ok := chooseCategory()
			if !ok {
				continue
			}
			session = trainer.NewSession(trainer.HandType, cfg)
			session.Category = category
		case menuAbsolutes:
			session = trainer.NewSession(trainer.Absolutes, cfg)
		case menuStatistics:
			showStatistics(statistics)
			continue
		default:
			pterm.Info.Println("Good luck at the tables!")
			return
		}

		logger.Info("session started", "mode", session.Kind.String(), "max_questions", session.MaxQuestions)
		outcome := trainer.Run(session, gen, chart, catalog, statistics, prompter)
		logger.Info("session finished",
			"mode", session.Kind.String(),
			"asked", outcome.Asked,
			"correct", outcome.Correct,
			"cancelled", outcome.Cancelled,
		)
		if outcome.Asked > 0 {
			pterm.Success.Printfln("Session complete! Final score: %d/%d (%.1f%%)",
				outcome.Correct, outcome.Asked, outcome.Accuracy())
		}
	}
}

const cancelOption = "Back to menu"

func chooseStrength() (strategy.DealerStrength, bool) {
	labels := map[string]strategy.DealerStrength{
		"Weak cards (4, 5, 6) - bust cards": strategy.Weak,
		"Medium cards (2, 3, 7, 8)":         strategy.Medium,
		"Strong cards (9, 10, A)":           strategy.Strong,
	}
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Choose a dealer strength group to practice").
		WithOptions([]string{
			"Weak cards (4, 5, 6) - bust cards",
			"Medium cards (2, 3, 7, 8)",
			"Strong cards (9, 10, A)",
			cancelOption,
		}).Show()
	strength, ok := labels[choice]
	return strength, ok
}

func chooseCategory() (strategy.HandCategory, bool) {
	labels := map[string]strategy.HandCategory{
		"Hard totals (no ace, or ace = 1)": strategy.Hard,
		"Soft totals (ace = 11)":           strategy.Soft,
		"Pairs":                            strategy.Pair,
	}
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Choose a hand type to practice").
		WithOptions([]string{
			"Hard totals (no ace, or ace = 1)",
			"Soft totals (ace = 11)",
			"Pairs",
			cancelOption,
		}).Show()
	category, ok := labels[choice]
	return category, ok
}
