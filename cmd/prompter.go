package main

import (
	"github.com/pterm/pterm"

	"blackjack-trainer/scenario"
	"blackjack-trainer/strategy"
)

const quitOption = "Quit session"

// termPrompter implements trainer.Prompter on top of pterm.
type termPrompter struct{}

func (termPrompter) Ask(sc scenario.Scenario) (strategy.Action, bool) {
	printHand(sc)

	labels := []string{"Hit", "Stand", "Double"}
	if sc.Category == strategy.Pair {
		labels = append(labels, "Split", "No split")
	} else {
		labels = append(labels, "Split")
	}
	labels = append(labels, quitOption)

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("What's your move?").
		WithOptions(labels).Show()

	switch choice {
	case "Hit":
		return strategy.Hit, false
	case "Stand":
		return strategy.Stand, false
	case "Double":
		return strategy.Double, false
	case "Split":
		return strategy.Split, false
	case "No split":
		return strategy.NoSplit, false
	default:
		return 0, true
	}
}

func (termPrompter) Feedback(sc scenario.Scenario, correct bool, userAction, want strategy.Action, explanation string) bool {
	if correct {
		pterm.Success.Println("Correct!")
	} else {
		pterm.Error.Println("Incorrect!")
		printMiss(userAction, want, explanation)
	}

	keepGoing, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultText("Continue?").
		WithDefaultValue(true).Show()
	return !keepGoing
}
