package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"blackjack-trainer/scenario"
	"blackjack-trainer/stats"
	"blackjack-trainer/strategy"
)

func printHand(sc scenario.Scenario) {
	cards := make([]string, len(sc.PlayerCards))
	for i, card := range sc.PlayerCards {
		cards[i] = strategy.CardString(card)
	}

	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := fmt.Sprintf("%s %d", capitalize(sc.Category.String()), sc.PlayerTotal)
	if sc.Category == strategy.Pair {
		title = fmt.Sprintf("Pair of %ss", strategy.CardString(sc.PlayerTotal))
	}
	body := pterm.Sprintf("Dealer shows: %s\nYour hand: %s",
		pterm.LightCyan(strategy.CardString(sc.DealerCard)),
		pterm.LightCyan(strings.Join(cards, ", ")))
	pterm.Println(pbox.WithTitle(title).WithTitleTopLeft().Sprint(body))
}

func printMiss(userAction, want strategy.Action, explanation string) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintf("Correct answer: %s\nYour answer: %s\n\nPattern: %s",
		pterm.LightGreen(want.String()),
		pterm.LightRed(userAction.String()),
		explanation)
	pterm.Println(pbox.WithTitle(pterm.LightYellow("|PATTERN|")).WithTitleTopCenter().Sprint(body))
}

func showStatistics(s *stats.Statistics) {
	report := s.Report()
	if report.Overall.Total == 0 {
		pterm.Info.Println("No practice attempts yet this session.")
		return
	}

	data := pterm.TableData{{"", "Correct", "Total", "Accuracy"}}
	data = append(data, statsRow("Overall", report.Overall))
	for _, line := range report.Categories {
		data = append(data, statsRow(capitalize(line.Name), line.Count))
	}
	for _, line := range report.Strengths {
		data = append(data, statsRow("Dealer "+line.Name, line.Count))
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err.Error())
		return
	}

	reset, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultText("Reset session statistics?").
		WithDefaultValue(false).Show()
	if reset {
		s.Reset()
		pterm.Info.Println("Statistics reset.")
	}
}

func statsRow(name string, c stats.Count) []string {
	return []string{
		name,
		fmt.Sprintf("%d", c.Correct),
		fmt.Sprintf("%d", c.Total),
		fmt.Sprintf("%.1f%%", c.Accuracy()),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
