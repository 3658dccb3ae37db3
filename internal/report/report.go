// Package report renders comparative tables from persisted simulation
// records. It performs no simulation logic.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjacksim/internal/results"
)

const barWidth = 40

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	profitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	lossStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

// Render produces the comparative report for the given records: a summary
// table sorted by profit and a profit bar per strategy.
func Render(records []results.Record) string {
	if len(records) == 0 {
		return "no result records found\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Blackjack Strategy Simulation Results"))
	b.WriteString("\n\n")
	b.WriteString(renderTable(records))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Profit by Strategy"))
	b.WriteString("\n\n")
	b.WriteString(renderProfitBars(records))
	return b.String()
}

func renderTable(records []results.Record) string {
	var b strings.Builder
	header := fmt.Sprintf("%-22s %12s %14s %8s %8s %8s %10s %12s",
		"Strategy", "Games", "Profit", "Win%", "Loss%", "Push%", "AvgBet", "MaxBet")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for _, r := range records {
		profit := fmt.Sprintf("$%.2f", r.Profit)
		if r.Profit >= 0 {
			profit = profitStyle.Render(profit)
		} else {
			profit = lossStyle.Render(profit)
		}
		b.WriteString(fmt.Sprintf("%-22s %12d %14s %7.2f%% %7.2f%% %7.2f%% %10.2f %12.2f\n",
			r.Strategy,
			r.Games,
			profit,
			100*r.WinRate,
			100*r.LossRate,
			100*r.PushRate,
			r.AvgBet,
			r.MaxBet,
		))
	}
	return b.String()
}

// renderProfitBars draws a horizontal bar per strategy, scaled to the
// largest absolute profit in the set.
func renderProfitBars(records []results.Record) string {
	maxAbs := 0.0
	for _, r := range records {
		if abs := math.Abs(r.Profit); abs > maxAbs {
			maxAbs = abs
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	var b strings.Builder
	for _, r := range records {
		length := int(math.Round(math.Abs(r.Profit) / maxAbs * barWidth))
		bar := strings.Repeat("█", length)
		if r.Profit >= 0 {
			bar = profitStyle.Render(bar)
		} else {
			bar = lossStyle.Render(bar)
		}
		b.WriteString(fmt.Sprintf("%-22s %s %.2f\n", r.Strategy, bar, r.Profit))
	}
	return b.String()
}
