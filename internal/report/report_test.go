package report

import (
	"strings"
	"testing"

	"github.com/lox/blackjacksim/internal/results"
)

func TestRenderEmpty(t *testing.T) {
	out := Render(nil)
	if !strings.Contains(out, "no result records") {
		t.Errorf("Render(nil) = %q, want a no-records message", out)
	}
}

func TestRenderIncludesEveryStrategy(t *testing.T) {
	records := []results.Record{
		{Strategy: "basic", Games: 1000, Profit: -50, WinRate: 0.43, LossRate: 0.48, PushRate: 0.09, AvgBet: 10, MaxBet: 10},
		{Strategy: "martingale", Games: 1000, Profit: 120, WinRate: 0.44, LossRate: 0.47, PushRate: 0.09, AvgBet: 22, MaxBet: 640},
		{Strategy: "fixed-threshold-21", Games: 1000, Profit: -900, WinRate: 0.05, LossRate: 0.93, PushRate: 0.02, AvgBet: 10, MaxBet: 10},
	}

	out := Render(records)
	for _, r := range records {
		if !strings.Contains(out, r.Strategy) {
			t.Errorf("report missing strategy %q", r.Strategy)
		}
	}
	if !strings.Contains(out, "Profit by Strategy") {
		t.Error("report missing profit bar section")
	}
}

func TestRenderBarScaling(t *testing.T) {
	records := []results.Record{
		{Strategy: "big-loser", Games: 10, Profit: -1000},
		{Strategy: "break-even", Games: 10, Profit: 0},
	}

	out := renderProfitBars(records)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d bar lines, want 2", len(lines))
	}
	if got := strings.Count(lines[0], "█"); got != barWidth {
		t.Errorf("largest loss bar has %d cells, want full width %d", got, barWidth)
	}
	if got := strings.Count(lines[1], "█"); got != 0 {
		t.Errorf("break-even bar has %d cells, want 0", got)
	}
}
