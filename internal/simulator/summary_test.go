package simulator

import (
	"math"
	"testing"

	"github.com/lox/blackjacksim/internal/engine"
)

func TestSummaryAdd(t *testing.T) {
	s := &Summary{}
	s.Add(engine.Outcome{Result: engine.Win, Wager: 10, Profit: 10})
	s.Add(engine.Outcome{Result: engine.Loss, Wager: 20, Profit: -20})
	s.Add(engine.Outcome{Result: engine.Push, Wager: 40, Profit: 0})
	s.Add(engine.Outcome{Result: engine.Blackjack, Wager: 10, Profit: 15})

	if s.Games != 4 {
		t.Errorf("Games = %d, want 4", s.Games)
	}
	if s.Profit != 5 {
		t.Errorf("Profit = %f, want 5", s.Profit)
	}
	if s.TotalWagered != 80 {
		t.Errorf("TotalWagered = %f, want 80", s.TotalWagered)
	}
	if s.MaxBet != 40 {
		t.Errorf("MaxBet = %d, want 40", s.MaxBet)
	}
	if s.MinBet != 10 {
		t.Errorf("MinBet = %d, want 10", s.MinBet)
	}
	if s.AvgBet() != 20 {
		t.Errorf("AvgBet() = %f, want 20", s.AvgBet())
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestSummaryRatesIncludeNaturalsAsWins(t *testing.T) {
	s := &Summary{}
	s.Add(engine.Outcome{Result: engine.Win, Wager: 10, Profit: 10})
	s.Add(engine.Outcome{Result: engine.Blackjack, Wager: 10, Profit: 15})
	s.Add(engine.Outcome{Result: engine.Loss, Wager: 10, Profit: -10})
	s.Add(engine.Outcome{Result: engine.Push, Wager: 10, Profit: 0})

	if got := s.WinRate(); got != 0.5 {
		t.Errorf("WinRate() = %f, want 0.5", got)
	}
	if got := s.LossRate(); got != 0.25 {
		t.Errorf("LossRate() = %f, want 0.25", got)
	}
	if got := s.PushRate(); got != 0.25 {
		t.Errorf("PushRate() = %f, want 0.25", got)
	}
	sum := s.WinRate() + s.LossRate() + s.PushRate()
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("rates sum to %f, want 1.0", sum)
	}
}

func TestSummaryValidateCatchesMismatch(t *testing.T) {
	s := &Summary{Games: 10, Wins: 3, Losses: 3, Pushes: 3}
	if err := s.Validate(); err == nil {
		t.Error("Validate() should fail when result counts do not cover games")
	}

	empty := &Summary{}
	if err := empty.Validate(); err == nil {
		t.Error("Validate() should fail on zero games")
	}
}

func TestSummaryRecord(t *testing.T) {
	s := &Summary{}
	s.Add(engine.Outcome{Result: engine.Win, Wager: 10, Profit: 10})
	s.Add(engine.Outcome{Result: engine.Loss, Wager: 10, Profit: -10})

	record := s.Record("basic")
	if record.Strategy != "basic" {
		t.Errorf("Strategy = %q, want %q", record.Strategy, "basic")
	}
	if record.Games != 2 {
		t.Errorf("Games = %d, want 2", record.Games)
	}
	if record.WinRate != 0.5 || record.LossRate != 0.5 {
		t.Errorf("rates = %f/%f, want 0.5/0.5", record.WinRate, record.LossRate)
	}
	if record.AvgBet != 10 || record.MaxBet != 10 {
		t.Errorf("bets = %f/%f, want 10/10", record.AvgBet, record.MaxBet)
	}
}
