package simulator

import (
	"fmt"
	"math"

	"github.com/lox/blackjacksim/internal/engine"
	"github.com/lox/blackjacksim/internal/results"
)

// Summary accumulates aggregate statistics for one simulation run. It is a
// plain value returned by the driver; nothing in the package holds global
// state, so runs can execute independently.
type Summary struct {
	Games      int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int

	Profit       float64
	TotalWagered float64
	MaxBet       int
	MinBet       int
}

// Add folds one round outcome into the summary
func (s *Summary) Add(outcome engine.Outcome) {
	s.Games++
	s.Profit += outcome.Profit
	s.TotalWagered += float64(outcome.Wager)

	if outcome.Wager > s.MaxBet {
		s.MaxBet = outcome.Wager
	}
	if s.MinBet == 0 || outcome.Wager < s.MinBet {
		s.MinBet = outcome.Wager
	}

	switch outcome.Result {
	case engine.Win:
		s.Wins++
	case engine.Loss:
		s.Losses++
	case engine.Push:
		s.Pushes++
	case engine.Blackjack:
		s.Blackjacks++
	}
}

// WinRate returns the fraction of rounds won, naturals included
func (s *Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins+s.Blackjacks) / float64(s.Games)
}

// LossRate returns the fraction of rounds lost
func (s *Summary) LossRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Losses) / float64(s.Games)
}

// PushRate returns the fraction of rounds pushed
func (s *Summary) PushRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Pushes) / float64(s.Games)
}

// AvgBet returns the mean wager across all rounds
func (s *Summary) AvgBet() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.TotalWagered / float64(s.Games)
}

// Validate checks the summary's accounting invariants: every game resolved
// to exactly one result, and the rates sum to one.
func (s *Summary) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	resolved := s.Wins + s.Losses + s.Pushes + s.Blackjacks
	if resolved != s.Games {
		return fmt.Errorf("result counts (%d) do not match games played (%d)", resolved, s.Games)
	}
	if total := s.WinRate() + s.LossRate() + s.PushRate(); math.Abs(total-1.0) > 1e-9 {
		return fmt.Errorf("rates sum to %f, want 1.0", total)
	}
	return nil
}

// Record converts the summary to its persisted form under the given
// strategy name.
func (s *Summary) Record(strategy string) results.Record {
	return results.Record{
		Strategy:     strategy,
		Games:        s.Games,
		Profit:       s.Profit,
		WinRate:      s.WinRate(),
		LossRate:     s.LossRate(),
		PushRate:     s.PushRate(),
		AvgBet:       s.AvgBet(),
		MaxBet:       float64(s.MaxBet),
		MinBet:       float64(s.MinBet),
		TotalWagered: s.TotalWagered,
	}
}
