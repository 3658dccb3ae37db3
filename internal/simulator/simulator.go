// Package simulator drives N-round simulation runs of a single strategy
// against one continuously reused shoe.
package simulator

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/engine"
	"github.com/lox/blackjacksim/internal/strategy"
)

// Config holds configuration for a simulation run
type Config struct {
	Rounds             int
	Decks              int
	Penetration        float64
	ReshuffleEachRound bool
	BlackjackPayout    float64
	Seed               int64
	Logger             *log.Logger
}

// Defaults for the simulation table
const (
	DefaultRounds      = 1_000_000
	DefaultDecks       = 6
	DefaultPenetration = 0.25
)

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration, applying defaults
// for unset fields.
func New(config Config) *Simulator {
	if config.Rounds <= 0 {
		config.Rounds = DefaultRounds
	}
	if config.Decks <= 0 {
		config.Decks = DefaultDecks
	}
	if config.Penetration <= 0 {
		config.Penetration = DefaultPenetration
	}
	if config.BlackjackPayout <= 0 {
		config.BlackjackPayout = engine.DefaultBlackjackPayout
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

// NewShoe builds the shoe a run of this simulator will deal from. The card
// counter binds to the same shoe so it can read the running count.
func (s *Simulator) NewShoe() *deck.Shoe {
	return deck.NewShoe(s.config.Decks, s.config.Penetration, s.config.Seed)
}

// Run executes the configured number of rounds for one strategy against the
// given shoe and returns the aggregate summary. A round-level failure aborts
// the whole run: every round is independent, so a failed run is simply
// restarted rather than resumed.
func (s *Simulator) Run(shoe *deck.Shoe, strat strategy.Strategy) (*Summary, error) {
	summary := &Summary{}

	for round := 0; round < s.config.Rounds; round++ {
		if s.config.ReshuffleEachRound || shoe.NeedsShuffle() {
			shoe.Shuffle()
		}

		wager := strat.Wager()
		outcome, err := engine.PlayRound(shoe, strat, wager, s.config.BlackjackPayout)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round+1, err)
		}

		summary.Add(outcome)
		strat.Observe(outcome)
	}

	if err := summary.Validate(); err != nil {
		return nil, fmt.Errorf("summary validation failed: %w", err)
	}

	s.config.Logger.Debug("run complete",
		"strategy", strat.Name(),
		"games", summary.Games,
		"profit", summary.Profit,
		"win_rate", summary.WinRate(),
	)

	return summary, nil
}

// RunStrategy is a convenience that builds a fresh shoe and runs the
// strategy factory against it. Strategies that need the shoe (the card
// counter) are constructed from it via the factory.
func (s *Simulator) RunStrategy(factory func(shoe *deck.Shoe) (strategy.Strategy, error)) (*Summary, string, error) {
	shoe := s.NewShoe()
	strat, err := factory(shoe)
	if err != nil {
		return nil, "", fmt.Errorf("constructing strategy: %w", err)
	}
	summary, err := s.Run(shoe, strat)
	if err != nil {
		return nil, "", err
	}
	return summary, strat.Name(), nil
}
