// Package strategy implements the playing and betting strategies under study.
// Each strategy is a closed variant selected at construction time; round
// decisions never dispatch on strategy names.
package strategy

import (
	"errors"

	"github.com/lox/blackjacksim/internal/engine"
)

// ErrInvalidConfig is returned when a strategy is constructed with parameters
// outside its valid range. Construction fails fast; a misconfigured strategy
// never reaches the table.
var ErrInvalidConfig = errors.New("invalid strategy configuration")

// DefaultBaseBet is the flat wager used by non-betting strategies
const DefaultBaseBet = 10

// Strategy decides actions during a round and the wager before it, and
// observes each outcome so betting state can advance between rounds.
type Strategy interface {
	engine.Player

	// Name identifies the strategy in persisted records
	Name() string

	// Wager returns the bet for the next round, decided before the deal
	Wager() int

	// Observe folds a round outcome into the strategy's betting state
	Observe(outcome engine.Outcome)
}

// flatBettor provides the fixed-wager behaviour shared by the non-betting
// strategies.
type flatBettor struct {
	bet int
}

func (f flatBettor) Wager() int               { return f.bet }
func (f flatBettor) Observe(_ engine.Outcome) {}
