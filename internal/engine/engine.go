// Package engine orchestrates a single blackjack round: deal, player turn,
// dealer turn, resolution.
package engine

import (
	"fmt"

	"github.com/lox/blackjacksim/internal/dealer"
	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/hand"
)

// Action is a player decision for the current hand
type Action int

const (
	Hit Action = iota
	Stand
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// Player decides whether to hit or stand given the current hand value, the
// cards behind it, and the dealer's visible card.
type Player interface {
	Action(v hand.Value, cards []deck.Card, upcard deck.Card) Action
}

// Result tags the outcome of one round
type Result int

const (
	Win Result = iota
	Loss
	Push
	Blackjack
)

// String returns the string representation of a result
func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Push:
		return "push"
	case Blackjack:
		return "blackjack"
	default:
		return "unknown"
	}
}

// Outcome is the resolution of one round. It is folded into the run summary
// and handed back to the strategy so betting state can advance.
type Outcome struct {
	Result      Result
	Wager       int
	Profit      float64
	PlayerTotal int
	DealerTotal int
}

// DefaultBlackjackPayout is the multiplier for a natural (3:2)
const DefaultBlackjackPayout = 1.5

// PlayRound deals and resolves one full round. Cards are dealt player,
// dealer, player, dealer. A player natural beats a dealer non-natural and
// pays wager times payout; a player bust loses before the dealer draws.
func PlayRound(shoe *deck.Shoe, player Player, wager int, payout float64) (Outcome, error) {
	playerHand := hand.New()
	dealerHand := hand.New()

	for i := 0; i < 2; i++ {
		card, err := shoe.Draw()
		if err != nil {
			return Outcome{}, fmt.Errorf("dealing player card: %w", err)
		}
		playerHand.Add(card)
		card, err = shoe.Draw()
		if err != nil {
			return Outcome{}, fmt.Errorf("dealing dealer card: %w", err)
		}
		dealerHand.Add(card)
	}

	playerValue, err := playerHand.Evaluate()
	if err != nil {
		return Outcome{}, err
	}
	dealerValue, err := dealerHand.Evaluate()
	if err != nil {
		return Outcome{}, err
	}
	upcard := dealerHand.Cards()[0]

	// Naturals settle before any play.
	switch {
	case playerValue.Blackjack && dealerValue.Blackjack:
		return outcome(Push, wager, 0, playerValue, dealerValue), nil
	case playerValue.Blackjack:
		return outcome(Blackjack, wager, float64(wager)*payout, playerValue, dealerValue), nil
	case dealerValue.Blackjack:
		return outcome(Loss, wager, -float64(wager), playerValue, dealerValue), nil
	}

	// Player turn: consult the strategy until it stands or the hand busts.
	for player.Action(playerValue, playerHand.Cards(), upcard) == Hit {
		card, err := shoe.Draw()
		if err != nil {
			return Outcome{}, fmt.Errorf("player hit: %w", err)
		}
		playerHand.Add(card)
		playerValue, err = playerHand.Evaluate()
		if err != nil {
			return Outcome{}, err
		}
		if playerValue.Bust {
			return outcome(Loss, wager, -float64(wager), playerValue, dealerValue), nil
		}
	}

	// Dealer turn only happens when the player survives.
	dealerValue, _, err = dealer.Play(shoe, dealerHand)
	if err != nil {
		return Outcome{}, err
	}

	switch {
	case dealerValue.Bust, playerValue.Total > dealerValue.Total:
		return outcome(Win, wager, float64(wager), playerValue, dealerValue), nil
	case playerValue.Total < dealerValue.Total:
		return outcome(Loss, wager, -float64(wager), playerValue, dealerValue), nil
	default:
		return outcome(Push, wager, 0, playerValue, dealerValue), nil
	}
}

func outcome(result Result, wager int, profit float64, player, dealer hand.Value) Outcome {
	return Outcome{
		Result:      result,
		Wager:       wager,
		Profit:      profit,
		PlayerTotal: player.Total,
		DealerTotal: dealer.Total,
	}
}
