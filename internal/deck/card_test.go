package deck

import "testing"

func TestBlackjackValue(t *testing.T) {
	tests := []struct {
		name     string
		card     Card
		expected int
	}{
		{"two", Card{Suit: Spades, Rank: Two}, 2},
		{"nine", Card{Suit: Hearts, Rank: Nine}, 9},
		{"ten", Card{Suit: Diamonds, Rank: Ten}, 10},
		{"jack", Card{Suit: Clubs, Rank: Jack}, 10},
		{"queen", Card{Suit: Spades, Rank: Queen}, 10},
		{"king", Card{Suit: Hearts, Rank: King}, 10},
		{"ace", Card{Suit: Diamonds, Rank: Ace}, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.BlackjackValue(); got != tt.expected {
				t.Errorf("BlackjackValue() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestCountValue(t *testing.T) {
	tests := []struct {
		name     string
		rank     Rank
		expected int
	}{
		{"low cards count plus one", Two, 1},
		{"six counts plus one", Six, 1},
		{"seven is neutral", Seven, 0},
		{"nine is neutral", Nine, 0},
		{"ten counts minus one", Ten, -1},
		{"face counts minus one", King, -1},
		{"ace counts minus one", Ace, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Card{Suit: Spades, Rank: tt.rank}
			if got := c.CountValue(); got != tt.expected {
				t.Errorf("CountValue(%s) = %d, want %d", tt.rank, got, tt.expected)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	c := NewCard(Spades, Ace)
	if c.String() != "A♠" {
		t.Errorf("String() = %q, want %q", c.String(), "A♠")
	}
	if !c.IsAce() {
		t.Error("expected IsAce() for ace of spades")
	}
}
