package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/game/player"
)

// fakeRound 手工构造的局面
type fakeRound struct {
	over      bool
	trading   bool
	current   player.Seat
	hand      []card.Card
	playCount int
	trick     []action.Move
	won       [player.NumSeats][]card.Card
}

func (f *fakeRound) IsOver() bool { return f.over }
func (f *fakeRound) IsTrading() bool { return f.trading }
func (f *fakeRound) CurrentSeat() player.Seat { return f.current }
func (f *fakeRound) Hand(player.Seat) []card.Card { return f.hand }
func (f *fakeRound) PlayCount() int { return f.playCount }
func (f *fakeRound) TrickMoves() ([]action.Move, error) { return f.trick, nil }
func (f *fakeRound) WonPiles() [player.NumSeats][]card.Card { return f.won }

func legalCardString(t *testing.T, f *fakeRound) string {
	t.Helper()
	actions, err := LegalActions(f)
	require.NoError(t, err)
	cards := make([]card.Card, len(actions))
	for i, a := range actions {
		assert.Equal(t, action.PlayCard, a.Kind)
		cards[i] = a.Card
	}
	return card.Join(cards)
}

func TestLegalActions_RoundOver(t *testing.T) {
	t.Parallel()

	actions, err := LegalActions(&fakeRound{over: true})
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestLegalActions_Trading(t *testing.T) {
	t.Parallel()

	f := &fakeRound{trading: true, hand: mustCards("2C 5D QS AH")}
	actions, err := LegalActions(f)
	require.NoError(t, err)
	require.Len(t, actions, 4)
	for i, a := range actions {
		assert.Equal(t, action.TradeCard, a.Kind)
		assert.Equal(t, f.hand[i], a.Card)
	}
}

func TestLegalActions_Playing(t *testing.T) {
	t.Parallel()

	brokenPiles := [player.NumSeats][]card.Card{1: mustCards("2D 3D 2H 5D")}

	tests := []struct {
		name     string
		round    *fakeRound
		expected string
	}{
		{
			name:     "First lead forced to two of clubs",
			round:    &fakeRound{hand: mustCards("2C 5C 9D 3H QS")},
			expected: "2C",
		},
		{
			name: "Must follow suit",
			round: &fakeRound{
				hand:      mustCards("5C 9C 9D 3H QS"),
				playCount: 1,
				trick:     trickOf(player.North, "2C"),
			},
			expected: "5C 9C",
		},
		{
			name: "Void in led suit may discard anything",
			round: &fakeRound{
				hand:      mustCards("9D 3H QS"),
				playCount: 2,
				trick:     trickOf(player.North, "2C 4C"),
			},
			expected: "9D 3H QS",
		},
		{
			name: "Leading before hearts broken excludes point cards",
			round: &fakeRound{
				hand:      mustCards("9D 3H QS AS"),
				playCount: 4,
				trick:     trickOf(player.North, "2C 4C 5C 6C"),
			},
			expected: "9D AS",
		},
		{
			name: "Leading with only point cards falls back to full hand",
			round: &fakeRound{
				hand:      mustCards("3H 7H QS"),
				playCount: 8,
				trick:     trickOf(player.North, "2D 4D 5D 6D"),
			},
			expected: "3H 7H QS",
		},
		{
			name: "Leading after hearts broken allows hearts",
			round: &fakeRound{
				hand:      mustCards("9D 3H QS"),
				playCount: 8,
				trick:     trickOf(player.North, "2D 4D 5D 6D"),
				won:       brokenPiles,
			},
			expected: "9D 3H QS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, legalCardString(t, tt.round))
		})
	}
}
