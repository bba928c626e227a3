package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/maria/internal/game"
	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/game/player"
)

func TestNewCardCounter(t *testing.T) {
	t.Parallel()

	cc := NewCardCounter()
	require.NotNil(t, cc)

	remaining := cc.Remaining()
	for s := card.Clubs; s <= card.Spades; s++ {
		assert.Equal(t, card.NumRanks, remaining[s], "suit %s", s)
	}
	assert.Equal(t, card.DeckSize, total(cc))
}

func total(cc *CardCounter) int {
	n := 0
	for _, count := range cc.Remaining() {
		n += count
	}
	return n
}

func TestCardCounter_DeductAndReset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cards      string
		wantHearts int
		wantSpades int
		wantTotal  int
	}{
		{name: "single heart", cards: "2H", wantHearts: 12, wantSpades: 13, wantTotal: 51},
		{name: "queen of spades", cards: "QS 3H", wantHearts: 12, wantSpades: 12, wantTotal: 50},
		{name: "duplicates count once", cards: "QS QS", wantHearts: 13, wantSpades: 12, wantTotal: 51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cards, err := card.ParseCards(tt.cards)
			require.NoError(t, err)

			cc := NewCardCounter()
			cc.DeductCards(cards)
			assert.Equal(t, tt.wantHearts, cc.Remaining()[card.Hearts])
			assert.Equal(t, tt.wantSpades, cc.Remaining()[card.Spades])
			assert.Equal(t, tt.wantTotal, total(cc))

			cc.Reset()
			assert.Equal(t, card.DeckSize, total(cc))
		})
	}
}

func TestCountState(t *testing.T) {
	t.Parallel()

	hand, err := card.ParseCards("3C 4C 9H")
	require.NoError(t, err)
	s := &game.State{
		Viewer: player.South,
		Moves: []action.Move{
			action.NewDealHand(player.North, card.Deck()),
			action.NewPlayerMove(player.East, action.Trade(card.QueenOfSpades)),
			action.NewPlayerMove(player.West, action.Play(card.TwoOfClubs)),
			action.NewPlayerMove(player.North, action.Play(card.MustParse("KC"))),
		},
	}
	s.Hands[player.South] = hand

	cc := CountState(s)
	assert.Equal(t, card.DeckSize-5, total(cc))
	assert.Equal(t, card.NumRanks-4, cc.Remaining()[card.Clubs])
	assert.Equal(t, card.NumRanks-1, cc.Remaining()[card.Hearts])
	// 传出的牌仍在别人手里
	assert.Equal(t, card.NumRanks, cc.Remaining()[card.Spades])
}
