package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/game/player"
)

func mustCards(s string) []card.Card {
	cards, err := card.ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// moonPile 全部红心和黑桃 Q，再加上一些无分牌
func moonPile(extra string) []card.Card {
	pile := card.FilterSuit(card.Deck(), card.Hearts)
	pile = append(pile, card.QueenOfSpades)
	return append(pile, mustCards(extra)...)
}

func TestScoreRound(t *testing.T) {
	t.Parallel()

	type scores = [player.NumSeats]int
	type piles = [player.NumSeats][]card.Card

	tests := []struct {
		name     string
		before   scores
		won      piles
		points   scores
		expected scores
		moon     []player.Seat
	}{
		{
			name:     "Hearts and queen of spades count against the taker",
			before:   scores{-3, 0, 0, -10},
			won:      piles{0: mustCards("2H 3H 4H 5H 6H 2C"), 1: mustCards("QS 7H 8H 9H"), 2: mustCards("2D 3D")},
			points:   scores{-5, -16, 0, 0},
			expected: scores{-8, -16, 0, -10},
		},
		{
			name:     "Moon shot while nobody is close to losing",
			before:   scores{0, -10, -20, -5},
			won:      piles{1: mustCards("2C 3C 4C 5C"), 2: moonPile("2S 3S")},
			points:   scores{0, 0, -26, 0},
			expected: scores{0, -10, 6, -5},
			moon:     []player.Seat{player.South},
		},
		{
			name:     "Moon shot when the leader is within a bad round",
			before:   scores{-30, -40, -10, -30},
			won:      piles{0: mustCards("2C 3C"), 2: moonPile("2S 3S")},
			points:   scores{0, 0, -26, 0},
			expected: scores{-56, -66, -10, -56},
			moon:     []player.Seat{player.South},
		},
		{
			name:     "Moon shot taking every trick",
			before:   scores{0, 0, 0, 0},
			won:      piles{1: card.Deck()},
			points:   scores{0, -26, 0, 0},
			expected: scores{-52, 0, -52, -52},
			moon:     []player.Seat{player.East},
		},
		{
			name:     "Moon threshold compares against scores after the round",
			before:   scores{-24, -50, 0, -30},
			won:      piles{0: mustCards("2C"), 2: moonPile("")},
			points:   scores{0, 0, -26, 0},
			expected: scores{-24, -50, 26, -30},
			moon:     []player.Seat{player.South},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := ScoreRound(tt.before, tt.won)
			assert.Equal(t, tt.points, result.Points)
			assert.Equal(t, tt.expected, result.Scores)
			assert.Equal(t, tt.moon, result.ShotMoon)
		})
	}
}

func TestScoreRound_MultipleShootersUseSameBaseline(t *testing.T) {
	t.Parallel()

	// 实际对局不会出现两家同时射月；这里只验证每家都以第一步后的分数判断
	hearts := card.FilterSuit(card.Deck(), card.Hearts)
	won := [player.NumSeats][]card.Card{
		0: append(append([]card.Card{}, hearts...), card.QueenOfSpades),
		1: append(append([]card.Card{}, hearts...), card.QueenOfSpades),
	}
	result := ScoreRound([player.NumSeats]int{0, 0, 0, 0}, won)

	// 第一步后 [-26 -26 0 0]，最高分 0 >= -25，两家各 +52
	assert.Equal(t, [player.NumSeats]int{26, 26, 0, 0}, result.Scores)
	assert.Equal(t, []player.Seat{player.North, player.East}, result.ShotMoon)
}
