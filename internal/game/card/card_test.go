package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/maria/internal/apperrors"
)

func TestDeck_CanonicalOrder(t *testing.T) {
	t.Parallel()

	deck := Deck()
	require.Len(t, deck, DeckSize)
	for id, c := range deck {
		assert.Equal(t, id, c.ID())
	}
	assert.Equal(t, "2C", deck[0].String())
	assert.Equal(t, "AC", deck[12].String())
	assert.Equal(t, "2D", deck[13].String())
	assert.Equal(t, "2H", deck[26].String())
	assert.Equal(t, "AS", deck[51].String())
}

func TestDeck_ReturnsCopy(t *testing.T) {
	t.Parallel()

	deck := Deck()
	deck[0] = QueenOfSpades
	assert.Equal(t, TwoOfClubs, Deck()[0])
}

func TestFromID(t *testing.T) {
	t.Parallel()

	for id := range DeckSize {
		c, err := FromID(id)
		require.NoError(t, err)
		assert.Equal(t, id, c.ID())
	}

	for _, id := range []int{-1, 52, 104} {
		_, err := FromID(id)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAction)
	}
}

func TestPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		card     Card
		expected int
	}{
		{name: "Two of hearts", card: MustParse("2H"), expected: -1},
		{name: "Ace of hearts", card: MustParse("AH"), expected: -1},
		{name: "Queen of spades", card: QueenOfSpades, expected: -13},
		{name: "King of spades", card: MustParse("KS"), expected: 0},
		{name: "Queen of clubs", card: MustParse("QC"), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.card.Points())
			assert.Equal(t, tt.expected != 0, tt.card.IsPoint())
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Card
		hasError bool
	}{
		{name: "Short form", input: "QS", expected: QueenOfSpades},
		{name: "Lower case", input: "2c", expected: TwoOfClubs},
		{name: "Ten as T", input: "TH", expected: Card{Suit: Hearts, Rank: Rank10}},
		{name: "Ten as 10", input: "10D", expected: Card{Suit: Diamonds, Rank: Rank10}},
		{name: "Unknown rank", input: "1S", hasError: true},
		{name: "Unknown suit", input: "QX", hasError: true},
		{name: "Too long", input: "QSS", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := Parse(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestHandHelpers(t *testing.T) {
	t.Parallel()

	hand, err := ParseCards("AS 2H 9C QS 3C")
	require.NoError(t, err)

	SortByID(hand)
	assert.Equal(t, "3C 9C 2H QS AS", Join(hand))

	assert.True(t, HasSuit(hand, Hearts))
	assert.False(t, HasSuit(hand, Diamonds))
	assert.Equal(t, "QS AS", Join(FilterSuit(hand, Spades)))
	assert.Equal(t, "3C 9C AS", Join(WithoutPoints(hand)))

	hand, ok := RemoveCard(hand, QueenOfSpades)
	assert.True(t, ok)
	assert.Equal(t, "3C 9C 2H AS", Join(hand))

	_, ok = RemoveCard(hand, QueenOfSpades)
	assert.False(t, ok)
}

func TestSymbol(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Q♠", QueenOfSpades.Symbol())
	assert.Equal(t, "10♥", MustParse("TH").Symbol())
	assert.True(t, Hearts.IsRed())
	assert.False(t, Clubs.IsRed())
}
