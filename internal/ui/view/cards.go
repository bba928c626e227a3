// Package view renders game state as text.
package view

import (
	"strings"

	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/ui/common"
)

// RenderCard renders one card with its suit colour.
func RenderCard(c card.Card) string {
	return common.CardStyle(c).Render(c.Symbol())
}

// RenderCards renders cards separated by spaces.
func RenderCards(cards []card.Card) string {
	if len(cards) == 0 {
		return common.GrayStyle.Render("-")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = RenderCard(c)
	}
	return strings.Join(parts, " ")
}

// RenderHand renders a hand grouped by suit, one suit per line.
func RenderHand(hand []card.Card) string {
	sorted := append([]card.Card(nil), hand...)
	card.SortByID(sorted)

	var lines []string
	for s := card.Clubs; s <= card.Spades; s++ {
		cards := card.FilterSuit(sorted, s)
		if len(cards) == 0 {
			continue
		}
		lines = append(lines, RenderCards(cards))
	}
	if len(lines) == 0 {
		return RenderCards(nil)
	}
	return strings.Join(lines, "\n")
}
