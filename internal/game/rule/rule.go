package rule

import (
	"fmt"

	"github.com/palemoky/maria/internal/apperrors"
	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/game/player"
)

// TrickSize 一墩的出牌数
const TrickSize = player.NumSeats

// TrickWinner 返回赢得这一墩的座位：首攻花色中 card id 最大的牌
// 垫牌（非首攻花色）永远不能赢
func TrickWinner(trick []action.Move) (player.Seat, error) {
	if len(trick) == 0 {
		return 0, fmt.Errorf("空的一墩没有赢家: %w", apperrors.ErrInconsistent)
	}
	best := trick[0]
	led := best.Card().Suit
	for _, m := range trick[1:] {
		c := m.Card()
		if c.Suit == led && c.ID() > best.Card().ID() {
			best = m
		}
	}
	return best.Seat, nil
}

// Points 统计一组牌的分值（红心 -1，黑桃 Q -13）
func Points(cards []card.Card) int {
	total := 0
	for _, c := range cards {
		total += c.Points()
	}
	return total
}

// TrickCards 取出一墩中的牌，按出牌顺序
func TrickCards(trick []action.Move) []card.Card {
	cards := make([]card.Card, len(trick))
	for i, m := range trick {
		cards[i] = m.Card()
	}
	return cards
}

// HeartsBroken 本局是否已有红心或黑桃 Q 被收进任何一家的赢牌堆
func HeartsBroken(wonPiles [player.NumSeats][]card.Card) bool {
	for _, pile := range wonPiles {
		for _, c := range pile {
			if c.IsPoint() {
				return true
			}
		}
	}
	return false
}
