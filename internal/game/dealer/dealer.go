package dealer

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/palemoky/maria/internal/apperrors"
	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/game/player"
)

// Dealer 持有本局洗好的牌（只读，用于复盘）和发牌用的牌堆
type Dealer struct {
	shuffled []card.Card
	stock    []card.Card
}

// New 用调用方提供的随机源洗牌
func New(rng *rand.Rand) *Dealer {
	deck := card.Deck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return NewFromDeck(deck)
}

// NewFromDeck 用已知的洗牌结果创建发牌员，用于复盘
func NewFromDeck(shuffled []card.Card) *Dealer {
	return &Dealer{
		shuffled: slices.Clone(shuffled),
		stock:    slices.Clone(shuffled),
	}
}

// Deal 从牌堆末尾取 n 张牌发给玩家
func (d *Dealer) Deal(p *player.Player, n int) error {
	if n > len(d.stock) {
		return fmt.Errorf("需要 %d 张，剩余 %d 张: %w", n, len(d.stock), apperrors.ErrDealUnderflow)
	}
	for range n {
		last := len(d.stock) - 1
		p.AddCard(d.stock[last])
		d.stock = d.stock[:last]
	}
	return nil
}

// ShuffledDeck 返回洗牌结果的拷贝
func (d *Dealer) ShuffledDeck() []card.Card {
	return slices.Clone(d.shuffled)
}

// Stock 返回牌堆剩余牌的拷贝
func (d *Dealer) Stock() []card.Card {
	return slices.Clone(d.stock)
}

// Clone 深拷贝
func (d *Dealer) Clone() *Dealer {
	return &Dealer{
		shuffled: slices.Clone(d.shuffled),
		stock:    slices.Clone(d.stock),
	}
}
