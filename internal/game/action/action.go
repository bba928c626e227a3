package action

import (
	"fmt"

	"github.com/palemoky/maria/internal/apperrors"
	"github.com/palemoky/maria/internal/game/card"
)

// Kind 动作类型
type Kind int

const (
	Unknown Kind = iota
	PlayCard     // 出牌
	TradeCard    // 传牌
)

var kindNames = map[Kind]string{
	Unknown:   "unknown",
	PlayCard:  "play",
	TradeCard: "trade",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// 动作编号：
//
//	0-51   出牌，等于 card id
//	52-103 传牌，等于 52 + card id
const (
	FirstPlayCardID  = 0
	FirstTradeCardID = card.DeckSize
	NumActions       = 2 * card.DeckSize
)

// Action 玩家的一次决策
type Action struct {
	Kind Kind
	Card card.Card
}

// Play 构造出牌动作
func Play(c card.Card) Action {
	return Action{Kind: PlayCard, Card: c}
}

// Trade 构造传牌动作
func Trade(c card.Card) Action {
	return Action{Kind: TradeCard, Card: c}
}

// ID 返回动作编号，未知类型返回 -1
func (a Action) ID() int {
	switch a.Kind {
	case PlayCard:
		return FirstPlayCardID + a.Card.ID()
	case TradeCard:
		return FirstTradeCardID + a.Card.ID()
	default:
		return -1
	}
}

// FromID 解码动作编号
func FromID(id int) (Action, error) {
	switch {
	case id >= FirstPlayCardID && id < FirstTradeCardID:
		c, err := card.FromID(id - FirstPlayCardID)
		if err != nil {
			return Action{}, err
		}
		return Play(c), nil
	case id >= FirstTradeCardID && id < NumActions:
		c, err := card.FromID(id - FirstTradeCardID)
		if err != nil {
			return Action{}, err
		}
		return Trade(c), nil
	default:
		return Action{}, fmt.Errorf("action id %d: %w", id, apperrors.ErrInvalidAction)
	}
}

func (a Action) String() string {
	return a.Card.String()
}

// IDs 批量转换为动作编号
func IDs(actions []Action) []int {
	ids := make([]int, len(actions))
	for i, a := range actions {
		ids[i] = a.ID()
	}
	return ids
}
