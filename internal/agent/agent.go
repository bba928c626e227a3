package agent

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/palemoky/maria/internal/apperrors"
	"github.com/palemoky/maria/internal/game"
	"github.com/palemoky/maria/internal/game/action"
)

// 内置策略名称
const (
	NameRandom  = "random"
	NameLowCard = "lowcard"
)

// Agent 决策者：根据自己视角的状态选择一个合法动作
type Agent interface {
	Name() string
	Step(state *game.State) (action.Action, error)
}

// New 按名称创建策略
func New(name string, rng *rand.Rand) (Agent, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameRandom:
		return NewRandom(rng), nil
	case NameLowCard:
		return LowCard{}, nil
	case NameAvoider:
		return Avoider{}, nil
	default:
		return nil, fmt.Errorf("unknown agent: %q", name)
	}
}

func checkLegal(state *game.State) error {
	if state == nil || len(state.LegalActions) == 0 {
		return fmt.Errorf("没有可选动作: %w", apperrors.ErrIllegalAction)
	}
	return nil
}

// Random 新手策略：在合法动作中均匀随机选择
type Random struct {
	rng *rand.Rand
}

// NewRandom 创建随机策略
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Name() string { return NameRandom }

func (r *Random) Step(state *game.State) (action.Action, error) {
	if err := checkLegal(state); err != nil {
		return action.Action{}, err
	}
	return state.LegalActions[r.rng.IntN(len(state.LegalActions))], nil
}

// LowCard 简单规则策略：传牌时送出最大的牌，出牌时打出最小的牌
type LowCard struct{}

func (LowCard) Name() string { return NameLowCard }

func (LowCard) Step(state *game.State) (action.Action, error) {
	if err := checkLegal(state); err != nil {
		return action.Action{}, err
	}
	byID := func(a, b action.Action) int { return a.Card.ID() - b.Card.ID() }
	if state.LegalActions[0].Kind == action.TradeCard {
		return slices.MaxFunc(state.LegalActions, byID), nil
	}
	return slices.MinFunc(state.LegalActions, byID), nil
}
