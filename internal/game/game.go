package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/palemoky/maria/internal/apperrors"
	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/player"
	"github.com/palemoky/maria/internal/game/round"
	"github.com/palemoky/maria/internal/game/rule"
)

// TerminalScore 任意一家累计分不高于此值时游戏结束
const TerminalScore = -51

// Options 游戏参数
type Options struct {
	Seed          uint64 // 随机种子，0 表示取当前时间
	AllowStepBack bool   // 是否记录快照以支持悔棋
}

func newPCG(seed uint64) *rand.PCG {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// NewRand 用种子创建可复现的随机源
func NewRand(seed uint64) *rand.Rand {
	return rand.New(newPCG(seed))
}

// RoundResult 一局结束时的结算记录
type RoundResult struct {
	Number     int
	DealerSeat player.Seat
	Moves      []action.Move
	Points     [player.NumSeats]int // 本局失分
	ShotMoon   []player.Seat
	Scores     [player.NumSeats]int // 结算后的累计分
}

// snapshot 每次动作前的完整拷贝，包括随机源的内部状态
type snapshot struct {
	rng         []byte
	round       *round.Round
	scores      [player.NumSeats]int
	roundNumber int
	results     []RoundResult
}

// Game 多局编排：开局、结算、换局、终局判定与悔棋
type Game struct {
	src           *rand.PCG
	rng           *rand.Rand
	allowStepBack bool

	round       *round.Round
	scores      [player.NumSeats]int
	roundNumber int
	results     []RoundResult
	history     []snapshot
}

// New 创建游戏，需要调用 Start 开局
func New(opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := newPCG(seed)
	return &Game{
		src:           src,
		rng:           rand.New(src),
		allowStepBack: opts.AllowStepBack,
	}
}

// Start 开始第一局：随机选择发牌员，每人发 13 张，由持梅花 2 的玩家先行动
func (g *Game) Start() (*State, player.Seat, error) {
	g.scores = [player.NumSeats]int{}
	g.roundNumber = 1
	g.results = nil
	g.history = nil

	dealerSeat := player.Seat(g.rng.IntN(player.NumSeats))
	if err := g.startRound(dealerSeat); err != nil {
		return nil, 0, err
	}
	return g.currentState()
}

func (g *Game) startRound(dealerSeat player.Seat) error {
	r, err := round.New(g.roundNumber, dealerSeat, g.rng)
	if err != nil {
		return err
	}
	if err := r.DealHands(); err != nil {
		return err
	}
	g.round = r
	return nil
}

// Apply 执行一个合法动作；本局结束时结算并开始下一局，或者终局
func (g *Game) Apply(a action.Action) (*State, player.Seat, error) {
	if g.round == nil {
		return nil, 0, fmt.Errorf("游戏尚未开始: %w", apperrors.ErrIllegalAction)
	}
	if g.IsTerminal() {
		return nil, 0, apperrors.ErrGameOver
	}
	if a.Kind != action.PlayCard && a.Kind != action.TradeCard {
		return nil, 0, fmt.Errorf("%s: %w", a.Kind, apperrors.ErrUnknownAction)
	}

	legal, err := rule.LegalActions(g.round)
	if err != nil {
		return nil, 0, err
	}
	if !slices.Contains(legal, a) {
		return nil, 0, fmt.Errorf("%s %s 不在合法动作中: %w", a.Kind, a, apperrors.ErrIllegalAction)
	}

	if g.allowStepBack {
		snap, err := g.snapshot()
		if err != nil {
			return nil, 0, err
		}
		g.history = append(g.history, snap)
	}

	switch a.Kind {
	case action.PlayCard:
		err = g.round.PlayCard(a)
	case action.TradeCard:
		err = g.round.TradeCard(a)
	}
	if err != nil {
		return nil, 0, err
	}

	if g.round.IsOver() {
		if err := g.finishRound(); err != nil {
			return nil, 0, err
		}
	}
	return g.currentState()
}

// ApplyID 解码动作编号后执行
func (g *Game) ApplyID(id int) (*State, player.Seat, error) {
	a, err := action.FromID(id)
	if err != nil {
		return nil, 0, err
	}
	return g.Apply(a)
}

func (g *Game) finishRound() error {
	result := ScoreRound(g.scores, g.round.WonPiles())
	g.scores = result.Scores
	g.results = append(g.results, RoundResult{
		Number:     g.round.Number(),
		DealerSeat: g.round.DealerSeat(),
		Moves:      g.round.Moves(),
		Points:     result.Points,
		ShotMoon:   result.ShotMoon,
		Scores:     result.Scores,
	})
	if g.IsTerminal() {
		return nil
	}
	g.roundNumber++
	return g.startRound(g.round.DealerSeat().Next())
}

func (g *Game) snapshot() (snapshot, error) {
	rng, err := g.src.MarshalBinary()
	if err != nil {
		return snapshot{}, fmt.Errorf("随机源快照失败: %w", err)
	}
	return snapshot{
		rng:         rng,
		round:       g.round.Clone(),
		scores:      g.scores,
		roundNumber: g.roundNumber,
		results:     slices.Clone(g.results),
	}, nil
}

// StepBack 撤销最近一次动作，随机源一并回退；没有历史时返回 false
func (g *Game) StepBack() bool {
	if len(g.history) == 0 {
		return false
	}
	last := len(g.history) - 1
	s := g.history[last]
	if err := g.src.UnmarshalBinary(s.rng); err != nil {
		return false
	}
	g.history = g.history[:last]

	g.round = s.round
	g.scores = s.scores
	g.roundNumber = s.roundNumber
	g.results = s.results
	return true
}

// HistorySize 可撤销的步数
func (g *Game) HistorySize() int {
	return len(g.history)
}

// LegalActions 当前行动玩家的合法动作
func (g *Game) LegalActions() ([]action.Action, error) {
	if g.round == nil || g.IsTerminal() {
		return nil, nil
	}
	return rule.LegalActions(g.round)
}

// IsTerminal 任意一家累计分不高于 -51
func (g *Game) IsTerminal() bool {
	for _, s := range g.scores {
		if s <= TerminalScore {
			return true
		}
	}
	return false
}

// Scores 累计分
func (g *Game) Scores() [player.NumSeats]int {
	return g.scores
}

// Payoffs 收益即累计分，越高越好
func (g *Game) Payoffs() [player.NumSeats]int {
	return g.scores
}

// CurrentSeat 当前行动玩家；尚未开局时为 player.NoSeat
func (g *Game) CurrentSeat() player.Seat {
	if g.round == nil {
		return player.NoSeat
	}
	return g.round.CurrentSeat()
}

// Round 当前局；终局后为最后一局
func (g *Game) Round() *round.Round {
	return g.round
}

// RoundNumber 当前局数
func (g *Game) RoundNumber() int {
	return g.roundNumber
}

// Results 已完成各局的结算记录
func (g *Game) Results() []RoundResult {
	return slices.Clone(g.results)
}

// NumActions 动作空间大小
func (g *Game) NumActions() int {
	return action.NumActions
}

// NumPlayers 玩家人数
func (g *Game) NumPlayers() int {
	return player.NumSeats
}
