package round

// Phase 一局的阶段，只会单向推进
type Phase int

const (
	PhaseTrading Phase = iota // 传牌
	PhasePlaying              // 出牌
	PhaseOver                 // 本局结束
)

var phaseNames = map[Phase]string{
	PhaseTrading: "trade card",
	PhasePlaying: "play card",
	PhaseOver:    "round over",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}
