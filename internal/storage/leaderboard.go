package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key
	agentStatsKey  = "maria:agent:stats:"
	leaderboardKey = "maria:leaderboard:payoff"
)

// AgentStats 策略的累计统计
type AgentStats struct {
	Name        string `json:"name"`
	TotalGames  int    `json:"total_games"`
	Wins        int    `json:"wins"`
	TotalPayoff int    `json:"total_payoff"`
	MoonShots   int    `json:"moon_shots"`

	LastPlayedAt int64 `json:"last_played_at"`
	CreatedAt    int64 `json:"created_at"`
}

// AveragePayoff 平均收益
func (s *AgentStats) AveragePayoff() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return float64(s.TotalPayoff) / float64(s.TotalGames)
}

// WinRate 胜率
func (s *AgentStats) WinRate() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.TotalGames)
}

// GameOutcome 某个策略在一场对局中的表现
type GameOutcome struct {
	Agent     string
	Payoff    int
	Won       bool
	MoonShots int
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	TotalGames    int     `json:"total_games"`
	Wins          int     `json:"wins"`
	AveragePayoff float64 `json:"average_payoff"`
	WinRate       float64 `json:"win_rate"`
}

// LeaderboardManager 排行榜管理器，按平均收益排序
type LeaderboardManager struct {
	redis *redis.Client
}

// NewLeaderboardManager 创建排行榜管理器
func NewLeaderboardManager(client *redis.Client) *LeaderboardManager {
	return &LeaderboardManager{redis: client}
}

// GetAgentStats 获取策略统计，不存在时返回 nil
func (lm *LeaderboardManager) GetAgentStats(ctx context.Context, name string) (*AgentStats, error) {
	data, err := lm.redis.Get(ctx, agentStatsKey+name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats AgentStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (lm *LeaderboardManager) saveAgentStats(ctx context.Context, stats *AgentStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return lm.redis.Set(ctx, agentStatsKey+stats.Name, data, 0).Err()
}

// RecordResult 记录一场对局结果并更新排行榜
func (lm *LeaderboardManager) RecordResult(ctx context.Context, outcome GameOutcome) error {
	stats, err := lm.GetAgentStats(ctx, outcome.Agent)
	if err != nil {
		return err
	}
	now := time.Now().Unix()
	if stats == nil {
		stats = &AgentStats{Name: outcome.Agent, CreatedAt: now}
	}

	stats.TotalGames++
	stats.TotalPayoff += outcome.Payoff
	stats.MoonShots += outcome.MoonShots
	if outcome.Won {
		stats.Wins++
	}
	stats.LastPlayedAt = now

	if err := lm.saveAgentStats(ctx, stats); err != nil {
		return err
	}
	return lm.redis.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  stats.AveragePayoff(),
		Member: stats.Name,
	}).Err()
}

// GetLeaderboard 获取排行榜（从高到低）
func (lm *LeaderboardManager) GetLeaderboard(ctx context.Context, offset, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	results, err := lm.redis.ZRevRangeWithScores(ctx, leaderboardKey, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for i, result := range results {
		name, ok := result.Member.(string)
		if !ok {
			continue
		}
		stats, err := lm.GetAgentStats(ctx, name)
		if err != nil {
			return nil, err
		}
		if stats == nil {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			Rank:          offset + i + 1,
			Name:          name,
			TotalGames:    stats.TotalGames,
			Wins:          stats.Wins,
			AveragePayoff: result.Score,
			WinRate:       stats.WinRate(),
		})
	}
	return entries, nil
}
