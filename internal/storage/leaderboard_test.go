package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_RecordResult(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	stats, err := store.GetAgentStats(ctx, "random")
	require.NoError(t, err)
	assert.Nil(t, stats)

	outcomes := []GameOutcome{
		{Agent: "random", Payoff: -60},
		{Agent: "random", Payoff: -10, Won: true},
		{Agent: "lowcard", Payoff: 4, Won: true, MoonShots: 1},
		{Agent: "lowcard", Payoff: -20},
	}
	for _, o := range outcomes {
		require.NoError(t, store.RecordResult(ctx, o))
	}

	stats, err = store.GetAgentStats(ctx, "lowcard")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.TotalGames)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, -16, stats.TotalPayoff)
	assert.Equal(t, 1, stats.MoonShots)
	assert.InDelta(t, -8.0, stats.AveragePayoff(), 1e-9)
	assert.InDelta(t, 0.5, stats.WinRate(), 1e-9)

	entries, err := store.GetLeaderboard(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "lowcard", entries[0].Name)
	assert.Equal(t, 1, entries[0].Rank)
	assert.InDelta(t, -8.0, entries[0].AveragePayoff, 1e-9)
	assert.Equal(t, "random", entries[1].Name)
	assert.Equal(t, 2, entries[1].Rank)
	assert.InDelta(t, -35.0, entries[1].AveragePayoff, 1e-9)

	entries, err = store.GetLeaderboard(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Rank)
}

func TestAgentStats_Empty(t *testing.T) {
	t.Parallel()

	var stats AgentStats
	assert.Zero(t, stats.AveragePayoff())
	assert.Zero(t, stats.WinRate())
}
