package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLeaderboard(t *testing.T) (*LeaderboardManager, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return NewLeaderboardManager(client), mr
}

func TestLeaderboard_RecordRound(t *testing.T) {
	lm, mr := newTestLeaderboard(t)
	defer mr.Close()
	ctx := context.Background()

	err := lm.RecordRound(ctx, []string{"An", "Binh"}, "An")
	require.NoError(t, err)
	err = lm.RecordRound(ctx, []string{"An", "Binh"}, "Binh")
	require.NoError(t, err)
	err = lm.RecordRound(ctx, []string{"An", "Binh"}, "An")
	require.NoError(t, err)

	stats, err := lm.GetPlayerStats(ctx, "An")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.Rounds)
	assert.Equal(t, 2, stats.Wins)
	assert.InDelta(t, 66.7, stats.WinRate(), 0.1)
}

func TestLeaderboard_GetPlayerStats_Unknown(t *testing.T) {
	lm, mr := newTestLeaderboard(t)
	defer mr.Close()

	stats, err := lm.GetPlayerStats(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, stats)
}

func TestLeaderboard_Ranking(t *testing.T) {
	lm, mr := newTestLeaderboard(t)
	defer mr.Close()
	ctx := context.Background()

	players := []string{"An", "Binh", "Cuong"}
	require.NoError(t, lm.RecordRound(ctx, players, "An"))
	require.NoError(t, lm.RecordRound(ctx, players, "An"))
	require.NoError(t, lm.RecordRound(ctx, players, "Binh"))

	entries, err := lm.GetLeaderboard(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2) // Cuong never won, not on the board

	assert.Equal(t, "An", entries[0].PlayerName)
	assert.Equal(t, 2, entries[0].Wins)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Binh", entries[1].PlayerName)

	rank, err := lm.GetPlayerRank(ctx, "An")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rank)

	rank, err = lm.GetPlayerRank(ctx, "Cuong")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), rank)
}
