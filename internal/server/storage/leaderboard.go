package storage

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key
	playerStatsKey = "player:stats:" // HSET，按昵称统计
	winsKey        = "leaderboard:wins"
)

// PlayerStats 玩家统计数据。身份不持久（非目标），按昵称聚合。
type PlayerStats struct {
	PlayerName string `json:"player_name"`
	Rounds     int    `json:"rounds"` // 参与局数
	Wins       int    `json:"wins"`   // 胜局数
}

// WinRate 胜率（百分比）
func (s *PlayerStats) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds) * 100
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	PlayerName string `json:"player_name"`
	Wins       int    `json:"wins"`
}

// LeaderboardManager 胜局排行榜管理器
type LeaderboardManager struct {
	redis *redis.Client
}

// NewLeaderboardManager 创建排行榜管理器
func NewLeaderboardManager(client *redis.Client) *LeaderboardManager {
	return &LeaderboardManager{redis: client}
}

// RecordRound 记录一局结果：所有参与者局数 +1，赢家胜局 +1 并计入排行榜
func (lm *LeaderboardManager) RecordRound(ctx context.Context, playerNames []string, winnerName string) error {
	pipe := lm.redis.Pipeline()
	for _, name := range playerNames {
		key := playerStatsKey + name
		pipe.HIncrBy(ctx, key, "rounds", 1)
		if name == winnerName {
			pipe.HIncrBy(ctx, key, "wins", 1)
			pipe.ZIncrBy(ctx, winsKey, 1, name)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

// GetPlayerStats 获取玩家统计，从未参与过时返回 nil
func (lm *LeaderboardManager) GetPlayerStats(ctx context.Context, playerName string) (*PlayerStats, error) {
	key := playerStatsKey + playerName
	data, err := lm.redis.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	rounds, _ := strconv.Atoi(data["rounds"])
	wins, _ := strconv.Atoi(data["wins"])
	return &PlayerStats{
		PlayerName: playerName,
		Rounds:     rounds,
		Wins:       wins,
	}, nil
}

// GetLeaderboard 获取胜局排行榜（从高到低）
func (lm *LeaderboardManager) GetLeaderboard(ctx context.Context, offset, limit int) ([]LeaderboardEntry, error) {
	results, err := lm.redis.ZRevRangeWithScores(ctx, winsKey, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for i, result := range results {
		name, ok := result.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			Rank:       offset + i + 1,
			PlayerName: name,
			Wins:       int(result.Score),
		})
	}
	return entries, nil
}

// GetPlayerRank 获取玩家排名，未上榜返回 -1
func (lm *LeaderboardManager) GetPlayerRank(ctx context.Context, playerName string) (int64, error) {
	rank, err := lm.redis.ZRevRank(ctx, winsKey, playerName).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, nil // 未上榜
		}
		return -1, err
	}
	return rank + 1, nil // Redis 排名从 0 开始
}
