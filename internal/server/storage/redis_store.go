package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key 前缀
	roomKeyPrefix   = "room:"
	roundHistoryKey = "round:history"

	// 房间快照过期时间
	roomExpiration = 2 * time.Hour

	// 保留的历史结算条数
	roundHistoryLimit = 100
)

// RoomData 房间快照（用于 Redis 序列化，只做观测，不用于恢复对局）
type RoomData struct {
	ID        string       `json:"id"`
	State     int          `json:"state"`
	Players   []PlayerData `json:"players"`
	DeckLeft  int          `json:"deck_left"`
	UpdatedAt int64        `json:"updated_at"`
}

// PlayerData 玩家快照
type PlayerData struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CardCount int    `json:"card_count"`
	SwapsUsed int    `json:"swaps_used"`
}

// RoundRecord 一局的结算记录
type RoundRecord struct {
	RoomID     string `json:"room_id"`
	WinnerID   string `json:"winner_id"`
	WinnerName string `json:"winner_name"`
	HandType   string `json:"hand_type"`
	Players    int    `json:"players"`
	EndedAt    int64  `json:"ended_at"`
}

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// --- 房间快照 ---

// SaveRoom 保存房间快照到 Redis
func (rs *RedisStore) SaveRoom(ctx context.Context, roomID string, data *RoomData) error {
	if data == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化房间快照失败: %w", err)
	}

	key := roomKeyPrefix + roomID
	return rs.client.Set(ctx, key, jsonData, roomExpiration).Err()
}

// LoadRoom 从 Redis 加载房间快照
func (rs *RedisStore) LoadRoom(ctx context.Context, roomID string) (*RoomData, error) {
	key := roomKeyPrefix + roomID
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // 房间不存在
		}
		return nil, err
	}

	var roomData RoomData
	if err := json.Unmarshal(data, &roomData); err != nil {
		return nil, fmt.Errorf("反序列化房间快照失败: %w", err)
	}

	return &roomData, nil
}

// DeleteRoom 从 Redis 删除房间快照
func (rs *RedisStore) DeleteRoom(ctx context.Context, roomID string) error {
	key := roomKeyPrefix + roomID
	return rs.client.Del(ctx, key).Err()
}

// --- 结算历史 ---

// AppendRoundRecord 追加一条结算记录，并裁剪到上限条数
func (rs *RedisStore) AppendRoundRecord(ctx context.Context, record *RoundRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("序列化结算记录失败: %w", err)
	}

	pipe := rs.client.Pipeline()
	pipe.LPush(ctx, roundHistoryKey, data)
	pipe.LTrim(ctx, roundHistoryKey, 0, roundHistoryLimit-1)
	_, err = pipe.Exec(ctx)
	return err
}

// RecentRounds 获取最近 n 条结算记录
func (rs *RedisStore) RecentRounds(ctx context.Context, n int) ([]RoundRecord, error) {
	items, err := rs.client.LRange(ctx, roundHistoryKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	records := make([]RoundRecord, 0, len(items))
	for _, item := range items {
		var record RoundRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			continue // 跳过损坏的记录
		}
		records = append(records, record)
	}
	return records, nil
}
