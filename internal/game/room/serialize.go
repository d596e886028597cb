package room

import (
	"context"
	"log"
	"time"

	"github.com/vietcards/lieng-server/internal/protocol"
	"github.com/vietcards/lieng-server/internal/server/storage"
)

// ToRoomData 将 Room 转换为可序列化的快照
func (r *Room) ToRoomData() *storage.RoomData {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data := &storage.RoomData{
		ID:        r.ID,
		State:     int(r.State),
		Players:   make([]storage.PlayerData, 0, len(r.Players)),
		DeckLeft:  len(r.Deck),
		UpdatedAt: time.Now().Unix(),
	}

	for id, player := range r.Players {
		data.Players = append(data.Players, storage.PlayerData{
			ID:        id,
			Name:      player.Client.GetName(),
			CardCount: len(player.Hand),
			SwapsUsed: player.SwapsUsed,
		})
	}

	return data
}

// saveSnapshot 把房间快照写入 Redis。尽力而为：
// Redis 不可用只记日志，绝不影响对局。
func (rm *RoomManager) saveSnapshot(room *Room) {
	if rm.store == nil {
		return
	}
	go func() {
		if err := rm.store.SaveRoom(context.Background(), room.ID, room.ToRoomData()); err != nil {
			log.Printf("⚠️ 保存房间 %s 快照失败: %v", room.ID, err)
		}
	}()
}

// deleteSnapshot 删除房间快照
func (rm *RoomManager) deleteSnapshot(roomID string) {
	if rm.store == nil {
		return
	}
	go func() {
		if err := rm.store.DeleteRoom(context.Background(), roomID); err != nil {
			log.Printf("⚠️ 删除房间 %s 快照失败: %v", roomID, err)
		}
	}()
}

// recordRound 把结算写入历史和排行榜，同样尽力而为
func (rm *RoomManager) recordRound(roomID string, results []protocol.HandResult, winner *protocol.HandResult) {
	if winner == nil {
		return
	}

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.PlayerName
	}

	if rm.leaderboard != nil {
		go func() {
			if err := rm.leaderboard.RecordRound(context.Background(), names, winner.PlayerName); err != nil {
				log.Printf("⚠️ 更新排行榜失败: %v", err)
			}
		}()
	}

	if rm.store != nil {
		record := &storage.RoundRecord{
			RoomID:     roomID,
			WinnerID:   winner.PlayerID,
			WinnerName: winner.PlayerName,
			HandType:   winner.TypeName,
			Players:    len(results),
			EndedAt:    time.Now().Unix(),
		}
		go func() {
			if err := rm.store.AppendRoundRecord(context.Background(), record); err != nil {
				log.Printf("⚠️ 写入结算历史失败: %v", err)
			}
		}()
	}
}
