package room

import (
	"sort"
	"sync"
	"time"

	"github.com/vietcards/lieng-server/internal/config"
	"github.com/vietcards/lieng-server/internal/game/card"
	"github.com/vietcards/lieng-server/internal/protocol"
	"github.com/vietcards/lieng-server/internal/protocol/convert"
	"github.com/vietcards/lieng-server/internal/server/storage"
	"github.com/vietcards/lieng-server/internal/types"
)

// NemRequest 待处理的换牌请求，每个玩家同时最多一个
type NemRequest struct {
	Slot int // 发起方要换出的手牌位置 0-2
}

// Player 房间中的玩家，归属且仅归属一个房间
type Player struct {
	Client    types.ClientInterface
	Hand      []card.Card // 0 张或 3 张
	SwapsUsed int         // 本局已使用的换牌次数
	Pending   *NemRequest // 未应答的换牌请求，nil 表示没有
}

// Room 游戏房间
type Room struct {
	ID      string             // 房间号，由客户端指定
	State   RoomState          // 房间状态
	Deck    card.Deck          // 牌堆，仅在 playing 期间存在
	Players map[string]*Player // 玩家列表，按连接 ID 索引

	roundTimer *time.Timer // 本局倒计时，房间解散时停止

	mu sync.RWMutex
}

// RoomManager 房间管理器，进程内唯一的房间注册表
type RoomManager struct {
	store       *storage.RedisStore
	leaderboard *storage.LeaderboardManager
	game        config.GameConfig
	rooms       map[string]*Room
	mu          sync.RWMutex
}

// NewRoomManager 创建房间管理器。store 和 leaderboard 可为 nil（关闭持久化镜像）。
func NewRoomManager(store *storage.RedisStore, leaderboard *storage.LeaderboardManager, game config.GameConfig) *RoomManager {
	return &RoomManager{
		store:       store,
		leaderboard: leaderboard,
		game:        game,
		rooms:       make(map[string]*Room),
	}
}

// Broadcast 广播消息给房间内所有玩家。调用方需持有房间锁。
func (r *Room) broadcastLocked(msg *protocol.Message) {
	for _, player := range r.Players {
		if player.Client != nil {
			player.Client.SendMessage(msg)
		}
	}
}

// playersInfoLocked 生成当前成员快照（不含手牌），按 ID 排序保证顺序稳定。
// 调用方需持有房间锁。
func (r *Room) playersInfoLocked() []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, 0, len(r.Players))
	for id, player := range r.Players {
		infos = append(infos, protocol.PlayerInfo{
			ID:        id,
			Name:      player.Client.GetName(),
			SwapsUsed: player.SwapsUsed,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// playersInfoWithHandsLocked 同上，但携带各自的手牌（仅用于 game_started）。
// 调用方需持有房间锁。
func (r *Room) playersInfoWithHandsLocked() []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, 0, len(r.Players))
	for id, player := range r.Players {
		infos = append(infos, protocol.PlayerInfo{
			ID:        id,
			Name:      player.Client.GetName(),
			Cards:     convert.CardsToInfos(player.Hand),
			SwapsUsed: player.SwapsUsed,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Broadcast 广播消息给房间内所有玩家
func (r *Room) Broadcast(msg *protocol.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.broadcastLocked(msg)
}

// HasPlayer 判断玩家是否在房间中
func (r *Room) HasPlayer(playerID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.Players[playerID]
	return exists
}

// stopTimerLocked 停止本局倒计时。调用方需持有房间锁。
func (r *Room) stopTimerLocked() {
	if r.roundTimer != nil {
		r.roundTimer.Stop()
		r.roundTimer = nil
	}
}
