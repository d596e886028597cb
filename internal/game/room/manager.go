package room

import (
	"log"

	"github.com/vietcards/lieng-server/internal/protocol"
	"github.com/vietcards/lieng-server/internal/types"
)

// CreateOrGet 获取房间，不存在时创建。幂等。
func (rm *RoomManager) CreateOrGet(roomID string) *Room {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if room, exists := rm.rooms[roomID]; exists {
		return room
	}

	room := &Room{
		ID:      roomID,
		State:   RoomStateWaiting,
		Players: make(map[string]*Player),
	}
	rm.rooms[roomID] = room

	log.Printf("🏠 房间 %s 已创建", roomID)
	return room
}

// GetRoom 获取房间，不存在时返回 nil
func (rm *RoomManager) GetRoom(roomID string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[roomID]
}

// Join 加入房间（不存在时先创建）。任何状态下都允许加入：
// 对局中的新玩家本局拿不到手牌，等下一局开始时才发牌。
func (rm *RoomManager) Join(client types.ClientInterface, roomID string) *Room {
	room := rm.CreateOrGet(roomID)

	room.mu.Lock()
	room.Players[client.GetID()] = &Player{Client: client}

	log.Printf("👤 玩家 %s 加入房间 %s", client.GetName(), roomID)

	room.broadcastLocked(protocol.MustNewMessage(protocol.MsgRoomUpdate, protocol.RoomUpdatePayload{
		RoomID:  roomID,
		Players: room.playersInfoLocked(),
	}))
	room.mu.Unlock()

	rm.saveSnapshot(room)
	return room
}

// Leave 将玩家从其所在的每个房间移除（断线触发）。
// 广播成员变动，房间空了就解散并停掉倒计时。
func (rm *RoomManager) Leave(client types.ClientInterface) {
	playerID := client.GetID()

	rm.mu.Lock()
	defer rm.mu.Unlock()

	for roomID, room := range rm.rooms {
		room.mu.Lock()
		if _, exists := room.Players[playerID]; !exists {
			room.mu.Unlock()
			continue
		}

		delete(room.Players, playerID)
		log.Printf("👋 玩家 %s 离开房间 %s", client.GetName(), roomID)

		if len(room.Players) == 0 {
			// 倒计时照常触发也没关系，触发时房间已不在注册表中，
			// 但提前停掉可以少一次空转
			room.stopTimerLocked()
			room.mu.Unlock()

			delete(rm.rooms, roomID)
			rm.deleteSnapshot(roomID)
			log.Printf("🏠 房间 %s 已解散", roomID)
			continue
		}

		room.broadcastLocked(protocol.MustNewMessage(protocol.MsgRoomUpdate, protocol.RoomUpdatePayload{
			RoomID:  roomID,
			Players: room.playersInfoLocked(),
		}))
		room.mu.Unlock()

		rm.saveSnapshot(room)
	}
}

// GetRoomList 获取房间列表
func (rm *RoomManager) GetRoomList() []protocol.RoomListItem {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	var rooms []protocol.RoomListItem
	for id, room := range rm.rooms {
		room.mu.RLock()
		rooms = append(rooms, protocol.RoomListItem{
			RoomID:      id,
			PlayerCount: len(room.Players),
			Playing:     room.State == RoomStatePlaying,
		})
		room.mu.RUnlock()
	}
	return rooms
}

// GetRoomCount 获取房间数量
func (rm *RoomManager) GetRoomCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.rooms)
}
