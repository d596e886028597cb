//go:build !production

package room

import (
	"github.com/vietcards/lieng-server/internal/types"
)

// NewMockRoom 创建测试用的 Room
func NewMockRoom(id string, client types.ClientInterface) *Room {
	room := &Room{
		ID:      id,
		State:   RoomStateWaiting,
		Players: make(map[string]*Player),
	}
	if client != nil {
		room.Players[client.GetID()] = &Player{Client: client}
	}
	return room
}

// AddRoomForTest 添加房间用于测试
func (rm *RoomManager) AddRoomForTest(room *Room) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.rooms[room.ID] = room
}
