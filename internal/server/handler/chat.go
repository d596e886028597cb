package handler

import (
	"strings"
	"time"

	"github.com/vietcards/lieng-server/internal/protocol"
	"github.com/vietcards/lieng-server/internal/types"
)

const maxChatLength = 256

// handleChat 处理聊天消息：只在发送者所在的房间内广播
func (h *Handler) handleChat(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ChatPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	content := strings.TrimSpace(payload.Content)
	if content == "" {
		return
	}
	if len(content) > maxChatLength {
		content = content[:maxChatLength]
	}

	room := h.roomManager.GetRoom(payload.RoomID)
	if room == nil || !room.HasPlayer(client.GetID()) {
		return
	}

	room.Broadcast(protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{
		SenderID:   client.GetID(),
		SenderName: client.GetName(),
		RoomID:     payload.RoomID,
		Content:    content,
		Time:       time.Now().UnixMilli(),
	}))
}
