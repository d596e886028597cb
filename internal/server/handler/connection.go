package handler

import (
	"log"
	"strings"
	"time"

	"github.com/vietcards/lieng-server/internal/protocol"
	"github.com/vietcards/lieng-server/internal/types"
)

const maxNameLength = 32

// handleLogin 处理设置昵称
func (h *Handler) handleLogin(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.LoginPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	name := strings.TrimSpace(payload.Username)
	if name != "" {
		if len(name) > maxNameLength {
			name = name[:maxNameLength]
		}
		client.SetName(name)
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgLoggedIn, protocol.LoggedInPayload{
		PlayerID:   client.GetID(),
		PlayerName: client.GetName(),
	}))

	log.Printf("👤 玩家 %s (%s) 已登录", client.GetName(), client.GetID())
}

// handlePing 处理心跳消息
func (h *Handler) handlePing(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PingPayload](msg)
	if err != nil {
		return
	}

	// 立即回复 pong
	client.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		ClientTimestamp: payload.Timestamp,
		ServerTimestamp: time.Now().UnixMilli(),
	}))
}
