package handler

import (
	"github.com/vietcards/lieng-server/internal/protocol"
	"github.com/vietcards/lieng-server/internal/types"
)

// 游戏操作失败时一律静默忽略：发起方看不到错误响应，
// 房间状态也不发生变化。协议层只拦截格式错误的消息。

// handleStartGame 处理开始一局
func (h *Handler) handleStartGame(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.StartGamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	h.roomManager.StartRound(payload.RoomID)
}

// handleRequestNem 处理发起换牌
func (h *Handler) handleRequestNem(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.RequestNemPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	h.roomManager.RequestSwap(payload.RoomID, client.GetID(), payload.CardIndex)
}

// handleAcceptNem 处理接受换牌
func (h *Handler) handleAcceptNem(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.AcceptNemPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	h.roomManager.AcceptSwap(payload.RoomID, client.GetID(), payload.TargetID)
}
