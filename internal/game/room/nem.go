package room

import (
	"log"
	"math/rand/v2"

	"github.com/vietcards/lieng-server/internal/apperrors"
	"github.com/vietcards/lieng-server/internal/protocol"
	"github.com/vietcards/lieng-server/internal/protocol/convert"
)

// RequestSwap 发起换牌请求：记下发起方想换出的手牌位置并向全房间广播邀约。
// 未应答的旧请求会被覆盖。房间不存在、不在对局中、位置越界或
// 次数已用完时静默忽略。
func (rm *RoomManager) RequestSwap(roomID, requesterID string, slot int) {
	room := rm.GetRoom(roomID)
	if room == nil {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.State != RoomStatePlaying {
		log.Printf("🙅 房间 %s 换牌请求被拒: %v", roomID, apperrors.ErrGameNotStart)
		return
	}

	requester, exists := room.Players[requesterID]
	if !exists || len(requester.Hand) != rm.game.HandSize {
		return
	}
	if slot < 0 || slot >= rm.game.HandSize {
		return
	}
	if requester.SwapsUsed >= rm.game.MaxSwaps {
		log.Printf("🙅 玩家 %s 换牌被拒: %v", requester.Client.GetName(), apperrors.ErrSwapLimit)
		return
	}

	requester.Pending = &NemRequest{Slot: slot}

	room.broadcastLocked(protocol.MustNewMessage(protocol.MsgNemOffer, protocol.NemOfferPayload{
		From: requesterID,
		Name: requester.Client.GetName(),
	}))
}

// AcceptSwap 接受换牌：发起方指定的那张牌与接受方随机位置的一张牌互换。
// 接受方不能挑选自己换出哪张，这是玩法的核心张力，随机位置不可改。
// 只有发起方消耗换牌次数。房间、发起方不存在或没有待处理请求时静默忽略。
func (rm *RoomManager) AcceptSwap(roomID, accepterID, targetID string) {
	room := rm.GetRoom(roomID)
	if room == nil {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.State != RoomStatePlaying {
		return
	}

	requester, exists := room.Players[targetID]
	if !exists {
		log.Printf("🙅 接受换牌被拒: %v (玩家 %s)", apperrors.ErrPlayerNotFound, targetID)
		return
	}
	if requester.Pending == nil {
		log.Printf("🙅 接受换牌被拒: %v (玩家 %s)", apperrors.ErrNoPendingNem, targetID)
		return
	}
	accepter, exists := room.Players[accepterID]
	if !exists || len(accepter.Hand) != rm.game.HandSize {
		return
	}

	fromSlot := requester.Pending.Slot
	toSlot := rand.IntN(rm.game.HandSize)

	requester.Hand[fromSlot], accepter.Hand[toSlot] = accepter.Hand[toSlot], requester.Hand[fromSlot]

	requester.SwapsUsed++
	requester.Pending = nil

	log.Printf("🔄 玩家 %s 与 %s 在房间 %s 完成换牌",
		requester.Client.GetName(), accepter.Client.GetName(), roomID)

	room.broadcastLocked(protocol.MustNewMessage(protocol.MsgNemSuccess, protocol.NemSuccessPayload{
		From: requester.Client.GetName(),
		To:   accepter.Client.GetName(),
	}))

	// 手牌只私发给本人，不对房间公开
	requester.Client.SendMessage(protocol.MustNewMessage(protocol.MsgYourCards, protocol.YourCardsPayload{
		Cards: convert.CardsToInfos(requester.Hand),
	}))
	accepter.Client.SendMessage(protocol.MustNewMessage(protocol.MsgYourCards, protocol.YourCardsPayload{
		Cards: convert.CardsToInfos(accepter.Hand),
	}))
}
