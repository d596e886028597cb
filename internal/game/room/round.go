package room

import (
	"log"
	"sort"
	"time"

	"github.com/vietcards/lieng-server/internal/apperrors"
	"github.com/vietcards/lieng-server/internal/game/card"
	"github.com/vietcards/lieng-server/internal/game/rule"
	"github.com/vietcards/lieng-server/internal/protocol"
	"github.com/vietcards/lieng-server/internal/protocol/convert"
)

// StartRound 开始一局：换新牌堆、给每个在座玩家发牌、启动倒计时。
// 房间不存在时静默忽略。resolved 状态的房间可以直接重新开局。
func (rm *RoomManager) StartRound(roomID string) {
	room := rm.GetRoom(roomID)
	if room == nil {
		log.Printf("⚠️ 房间 %s 开局被拒: %v", roomID, apperrors.ErrRoomNotFound)
		return
	}

	room.mu.Lock()

	deck := card.NewDeck()
	deck.Shuffle()

	// 先把所有手牌发出来，发牌失败时整局不动（守住牌数守恒）
	hands := make(map[string][]card.Card, len(room.Players))
	for id := range room.Players {
		hand, err := deck.Deal(rm.game.HandSize)
		if err != nil {
			room.mu.Unlock()
			log.Printf("❌ 房间 %s 发牌失败: %v", roomID, err)
			return
		}
		hands[id] = hand
	}

	for id, player := range room.Players {
		player.Hand = hands[id]
		player.SwapsUsed = 0
		player.Pending = nil
	}
	room.Deck = deck
	room.State = RoomStatePlaying

	// 上一局的倒计时可能还挂着（理论上 resolved 后已清空，防御一下）
	room.stopTimerLocked()
	room.roundTimer = time.AfterFunc(rm.game.RoundDurationTime(), func() {
		rm.ResolveRound(roomID)
	})

	room.broadcastLocked(protocol.MustNewMessage(protocol.MsgGameStarted, protocol.GameStartedPayload{
		RoomID:   roomID,
		Players:  room.playersInfoWithHandsLocked(),
		Duration: rm.game.RoundDuration,
	}))
	room.mu.Unlock()

	log.Printf("🎲 房间 %s 开局，%d 名玩家，%d 秒后结算", roomID, len(hands), rm.game.RoundDuration)
	rm.saveSnapshot(room)
}

// ResolveRound 结算一局：评估所有满手牌玩家、排名、广播结果。
// 由倒计时触发。房间已解散或本局已结算时为无害的空操作。
func (rm *RoomManager) ResolveRound(roomID string) {
	rm.mu.RLock()
	room, exists := rm.rooms[roomID]
	rm.mu.RUnlock()
	if !exists {
		log.Printf("⏰ 倒计时触发时房间 %s 已解散，忽略", roomID)
		return
	}

	room.mu.Lock()
	if room.State != RoomStatePlaying {
		room.mu.Unlock()
		return
	}

	// 中途加入的玩家没有手牌，不参与结算（中途退出的玩家已经不在列表里）
	type ranked struct {
		id     string
		player *Player
		result rule.HandResult
	}
	entries := make([]ranked, 0, len(room.Players))
	for id, player := range room.Players {
		if len(player.Hand) != rm.game.HandSize {
			continue
		}
		entries = append(entries, ranked{id: id, player: player, result: rule.Evaluate(player.Hand)})
	}

	// 先按 ID 固定初始顺序，再做稳定排序：完全平手时先入序者胜
	sort.Slice(entries, func(i, j int) bool { return entries[i].id < entries[j].id })
	sort.SliceStable(entries, func(i, j int) bool {
		return rule.Compare(entries[i].result, entries[j].result) > 0
	})

	results := make([]protocol.HandResult, len(entries))
	for i, e := range entries {
		results[i] = protocol.HandResult{
			PlayerID:   e.id,
			PlayerName: e.player.Client.GetName(),
			Hand:       convert.CardsToInfos(e.player.Hand),
			TypeName:   e.result.Name(),
			TypeRank:   e.result.Rank,
		}
	}

	var winner *protocol.HandResult
	if len(results) > 0 {
		winner = &results[0]
	}

	room.State = RoomStateResolved
	room.Deck = nil
	room.stopTimerLocked()

	room.broadcastLocked(protocol.MustNewMessage(protocol.MsgRoundResult, protocol.RoundResultPayload{
		RoomID:  roomID,
		Results: results,
		Winner:  winner,
	}))
	room.mu.Unlock()

	if winner != nil {
		log.Printf("🏆 房间 %s 结算完成，赢家 %s（%s）", roomID, winner.PlayerName, winner.TypeName)
	} else {
		log.Printf("🏁 房间 %s 结算完成，无人持有完整手牌", roomID)
	}

	rm.saveSnapshot(room)
	rm.recordRound(roomID, results, winner)
}
