package convert

import (
	"github.com/vietcards/lieng-server/internal/game/card"
	"github.com/vietcards/lieng-server/internal/protocol"
)

// CardToInfo 将 Card 转换为协议层的 CardInfo
func CardToInfo(c card.Card) protocol.CardInfo {
	return protocol.CardInfo{
		Suit:  int(c.Suit),
		Rank:  int(c.Rank),
		Label: c.String(),
	}
}

// CardsToInfos 批量转换
func CardsToInfos(cards []card.Card) []protocol.CardInfo {
	infos := make([]protocol.CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = CardToInfo(c)
	}
	return infos
}
