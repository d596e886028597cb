package card

import (
	"math/rand/v2"
	"strconv"
)

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

const (
	Spade   Suit = iota // 黑桃
	Heart               // 红心
	Club                // 梅花
	Diamond             // 方块
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Club:    "♣",
	Diamond: "♦",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

const (
	RankA Rank = iota + 1 // A 在三张牌玩法中算 1 点
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	RankA:  "A",
	Rank2:  "2",
	Rank3:  "3",
	Rank4:  "4",
	Rank5:  "5",
	Rank6:  "6",
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "10",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// PointValue 返回算点用的牌值：J/Q/K 算 10 点，A 算 1 点，其余按面值
func (r Rank) PointValue() int {
	if r >= RankJ {
		return 10
	}
	return int(r)
}

// IsFace 是否为花牌（J/Q/K）
func (r Rank) IsFace() bool {
	return r >= RankJ
}

// Card 定义一张牌
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// Deck 定义一副牌
type Deck []Card

// NewDeck 生成一副完整的 52 张牌（4 花色 × 13 点数，无大小王）
func NewDeck() Deck {
	deck := make(Deck, 0, 52)
	for s := Spade; s <= Diamond; s++ {
		for r := RankA; r <= RankK; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle 洗牌（Fisher-Yates 均匀洗牌）
func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Deal 从牌堆顶部发 n 张牌，剩余不足时返回错误
func (d *Deck) Deal(n int) ([]Card, error) {
	if n > len(*d) {
		return nil, ErrInsufficientCards
	}
	dealt := (*d)[:n]
	*d = (*d)[n:]
	return dealt, nil
}
