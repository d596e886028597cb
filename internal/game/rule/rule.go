package rule

import (
	"fmt"
	"sort"

	"github.com/vietcards/lieng-server/internal/game/card"
)

// HandType 定义三张牌的牌型
type HandType int

const (
	Bust      HandType = iota // 饼（Bù）：点数为 0
	Point                     // 点数牌：1-9 点
	ThreeFace HandType = 3    // 三花（Ba Tây）：三张均为 J/Q/K
	Straight  HandType = 4    // 顺三（Liêng）：三张点数连续
	Triple    HandType = 5    // 豹子（Sáp）：三张点数相同
)

// handTypeNames 牌型名称映射表
var handTypeNames = map[HandType]string{
	Bust:      "Bù",
	Point:     "Điểm",
	ThreeFace: "Ba Tây",
	Straight:  "Liêng",
	Triple:    "Sáp",
}

func (h HandType) String() string {
	if name, ok := handTypeNames[h]; ok {
		return name
	}
	return "无效"
}

// HandResult 一手牌的评估结果
type HandResult struct {
	Type        HandType // 牌型
	Rank        int      // 牌型等级，等级高者胜
	Tiebreak    int      // 同牌型内的比较值
	HasTiebreak bool     // Ba Tây 和 Bù 没有比较值，同牌型算平
}

// Name 返回展示用的牌型名称，点数牌附带点数
func (r HandResult) Name() string {
	if r.Type == Point {
		return fmt.Sprintf("%s %d", r.Type, r.Tiebreak)
	}
	return r.Type.String()
}

// CalcPoint 计算三张牌的点数：牌值之和对 10 取模，J/Q/K 算 10，A 算 1
func CalcPoint(cards []card.Card) int {
	total := 0
	for _, c := range cards {
		total += c.Rank.PointValue()
	}
	return total % 10
}

// Evaluate 评估三张牌，返回牌型和比较值。
// 优先级：Sáp > Liêng > Ba Tây > Điểm > Bù。
func Evaluate(cards []card.Card) HandResult {
	if len(cards) != 3 {
		return HandResult{Type: Bust, Rank: int(Bust)}
	}

	// 豹子：三张点数相同，比较值为点数（A 最小，保留原始规则）
	if cards[0].Rank == cards[1].Rank && cards[1].Rank == cards[2].Rank {
		return HandResult{Type: Triple, Rank: int(Triple), Tiebreak: int(cards[0].Rank), HasTiebreak: true}
	}

	nums := []int{int(cards[0].Rank), int(cards[1].Rank), int(cards[2].Rank)}
	sort.Ints(nums)

	// 顺三：三张点数连续（A=1 只能做最小），比较值为最大点数
	if nums[1] == nums[0]+1 && nums[2] == nums[1]+1 {
		return HandResult{Type: Straight, Rank: int(Straight), Tiebreak: nums[2], HasTiebreak: true}
	}

	// 三花：三张均为花牌，同牌型算平
	if cards[0].Rank.IsFace() && cards[1].Rank.IsFace() && cards[2].Rank.IsFace() {
		return HandResult{Type: ThreeFace, Rank: int(ThreeFace)}
	}

	point := CalcPoint(cards)
	if point == 0 {
		return HandResult{Type: Bust, Rank: int(Bust)}
	}
	return HandResult{Type: Point, Rank: int(Point), Tiebreak: point, HasTiebreak: true}
}

// Compare 比较两手牌：a 胜返回正数，b 胜返回负数，平局返回 0。
// 先比牌型等级，同级再比 Tiebreak；没有 Tiebreak 的牌型同级算平。
func Compare(a, b HandResult) int {
	if a.Rank != b.Rank {
		return a.Rank - b.Rank
	}
	if a.HasTiebreak && b.HasTiebreak {
		return a.Tiebreak - b.Tiebreak
	}
	return 0
}
