package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vietcards/lieng-server/internal/game/card"
)

func hand(ranks ...card.Rank) []card.Card {
	suits := []card.Suit{card.Spade, card.Heart, card.Diamond}
	cards := make([]card.Card, len(ranks))
	for i, r := range ranks {
		cards[i] = card.Card{Suit: suits[i%len(suits)], Rank: r}
	}
	return cards
}

func TestCalcPoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []card.Card
		point int
	}{
		{"2+3+4 = 9", hand(card.Rank2, card.Rank3, card.Rank4), 9},
		{"3+3+4 = 10 mod 10 = 0", hand(card.Rank3, card.Rank3, card.Rank4), 0},
		{"faces are worth 10", hand(card.RankJ, card.RankQ, card.Rank5), 5},
		{"ace is worth 1", hand(card.RankA, card.Rank2, card.Rank3), 6},
		{"10+10+10 = 0", hand(card.Rank10, card.RankK, card.RankQ), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.point, CalcPoint(tt.cards))
		})
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cards    []card.Card
		wantType HandType
		wantRank int
		tiebreak int
	}{
		{"triple kings", hand(card.RankK, card.RankK, card.RankK), Triple, 5, int(card.RankK)},
		{"triple aces", hand(card.RankA, card.RankA, card.RankA), Triple, 5, int(card.RankA)},
		{"straight 4-5-6", hand(card.Rank4, card.Rank5, card.Rank6), Straight, 4, 6},
		{"straight unsorted 6-4-5", hand(card.Rank6, card.Rank4, card.Rank5), Straight, 4, 6},
		{"straight J-Q-K", hand(card.RankJ, card.RankQ, card.RankK), Straight, 4, 13},
		{"straight A-2-3", hand(card.RankA, card.Rank2, card.Rank3), Straight, 4, 3},
		{"three faces J-Q-Q", hand(card.RankJ, card.RankQ, card.RankQ), ThreeFace, 3, 0},
		{"bust 3-3-4", hand(card.Rank3, card.Rank3, card.Rank4), Bust, 0, 0},
		{"nine points 2-3-4", hand(card.Rank2, card.Rank3, card.Rank4), Point, 1, 9},
		{"one point 4-8-9", hand(card.Rank4, card.Rank8, card.Rank9), Point, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Evaluate(tt.cards)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantRank, got.Rank)
			if got.HasTiebreak {
				assert.Equal(t, tt.tiebreak, got.Tiebreak)
			}
		})
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	t.Parallel()

	cards := hand(card.Rank2, card.Rank7, card.RankK)
	first := Evaluate(cards)
	for range 10 {
		assert.Equal(t, first, Evaluate(cards))
	}
}

func TestCompare_CategoryPrecedence(t *testing.T) {
	t.Parallel()

	triple := Evaluate(hand(card.RankK, card.RankK, card.RankK))
	straight := Evaluate(hand(card.Rank4, card.Rank5, card.Rank6))
	threeFace := Evaluate(hand(card.RankJ, card.RankQ, card.RankQ))
	point := Evaluate(hand(card.Rank2, card.Rank3, card.Rank4))
	bust := Evaluate(hand(card.Rank3, card.Rank3, card.Rank4))

	// Triple > Straight > ThreeFace > Point > Bust
	assert.Positive(t, Compare(triple, straight))
	assert.Positive(t, Compare(straight, threeFace))
	assert.Positive(t, Compare(threeFace, point))
	assert.Positive(t, Compare(point, bust))
	assert.Negative(t, Compare(bust, triple))
}

func TestCompare_Tiebreaks(t *testing.T) {
	t.Parallel()

	// Higher point wins within Point
	p9 := Evaluate(hand(card.Rank2, card.Rank3, card.Rank4))
	p5 := Evaluate(hand(card.RankJ, card.RankQ, card.Rank5))
	assert.Positive(t, Compare(p9, p5))

	// Higher top card wins within Straight
	s6 := Evaluate(hand(card.Rank4, card.Rank5, card.Rank6))
	s9 := Evaluate(hand(card.Rank7, card.Rank8, card.Rank9))
	assert.Positive(t, Compare(s9, s6))

	// Triple aces lose to triple kings (ace counts low, preserved rule)
	ta := Evaluate(hand(card.RankA, card.RankA, card.RankA))
	tk := Evaluate(hand(card.RankK, card.RankK, card.RankK))
	assert.Negative(t, Compare(ta, tk))

	// Any two three-face hands tie
	f1 := Evaluate(hand(card.RankJ, card.RankJ, card.RankQ))
	f2 := Evaluate(hand(card.RankK, card.RankK, card.RankQ))
	assert.Zero(t, Compare(f1, f2))

	// Any two busts tie
	b1 := Evaluate(hand(card.Rank3, card.Rank3, card.Rank4))
	b2 := Evaluate(hand(card.Rank10, card.RankK, card.RankQ))
	assert.Zero(t, Compare(b1, b2))
}

func TestHandResult_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Sáp", Evaluate(hand(card.RankK, card.RankK, card.RankK)).Name())
	assert.Equal(t, "Liêng", Evaluate(hand(card.Rank4, card.Rank5, card.Rank6)).Name())
	assert.Equal(t, "Ba Tây", Evaluate(hand(card.RankJ, card.RankQ, card.RankQ)).Name())
	assert.Equal(t, "Bù", Evaluate(hand(card.Rank3, card.Rank3, card.Rank4)).Name())
	assert.Equal(t, "Điểm 9", Evaluate(hand(card.Rank2, card.Rank3, card.Rank4)).Name())
}
