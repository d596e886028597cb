package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietcards/lieng-server/internal/game/card"
	"github.com/vietcards/lieng-server/internal/protocol"
	"github.com/vietcards/lieng-server/internal/testutil"
)

// newSwapFixture builds a playing room with two players holding known hands.
func newSwapFixture(t *testing.T) (*RoomManager, *testutil.SimpleClient, *testutil.SimpleClient) {
	t.Helper()
	rm := newTestManager()

	alice := testutil.NewSimpleClient("a1", "Alice")
	bob := testutil.NewSimpleClient("b2", "Bob")

	room := NewMockRoom("1024", alice)
	room.Players[bob.GetID()] = &Player{Client: bob}
	room.State = RoomStatePlaying
	room.Players[alice.GetID()].Hand = []card.Card{
		{Suit: card.Spade, Rank: card.RankA},
		{Suit: card.Spade, Rank: card.Rank2},
		{Suit: card.Spade, Rank: card.Rank3},
	}
	room.Players[bob.GetID()].Hand = []card.Card{
		{Suit: card.Heart, Rank: card.RankJ},
		{Suit: card.Heart, Rank: card.RankQ},
		{Suit: card.Heart, Rank: card.RankK},
	}
	rm.AddRoomForTest(room)
	return rm, alice, bob
}

func TestRequestSwapBroadcastsOffer(t *testing.T) {
	t.Parallel()
	rm, alice, bob := newSwapFixture(t)

	rm.RequestSwap("1024", alice.GetID(), 1)

	room := rm.GetRoom("1024")
	room.mu.RLock()
	require.NotNil(t, room.Players[alice.GetID()].Pending)
	assert.Equal(t, 1, room.Players[alice.GetID()].Pending.Slot)
	room.mu.RUnlock()

	// Every player in the room sees the offer.
	for _, c := range []*testutil.SimpleClient{alice, bob} {
		offers := c.MessagesOfType(protocol.MsgNemOffer)
		require.Len(t, offers, 1)
		payload, err := protocol.ParsePayload[protocol.NemOfferPayload](offers[0])
		require.NoError(t, err)
		assert.Equal(t, alice.GetID(), payload.From)
		assert.Equal(t, "Alice", payload.Name)
	}
}

func TestRequestSwapOverwritesPending(t *testing.T) {
	t.Parallel()
	rm, alice, _ := newSwapFixture(t)

	rm.RequestSwap("1024", alice.GetID(), 0)
	rm.RequestSwap("1024", alice.GetID(), 2)

	room := rm.GetRoom("1024")
	room.mu.RLock()
	defer room.mu.RUnlock()
	require.NotNil(t, room.Players[alice.GetID()].Pending)
	assert.Equal(t, 2, room.Players[alice.GetID()].Pending.Slot)
}

func TestRequestSwapGuards(t *testing.T) {
	t.Parallel()

	t.Run("slot out of range", func(t *testing.T) {
		t.Parallel()
		rm, alice, _ := newSwapFixture(t)
		rm.RequestSwap("1024", alice.GetID(), 3)
		rm.RequestSwap("1024", alice.GetID(), -1)

		room := rm.GetRoom("1024")
		room.mu.RLock()
		defer room.mu.RUnlock()
		assert.Nil(t, room.Players[alice.GetID()].Pending)
	})

	t.Run("room not playing", func(t *testing.T) {
		t.Parallel()
		rm, alice, _ := newSwapFixture(t)
		room := rm.GetRoom("1024")
		room.mu.Lock()
		room.State = RoomStateWaiting
		room.mu.Unlock()

		rm.RequestSwap("1024", alice.GetID(), 0)

		room.mu.RLock()
		defer room.mu.RUnlock()
		assert.Nil(t, room.Players[alice.GetID()].Pending)
		assert.Empty(t, alice.MessagesOfType(protocol.MsgNemOffer))
	})

	t.Run("swap limit reached", func(t *testing.T) {
		t.Parallel()
		rm, alice, _ := newSwapFixture(t)
		room := rm.GetRoom("1024")
		room.mu.Lock()
		room.Players[alice.GetID()].SwapsUsed = 3
		room.mu.Unlock()

		rm.RequestSwap("1024", alice.GetID(), 0)

		room.mu.RLock()
		defer room.mu.RUnlock()
		assert.Nil(t, room.Players[alice.GetID()].Pending)
		assert.Empty(t, alice.MessagesOfType(protocol.MsgNemOffer))
	})

	t.Run("missing room", func(t *testing.T) {
		t.Parallel()
		rm := newTestManager()
		assert.NotPanics(t, func() { rm.RequestSwap("ghost", "a1", 0) })
	})
}

func TestAcceptSwapExchangesCards(t *testing.T) {
	t.Parallel()
	rm, alice, bob := newSwapFixture(t)

	offered := card.Card{Suit: card.Spade, Rank: card.Rank2} // Alice's slot 1
	rm.RequestSwap("1024", alice.GetID(), 1)
	rm.AcceptSwap("1024", bob.GetID(), alice.GetID())

	room := rm.GetRoom("1024")
	room.mu.RLock()
	defer room.mu.RUnlock()

	aliceHand := room.Players[alice.GetID()].Hand
	bobHand := room.Players[bob.GetID()].Hand
	require.Len(t, aliceHand, 3)
	require.Len(t, bobHand, 3)

	// The offered card moved to Bob, one of Bob's hearts landed in Alice's slot 1.
	assert.Contains(t, bobHand, offered)
	assert.NotContains(t, aliceHand, offered)
	assert.Equal(t, card.Heart, aliceHand[1].Suit)

	// The rest of Alice's hand is untouched.
	assert.Equal(t, card.Card{Suit: card.Spade, Rank: card.RankA}, aliceHand[0])
	assert.Equal(t, card.Card{Suit: card.Spade, Rank: card.Rank3}, aliceHand[2])

	// Six distinct cards before, six distinct cards after.
	seen := make(map[card.Card]bool)
	for _, c := range append(append([]card.Card{}, aliceHand...), bobHand...) {
		assert.False(t, seen[c])
		seen[c] = true
	}
	assert.Len(t, seen, 6)
}

func TestAcceptSwapOnlyRequesterPays(t *testing.T) {
	t.Parallel()
	rm, alice, bob := newSwapFixture(t)

	rm.RequestSwap("1024", alice.GetID(), 0)
	rm.AcceptSwap("1024", bob.GetID(), alice.GetID())

	room := rm.GetRoom("1024")
	room.mu.RLock()
	defer room.mu.RUnlock()

	assert.Equal(t, 1, room.Players[alice.GetID()].SwapsUsed)
	assert.Zero(t, room.Players[bob.GetID()].SwapsUsed)
	assert.Nil(t, room.Players[alice.GetID()].Pending, "pending request is consumed")
}

func TestAcceptSwapSendsPrivateHands(t *testing.T) {
	t.Parallel()
	rm, alice, bob := newSwapFixture(t)

	rm.RequestSwap("1024", alice.GetID(), 0)
	rm.AcceptSwap("1024", bob.GetID(), alice.GetID())

	// Both sides see the public success notice and get their own cards privately.
	for _, c := range []*testutil.SimpleClient{alice, bob} {
		assert.Len(t, c.MessagesOfType(protocol.MsgNemSuccess), 1)

		privates := c.MessagesOfType(protocol.MsgYourCards)
		require.Len(t, privates, 1)
		payload, err := protocol.ParsePayload[protocol.YourCardsPayload](privates[0])
		require.NoError(t, err)
		assert.Len(t, payload.Cards, 3)
	}
}

func TestAcceptSwapWithoutPendingIsNoop(t *testing.T) {
	t.Parallel()
	rm, alice, bob := newSwapFixture(t)

	rm.AcceptSwap("1024", bob.GetID(), alice.GetID())

	room := rm.GetRoom("1024")
	room.mu.RLock()
	defer room.mu.RUnlock()

	assert.Zero(t, room.Players[alice.GetID()].SwapsUsed)
	assert.Empty(t, bob.MessagesOfType(protocol.MsgNemSuccess))
}

func TestAcceptSwapAfterResolveIsNoop(t *testing.T) {
	t.Parallel()
	rm, alice, bob := newSwapFixture(t)

	rm.RequestSwap("1024", alice.GetID(), 0)

	room := rm.GetRoom("1024")
	room.mu.Lock()
	room.State = RoomStateResolved
	room.mu.Unlock()

	rm.AcceptSwap("1024", bob.GetID(), alice.GetID())

	room.mu.RLock()
	defer room.mu.RUnlock()
	assert.Zero(t, room.Players[alice.GetID()].SwapsUsed)
	assert.Empty(t, alice.MessagesOfType(protocol.MsgNemSuccess))
}

func TestSwapLimitEndToEnd(t *testing.T) {
	t.Parallel()
	rm, alice, bob := newSwapFixture(t)

	// Three full request/accept cycles exhaust the budget.
	for i := 0; i < 3; i++ {
		rm.RequestSwap("1024", alice.GetID(), 0)
		rm.AcceptSwap("1024", bob.GetID(), alice.GetID())
	}

	rm.RequestSwap("1024", alice.GetID(), 0)

	room := rm.GetRoom("1024")
	room.mu.RLock()
	defer room.mu.RUnlock()

	assert.Equal(t, 3, room.Players[alice.GetID()].SwapsUsed)
	assert.Nil(t, room.Players[alice.GetID()].Pending)
	assert.Len(t, alice.MessagesOfType(protocol.MsgNemOffer), 3, "fourth request is ignored")
	// The budget is per player, Bob has spent nothing.
	assert.Zero(t, room.Players[bob.GetID()].SwapsUsed)
}
