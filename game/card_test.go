package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func cardsOf(types ...CardType) []*Card {
	cards := make([]*Card, len(types))
	for i, ct := range types {
		cards[i] = &Card{ID: i, TerritoryID: -1, Type: ct, Owner: 0}
	}
	return cards
}

func TestCanTradeCards(t *testing.T) {
	tests := []struct {
		name  string
		cards []*Card
		want  bool
	}{
		{"three of a kind", cardsOf(Infantry, Infantry, Infantry), true},
		{"one of each", cardsOf(Infantry, Cavalry, Artillery), true},
		{"pair and a single", cardsOf(Infantry, Infantry, Cavalry), false},
		{"wildcard completes a pair", cardsOf(Artillery, Artillery, Wild), true},
		{"wildcard completes anything", cardsOf(Infantry, Cavalry, Wild), true},
		{"two cards", cardsOf(Infantry, Infantry), false},
		{"four cards", cardsOf(Infantry, Infantry, Infantry, Infantry), false},
		{"missing card", []*Card{nil, nil, nil}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CanTradeCards(tt.cards))
		})
	}
}

func TestTradeValue(t *testing.T) {
	require.Equal(t, 0, TradeValue(0))
	require.Equal(t, []int{4, 7, 10, 15, 20, 25}, []int{TradeValue(1), TradeValue(2), TradeValue(3), TradeValue(4), TradeValue(5), TradeValue(6)})
	for n := 1; n < 50; n++ {
		require.Greater(t, TradeValue(n+1), TradeValue(n))
	}
}

func TestFindSet(t *testing.T) {
	require.Equal(t, []int{1, 2, 4}, FindSet(cardsOf(Cavalry, Infantry, Infantry, Artillery, Infantry)))
	require.Equal(t, []int{0, 1, 3}, FindSet(cardsOf(Infantry, Cavalry, Cavalry, Artillery)))
	require.Equal(t, []int{2, 0, 1}, FindSet(cardsOf(Infantry, Infantry, Wild)))
	require.Nil(t, FindSet(cardsOf(Infantry, Infantry, Cavalry, Cavalry)))
	require.Nil(t, FindSet(cardsOf(Wild, Infantry)))

	for _, hand := range [][]*Card{
		cardsOf(Artillery, Wild, Cavalry),
		cardsOf(Artillery, Artillery, Cavalry, Artillery),
	} {
		set := FindSet(hand)
		require.Len(t, set, 3)
		require.True(t, CanTradeCards([]*Card{hand[set[0]], hand[set[1]], hand[set[2]]}))
	}
}

func TestNewDeck(t *testing.T) {
	board := CreateStandardMap()
	deck := NewDeck(board)
	require.Len(t, deck, board.Size()+2)
	wilds := 0
	for i, c := range deck {
		require.Equal(t, i, c.ID)
		require.True(t, c.InDeck)
		require.Equal(t, -1, c.Owner)
		if c.Type == Wild {
			wilds++
			require.Equal(t, -1, c.TerritoryID)
		}
	}
	require.Equal(t, 2, wilds)
}

func TestTradeCards(t *testing.T) {
	setup := func(t *testing.T) *Match {
		// Deck types on six territories: I C A I C A, then two wildcards.
		m := newPlayingMatch(t, NormalPlay, ReinforcementPhase, []int{0, 0, 0, 1, 1, 1}, []int{1, 1, 1, 1, 1, 1}, 2)
		for _, id := range []int{0, 1, 2, 3} {
			m.Cards[id].Owner = 0
			m.Cards[id].InDeck = false
		}
		m.Players[0].PendingArmies = 3
		return m
	}

	t.Run("successive trades pay more", func(t *testing.T) {
		m := setup(t)
		reward, err := m.TradeCards("p1", [3]int{0, 1, 2})
		require.NoError(t, err)
		require.Equal(t, 4, reward)
		require.Equal(t, 7, m.Players[0].PendingArmies)
		require.Equal(t, 1, m.Players[0].TradeCount)
		for _, id := range []int{0, 1, 2} {
			require.Equal(t, -1, m.Cards[id].Owner)
			require.True(t, m.Cards[id].InDeck)
		}

		for _, id := range []int{1, 2} {
			m.Cards[id].Owner = 0
			m.Cards[id].InDeck = false
		}
		reward, err = m.TradeCards("p1", [3]int{1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, 7, reward)
		require.Equal(t, 14, m.Players[0].PendingArmies)
	})

	tests := []struct {
		name  string
		cards [3]int
		err   error
	}{
		{"invalid set", [3]int{0, 3, 1}, ErrInvalidTrade},
		{"duplicate card", [3]int{0, 0, 1}, ErrInvalidTrade},
		{"card in the deck", [3]int{0, 1, 5}, ErrNotYourCard},
		{"unknown card", [3]int{0, 1, 99}, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setup(t)
			_, err := m.TradeCards("p1", tt.cards)
			require.ErrorIs(t, err, tt.err)
			require.Equal(t, 3, m.Players[0].PendingArmies)
			require.Equal(t, 0, m.Players[0].TradeCount)
			require.Len(t, m.Hand(0), 4)
		})
	}

	t.Run("only while reinforcing", func(t *testing.T) {
		m := setup(t)
		m.Phase = AttackPhase
		_, err := m.TradeCards("p1", [3]int{0, 1, 2})
		require.ErrorIs(t, err, ErrWrongPhase)
	})
}

func TestDrawCard(t *testing.T) {
	t.Run("uniform pick from the deck", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, ClaimCardPhase, []int{0, 1, 1}, []int{1, 1, 1}, 2)
		card, err := m.DrawCard(0, &scriptedRoller{values: []int{2}})
		require.NoError(t, err)
		require.Equal(t, 2, card.ID)
		require.Equal(t, 0, card.Owner)
		require.False(t, card.InDeck)
		require.Equal(t, []int{1, 1, 1}, m.Armies, "No bonus for an enemy country")
	})

	t.Run("country bonus once", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, ClaimCardPhase, []int{0, 1, 1}, []int{1, 1, 1}, 2)
		card, err := m.DrawCard(0, &scriptedRoller{values: []int{0}})
		require.NoError(t, err)
		require.Equal(t, 0, card.TerritoryID)
		require.Equal(t, 3, m.Armies[0])
		require.True(t, card.BonusClaimed)

		// Card goes back to the deck without a trade: the bonus stays spent.
		card.Owner = -1
		card.InDeck = true
		_, err = m.DrawCard(0, &scriptedRoller{values: []int{0}})
		require.NoError(t, err)
		require.Equal(t, 3, m.Armies[0])
	})

	t.Run("empty deck recycles unowned cards", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, ClaimCardPhase, []int{0, 1}, []int{1, 1}, 2)
		for _, c := range m.Cards {
			c.InDeck = false
		}
		m.Cards[0].Owner = 1
		card, err := m.DrawCard(0, &scriptedRoller{values: []int{0}})
		require.NoError(t, err)
		require.Equal(t, 1, card.ID, "First recycled card")
	})

	t.Run("exhausted deck is fatal", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, ClaimCardPhase, []int{0, 1}, []int{1, 1}, 2)
		for _, c := range m.Cards {
			c.Owner = 1
			c.InDeck = false
		}
		_, err := m.DrawCard(0, NewRoller(1))
		require.ErrorIs(t, err, ErrDeckExhausted)
		require.ErrorIs(t, err, ErrInvariant)
	})
}

func TestClaimCard(t *testing.T) {
	t.Run("needs a conquest", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, ClaimCardPhase, []int{0, 1}, []int{1, 1}, 2)
		_, err := m.ClaimCard("p1", NewRoller(1))
		require.ErrorIs(t, err, ErrNoCardEarned)

		m.ConquestsThisTurn = 1
		card, err := m.ClaimCard("p1", NewRoller(1))
		require.NoError(t, err)
		require.Equal(t, 0, card.Owner)

		_, err = m.ClaimCard("p1", NewRoller(1))
		require.ErrorIs(t, err, ErrNoCardEarned, "One card per turn")
	})

	t.Run("two conquests after the third trade", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, ClaimCardPhase, []int{0, 1}, []int{1, 1}, 2)
		m.Players[0].TradeCount = 3
		m.ConquestsThisTurn = 1
		_, err := m.ClaimCard("p1", NewRoller(1))
		require.ErrorIs(t, err, ErrNoCardEarned)

		m.ConquestsThisTurn = 2
		_, err = m.ClaimCard("p1", NewRoller(1))
		require.NoError(t, err)
	})

	t.Run("new turn resets the claim", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, ClaimCardPhase, []int{0, 1}, []int{1, 1}, 2)
		m.ConquestsThisTurn = 1
		m.CardClaimed = true
		require.True(t, m.NextTurn())
		require.False(t, m.CardClaimed)
		require.Equal(t, 0, m.ConquestsThisTurn)
	})
}
