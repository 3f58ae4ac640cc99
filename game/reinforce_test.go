package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseArmies(t *testing.T) {
	for territories, want := range map[int]int{0: 3, 1: 3, 6: 3, 7: 3, 8: 4, 15: 7, 30: 15} {
		require.Equal(t, want, BaseArmies(territories), "%d territories", territories)
	}
}

func TestCalculateReinforcementArmies(t *testing.T) {
	t.Run("continent bonus", func(t *testing.T) {
		// West is T0..T2, East is T3..T5.
		m := newPlayingMatch(t, NormalPlay, ReinforcementPhase, []int{0, 0, 0, 1, 1, 0}, []int{1, 1, 1, 1, 1, 1}, 2)
		require.Equal(t, 2, m.ContinentBonus(0))
		require.Equal(t, 0, m.ContinentBonus(1))
		require.Equal(t, 5, m.CalculateReinforcementArmies(m.Players[0]))
		require.Equal(t, 3, m.CalculateReinforcementArmies(m.Players[1]))
	})

	t.Run("standard map", func(t *testing.T) {
		board := CreateStandardMap()
		m := NewMatch("standard", board, 2)
		_, err := m.AddPlayer("a", "A", Red, false)
		require.NoError(t, err)
		oceania := board.ContinentID("Oceania")
		for _, id := range board.Continents[oceania].TerritoryIDs {
			m.Ownership[id] = 0
		}
		require.Equal(t, 3+2, m.CalculateReinforcementArmies(m.Players[0]))
	})
}

func TestPlaceReinforcements(t *testing.T) {
	setup := func(t *testing.T) *Match {
		m := newPlayingMatch(t, NormalPlay, ReinforcementPhase, []int{0, 0, 1, 1}, []int{1, 1, 1, 1}, 2)
		m.Players[0].PendingArmies = 5
		return m
	}

	t.Run("partial placement keeps the phase", func(t *testing.T) {
		m := setup(t)
		require.NoError(t, m.PlaceReinforcements("p1", map[int]int{0: 2}))
		require.Equal(t, 3, m.Players[0].PendingArmies)
		require.Equal(t, ReinforcementPhase, m.Phase)
		require.Equal(t, 3, m.Armies[0])
	})

	t.Run("placing everything opens the attack", func(t *testing.T) {
		m := setup(t)
		require.NoError(t, m.PlaceReinforcements("p1", map[int]int{0: 2, 1: 3}))
		require.Equal(t, 0, m.Players[0].PendingArmies)
		require.Equal(t, AttackPhase, m.Phase)
		require.Equal(t, []int{3, 4, 1, 1}, m.Armies)
	})

	tests := []struct {
		name      string
		placement map[int]int
		err       error
	}{
		{"too many", map[int]int{0: 6}, ErrNotEnoughPending},
		{"enemy territory", map[int]int{0: 1, 2: 1}, ErrNotOwner},
		{"zero amount", map[int]int{0: 0}, ErrArmyCount},
		{"empty", map[int]int{}, ErrArmyCount},
		{"unknown territory", map[int]int{9: 1}, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setup(t)
			require.ErrorIs(t, m.PlaceReinforcements("p1", tt.placement), tt.err)
			require.Equal(t, 5, m.Players[0].PendingArmies)
			require.Equal(t, []int{1, 1, 1, 1}, m.Armies)
		})
	}

	t.Run("not during the hostility round", func(t *testing.T) {
		m := setup(t)
		m.State = HostilityOnly
		require.ErrorIs(t, m.PlaceReinforcements("p1", map[int]int{0: 1}), ErrWrongState)
	})

	t.Run("not someone else's turn", func(t *testing.T) {
		m := setup(t)
		require.ErrorIs(t, m.PlaceReinforcements("p2", map[int]int{2: 1}), ErrNotYourTurn)
	})

	t.Run("needs territories", func(t *testing.T) {
		m := setup(t)
		m.Ownership[0], m.Ownership[1] = 1, 1
		require.ErrorIs(t, m.PlaceReinforcements("p1", map[int]int{0: 1}), ErrNoTerritories)
	})
}
