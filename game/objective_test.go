package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignObjectives(t *testing.T) {
	t.Run("destruction of an absent color targets the next seat", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, ReinforcementPhase, []int{0, 1, 2}, []int{1, 1, 1}, 3)
		m.AssignObjectives(NewRoller(1), []Objective{{Type: DestructionObjective, TargetColor: Magenta, TargetSeat: -1}})

		for seat, want := range []int{1, 2, 0} {
			obj := m.Players[seat].Objective
			require.Equal(t, DestructionObjective, obj.Type)
			require.Equal(t, want, obj.TargetSeat)
			require.Equal(t, m.Players[want].Color, obj.TargetColor)
		}
	})

	t.Run("nobody is told to destroy themselves", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, ReinforcementPhase, []int{0, 1, 2}, []int{1, 1, 1}, 3)
		m.AssignObjectives(NewRoller(1), []Objective{{Type: DestructionObjective, TargetColor: Blue, TargetSeat: -1}})

		require.Equal(t, 1, m.Players[0].Objective.TargetSeat)
		require.Equal(t, 2, m.Players[1].Objective.TargetSeat, "Blue holder is redirected")
		require.Equal(t, 1, m.Players[2].Objective.TargetSeat)
	})

	t.Run("objectives are independent copies", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, ReinforcementPhase, []int{0, 1}, []int{1, 1}, 2)
		pool := []Objective{{Type: OccupationObjective, Occupy: map[int]int{0: 0}, TargetSeat: -1}}
		m.AssignObjectives(NewRoller(1), pool)
		m.Players[0].Objective.Occupy[1] = 1
		require.Len(t, m.Players[1].Objective.Occupy, 1)
		require.Len(t, pool[0].Occupy, 1)
	})

	t.Run("standard pool deals every player one", func(t *testing.T) {
		board := CreateStandardMap()
		m := NewMatch("objectives", board, 6)
		for i, c := range Colors {
			_, err := m.AddPlayer(string(c), string(c), c, true)
			require.NoError(t, err)
			m.Players[i].Status = Active
		}
		m.AssignObjectives(NewRoller(3), StandardObjectives(board))
		for _, p := range m.Players {
			require.NotNil(t, p.Objective)
			if p.Objective.Type == DestructionObjective {
				require.NotEqual(t, p.Seat, p.Objective.TargetSeat)
			} else {
				require.NotEmpty(t, p.Objective.Occupy)
			}
		}
	})
}

func TestObjectiveAchieved(t *testing.T) {
	t.Run("occupation", func(t *testing.T) {
		// West is T0..T1, East is T2..T3.
		m := newPlayingMatch(t, NormalPlay, AttackPhase, []int{0, 0, 0, 1}, []int{1, 1, 1, 1}, 2)
		m.Players[0].Objective = &Objective{Type: OccupationObjective, Occupy: map[int]int{0: 0, 1: 2}, TargetSeat: -1}
		require.False(t, m.ObjectiveAchieved(0))
		m.Ownership[3] = 0
		require.True(t, m.ObjectiveAchieved(0))
	})

	t.Run("common", func(t *testing.T) {
		board := CreateStandardMap()
		m := NewMatch("common", board, 2)
		_, err := m.AddPlayer("a", "A", Red, false)
		require.NoError(t, err)
		for id := 0; id < 29; id++ {
			m.Ownership[id] = 0
		}
		require.False(t, m.ObjectiveAchieved(0))
		m.Ownership[29] = 0
		require.True(t, m.ObjectiveAchieved(0))
	})

	t.Run("destruction", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, AttackPhase, []int{0, 1}, []int{1, 1}, 2)
		m.Players[0].Objective = &Objective{Type: DestructionObjective, TargetColor: Blue, TargetSeat: 1}
		require.False(t, m.ObjectiveAchieved(0))
		m.Players[1].Status = Eliminated
		require.True(t, m.ObjectiveAchieved(0))
	})
}

func TestRetargetDestruction(t *testing.T) {
	t.Run("another player destroyed the target", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, AttackPhase, []int{0, 1, 2, 3}, []int{1, 1, 1, 1}, 4)
		m.Players[0].Objective = &Objective{Type: DestructionObjective, TargetColor: Green, TargetSeat: 2}

		m.Players[2].Status = Eliminated
		m.retargetDestruction(2, 3)
		require.Equal(t, 1, m.Players[0].Objective.TargetSeat)
		require.Equal(t, Blue, m.Players[0].Objective.TargetColor)
	})

	t.Run("holder's own kill is kept", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, AttackPhase, []int{0, 1, 2}, []int{1, 1, 1}, 3)
		m.Players[0].Objective = &Objective{Type: DestructionObjective, TargetColor: Blue, TargetSeat: 1}
		m.Players[1].Status = Eliminated
		m.retargetDestruction(1, 0)
		require.Equal(t, 1, m.Players[0].Objective.TargetSeat)
		require.True(t, m.ObjectiveAchieved(0))
	})

	t.Run("falls back to the common objective", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, AttackPhase, []int{0, 1, 1}, []int{1, 1, 1}, 3)
		m.Players[0].Objective = &Objective{Type: DestructionObjective, TargetColor: Green, TargetSeat: 2}
		m.Players[1].Status = Eliminated
		m.Players[2].Status = Eliminated
		m.retargetDestruction(2, 1)
		require.Equal(t, CommonObjective, m.Players[0].Objective.Type)
	})

	t.Run("elimination by attack retargets", func(t *testing.T) {
		m := newPlayingMatch(t, NormalPlay, AttackPhase, []int{0, 1, 2}, []int{3, 1, 1}, 3)
		m.CurrentSeat = 1
		m.Armies[1] = 3
		m.Players[0].Objective = &Objective{Type: DestructionObjective, TargetColor: Green, TargetSeat: 2}

		res, err := m.Attack("p2", 1, 2, 2, dice(6, 6, 1))
		require.NoError(t, err)
		require.Equal(t, "p3", res.Eliminated)
		require.Empty(t, res.Winner)
		require.Equal(t, 1, m.Players[0].Objective.TargetSeat)
		require.Equal(t, NormalPlay, m.State)
	})
}
