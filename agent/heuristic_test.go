package agent

import (
	"fmt"
	"testing"

	"teg/game"

	"github.com/stretchr/testify/require"
)

// lineMatch is a row of territories with seat 0 to move in NORMAL_PLAY.
func lineMatch(t *testing.T, owners, armies []int) *game.Match {
	t.Helper()
	board := game.NewMap(fmt.Sprintf("agent-line-%d", len(owners)))
	c := board.AddContinent("Row", 2)
	for i := range owners {
		board.AddTerritory(fmt.Sprintf("T%d", i), c)
	}
	for i := 0; i+1 < len(owners); i++ {
		board.AddBorder(i, i+1)
	}
	m := game.NewMatch("agent", board, 2)
	for i := 0; i < 2; i++ {
		p, err := m.AddPlayer(fmt.Sprintf("p%d", i+1), fmt.Sprintf("P%d", i+1), game.Colors[i], true)
		require.NoError(t, err)
		p.Status = game.Active
	}
	copy(m.Ownership, owners)
	copy(m.Armies, armies)
	m.State = game.NormalPlay
	return m
}

func TestEvaluateAttackProbability(t *testing.T) {
	h := Heuristic{}
	m := lineMatch(t, []int{0, 1, 0, 1}, []int{2, 1, 5, 3})

	require.InDelta(t, 15.0/36, h.EvaluateAttackProbability(m, 0, 1, 1), 1e-9)
	require.InDelta(t, 15.0/36, h.EvaluateAttackProbability(m, 0, 1, 10), 1e-9, "Capped at all but one")
	require.Zero(t, h.EvaluateAttackProbability(m, 0, 3, 1), "Not adjacent")
	require.Zero(t, h.EvaluateAttackProbability(m, 0, 0, 1))
	require.Zero(t, h.EvaluateAttackProbability(m, 0, 99, 1))
	require.Equal(t, ConquestProbability(4, 3), h.EvaluateAttackProbability(m, 2, 3, 4))
}

func TestBestAttackTargets(t *testing.T) {
	h := Heuristic{}
	m := lineMatch(t, []int{0, 1, 0, 1, 0}, []int{2, 1, 6, 4, 1})

	options := h.BestAttackTargets(m, 0)
	require.Len(t, options, 3, "T4 has nothing to attack with")
	for i := 1; i < len(options); i++ {
		require.GreaterOrEqual(t, options[i-1].Probability, options[i].Probability)
	}
	require.Equal(t, 2, options[0].From)
	require.Equal(t, 1, options[0].To)
	require.Equal(t, 5, options[0].Armies)
}

func TestBestDefensePositions(t *testing.T) {
	h := Heuristic{}
	m := lineMatch(t, []int{0, 0, 1, 0, 0}, []int{9, 2, 6, 5, 1})

	// T1 (2 vs 6) is weaker than T3 (5 vs 6); T0 and T4 have no enemy neighbour.
	require.Equal(t, []int{1, 3}, h.BestDefensePositions(m, 0))
	require.Equal(t, []int{2}, h.BestDefensePositions(m, 1))
}
