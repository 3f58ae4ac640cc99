package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRoller replays fixed values; Intn(n) returns the next value mod n.
type scriptedRoller struct {
	values []int
	next   int
}

func (s *scriptedRoller) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// dice scripts die faces (1..6) in the order they will be rolled.
func dice(faces ...int) *scriptedRoller {
	values := make([]int, len(faces))
	for i, f := range faces {
		values[i] = f - 1
	}
	return &scriptedRoller{values: values}
}

// lineMap builds n territories bordering only their neighbours in a row.
// The first half is "West" (bonus 2), the rest "East" (bonus 3).
func lineMap(n int) *Map {
	m := NewMap(fmt.Sprintf("line-%d", n))
	west := m.AddContinent("West", 2)
	east := m.AddContinent("East", 3)
	for i := 0; i < n; i++ {
		c := west
		if i >= n/2 {
			c = east
		}
		m.AddTerritory(fmt.Sprintf("T%d", i), c)
	}
	for i := 0; i+1 < n; i++ {
		m.AddBorder(i, i+1)
	}
	return m
}

// newSeatedMatch seats players p1..pN on a line map in the waiting state.
func newSeatedMatch(t *testing.T, territories, players int) *Match {
	t.Helper()
	m := NewMatch("test", lineMap(territories), 6)
	for i := 0; i < players; i++ {
		_, err := m.AddPlayer(fmt.Sprintf("p%d", i+1), fmt.Sprintf("Player %d", i+1), Colors[i], false)
		require.NoError(t, err)
	}
	return m
}

// newPlayingMatch returns a match in state/phase with ownership and armies
// set by hand and seat 0 to move.
func newPlayingMatch(t *testing.T, state State, phase Phase, owners, armies []int, players int) *Match {
	t.Helper()
	require.Equal(t, len(owners), len(armies))
	m := newSeatedMatch(t, len(owners), players)
	for _, p := range m.Players {
		p.Status = Active
	}
	copy(m.Ownership, owners)
	copy(m.Armies, armies)
	m.State = state
	m.Phase = phase
	return m
}
