package game

import "fmt"

// MaxMovableArmies is how many armies may leave a territory: all but one.
func (m *Match) MaxMovableArmies(territoryID int) int {
	if !m.Map.Valid(territoryID) {
		return 0
	}
	return max(0, m.Armies[territoryID]-1)
}

// IsConnected reports whether seat may move armies from fromID to toID. In
// HOSTILITY_ONLY only direct neighbours qualify; otherwise any path through
// the seat's own territories does.
func (m *Match) IsConnected(fromID, toID, seat int) bool {
	if !m.Map.Valid(fromID) || !m.Map.Valid(toID) {
		return false
	}
	if m.Ownership[fromID] != seat || m.Ownership[toID] != seat {
		return false
	}
	if fromID == toID {
		return true
	}
	if m.State == HostilityOnly {
		return m.Map.AreAdjacent(fromID, toID)
	}
	return m.AreConnected(fromID, toID, seat)
}

// Just BFS over the territories seat owns.
func (m *Match) AreConnected(fromID, toID, seat int) bool {
	if fromID == toID {
		return true
	}
	visited := make([]bool, m.Map.Size())
	visited[fromID] = true
	queue := []int{fromID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, adjID := range m.Map.Territories[current].AdjacentIDs {
			if visited[adjID] || m.Ownership[adjID] != seat {
				continue
			}
			if adjID == toID {
				return true
			}
			visited[adjID] = true
			queue = append(queue, adjID)
		}
	}
	return false
}

// Fortify moves armies between two connected territories of the player.
// The source always keeps at least one army.
func (m *Match) Fortify(playerID string, fromID, toID, armies int) error {
	p, err := m.requireTurn(playerID, ActionFortify)
	if err != nil {
		return err
	}
	from, err := m.territory(fromID)
	if err != nil {
		return err
	}
	to, err := m.territory(toID)
	if err != nil {
		return err
	}
	if m.Ownership[fromID] != p.Seat {
		return fmt.Errorf("%w: %s", ErrNotOwner, from.Name)
	}
	if m.Ownership[toID] != p.Seat {
		return fmt.Errorf("%w: %s", ErrNotOwner, to.Name)
	}
	if fromID == toID {
		return fmt.Errorf("%w: %s", ErrSameTerritory, from.Name)
	}
	if armies < 1 || armies > m.MaxMovableArmies(fromID) {
		return fmt.Errorf("%w: moving %d from %s which holds %d", ErrArmyCount, armies, from.Name, m.Armies[fromID])
	}
	if !m.IsConnected(fromID, toID, p.Seat) {
		if m.State == HostilityOnly {
			return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, from.Name, to.Name)
		}
		return fmt.Errorf("%w: %s and %s", ErrNotConnected, from.Name, to.Name)
	}

	m.Armies[fromID] -= armies
	m.Armies[toID] += armies
	return nil
}
