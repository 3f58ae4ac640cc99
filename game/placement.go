package game

import (
	"fmt"
	"sort"

	"teg/meta"
)

// DistributeTerritories shuffles the board and deals it round-robin to the
// active players in seat order, one army per territory.
func (m *Match) DistributeTerritories(r Roller) {
	active := m.ActivePlayers()
	if len(active) == 0 {
		return
	}
	ids := make([]int, m.Map.Size())
	for i := range ids {
		ids[i] = i
	}
	shuffle(r, ids)
	for i, id := range ids {
		m.Ownership[id] = active[i%len(active)].Seat
		m.Armies[id] = 1
	}
}

// beginPlacementRound grants amount armies to every active player and hands
// the turn to the first seat.
func (m *Match) beginPlacementRound(amount int) {
	for _, p := range m.ActivePlayers() {
		p.PendingArmies = amount
	}
	m.CurrentSeat = m.firstActiveSeat()
	m.Phase = ReinforcementPhase
}

// PlacementAllotment returns the fixed army count of the current placement
// round, or 0 outside initial placement.
func (m *Match) PlacementAllotment() int {
	switch m.State {
	case Reinforcement5:
		return meta.FIRST_PLACEMENT_ARMIES
	case Reinforcement3:
		return meta.SECOND_PLACEMENT_ARMIES
	default:
		return 0
	}
}

// validatePlacement checks that every entry names a territory owned by seat
// with a positive amount, and returns the total.
func (m *Match) validatePlacement(seat int, armiesByTerritory map[int]int) (int, error) {
	ids := make([]int, 0, len(armiesByTerritory))
	for id := range armiesByTerritory {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	total := 0
	for _, id := range ids {
		if _, err := m.territory(id); err != nil {
			return 0, err
		}
		if m.Ownership[id] != seat {
			return 0, fmt.Errorf("%w: %s", ErrNotOwner, m.Map.Territories[id].Name)
		}
		n := armiesByTerritory[id]
		if n < 1 {
			return 0, fmt.Errorf("%w: %d armies on %s", ErrArmyCount, n, m.Map.Territories[id].Name)
		}
		total += n
	}
	return total, nil
}

// PlaceInitialArmies applies one player's placement for the current round.
// The request must spend exactly the round's allotment.
func (m *Match) PlaceInitialArmies(playerID string, armiesByTerritory map[int]int) error {
	p, err := m.requireTurn(playerID, ActionPlaceInitial)
	if err != nil {
		return err
	}
	total, err := m.validatePlacement(p.Seat, armiesByTerritory)
	if err != nil {
		return err
	}
	allotment := m.PlacementAllotment()
	if total != allotment {
		return fmt.Errorf("%w: placed %d, round requires %d", ErrPlacementTotal, total, allotment)
	}
	if p.PendingArmies < total {
		return fmt.Errorf("%w: %d pending, %d requested", ErrNotEnoughPending, p.PendingArmies, total)
	}

	for id, n := range armiesByTerritory {
		m.Armies[id] += n
	}
	p.PendingArmies -= total

	if m.placementRoundDone() {
		m.advancePlacementRound()
		return nil
	}
	if seat, _ := m.nextActiveSeat(m.CurrentSeat); seat >= 0 {
		m.CurrentSeat = seat
	}
	return nil
}

func (m *Match) placementRoundDone() bool {
	for _, p := range m.ActivePlayers() {
		if p.PendingArmies > 0 {
			return false
		}
	}
	return true
}

func (m *Match) advancePlacementRound() {
	switch m.State {
	case Reinforcement5:
		if m.ChangeState(Reinforcement3) {
			m.beginPlacementRound(meta.SECOND_PLACEMENT_ARMIES)
		}
	case Reinforcement3:
		if m.ChangeState(HostilityOnly) {
			m.CurrentSeat = m.firstActiveSeat()
			m.Phase = ReinforcementPhase
			m.Turn++
		}
	}
}
