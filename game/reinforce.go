package game

import (
	"fmt"

	"teg/meta"
)

// BaseArmies is the territory part of a turn's reinforcement: half the owned
// territories, never less than three.
func BaseArmies(territoryCount int) int {
	return max(meta.MIN_REINFORCEMENT, territoryCount/2)
}

// ContinentBonus sums the bonus of every continent seat fully controls.
func (m *Match) ContinentBonus(seat int) int {
	bonus := 0
	for _, c := range m.Map.Continents {
		if m.ContinentOwner(c.ID) == seat {
			bonus += c.Bonus
		}
	}
	return bonus
}

// CalculateReinforcementArmies returns the armies p receives at the start of
// a turn. Card trade rewards are added separately when a trade happens.
func (m *Match) CalculateReinforcementArmies(p *Player) int {
	return BaseArmies(m.CountTerritories(p.Seat)) + m.ContinentBonus(p.Seat)
}

// PlaceReinforcements distributes pending armies over the player's
// territories. Once nothing is left to place the turn moves to ATTACK.
func (m *Match) PlaceReinforcements(playerID string, armiesByTerritory map[int]int) error {
	p, err := m.requireTurn(playerID, ActionReinforce)
	if err != nil {
		return err
	}
	if m.CountTerritories(p.Seat) == 0 {
		return ErrNoTerritories
	}
	total, err := m.validatePlacement(p.Seat, armiesByTerritory)
	if err != nil {
		return err
	}
	if total == 0 {
		return fmt.Errorf("%w: nothing to place", ErrArmyCount)
	}
	if total > p.PendingArmies {
		return fmt.Errorf("%w: %d pending, %d requested", ErrNotEnoughPending, p.PendingArmies, total)
	}

	for id, n := range armiesByTerritory {
		m.Armies[id] += n
	}
	p.PendingArmies -= total
	if p.PendingArmies == 0 {
		m.ChangeTurnPhase(AttackPhase)
	}
	return nil
}
