package agent

import (
	"math"
	"sort"

	"teg/game"
)

// Heuristic ranks attacks by exact conquest odds and defensive positions by
// border strength.
type Heuristic struct{}

func (Heuristic) EvaluateAttackProbability(m *game.Match, fromID, toID, armies int) float64 {
	if !m.Map.Valid(fromID) || !m.Map.Valid(toID) || !m.Map.AreAdjacent(fromID, toID) {
		return 0
	}
	if m.Ownership[fromID] == m.Ownership[toID] {
		return 0
	}
	armies = min(armies, m.MaxMovableArmies(fromID))
	return ConquestProbability(armies, m.Armies[toID])
}

func (h Heuristic) BestAttackTargets(m *game.Match, seat int) []AttackOption {
	var options []AttackOption
	for _, from := range m.TerritoriesOf(seat) {
		armies := m.MaxMovableArmies(from)
		if armies < 1 {
			continue
		}
		for _, to := range m.Map.Territories[from].AdjacentIDs {
			if m.Ownership[to] == seat {
				continue
			}
			options = append(options, AttackOption{
				From:        from,
				To:          to,
				Armies:      armies,
				Probability: h.EvaluateAttackProbability(m, from, to, armies),
			})
		}
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Probability > options[j].Probability
	})
	return options
}

// BestDefensePositions orders the seat's border territories by border
// strength, weakest first. Strength is the army difference with every enemy
// neighbour, scaled down by the square root of the number of enemy borders.
func (Heuristic) BestDefensePositions(m *game.Match, seat int) []int {
	type position struct {
		id       int
		strength float64
	}
	var positions []position
	for _, id := range m.TerritoriesOf(seat) {
		mine := float64(m.Armies[id])
		enemyBorders := 0
		diff := 0.0
		for _, adj := range m.Map.Territories[id].AdjacentIDs {
			if m.Ownership[adj] != seat {
				enemyBorders++
				diff += mine - float64(m.Armies[adj])
			}
		}
		if enemyBorders > 0 {
			positions = append(positions, position{id: id, strength: diff / math.Sqrt(float64(enemyBorders))})
		}
	}
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].strength < positions[j].strength
	})

	ids := make([]int, len(positions))
	for i, p := range positions {
		ids[i] = p.id
	}
	return ids
}
