package game

import "fmt"

// CombatResult describes one dice round.
type CombatResult struct {
	AttackerDice   []int  `json:"attacker_dice"`
	DefenderDice   []int  `json:"defender_dice"`
	AttackerLosses int    `json:"attacker_losses"`
	DefenderLosses int    `json:"defender_losses"`
	Conquered      bool   `json:"conquered"`
	ArmiesMoved    int    `json:"armies_moved"`
	AttackerArmies int    `json:"attacker_armies"` // Left on the attacking territory
	DefenderArmies int    `json:"defender_armies"` // Left on the defending territory, whoever owns it now
	Eliminated     string `json:"eliminated,omitempty"`
	Winner         string `json:"winner,omitempty"`
}

// ResolveCombat rolls one round. The attacker rolls one die per attacking
// army and the defender one per defending army, each capped by the rules.
func ResolveCombat(rules Rules, r Roller, attackingArmies, defendingArmies int) (attackerRolls, defenderRolls []int, attackerLosses, defenderLosses int) {
	attackerDice := min(attackingArmies, rules.MaxAttackDice())
	defenderDice := min(defendingArmies, rules.MaxDefendDice())

	attackerRolls = rollDice(r, attackerDice)
	defenderRolls = rollDice(r, defenderDice)

	attackerLosses, defenderLosses = rules.DetermineAttackOutcome(attackerRolls, defenderRolls)
	return
}

// ValidateAttack checks an attack without rolling anything.
func (m *Match) ValidateAttack(playerID string, fromID, toID, attackingArmies int) (*Player, error) {
	p, err := m.requireTurn(playerID, ActionAttack)
	if err != nil {
		return nil, err
	}
	from, err := m.territory(fromID)
	if err != nil {
		return nil, err
	}
	to, err := m.territory(toID)
	if err != nil {
		return nil, err
	}
	if m.Ownership[fromID] != p.Seat {
		return nil, fmt.Errorf("%w: %s", ErrNotOwner, from.Name)
	}
	if m.Ownership[toID] == p.Seat {
		return nil, fmt.Errorf("%w: %s", ErrOwnTerritory, to.Name)
	}
	if !m.Map.AreAdjacent(fromID, toID) {
		return nil, fmt.Errorf("%w: %s and %s", ErrNotAdjacent, from.Name, to.Name)
	}
	if attackingArmies < 1 || attackingArmies > m.Armies[fromID]-1 {
		return nil, fmt.Errorf("%w: attacking with %d from %s which holds %d", ErrArmyCount, attackingArmies, from.Name, m.Armies[fromID])
	}
	return p, nil
}

// Attack resolves one round of combat from fromID into toID. On conquest the
// surviving attacking armies move in, the defender may be eliminated and
// the attacker may win the match.
func (m *Match) Attack(playerID string, fromID, toID, attackingArmies int, r Roller) (*CombatResult, error) {
	p, err := m.ValidateAttack(playerID, fromID, toID, attackingArmies)
	if err != nil {
		return nil, err
	}
	defenderSeat := m.Ownership[toID]

	attackerRolls, defenderRolls, attackerLosses, defenderLosses := ResolveCombat(m.Rules(), r, attackingArmies, m.Armies[toID])

	attackerLeft := m.Armies[fromID] - attackerLosses
	defenderLeft := m.Armies[toID] - defenderLosses
	if attackerLeft < 0 || defenderLeft < 0 {
		return nil, fmt.Errorf("%w: %d vs %d after losses %d/%d", ErrNegativeArmies, attackerLeft, defenderLeft, attackerLosses, defenderLosses)
	}
	m.Armies[fromID] = attackerLeft
	m.Armies[toID] = defenderLeft

	result := &CombatResult{
		AttackerDice:   attackerRolls,
		DefenderDice:   defenderRolls,
		AttackerLosses: attackerLosses,
		DefenderLosses: defenderLosses,
	}

	if defenderLeft == 0 {
		moved := attackingArmies - attackerLosses
		m.Ownership[toID] = p.Seat
		m.Armies[fromID] -= moved
		m.Armies[toID] = moved
		m.ConquestsThisTurn++

		result.Conquered = true
		result.ArmiesMoved = moved

		if defenderSeat >= 0 && m.CountTerritories(defenderSeat) == 0 {
			m.eliminate(defenderSeat, p.Seat)
			result.Eliminated = m.Players[defenderSeat].ID
		}
		if m.checkVictory(p) {
			result.Winner = p.ID
		}
	}

	result.AttackerArmies = m.Armies[fromID]
	result.DefenderArmies = m.Armies[toID]
	return result, nil
}

// eliminate knocks a seat out: its cards pass to the conqueror and any
// destruction objective aimed at it by someone else is retargeted.
func (m *Match) eliminate(seat, bySeat int) {
	victim := m.Players[seat]
	victim.Status = Eliminated
	victim.PendingArmies = 0
	for _, c := range m.Cards {
		if c.Owner == seat {
			c.Owner = bySeat
		}
	}
	m.retargetDestruction(seat, bySeat)
}

// checkVictory finishes the match if p is the last one standing or has met
// an objective.
func (m *Match) checkVictory(p *Player) bool {
	if m.State == Finished {
		return m.Winner == p.ID
	}
	won := len(m.ActivePlayers()) == 1 || m.ObjectiveAchieved(p.Seat)
	if !won {
		return false
	}
	return m.Finish(p.ID)
}
