package game

import "teg/meta"

type StandardRules struct {
	AttackDice int
	DefendDice int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		AttackDice: meta.MAX_ATTACK_DICE,
		DefendDice: meta.MAX_DEFEND_DICE,
	}
}

func (sr *StandardRules) MaxAttackDice() int {
	return sr.AttackDice
}

func (sr *StandardRules) MaxDefendDice() int {
	return sr.DefendDice
}

// DetermineAttackOutcome compares sorted rolls pairwise, highest first. Only
// min(len(attackerRolls), len(defenderRolls)) pairs are compared and the
// defender wins ties.
func (sr *StandardRules) DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int) {
	battles := min(len(attackerRolls), len(defenderRolls))
	for i := 0; i < battles; i++ {
		if attackerRolls[i] > defenderRolls[i] {
			defenderLosses++
		} else {
			attackerLosses++
		}
	}
	return
}
