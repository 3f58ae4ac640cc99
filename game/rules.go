package game

type Rules interface {
	MaxAttackDice() int
	MaxDefendDice() int
	DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int)
}
