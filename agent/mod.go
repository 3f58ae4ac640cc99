package agent

import "teg/game"

// AttackOption is one attack a seat could launch now.
type AttackOption struct {
	From        int
	To          int
	Armies      int     // Armies available to attack with (all but one)
	Probability float64 // Chance of conquering To using all of them
}

// Strategy is what a bot consults to decide its moves.
type Strategy interface {
	// EvaluateAttackProbability is the chance of conquering toID when
	// attacking from fromID with up to armies armies until one side runs out.
	EvaluateAttackProbability(m *game.Match, fromID, toID, armies int) float64
	// BestAttackTargets lists the seat's possible attacks, best first.
	BestAttackTargets(m *game.Match, seat int) []AttackOption
	// BestDefensePositions lists the seat's border territories, most threatened first.
	BestDefensePositions(m *game.Match, seat int) []int
}
