package agent

import (
	"sort"
	"sync"

	"teg/game"
	"teg/meta"
)

type roundOutcome struct {
	attackerLosses int
	defenderLosses int
	p              float64
}

var (
	outcomesOnce sync.Once
	// outcomes[a][d] is the loss distribution of a round with a attacking and d defending dice.
	outcomes [meta.MAX_ATTACK_DICE + 1][meta.MAX_DEFEND_DICE + 1][]roundOutcome
)

// roundOutcomes enumerates every roll once and caches the result.
func roundOutcomes(attackDice, defendDice int) []roundOutcome {
	outcomesOnce.Do(func() {
		rules := game.NewStandardRules()
		for a := 1; a <= meta.MAX_ATTACK_DICE; a++ {
			for d := 1; d <= meta.MAX_DEFEND_DICE; d++ {
				outcomes[a][d] = enumerateRound(rules, a, d)
			}
		}
	})
	return outcomes[attackDice][defendDice]
}

func enumerateRound(rules game.Rules, attackDice, defendDice int) []roundOutcome {
	counts := map[[2]int]int{}
	total := 0
	faces := make([]int, attackDice+defendDice)

	var roll func(i int)
	roll = func(i int) {
		if i == len(faces) {
			attacker := sortedDesc(faces[:attackDice])
			defender := sortedDesc(faces[attackDice:])
			la, ld := rules.DetermineAttackOutcome(attacker, defender)
			counts[[2]int{la, ld}]++
			total++
			return
		}
		for f := 1; f <= 6; f++ {
			faces[i] = f
			roll(i + 1)
		}
	}
	roll(0)

	result := make([]roundOutcome, 0, len(counts))
	for losses, n := range counts {
		result = append(result, roundOutcome{attackerLosses: losses[0], defenderLosses: losses[1], p: float64(n) / float64(total)})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].attackerLosses < result[j].attackerLosses })
	return result
}

func sortedDesc(values []int) []int {
	s := append([]int(nil), values...)
	sort.Sort(sort.Reverse(sort.IntSlice(s)))
	return s
}

// ConquestProbability is the chance that attackers armies, rolling up to
// three dice per round, destroy defenders armies before running out.
func ConquestProbability(attackers, defenders int) float64 {
	if defenders <= 0 {
		return 1
	}
	if attackers <= 0 {
		return 0
	}

	// win[a][d]: probability of conquest with a attackers left against d defenders.
	win := make([][]float64, attackers+1)
	for a := range win {
		win[a] = make([]float64, defenders+1)
		if a > 0 {
			win[a][0] = 1
		}
	}
	for a := 1; a <= attackers; a++ {
		for d := 1; d <= defenders; d++ {
			p := 0.0
			for _, o := range roundOutcomes(min(a, meta.MAX_ATTACK_DICE), min(d, meta.MAX_DEFEND_DICE)) {
				p += o.p * win[a-o.attackerLosses][d-o.defenderLosses]
			}
			win[a][d] = p
		}
	}
	return win[attackers][defenders]
}
