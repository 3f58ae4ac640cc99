package agent

import (
	"context"

	"teg/engine"
	"teg/experiments/metrics"
	"teg/game"

	"github.com/rs/zerolog/log"
)

// Driver plays whole turns for a bot seat through the engine, so every
// move it makes is validated like a human's.
type Driver struct {
	Strategy Strategy
	// MinOdds is the lowest conquest probability worth attacking at.
	MinOdds float64
	// MaxAttacks bounds the combat rounds of a single turn.
	MaxAttacks int
	Metrics    metrics.Collector
}

func NewDriver(s Strategy) *Driver {
	return &Driver{Strategy: s, MinOdds: 0.6, MaxAttacks: 40, Metrics: metrics.NewDummyCollector()}
}

func (d *Driver) PlayTurn(ctx context.Context, e *engine.Engine, code, playerID string) error {
	m, err := e.Match(ctx, code)
	if err != nil {
		return err
	}
	p, err := m.PlayerByID(playerID)
	if err != nil {
		return err
	}

	switch m.State {
	case game.Reinforcement5, game.Reinforcement3:
		return e.PlaceInitialArmies(ctx, code, playerID, d.spread(m, p.Seat, m.PlacementAllotment()))
	case game.HostilityOnly, game.NormalPlay:
		return d.playTurn(ctx, e, code, playerID)
	}
	return nil
}

func (d *Driver) playTurn(ctx context.Context, e *engine.Engine, code, playerID string) error {
	m, err := e.Match(ctx, code)
	if err != nil {
		return err
	}
	if m.Phase == game.ReinforcementPhase {
		if err := d.reinforce(ctx, e, code, playerID); err != nil {
			return err
		}
	}

	done, err := d.attack(ctx, e, code, playerID)
	if err != nil || done {
		return err
	}

	if m, err = e.Match(ctx, code); err != nil {
		return err
	}
	if m.Phase == game.AttackPhase {
		if err := e.ChangeTurnPhase(ctx, code, game.FortifyPhase); err != nil {
			return err
		}
	}
	if err := d.fortify(ctx, e, code, playerID); err != nil {
		return err
	}

	if m, err = e.Match(ctx, code); err != nil {
		return err
	}
	p, _ := m.PlayerByID(playerID)
	if m.Phase == game.FortifyPhase && !m.CardClaimed && m.ConquestsThisTurn >= game.ConquestsForCard(p) {
		if err := e.ChangeTurnPhase(ctx, code, game.ClaimCardPhase); err != nil {
			return err
		}
		if _, err := e.ClaimCard(ctx, code, playerID); err != nil {
			return err
		}
		d.Metrics.AddCard()
	}
	return e.EndTurn(ctx, code, playerID)
}

// reinforce trades every set in hand and places all pending armies. In the
// hostility round there is nothing to place and the turn goes straight to ATTACK.
func (d *Driver) reinforce(ctx context.Context, e *engine.Engine, code, playerID string) error {
	m, err := e.Match(ctx, code)
	if err != nil {
		return err
	}
	if m.State == game.NormalPlay {
		p, _ := m.PlayerByID(playerID)
		for {
			hand := m.Hand(p.Seat)
			set, ok := FindTrade(hand)
			if !ok {
				break
			}
			if _, err := e.TradeCards(ctx, code, playerID, set); err != nil {
				return err
			}
			d.Metrics.AddTrade()
			if m, err = e.Match(ctx, code); err != nil {
				return err
			}
			p, _ = m.PlayerByID(playerID)
		}
		if p.PendingArmies > 0 {
			return e.PlaceReinforcementArmies(ctx, code, playerID, d.spread(m, p.Seat, p.PendingArmies))
		}
	}
	return e.ChangeTurnPhase(ctx, code, game.AttackPhase)
}

// FindTrade returns the card IDs of a tradable set in hand.
func FindTrade(hand []*game.Card) ([3]int, bool) {
	idx := game.FindSet(hand)
	if idx == nil {
		return [3]int{}, false
	}
	return [3]int{hand[idx[0]].ID, hand[idx[1]].ID, hand[idx[2]].ID}, true
}

// attack keeps taking the best attack while its odds stay above MinOdds.
// It reports whether the match is over.
func (d *Driver) attack(ctx context.Context, e *engine.Engine, code, playerID string) (bool, error) {
	for i := 0; i < d.MaxAttacks; i++ {
		m, err := e.Match(ctx, code)
		if err != nil {
			return false, err
		}
		if m.State == game.Finished {
			return true, nil
		}
		p, _ := m.PlayerByID(playerID)
		options := d.Strategy.BestAttackTargets(m, p.Seat)
		if len(options) == 0 || options[0].Probability < d.MinOdds {
			return false, nil
		}
		best := options[0]
		result, err := e.PerformCombat(ctx, code, playerID, best.From, best.To, best.Armies)
		if err != nil {
			return false, err
		}
		d.Metrics.AddCombat(result.Conquered, result.Eliminated != "")
		if result.Winner != "" {
			return true, nil
		}
	}
	return false, nil
}

// fortify makes one move: the biggest stack away from any border goes to
// the most threatened border territory it can reach.
func (d *Driver) fortify(ctx context.Context, e *engine.Engine, code, playerID string) error {
	m, err := e.Match(ctx, code)
	if err != nil {
		return err
	}
	p, _ := m.PlayerByID(playerID)
	borders := d.Strategy.BestDefensePositions(m, p.Seat)
	if len(borders) == 0 {
		return nil
	}
	isBorder := map[int]bool{}
	for _, id := range borders {
		isBorder[id] = true
	}

	from, most := -1, 0
	for _, id := range m.TerritoriesOf(p.Seat) {
		if !isBorder[id] && m.MaxMovableArmies(id) > most {
			from, most = id, m.MaxMovableArmies(id)
		}
	}
	if from < 0 {
		return nil
	}
	for _, to := range borders {
		if m.IsConnected(from, to, p.Seat) {
			log.Debug().Str("match", code).Msgf("%s fortifies %s", p.Name, m.Map.Territories[to].Name)
			return e.PerformFortification(ctx, code, playerID, from, to, most)
		}
	}
	return nil
}

// spread deals n armies round-robin over the most threatened borders.
func (d *Driver) spread(m *game.Match, seat, n int) map[int]int {
	targets := d.Strategy.BestDefensePositions(m, seat)
	if len(targets) > 3 {
		targets = targets[:3]
	}
	if len(targets) == 0 {
		targets = m.TerritoriesOf(seat)[:1]
	}
	placement := map[int]int{}
	for i := 0; i < n; i++ {
		placement[targets[i%len(targets)]]++
	}
	return placement
}
