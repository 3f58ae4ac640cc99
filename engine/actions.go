package engine

import (
	"context"

	"teg/game"

	"github.com/rs/zerolog/log"
)

// PerformCombat resolves one round of dice from fromID into toID.
func (e *Engine) PerformCombat(ctx context.Context, code, playerID string, fromID, toID, armies int) (*game.CombatResult, error) {
	var result *game.CombatResult
	m, err := e.update(ctx, code, func(m *game.Match) error {
		var err error
		result, err = m.Attack(playerID, fromID, toID, armies, e.roller)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Str("match", code).
		Ints("attacker", result.AttackerDice).
		Ints("defender", result.DefenderDice).
		Msgf("%s attacked %s from %s: lost %d, killed %d",
			playerID, m.Map.Territories[toID].Name, m.Map.Territories[fromID].Name, result.AttackerLosses, result.DefenderLosses)
	if result.Eliminated != "" {
		log.Info().Str("match", code).Msgf("%s eliminated by %s", result.Eliminated, playerID)
	}
	if result.Winner != "" {
		log.Info().Str("match", code).Msgf("%s won the match on turn %d", result.Winner, m.Turn)
	}
	return result, nil
}

func (e *Engine) PerformFortification(ctx context.Context, code, playerID string, fromID, toID, armies int) error {
	_, err := e.update(ctx, code, func(m *game.Match) error {
		return m.Fortify(playerID, fromID, toID, armies)
	})
	if err == nil {
		log.Debug().Str("match", code).Msgf("%s moved %d armies from %d to %d", playerID, armies, fromID, toID)
	}
	return err
}

// MaxMovableArmies is how many armies may leave territoryID.
func (e *Engine) MaxMovableArmies(ctx context.Context, code string, territoryID int) (int, error) {
	var n int
	err := e.view(ctx, code, func(m *game.Match) error {
		if !m.Map.Valid(territoryID) {
			return game.ErrUnknownTerritory
		}
		n = m.MaxMovableArmies(territoryID)
		return nil
	})
	return n, err
}

// IsConnected reports whether playerID may move armies from fromID to toID.
func (e *Engine) IsConnected(ctx context.Context, code, playerID string, fromID, toID int) (bool, error) {
	var ok bool
	err := e.view(ctx, code, func(m *game.Match) error {
		if !m.Map.Valid(fromID) || !m.Map.Valid(toID) {
			return game.ErrUnknownTerritory
		}
		p, err := m.PlayerByID(playerID)
		if err != nil {
			return err
		}
		ok = m.IsConnected(fromID, toID, p.Seat)
		return nil
	})
	return ok, err
}

// CalculateReinforcementArmies returns what playerID would receive at the start of a turn.
func (e *Engine) CalculateReinforcementArmies(ctx context.Context, code, playerID string) (int, error) {
	var n int
	err := e.view(ctx, code, func(m *game.Match) error {
		p, err := m.PlayerByID(playerID)
		if err != nil {
			return err
		}
		n = m.CalculateReinforcementArmies(p)
		return nil
	})
	return n, err
}

func (e *Engine) PlaceReinforcementArmies(ctx context.Context, code, playerID string, armiesByTerritory map[int]int) error {
	_, err := e.update(ctx, code, func(m *game.Match) error {
		return m.PlaceReinforcements(playerID, armiesByTerritory)
	})
	return err
}

// DrawCard gives playerID a card from the deck outside the turn flow, once
// turn play has begun. ClaimCard is the in-turn path.
func (e *Engine) DrawCard(ctx context.Context, code, playerID string) (*game.Card, error) {
	var card game.Card
	_, err := e.update(ctx, code, func(m *game.Match) error {
		switch m.State {
		case game.Finished:
			return game.ErrGameOver
		case game.HostilityOnly, game.NormalPlay:
		default:
			return game.ErrWrongState
		}
		p, err := m.PlayerByID(playerID)
		if err != nil {
			return err
		}
		if p.Status == game.Eliminated {
			return game.ErrPlayerEliminated
		}
		c, err := m.DrawCard(p.Seat, e.roller)
		if err != nil {
			return err
		}
		card = *c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// ClaimCard draws the card playerID earned by conquering this turn.
func (e *Engine) ClaimCard(ctx context.Context, code, playerID string) (*game.Card, error) {
	var card game.Card
	_, err := e.update(ctx, code, func(m *game.Match) error {
		c, err := m.ClaimCard(playerID, e.roller)
		if err != nil {
			return err
		}
		card = *c
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Str("match", code).Msgf("%s drew card %d (%s)", playerID, card.ID, card.Type)
	return &card, nil
}

// TradeCards exchanges three cards for reinforcements and returns the reward.
func (e *Engine) TradeCards(ctx context.Context, code, playerID string, cardIDs [3]int) (int, error) {
	var reward int
	_, err := e.update(ctx, code, func(m *game.Match) error {
		var err error
		reward, err = m.TradeCards(playerID, cardIDs)
		return err
	})
	if err != nil {
		return 0, err
	}
	log.Debug().Str("match", code).Msgf("%s traded %v for %d armies", playerID, cardIDs, reward)
	return reward, nil
}

func (e *Engine) PlaceInitialArmies(ctx context.Context, code, playerID string, armiesByTerritory map[int]int) error {
	before := game.WaitingForPlayers
	m, err := e.update(ctx, code, func(m *game.Match) error {
		before = m.State
		return m.PlaceInitialArmies(playerID, armiesByTerritory)
	})
	if err != nil {
		return err
	}
	if m.State != before {
		log.Info().Str("match", code).Msgf("placement round over, match is now %s", m.State)
	}
	return nil
}
