package engine

import (
	"context"
	"fmt"

	"teg/game"

	"github.com/rs/zerolog/log"
)

// Bot plays for one seat. PlayTurn is called whenever that seat has the
// turn and must make progress through the engine's entry points.
type Bot interface {
	PlayTurn(ctx context.Context, e *Engine, code, playerID string) error
}

// Run drives a started match with bots until somebody wins or maxTurns
// turns have been played. It returns the winner's ID, empty if the limit
// was reached.
func (e *Engine) Run(ctx context.Context, code string, bots map[string]Bot, maxTurns int) (string, error) {
	m, err := e.Match(ctx, code)
	if err != nil {
		return "", err
	}
	for _, p := range m.Players {
		if _, ok := bots[p.ID]; !ok {
			return "", fmt.Errorf("%w: no bot for %s", ErrInvalid, p.Name)
		}
	}
	if m.State == game.WaitingForPlayers {
		return "", game.ErrWrongState
	}
	log.Info().Str("match", code).Msgf("player %s is starting", m.CurrentPlayer().Name)

	for m.State != game.Finished && m.Turn < maxTurns {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		current := m.CurrentPlayer()
		state, seat, turn := m.State, m.CurrentSeat, m.Turn

		if err := bots[current.ID].PlayTurn(ctx, e, code, current.ID); err != nil {
			return "", fmt.Errorf("%s on turn %d: %w", current.Name, m.Turn, err)
		}

		if m, err = e.Match(ctx, code); err != nil {
			return "", err
		}
		if m.State == state && m.CurrentSeat == seat && m.Turn == turn && m.State != game.Finished {
			if m.State != game.HostilityOnly && m.State != game.NormalPlay {
				return "", fmt.Errorf("%w: %s made no progress in %s and the turn cannot be skipped", ErrInvalid, current.Name, m.State)
			}
			log.Warn().Str("match", code).Msgf("%s made no progress, skipping turn", current.Name)
			if m, err = e.NextTurn(ctx, code); err != nil {
				return "", err
			}
		}
	}

	if m.State != game.Finished {
		log.Info().Str("match", code).Msgf("stopped after %d turns (no winner yet)", m.Turn)
		return "", nil
	}
	log.Info().Str("match", code).Msgf("game ended, winner: %s", m.Winner)
	return m.Winner, nil
}
