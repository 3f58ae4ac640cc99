package engine

import (
	"context"
	"fmt"

	"teg/game"
	"teg/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MatchOptions are the lobby settings a match is created with.
type MatchOptions struct {
	MaxPlayers   int
	ChatEnabled  bool
	PactsEnabled bool
}

// CreateMatch opens a new match in WAITING_FOR_PLAYERS under a fresh code.
func (e *Engine) CreateMatch(ctx context.Context, opts MatchOptions) (*game.Match, error) {
	if opts.MaxPlayers == 0 {
		opts.MaxPlayers = meta.MAX_PLAYERS
	}
	if opts.MaxPlayers < meta.MIN_PLAYERS || opts.MaxPlayers > meta.MAX_PLAYERS {
		return nil, fmt.Errorf("%w: max players %d", ErrInvalid, opts.MaxPlayers)
	}
	m := game.NewMatch(e.newCode(), e.board, opts.MaxPlayers)
	m.ChatEnabled = opts.ChatEnabled
	m.PactsEnabled = opts.PactsEnabled

	if err := e.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	log.Info().Str("match", m.Code).Msgf("match created on %s for up to %d players", m.MapName, m.MaxPlayers)
	return m.Clone(), nil
}

// AddPlayer seats a player. An empty color picks the first free one.
func (e *Engine) AddPlayer(ctx context.Context, code, name string, color game.Color, bot bool) (*game.Player, error) {
	var seated game.Player
	_, err := e.update(ctx, code, func(m *game.Match) error {
		if color == "" {
			color = m.FreeColor()
		}
		p, err := m.AddPlayer(uuid.NewString(), name, color, bot)
		if err != nil {
			return err
		}
		seated = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("match", code).Msgf("%s joined as %s (seat %d)", name, seated.Color, seated.Seat)
	return &seated, nil
}

// Match returns a snapshot of the match. Changing it has no effect on the stored match.
func (e *Engine) Match(ctx context.Context, code string) (*game.Match, error) {
	var snapshot *game.Match
	err := e.view(ctx, code, func(m *game.Match) error {
		snapshot = m.Clone()
		return nil
	})
	return snapshot, err
}

// StartGame deals the board and opens the first placement round.
func (e *Engine) StartGame(ctx context.Context, code string) (*game.Match, error) {
	m, err := e.update(ctx, code, func(m *game.Match) error {
		return m.Start(e.roller)
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("match", code).Msgf("match started with %d players", len(m.Players))
	return m.Clone(), nil
}

func (e *Engine) changeState(ctx context.Context, code string, fn func(m *game.Match) bool) error {
	m, err := e.update(ctx, code, func(m *game.Match) error {
		return refused(fn(m))
	})
	if err != nil {
		return err
	}
	log.Info().Str("match", code).Msgf("match is now %s", m.State)
	return nil
}

func (e *Engine) PauseGame(ctx context.Context, code string) error {
	return e.changeState(ctx, code, (*game.Match).Pause)
}

func (e *Engine) ResumeGame(ctx context.Context, code string) error {
	return e.changeState(ctx, code, (*game.Match).Resume)
}

// FinishGame ends the match. winnerID may be empty for an abandoned match.
func (e *Engine) FinishGame(ctx context.Context, code, winnerID string) error {
	return e.changeState(ctx, code, func(m *game.Match) bool {
		if winnerID != "" {
			if _, err := m.PlayerByID(winnerID); err != nil {
				return false
			}
		}
		return m.Finish(winnerID)
	})
}

// NextTurn passes the turn to the next active player whatever the phase.
func (e *Engine) NextTurn(ctx context.Context, code string) (*game.Match, error) {
	m, err := e.update(ctx, code, func(m *game.Match) error {
		return refused(m.NextTurn())
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Str("match", code).Msgf("turn %d: seat %d to play", m.Turn, m.CurrentSeat)
	return m.Clone(), nil
}

// ChangeTurnPhase moves the current turn to phase.
func (e *Engine) ChangeTurnPhase(ctx context.Context, code string, phase game.Phase) error {
	m, err := e.update(ctx, code, func(m *game.Match) error {
		return refused(m.ChangeTurnPhase(phase))
	})
	if err != nil {
		return err
	}
	log.Debug().Str("match", code).Msgf("seat %d in %s", m.CurrentSeat, m.Phase)
	return nil
}

// EndTurn closes playerID's turn from any phase where that is allowed.
func (e *Engine) EndTurn(ctx context.Context, code, playerID string) error {
	_, err := e.update(ctx, code, func(m *game.Match) error {
		return m.EndTurn(playerID)
	})
	return err
}

func (e *Engine) AvailableActions(ctx context.Context, code string) ([]string, error) {
	var actions []string
	err := e.view(ctx, code, func(m *game.Match) error {
		actions = m.AvailableActions()
		return nil
	})
	return actions, err
}

func (e *Engine) IsPlayerTurn(ctx context.Context, code, playerID string) (bool, error) {
	var turn bool
	err := e.view(ctx, code, func(m *game.Match) error {
		turn = m.IsPlayerTurn(playerID)
		return nil
	})
	return turn, err
}
