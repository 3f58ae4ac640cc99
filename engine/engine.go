package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"teg/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Repository persists matches by code. Load returns an error wrapping
// game.ErrNotFound when no match has that code.
type Repository interface {
	Create(ctx context.Context, m *game.Match) error
	Load(ctx context.Context, code string) (*game.Match, error)
	Save(ctx context.Context, m *game.Match) error
}

// Error classes, shared with the game package so callers need a single import.
var (
	ErrInvalid   = game.ErrInvalid
	ErrNotFound  = game.ErrNotFound
	ErrInvariant = game.ErrInvariant
)

// Class names the error class of err: "invalid", "not_found", "invariant",
// or "internal" for anything else (storage, context).
func Class(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalid):
		return "invalid"
	case errors.Is(err, ErrInvariant):
		return "invariant"
	default:
		return "internal"
	}
}

// Engine is the match-code addressed entry point to the rules. Operations on
// the same match are serialised; different matches run in parallel.
type Engine struct {
	repo    Repository
	roller  game.Roller
	board   *game.Map
	newCode func() string

	// locks holds one *sync.Mutex per match code.
	locks sync.Map
}

type Option func(*Engine)

// WithRoller replaces the dice source. It is wrapped so concurrent matches can share it.
func WithRoller(r game.Roller) Option {
	return func(e *Engine) { e.roller = game.NewLockedRoller(r) }
}

// WithMap sets the board for matches created from now on.
func WithMap(m *game.Map) Option {
	return func(e *Engine) { e.board = m }
}

// WithCodes overrides match code generation.
func WithCodes(next func() string) Option {
	return func(e *Engine) { e.newCode = next }
}

func New(repo Repository, opts ...Option) *Engine {
	e := &Engine{
		repo:    repo,
		roller:  game.NewLockedRoller(game.NewRoller(uint64(time.Now().UnixNano()))),
		newCode: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.board == nil {
		board, err := game.MapByName(game.StandardMapName)
		if err != nil {
			panic(err)
		}
		e.board = board
	}
	return e
}

func (e *Engine) matchLock(code string) *sync.Mutex {
	v, _ := e.locks.LoadOrStore(code, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// update runs fn on the stored match under the match lock and saves the
// result. Nothing is saved when fn fails. A finished match can no longer
// change, so its lock is released once it has been saved.
func (e *Engine) update(ctx context.Context, code string, fn func(m *game.Match) error) (*game.Match, error) {
	mu := e.matchLock(code)
	mu.Lock()
	defer mu.Unlock()

	m, err := e.repo.Load(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := fn(m); err != nil {
		if errors.Is(err, ErrInvariant) {
			log.Error().Err(err).Str("match", code).Msg("invariant violated")
		}
		return nil, err
	}
	if err := e.repo.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("save match %s: %w", code, err)
	}
	if m.State == game.Finished {
		e.locks.CompareAndDelete(code, mu)
	}
	return m, nil
}

// view runs fn on the stored match under the match lock without saving.
func (e *Engine) view(ctx context.Context, code string, fn func(m *game.Match) error) error {
	mu := e.matchLock(code)
	mu.Lock()
	defer mu.Unlock()

	m, err := e.repo.Load(ctx, code)
	if err != nil {
		return err
	}
	return fn(m)
}

func refused(ok bool) error {
	if !ok {
		return game.ErrTransitionRefused
	}
	return nil
}
