// Package store holds the match repositories the engine persists through.
package store

import (
	"context"
	"fmt"
	"sync"

	"teg/game"
)

// Memory keeps matches in process. It stores and hands out copies, so
// callers never share a *game.Match with it.
type Memory struct {
	mu      sync.RWMutex
	matches map[string]*game.Match
}

func NewMemory() *Memory {
	return &Memory{matches: map[string]*game.Match{}}
}

func (s *Memory) Create(_ context.Context, m *game.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[m.Code]; ok {
		return fmt.Errorf("%w: %s", game.ErrMatchExists, m.Code)
	}
	s.matches[m.Code] = m.Clone()
	return nil
}

func (s *Memory) Load(_ context.Context, code string) (*game.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[code]
	if !ok {
		return nil, fmt.Errorf("%w %s", game.ErrUnknownMatch, code)
	}
	return m.Clone(), nil
}

func (s *Memory) Save(_ context.Context, m *game.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[m.Code]; !ok {
		return fmt.Errorf("%w %s", game.ErrUnknownMatch, m.Code)
	}
	s.matches[m.Code] = m.Clone()
	return nil
}

// Codes lists the stored match codes.
func (s *Memory) Codes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := make([]string, 0, len(s.matches))
	for code := range s.matches {
		codes = append(codes, code)
	}
	return codes
}
