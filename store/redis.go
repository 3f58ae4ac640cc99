package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"teg/game"

	"github.com/redis/go-redis/v9"
)

// Key patterns for stored matches.
func stateKey(code string) string { return "match:" + code + ":state" }

// Redis stores each match as one JSON snapshot.
type Redis struct {
	rdb *redis.Client
}

// NewRedis connects to the server at redisURL.
func NewRedis(redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Redis{rdb: rdb}, nil
}

// NewRedisFromClient wraps an existing client, for tests.
func NewRedisFromClient(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (s *Redis) Close() error {
	return s.rdb.Close()
}

func (s *Redis) Create(ctx context.Context, m *game.Match) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode match %s: %w", m.Code, err)
	}
	created, err := s.rdb.SetNX(ctx, stateKey(m.Code), data, 0).Result()
	if err != nil {
		return fmt.Errorf("create match %s: %w", m.Code, err)
	}
	if !created {
		return fmt.Errorf("%w: %s", game.ErrMatchExists, m.Code)
	}
	return nil
}

func (s *Redis) Load(ctx context.Context, code string) (*game.Match, error) {
	data, err := s.rdb.Get(ctx, stateKey(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w %s", game.ErrUnknownMatch, code)
	}
	if err != nil {
		return nil, fmt.Errorf("get match %s: %w", code, err)
	}

	var m game.Match
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: decode match %s: %v", game.ErrInvariant, code, err)
	}
	if err := m.Restore(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Redis) Save(ctx context.Context, m *game.Match) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode match %s: %w", m.Code, err)
	}
	updated, err := s.rdb.SetXX(ctx, stateKey(m.Code), data, 0).Result()
	if err != nil {
		return fmt.Errorf("save match %s: %w", m.Code, err)
	}
	if !updated {
		return fmt.Errorf("%w %s", game.ErrUnknownMatch, m.Code)
	}
	return nil
}

// Delete drops a match snapshot.
func (s *Redis) Delete(ctx context.Context, code string) error {
	return s.rdb.Del(ctx, stateKey(code)).Err()
}
