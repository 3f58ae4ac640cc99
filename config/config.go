package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings of a local run, read from the environment.
type Config struct {
	Store    string // "memory" or "redis"
	RedisURL string
	LogLevel string
	Seed     uint64 // 0 means seed from the clock
	Players  int
	MaxTurns int
}

// Load reads a .env file if one exists, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	seed, err := strconv.ParseUint(envOrDefault("TEG_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("TEG_SEED: %w", err)
	}
	players, err := strconv.Atoi(envOrDefault("TEG_PLAYERS", "3"))
	if err != nil {
		return nil, fmt.Errorf("TEG_PLAYERS: %w", err)
	}
	maxTurns, err := strconv.Atoi(envOrDefault("TEG_MAX_TURNS", "300"))
	if err != nil {
		return nil, fmt.Errorf("TEG_MAX_TURNS: %w", err)
	}

	cfg := &Config{
		Store:    envOrDefault("TEG_STORE", "memory"),
		RedisURL: envOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		LogLevel: envOrDefault("LOG_LEVEL", "info"),
		Seed:     seed,
		Players:  players,
		MaxTurns: maxTurns,
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	if c.Store != "memory" && c.Store != "redis" {
		return fmt.Errorf("unknown store %q", c.Store)
	}
	if c.Players < 2 || c.Players > 6 {
		return fmt.Errorf("players must be between 2 and 6, got %d", c.Players)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("max turns must be positive, got %d", c.MaxTurns)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
