package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"teg/config"
	"teg/engine"
	"teg/experiments"
	"teg/experiments/metrics"
	"teg/logger"
	"teg/store"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	runs := flag.Int("runs", 1, "Number of matches to simulate")
	players := flag.Int("players", cfg.Players, "Bots per match")
	maxTurns := flag.Int("max-turns", cfg.MaxTurns, "Turn limit per match")
	seed := flag.Uint64("seed", cfg.Seed, "Seed of the first match (0 picks one from the clock)")
	storeKind := flag.String("store", cfg.Store, "Match store: memory or redis")
	out := flag.String("out", "", "Directory to write match records to as CSV")
	pretty := flag.Bool("pretty", true, "Human readable logs")
	flag.Parse()

	cfg.Players, cfg.MaxTurns, cfg.Seed, cfg.Store = *players, *maxTurns, *seed, *storeKind
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	logger.Init(cfg.LogLevel, *pretty)

	if err := run(cfg, *runs, *out); err != nil {
		log.Error().Err(err).Str("class", engine.Class(err)).Msg("simulation stopped")
		os.Exit(1)
	}
}

func run(cfg *config.Config, runs int, out string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	repo, closeRepo, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeRepo()

	records, err := experiments.RunBatch(ctx, repo, experiments.Settings{
		Runs:     runs,
		Players:  cfg.Players,
		MaxTurns: cfg.MaxTurns,
		Seed:     cfg.Seed,
	})

	wins := map[string]int{}
	for _, r := range records {
		wins[r.Winner]++
	}
	log.Info().Msgf("Finished %d matches, wins: %v", len(records), wins)

	if out != "" && len(records) > 0 {
		w, werr := metrics.NewWriter(out)
		if werr == nil {
			werr = w.WriteMatchRecords(records)
		}
		if werr != nil {
			log.Error().Err(werr).Msg("write match records")
		} else {
			log.Info().Msgf("match records written to %s", w.Dir())
		}
	}
	return err
}

func openStore(cfg *config.Config) (engine.Repository, func(), error) {
	switch cfg.Store {
	case "redis":
		r, err := store.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { r.Close() }, nil
	default:
		return store.NewMemory(), func() {}, nil
	}
}
