package experiments

import (
	"context"
	"fmt"
	"time"

	"teg/agent"
	"teg/engine"
	"teg/experiments/metrics"
	"teg/game"

	"github.com/rs/zerolog/log"
)

// Settings describe a batch of bot-only matches.
type Settings struct {
	Runs     int
	Players  int
	MaxTurns int
	Seed     uint64 // Match i is dealt with Seed+i
}

// RunBatch plays Settings.Runs matches one after another on repo and
// returns one record per match.
func RunBatch(ctx context.Context, repo engine.Repository, s Settings) ([]metrics.MatchRecord, error) {
	records := make([]metrics.MatchRecord, 0, s.Runs)
	for i := 0; i < s.Runs; i++ {
		seed := s.Seed + uint64(i)
		log.Info().Msgf("Game %d started (seed %d)...", i+1, seed)

		metric, err := runMatch(ctx, repo, s, seed)
		if err != nil {
			return records, fmt.Errorf("game %d: %w", i+1, err)
		}
		log.Info().Msgf("Game %d over after %d turns! Winner: %s", i+1, metric.Turns, orNone(metric.Winner))
		records = append(records, metrics.MatchRecord{ID: i + 1, MatchMetric: metric})
	}
	return records, nil
}

func runMatch(ctx context.Context, repo engine.Repository, s Settings, seed uint64) (metrics.MatchMetric, error) {
	e := engine.New(repo, engine.WithRoller(game.NewRoller(seed)))
	collector := metrics.NewCollector()

	m, err := e.CreateMatch(ctx, engine.MatchOptions{MaxPlayers: s.Players})
	if err != nil {
		return metrics.MatchMetric{}, err
	}
	bots := map[string]engine.Bot{}
	names := map[string]string{}
	for i := 0; i < s.Players; i++ {
		p, err := e.AddPlayer(ctx, m.Code, fmt.Sprintf("bot-%d", i+1), "", true)
		if err != nil {
			return metrics.MatchMetric{}, err
		}
		driver := agent.NewDriver(agent.Heuristic{})
		driver.Metrics = collector
		bots[p.ID] = driver
		names[p.ID] = p.Name
	}

	start := time.Now()
	if _, err := e.StartGame(ctx, m.Code); err != nil {
		return metrics.MatchMetric{}, err
	}
	winner, err := e.Run(ctx, m.Code, bots, s.MaxTurns)
	if err != nil {
		return metrics.MatchMetric{}, err
	}
	end := time.Now()

	final, err := e.Match(ctx, m.Code)
	if err != nil {
		return metrics.MatchMetric{}, err
	}
	return metrics.MatchMetric{
		Match:     m.Code,
		Seed:      seed,
		Players:   s.Players,
		Winner:    names[winner],
		Turns:     final.Turn,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
		Counts:    collector.Complete(),
	}, nil
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
