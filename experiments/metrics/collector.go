package metrics

import (
	"sync/atomic"
	"time"
)

// Counts tallies what happened during one match.
type Counts struct {
	Combats      int
	Conquests    int
	Eliminations int
	Trades       int
	Cards        int
}

type MatchMetric struct {
	Match     string
	Seed      uint64
	Players   int
	Winner    string // Player name, empty when the turn limit was hit
	Turns     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Counts
}

// Collector is fed by bots as they play. Implementations are safe for concurrent use.
type Collector interface {
	AddCombat(conquered, eliminated bool)
	AddTrade()
	AddCard()
	Complete() Counts
}

type collector struct {
	combats      atomic.Int32
	conquests    atomic.Int32
	eliminations atomic.Int32
	trades       atomic.Int32
	cards        atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddCombat(conquered, eliminated bool) {
	c.combats.Add(1)
	if conquered {
		c.conquests.Add(1)
	}
	if eliminated {
		c.eliminations.Add(1)
	}
}

func (c *collector) AddTrade() {
	c.trades.Add(1)
}

func (c *collector) AddCard() {
	c.cards.Add(1)
}

func (c *collector) Complete() Counts {
	return Counts{
		Combats:      int(c.combats.Load()),
		Conquests:    int(c.conquests.Load()),
		Eliminations: int(c.eliminations.Load()),
		Trades:       int(c.trades.Load()),
		Cards:        int(c.cards.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) AddCombat(conquered, eliminated bool) {}
func (c *dummyCollector) AddTrade()                            {}
func (c *dummyCollector) AddCard()                             {}
func (c *dummyCollector) Complete() Counts                     { return Counts{} }
