package game

import (
	"sort"
	"sync"

	"golang.org/x/exp/rand"
)

// Roller is the engine's only source of randomness. *rand.Rand satisfies it;
// tests substitute a scripted sequence.
type Roller interface {
	Intn(n int) int
}

// NewRoller returns a seeded pseudo-random Roller.
func NewRoller(seed uint64) Roller {
	return rand.New(rand.NewSource(seed))
}

// LockedRoller serialises access to a Roller shared between goroutines.
type LockedRoller struct {
	mu sync.Mutex
	r  Roller
}

func NewLockedRoller(r Roller) *LockedRoller {
	return &LockedRoller{r: r}
}

func (l *LockedRoller) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// rollDice returns num values in 1..6 sorted descending.
func rollDice(r Roller, num int) []int {
	rolls := make([]int, num)
	for i := 0; i < num; i++ {
		rolls[i] = r.Intn(6) + 1
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
	return rolls
}

// shuffle permutes s in place (Fisher-Yates).
func shuffle[T any](r Roller, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
