package game

import (
	"fmt"
	"sort"
	"sync"

	"teg/utils"
)

type Territory struct {
	ID          int    // Stable index into Map.Territories
	Name        string // Display name
	ContinentID int    // Index into Map.Continents
	AdjacentIDs []int  // Sorted IDs of bordering territories
}

type Continent struct {
	ID           int
	Name         string
	Bonus        int   // Armies granted each turn to a player holding every territory
	TerritoryIDs []int // Member territories
}

// Map is the static board. It is built once and never mutated afterwards, so
// a single instance is shared by every match that plays on it.
type Map struct {
	Name        string
	Territories []*Territory // Arena indexed by territory ID
	Continents  []*Continent // Arena indexed by continent ID
	byName      map[string]int
}

// NewMap creates and returns an empty Map.
func NewMap(name string) *Map {
	return &Map{
		Name:   name,
		byName: make(map[string]int),
	}
}

// AddContinent appends a continent and returns its ID.
func (m *Map) AddContinent(name string, bonus int) int {
	id := len(m.Continents)
	m.Continents = append(m.Continents, &Continent{ID: id, Name: name, Bonus: bonus})
	return id
}

// AddTerritory appends a territory to a continent and returns its ID.
func (m *Map) AddTerritory(name string, continentID int) int {
	id := len(m.Territories)
	m.Territories = append(m.Territories, &Territory{
		ID:          id,
		Name:        name,
		ContinentID: continentID,
		AdjacentIDs: []int{},
	})
	m.Continents[continentID].TerritoryIDs = append(m.Continents[continentID].TerritoryIDs, id)
	m.byName[name] = id
	return id
}

// AddBorder adds a bidirectional border between two territories.
func (m *Map) AddBorder(id1, id2 int) {
	if id1 == id2 {
		return
	}
	t1, t2 := m.Territories[id1], m.Territories[id2]
	if !utils.Contains(t1.AdjacentIDs, id2) {
		t1.AdjacentIDs = append(t1.AdjacentIDs, id2)
		sort.Ints(t1.AdjacentIDs)
	}
	if !utils.Contains(t2.AdjacentIDs, id1) {
		t2.AdjacentIDs = append(t2.AdjacentIDs, id1)
		sort.Ints(t2.AdjacentIDs)
	}
}

// Size returns the number of territories.
func (m *Map) Size() int {
	return len(m.Territories)
}

// Valid reports whether id names a territory on this map.
func (m *Map) Valid(id int) bool {
	return id >= 0 && id < len(m.Territories)
}

// TerritoryID resolves a territory name.
func (m *Map) TerritoryID(name string) (int, bool) {
	id, ok := m.byName[name]
	return id, ok
}

// AreAdjacent checks if two territories share a border.
func (m *Map) AreAdjacent(id1, id2 int) bool {
	if !m.Valid(id1) || !m.Valid(id2) {
		return false
	}
	i := sort.SearchInts(m.Territories[id1].AdjacentIDs, id2)
	return i < len(m.Territories[id1].AdjacentIDs) && m.Territories[id1].AdjacentIDs[i] == id2
}

// ContinentID resolves a continent name, or returns -1.
func (m *Map) ContinentID(name string) int {
	for _, c := range m.Continents {
		if c.Name == name {
			return c.ID
		}
	}
	return -1
}

var (
	registryMu sync.Mutex
	registry   = map[string]func() *Map{StandardMapName: CreateStandardMap}
	built      = map[string]*Map{}
)

// RegisterMap makes a map constructor available to MapByName.
func RegisterMap(name string, create func() *Map) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = create
	delete(built, name)
}

// MapByName returns the shared instance of a registered map, building it on first use.
func MapByName(name string) (*Map, error) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if m, ok := built[name]; ok {
		return m, nil
	}
	create, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: map %q", ErrNotFound, name)
	}
	m := create()
	built[name] = m
	return m, nil
}
