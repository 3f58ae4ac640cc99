package game

import (
	"fmt"

	"teg/meta"
)

type ObjectiveType int

const (
	CommonObjective ObjectiveType = iota
	OccupationObjective
	DestructionObjective
)

var objectiveTypeNames = []string{"COMMON", "OCCUPATION", "DESTRUCTION"}

func (t ObjectiveType) String() string {
	if t < 0 || int(t) >= len(objectiveTypeNames) {
		return fmt.Sprintf("ObjectiveType(%d)", int(t))
	}
	return objectiveTypeNames[t]
}

func (t ObjectiveType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *ObjectiveType) UnmarshalText(b []byte) error {
	v, err := parseEnum(objectiveTypeNames, string(b))
	*t = ObjectiveType(v)
	return err
}

// Objective is a win condition. Occupation objectives list required
// territory counts per continent (0 means the whole continent); destruction
// objectives name a color, resolved to a seat at assignment time.
type Objective struct {
	Name        string        `json:"name"`
	Type        ObjectiveType `json:"type"`
	Occupy      map[int]int   `json:"occupy,omitempty"`
	Countries   int           `json:"countries,omitempty"`
	TargetColor Color         `json:"target_color,omitempty"`
	TargetSeat  int           `json:"target_seat"`
}

func (o Objective) clone() Objective {
	if o.Occupy != nil {
		occupy := make(map[int]int, len(o.Occupy))
		for k, v := range o.Occupy {
			occupy[k] = v
		}
		o.Occupy = occupy
	}
	return o
}

// Common is the objective every player shares.
func Common() Objective {
	return Objective{
		Name:       fmt.Sprintf("Occupy %d countries", meta.COMMON_OBJECTIVE_COUNTRIES),
		Type:       CommonObjective,
		Countries:  meta.COMMON_OBJECTIVE_COUNTRIES,
		TargetSeat: -1,
	}
}

// StandardObjectives returns the secret objective pool for the standard map.
// Continents missing from b are silently dropped from the requirements.
func StandardObjectives(b *Map) []Objective {
	occupy := func(name string, req map[string]int) Objective {
		o := Objective{Name: name, Type: OccupationObjective, Occupy: map[int]int{}, TargetSeat: -1}
		for continent, n := range req {
			if id := b.ContinentID(continent); id >= 0 {
				o.Occupy[id] = n
			}
		}
		return o
	}
	destroy := func(c Color) Objective {
		return Objective{Name: "Destroy the " + string(c) + " army", Type: DestructionObjective, TargetColor: c, TargetSeat: -1}
	}

	return []Objective{
		occupy("Occupy Africa, 5 countries of North America and 4 of Europe",
			map[string]int{"Africa": 0, "North America": 5, "Europe": 4}),
		occupy("Occupy South America and 7 countries of Europe",
			map[string]int{"South America": 0, "Europe": 7}),
		occupy("Occupy Asia and 2 countries of South America",
			map[string]int{"Asia": 0, "South America": 2}),
		occupy("Occupy Europe, 4 countries of Asia and 2 of South America",
			map[string]int{"Europe": 0, "Asia": 4, "South America": 2}),
		occupy("Occupy North America, 2 countries of Oceania and 4 of Asia",
			map[string]int{"North America": 0, "Oceania": 2, "Asia": 4}),
		occupy("Occupy 2 countries of Oceania, 2 of Africa, 2 of South America, 3 of Europe, 4 of North America and 3 of Asia",
			map[string]int{"Oceania": 2, "Africa": 2, "South America": 2, "Europe": 3, "North America": 4, "Asia": 3}),
		occupy("Occupy Oceania, North America and 2 countries of Europe",
			map[string]int{"Oceania": 0, "North America": 0, "Europe": 2}),
		occupy("Occupy South America, Africa and 4 countries of Asia",
			map[string]int{"South America": 0, "Africa": 0, "Asia": 4}),
		destroy(Red),
		destroy(Blue),
		destroy(Green),
		destroy(Yellow),
		destroy(Black),
		destroy(Magenta),
	}
}

// AssignObjectives deals one secret objective from pool to each active
// player. A destruction objective whose color is absent or is the holder's
// own is aimed at the player seated to the holder's right instead.
func (m *Match) AssignObjectives(r Roller, pool []Objective) {
	if len(pool) == 0 {
		return
	}
	deck := make([]Objective, len(pool))
	copy(deck, pool)
	shuffle(r, deck)

	for i, p := range m.ActivePlayers() {
		obj := deck[i%len(deck)].clone()
		if obj.Type == DestructionObjective {
			target := m.PlayerByColor(obj.TargetColor)
			if target == nil || target.Seat == p.Seat {
				obj.TargetSeat, _ = m.nextActiveSeat(p.Seat)
				obj.TargetColor = m.Players[obj.TargetSeat].Color
				obj.Name = "Destroy the " + string(obj.TargetColor) + " army"
			} else {
				obj.TargetSeat = target.Seat
			}
		}
		p.Objective = &obj
	}
}

// retargetDestruction aims destruction objectives at the next seat to the
// right when their target was destroyed by somebody else.
func (m *Match) retargetDestruction(victimSeat, bySeat int) {
	for _, p := range m.ActivePlayers() {
		obj := p.Objective
		if obj == nil || obj.Type != DestructionObjective || obj.TargetSeat != victimSeat || p.Seat == bySeat {
			continue
		}
		next, _ := m.nextActiveSeat(p.Seat)
		if next < 0 || next == p.Seat {
			common := Common()
			p.Objective = &common
			continue
		}
		obj.TargetSeat = next
		obj.TargetColor = m.Players[next].Color
		obj.Name = "Destroy the " + string(obj.TargetColor) + " army"
	}
}

// ObjectiveAchieved reports whether seat has met the common objective or its
// secret one.
func (m *Match) ObjectiveAchieved(seat int) bool {
	common := Common()
	if m.objectiveMet(seat, &common) {
		return true
	}
	return m.objectiveMet(seat, m.Players[seat].Objective)
}

func (m *Match) objectiveMet(seat int, obj *Objective) bool {
	if obj == nil {
		return false
	}
	switch obj.Type {
	case CommonObjective:
		return obj.Countries > 0 && m.CountTerritories(seat) >= obj.Countries
	case OccupationObjective:
		if obj.Countries > 0 && m.CountTerritories(seat) < obj.Countries {
			return false
		}
		for id, required := range obj.Occupy {
			if id < 0 || id >= len(m.Map.Continents) {
				return false
			}
			if required == 0 {
				required = len(m.Map.Continents[id].TerritoryIDs)
			}
			if m.CountInContinent(seat, id) < required {
				return false
			}
		}
		return len(obj.Occupy) > 0
	case DestructionObjective:
		if obj.TargetSeat < 0 || obj.TargetSeat >= len(m.Players) {
			return false
		}
		return m.Players[obj.TargetSeat].Status == Eliminated
	}
	return false
}
