package game

import (
	"fmt"

	"teg/meta"
)

type State int

const (
	WaitingForPlayers State = iota
	Reinforcement5
	Reinforcement3
	HostilityOnly
	NormalPlay
	Paused
	Finished
)

var stateNames = []string{"WAITING_FOR_PLAYERS", "REINFORCEMENT_5", "REINFORCEMENT_3", "HOSTILITY_ONLY", "NORMAL_PLAY", "PAUSED", "FINISHED"}

// AllStates lists every match state in lifecycle order.
var AllStates = []State{WaitingForPlayers, Reinforcement5, Reinforcement3, HostilityOnly, NormalPlay, Paused, Finished}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(b []byte) error {
	v, err := parseEnum(stateNames, string(b))
	*s = State(v)
	return err
}

type Phase int

const (
	ReinforcementPhase Phase = iota
	AttackPhase
	FortifyPhase
	ClaimCardPhase
	EndTurnPhase
)

var phaseNames = []string{"REINFORCEMENT", "ATTACK", "FORTIFY", "CLAIM_CARD", "END_TURN"}

// AllPhases lists every turn phase in turn order.
var AllPhases = []Phase{ReinforcementPhase, AttackPhase, FortifyPhase, ClaimCardPhase, EndTurnPhase}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Phase) UnmarshalText(b []byte) error {
	v, err := parseEnum(phaseNames, string(b))
	*p = Phase(v)
	return err
}

type PlayerStatus int

const (
	Waiting PlayerStatus = iota
	Active
	Eliminated
)

var statusNames = []string{"WAITING", "ACTIVE", "ELIMINATED"}

func (s PlayerStatus) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("PlayerStatus(%d)", int(s))
	}
	return statusNames[s]
}

func (s PlayerStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *PlayerStatus) UnmarshalText(b []byte) error {
	v, err := parseEnum(statusNames, string(b))
	*s = PlayerStatus(v)
	return err
}

func parseEnum(names []string, s string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown value %q", ErrInvalid, s)
}

type Color string

const (
	Red     Color = "red"
	Blue    Color = "blue"
	Green   Color = "green"
	Yellow  Color = "yellow"
	Black   Color = "black"
	Magenta Color = "magenta"
)

// Colors in seating preference order.
var Colors = []Color{Red, Blue, Green, Yellow, Black, Magenta}

// Player is a seat in a match. Seat is the index into Match.Players and never changes.
type Player struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Seat          int          `json:"seat"`
	Status        PlayerStatus `json:"status"`
	Color         Color        `json:"color"`
	Bot           bool         `json:"bot"`
	PendingArmies int          `json:"pending_armies"`
	TradeCount    int          `json:"trade_count"`
	Objective     *Objective   `json:"objective,omitempty"`
}

// Match is one game instance and the aggregate every operation reads and writes.
type Match struct {
	Code         string `json:"code"`
	MapName      string `json:"map"`
	Map          *Map   `json:"-"`
	State        State  `json:"state"`
	Phase        Phase  `json:"phase"`
	Turn         int    `json:"turn"`
	CurrentSeat  int    `json:"current_seat"`
	MaxPlayers   int    `json:"max_players"`
	ChatEnabled  bool   `json:"chat_enabled"`
	PactsEnabled bool   `json:"pacts_enabled"`

	Players   []*Player `json:"players"`
	Ownership []int     `json:"ownership"` // Owner seat per territory ID (-1 unowned)
	Armies    []int     `json:"armies"`    // Army count per territory ID
	Cards     []*Card   `json:"cards"`

	Winner            string `json:"winner,omitempty"`
	ConquestsThisTurn int    `json:"conquests_this_turn"`
	CardClaimed       bool   `json:"card_claimed"`

	rules Rules
}

// NewMatch creates a match in WAITING_FOR_PLAYERS on the given map.
func NewMatch(code string, m *Map, maxPlayers int) *Match {
	if maxPlayers <= 0 || maxPlayers > meta.MAX_PLAYERS {
		maxPlayers = meta.MAX_PLAYERS
	}
	match := &Match{
		Code:        code,
		MapName:     m.Name,
		Map:         m,
		State:       WaitingForPlayers,
		Phase:       ReinforcementPhase,
		MaxPlayers:  maxPlayers,
		Ownership:   make([]int, m.Size()),
		Armies:      make([]int, m.Size()),
		Cards:       NewDeck(m),
		CurrentSeat: 0,
	}
	for i := range match.Ownership {
		match.Ownership[i] = -1
	}
	return match
}

// Restore reattaches the static map after the match was decoded from a snapshot.
func (m *Match) Restore() error {
	board, err := MapByName(m.MapName)
	if err != nil {
		return err
	}
	if len(m.Ownership) != board.Size() || len(m.Armies) != board.Size() {
		return fmt.Errorf("%w: snapshot does not fit map %q", ErrInvariant, m.MapName)
	}
	m.Map = board
	return nil
}

// SetRules overrides the combat rules. A nil Rules restores the standard set.
func (m *Match) SetRules(r Rules) {
	m.rules = r
}

func (m *Match) Rules() Rules {
	if m.rules == nil {
		return NewStandardRules()
	}
	return m.rules
}

// AddPlayer seats a new player. Only allowed before the match starts.
func (m *Match) AddPlayer(id, name string, color Color, bot bool) (*Player, error) {
	if m.State != WaitingForPlayers {
		return nil, ErrWrongState
	}
	if len(m.Players) >= m.MaxPlayers {
		return nil, ErrMatchFull
	}
	for _, p := range m.Players {
		if p.ID == id {
			return nil, ErrAlreadyJoined
		}
		if p.Color == color {
			return nil, ErrColorTaken
		}
	}
	p := &Player{
		ID:     id,
		Name:   name,
		Seat:   len(m.Players),
		Status: Waiting,
		Color:  color,
		Bot:    bot,
	}
	m.Players = append(m.Players, p)
	return p, nil
}

// FreeColor returns the first color nobody has taken, or "".
func (m *Match) FreeColor() Color {
	for _, c := range Colors {
		taken := false
		for _, p := range m.Players {
			if p.Color == c {
				taken = true
				break
			}
		}
		if !taken {
			return c
		}
	}
	return ""
}

// PlayerByID looks a player up by its external ID.
func (m *Match) PlayerByID(id string) (*Player, error) {
	for _, p := range m.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownPlayer, id)
}

// PlayerByColor returns the player wearing color, or nil.
func (m *Match) PlayerByColor(c Color) *Player {
	for _, p := range m.Players {
		if p.Color == c {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is, or nil before seating.
func (m *Match) CurrentPlayer() *Player {
	if m.CurrentSeat < 0 || m.CurrentSeat >= len(m.Players) {
		return nil
	}
	return m.Players[m.CurrentSeat]
}

// ActivePlayers returns the players that have not been eliminated.
func (m *Match) ActivePlayers() []*Player {
	var active []*Player
	for _, p := range m.Players {
		if p.Status != Eliminated {
			active = append(active, p)
		}
	}
	return active
}

// Owner returns the seat owning a territory, or -1.
func (m *Match) Owner(territoryID int) int {
	if !m.Map.Valid(territoryID) {
		return -1
	}
	return m.Ownership[territoryID]
}

// TerritoriesOf returns the territory IDs owned by seat in ID order.
func (m *Match) TerritoriesOf(seat int) []int {
	var territories []int
	for id, owner := range m.Ownership {
		if owner == seat {
			territories = append(territories, id)
		}
	}
	return territories
}

// CountTerritories returns how many territories seat owns.
func (m *Match) CountTerritories(seat int) int {
	n := 0
	for _, owner := range m.Ownership {
		if owner == seat {
			n++
		}
	}
	return n
}

// ContinentOwner returns the seat owning every territory of a continent, or -1 if split.
func (m *Match) ContinentOwner(continentID int) int {
	ids := m.Map.Continents[continentID].TerritoryIDs
	if len(ids) == 0 {
		return -1
	}
	owner := m.Ownership[ids[0]]
	for _, id := range ids[1:] {
		if m.Ownership[id] != owner {
			return -1
		}
	}
	return owner
}

// CountInContinent returns how many territories of a continent seat owns.
func (m *Match) CountInContinent(seat, continentID int) int {
	n := 0
	for _, id := range m.Map.Continents[continentID].TerritoryIDs {
		if m.Ownership[id] == seat {
			n++
		}
	}
	return n
}

func (m *Match) territory(id int) (*Territory, error) {
	if !m.Map.Valid(id) {
		return nil, fmt.Errorf("%w %d", ErrUnknownTerritory, id)
	}
	return m.Map.Territories[id], nil
}

// Clone returns a deep copy sharing only the static map and rules.
func (m *Match) Clone() *Match {
	c := *m
	c.Players = make([]*Player, len(m.Players))
	for i, p := range m.Players {
		cp := *p
		if p.Objective != nil {
			obj := p.Objective.clone()
			cp.Objective = &obj
		}
		c.Players[i] = &cp
	}
	c.Ownership = append([]int(nil), m.Ownership...)
	c.Armies = append([]int(nil), m.Armies...)
	c.Cards = make([]*Card, len(m.Cards))
	for i, card := range m.Cards {
		cc := *card
		c.Cards[i] = &cc
	}
	return &c
}
