package game

import (
	"teg/meta"
	"teg/utils"
)

// Allowed match state changes. FINISHED has no entry and is therefore terminal.
var stateTransitions = map[State][]State{
	WaitingForPlayers: {Reinforcement5},
	Reinforcement5:    {Reinforcement3},
	Reinforcement3:    {HostilityOnly},
	HostilityOnly:     {NormalPlay, Finished},
	NormalPlay:        {Paused, Finished},
	Paused:            {NormalPlay, Finished},
}

// Allowed turn phase changes.
var phaseTransitions = map[Phase][]Phase{
	ReinforcementPhase: {AttackPhase},
	AttackPhase:        {FortifyPhase},
	FortifyPhase:       {ClaimCardPhase, EndTurnPhase},
	ClaimCardPhase:     {EndTurnPhase},
	EndTurnPhase:       {ReinforcementPhase},
}

// Action names understood by CanPerformAction.
const (
	ActionPlaceInitial = "place_initial"
	ActionReinforce    = "reinforce"
	ActionTradeCards   = "trade_cards"
	ActionAttack       = "attack"
	ActionFortify      = "fortify"
	ActionClaimCard    = "claim_card"
	ActionEndTurn      = "end_turn"
	ActionPause        = "pause"
	ActionResume       = "resume"
)

var actionOrder = []string{
	ActionPlaceInitial, ActionReinforce, ActionTradeCards, ActionAttack,
	ActionFortify, ActionClaimCard, ActionEndTurn, ActionPause, ActionResume,
}

// actionRule says in which states and phases an action is legal. A nil phase
// list means the action does not depend on the turn phase.
type actionRule struct {
	states []State
	phases []Phase
}

var actionRules = map[string]actionRule{
	ActionPlaceInitial: {states: []State{Reinforcement5, Reinforcement3}},
	ActionReinforce:    {states: []State{NormalPlay}, phases: []Phase{ReinforcementPhase}},
	ActionTradeCards:   {states: []State{NormalPlay}, phases: []Phase{ReinforcementPhase}},
	ActionAttack:       {states: []State{HostilityOnly, NormalPlay}, phases: []Phase{AttackPhase}},
	ActionFortify:      {states: []State{HostilityOnly, NormalPlay}, phases: []Phase{FortifyPhase}},
	ActionClaimCard:    {states: []State{HostilityOnly, NormalPlay}, phases: []Phase{ClaimCardPhase}},
	ActionEndTurn:      {states: []State{HostilityOnly, NormalPlay}, phases: []Phase{AttackPhase, FortifyPhase, ClaimCardPhase, EndTurnPhase}},
	ActionPause:        {states: []State{NormalPlay}},
	ActionResume:       {states: []State{Paused}},
}

// CanStart reports whether enough non-eliminated players are seated.
func (m *Match) CanStart() bool {
	return len(m.ActivePlayers()) >= meta.MIN_PLAYERS
}

// CanChangeState reports whether target is reachable from the current state.
func (m *Match) CanChangeState(target State) bool {
	if !utils.Contains(stateTransitions[m.State], target) {
		return false
	}
	if m.State == WaitingForPlayers && target == Reinforcement5 {
		return m.CanStart()
	}
	return true
}

// ChangeState moves the match to target. It returns false and leaves the
// match untouched when the transition is not allowed.
func (m *Match) ChangeState(target State) bool {
	if !m.CanChangeState(target) {
		return false
	}
	m.State = target
	return true
}

// turnPhasesActive reports whether the match is in a state that has turn phases.
func (m *Match) turnPhasesActive() bool {
	return m.State == HostilityOnly || m.State == NormalPlay
}

// ChangeTurnPhase moves the turn to target. Leaving END_TURN for
// REINFORCEMENT hands the turn to the next active player. In normal play
// REINFORCEMENT cannot be left while the current player has armies to place.
func (m *Match) ChangeTurnPhase(target Phase) bool {
	if !m.turnPhasesActive() || !utils.Contains(phaseTransitions[m.Phase], target) {
		return false
	}
	if m.Phase == ReinforcementPhase && m.State == NormalPlay {
		if p := m.CurrentPlayer(); p != nil && p.PendingArmies > 0 {
			return false
		}
	}
	if m.Phase == EndTurnPhase && target == ReinforcementPhase {
		return m.advanceTurn()
	}
	m.Phase = target
	return true
}

// nextActiveSeat finds the next non-eliminated seat after from, wrapping
// around. It inspects at most len(Players) seats, so a lone survivor gets
// its own seat back. wrapped is true when the search passed the last seat.
// It returns -1 when no seat is active.
func (m *Match) nextActiveSeat(from int) (seat int, wrapped bool) {
	n := len(m.Players)
	for i := 1; i <= n; i++ {
		s := (from + i) % n
		if m.Players[s].Status != Eliminated {
			return s, from+i >= n
		}
	}
	return -1, false
}

// firstActiveSeat returns the lowest active seat, or -1.
func (m *Match) firstActiveSeat() int {
	for _, p := range m.Players {
		if p.Status != Eliminated {
			return p.Seat
		}
	}
	return -1
}

// advanceTurn passes the turn on and resets per-turn bookkeeping. Armies the
// outgoing player left unplaced are forfeited.
func (m *Match) advanceTurn() bool {
	if len(m.Players) == 0 {
		return false
	}
	seat, wrapped := m.nextActiveSeat(m.CurrentSeat)
	if seat < 0 {
		return false
	}
	if p := m.CurrentPlayer(); p != nil {
		p.PendingArmies = 0
	}
	m.CurrentSeat = seat
	m.Phase = ReinforcementPhase
	m.Turn++
	m.ConquestsThisTurn = 0
	m.CardClaimed = false

	if m.State == HostilityOnly && wrapped {
		m.ChangeState(NormalPlay)
	}
	if m.State == NormalPlay {
		p := m.Players[seat]
		p.PendingArmies = m.CalculateReinforcementArmies(p)
	}
	return true
}

// NextTurn hands the turn to the next active player regardless of the
// current phase. It is the entry point timers use to skip idle players.
func (m *Match) NextTurn() bool {
	if !m.turnPhasesActive() {
		return false
	}
	return m.advanceTurn()
}

// EndTurn closes the current player's turn from any phase where that is legal.
func (m *Match) EndTurn(playerID string) error {
	if _, err := m.requireTurn(playerID, ActionEndTurn); err != nil {
		return err
	}
	m.Phase = EndTurnPhase
	if !m.ChangeTurnPhase(ReinforcementPhase) {
		return ErrNoActivePlayers
	}
	return nil
}

// CanPerformAction reports whether action is legal in the current state and phase.
func (m *Match) CanPerformAction(action string) bool {
	rule, ok := actionRules[action]
	if !ok || !utils.Contains(rule.states, m.State) {
		return false
	}
	return rule.phases == nil || utils.Contains(rule.phases, m.Phase)
}

// AvailableActions lists every action currently legal, in a stable order.
func (m *Match) AvailableActions() []string {
	actions := []string{}
	for _, a := range actionOrder {
		if m.CanPerformAction(a) {
			actions = append(actions, a)
		}
	}
	return actions
}

// IsPlayerTurn reports whether playerID holds the current seat.
func (m *Match) IsPlayerTurn(playerID string) bool {
	p := m.CurrentPlayer()
	return p != nil && p.ID == playerID
}

// requireTurn is the common guard for player actions: the player exists,
// is still in the match, holds the turn, and the action is legal now.
func (m *Match) requireTurn(playerID, action string) (*Player, error) {
	if m.State == Finished {
		return nil, ErrGameOver
	}
	p, err := m.PlayerByID(playerID)
	if err != nil {
		return nil, err
	}
	if p.Status == Eliminated {
		return nil, ErrPlayerEliminated
	}
	if !m.CanPerformAction(action) {
		if rule, ok := actionRules[action]; ok && utils.Contains(rule.states, m.State) {
			return nil, ErrWrongPhase
		}
		return nil, ErrWrongState
	}
	if !m.IsPlayerTurn(playerID) {
		return nil, ErrNotYourTurn
	}
	return p, nil
}

// Start leaves the lobby: it deals territories, assigns objectives and
// opens the first placement round at the first seat.
func (m *Match) Start(r Roller) error {
	if !m.ChangeState(Reinforcement5) {
		return ErrCannotStart
	}
	for _, p := range m.Players {
		p.Status = Active
		p.PendingArmies = 0
	}
	m.DistributeTerritories(r)
	m.AssignObjectives(r, StandardObjectives(m.Map))
	m.beginPlacementRound(meta.FIRST_PLACEMENT_ARMIES)
	m.Turn = 0
	return nil
}

// Pause suspends normal play.
func (m *Match) Pause() bool {
	return m.ChangeState(Paused)
}

// Resume returns a paused match to normal play.
func (m *Match) Resume() bool {
	return m.ChangeState(NormalPlay)
}

// Finish ends the match, recording winnerID (which may be empty).
func (m *Match) Finish(winnerID string) bool {
	if !m.ChangeState(Finished) {
		return false
	}
	m.Winner = winnerID
	return true
}
