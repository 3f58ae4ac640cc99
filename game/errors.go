package game

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by this package wraps exactly one of these.
var (
	ErrInvalid   = errors.New("invalid action")
	ErrNotFound  = errors.New("not found")
	ErrInvariant = errors.New("invariant violated")
)

// Validation errors
var (
	ErrNotYourTurn       = fmt.Errorf("%w: not your turn", ErrInvalid)
	ErrWrongState        = fmt.Errorf("%w: not allowed in the current match state", ErrInvalid)
	ErrWrongPhase        = fmt.Errorf("%w: not allowed in the current turn phase", ErrInvalid)
	ErrNotOwner          = fmt.Errorf("%w: territory is not yours", ErrInvalid)
	ErrOwnTerritory      = fmt.Errorf("%w: cannot attack your own territory", ErrInvalid)
	ErrNotAdjacent       = fmt.Errorf("%w: territories are not adjacent", ErrInvalid)
	ErrNotConnected      = fmt.Errorf("%w: territories are not connected", ErrInvalid)
	ErrArmyCount         = fmt.Errorf("%w: army count out of range", ErrInvalid)
	ErrSameTerritory     = fmt.Errorf("%w: source and destination are the same", ErrInvalid)
	ErrNotEnoughPending  = fmt.Errorf("%w: not enough armies to place", ErrInvalid)
	ErrPlacementTotal    = fmt.Errorf("%w: placement does not match the round allotment", ErrInvalid)
	ErrInvalidTrade      = fmt.Errorf("%w: cards do not form a valid set", ErrInvalid)
	ErrNotYourCard       = fmt.Errorf("%w: card is not in your hand", ErrInvalid)
	ErrNoCardEarned      = fmt.Errorf("%w: no card earned this turn", ErrInvalid)
	ErrCannotStart       = fmt.Errorf("%w: match cannot start", ErrInvalid)
	ErrMatchFull         = fmt.Errorf("%w: match is full", ErrInvalid)
	ErrAlreadyJoined     = fmt.Errorf("%w: player already joined", ErrInvalid)
	ErrColorTaken        = fmt.Errorf("%w: color already taken", ErrInvalid)
	ErrPlayerEliminated  = fmt.Errorf("%w: player has been eliminated", ErrInvalid)
	ErrGameOver          = fmt.Errorf("%w: match is finished", ErrInvalid)
	ErrNoTerritories     = fmt.Errorf("%w: player owns no territories", ErrInvalid)
	ErrNoActivePlayers   = fmt.Errorf("%w: no active players", ErrInvalid)
	ErrTransitionRefused = fmt.Errorf("%w: transition refused", ErrInvalid)
	ErrMatchExists       = fmt.Errorf("%w: match code already in use", ErrInvalid)
)

// Lookup errors
var (
	ErrUnknownTerritory = fmt.Errorf("%w: territory", ErrNotFound)
	ErrUnknownPlayer    = fmt.Errorf("%w: player", ErrNotFound)
	ErrUnknownCard      = fmt.Errorf("%w: card", ErrNotFound)
	ErrUnknownMatch     = fmt.Errorf("%w: match", ErrNotFound)
)

// Fatal errors
var (
	ErrDeckExhausted  = fmt.Errorf("%w: deck exhausted with no cards to recycle", ErrInvariant)
	ErrNegativeArmies = fmt.Errorf("%w: negative army count", ErrInvariant)
)
