package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is the root of the rejection taxonomy. Every precondition
// failure wraps it, so callers can match the family with errors.Is while the
// API layer maps each variant to a distinct response.
var ErrInvalidAction = errors.New("invalid action")

var (
	ErrGameNotActive         = fmt.Errorf("%w: game is not in progress", ErrInvalidAction)
	ErrUnknownTeam           = fmt.Errorf("%w: unknown team", ErrInvalidAction)
	ErrNotYourTurn           = fmt.Errorf("%w: not your turn", ErrInvalidAction)
	ErrInsufficientResources = fmt.Errorf("%w: cannot pass with zero chips", ErrInvalidAction)
	ErrUnknownAction         = fmt.Errorf("%w: unrecognized action", ErrInvalidAction)

	// ErrNoTeams rejects initialization of a room nobody has joined.
	ErrNoTeams = errors.New("cannot start a game with no teams")
)
