package wolfgoatpig

import (
	"errors"
	"fmt"
)

// ErrGameIsOver is an error when an action is attempted on an ended round
var ErrGameIsOver = errors.New("round is over")

// ErrPlayerNotFound is an error when the player is not part of the round
var ErrPlayerNotFound = errors.New("player not found")

// ErrNotCaptain happens when a non-captain attempts a captain-only action
var ErrNotCaptain = errors.New("only the captain may do that")

// ErrAlreadyDeclared happens if the captain declares teams twice on a hole
var ErrAlreadyDeclared = errors.New("teams have already been declared")

// ErrInvalidPartner happens when the captain picks themselves or an unknown player
var ErrInvalidPartner = errors.New("invalid partner selection")

// ErrFloatAlreadyUsed happens on a second float invocation by the same player
var ErrFloatAlreadyUsed = errors.New("the float has already been used")

// ErrDeclarationRequired happens when scoring begins without a team declaration
var ErrDeclarationRequired = errors.New("teams must be declared before scoring")

// ErrWagerLocked happens when an escalation arrives after the first stroke was recorded
var ErrWagerLocked = errors.New("the wager is locked")

// ErrNoPendingDouble happens when there is no escalation to respond to
var ErrNoPendingDouble = errors.New("there is no double to respond to")

// ErrOwnDouble happens when a team tries to respond to its own escalation
var ErrOwnDouble = errors.New("cannot respond to your own double")

// ErrNegotiationClosed happens after a team has declined to counter
var ErrNegotiationClosed = errors.New("the doubling negotiation has ended")

// ErrOptionNotHeld happens when the captain declines an option they do not hold
var ErrOptionNotHeld = errors.New("the option is not in play")

// ErrStakeOutsideSpecialPhase happens when the custom stake is set before the final holes
var ErrStakeOutsideSpecialPhase = errors.New("the custom stake is only available on the final holes")

// ErrInvalidStakeValue happens when the custom stake is not 2, 4, or 8
var ErrInvalidStakeValue = errors.New("the custom stake must be 2, 4, or 8 quarters")

// ErrStakeTooLow happens when a personal stake does not exceed the team wager
var ErrStakeTooLow = errors.New("a personal stake must exceed the team wager")

// ErrStrokesAlreadyRecorded happens when a player records strokes twice on a hole
var ErrStrokesAlreadyRecorded = errors.New("strokes have already been recorded")

// ErrInvalidStrokes happens when a stroke count is not a positive number
var ErrInvalidStrokes = errors.New("strokes must be greater than zero")

// ErrMissingStrokes happens when a score set does not cover every player
var ErrMissingStrokes = errors.New("missing strokes for one or more players")

// ErrIncompleteDelta happens when a delta does not cover every player in the round
var ErrIncompleteDelta = errors.New("delta must cover every player")

// ErrHoleAlreadyCommitted happens when a hole is committed to the ledger twice
var ErrHoleAlreadyCommitted = errors.New("hole has already been committed")

// ErrHoleOutOfSequence happens when holes are committed out of order
var ErrHoleOutOfSequence = errors.New("holes must be committed in order")

// PlayerCountError is an error on the number of players in the round
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d players, got %d", roundPlayers, int(p))
}

// InconsistencyError is a fatal internal error raised when a computed delta
// does not sum to zero. It indicates a rule-composition bug; the hole must
// not be committed.
type InconsistencyError struct {
	Hole int
	Sum  Amount
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("hole %d: points delta sums to %s, not zero", e.Hole, e.Sum)
}
