package wolfgoatpig

import "fmt"

// TeamType is the kind of team assignment on a hole
type TeamType int

const (
	// TeamSolo means the captain plays alone against the other three
	TeamSolo TeamType = iota
	// TeamPartnership means the captain plays with one partner against the other two
	TeamPartnership
	// TeamDeferred means the captain floated and has not yet declared
	TeamDeferred
)

func (t TeamType) String() string {
	switch t {
	case TeamSolo:
		return "solo"
	case TeamPartnership:
		return "partnership"
	case TeamDeferred:
		return "deferred"
	default:
		panic(fmt.Sprintf("unknown team type: %d", int(t)))
	}
}

// MarshalJSON encodes the team type by name
func (t TeamType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// TeamAssignment is the team declaration for a single hole. Exactly one
// assignment exists per hole, and a deferred assignment must resolve into a
// solo or partnership before scoring.
type TeamAssignment struct {
	Type      TeamType `json:"type"`
	Captain   int64    `json:"captain"`
	Partner   int64    `json:"partner,omitempty"` // partnership only
	Opponents []int64  `json:"opponents,omitempty"`

	// Duncan is true for a solo declared before any strokes were observed.
	// It grants the 3-for-2 payoff shape instead of the standard 3-for-1.
	Duncan bool `json:"duncan,omitempty"`

	// Forced is true when the final-hole default partnership was applied
	// because the captain never declared
	Forced bool `json:"forced,omitempty"`

	// InvokedBy is set on a deferred assignment
	InvokedBy int64 `json:"invokedBy,omitempty"`
}

// onCaptainTeam returns true if the player plays with the captain
func (a *TeamAssignment) onCaptainTeam(playerID int64) bool {
	if playerID == a.Captain {
		return true
	}

	return a.Type == TeamPartnership && playerID == a.Partner
}

func (a *TeamAssignment) captainTeam() []int64 {
	if a.Type == TeamPartnership {
		return []int64{a.Captain, a.Partner}
	}

	return []int64{a.Captain}
}

// FormationState is the state of the team formation machine
type FormationState int

const (
	// FormationAwaiting means no declaration has been made
	FormationAwaiting FormationState = iota
	// FormationDeferred means the captain floated and must still declare
	FormationDeferred
	// FormationDeclared means a solo or partnership is locked in
	FormationDeclared
)

// formation drives the captain's team declaration for one hole
type formation struct {
	captain *Participant
	others  []*Participant

	state       FormationState
	assignment  *TeamAssignment
	strokesSeen bool // once true, a solo can no longer earn the Duncan flag
}

func newFormation(captain *Participant, others []*Participant) *formation {
	return &formation{
		captain: captain,
		others:  others,
	}
}

func (f *formation) opponentIDs(exclude int64) []int64 {
	ids := make([]int64, 0, len(f.others))
	for _, p := range f.others {
		if p.PlayerID != exclude {
			ids = append(ids, p.PlayerID)
		}
	}

	return ids
}

// declareSolo declares the captain on their own. If no strokes have been
// observed yet the declaration carries the Duncan flag.
func (f *formation) declareSolo() (*TeamAssignment, error) {
	if f.state == FormationDeclared {
		return nil, ErrAlreadyDeclared
	}

	f.assignment = &TeamAssignment{
		Type:      TeamSolo,
		Captain:   f.captain.PlayerID,
		Opponents: f.opponentIDs(0),
		Duncan:    !f.strokesSeen,
	}
	f.state = FormationDeclared

	return f.assignment, nil
}

// declarePartnership declares the captain with the given partner
func (f *formation) declarePartnership(partnerID int64) (*TeamAssignment, error) {
	if f.state == FormationDeclared {
		return nil, ErrAlreadyDeclared
	}

	if partnerID == f.captain.PlayerID || !f.isInRotation(partnerID) {
		return nil, ErrInvalidPartner
	}

	f.assignment = &TeamAssignment{
		Type:      TeamPartnership,
		Captain:   f.captain.PlayerID,
		Partner:   partnerID,
		Opponents: f.opponentIDs(partnerID),
	}
	f.state = FormationDeclared

	return f.assignment, nil
}

// invokeFloat defers the declaration so the captain can observe results
// first. Each player may float once per round; a second attempt fails
// without mutating any state.
func (f *formation) invokeFloat() (*TeamAssignment, error) {
	if f.state == FormationDeclared {
		return nil, ErrAlreadyDeclared
	}

	if f.captain.floatUsed {
		return nil, ErrFloatAlreadyUsed
	}

	f.captain.floatUsed = true
	f.assignment = &TeamAssignment{
		Type:      TeamDeferred,
		Captain:   f.captain.PlayerID,
		InvokedBy: f.captain.PlayerID,
	}
	f.state = FormationDeferred

	return f.assignment, nil
}

// forcePartnership applies the final-hole default: the undeclared captain is
// partnered with the given player. The assignment is marked Forced so the
// default is observable.
func (f *formation) forcePartnership(partnerID int64) *TeamAssignment {
	if f.state == FormationDeclared {
		panic("forcePartnership called after a declaration")
	}

	f.assignment = &TeamAssignment{
		Type:      TeamPartnership,
		Captain:   f.captain.PlayerID,
		Partner:   partnerID,
		Opponents: f.opponentIDs(partnerID),
		Forced:    true,
	}
	f.state = FormationDeclared

	return f.assignment
}

// observedStroke records that at least one stroke has been seen, which rules
// out the Duncan flag on a later solo declaration
func (f *formation) observedStroke() {
	f.strokesSeen = true
}

func (f *formation) isInRotation(playerID int64) bool {
	for _, p := range f.others {
		if p.PlayerID == playerID {
			return true
		}
	}

	return false
}
