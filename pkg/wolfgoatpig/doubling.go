package wolfgoatpig

import "fmt"

// TeamSide identifies one side of the hole's bet
type TeamSide int

const (
	// SideNone is no side
	SideNone TeamSide = iota
	// SideCaptain is the captain's team
	SideCaptain
	// SideOpponents is the team opposing the captain
	SideOpponents
)

func (s TeamSide) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideCaptain:
		return "captain"
	case SideOpponents:
		return "opponents"
	default:
		panic(fmt.Sprintf("unknown team side: %d", int(s)))
	}
}

// negotiation lets either side escalate the wager before it locks. Each
// escalation may be countered exactly once by the other side; the exchange
// ends when a side declines to counter or the first stroke locks the wager.
//
// A captain holding the worst running total automatically holds a pending
// double (the Option). Unless the captain declines it before the wager locks,
// it applies as a standard escalation at lock time.
type negotiation struct {
	wager *WagerState

	// lastEscalator is the side whose escalation is currently outstanding
	lastEscalator TeamSide
	closed        bool

	optionArmed    bool
	optionDeclined bool
}

func newNegotiation(wager *WagerState, optionArmed bool) *negotiation {
	return &negotiation{
		wager:       wager,
		optionArmed: optionArmed,
	}
}

// offerDouble escalates the wager by one doubling step
func (n *negotiation) offerDouble(side TeamSide) error {
	if n.wager.Locked {
		return ErrWagerLocked
	}

	if n.closed {
		return ErrNegotiationClosed
	}

	if n.lastEscalator == side {
		return ErrOwnDouble
	}

	rule := RuleDouble
	if n.lastEscalator != SideNone {
		rule = RuleRedouble
	}

	n.wager.multiply(rule, 2)
	n.lastEscalator = side
	return nil
}

// decline ends the negotiation without countering the outstanding escalation
func (n *negotiation) decline(side TeamSide) error {
	if n.wager.Locked {
		return ErrWagerLocked
	}

	if n.lastEscalator == SideNone {
		return ErrNoPendingDouble
	}

	if n.lastEscalator == side {
		return ErrOwnDouble
	}

	n.closed = true
	return nil
}

// declineOption lets the trailing captain turn off their automatic double
func (n *negotiation) declineOption() error {
	if n.wager.Locked {
		return ErrWagerLocked
	}

	if !n.optionArmed || n.optionDeclined {
		return ErrOptionNotHeld
	}

	n.optionDeclined = true
	return nil
}

// optionPending returns true if the option will apply at lock
func (n *negotiation) optionPending() bool {
	return n.optionArmed && !n.optionDeclined
}

// lock applies a still-armed option and freezes the wager. Called when the
// first stroke affecting the outcome is recorded.
func (n *negotiation) lock() {
	if n.wager.Locked {
		return
	}

	if n.optionPending() {
		n.wager.multiply(RuleOption, 2)
	}

	n.wager.lock()
}
