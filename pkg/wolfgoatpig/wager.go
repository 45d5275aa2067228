package wolfgoatpig

import "fmt"

// WagerRule identifies the rule that produced a wager event
type WagerRule int

const (
	// RuleBase is the base wager
	RuleBase WagerRule = iota
	// RuleSolo doubles the wager when the captain goes pig
	RuleSolo
	// RuleDoubleWindow doubles the wager on the double-points holes
	RuleDoubleWindow
	// RuleCustomStake is the trailing captain's stake override on the final holes
	RuleCustomStake
	// RuleDouble is a manual escalation
	RuleDouble
	// RuleRedouble is a counter-escalation
	RuleRedouble
	// RuleOption is the trailing captain's automatic escalation
	RuleOption
)

func (r WagerRule) String() string {
	switch r {
	case RuleBase:
		return "base"
	case RuleSolo:
		return "solo"
	case RuleDoubleWindow:
		return "doubleWindow"
	case RuleCustomStake:
		return "customStake"
	case RuleDouble:
		return "double"
	case RuleRedouble:
		return "redouble"
	case RuleOption:
		return "option"
	default:
		panic(fmt.Sprintf("unknown wager rule: %d", int(r)))
	}
}

// MarshalJSON encodes the rule by name
func (r WagerRule) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// WagerEvent is one applied multiplier or override, tagged with the rule that
// produced it
type WagerEvent struct {
	Rule       WagerRule `json:"rule"`
	Multiplier int       `json:"multiplier,omitempty"`
	Override   int       `json:"override,omitempty"`
}

// validStakes are the values the trailing captain may set the stakes to
var validStakes = map[int]bool{2: true, 4: true, 8: true}

// WagerState is the hole's wager: base units, the ordered rule events applied
// to it, and any per-player personal stakes. Once locked no further event may
// apply.
type WagerState struct {
	Base   int          `json:"base"`
	Units  int          `json:"units"`
	Events []WagerEvent `json:"events"`

	// Stakes holds per-player opt-in stakes. A stake reshapes that player's
	// share of the team payout; it never changes the team wager.
	Stakes map[int64]int `json:"stakes,omitempty"`

	Locked bool `json:"locked"`
}

// computeWager builds the hole's wager from the base amount, the team type,
// and the hole position. Order matters: the solo and double-window
// multipliers stack; a custom stake override replaces whatever came before
// it.
func computeWager(hole Hole, assignment *TeamAssignment, opts Options) *WagerState {
	w := &WagerState{
		Base:   opts.BaseWager,
		Units:  opts.BaseWager,
		Events: []WagerEvent{{Rule: RuleBase, Multiplier: 1}},
	}

	if assignment.Type == TeamSolo {
		w.multiply(RuleSolo, 2)
	}

	if hole.DoublePoints {
		w.multiply(RuleDoubleWindow, 2)
	}

	return w
}

func (w *WagerState) multiply(rule WagerRule, factor int) {
	w.Units *= factor
	w.Events = append(w.Events, WagerEvent{Rule: rule, Multiplier: factor})
}

// applyCustomStake overrides the running wager with the trailing captain's
// chosen stake. Only valid on the special final holes, and only for the
// discrete values 2, 4, and 8.
func (w *WagerState) applyCustomStake(hole Hole, value int) error {
	if w.Locked {
		return ErrWagerLocked
	}

	if !hole.SpecialPhase {
		return ErrStakeOutsideSpecialPhase
	}

	if !validStakes[value] {
		return ErrInvalidStakeValue
	}

	w.Units = value
	w.Events = append(w.Events, WagerEvent{Rule: RuleCustomStake, Override: value})
	return nil
}

// applyPlayerStake records a personal opt-in stake for one player. The stake
// must increase the player's exposure beyond the team wager.
func (w *WagerState) applyPlayerStake(playerID int64, stake int) error {
	if w.Locked {
		return ErrWagerLocked
	}

	if stake <= w.Units {
		return ErrStakeTooLow
	}

	if w.Stakes == nil {
		w.Stakes = make(map[int64]int)
	}

	w.Stakes[playerID] = stake
	return nil
}

// lock freezes the wager. Called when the first stroke is recorded.
func (w *WagerState) lock() {
	w.Locked = true
}
