package wolfgoatpig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWager_base(t *testing.T) {
	a := assert.New(t)

	assignment := &TeamAssignment{Type: TeamPartnership, Captain: 10, Partner: 20, Opponents: []int64{30, 40}}
	w := computeWager(Hole{Number: 1}, assignment, DefaultOptions())
	a.Equal(1, w.Units)
	a.Equal([]WagerEvent{{Rule: RuleBase, Multiplier: 1}}, w.Events)
	a.False(w.Locked)
}

func TestComputeWager_soloDoubles(t *testing.T) {
	a := assert.New(t)

	assignment := &TeamAssignment{Type: TeamSolo, Captain: 10, Opponents: []int64{20, 30, 40}}
	w := computeWager(Hole{Number: 1}, assignment, DefaultOptions())
	a.Equal(2, w.Units)
	a.Equal(RuleSolo, w.Events[1].Rule)
}

func TestComputeWager_doubleWindowStacksWithSolo(t *testing.T) {
	a := assert.New(t)

	assignment := &TeamAssignment{Type: TeamSolo, Captain: 10, Opponents: []int64{20, 30, 40}}
	w := computeWager(Hole{Number: 13, DoublePoints: true}, assignment, DefaultOptions())
	a.Equal(4, w.Units)

	partnership := &TeamAssignment{Type: TeamPartnership, Captain: 10, Partner: 20, Opponents: []int64{30, 40}}
	w = computeWager(Hole{Number: 13, DoublePoints: true}, partnership, DefaultOptions())
	a.Equal(2, w.Units)
}

func TestWagerState_customStake(t *testing.T) {
	a := assert.New(t)

	assignment := &TeamAssignment{Type: TeamSolo, Captain: 10, Opponents: []int64{20, 30, 40}}
	special := Hole{Number: 17, SpecialPhase: true}

	w := computeWager(special, assignment, DefaultOptions())
	a.Equal(2, w.Units)

	// the override replaces the multiplied value outright
	a.NoError(w.applyCustomStake(special, 8))
	a.Equal(8, w.Units)
	a.Equal(WagerEvent{Rule: RuleCustomStake, Override: 8}, w.Events[len(w.Events)-1])

	a.Equal(ErrInvalidStakeValue, w.applyCustomStake(special, 3))
	a.Equal(ErrStakeOutsideSpecialPhase, w.applyCustomStake(Hole{Number: 5}, 4))

	w.lock()
	a.Equal(ErrWagerLocked, w.applyCustomStake(special, 2))
}

func TestWagerState_playerStake(t *testing.T) {
	a := assert.New(t)

	assignment := &TeamAssignment{Type: TeamPartnership, Captain: 10, Partner: 20, Opponents: []int64{30, 40}}
	w := computeWager(Hole{Number: 1}, assignment, DefaultOptions())

	a.Equal(ErrStakeTooLow, w.applyPlayerStake(20, 1), "a stake must increase exposure")
	a.Equal(ErrStakeTooLow, w.applyPlayerStake(20, 0))

	a.NoError(w.applyPlayerStake(20, 3))
	a.Equal(3, w.Stakes[20])

	w.lock()
	a.Equal(ErrWagerLocked, w.applyPlayerStake(30, 4))
}

func TestWagerRule_names(t *testing.T) {
	a := assert.New(t)

	a.Equal("base", RuleBase.String())
	a.Equal("solo", RuleSolo.String())
	a.Equal("doubleWindow", RuleDoubleWindow.String())
	a.Equal("customStake", RuleCustomStake.String())
	a.Equal("double", RuleDouble.String())
	a.Equal("redouble", RuleRedouble.String())
	a.Equal("option", RuleOption.String())
}
