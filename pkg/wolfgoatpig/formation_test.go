package wolfgoatpig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testFormation() *formation {
	players := testParticipants()
	return newFormation(players[0], players[1:])
}

func TestFormation_declareSolo(t *testing.T) {
	a := assert.New(t)

	f := testFormation()
	assignment, err := f.declareSolo()
	a.NoError(err)
	a.Equal(TeamSolo, assignment.Type)
	a.Equal(int64(10), assignment.Captain)
	a.Equal([]int64{20, 30, 40}, assignment.Opponents)
	a.True(assignment.Duncan, "solo before any strokes is a Duncan")
	a.Equal(FormationDeclared, f.state)

	_, err = f.declareSolo()
	a.Equal(ErrAlreadyDeclared, err)
}

func TestFormation_soloAfterStrokesIsNotDuncan(t *testing.T) {
	a := assert.New(t)

	f := testFormation()
	f.observedStroke()

	assignment, err := f.declareSolo()
	a.NoError(err)
	a.False(assignment.Duncan)
}

func TestFormation_declarePartnership(t *testing.T) {
	a := assert.New(t)

	f := testFormation()
	assignment, err := f.declarePartnership(30)
	a.NoError(err)
	a.Equal(TeamPartnership, assignment.Type)
	a.Equal(int64(10), assignment.Captain)
	a.Equal(int64(30), assignment.Partner)
	a.Equal([]int64{20, 40}, assignment.Opponents)
	a.False(assignment.Forced)
}

func TestFormation_invalidPartner(t *testing.T) {
	a := assert.New(t)

	f := testFormation()

	// self
	_, err := f.declarePartnership(10)
	a.Equal(ErrInvalidPartner, err)

	// not in the rotation
	_, err = f.declarePartnership(99)
	a.Equal(ErrInvalidPartner, err)

	// a rejected selection leaves the formation untouched
	a.Equal(FormationAwaiting, f.state)
	a.Nil(f.assignment)
}

func TestFormation_float(t *testing.T) {
	a := assert.New(t)

	f := testFormation()
	assignment, err := f.invokeFloat()
	a.NoError(err)
	a.Equal(TeamDeferred, assignment.Type)
	a.Equal(int64(10), assignment.InvokedBy)
	a.Equal(FormationDeferred, f.state)
	a.True(f.captain.UsedFloat())

	// the deferred decision resolves on the same hole
	f.observedStroke()
	resolved, err := f.declareSolo()
	a.NoError(err)
	a.Equal(TeamSolo, resolved.Type)
	a.False(resolved.Duncan)
}

func TestFormation_floatTwice(t *testing.T) {
	a := assert.New(t)

	players := testParticipants()
	players[0].floatUsed = true
	f := newFormation(players[0], players[1:])

	_, err := f.invokeFloat()
	a.Equal(ErrFloatAlreadyUsed, err)

	// the rejection mutates nothing
	a.Equal(FormationAwaiting, f.state)
	a.Nil(f.assignment)
}

func TestFormation_forcePartnership(t *testing.T) {
	a := assert.New(t)

	f := testFormation()
	assignment := f.forcePartnership(40)
	a.Equal(TeamPartnership, assignment.Type)
	a.Equal(int64(40), assignment.Partner)
	a.True(assignment.Forced, "the default must be observable")

	assert.Panics(t, func() {
		f.forcePartnership(20)
	})
}
