package wolfgoatpig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLedger() *RoundLedger {
	return NewRoundLedger([]int64{10, 20, 30, 40})
}

func ledgerEntry(hole int, delta PointsDelta) LedgerEntry {
	return LedgerEntry{
		Hole:  Hole{Number: hole, Par: 4},
		Delta: delta,
	}
}

func evenDelta(winner int64) PointsDelta {
	delta := PointsDelta{10: Quarters(-1), 20: Quarters(-1), 30: Quarters(-1), 40: Quarters(-1)}
	delta[winner] = Quarters(3)

	return delta
}

func TestRoundLedger_commitAndTotals(t *testing.T) {
	a := assert.New(t)

	l := testLedger()
	a.NoError(l.Commit(ledgerEntry(1, evenDelta(10))))
	a.NoError(l.Commit(ledgerEntry(2, evenDelta(10))))
	a.NoError(l.Commit(ledgerEntry(3, evenDelta(30))))

	a.Equal(3, l.HolesCommitted())
	a.Equal(Quarters(5), l.RunningTotal(10))
	a.Equal(Quarters(-3), l.RunningTotal(20))
	a.Equal(Quarters(1), l.RunningTotal(30))
	a.Equal(Quarters(-3), l.RunningTotal(40))
	a.True(l.ZeroSumCheck())
}

func TestRoundLedger_sequencing(t *testing.T) {
	a := assert.New(t)

	l := testLedger()
	a.Equal(ErrHoleOutOfSequence, l.Commit(ledgerEntry(2, evenDelta(10))))

	a.NoError(l.Commit(ledgerEntry(1, evenDelta(10))))
	a.Equal(ErrHoleAlreadyCommitted, l.Commit(ledgerEntry(1, evenDelta(20))))
	a.Equal(ErrHoleOutOfSequence, l.Commit(ledgerEntry(3, evenDelta(20))))

	// the failed commits changed nothing
	a.Equal(1, l.HolesCommitted())
	a.Equal(Quarters(3), l.RunningTotal(10))
}

func TestRoundLedger_incompleteDelta(t *testing.T) {
	a := assert.New(t)

	l := testLedger()

	missing := PointsDelta{10: Quarters(3), 20: Quarters(-1), 30: Quarters(-2)}
	a.Equal(ErrIncompleteDelta, l.Commit(ledgerEntry(1, missing)))

	stranger := PointsDelta{10: Quarters(3), 20: Quarters(-1), 30: Quarters(-1), 99: Quarters(-1)}
	a.Equal(ErrIncompleteDelta, l.Commit(ledgerEntry(1, stranger)))

	a.Equal(0, l.HolesCommitted())
}

func TestRoundLedger_rejectsNonZeroSum(t *testing.T) {
	a := assert.New(t)

	l := testLedger()
	bad := PointsDelta{10: Quarters(3), 20: Quarters(-1), 30: Quarters(-1), 40: Quarters(0)}

	err := l.Commit(ledgerEntry(1, bad))
	a.Error(err)

	var inconsistency *InconsistencyError
	a.ErrorAs(err, &inconsistency)
	a.Equal(1, inconsistency.Hole)
	a.Equal(Quarters(1), inconsistency.Sum)

	a.Equal(0, l.HolesCommitted())
	a.True(l.RunningTotal(10).IsZero())
}

func TestRoundLedger_fractionalDeltas(t *testing.T) {
	a := assert.New(t)

	l := testLedger()
	delta := PointsDelta{
		10: Quarters(-2),
		20: Ratio(2, 3),
		30: Ratio(2, 3),
		40: Ratio(2, 3),
	}

	a.NoError(l.Commit(ledgerEntry(1, delta)))
	a.Equal(Ratio(2, 3), l.RunningTotal(20))
	a.True(l.ZeroSumCheck())
}

func TestRoundLedger_runningTotalsIsACopy(t *testing.T) {
	a := assert.New(t)

	l := testLedger()
	a.NoError(l.Commit(ledgerEntry(1, evenDelta(10))))

	totals := l.RunningTotals()
	totals[10] = Quarters(100)
	a.Equal(Quarters(3), l.RunningTotal(10))

	entries := l.Entries()
	a.Len(entries, 1)
	entries[0] = LedgerEntry{}
	a.Equal(1, l.Entries()[0].Hole.Number)
}
