package wolfgoatpig

// LedgerEntry is one committed hole: what was played, for how much, and who
// moved which way
type LedgerEntry struct {
	Hole       Hole            `json:"hole"`
	Assignment *TeamAssignment `json:"assignment"`
	Wager      *WagerState     `json:"wager"`
	Delta      PointsDelta     `json:"delta"`

	// ForfeitedUnits is non-zero when the carry limit forced a tied pot to
	// be forfeited on this hole
	ForfeitedUnits int `json:"forfeitedUnits,omitempty"`
}

// RoundLedger is the append-only record of committed holes and the running
// totals derived from them. Historical entries are never edited; a
// correction is a new compensating entry.
type RoundLedger struct {
	playerIDs []int64
	entries   []LedgerEntry
	totals    map[int64]Amount
}

// NewRoundLedger returns an empty ledger for the given players
func NewRoundLedger(playerIDs []int64) *RoundLedger {
	totals := make(map[int64]Amount, len(playerIDs))
	for _, id := range playerIDs {
		totals[id] = Amount{}
	}

	return &RoundLedger{
		playerIDs: append([]int64{}, playerIDs...),
		totals:    totals,
	}
}

// Commit validates and appends a hole record. The delta must cover exactly
// the ledger's players and sum to zero; holes must arrive in order, once
// each. On any failure the ledger is unchanged.
func (l *RoundLedger) Commit(entry LedgerEntry) error {
	next := len(l.entries) + 1
	switch {
	case entry.Hole.Number < next:
		return ErrHoleAlreadyCommitted
	case entry.Hole.Number > next:
		return ErrHoleOutOfSequence
	}

	if len(entry.Delta) != len(l.playerIDs) {
		return ErrIncompleteDelta
	}

	for _, id := range l.playerIDs {
		if _, ok := entry.Delta[id]; !ok {
			return ErrIncompleteDelta
		}
	}

	if sum := entry.Delta.Sum(); !sum.IsZero() {
		return &InconsistencyError{Hole: entry.Hole.Number, Sum: sum}
	}

	l.entries = append(l.entries, entry)
	for id, amount := range entry.Delta {
		l.totals[id] = l.totals[id].Add(amount)
	}

	return nil
}

// RunningTotal returns the player's cumulative quarters
func (l *RoundLedger) RunningTotal(playerID int64) Amount {
	return l.totals[playerID]
}

// RunningTotals returns a copy of all cumulative quarters
func (l *RoundLedger) RunningTotals() map[int64]Amount {
	totals := make(map[int64]Amount, len(l.totals))
	for id, amount := range l.totals {
		totals[id] = amount
	}

	return totals
}

// ZeroSumCheck verifies that every prefix of the ledger sums to exactly zero
func (l *RoundLedger) ZeroSumCheck() bool {
	prefix := make(map[int64]Amount, len(l.playerIDs))
	for _, entry := range l.entries {
		var sum Amount
		for id, amount := range entry.Delta {
			prefix[id] = prefix[id].Add(amount)
		}

		for _, amount := range prefix {
			sum = sum.Add(amount)
		}

		if !sum.IsZero() {
			return false
		}
	}

	return true
}

// Entries returns a copy of the committed hole records
func (l *RoundLedger) Entries() []LedgerEntry {
	return append([]LedgerEntry{}, l.entries...)
}

// HolesCommitted returns the number of committed holes
func (l *RoundLedger) HolesCommitted() int {
	return len(l.entries)
}
