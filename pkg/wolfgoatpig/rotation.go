package wolfgoatpig

import "fmt"

// rotation derives the captain and tee-off order for each hole. It owns the
// captaincy state; no other component mutates it.
type rotation struct {
	players   []*Participant // base tee order, fixed at round start
	finalHole int
	hole      int // last hole advanced to, 0 before the first hole
}

func newRotation(players []*Participant, opts Options) *rotation {
	return &rotation{
		players:   players,
		finalHole: opts.Holes,
	}
}

// advance moves the rotation to the next hole and returns its captain and
// tee-off order. In the normal phase the captaincy rotates through the base
// tee order. On the special final holes the player with the worst running
// total takes the captaincy instead, ties broken by tee-order index.
//
// Advancing past the final hole is a caller bug and panics.
func (r *rotation) advance(hole Hole, totals map[int64]Amount) (*Participant, []*Participant) {
	if r.hole >= r.finalHole {
		panic(fmt.Sprintf("rotation advanced past the final hole %d", r.finalHole))
	}

	r.hole++
	if hole.Number != r.hole {
		panic(fmt.Sprintf("rotation expected hole %d, got %d", r.hole, hole.Number))
	}

	var captainIndex int
	if hole.SpecialPhase {
		captainIndex = r.trailingPlayerIndex(totals)
	} else {
		captainIndex = (r.hole - 1) % len(r.players)
	}

	order := make([]*Participant, 0, len(r.players))
	for i := 0; i < len(r.players); i++ {
		order = append(order, r.players[(captainIndex+i)%len(r.players)])
	}

	return order[0], order
}

// trailingPlayerIndex returns the base-order index of the player with the
// worst running total
func (r *rotation) trailingPlayerIndex(totals map[int64]Amount) int {
	worst := 0
	for i := 1; i < len(r.players); i++ {
		if totals[r.players[i].PlayerID].Cmp(totals[r.players[worst].PlayerID]) < 0 {
			worst = i
		}
	}

	return worst
}
