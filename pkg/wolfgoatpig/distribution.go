package wolfgoatpig

// CarryOver tracks quarters left unresolved by tied holes
type CarryOver struct {
	Units    int `json:"units"`
	FromHole int `json:"fromHole"`
	Count    int `json:"count"` // consecutive carried ties
}

// PointsDelta maps each player to their signed quarters for one hole
type PointsDelta map[int64]Amount

// Sum returns the exact sum of all deltas. It must be zero for any delta the
// ledger will accept.
func (d PointsDelta) Sum() Amount {
	var sum Amount
	for _, amount := range d {
		sum = sum.Add(amount)
	}

	return sum
}

// distribution is the fully resolved payout for a hole
type distribution struct {
	delta          PointsDelta
	carryOut       CarryOver
	forfeitedUnits int
}

// distribute converts the resolved outcome and locked wager into signed
// per-player deltas. Any incoming carry-over is consumed by a decisive
// outcome or grown by a tie, up to the configured carry limit.
//
// The zero-sum post-condition is checked before returning; a violation is a
// rule-composition bug and aborts the hole.
func distribute(outcome *Outcome, wager *WagerState, assignment *TeamAssignment, carryIn CarryOver, hole Hole, opts Options) (*distribution, error) {
	players := append(assignment.captainTeam(), assignment.Opponents...)

	if outcome.Result == Tie {
		return distributeTie(players, wager, carryIn, hole, opts), nil
	}

	units := wager.Units + carryIn.Units

	winners, losers := assignment.captainTeam(), assignment.Opponents
	if outcome.Result == OpponentsWin {
		winners, losers = losers, winners
	}

	// The total exchanged is three times the wager: a lone captain collects
	// one wager from each of three opponents, and a partnership win pays each
	// winner one and a half wagers. A Duncan captain risks only two on a
	// loss, the 3-for-2 shape.
	total := Quarters(units).MulInt(3)
	if assignment.Type == TeamSolo && assignment.Duncan && outcome.Result == OpponentsWin {
		total = Quarters(units).MulInt(2)
	}

	delta := make(PointsDelta, len(players))
	addShares(delta, winners, total, teamWeights(winners, wager, outcome, false))
	addShares(delta, losers, total.Neg(), teamWeights(losers, wager, outcome, true))

	if sum := delta.Sum(); !sum.IsZero() {
		return nil, &InconsistencyError{Hole: hole.Number, Sum: sum}
	}

	return &distribution{
		delta: delta,
	}, nil
}

// distributeTie produces an all-zero delta and rolls the wager into the
// carry-over. Once the consecutive-carry counter reaches the limit the
// accumulated pot is forfeited instead of carried, and the forfeiture is
// reported rather than silently dropped.
func distributeTie(players []int64, wager *WagerState, carryIn CarryOver, hole Hole, opts Options) *distribution {
	delta := make(PointsDelta, len(players))
	for _, id := range players {
		delta[id] = Amount{}
	}

	count := carryIn.Count + 1
	if count >= opts.CarryLimit {
		return &distribution{
			delta:          delta,
			forfeitedUnits: carryIn.Units + wager.Units,
		}
	}

	fromHole := carryIn.FromHole
	if carryIn.Units == 0 {
		fromHole = hole.Number
	}

	return &distribution{
		delta: delta,
		carryOut: CarryOver{
			Units:    carryIn.Units + wager.Units,
			FromHole: fromHole,
			Count:    count,
		},
	}
}

// teamWeights returns the relative share each team member takes of the team
// total. A personal opt-in stake outweighs everything else; otherwise a
// losing team containing the hole's outlier splits unevenly, the outlier
// absorbing a double share; otherwise the split is even.
func teamWeights(team []int64, wager *WagerState, outcome *Outcome, losing bool) []int64 {
	weights := make([]int64, len(team))

	if hasStake(team, wager) {
		for i, id := range team {
			if stake, ok := wager.Stakes[id]; ok {
				weights[i] = int64(stake)
			} else {
				weights[i] = int64(wager.Units)
			}
		}

		return weights
	}

	for i, id := range team {
		weights[i] = 1
		if losing && len(team) > 1 && id == outcome.Outlier {
			weights[i] = 2
		}
	}

	return weights
}

func hasStake(team []int64, wager *WagerState) bool {
	for _, id := range team {
		if _, ok := wager.Stakes[id]; ok {
			return true
		}
	}

	return false
}

// addShares splits total among the team proportionally to weights. The split
// is exact: the shares always sum to total.
func addShares(delta PointsDelta, team []int64, total Amount, weights []int64) {
	var weightSum int64
	for _, w := range weights {
		weightSum += w
	}

	for i, id := range team {
		delta[id] = total.Mul(Ratio(weights[i], weightSum))
	}
}
