package wolfgoatpig

import "fmt"

// OutcomeResult is the win/loss/tie determination for a hole
type OutcomeResult int

const (
	// CaptainWins means the captain's side had the lower best ball
	CaptainWins OutcomeResult = iota
	// OpponentsWin means the opposing side had the lower best ball
	OpponentsWin
	// Tie means the best balls were equal and the wager carries
	Tie
)

func (r OutcomeResult) String() string {
	switch r {
	case CaptainWins:
		return "captainWins"
	case OpponentsWin:
		return "opponentsWin"
	case Tie:
		return "tie"
	default:
		panic(fmt.Sprintf("unknown outcome result: %d", int(r)))
	}
}

// ScoreSet is the raw per-player strokes for a hole. Strokes arrive already
// adjusted for handicap.
type ScoreSet struct {
	Strokes map[int64]int
}

// Outcome is the resolved result of a hole. It is a pure function of the
// score set and team assignment; resolving the same inputs always yields the
// same outcome.
type Outcome struct {
	Result        OutcomeResult
	CaptainBest   int
	OpponentsBest int

	// Outlier is the player whose stroke count exceeded every other player's
	// by at least the configured gap, or 0 if none. It marks the hole for the
	// uneven-distribution split.
	Outlier int64
}

// resolveScores reduces each team to its best ball and compares them
func resolveScores(scores ScoreSet, assignment *TeamAssignment, opts Options) (*Outcome, error) {
	if assignment == nil || assignment.Type == TeamDeferred {
		return nil, ErrDeclarationRequired
	}

	players := append(assignment.captainTeam(), assignment.Opponents...)
	for _, id := range players {
		if _, ok := scores.Strokes[id]; !ok {
			return nil, ErrMissingStrokes
		}
	}

	captainBest := bestBall(scores, assignment.captainTeam())
	opponentsBest := bestBall(scores, assignment.Opponents)

	result := Tie
	switch {
	case captainBest < opponentsBest:
		result = CaptainWins
	case captainBest > opponentsBest:
		result = OpponentsWin
	}

	return &Outcome{
		Result:        result,
		CaptainBest:   captainBest,
		OpponentsBest: opponentsBest,
		Outlier:       findOutlier(scores, players, opts.OutlierGap),
	}, nil
}

func bestBall(scores ScoreSet, team []int64) int {
	best := scores.Strokes[team[0]]
	for _, id := range team[1:] {
		if s := scores.Strokes[id]; s < best {
			best = s
		}
	}

	return best
}

// findOutlier returns the player whose strokes exceed every other player's by
// at least gap, or 0 if there is none. At most one player can qualify.
func findOutlier(scores ScoreSet, players []int64, gap int) int64 {
	for _, id := range players {
		worst := true
		for _, other := range players {
			if other == id {
				continue
			}

			if scores.Strokes[id]-scores.Strokes[other] < gap {
				worst = false
				break
			}
		}

		if worst {
			return id
		}
	}

	return 0
}
