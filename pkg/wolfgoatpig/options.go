package wolfgoatpig

// roundPlayers is the number of players in a round of Wolf Goat Pig
const roundPlayers = 4

// Options are options for creating a new Wolf Goat Pig round
type Options struct {
	BaseWager  int // quarters wagered per hole. Default: 1
	Holes      int // number of holes. Default: 18
	CarryLimit int // max consecutive carried ties before the pot is forfeited. Default: 3
	OutlierGap int // stroke gap beyond every other player that triggers the uneven split. Default: 3

	// DoubleWindowStart and DoubleWindowEnd bound the double-points holes, inclusive
	DoubleWindowStart int // Default: 13
	DoubleWindowEnd   int // Default: 16

	// SpecialPhaseStart is the first hole where the trailing player takes the
	// captaincy and may set the stakes
	SpecialPhaseStart int // Default: 17

	// Handicaps maps a player to their handicap. Strokes submitted to the
	// round are expected to already be adjusted; the handicap is carried for
	// display only.
	Handicaps map[int64]int
}

// DefaultOptions returns the default options for a Wolf Goat Pig round
func DefaultOptions() Options {
	return Options{
		BaseWager:         1,
		Holes:             18,
		CarryLimit:        3,
		OutlierGap:        3,
		DoubleWindowStart: 13,
		DoubleWindowEnd:   16,
		SpecialPhaseStart: 17,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.BaseWager <= 0 {
		o.BaseWager = def.BaseWager
	}
	if o.Holes <= 0 {
		o.Holes = def.Holes
	}
	if o.CarryLimit <= 0 {
		o.CarryLimit = def.CarryLimit
	}
	if o.OutlierGap <= 0 {
		o.OutlierGap = def.OutlierGap
	}
	if o.DoubleWindowStart <= 0 || o.DoubleWindowEnd < o.DoubleWindowStart {
		o.DoubleWindowStart = def.DoubleWindowStart
		o.DoubleWindowEnd = def.DoubleWindowEnd
	}
	if o.SpecialPhaseStart <= 0 || o.SpecialPhaseStart > o.Holes {
		o.SpecialPhaseStart = def.SpecialPhaseStart
	}

	return o
}
