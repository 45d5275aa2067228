package wolfgoatpig

// Hole is a single hole on the course
type Hole struct {
	Number       int  `json:"number"`
	Par          int  `json:"par"`
	DoublePoints bool `json:"doublePoints"`
	SpecialPhase bool `json:"specialPhase"`
}

// standardPars is a typical par-72 layout used when the caller does not care
// about the actual course
var standardPars = []int{4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 5, 4, 4, 3, 4, 5}

func holesForRound(opts Options) []Hole {
	holes := make([]Hole, opts.Holes)
	for i := range holes {
		number := i + 1
		holes[i] = Hole{
			Number:       number,
			Par:          standardPars[i%len(standardPars)],
			DoublePoints: number >= opts.DoubleWindowStart && number <= opts.DoubleWindowEnd,
			SpecialPhase: number >= opts.SpecialPhaseStart,
		}
	}

	return holes
}
