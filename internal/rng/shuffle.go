package rng

// ShuffleInt64s performs an in-place Fisher-Yates shuffle using the generator
func ShuffleInt64s(g Generator, v []int64) {
	for i := len(v) - 1; i > 0; i-- {
		j := g.Intn(i + 1)
		v[i], v[j] = v[j], v[i]
	}
}
