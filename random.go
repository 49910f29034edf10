package sapling

import "math/rand/v2"

// RandomSource supplies uniform floats in [0, 1). Every growth decision draws
// from one, so tests can substitute a fixed sequence.
type RandomSource interface {
	Float64() float64
}

// NewRandom returns a PCG-backed source. A zero seed is replaced with a
// random one so that unseeded trees differ between runs.
func NewRandom(seed uint64) RandomSource {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SequenceSource replays a fixed list of values, wrapping around at the end.
// An empty sequence always yields 0.
type SequenceSource struct {
	Values []float64
	next   int
}

// NewSequenceSource returns a source cycling through values.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{Values: values}
}

// Float64 returns the next value in the sequence.
func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Drawn reports how many values have been consumed.
func (s *SequenceSource) Drawn() int {
	return s.next
}
