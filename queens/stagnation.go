package queens

import "math"

// Stagnation tracks when the best fitness of the run last improved.
type Stagnation struct {
	BestFitness  float64 // lowest per-generation minimum seen so far
	LastImproved int     // generation of the last improvement
}

// NewStagnation creates a tracker that has not seen any generation yet.
func NewStagnation() *Stagnation {
	return &Stagnation{BestFitness: math.Inf(1)}
}

// Update records the statistics of a generation and reports whether the best
// fitness improved.
func (s *Stagnation) Update(generation int, stats GenerationStats) bool {
	if stats.Min < s.BestFitness {
		s.BestFitness = stats.Min
		s.LastImproved = generation
		return true
	}
	return false
}

// Generations returns how many generations have passed without improvement.
func (s *Stagnation) Generations(current int) int {
	return current - s.LastImproved
}
