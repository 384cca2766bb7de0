package queens

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarizes the fitness of one generation.
type GenerationStats struct {
	Min  float64
	Mean float64
	Max  float64
}

// ComputeStats returns the minimum, mean and maximum fitness of the population.
func ComputeStats(population []Individual) (GenerationStats, error) {
	if len(population) == 0 {
		return GenerationStats{}, fmt.Errorf("%w: cannot compute statistics of an empty population", ErrInvalidInput)
	}
	fitnesses, err := evaluateAll(population)
	if err != nil {
		return GenerationStats{}, err
	}
	values := make([]float64, len(fitnesses))
	for i, f := range fitnesses {
		values[i] = float64(f)
	}
	return GenerationStats{
		Min:  floats.Min(values),
		Mean: stat.Mean(values, nil),
		Max:  floats.Max(values),
	}, nil
}

// Best returns the individual with the fewest conflicts, first one on ties.
func Best(population []Individual) (Individual, int, error) {
	best, err := Tournament(population)
	if err != nil {
		return nil, 0, err
	}
	fitness, err := Evaluate(best)
	if err != nil {
		return nil, 0, err
	}
	return best, fitness, nil
}
