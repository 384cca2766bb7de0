// Package queens solves the 8-queens puzzle with a genetic algorithm.
//
// A board is encoded column by column: the gene at index i is the row (1-8) of
// the queen in column i. Fitness is the number of attacking queen pairs, so
// lower is better and zero is a solution. Each generation keeps the elites,
// then fills the population with mutated offspring of tournament winners.
package queens

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// BoardSize is the number of columns (and rows) on the board.
	BoardSize = 8
	// MaxConflicts is the fitness of the worst board: every pair of queens conflicts.
	MaxConflicts = BoardSize * (BoardSize - 1) / 2
	// CrossoverPoint is the fixed cut index used by the generational loop.
	CrossoverPoint = BoardSize / 2
)

var (
	// ErrInvalidInput is returned for malformed individuals, out-of-range
	// probabilities, and sample sizes larger than the population.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDegenerateState is returned when a resampling loop cannot make progress,
	// e.g. every individual in the population is identical.
	ErrDegenerateState = errors.New("degenerate state")
)

// Individual encodes one board: index is the column, value is the row (1-based)
// of the queen standing in that column.
type Individual []int

// Validate checks the length and gene range of the individual.
func (ind Individual) Validate() error {
	if len(ind) != BoardSize {
		return fmt.Errorf("%w: individual has %d genes, want %d", ErrInvalidInput, len(ind), BoardSize)
	}
	for col, row := range ind {
		if row < 1 || row > BoardSize {
			return fmt.Errorf("%w: gene %d is %d, must be in [1,%d]", ErrInvalidInput, col, row, BoardSize)
		}
	}
	return nil
}

// Equal reports whether both individuals hold the same genes.
func (ind Individual) Equal(other Individual) bool {
	return slices.Equal(ind, other)
}

// Clone returns an independent copy.
func (ind Individual) Clone() Individual {
	return slices.Clone(ind)
}

// Evaluate returns the number of unordered queen pairs that attack each other,
// either on the same row or on a diagonal. Zero means the board is a solution.
func Evaluate(ind Individual) (int, error) {
	if err := ind.Validate(); err != nil {
		return 0, err
	}

	attacks := 0
	for i := 0; i < BoardSize; i++ {
		queen := ind[i]
		for j := 0; j < BoardSize; j++ {
			if i == j {
				continue
			}
			if ind[j] == queen || ind[j] == queen-(i-j) || ind[j] == queen+(i-j) {
				attacks++
			}
		}
	}
	// Every attacking pair was seen from both ends.
	return attacks / 2, nil
}

// evaluateAll scores every individual, in order.
func evaluateAll(individuals []Individual) ([]int, error) {
	fitnesses := make([]int, len(individuals))
	for i, ind := range individuals {
		f, err := Evaluate(ind)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate individual %d: %w", i, err)
		}
		fitnesses[i] = f
	}
	return fitnesses, nil
}
