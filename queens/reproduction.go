package queens

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// maxResampleAttempts bounds every "draw until different" loop.
const maxResampleAttempts = 100

// Rand is the source of randomness used by the operators. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Perm(n int) []int
}

// CreateIndividual returns an individual with uniformly random genes in [1,BoardSize].
func CreateIndividual(rng Rand) Individual {
	ind := make(Individual, BoardSize)
	for i := range ind {
		ind[i] = rng.Intn(BoardSize) + 1
	}
	return ind
}

// CreatePopulation creates an initial population of independent random individuals.
func CreatePopulation(rng Rand, size int) ([]Individual, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: population size must be positive, got %d", ErrInvalidInput, size)
	}
	population := make([]Individual, size)
	for i := range population {
		population[i] = CreateIndividual(rng)
	}
	return population, nil
}

// ChooseParticipants draws k distinct members of the population uniformly at random.
func ChooseParticipants(rng Rand, population []Individual, k int) ([]Individual, error) {
	if k < 1 || k > len(population) {
		return nil, fmt.Errorf("%w: cannot sample %d participants from population of %d", ErrInvalidInput, k, len(population))
	}
	perm := rng.Perm(len(population))
	participants := make([]Individual, k)
	for i := 0; i < k; i++ {
		participants[i] = population[perm[i]]
	}
	return participants, nil
}

// Tournament returns the participant with the fewest conflicts. Ties go to the
// participant that appears first.
func Tournament(participants []Individual) (Individual, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: tournament needs at least one participant", ErrInvalidInput)
	}
	fitnesses, err := evaluateAll(participants)
	if err != nil {
		return nil, err
	}
	best := 0
	for i := 1; i < len(participants); i++ {
		if fitnesses[i] < fitnesses[best] {
			best = i
		}
	}
	return participants[best], nil
}

// Crossover performs single-point crossover at index. The first child takes the
// genes of parent1 before index and of parent2 from index on; the second child is
// the complement. Parents are not modified.
func Crossover(parent1, parent2 Individual, index int) (Individual, Individual, error) {
	if err := parent1.Validate(); err != nil {
		return nil, nil, fmt.Errorf("crossover parent1: %w", err)
	}
	if err := parent2.Validate(); err != nil {
		return nil, nil, fmt.Errorf("crossover parent2: %w", err)
	}
	if index < 0 || index > BoardSize {
		return nil, nil, fmt.Errorf("%w: crossover index %d out of [0,%d]", ErrInvalidInput, index, BoardSize)
	}

	child1 := make(Individual, 0, BoardSize)
	child1 = append(child1, parent1[:index]...)
	child1 = append(child1, parent2[index:]...)

	child2 := make(Individual, 0, BoardSize)
	child2 = append(child2, parent2[:index]...)
	child2 = append(child2, parent1[index:]...)
	return child1, child2, nil
}

// Mutate returns a copy of ind in which, with probability m, one random gene has
// been replaced by a different random row.
func Mutate(rng Rand, ind Individual, m float64) (Individual, error) {
	if !(m >= 0 && m <= 1) {
		return nil, fmt.Errorf("%w: mutation probability %v out of [0,1]", ErrInvalidInput, m)
	}
	if err := ind.Validate(); err != nil {
		return nil, err
	}

	mutated := ind.Clone()
	if rng.Float64() >= m {
		return mutated, nil
	}

	index := rng.Intn(BoardSize)
	for attempt := 0; attempt < maxResampleAttempts; attempt++ {
		value := rng.Intn(BoardSize) + 1
		if value != mutated[index] {
			mutated[index] = value
			return mutated, nil
		}
	}
	return nil, fmt.Errorf("%w: no replacement for gene %d after %d draws", ErrDegenerateState, index, maxResampleAttempts)
}

// Elitism returns the count fittest individuals in ascending order of conflicts.
// Individuals with equal fitness keep their population order.
func Elitism(population []Individual, count int) ([]Individual, error) {
	if count < 0 || count > len(population) {
		return nil, fmt.Errorf("%w: cannot keep %d elites from population of %d", ErrInvalidInput, count, len(population))
	}
	fitnesses, err := evaluateAll(population)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(population))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fitnesses[order[a]] < fitnesses[order[b]]
	})

	elites := make([]Individual, count)
	for i := 0; i < count; i++ {
		elites[i] = population[order[i]]
	}
	return elites, nil
}

// Reproduction builds successive generations from the GA settings.
type Reproduction struct {
	Config *GAConfig
	rng    Rand
	logger *zap.Logger
}

// NewReproduction creates a reproduction manager.
func NewReproduction(config *GAConfig, rng Rand, logger *zap.Logger) *Reproduction {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reproduction{Config: config, rng: rng, logger: logger}
}

// CreateNewPopulation creates the initial population.
func (r *Reproduction) CreateNewPopulation() ([]Individual, error) {
	return CreatePopulation(r.rng, r.Config.PopulationSize)
}

// Reproduce creates the next generation: elites first, then mutated offspring of
// tournament-selected parents until the population is full.
func (r *Reproduction) Reproduce(population []Individual) ([]Individual, error) {
	popSize := r.Config.PopulationSize

	elites, err := Elitism(population, r.Config.ElitistIndividuals)
	if err != nil {
		return nil, fmt.Errorf("elitism failed: %w", err)
	}
	newPopulation := make([]Individual, 0, popSize)
	newPopulation = append(newPopulation, elites...)

	crossovers := 0
	for len(newPopulation) < popSize {
		parent1, parent2, err := r.selectParents(population)
		if err != nil {
			return nil, err
		}

		var child1, child2 Individual
		if r.rng.Float64() < r.Config.CrossoverProbability && !parent1.Equal(parent2) {
			child1, child2, err = Crossover(parent1, parent2, CrossoverPoint)
			if err != nil {
				return nil, fmt.Errorf("crossover failed: %w", err)
			}
			crossovers++
		} else {
			child1, child2 = parent1, parent2
		}

		// Mutate always hands back a fresh slice, so elites shared with
		// the parents are never touched.
		if child1, err = Mutate(r.rng, child1, r.Config.MutationProbability); err != nil {
			return nil, fmt.Errorf("mutation failed: %w", err)
		}
		if child2, err = Mutate(r.rng, child2, r.Config.MutationProbability); err != nil {
			return nil, fmt.Errorf("mutation failed: %w", err)
		}

		newPopulation = append(newPopulation, child1)
		if len(newPopulation) < popSize {
			newPopulation = append(newPopulation, child2)
		}
	}

	r.logger.Debug("reproduced population",
		zap.Int("elites", len(elites)),
		zap.Int("offspring", len(newPopulation)-len(elites)),
		zap.Int("crossovers", crossovers))
	return newPopulation, nil
}

// selectParents runs two tournaments and redraws the second parent until it
// differs from the first.
func (r *Reproduction) selectParents(population []Individual) (Individual, Individual, error) {
	k := r.Config.TournamentSize
	participants, err := ChooseParticipants(r.rng, population, k)
	if err != nil {
		return nil, nil, fmt.Errorf("parent selection failed: %w", err)
	}
	parent1, err := Tournament(participants)
	if err != nil {
		return nil, nil, fmt.Errorf("parent selection failed: %w", err)
	}

	var parent2 Individual
	for attempt := 0; attempt < r.Config.MaxResampleAttempts; attempt++ {
		participants, err = ChooseParticipants(r.rng, population, k)
		if err != nil {
			return nil, nil, fmt.Errorf("parent selection failed: %w", err)
		}
		parent2, err = Tournament(participants)
		if err != nil {
			return nil, nil, fmt.Errorf("parent selection failed: %w", err)
		}
		if !parent2.Equal(parent1) {
			return parent1, parent2, nil
		}
	}

	if allIdentical(population) {
		return nil, nil, fmt.Errorf("%w: all %d individuals are identical", ErrDegenerateState, len(population))
	}
	r.logger.Debug("could not draw a distinct second parent",
		zap.Int("attempts", r.Config.MaxResampleAttempts),
		zap.Ints("parent", parent1))
	return parent1, parent2, nil
}

func allIdentical(population []Individual) bool {
	for _, ind := range population[1:] {
		if !ind.Equal(population[0]) {
			return false
		}
	}
	return true
}
