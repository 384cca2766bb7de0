package queens

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Population holds the state of an evolutionary run.
type Population struct {
	Config       *Config
	Individuals  []Individual
	Reproduction *Reproduction
	Stagnation   *Stagnation
	Generation   int
	Stats        []GenerationStats // one entry per completed generation

	rng       Rand
	logger    *zap.Logger
	reporters []Reporter
}

// Option customizes a Population.
type Option func(*Population)

// WithLogger sets the logger used for per-generation debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Population) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithReporters adds reporters notified at the end of every generation.
func WithReporters(reporters ...Reporter) Option {
	return func(p *Population) {
		p.reporters = append(p.reporters, reporters...)
	}
}

// NewPopulation validates the configuration and creates the initial generation.
func NewPopulation(config *Config, rng Rand, opts ...Option) (*Population, error) {
	p, err := newPopulation(config, rng, opts...)
	if err != nil {
		return nil, err
	}
	initial, err := p.Reproduction.CreateNewPopulation()
	if err != nil {
		return nil, fmt.Errorf("failed to create initial population: %w", err)
	}
	p.Individuals = initial
	return p, nil
}

// NewPopulationFrom starts a run from the given individuals instead of random ones.
func NewPopulationFrom(config *Config, rng Rand, individuals []Individual, opts ...Option) (*Population, error) {
	if len(individuals) != config.GA.PopulationSize {
		return nil, fmt.Errorf("%w: got %d individuals, population_size is %d", ErrInvalidInput, len(individuals), config.GA.PopulationSize)
	}
	for i, ind := range individuals {
		if err := ind.Validate(); err != nil {
			return nil, fmt.Errorf("individual %d: %w", i, err)
		}
	}
	p, err := newPopulation(config, rng, opts...)
	if err != nil {
		return nil, err
	}
	p.Individuals = individuals
	return p, nil
}

func newPopulation(config *Config, rng Rand, opts ...Option) (*Population, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidInput)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidInput)
	}
	if err := config.GA.Validate(); err != nil {
		return nil, err
	}

	p := &Population{
		Config:     config,
		Stagnation: NewStagnation(),
		Stats:      make([]GenerationStats, 0, config.GA.Generations),
		rng:        rng,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.Reproduction = NewReproduction(&config.GA, rng, p.logger)
	return p, nil
}

// RunGeneration replaces the population with the next generation and records
// its statistics.
func (p *Population) RunGeneration() error {
	start := time.Now()
	next := p.Generation + 1

	newPopulation, err := p.Reproduction.Reproduce(p.Individuals)
	if err != nil {
		return fmt.Errorf("reproduction failed in generation %d: %w", next, err)
	}

	stats, err := ComputeStats(newPopulation)
	if err != nil {
		return fmt.Errorf("statistics failed in generation %d: %w", next, err)
	}
	best, _, err := Best(newPopulation)
	if err != nil {
		return fmt.Errorf("statistics failed in generation %d: %w", next, err)
	}

	p.Individuals = newPopulation
	p.Generation = next
	p.Stats = append(p.Stats, stats)
	if p.Stagnation.Update(next, stats) {
		p.logger.Debug("best fitness improved", zap.Int("generation", next), zap.Float64("fitness", stats.Min))
	}

	for _, r := range p.reporters {
		r.GenerationEnd(next, stats, best)
	}

	p.logger.Debug("generation finished",
		zap.Int("generation", next),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// Run executes the given number of generations. A failed generation stops the
// run and leaves the population at the last completed generation.
func (p *Population) Run(generations int) error {
	if generations < 0 {
		return fmt.Errorf("%w: generations cannot be negative", ErrInvalidInput)
	}
	for i := 0; i < generations; i++ {
		if err := p.RunGeneration(); err != nil {
			return err
		}
	}
	return nil
}

// Best returns the fittest individual of the current population and its fitness.
func (p *Population) Best() (Individual, int, error) {
	return Best(p.Individuals)
}

// RunEvolution evolves a random population for the given number of generations
// and returns the final population with the statistics of every generation.
func RunEvolution(rng Rand, generations, populationSize, tournamentSize int, mutationProbability float64, elitistCount int) ([]Individual, []GenerationStats, error) {
	config := DefaultConfig()
	config.GA.Generations = generations
	config.GA.PopulationSize = populationSize
	config.GA.TournamentSize = tournamentSize
	config.GA.MutationProbability = mutationProbability
	config.GA.ElitistIndividuals = elitistCount

	p, err := NewPopulation(config, rng)
	if err != nil {
		return nil, nil, err
	}
	if err := p.Run(generations); err != nil {
		return nil, nil, err
	}
	return p.Individuals, p.Stats, nil
}
