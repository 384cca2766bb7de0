package queens

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/baldhumanity/evolve-go/logging"
)

// Config stores the configuration for an 8-queens run.
type Config struct {
	GA      GAConfig
	Logging logging.Config
}

// GAConfig holds the parameters of the genetic algorithm.
type GAConfig struct {
	Generations          int     `ini:"generations"`
	PopulationSize       int     `ini:"population_size"`
	TournamentSize       int     `ini:"tournament_size"` // number_of_participants
	MutationProbability  float64 `ini:"mutation_probability"`
	ElitistIndividuals   int     `ini:"elitist_individuals"`
	CrossoverProbability float64 `ini:"crossover_probability"` // 0.5 unless overridden
	MaxResampleAttempts  int     `ini:"max_resample_attempts"`
	Seed                 int64   `ini:"seed"` // 0 seeds from the clock
}

// DefaultConfig returns settings that usually find a solution within a few
// hundred generations.
func DefaultConfig() *Config {
	return &Config{
		GA: GAConfig{
			Generations:          300,
			PopulationSize:       100,
			TournamentSize:       3,
			MutationProbability:  0.3,
			ElitistIndividuals:   2,
			CrossoverProbability: 0.5,
			MaxResampleAttempts:  maxResampleAttempts,
		},
		Logging: logging.DefaultConfig(),
	}
}

// LoadConfig loads configuration parameters from an INI file. Keys missing from
// the file keep their DefaultConfig values.
func LoadConfig(filePath string) (*Config, error) {
	config, err := parseConfig(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return config, nil
}

// parseConfig accepts anything ini.LoadSources does: a path, []byte or io.Reader.
func parseConfig(source interface{}) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, source)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := cfg.Section("GA").MapTo(&config.GA); err != nil {
		return nil, fmt.Errorf("failed to map [GA] section: %w", err)
	}
	if err := cfg.Section("Logging").MapTo(&config.Logging); err != nil {
		return nil, fmt.Errorf("failed to map [Logging] section: %w", err)
	}
	config.Logging.Clean()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the generational loop cannot run with.
func (c *Config) Validate() error {
	if err := c.GA.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Validate rejects settings the generational loop cannot run with.
func (c *GAConfig) Validate() error {
	if c.Generations < 0 {
		return fmt.Errorf("config error: generations cannot be negative: %w", ErrInvalidInput)
	}
	if c.PopulationSize <= 0 {
		return fmt.Errorf("config error: population_size must be positive: %w", ErrInvalidInput)
	}
	if c.TournamentSize <= 0 || c.TournamentSize > c.PopulationSize {
		return fmt.Errorf("config error: tournament_size must be between 1 and population_size (%d): %w", c.PopulationSize, ErrInvalidInput)
	}
	if c.ElitistIndividuals < 0 || c.ElitistIndividuals > c.PopulationSize {
		return fmt.Errorf("config error: elitist_individuals must be between 0 and population_size (%d): %w", c.PopulationSize, ErrInvalidInput)
	}
	if !(c.MutationProbability >= 0 && c.MutationProbability <= 1) {
		return fmt.Errorf("config error: mutation_probability must be between 0 and 1: %w", ErrInvalidInput)
	}
	if !(c.CrossoverProbability >= 0 && c.CrossoverProbability <= 1) {
		return fmt.Errorf("config error: crossover_probability must be between 0 and 1: %w", ErrInvalidInput)
	}
	if c.MaxResampleAttempts <= 0 {
		return fmt.Errorf("config error: max_resample_attempts must be positive: %w", ErrInvalidInput)
	}
	return nil
}
