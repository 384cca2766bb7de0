package queens

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[GA]
generations = 50
population_size = 40
tournament_size = 4
mutation_probability = 0.25
elitist_individuals = 3
seed = 42

[Logging]
level = debug ; verbose
format = json
`

func TestParseConfig(t *testing.T) {
	config, err := parseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 50, config.GA.Generations)
	assert.Equal(t, 40, config.GA.PopulationSize)
	assert.Equal(t, 4, config.GA.TournamentSize)
	assert.Equal(t, 0.25, config.GA.MutationProbability)
	assert.Equal(t, 3, config.GA.ElitistIndividuals)
	assert.Equal(t, int64(42), config.GA.Seed)
	// not in the file: defaults survive
	assert.Equal(t, 0.5, config.GA.CrossoverProbability)
	assert.Equal(t, maxResampleAttempts, config.GA.MaxResampleAttempts)

	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queens-config")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40, config.GA.PopulationSize)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestGAConfig_Validate(t *testing.T) {
	cases := map[string]func(c *GAConfig){
		"negative generations":   func(c *GAConfig) { c.Generations = -1 },
		"empty population":       func(c *GAConfig) { c.PopulationSize = 0 },
		"zero tournament":        func(c *GAConfig) { c.TournamentSize = 0 },
		"tournament too large":   func(c *GAConfig) { c.TournamentSize = c.PopulationSize + 1 },
		"negative elitism":       func(c *GAConfig) { c.ElitistIndividuals = -1 },
		"too many elites":        func(c *GAConfig) { c.ElitistIndividuals = c.PopulationSize + 1 },
		"mutation below 0":       func(c *GAConfig) { c.MutationProbability = -0.01 },
		"mutation above 1":       func(c *GAConfig) { c.MutationProbability = 1.01 },
		"crossover above 1":      func(c *GAConfig) { c.CrossoverProbability = 2 },
		"mutation NaN":           func(c *GAConfig) { c.MutationProbability = math.NaN() },
		"crossover NaN":          func(c *GAConfig) { c.CrossoverProbability = math.NaN() },
		"no resampling attempts": func(c *GAConfig) { c.MaxResampleAttempts = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig().GA
			mutate(&c)
			err := c.Validate()
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorContains(t, err, "config error")
		})
	}

	c := DefaultConfig().GA
	assert.NoError(t, c.Validate())
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := parseConfig([]byte("[GA]\npopulation_size = 5\ntournament_size = 6\n"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = parseConfig([]byte("[Logging]\nformat = yaml\n"))
	assert.ErrorContains(t, err, "logging format")
}
