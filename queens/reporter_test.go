package queens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/baldhumanity/evolve-go/queens"
)

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := queens.NewLogReporter(zap.New(core))

	board := queens.Individual{1, 5, 8, 6, 3, 7, 2, 4}
	r.GenerationEnd(1, queens.GenerationStats{Min: 3, Mean: 8, Max: 15}, queens.Individual{2, 2, 4, 8, 1, 6, 3, 4})
	r.GenerationEnd(2, queens.GenerationStats{Min: 0, Mean: 7, Max: 14}, board)
	r.GenerationEnd(3, queens.GenerationStats{Min: 0, Mean: 6, Max: 12}, board)

	assert.Equal(t, 3, logs.FilterMessage("generation finished").Len())
	solutions := logs.FilterMessage("solution found").All()
	require.Len(t, solutions, 1, "a solution is announced once")
	assert.Equal(t, int64(2), solutions[0].ContextMap()["generation"])

	last := logs.FilterMessage("generation finished").All()[2]
	assert.Equal(t, int64(1), last.ContextMap()["stagnant_generations"])
}

func TestNewLogReporter_NilLogger(t *testing.T) {
	r := queens.NewLogReporter(nil)
	assert.NotPanics(t, func() {
		r.GenerationEnd(1, queens.GenerationStats{}, queens.Individual{1, 2, 3, 4, 5, 6, 7, 8})
	})
}

func TestPopulation_DebugLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	config := queens.DefaultConfig()
	config.GA.PopulationSize = 10

	p, err := queens.NewPopulation(config, newRand(50), queens.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.NoError(t, p.Run(2))

	assert.Equal(t, 2, logs.FilterMessage("reproduced population").Len())
	assert.Equal(t, 2, logs.FilterMessage("generation finished").Len())
}
