package queens

import (
	"go.uber.org/zap"
)

// Reporter receives the outcome of each generation. Reporters observe the run;
// the generational loop never depends on them.
type Reporter interface {
	GenerationEnd(generation int, stats GenerationStats, best Individual)
}

// LogReporter writes one log line per generation and announces solutions.
type LogReporter struct {
	logger     *zap.Logger
	stagnation *Stagnation
}

// NewLogReporter creates a reporter that logs to logger.
func NewLogReporter(logger *zap.Logger) *LogReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogReporter{logger: logger, stagnation: NewStagnation()}
}

// GenerationEnd implements Reporter.
func (r *LogReporter) GenerationEnd(generation int, stats GenerationStats, best Individual) {
	improved := r.stagnation.Update(generation, stats)
	r.logger.Info("generation finished",
		zap.Int("generation", generation),
		zap.Float64("min", stats.Min),
		zap.Float64("mean", stats.Mean),
		zap.Float64("max", stats.Max),
		zap.Ints("best", best),
		zap.Int("stagnant_generations", r.stagnation.Generations(generation)))
	if improved && stats.Min == 0 {
		r.logger.Info("solution found", zap.Int("generation", generation), zap.Ints("board", best))
	}
}
