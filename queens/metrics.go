package queens

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsReporter publishes per-generation statistics as Prometheus metrics.
type MetricsReporter struct {
	Generation     prometheus.Gauge
	FitnessMin     prometheus.Gauge
	FitnessMean    prometheus.Gauge
	FitnessMax     prometheus.Gauge
	SolutionsTotal prometheus.Counter
}

// NewMetricsReporter creates the metrics and registers them with reg.
func NewMetricsReporter(reg prometheus.Registerer) (*MetricsReporter, error) {
	m := &MetricsReporter{
		Generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "queens_generation",
			Help: "Index of the last completed generation",
		}),
		FitnessMin: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "queens_fitness_min",
			Help: "Fewest conflicts in the current population",
		}),
		FitnessMean: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "queens_fitness_mean",
			Help: "Mean conflicts in the current population",
		}),
		FitnessMax: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "queens_fitness_max",
			Help: "Most conflicts in the current population",
		}),
		SolutionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "queens_solutions_total",
			Help: "Generations whose population contained a conflict-free board",
		}),
	}
	for _, c := range []prometheus.Collector{m.Generation, m.FitnessMin, m.FitnessMean, m.FitnessMax, m.SolutionsTotal} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return m, nil
}

// GenerationEnd implements Reporter.
func (m *MetricsReporter) GenerationEnd(generation int, stats GenerationStats, _ Individual) {
	m.Generation.Set(float64(generation))
	m.FitnessMin.Set(stats.Min)
	m.FitnessMean.Set(stats.Mean)
	m.FitnessMax.Set(stats.Max)
	if stats.Min == 0 {
		m.SolutionsTotal.Inc()
	}
}
