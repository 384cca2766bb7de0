package queens

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// PopulationSaveData holds the parts of a Population written to a checkpoint.
// The config is reloaded from its file and the random source is supplied anew.
type PopulationSaveData struct {
	Individuals  []Individual
	Generation   int
	Stats        []GenerationStats
	BestFitness  float64
	LastImproved int
}

// SaveCheckpoint writes the current state of the population to a gzip-compressed file.
func (p *Population) SaveCheckpoint(filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint file '%s': %w", filePath, err)
	}

	gzWriter := gzip.NewWriter(file)

	saveData := PopulationSaveData{
		Individuals:  p.Individuals,
		Generation:   p.Generation,
		Stats:        p.Stats,
		BestFitness:  p.Stagnation.BestFitness,
		LastImproved: p.Stagnation.LastImproved,
	}
	if err := gob.NewEncoder(gzWriter).Encode(saveData); err != nil {
		gzWriter.Close()
		file.Close()
		return fmt.Errorf("failed to encode population data: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush checkpoint '%s': %w", filePath, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close checkpoint file '%s': %w", filePath, err)
	}

	p.logger.Info("checkpoint saved", zap.String("path", filePath), zap.Int("generation", p.Generation))
	return nil
}

// LoadCheckpoint restores a Population from a checkpoint file. The configuration
// is reloaded from configPath.
func LoadCheckpoint(checkpointPath string, configPath string, rng Rand, opts ...Option) (*Population, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config '%s' for checkpoint: %w", configPath, err)
	}
	return loadCheckpoint(checkpointPath, config, rng, opts...)
}

func loadCheckpoint(checkpointPath string, config *Config, rng Rand, opts ...Option) (*Population, error) {
	file, err := os.Open(checkpointPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint file '%s': %w", checkpointPath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for checkpoint: %w", err)
	}
	defer gzReader.Close()

	saveData := PopulationSaveData{}
	if err := gob.NewDecoder(gzReader).Decode(&saveData); err != nil {
		return nil, fmt.Errorf("failed to decode population data from checkpoint: %w", err)
	}

	p, err := NewPopulationFrom(config, rng, saveData.Individuals, opts...)
	if err != nil {
		return nil, fmt.Errorf("checkpoint does not match config: %w", err)
	}
	p.Generation = saveData.Generation
	p.Stats = append(p.Stats, saveData.Stats...)
	p.Stagnation.BestFitness = saveData.BestFitness
	p.Stagnation.LastImproved = saveData.LastImproved

	p.logger.Info("checkpoint loaded", zap.String("path", checkpointPath), zap.Int("generation", p.Generation))
	return p, nil
}
