package linreg

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/baldhumanity/evolve-go/logging"
)

// Config stores the configuration for a regression fit.
type Config struct {
	Regression RegressionConfig
	Logging    logging.Config
}

// RegressionConfig holds the gradient-descent parameters.
type RegressionConfig struct {
	Theta0        float64 `ini:"theta_0"`
	Theta1        float64 `ini:"theta_1"`
	Alpha         float64 `ini:"alpha"` // learning rate
	NumIterations int     `ini:"num_iterations"`
}

// DefaultConfig starts from the origin with a conservative learning rate.
func DefaultConfig() *Config {
	return &Config{
		Regression: RegressionConfig{
			Alpha:         0.0001,
			NumIterations: 1000,
		},
		Logging: logging.DefaultConfig(),
	}
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	config, err := parseConfig(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return config, nil
}

func parseConfig(source interface{}) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, source)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := cfg.Section("Regression").MapTo(&config.Regression); err != nil {
		return nil, fmt.Errorf("failed to map [Regression] section: %w", err)
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

// Validate checks the learning rate and iteration count.
func (c *Config) Validate() error {
	if c.Regression.Alpha <= 0 {
		return fmt.Errorf("config error: alpha must be positive: %w", ErrInvalidInput)
	}
	if c.Regression.NumIterations < 0 {
		return fmt.Errorf("config error: num_iterations cannot be negative: %w", ErrInvalidInput)
	}
	return c.Logging.Validate()
}
