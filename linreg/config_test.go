package linreg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	config, err := parseConfig([]byte(`
[Regression]
theta_0 = -1.5
theta_1 = 0.25
alpha = 0.001
num_iterations = 250

[Logging]
level = warn
`))
	require.NoError(t, err)
	assert.Equal(t, RegressionConfig{Theta0: -1.5, Theta1: 0.25, Alpha: 0.001, NumIterations: 250}, config.Regression)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)
}

func TestParseConfig_Defaults(t *testing.T) {
	config, err := parseConfig([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Regression, config.Regression)
}

func TestConfig_Validate(t *testing.T) {
	c := DefaultConfig()
	c.Regression.Alpha = 0
	assert.ErrorIs(t, c.Validate(), ErrInvalidInput)

	c = DefaultConfig()
	c.Regression.NumIterations = -3
	assert.ErrorIs(t, c.Validate(), ErrInvalidInput)

	_, err := LoadConfig("/nonexistent/regression-config")
	assert.Error(t, err)
}
