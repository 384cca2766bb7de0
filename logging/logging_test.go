package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"INFO":  zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseLevel("verbose")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	c := DefaultConfig()
	c.Format = "xml"
	assert.ErrorContains(t, c.Validate(), "logging format")
}

func TestNew(t *testing.T) {
	c := DefaultConfig()
	c.Level = "debug"
	logger, err := New(c)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	c.Level = "loud"
	_, err = New(c)
	assert.Error(t, err)
}

func TestClean(t *testing.T) {
	c := Config{Level: " debug # noisy", Format: "json ; machine", Output: "stdout"}
	c.Clean()
	assert.Equal(t, Config{Level: "debug", Format: "json", Output: "stdout"}, c)
}
