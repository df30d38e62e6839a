package config

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := ParseFrom(map[string]string{})

	require.NoError(t, err)
	assert.True(t, cfg.EnvWriteThrough)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParse_FromEnvironment(t *testing.T) {
	t.Setenv("PROCSHIM_ENV_WRITE_THROUGH", "false")
	t.Setenv("PROCSHIM_LOG_LEVEL", "debug")
	t.Setenv("PROCSHIM_LOG_FORMAT", "json")

	cfg, err := Parse()

	require.NoError(t, err)
	assert.False(t, cfg.EnvWriteThrough)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParse_InvalidBool(t *testing.T) {
	_, err := ParseFrom(map[string]string{"PROCSHIM_ENV_WRITE_THROUGH": "maybe"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLogger_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: "info", LogFormat: "json"}

	log, err := cfg.Logger(&buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Debug("hidden")
	log.WithField("field", "env").Info("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"field":"env"`)
	assert.Contains(t, out, `"msg":"shown"`)
}

func TestLogger_InvalidLevel(t *testing.T) {
	cfg := &Config{LogLevel: "loud", LogFormat: "text"}

	_, err := cfg.Logger(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLogger_InvalidFormat(t *testing.T) {
	cfg := &Config{LogLevel: "warn", LogFormat: "xml"}

	_, err := cfg.Logger(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}
