// Package config loads runtime settings from environment variables.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Config holds settings read from PROCSHIM_* environment variables.
type Config struct {
	// EnvWriteThrough forwards env view writes to the host environment.
	EnvWriteThrough bool `env:"PROCSHIM_ENV_WRITE_THROUGH" envDefault:"true"`
	// LogLevel is any level accepted by logrus.ParseLevel.
	LogLevel string `env:"PROCSHIM_LOG_LEVEL" envDefault:"warn"`
	// LogFormat is "text" or "json".
	LogFormat string `env:"PROCSHIM_LOG_FORMAT" envDefault:"text"`
}

// Parse reads Config from the process environment.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// ParseFrom reads Config from the given variables instead of the process environment.
func ParseFrom(vars map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Logger builds a logrus logger writing to out.
func (c *Config) Logger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)

	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q (use text or json)", c.LogFormat)
	}

	return log, nil
}
