package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
)

// PathEnvVar names the variable holding the yaml config file path.
const PathEnvVar = envPrefix + "_CONFIG"

const defaultPath = "partitions.yaml"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of the partitions demo.
type Config struct {
	From       int
	To         int
	Workers    int
	BufferSize int
	LogLevel   string
}

func Default() Config {
	return Config{
		From:       0,
		To:         6,
		Workers:    4,
		BufferSize: 16,
		LogLevel:   "error",
	}
}

// Path returns the yaml config file flags fall back to. A missing file is not an error.
func Path() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	return defaultPath
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if c.From < 0 {
		err = multierr.Append(err, invalid(DemoFrom, "must not be negative, got %d", c.From))
	}
	if c.To < c.From {
		err = multierr.Append(err, invalid(DemoTo, "must not be below %s (%d), got %d", DemoFrom, c.From, c.To))
	}
	if c.Workers <= 0 {
		err = multierr.Append(err, invalid(DemoWorkers, "must be positive, got %d", c.Workers))
	}
	if c.BufferSize <= 0 {
		err = multierr.Append(err, invalid(DemoBufferSize, "must be positive, got %d", c.BufferSize))
	}
	if c.LogLevel == "" {
		err = multierr.Append(err, invalid(LogLevel, "must not be empty"))
	}
	return err
}

func invalid(key, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, key, fmt.Sprintf(format, args...))
}
