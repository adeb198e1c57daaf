package config_test

import (
	"testing"

	"github.com/on-the-ground/partitions/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := config.Config{From: -2, To: -5, Workers: 0, BufferSize: -1}

	err := cfg.Validate()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 5)
	assert.ErrorContains(t, errs[0], "demo.from must not be negative, got -2")
	assert.ErrorContains(t, errs[1], "demo.to must not be below demo.from (-2), got -5")
	assert.ErrorContains(t, errs[2], "demo.workers must be positive")
	assert.ErrorContains(t, errs[3], "demo.buffer_size must be positive")
	assert.ErrorContains(t, errs[4], "log.level must not be empty")
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "PARTITIONS_DEMO_BUFFER_SIZE", config.EnvVar(config.DemoBufferSize))
	assert.Equal(t, "PARTITIONS_LOG_LEVEL", config.EnvVar(config.LogLevel))
}

func TestPath(t *testing.T) {
	t.Setenv(config.PathEnvVar, "")
	assert.Equal(t, "partitions.yaml", config.Path())

	t.Setenv(config.PathEnvVar, "/etc/partitions.yaml")
	assert.Equal(t, "/etc/partitions.yaml", config.Path())
}
