package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/on-the-ground/partitions/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noConfigFile(t *testing.T) {
	t.Setenv(config.PathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestCommand_Flags(t *testing.T) {
	noConfigFile(t)

	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"partitions", "--to", "3", "--workers", "2"})
	require.NoError(t, err)
	assert.Equal(t, zeroToThree, out.String())
}

func TestCommand_EnvVars(t *testing.T) {
	noConfigFile(t)
	t.Setenv(config.EnvVar(config.DemoFrom), "4")
	t.Setenv(config.EnvVar(config.DemoTo), "4")

	var out bytes.Buffer
	require.NoError(t, newCommand(&out).Run(context.Background(), []string{"partitions"}))
	assert.Equal(t, `4 has 5 partitions
  4 = 1 + 1 + 1 + 1
  4 = 1 + 1 + 2
  4 = 1 + 3
  4 = 2 + 2
  4 = 4
`, out.String())
}

func TestCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partitions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demo:\n  from: 1\n  to: 1\n"), 0o600))
	t.Setenv(config.PathEnvVar, path)

	var out bytes.Buffer
	require.NoError(t, newCommand(&out).Run(context.Background(), []string{"partitions"}))
	assert.Equal(t, "1 has 1 partition\n  1 = 1\n", out.String())
}

func TestCommand_RejectsNegativeTotal(t *testing.T) {
	noConfigFile(t)

	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"partitions", "--from=-2"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Empty(t, out.String())
}

func TestCommand_RejectsUnknownLogLevel(t *testing.T) {
	noConfigFile(t)

	err := newCommand(&bytes.Buffer{}).Run(context.Background(), []string{"partitions", "--log-level", "loud"})
	assert.ErrorContains(t, err, "invalid log level")
}
