package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCLI(t *testing.T, args ...string) (*CLI, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)
	_, err = parser.Parse(args)
	return &cli, err
}

func TestParseArgs(t *testing.T) {
	cli, err := parseCLI(t, "3")
	require.NoError(t, err)
	assert.Equal(t, 3, cli.Players)

	_, err = parseCLI(t)
	assert.Error(t, err, "missing player count")

	_, err = parseCLI(t, "three")
	assert.Error(t, err, "non-numeric player count")
}

func TestRun(t *testing.T) {
	cli, err := parseCLI(t, "2")
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	require.NoError(t, cli.run(&stdout, &stderr))
	assert.Equal(t, "Num states: 54\nComputed permutes: 7\nCalculated permutes: 7\n", stdout.String())
}

func TestRunZeroPlayers(t *testing.T) {
	cli, err := parseCLI(t, "0")
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	assert.ErrorContains(t, cli.run(&stdout, &stderr), "players must be at least 1")
}

func TestConfigFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lcr.hcl")
	require.NoError(t, os.WriteFile(path, []byte("players = 9\nstrategy = \"subset\"\nlog_level = \"warn\"\n"), 0644))

	cli, err := parseCLI(t, "2", "--config", path, "--strategy", "direct", "--debug")
	require.NoError(t, err)

	cfg, err := cli.config()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Players)
	assert.Equal(t, "direct", cfg.Strategy)
	assert.Equal(t, "debug", cfg.LogLevel)

	cli, err = parseCLI(t, "2", "--config", path)
	require.NoError(t, err)
	cfg, err = cli.config()
	require.NoError(t, err)
	assert.Equal(t, "subset", cfg.Strategy)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	_, err := newLogger(&buf, "chatty")
	assert.ErrorContains(t, err, "invalid log level")
}
