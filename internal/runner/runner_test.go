package runner

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/lcr/internal/config"
	"github.com/lox/lcr/internal/dump"
	"github.com/lox/lcr/internal/lcr"
)

func newTestRunner(t *testing.T, out io.Writer) *Runner {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return New(out, logger, quartz.NewMock(t))
}

func testConfig(players int) *config.Config {
	cfg := config.Default()
	cfg.Players = players
	return cfg
}

func TestRunOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		players int
		want    string
	}{
		{1, "Num states: 3\nComputed permutes: 1\nCalculated permutes: 1\n"},
		{2, "Num states: 54\nComputed permutes: 7\nCalculated permutes: 7\n"},
		{3, "Num states: 657\nComputed permutes: 55\nCalculated permutes: 55\n"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		report, err := newTestRunner(t, &out).Run(testConfig(tt.players))
		require.NoError(t, err)
		assert.Equal(t, tt.want, out.String())
		assert.Equal(t, 3*tt.players, len(report.Tallies))
		assert.Zero(t, report.Elapsed)
	}
}

func TestRunStrategiesAgree(t *testing.T) {
	t.Parallel()

	for p := 1; p <= 4; p++ {
		var direct, subset bytes.Buffer

		cfg := testConfig(p)
		_, err := newTestRunner(t, &direct).Run(cfg)
		require.NoError(t, err)

		cfg.Strategy = string(lcr.StrategySubset)
		report, err := newTestRunner(t, &subset).Run(cfg)
		require.NoError(t, err)

		assert.Equal(t, lcr.StrategySubset, report.Strategy)
		assert.Equal(t, direct.String(), subset.String(), "players=%d", p)
	}
}

func TestRunCountOnly(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg := testConfig(10)
	cfg.CountOnly = true

	report, err := newTestRunner(t, &out).Run(cfg)
	require.NoError(t, err)
	assert.Nil(t, report.NumStates)
	assert.Nil(t, report.ComputedPermutes)
	// C(39,30)
	assert.Contains(t, out.String(), "Calculated permutes: 211915132\n")
	assert.NotContains(t, out.String(), "Computed permutes")
}

func TestRunWritesDump(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "states.toml")
	cfg := testConfig(2)
	cfg.Output = path

	var out bytes.Buffer
	_, err := newTestRunner(t, &out).Run(cfg)
	require.NoError(t, err)

	doc, err := dump.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.States, 54)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, err := newTestRunner(t, &out).Run(testConfig(0))
	assert.ErrorContains(t, err, "players must be at least 1")
	assert.Empty(t, out.String())

	cfg := testConfig(2)
	cfg.Strategy = "bogus"
	_, err = newTestRunner(t, &out).Run(cfg)
	assert.ErrorContains(t, err, "unknown strategy")
}

func TestRunLogs(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	_, err := New(&out, logger, quartz.NewMock(t)).Run(testConfig(2))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Enumerating states")
	assert.Contains(t, logs.String(), "Built state space")
	assert.Contains(t, logs.String(), "Enumerated chip total")
}
