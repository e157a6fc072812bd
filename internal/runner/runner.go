// Package runner drives a single count: it builds the state space, checks it
// against the closed-form counts and prints the results.
package runner

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/lcr/internal/combin"
	"github.com/lox/lcr/internal/config"
	"github.com/lox/lcr/internal/dump"
	"github.com/lox/lcr/internal/lcr"
)

// Report holds the counts produced by a run. Enumerated fields are nil when
// the run was count-only.
type Report struct {
	Players  int
	Strategy lcr.Strategy

	NumStates        *big.Int
	ComputedPermutes *big.Int

	ExpectedStates     *big.Int
	CalculatedPermutes *big.Int

	Tallies []lcr.Tally
	Elapsed time.Duration
}

// Runner executes counts and writes the report lines to out.
type Runner struct {
	out    io.Writer
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a runner. A nil clock uses the real clock.
func New(out io.Writer, logger *log.Logger, clock quartz.Clock) *Runner {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{out: out, logger: logger, clock: clock}
}

// Run performs the count described by cfg.
func (r *Runner) Run(cfg *config.Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategy, err := lcr.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	players := cfg.Players
	maxChips := lcr.MaxChips(players)
	report := &Report{
		Players:            players,
		Strategy:           strategy,
		ExpectedStates:     combin.StateCount(players),
		CalculatedPermutes: combin.FullSupplyDistributions(players),
	}

	if err := combin.CheckBinomial(maxChips+players-1, maxChips); err != nil {
		return nil, err
	}

	if cfg.CountOnly {
		r.logger.Info("Skipping enumeration", "players", players)
		fmt.Fprintf(r.out, "Num states: %s\n", report.ExpectedStates)
		fmt.Fprintf(r.out, "Calculated permutes: %s\n", report.CalculatedPermutes)
		return report, nil
	}

	r.logger.Info("Enumerating states",
		"players", players,
		"chips", maxChips,
		"strategy", strategy,
		"expected", report.ExpectedStates)

	start := r.clock.Now()
	space := lcr.BuildStates(lcr.NewPlayers(players), strategy, r.logger)
	report.Elapsed = r.clock.Since(start)
	report.Tallies = space.Tallies
	report.NumStates = big.NewInt(int64(len(space.States)))
	report.ComputedPermutes = big.NewInt(int64(space.Tallies[len(space.Tallies)-1].Distributions))

	r.logger.Info("Built state space",
		"states", len(space.States),
		"elapsed", report.Elapsed)

	fmt.Fprintf(r.out, "Num states: %s\n", report.NumStates)
	fmt.Fprintf(r.out, "Computed permutes: %s\n", report.ComputedPermutes)
	fmt.Fprintf(r.out, "Calculated permutes: %s\n", report.CalculatedPermutes)

	if cfg.Output != "" {
		if err := dump.WriteFile(cfg.Output, space, strategy); err != nil {
			return report, err
		}
		r.logger.Info("Wrote state dump", "file", cfg.Output)
	}

	if report.NumStates.Cmp(report.ExpectedStates) != 0 {
		return report, fmt.Errorf("enumerated %s states, formula predicts %s", report.NumStates, report.ExpectedStates)
	}
	if report.ComputedPermutes.Cmp(report.CalculatedPermutes) != 0 {
		return report, fmt.Errorf("enumerated %s distributions of %d chips, formula predicts %s",
			report.ComputedPermutes, maxChips, report.CalculatedPermutes)
	}

	return report, nil
}
