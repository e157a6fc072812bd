package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/lcr/internal/config"
	"github.com/lox/lcr/internal/runner"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Players   int              `arg:"" help:"Number of players at the table (at least 1)"`
	Strategy  string           `short:"s" help:"Enumeration strategy: direct or subset"`
	CountOnly bool             `help:"Print closed-form counts without enumerating states"`
	Output    string           `short:"o" type:"path" help:"Write the enumerated states to a TOML file"`
	Config    string           `short:"c" type:"path" help:"HCL configuration file"`
	Debug     bool             `short:"d" help:"Enable debug logging"`
	Version   kong.VersionFlag `short:"v" help:"Show version"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("lcr"),
		kong.Description("Count the reachable states of a Left-Center-Right game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := cli.run(os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)
}

func (c *CLI) run(stdout, stderr io.Writer) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	_, err = runner.New(stdout, logger, quartz.NewReal()).Run(cfg)
	return err
}

// config loads the optional config file and applies the command line on top.
func (c *CLI) config() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg.Players = c.Players
	if c.Strategy != "" {
		cfg.Strategy = c.Strategy
	}
	if c.Output != "" {
		cfg.Output = c.Output
	}
	if c.CountOnly {
		cfg.CountOnly = true
	}
	if c.Debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{Level: lvl}), nil
}
