package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/lcr/internal/lcr"
)

// Config represents a run of the state counter
type Config struct {
	Players   int    `hcl:"players,optional"`
	Strategy  string `hcl:"strategy,optional"`
	LogLevel  string `hcl:"log_level,optional"`
	Output    string `hcl:"output,optional"`
	CountOnly bool   `hcl:"count_only,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Strategy: string(lcr.StrategyDirect),
		LogLevel: "info",
	}
}

// Load loads configuration from an HCL file. An empty filename or a file
// that doesn't exist yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if cfg.Strategy == "" {
		cfg.Strategy = string(lcr.StrategyDirect)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}

// Validate checks that the configuration describes a runnable count
func (c *Config) Validate() error {
	if c.Players < 1 {
		return fmt.Errorf("players must be at least 1, got %d", c.Players)
	}
	if _, err := lcr.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	return nil
}
