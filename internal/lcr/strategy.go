package lcr

import (
	"fmt"
	"strings"
)

// Strategy selects how distributions are enumerated.
type Strategy string

const (
	// StrategyDirect enumerates full-length distributions directly.
	StrategyDirect Strategy = "direct"
	// StrategySubset enumerates distributions over every non-empty subset of
	// players holding chips, padding the rest with zero.
	StrategySubset Strategy = "subset"
)

// Strategies lists the supported strategies.
var Strategies = []Strategy{StrategyDirect, StrategySubset}

// ParseStrategy converts a name to a Strategy. An empty name selects
// StrategyDirect.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case "", StrategyDirect:
		return StrategyDirect, nil
	case StrategySubset:
		return StrategySubset, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want %q or %q)", name, StrategyDirect, StrategySubset)
	}
}

// Distribute enumerates distributions of total among players using s.
func (s Strategy) Distribute(players []Player, total int) []Distribution {
	if s == StrategySubset {
		return DistributeSubsets(players, total)
	}
	return Distribute(players, total)
}
