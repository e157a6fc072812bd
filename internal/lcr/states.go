package lcr

import (
	"github.com/charmbracelet/log"
)

// Tally records how many distributions and states exist for one chip total.
type Tally struct {
	Total         int
	Distributions int
	States        int
}

// StateSpace is every reachable state for a fixed set of players.
type StateSpace struct {
	Players []Player
	States  []State
	Tallies []Tally
}

// MaxChips returns the chip supply at the start of a game for n players.
func MaxChips(n int) int {
	return ChipsPerPlayer * n
}

// BuildStates enumerates every (turn, distribution) pair for chip totals from
// 1 up to the full supply. logger may be nil.
func BuildStates(players []Player, strategy Strategy, logger *log.Logger) *StateSpace {
	space := &StateSpace{Players: players}

	maxChips := MaxChips(len(players))
	for total := 1; total <= maxChips; total++ {
		dists := strategy.Distribute(players, total)
		for _, d := range dists {
			for _, turn := range players {
				space.States = append(space.States, State{Turn: turn, Chips: d})
			}
		}

		tally := Tally{
			Total:         total,
			Distributions: len(dists),
			States:        len(dists) * len(players),
		}
		space.Tallies = append(space.Tallies, tally)

		if logger != nil {
			logger.Debug("Enumerated chip total",
				"chips", total,
				"distributions", tally.Distributions,
				"states", tally.States)
		}
	}

	return space
}
