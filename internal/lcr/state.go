// Package lcr enumerates the reachable states of a Left-Center-Right game.
//
// A state pairs the player whose turn it is with a distribution of the chips
// still in play. Chips only ever leave play (into the center), so the number
// of chips in play runs from 3 per player down to 1.
package lcr

import (
	"fmt"
	"strconv"
	"strings"
)

// ChipsPerPlayer is the number of chips every player starts with.
const ChipsPerPlayer = 3

// Player identifies a seat at the table by its index.
type Player int

func (p Player) String() string {
	return "p" + strconv.Itoa(int(p))
}

// NewPlayers returns players 0 through n-1.
func NewPlayers(n int) []Player {
	players := make([]Player, n)
	for i := range players {
		players[i] = Player(i)
	}
	return players
}

// Assignment is a single (player, chips) pair of a distribution.
type Assignment struct {
	Player Player
	Chips  int
}

// Distribution holds one chip count per player, indexed by player.
// Distributions are never mutated once built, so states may share them.
type Distribution []int

// Total returns the number of chips in play.
func (d Distribution) Total() int {
	total := 0
	for _, c := range d {
		total += c
	}
	return total
}

// Chips returns the number of chips held by p.
func (d Distribution) Chips(p Player) int {
	return d[p]
}

// Assignments returns the distribution as ordered (player, chips) pairs.
func (d Distribution) Assignments() []Assignment {
	out := make([]Assignment, len(d))
	for i, c := range d {
		out[i] = Assignment{Player: Player(i), Chips: c}
	}
	return out
}

// Key returns a string that is equal for two distributions exactly when
// every player holds the same number of chips in both.
func (d Distribution) Key() string {
	var sb strings.Builder
	for i, c := range d {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}

func (d Distribution) String() string {
	return "[" + d.Key() + "]"
}

// State is one reachable configuration of the game.
type State struct {
	Turn  Player
	Chips Distribution
}

func (s State) String() string {
	return fmt.Sprintf("turn=%s chips=%s", s.Turn, s.Chips)
}
