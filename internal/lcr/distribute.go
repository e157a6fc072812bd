package lcr

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// Distribute returns every way to hand out total chips among players, where
// each player may hold anywhere from 0 to total chips. Index i of each
// distribution is the holding of players[i].
//
// Requires len(players) >= 1 and total >= 0. The result has
// C(total+len(players)-1, len(players)-1) entries with no duplicates.
func Distribute(players []Player, total int) []Distribution {
	if len(players) == 0 {
		panic("lcr: cannot distribute chips among zero players")
	}
	if total < 0 {
		panic(fmt.Sprintf("lcr: negative chip total %d", total))
	}

	var out []Distribution
	scratch := make([]int, len(players))
	distribute(scratch, 0, total, &out)
	return out
}

// distribute fills scratch[idx:] with every split of remaining and appends a
// copy of scratch at each leaf.
func distribute(scratch []int, idx, remaining int, out *[]Distribution) {
	if idx == len(scratch)-1 {
		scratch[idx] = remaining
		d := make(Distribution, len(scratch))
		copy(d, scratch)
		*out = append(*out, d)
		return
	}

	for k := 0; k <= remaining; k++ {
		scratch[idx] = k
		distribute(scratch, idx+1, remaining-k, out)
	}
}

// DistributeSubsets produces the same distributions as Distribute for
// total >= 1, built the long way round: for every non-empty subset of
// players, it enumerates the splits where each member of the subset holds at
// least one chip and everyone else holds none.
//
// A total of 0 yields nothing since no subset can hold a positive count.
func DistributeSubsets(players []Player, total int) []Distribution {
	if len(players) == 0 {
		panic("lcr: cannot distribute chips among zero players")
	}
	if total < 0 {
		panic(fmt.Sprintf("lcr: negative chip total %d", total))
	}

	var out []Distribution
	for size := 1; size <= len(players) && size <= total; size++ {
		for _, idxs := range combin.Combinations(len(players), size) {
			subset := make([]Player, size)
			for i, idx := range idxs {
				subset[i] = players[idx]
			}

			// Everyone in the subset holds at least one chip, so only the
			// remainder is free to move around.
			for _, extra := range Distribute(subset, total-size) {
				holdings := make(map[Player]int, len(players))
				for i, p := range subset {
					holdings[p] = extra[i] + 1
				}
				out = append(out, fromHoldings(players, holdings))
			}
		}
	}
	return out
}

// fromHoldings orders a player-keyed holding map by players, filling zero for
// anyone missing.
func fromHoldings(players []Player, holdings map[Player]int) Distribution {
	d := make(Distribution, len(players))
	for i, p := range players {
		d[i] = holdings[p]
	}
	return d
}
