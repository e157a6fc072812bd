// Package combin computes the closed-form counts used to check the state
// enumeration. All results are exact.
package combin

import (
	"fmt"
	"math/big"

	gcombin "gonum.org/v1/gonum/stat/combin"
)

// chipsPerPlayer mirrors lcr.ChipsPerPlayer; the formulas here don't depend
// on the enumerator package.
const chipsPerPlayer = 3

// maxCheckedN bounds the n for which gonum's fixed-width Binomial can be
// evaluated without its intermediate products overflowing an int64.
const maxCheckedN = 60

// Binomial returns C(n, k). It is zero when k < 0 or k > n.
func Binomial(n, k int64) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(n, k)
}

// Multichoose returns the number of multisets of size k drawn from n kinds,
// C(n+k-1, k).
func Multichoose(n, k int64) *big.Int {
	if n == 0 && k == 0 {
		return big.NewInt(1)
	}
	return Binomial(n+k-1, k)
}

// DistributionCount returns the number of ways total identical chips can be
// held by players distinguishable players.
func DistributionCount(players, total int) *big.Int {
	return Multichoose(int64(players), int64(total))
}

// StateCount returns the number of (turn, distribution) states across every
// chip total from 1 to the full supply.
func StateCount(players int) *big.Int {
	sum := new(big.Int)
	p := big.NewInt(int64(players))
	for total := 1; total <= chipsPerPlayer*players; total++ {
		n := DistributionCount(players, total)
		sum.Add(sum, n.Mul(n, p))
	}
	return sum
}

// FullSupplyDistributions returns the number of distributions of the full
// chip supply, C(4P-1, 3P).
func FullSupplyDistributions(players int) *big.Int {
	return DistributionCount(players, chipsPerPlayer*players)
}

// Stirling2 returns the Stirling number of the second kind S(n, k), the number
// of ways to partition n labelled items into k non-empty unlabelled sets.
func Stirling2(n, k int64) *big.Int {
	if n < 0 || k < 0 {
		return new(big.Int)
	}
	if k == 0 {
		if n == 0 {
			return big.NewInt(1)
		}
		return new(big.Int)
	}

	// Inclusion-exclusion: S(n,k) = 1/k! * sum (-1)^(k-i) C(k,i) i^n
	sum := new(big.Int)
	exp := big.NewInt(n)
	for i := int64(0); i <= k; i++ {
		term := new(big.Int).Exp(big.NewInt(i), exp, nil)
		term.Mul(term, Binomial(k, i))
		if (k-i)%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}

	fact := new(big.Int).MulRange(1, k)
	return sum.Quo(sum, fact)
}

// CheckBinomial compares Binomial against gonum's fixed-width implementation.
// Values of n too large for gonum to evaluate safely are skipped.
func CheckBinomial(n, k int) error {
	if n < 0 || k < 0 || k > n || n > maxCheckedN {
		return nil
	}

	want := gcombin.Binomial(n, k)
	got := Binomial(int64(n), int64(k))
	if !got.IsInt64() || got.Int64() != int64(want) {
		return fmt.Errorf("binomial C(%d,%d) mismatch: exact %s, fixed-width %d", n, k, got, want)
	}
	return nil
}
