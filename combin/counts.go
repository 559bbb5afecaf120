// Package combin — closed-form counting functions.
//
// All counts are fixed-width int64 by design: enumeration lengths above
// int64 are not representable by the iterators either. Factorial is exact on
// its full representable domain 0..20; Binomial and Multinomial are computed
// multiplicatively so they remain exact far past n = 20 whenever the result
// itself fits.
package combin

import (
	"fmt"

	"github.com/katalvlaran/lvlcount/permcount"
)

// factorialTable holds n! for n = 0..20, the complete int64 range; 21!
// overflows. Seeded once, no lazy growth.
var factorialTable = [21]int64{
	1,
	1,
	2,
	6,
	24,
	120,
	720,
	5040,
	40320,
	362880,
	3628800,
	39916800,
	479001600,
	6227020800,
	87178291200,
	1307674368000,
	20922789888000,
	355687428096000,
	6402373705728000,
	121645100408832000,
	2432902008176640000,
}

// Factorial returns n!.
//
// A negative n counts zero arrangements and returns 0 (the convention the
// degenerate-input handling across this package relies on). n > 20 returns
// ErrOverflow: 21! does not fit in int64 and arbitrary precision is out of
// scope.
//
// Complexity: O(1) table lookup.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, nil
	}
	if n >= len(factorialTable) {
		return 0, fmt.Errorf("%w: %d! > 20!", ErrOverflow, n)
	}

	return factorialTable[n], nil
}

// Binomial returns the binomial coefficient C(n, k) = n!/(k!(n-k)!), or 0
// outside 0 ≤ k ≤ n.
//
// The product form C(n,k) = ∏_{i=1..k} (n-k+i)/i keeps every intermediate
// an exact integer, so the result is exact whenever it fits in int64 — well
// past the n = 20 factorial bound (e.g. C(33,20) = 573166440).
//
// Complexity: O(min(k, n-k)).
func Binomial(n, k int) int64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	// Symmetry halves the loop.
	if k > n-k {
		k = n - k
	}

	r := int64(1)
	for i := 1; i <= k; i++ {
		// Multiply before dividing: r*(n-k+i) is always divisible by i here.
		r = r * int64(n-k+i) / int64(i)
	}

	return r
}

// Multinomial returns (n1+n2+...+nk)! / (n1!·n2!·...·nk!), the number of
// distinct sequences containing ni copies of the i-th symbol. Any negative
// part makes the count 0.
//
// Computed as a product of binomials over the running total, which stays
// exact while the final result fits in int64.
//
// Complexity: O(sum of parts).
func Multinomial(parts ...int) int64 {
	total := 0
	r := int64(1)
	for _, p := range parts {
		if p < 0 {
			return 0
		}
		total += p
		r *= Binomial(total, p)
	}

	return r
}

// CountPermutations returns the number of distinct orderings of the labeled
// values in lst, treating equal labels as indistinguishable: the multinomial
// of the label multiplicities.
//
// Lengths 0 and 1 count 1; lengths 2..4 dispatch to the closed-form branch
// counters in package permcount; longer inputs tally multiplicities in a map
// and fall back to Multinomial.
//
// Complexity: O(1) for length ≤ 4, O(n) beyond.
func CountPermutations[T comparable](lst []T) int64 {
	switch len(lst) {
	case 0, 1:
		return 1
	case 2:
		return permcount.CountPermutations2(lst[0], lst[1])
	case 3:
		return permcount.CountPermutations3(lst[0], lst[1], lst[2])
	case 4:
		return permcount.CountPermutations4(lst[0], lst[1], lst[2], lst[3])
	}

	counts := make(map[T]int, len(lst))
	for _, e := range lst {
		counts[e]++
	}
	mults := make([]int, 0, len(counts))
	for _, c := range counts {
		mults = append(mults, c)
	}

	return Multinomial(mults...)
}

// Range returns the index sequence 0, 1, …, n-1 — the item sequence to use
// when the indices themselves are the objects of interest. n ≤ 0 yields an
// empty sequence.
func Range(n int) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
