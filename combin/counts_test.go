// Package combin_test — unit tests for the closed-form counting functions,
// checked against the classical reference values.
package combin_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcount/combin"
)

func TestFactorial_SmallValues(t *testing.T) {
	want := []int64{1, 1, 2, 6, 24, 120, 720, 5040}
	for n, w := range want {
		got, err := combin.Factorial(n)
		require.NoError(t, err)
		assert.Equal(t, w, got, "n=%d", n)
	}
}

func TestFactorial_Bounds(t *testing.T) {
	// Negative arguments count zero arrangements.
	got, err := combin.Factorial(-3)
	require.NoError(t, err)
	assert.EqualValues(t, 0, got)

	// 20! is the last factorial representable in int64.
	got, err = combin.Factorial(20)
	require.NoError(t, err)
	assert.EqualValues(t, 2432902008176640000, got)

	_, err = combin.Factorial(21)
	if !errors.Is(err, combin.ErrOverflow) {
		t.Fatalf("expected ErrOverflow for 21!, got %v", err)
	}
}

func TestBinomial(t *testing.T) {
	cases := []struct {
		n, k int
		want int64
	}{
		{0, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
		{4, 2, 6},
		{5, 2, 10},
		{20, 5, 15504},
		{33, 20, 573166440}, // well past the 20! factorial bound, still exact
		{-1, 0, 0},
		{3, -1, 0},
		{3, 4, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, combin.Binomial(tc.n, tc.k), "C(%d,%d)", tc.n, tc.k)
	}
}

func TestMultinomial(t *testing.T) {
	// One part: a single block, one sequence.
	assert.EqualValues(t, 1, combin.Multinomial(5))

	// Two parts reduce to a binomial.
	assert.Equal(t, combin.Binomial(5, 2), combin.Multinomial(2, 3))

	// All-singleton parts reduce to a factorial.
	f5, err := combin.Factorial(5)
	require.NoError(t, err)
	assert.Equal(t, f5, combin.Multinomial(1, 1, 1, 1, 1))

	// A negative part counts zero sequences.
	assert.EqualValues(t, 0, combin.Multinomial(2, -1))
}

func TestCountPermutations(t *testing.T) {
	assert.EqualValues(t, 1, combin.CountPermutations([]int{}))
	assert.EqualValues(t, 1, combin.CountPermutations([]int{1}))
	assert.EqualValues(t, 1, combin.CountPermutations([]int{1, 1}))
	assert.EqualValues(t, 2, combin.CountPermutations([]int{1, 2}))
	assert.EqualValues(t, 6, combin.CountPermutations([]int{1, 2, 3}))
	assert.EqualValues(t, 1, combin.CountPermutations([]int{1, 1, 1}))
	assert.EqualValues(t, 3, combin.CountPermutations([]int{1, 1, 2}))

	// Non-numeric labels: only equality matters.
	assert.EqualValues(t, 3, combin.CountPermutations([]string{"1", "1", "a"}))

	// Beyond the closed-form arities: "aabbcc" has 6!/(2!2!2!) = 90 anagrams.
	assert.EqualValues(t, 90, combin.CountPermutations([]byte("aabbcc")))

	// The length-4 word table routes through the closed-form branch.
	table := map[int64][]string{
		1:  {"aaaa"},
		4:  {"aaab", "aaba", "abaa", "baaa"},
		6:  {"aabb", "abab", "abba"},
		12: {"aabc", "abac", "abca", "baac", "baca", "bcaa"},
		24: {"abcd"},
	}
	for want, words := range table {
		for _, w := range words {
			assert.Equal(t, want, combin.CountPermutations([]byte(w)), "word %q", w)
		}
	}
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, combin.Range(4))
	assert.Empty(t, combin.Range(0))
	assert.Empty(t, combin.Range(-2))
}
