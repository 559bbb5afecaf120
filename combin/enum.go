// Package combin — ready-made enumerators on top of the iterator engines.
//
// Every constructor here is a specific wiring of lexiter.Spec (or a plain
// permiter iterator) paired with its closed-form length. Degenerate inputs
// never fail: they enumerate the single empty selection, matching the
// classical convention C(n,0) = 1.
package combin

import (
	"errors"

	"github.com/katalvlaran/lvlcount/lexiter"
	"github.com/katalvlaran/lvlcount/permiter"
)

// Enumerator is a single-pass, forward-only source of item tuples with a
// closed-form count. Pull tuples with Next until ErrExhausted; restart by
// constructing a new Enumerator. Not safe for concurrent use.
type Enumerator[T any] struct {
	pull   func() ([]T, error)
	length int64
}

// Next returns the next tuple, or ErrExhausted after the last one.
// The terminal signal is idempotent and uniform across backing engines.
// Each returned tuple is freshly allocated and never mutated afterwards.
func (e *Enumerator[T]) Next() ([]T, error) { return e.pull() }

// Len returns the closed-form number of tuples this enumerator produces in
// total, independent of how many have been pulled already. It is exact
// whenever the count fits in int64; Permutations of more than 20 items
// reports 0 (the enumeration itself would never complete anyway).
func (e *Enumerator[T]) Len() int64 { return e.length }

// singleEmpty enumerates exactly one empty tuple — the degenerate selection.
func singleEmpty[T any]() *Enumerator[T] {
	done := false

	return &Enumerator[T]{
		length: 1,
		pull: func() ([]T, error) {
			if done {
				return nil, ErrExhausted
			}
			done = true

			return []T{}, nil
		},
	}
}

// none enumerates no tuples at all (a product with a zero-sized dimension).
func none[T any]() *Enumerator[T] {
	return &Enumerator[T]{
		length: 0,
		pull:   func() ([]T, error) { return nil, ErrExhausted },
	}
}

// fromLex adapts a lexiter iterator, normalizing its terminal signal.
func fromLex[T any](it *lexiter.Iterator[T], length int64) *Enumerator[T] {
	return &Enumerator[T]{
		length: length,
		pull: func() ([]T, error) {
			tup, err := it.Next()
			if errors.Is(err, lexiter.ErrExhausted) {
				return nil, ErrExhausted
			}

			return tup, err
		},
	}
}

// fromPerm adapts a permiter iterator, normalizing its terminal signal.
func fromPerm[T any](it *permiter.Iterator[T], length int64) *Enumerator[T] {
	return &Enumerator[T]{
		length: length,
		pull: func() ([]T, error) {
			tup, err := it.Next()
			if errors.Is(err, permiter.ErrExhausted) {
				return nil, ErrExhausted
			}

			return tup, err
		},
	}
}

// Subset enumerates every k-element subset of items as a strictly
// increasing index selection, in lexicographic order: limits n-k+i+1,
// each position restarting one past its predecessor.
//
//	Subset(Range(4), 3) → [0 1 2], [0 1 3], [0 2 3], [1 2 3]
//
// Degenerate inputs (k ≤ 0, no items, or k > n) enumerate one empty tuple.
// Len is C(n, k) — or 1 in the degenerate case.
func Subset[T any](items []T, k int) *Enumerator[T] {
	n := len(items)
	if k <= 0 || n <= 0 || n < k {
		return singleEmpty[T]()
	}

	spec := lexiter.Spec{
		Limits:     make([]int, k),
		IndexMap:   make([]int, k),
		Increments: make([]int, k),
	}
	for i := 0; i < k; i++ {
		spec.Limits[i] = n - k + i + 1
		spec.IndexMap[i] = i - 1 // position 0 gets NoRelation
		spec.Increments[i] = 1
	}

	// The wiring above is valid by construction, so New cannot fail.
	it, _ := lexiter.New(items, spec)

	return fromLex(it, Binomial(n, k))
}

// Combinations enumerates all combinations of items taken k at a time.
// This is Subset by its other name.
func Combinations[T any](items []T, k int) *Enumerator[T] { return Subset(items, k) }

// Multiset enumerates every k-element multiset of items — subsets with
// repetition — as a non-decreasing index selection in lexicographic order:
// every position restarts at its predecessor.
//
//	Multiset(Range(3), 2) → [0 0], [0 1], [0 2], [1 1], [1 2], [2 2]
//
// Degenerate inputs (k ≤ 0 or no items) enumerate one empty tuple.
// Len is C(n+k-1, k) — or 1 in the degenerate case.
func Multiset[T any](items []T, k int) *Enumerator[T] {
	n := len(items)
	if k <= 0 || n <= 0 {
		return singleEmpty[T]()
	}

	spec := lexiter.Spec{
		Limits:     make([]int, k),
		IndexMap:   make([]int, k),
		Increments: make([]int, k),
	}
	for i := 0; i < k; i++ {
		spec.Limits[i] = n
		spec.IndexMap[i] = i - 1
	}

	it, _ := lexiter.New(items, spec)

	return fromLex(it, Binomial(n+k-1, k))
}

// Indices enumerates index tuples over a mixed-radix shape — the odometer
// over a multidimensional array, rightmost index cycling fastest.
//
//	Indices([]int{2, 3}) → [0 0], [0 1], [0 2], [1 0], [1 1], [1 2]
//
// An empty shape enumerates one empty tuple; a shape containing a
// non-positive dimension enumerates nothing (Len 0), as a product with an
// empty axis has no elements.
func Indices(shape []int) *Enumerator[int] {
	k := len(shape)
	if k == 0 {
		return singleEmpty[int]()
	}

	maxDim := 0
	length := int64(1)
	for _, d := range shape {
		if d <= 0 {
			return none[int]()
		}
		if d > maxDim {
			maxDim = d
		}
		length *= int64(d)
	}

	spec := lexiter.Spec{
		Limits:     append([]int(nil), shape...),
		IndexMap:   make([]int, k),
		Increments: make([]int, k),
	}
	for i := range spec.IndexMap {
		spec.IndexMap[i] = lexiter.NoRelation
	}

	it, _ := lexiter.New(Range(maxDim), spec)

	return fromLex(it, length)
}

// CountInBase enumerates ndigits-digit numbers in the given base as index
// tuples, counting upward from all zeros. It is Indices over a uniform
// shape; ndigits ≤ 0 enumerates the single empty tuple and base ≤ 0
// enumerates nothing.
func CountInBase(base, ndigits int) *Enumerator[int] {
	if ndigits <= 0 {
		return singleEmpty[int]()
	}
	shape := make([]int, ndigits)
	for i := range shape {
		shape[i] = base
	}

	return Indices(shape)
}

// Permutations enumerates every arrangement of items in lexicographic order
// of index tuples, identity first. An empty sequence enumerates one empty
// tuple. Len is n! — exact through n = 20, 0 beyond (ErrOverflow territory;
// such an enumeration would never be pulled dry regardless).
func Permutations[T any](items []T) *Enumerator[T] {
	n := len(items)
	if n == 0 {
		return singleEmpty[T]()
	}

	// ErrNoItems is unreachable here; n ≥ 1 was just checked.
	it, _ := permiter.New(items)

	length, err := Factorial(n)
	if err != nil {
		length = 0
	}

	return fromPerm(it, length)
}
