// Package permiter — the next-permutation state machine.
//
// Invariant: the buffer always holds a permutation of {0..n-1} — exactly one
// occurrence of each value. Every successor step preserves it: a swap and a
// tail reversal only rearrange elements.
package permiter

import (
	"errors"

	"github.com/katalvlaran/lvlcount/core"
)

// Sentinel errors returned by New and Next.
var (
	// ErrNoItems indicates an empty item sequence; permutations need n ≥ 1.
	ErrNoItems = errors.New("permiter: item sequence must not be empty")

	// ErrExhausted is the distinguished end-of-sequence signal returned by
	// Next after the last (descending) permutation. Terminal, idempotent,
	// and not a failure.
	ErrExhausted = errors.New("permiter: iterator exhausted")
)

// state tracks where the iterator is in its lifecycle.
type state uint8

const (
	stateNew     state = iota // constructed, identity not yet emitted
	stateRunning              // at least one tuple produced
	stateDone                 // terminal; Next keeps returning ErrExhausted
)

// Iterator enumerates the permutations of an item sequence in lexicographic
// order of index tuples, starting from the identity. Construct with New;
// restart by constructing a new Iterator.
type Iterator[T any] struct {
	items []T               // read-only backing sequence
	perm  *core.IndexBuffer // current permutation of {0..n-1}
	st    state
}

// New builds a permutation iterator over items, initialized to the identity
// permutation. An empty sequence returns ErrNoItems.
//
// Complexity: O(n).
func New[T any](items []T) (*Iterator[T], error) {
	n := len(items)
	if n == 0 {
		return nil, ErrNoItems
	}

	perm, err := core.NewIndexBuffer(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		perm.Set(i, i)
	}

	return &Iterator[T]{items: items, perm: perm}, nil
}

// Next returns the next permutation of the items as a freshly allocated
// tuple, or ErrExhausted once all n! permutations have been produced.
//
// The first call emits the identity arrangement without stepping; each later
// call advances to the lexicographic successor first. With n = 1 the pivot
// scan finds nothing to advance, so the single identity tuple is followed
// directly by exhaustion.
func (it *Iterator[T]) Next() ([]T, error) {
	switch it.st {
	case stateDone:
		return nil, ErrExhausted
	case stateNew:
		it.st = stateRunning
	default:
		if !it.step() {
			it.st = stateDone

			return nil, ErrExhausted
		}
	}

	out, err := core.Gather(it.perm, it.items)
	if err != nil {
		// Unreachable with an intact backing sequence: the permutation only
		// ever holds values 0..n-1. Latch terminal all the same.
		it.st = stateDone

		return nil, err
	}

	return out, nil
}

// Indices returns a fresh snapshot of the current permutation of {0..n-1}.
func (it *Iterator[T]) Indices() []int { return it.perm.Snapshot() }

// step advances perm to its lexicographic successor in place, reporting
// false when perm is the final (descending) permutation.
//
// Standard next-permutation, 0-indexed:
//  1. Find the largest i with perm[i] < perm[i+1] (pivot). None → terminal.
//  2. Find the largest j > i with perm[j] > perm[i].
//  3. Swap perm[i] and perm[j].
//  4. Reverse perm[i+1..n-1].
func (it *Iterator[T]) step() bool {
	p := it.perm
	n := p.Len()

	// 1) Pivot scan from the right. For n = 1 this loop body never runs.
	i := -1
	for x := n - 2; x >= 0; x-- {
		if p.At(x) < p.At(x+1) {
			i = x

			break
		}
	}
	if i < 0 {
		return false
	}

	// 2) Rightmost element greater than the pivot. Guaranteed to exist since
	//    perm[i] < perm[i+1].
	j := n - 1
	for p.At(j) <= p.At(i) {
		j--
	}

	// 3) Swap pivot and successor.
	pi, pj := p.At(i), p.At(j)
	p.Set(i, pj)
	p.Set(j, pi)

	// 4) Reverse the strictly decreasing tail back into increasing order.
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		pl, pr := p.At(l), p.At(r)
		p.Set(l, pr)
		p.Set(r, pl)
	}

	return true
}
