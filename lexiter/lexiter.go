// Package lexiter — the lexicographic successor state machine.
//
// Algorithm (init + successor, 0-indexed over k positions):
//
//  1. Init: T[0] = 0; then for i = 1..k-1 left to right apply the rollover
//     rule — T[i] = 0 for NoRelation, else T[i] = T[IndexMap[i]] + Increments[i].
//  2. Successor: find the rightmost position g with T[g] < Limits[g]-1;
//     no such g means exhaustion. Otherwise T[g]++ and re-apply the rollover
//     rule to every position right of g, left to right.
//  3. Validity: a state is emitted only if 0 ≤ T[i] ≤ Limits[i]-1 for all i;
//     otherwise the successor step repeats. This is what keeps over-wide
//     limits (or negative increments) from leaking out-of-range indices.
//
// The three-state flag {new, running, done} makes the resume point explicit:
// the first pull emits the initial state without stepping, every later pull
// steps first, and done is sticky.
package lexiter

import (
	"fmt"

	"github.com/katalvlaran/lvlcount/core"
)

// state tracks where the iterator is in its lifecycle.
type state uint8

const (
	stateNew     state = iota // constructed, nothing produced yet
	stateRunning              // at least one tuple produced
	stateDone                 // terminal; Next keeps returning ErrExhausted
)

// Iterator enumerates index tuples under a Spec and materializes them
// against a read-only item sequence. Construct with New; restart by
// constructing a new Iterator.
type Iterator[T any] struct {
	items []T               // read-only backing sequence; never mutated here
	buf   *core.IndexBuffer // current index tuple T, mutated in place
	maxv  []int             // Limits[i]-1: maximum valid value per position
	relTo []int             // IndexMap copy (negative = NoRelation)
	incr  []int             // Increments copy
	st    state
}

// New validates the spec and builds an iterator over items.
//
// Validation (in order):
//  1. Limits must be non-empty (ErrEmptySpec).
//  2. IndexMap and Increments must match Limits in length (ErrSpecLength).
//  3. Every Limits[i] must be ≥ 1 (ErrBadLimit).
//  4. Every IndexMap[i] must be negative or < k (ErrBadIndexMap; referencing
//     one past the last position is rejected, not silently accepted).
//
// items may be shorter than the largest limit; the mismatch surfaces later
// as a wrapped core.ErrIndexRange from Next, per the gather contract.
//
// Complexity: O(k) time and space.
func New[T any](items []T, spec Spec) (*Iterator[T], error) {
	k := len(spec.Limits)
	if k == 0 {
		return nil, ErrEmptySpec
	}
	if len(spec.IndexMap) != k || len(spec.Increments) != k {
		return nil, fmt.Errorf("%w: limits=%d, index map=%d, increments=%d",
			ErrSpecLength, k, len(spec.IndexMap), len(spec.Increments))
	}

	// Per-position validation before any allocation beyond the spec copies.
	for i := 0; i < k; i++ {
		if spec.Limits[i] < 1 {
			return nil, fmt.Errorf("%w: position %d has limit %d", ErrBadLimit, i, spec.Limits[i])
		}
		if spec.IndexMap[i] >= k {
			return nil, fmt.Errorf("%w: position %d references %d, valid positions are 0..%d",
				ErrBadIndexMap, i, spec.IndexMap[i], k-1)
		}
	}

	buf, err := core.NewIndexBuffer(k)
	if err != nil {
		return nil, err
	}

	it := &Iterator[T]{
		items: items,
		buf:   buf,
		maxv:  make([]int, k),
		relTo: make([]int, k),
		incr:  make([]int, k),
	}
	// Store limits decremented: maxv[i] is the maximum valid value, not the
	// exclusive bound. Copy the wiring so the caller keeps its slices.
	for i := 0; i < k; i++ {
		it.maxv[i] = spec.Limits[i] - 1
		it.relTo[i] = spec.IndexMap[i]
		it.incr[i] = spec.Increments[i]
	}

	// Initial state: T[0] = 0, then roll every later position over, left to
	// right, so relative restarts see already-initialized predecessors.
	it.buf.Set(0, 0)
	for i := 1; i < k; i++ {
		it.rollover(i)
	}

	return it, nil
}

// Next returns the next materialized tuple, or ErrExhausted once the
// enumeration is complete. Each returned tuple is freshly allocated; a
// previously returned tuple is never mutated by later calls.
//
// A wrapped core.ErrIndexRange means the spec's limits exceed the item
// sequence; the iterator latches terminal and must not be reused.
func (it *Iterator[T]) Next() ([]T, error) {
	switch it.st {
	case stateDone:
		return nil, ErrExhausted

	case stateNew:
		// First pull: emit the initial state without stepping — unless the
		// caller's increments pushed it out of range, in which case advance
		// to the first valid state (possibly straight to exhaustion).
		it.st = stateRunning
		for !it.valid() {
			if !it.step() {
				it.st = stateDone

				return nil, ErrExhausted
			}
		}

	default:
		// Running: take one successor step, skipping invalid states.
		ok := it.step()
		for ok && !it.valid() {
			ok = it.step()
		}
		if !ok {
			it.st = stateDone

			return nil, ErrExhausted
		}
	}

	out, err := core.Gather(it.buf, it.items)
	if err != nil {
		// Caller misconfiguration (limits vs items length). Latch terminal:
		// a failed pull leaves no well-defined resume point, and sticking
		// to done keeps later pulls from emitting garbage.
		it.st = stateDone

		return nil, err
	}

	return out, nil
}

// Indices returns a fresh snapshot of the current index tuple. Before the
// first Next it reflects the initial state; after exhaustion it reflects the
// last state examined.
func (it *Iterator[T]) Indices() []int { return it.buf.Snapshot() }

// rollover re-initializes position i: zero for NoRelation, otherwise the
// current value at the related position plus the increment.
func (it *Iterator[T]) rollover(i int) {
	if it.relTo[i] < 0 {
		it.buf.Set(i, 0)

		return
	}
	it.buf.Set(i, it.buf.At(it.relTo[i])+it.incr[i])
}

// step performs one raw lexicographic-successor transition.
// It reports false when no position can be advanced (exhaustion).
func (it *Iterator[T]) step() bool {
	k := it.buf.Len()

	// 1) Rightmost position still below its maximum. Positions already past
	//    their maximum (from an oversized rollover) fail the < test and are
	//    skipped; positions below zero pass it and are driven upward.
	g := -1
	for i := k - 1; i >= 0; i-- {
		if it.buf.At(i) < it.maxv[i] {
			g = i

			break
		}
	}
	if g < 0 {
		return false
	}

	// 2) Advance the pivot, then roll over everything to its right, left to
	//    right so each rollover sees already-updated earlier positions.
	it.buf.Set(g, it.buf.At(g)+1)
	for i := g + 1; i < k; i++ {
		it.rollover(i)
	}

	return true
}

// valid reports whether every position lies within [0, maxv].
// Only valid states are ever materialized; this is the emitted-tuple
// invariant the whole package is built around.
func (it *Iterator[T]) valid() bool {
	for i := 0; i < it.buf.Len(); i++ {
		if v := it.buf.At(i); v < 0 || v > it.maxv[i] {
			return false
		}
	}

	return true
}
