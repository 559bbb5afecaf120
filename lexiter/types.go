// Package lexiter — configuration spec and sentinel errors for the
// lexicographic index iterator.
//
// Spec is a small declarative language for symmetry groups: per-position
// exclusive upper bounds, an optional "restart relative to another position"
// link, and the offset applied on such restarts. It is validated once, at
// construction; a valid Spec can never fail mid-iteration except for the
// gather range check against the item sequence.
package lexiter

import "errors"

// NoRelation is the IndexMap sentinel meaning "this position restarts at
// zero" — it participates in no symmetry relation. Any negative value is
// accepted as the sentinel; NoRelation is the canonical spelling.
const NoRelation = -1

// Sentinel errors returned by New and Next.
var (
	// ErrEmptySpec indicates a spec with zero positions (empty Limits).
	ErrEmptySpec = errors.New("lexiter: spec must describe at least one position")

	// ErrSpecLength indicates Limits, IndexMap and Increments differ in length.
	ErrSpecLength = errors.New("lexiter: limits, index map and increments must have equal length")

	// ErrBadLimit indicates a non-positive exclusive upper bound.
	ErrBadLimit = errors.New("lexiter: limits must be positive")

	// ErrBadIndexMap indicates an IndexMap entry referencing a position ≥ k.
	ErrBadIndexMap = errors.New("lexiter: index map entry out of range")

	// ErrExhausted is the distinguished end-of-sequence signal returned by
	// Next once every tuple has been produced. It is terminal and idempotent,
	// and it is not a failure.
	ErrExhausted = errors.New("lexiter: iterator exhausted")
)

// Spec declares the shape and symmetry of the enumerated index tuples.
//
// Limits      – exclusive upper bound per position: values run in [0, Limits[i]).
// IndexMap    – symmetry wiring: a negative entry (NoRelation) restarts the
//
//	position at zero on rollover; an entry j in [0, k) restarts it
//	at T[j] + Increments[i]. Entries usually reference earlier
//	positions (j < i) but this is not enforced; positions are
//	re-initialized left to right, so a forward reference reads the
//	value the referenced position held before its own rollover.
//
// Increments  – offset added when a position restarts relative to IndexMap[i].
//
//	Ignored for NoRelation positions. May be negative; states
//	driven below zero are skipped, never emitted.
//
// All three slices must share the same length k ≥ 1. New copies them, so the
// caller may reuse or mutate its slices after construction.
type Spec struct {
	Limits     []int // exclusive upper bound per position (each ≥ 1)
	IndexMap   []int // per-position restart relation (negative = NoRelation)
	Increments []int // per-position restart offset
}
