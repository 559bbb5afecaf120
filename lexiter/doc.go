// Package lexiter provides a generic lexicographic index iterator: a single
// configurable state machine that enumerates integer index tuples — and the
// items they select — for many distinct combinatorial structures.
//
// Overview:
//
//   - The iterator walks tuples T of length k in lexicographic order, where
//     each position i ranges over [0, Limits[i]).
//   - A declarative symmetry spec links positions: IndexMap[i] = j means that
//     whenever position i rolls over it restarts at T[j] + Increments[i]
//     instead of zero; IndexMap[i] = NoRelation means it restarts at zero.
//   - Every produced tuple satisfies 0 ≤ T[i] ≤ Limits[i]-1 for all i; states
//     where a rollover lands outside that range are skipped, never emitted.
//
// One machine, many structures (by parameter choice alone):
//
//   - Cartesian product:  Limits = shape, IndexMap[i] = NoRelation, Increments = 0
//   - k-multisets:        Limits[i] = n,         IndexMap[i] = i-1, Increments[i] = 0
//   - k-subsets:          Limits[i] = n-k+i+1,   IndexMap[i] = i-1, Increments[i] = 1
//   - partial symmetries: wire IndexMap between any positions you like
//     (e.g. positions 0&3 swappable and 1&2 swappable: IndexMap = {-1,-1,1,0})
//
// Arbitrary user-supplied IndexMap/Increments are supported, not just the
// canned wirings above; see package combin for the ready-made constructors.
//
// Output protocol:
//
//   - The first Next returns the initial state without stepping; each later
//     Next performs one lexicographic-successor step and materializes the
//     result as a freshly allocated tuple of items.
//   - Exhaustion is signaled by ErrExhausted — a distinguished terminal
//     signal in the io.EOF tradition, not a failure — and is idempotent:
//     every pull after the last tuple returns it again.
//   - Iteration is single-pass and forward-only. There is no reset; build a
//     new Iterator to restart.
//
// Errors (sentinel):
//
//   - ErrEmptySpec    if the spec has no positions (k = 0).
//   - ErrSpecLength   if Limits, IndexMap and Increments differ in length.
//   - ErrBadLimit     if any Limits[i] < 1.
//   - ErrBadIndexMap  if any IndexMap[i] ≥ k (negative means NoRelation).
//   - ErrExhausted    terminal signal from Next after the last tuple.
//   - core.ErrIndexRange (wrapped) if a produced index exceeds the item
//     sequence — a limits/items-length mismatch supplied by the caller. The
//     iterator latches terminal after such a failure and must not be reused.
//
// Concurrency: an Iterator owns private mutable state and is not safe for
// concurrent use. The item sequence is read-only to the iterator and must not
// shrink below any produced index while the iterator is live.
//
// Complexity:
//
//   - New:  O(k) validation + O(k) buffer allocation.
//   - Next: O(k) amortized per produced tuple (each successor scan touches at
//     most k positions; skipped invalid states are bounded by the same grid),
//     plus one O(k) allocation for the materialized tuple.
package lexiter
