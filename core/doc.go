// Package core defines the central IndexBuffer type shared by every iterator
// in lvlcount, together with the Gather materialization primitive.
//
// Overview:
//
//   - IndexBuffer is a fixed-length, mutable sequence of small integers. Each
//     iterator owns exactly one buffer for its lifetime and mutates it in
//     place on every step; the buffer is never shared between iterators.
//   - Gather turns the buffer's current indices into a freshly allocated
//     tuple of items, reading items[buf[i]] for every position i. It is a
//     pure read: neither the buffer nor the item sequence is mutated.
//
// Ownership and lifecycle:
//
//   - A buffer is allocated at iterator construction and released by the
//     garbage collector when the iterator is discarded; there is no manual
//     free and no finalizer.
//   - At / Set are raw slot access for iterator internals. Bounds are the
//     caller's responsibility there; out-of-range access panics like any
//     slice access. External callers should only ever see Gather output.
//
// Errors (sentinel):
//
//   - ErrBufferLen   if NewIndexBuffer is asked for a negative length.
//   - ErrIndexRange  if Gather finds a stored index outside [0, len(items)).
//     This is the one user-visible failure of normal iterator use and it
//     always indicates a limits/items-length mismatch supplied at
//     construction time.
//
// Complexity:
//
//   - NewIndexBuffer: O(length) allocation.
//   - At / Set / Len: O(1).
//   - Gather / Snapshot: O(length) time and one O(length) allocation.
package core
