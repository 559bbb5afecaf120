// Package permiter enumerates all permutations of an item sequence in
// lexicographic order of their index tuples, using the classic in-place
// next-permutation step.
//
// Overview:
//
//   - The iterator keeps a permutation of {0..n-1} (always a bijection) and
//     advances it with the standard four-step successor: pivot scan from the
//     right, successor scan from the end, swap, reverse the tail.
//   - The first Next returns the identity permutation's tuple without
//     stepping; later calls step then emit. The descending permutation has
//     no successor and turns the iterator terminal.
//   - There are exactly n! pulls before ErrExhausted, each a freshly
//     allocated tuple gathered from the item sequence.
//
// Errors (sentinel):
//
//   - ErrNoItems    if the item sequence is empty (n ≥ 1 is required).
//   - ErrExhausted  terminal end-of-sequence signal, idempotent, not a failure.
//
// Concurrency: an Iterator owns private mutable state and is not safe for
// concurrent use; the item sequence is read-only to the iterator.
//
// Complexity:
//
//   - New:  O(n).
//   - Next: O(n) worst case per step (amortized under 3 element moves for the
//     permutation update itself), plus one O(n) allocation for the output.
package permiter
