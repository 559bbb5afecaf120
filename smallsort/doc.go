// Package smallsort sorts 2, 3 or 4 values ascending through minimal fixed
// comparison networks — no general sort call, no allocation, no errors.
//
// Its role in lvlcount is canonicalization: symmetric index tuples are
// sorted before counting or comparison so equivalent tuples compare equal
// regardless of original order (see combin.Symmetric.Canonical).
//
// Networks:
//
//   - Sort2: 1 comparison.
//   - Sort3: 3 comparisons (0↔2, 0↔1, 1↔2).
//   - Sort4: 5 comparisons (1↔3, 0↔2, 2↔3, 0↔1, 1↔2) — the minimum for
//     four elements.
//
// All three are generic over cmp.Ordered, total order assumed, and
// idempotent: Sort(Sort(x)) == Sort(x).
//
// Complexity: O(1) time, zero allocations.
package smallsort
