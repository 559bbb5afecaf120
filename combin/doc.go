// Package combin is the high-level counting and enumeration face of
// lvlcount: closed-form combinatorics (factorials, binomials, multinomials,
// distinct-permutation counts) plus ready-made enumerators built on the
// lexiter and permiter engines.
//
// Enumerators (each returns an Enumerator with an exact closed-form Len):
//
//   - Subset(items, k)     – k-subsets, strictly increasing indices; C(n,k).
//     Combinations(items, k) is the same thing by its other name.
//   - Multiset(items, k)   – k-multisets, non-decreasing indices; C(n+k-1,k).
//   - Indices(shape)       – mixed-radix odometer over index tuples; ∏ shape.
//   - CountInBase(b, d)    – d-digit counting in base b; b^d.
//   - Permutations(items)  – all arrangements; n!.
//   - NewSymmetric(shape, labels) – index tuples under labeled symmetry groups
//     (e.g. "abba" for a tensor symmetric in its outer and inner index
//     pairs), with canonicalization and orbit counting on top.
//
// Degenerate inputs follow the classical convention: an empty selection
// (k ≤ 0, or nothing to select from, or k exceeding the population for
// subsets) enumerates exactly one empty tuple rather than failing.
//
// Counting functions:
//
//   - Factorial(n)            – exact for 0 ≤ n ≤ 20 (the int64 range);
//     negative n counts zero arrangements, larger n returns ErrOverflow.
//   - Binomial(n, k)          – multiplicative, exact while the result fits
//     int64; 0 outside 0 ≤ k ≤ n.
//   - Multinomial(parts...)   – ∏ C(partial sums, part).
//   - CountPermutations(lst)  – distinct orderings of labeled values, fast
//     closed-form branches for lengths ≤ 4 (package permcount), multiplicity
//     counting beyond.
//
// Errors (sentinel):
//
//   - ErrExhausted    terminal end-of-sequence signal from Enumerator.Next,
//     regardless of which engine backs the enumerator.
//   - ErrOverflow     the closed form exceeds int64.
//   - ErrSymmetryLen  shape and symmetry labels differ in length.
//   - ErrSymmetryDim  symmetric positions with unequal dimensions.
//   - ErrTupleLen     a tuple passed to Canonical/Orbit has the wrong arity.
//
// Everything here is single-threaded and allocation-light; see the engine
// packages for the iteration contracts.
package combin
