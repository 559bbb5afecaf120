// Package lvlcount is your in-memory toolbox for enumerating and counting
// combinatorial index patterns — permutations, combinations, k-subsets,
// k-multisets and custom symmetric index families over any ordered sequence.
//
// 🚀 What is lvlcount?
//
//	A compact, deterministic library that brings together:
//		• Core primitives: a fixed-length index buffer with safe gather/materialize
//		• Lexicographic engine: one configurable iterator realizing products,
//		  subsets, multisets and arbitrary partial symmetries
//		• Permutations: the classic in-place next-permutation iterator
//		• Closed forms: factorials, binomials, multinomials, distinct-permutation
//		  counts for repeated labels
//		• Small sorts: minimal comparison networks for 2, 3 and 4 values,
//		  used to canonicalize symmetric index tuples
//
// ✨ Why choose lvlcount?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every enumeration order is defined and tested
//   - Pure Go – no cgo, no hidden deps
//   - Composable – wire your own symmetry specs, not just the canned ones
//
// Under the hood, everything is organized under flat subpackages:
//
//	core/      — IndexBuffer, the shared fixed-length index storage + Gather
//	lexiter/   — generic lexicographic index iterator with symmetry specs
//	permiter/  — next-permutation iterator over {0..n-1}
//	smallsort/ — fixed comparison networks for arity 2/3/4
//	permcount/ — closed-form distinct-permutation counters for arity 2/3/4
//	combin/    — factorials, binomials, multinomials, and the high-level
//	             Subset / Multiset / Symmetric / Indices / Permutations
//	             enumerators with exact closed-form lengths
//
// Quick taste:
//
//	e := combin.Subset([]string{"a", "b", "c"}, 2)
//	// yields [a b], [a c], [b c] — C(3,2) = 3 tuples, lexicographic.
//
// Dive into each package's doc.go for complexity notes, error contracts and
// runnable examples.
//
//	go get github.com/katalvlaran/lvlcount
package lvlcount
