// Package combin — labeled symmetry groups over index tuples.
//
// A symmetry string assigns one label per tensor index; positions sharing a
// label are interchangeable. "abba" says index 0 swaps with index 3 and
// index 1 swaps with index 2 — the wiring for A[i,j,k,l] symmetric in its
// outer and inner index pairs. Enumeration visits exactly one canonical
// representative per equivalence class (values non-decreasing within each
// group); Canonical maps any raw tuple to its representative and Orbit
// counts the raw tuples in its class, closed-form.
package combin

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlcount/lexiter"
	"github.com/katalvlaran/lvlcount/smallsort"
)

// Symmetric describes index tuples over a shape with labeled position
// symmetries. Construct with NewSymmetric; the zero value is not usable.
type Symmetric struct {
	shape    []int   // dimension per position
	groups   [][]int // positions per label, in first-appearance order
	indexMap []int   // lexiter wiring: each repeat chains to the previous occurrence
}

// NewSymmetric validates a shape/symmetries pair.
//
// symmetries carries one label byte per position ("abba", "aaa", ...); an
// empty string means every position shares one label (fully symmetric, the
// k-multiset case). A non-empty string of the wrong length returns
// ErrSymmetryLen; two positions sharing a label but not a dimension return
// ErrSymmetryDim (their values must range identically to be exchangeable).
//
// Complexity: O(k).
func NewSymmetric(shape []int, symmetries string) (*Symmetric, error) {
	k := len(shape)
	if symmetries == "" {
		// Default: one shared label across all positions.
		b := make([]byte, k)
		for i := range b {
			b[i] = 'a'
		}
		symmetries = string(b)
	}
	if len(symmetries) != k {
		return nil, fmt.Errorf("%w: %d positions, %d labels", ErrSymmetryLen, k, len(symmetries))
	}

	s := &Symmetric{
		shape:    append([]int(nil), shape...),
		indexMap: make([]int, k),
	}

	// Group positions by label, chaining each repeat to its most recent
	// predecessor so lexiter restarts it there (non-decreasing within group).
	lastSeen := make(map[byte]int, k)
	groupOf := make(map[byte]int, k)
	for i := 0; i < k; i++ {
		label := symmetries[i]
		prev, seen := lastSeen[label]
		if !seen {
			s.indexMap[i] = lexiter.NoRelation
			groupOf[label] = len(s.groups)
			s.groups = append(s.groups, []int{i})
		} else {
			if shape[i] != shape[prev] {
				return nil, fmt.Errorf("%w: positions %d and %d have dimensions %d and %d",
					ErrSymmetryDim, prev, i, shape[prev], shape[i])
			}
			s.indexMap[i] = prev
			g := groupOf[label]
			s.groups[g] = append(s.groups[g], i)
		}
		lastSeen[label] = i
	}

	return s, nil
}

// Iter enumerates one canonical index tuple per equivalence class, in
// lexicographic order: within each symmetry group, values run non-decreasing
// along the group's positions. An empty shape enumerates the single empty
// tuple; a non-positive dimension enumerates nothing.
func (s *Symmetric) Iter() *Enumerator[int] {
	k := len(s.shape)
	if k == 0 {
		return singleEmpty[int]()
	}

	maxDim := 0
	for _, d := range s.shape {
		if d <= 0 {
			return none[int]()
		}
		if d > maxDim {
			maxDim = d
		}
	}

	spec := lexiter.Spec{
		Limits:     append([]int(nil), s.shape...),
		IndexMap:   append([]int(nil), s.indexMap...),
		Increments: make([]int, k),
	}
	it, _ := lexiter.New(Range(maxDim), spec)

	return fromLex(it, s.Len())
}

// Len returns the number of equivalence classes: the product over symmetry
// groups of C(n+k-1, k), where n is the group's dimension and k its size.
func (s *Symmetric) Len() int64 {
	r := int64(1)
	for _, g := range s.groups {
		n := s.shape[g[0]]
		r *= Binomial(n+len(g)-1, len(g))
	}

	return r
}

// Canonical returns the canonical representative of idx's equivalence
// class: a fresh tuple with the values inside each symmetry group sorted
// ascending along the group's positions. Equivalent tuples — those related
// by permuting values within groups — map to the same representative, so
// representatives compare equal regardless of original order.
//
// Groups of 2, 3 or 4 positions go through the fixed comparison networks in
// package smallsort; larger groups fall back to the general sort. A tuple of
// the wrong arity returns ErrTupleLen.
//
// Complexity: O(k) for groups within network arity, O(k log k) worst case.
func (s *Symmetric) Canonical(idx []int) ([]int, error) {
	if len(idx) != len(s.shape) {
		return nil, fmt.Errorf("%w: got %d, shape has %d", ErrTupleLen, len(idx), len(s.shape))
	}

	out := append([]int(nil), idx...)
	for _, g := range s.groups {
		switch len(g) {
		case 1:
			// Singleton groups are already canonical.
		case 2:
			out[g[0]], out[g[1]] = smallsort.Sort2(out[g[0]], out[g[1]])
		case 3:
			out[g[0]], out[g[1]], out[g[2]] = smallsort.Sort3(out[g[0]], out[g[1]], out[g[2]])
		case 4:
			out[g[0]], out[g[1]], out[g[2]], out[g[3]] =
				smallsort.Sort4(out[g[0]], out[g[1]], out[g[2]], out[g[3]])
		default:
			vals := make([]int, len(g))
			for i, p := range g {
				vals[i] = out[p]
			}
			sort.Ints(vals)
			for i, p := range g {
				out[p] = vals[i]
			}
		}
	}

	return out, nil
}

// Orbit returns the number of distinct raw index tuples equivalent to idx:
// the product over symmetry groups of the distinct orderings of the group's
// values (repeated values shrink the orbit). Combined with Iter this counts
// or weights full index space without enumerating it.
//
// A tuple of the wrong arity returns ErrTupleLen.
//
// Complexity: O(k) for groups within closed-form arity, O(k) beyond.
func (s *Symmetric) Orbit(idx []int) (int64, error) {
	if len(idx) != len(s.shape) {
		return 0, fmt.Errorf("%w: got %d, shape has %d", ErrTupleLen, len(idx), len(s.shape))
	}

	r := int64(1)
	for _, g := range s.groups {
		vals := make([]int, len(g))
		for i, p := range g {
			vals[i] = idx[p]
		}
		r *= CountPermutations(vals)
	}

	return r, nil
}
