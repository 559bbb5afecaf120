package smallsort

import "cmp"

// Sort2 returns a and b in ascending order. One comparison.
func Sort2[T cmp.Ordered](a, b T) (T, T) {
	if a > b {
		return b, a
	}

	return a, b
}

// Sort3 returns its arguments in ascending order via a fixed 3-comparator
// network: 0↔2, 0↔1, 1↔2.
func Sort3[T cmp.Ordered](s0, s1, s2 T) (T, T, T) {
	if s0 > s2 {
		s0, s2 = s2, s0
	}
	if s0 > s1 {
		s0, s1 = s1, s0
	}
	if s1 > s2 {
		s1, s2 = s2, s1
	}

	return s0, s1, s2
}

// Sort4 returns its arguments in ascending order via a fixed 5-comparator
// network: 1↔3, 0↔2, 2↔3, 0↔1, 1↔2. Five comparisons is optimal for four
// elements.
func Sort4[T cmp.Ordered](s0, s1, s2, s3 T) (T, T, T, T) {
	if s1 > s3 {
		s1, s3 = s3, s1
	}
	if s0 > s2 {
		s0, s2 = s2, s0
	}
	if s2 > s3 {
		s2, s3 = s3, s2
	}
	if s0 > s1 {
		s0, s1 = s1, s0
	}
	if s1 > s2 {
		s1, s2 = s2, s1
	}

	return s0, s1, s2, s3
}
