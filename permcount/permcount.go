package permcount

// CountPermutations2 returns the number of distinct orderings of two labels:
// 1 when they are equal, 2 otherwise.
func CountPermutations2[T comparable](a, b T) int64 {
	if a == b {
		return 1
	}

	return 2
}

// CountPermutations3 returns the number of distinct orderings of three
// labels: 1 when all are equal, 3 when exactly two distinct values appear
// (whichever positions carry the repeated value), 6 when all differ.
func CountPermutations3[T comparable](a, b, c T) int64 {
	if a == b {
		if b == c {
			return 1 // {3}
		}

		return 3 // {2,1}
	}
	if b == c || a == c {
		return 3 // {2,1}
	}

	return 6 // {1,1,1}
}

// CountPermutations4 returns the number of distinct orderings of four
// labels. The multiplicity pattern is recovered from the count of equal
// unordered pairs: {4} has 6 equal pairs, {3,1} has 3, {2,2} has 2,
// {2,1,1} has 1, {1,1,1,1} has none. Counts 4 and 5 are unreachable.
func CountPermutations4[T comparable](a, b, c, d T) int64 {
	eq := 0
	if a == b {
		eq++
	}
	if a == c {
		eq++
	}
	if a == d {
		eq++
	}
	if b == c {
		eq++
	}
	if b == d {
		eq++
	}
	if c == d {
		eq++
	}

	switch eq {
	case 6:
		return 1 // {4}:       4!/4!
	case 3:
		return 4 // {3,1}:     4!/3!
	case 2:
		return 6 // {2,2}:     4!/(2!·2!)
	case 1:
		return 12 // {2,1,1}:  4!/2!
	default:
		return 24 // {1,1,1,1}: 4!
	}
}
