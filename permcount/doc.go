// Package permcount provides closed-form counts of the distinct permutations
// of 2, 3 or 4 labeled values, treating equal labels as indistinguishable.
//
// These are the multinomial coefficients n!/∏(mult!) for n = 2, 3, 4,
// resolved by direct equality branching instead of factorial arithmetic, so
// higher-level counting code can weight symmetric index patterns without
// enumerating them.
//
// Results by multiplicity pattern:
//
//	arity 2:  {2} → 1          {1,1} → 2
//	arity 3:  {3} → 1          {2,1} → 3          {1,1,1} → 6
//	arity 4:  {4} → 1  {3,1} → 4  {2,2} → 6  {2,1,1} → 12  {1,1,1,1} → 24
//
// Any comparable labels are valid input, numeric or not. No errors, no
// allocation.
package permcount
