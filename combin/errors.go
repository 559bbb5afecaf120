package combin

import "errors"

var (
	// ErrExhausted is the distinguished end-of-sequence signal returned by
	// Enumerator.Next once every tuple has been produced. Terminal,
	// idempotent, and not a failure.
	ErrExhausted = errors.New("combin: enumerator exhausted")

	// ErrOverflow indicates a closed-form count does not fit in int64.
	ErrOverflow = errors.New("combin: count exceeds int64")

	// ErrSymmetryLen indicates shape and symmetry labels differ in length.
	ErrSymmetryLen = errors.New("combin: must describe symmetries for all indices")

	// ErrSymmetryDim indicates two symmetric positions with unequal dimensions.
	ErrSymmetryDim = errors.New("combin: symmetric indices must have the same dimension")

	// ErrTupleLen indicates a tuple whose arity does not match the shape.
	ErrTupleLen = errors.New("combin: tuple length does not match shape")
)
