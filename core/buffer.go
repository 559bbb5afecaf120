package core

import "fmt"

// IndexBuffer is a fixed-length, mutable sequence of integer indices.
// It is the private working storage of an iterator: the iterator mutates it
// in place on every step and materializes output tuples from it via Gather.
//
// An IndexBuffer is not safe for concurrent use; each buffer belongs to
// exactly one iterator instance.
type IndexBuffer struct {
	idx []int // the stored indices; length fixed at construction
}

// NewIndexBuffer allocates a buffer with the given number of integer slots,
// all initialized to zero. A negative length returns ErrBufferLen.
//
// Complexity: O(length).
func NewIndexBuffer(length int) (*IndexBuffer, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBufferLen, length)
	}

	return &IndexBuffer{idx: make([]int, length)}, nil
}

// Len returns the fixed number of slots in the buffer.
func (b *IndexBuffer) Len() int { return len(b.idx) }

// At returns the index stored at slot i.
// Bounds are the caller's responsibility; out-of-range i panics.
func (b *IndexBuffer) At(i int) int { return b.idx[i] }

// Set stores v at slot i.
// Bounds are the caller's responsibility; out-of-range i panics.
func (b *IndexBuffer) Set(i, v int) { b.idx[i] = v }

// Snapshot returns a freshly allocated copy of the current indices.
// Mutating the returned slice does not affect the buffer.
//
// Complexity: O(length) time, one allocation.
func (b *IndexBuffer) Snapshot() []int {
	out := make([]int, len(b.idx))
	copy(out, b.idx)

	return out
}

// Gather materializes the buffer's current indices against an item sequence:
// it returns a freshly allocated tuple out where out[i] = items[buf.At(i)].
//
// Gather is a pure read — it mutates neither the buffer nor items — and every
// call allocates a new result, so previously returned tuples stay valid.
// Any stored index outside [0, len(items)) returns ErrIndexRange wrapped with
// the offending slot and value; no partial result is returned.
//
// Complexity: O(length) time, one allocation.
func Gather[T any](buf *IndexBuffer, items []T) ([]T, error) {
	out := make([]T, len(buf.idx))

	var v int
	for i := range buf.idx {
		v = buf.idx[i]
		if v < 0 || v >= len(items) {
			return nil, fmt.Errorf("%w: slot %d holds %d, items length %d",
				ErrIndexRange, i, v, len(items))
		}
		out[i] = items[v]
	}

	return out, nil
}
