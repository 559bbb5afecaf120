package core

import "errors"

var (
	// ErrBufferLen indicates a negative length was requested for an IndexBuffer.
	ErrBufferLen = errors.New("core: index buffer length must be non-negative")
	// ErrIndexRange indicates a gathered index falls outside the item sequence.
	ErrIndexRange = errors.New("core: index out of range of item sequence")
)
