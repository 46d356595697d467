// Package api
// Author: momentics@gmail.com
//
// Fixed-capacity container contracts.

package api

// Container is the capacity bookkeeping contract shared by all fixcap
// containers: a fixed backing store with a variable logical length.
type Container interface {
	// Len returns the number of elements currently stored.
	Len() int
	// Cap returns the fixed capacity of the backing store.
	Cap() int
	// Free returns the remaining capacity, Cap()-Len().
	Free() int
	// IsEmpty reports whether no elements are stored.
	IsEmpty() bool
}

// Queue is a FIFO queue over a fixed backing store.
type Queue[T any] interface {
	Container
	// Push appends an element; fails with ErrFull at capacity.
	Push(v T) error
	// Pop removes and returns the oldest element; fails with ErrEmpty.
	Pop() (T, error)
	// Peek returns the oldest element without removing it; fails with ErrEmpty.
	Peek() (T, error)
}

// BulkQueue extends Queue with all-or-nothing bulk transfer.
type BulkQueue[T any] interface {
	Queue[T]
	// PushSlice appends all of src in order; fails with ErrInsufficientSpace.
	PushSlice(src []T) error
	// PopSlice removes the len(dst) oldest elements into dst; fails with ErrInsufficientItems.
	PopSlice(dst []T) error
	// Drain removes every stored element into dst, returning the count.
	Drain(dst []T) (int, error)
}

// Vector is a bounded variable-length sequence over a fixed backing store.
type Vector[T any] interface {
	Container
	// Append adds v after the last used element; fails with ErrFull.
	Append(v T) error
	// Pop removes and returns the last used element; fails with ErrEmpty.
	Pop() (T, error)
	// Get returns the element at logical index i; fails with ErrOutOfRange.
	Get(i int) (T, error)
	// Set writes v at physical index i, extending the logical length over it.
	Set(i int, v T) error
}
