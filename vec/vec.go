// File: vec/vec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity vector with a tracked logical length.
// This implementation is NOT thread-safe and avoids locks in hot paths.

package vec

import (
	"fmt"
	"iter"

	"github.com/momentics/fixcap/api"
)

// Ensure compile-time interface compliance.
var _ api.Vector[any] = (*Vec[any])(nil)

// Vec is a variable-length view over a fixed-capacity backing store.
//
// The logical length marks the contiguous prefix of slots considered
// valid. Slots at or past the length keep stale values from prior use;
// no operation clears them.
type Vec[T any] struct {
	slots []T
	used  int
}

// New allocates a vector with the given fixed capacity. Negative
// capacities clamp to zero.
func New[T any](capacity int) *Vec[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vec[T]{slots: make([]T, capacity)}
}

// Wrap adopts caller storage as the backing store without copying.
// The full slice length becomes the capacity; existing values count as
// stale slots and the logical length starts at zero.
func Wrap[T any](storage []T) *Vec[T] {
	return &Vec[T]{slots: storage}
}

// Len returns the current logical length.
func (v *Vec[T]) Len() int {
	return v.used
}

// Cap returns the fixed capacity.
func (v *Vec[T]) Cap() int {
	return len(v.slots)
}

// Free returns the number of slots still unused.
func (v *Vec[T]) Free() int {
	return len(v.slots) - v.used
}

// IsEmpty reports whether no slots are in use.
func (v *Vec[T]) IsEmpty() bool {
	return v.used == 0
}

// Reset forces the logical length back to zero. Stored values are not
// touched.
func (v *Vec[T]) Reset() {
	v.used = 0
}

// SetLen forces the logical length to n without touching stored values.
// Extending past the previous length exposes whatever the newly covered
// slots held before; the caller asserts those values are meaningful.
// Fails with ErrOutOfRange when n is negative or exceeds the capacity.
func (v *Vec[T]) SetLen(n int) error {
	if n < 0 || n > len(v.slots) {
		return api.NewError(api.ErrCodeOutOfRange, "vec.SetLen", n, len(v.slots))
	}
	v.used = n
	return nil
}

// Get returns the element at logical index i. Fails with ErrOutOfRange
// when i does not address a used slot.
func (v *Vec[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.used {
		var zero T
		return zero, api.NewError(api.ErrCodeOutOfRange, "vec.Get", i, v.used)
	}
	return v.slots[i], nil
}

// Set writes val at physical index i and extends the logical length to
// cover it. Slots between the previous length and i keep their stale
// content. Fails with ErrOutOfRange when i is outside the backing store.
func (v *Vec[T]) Set(i int, val T) error {
	if i < 0 || i >= len(v.slots) {
		return api.NewError(api.ErrCodeOutOfRange, "vec.Set", i, len(v.slots))
	}
	v.slots[i] = val
	if i+1 > v.used {
		v.used = i + 1
	}
	return nil
}

// Append writes val after the last used slot and grows the logical
// length by one. Fails with ErrFull at capacity.
func (v *Vec[T]) Append(val T) error {
	if v.used == len(v.slots) {
		return api.NewError(api.ErrCodeFull, "vec.Append", v.used+1, len(v.slots))
	}
	v.slots[v.used] = val
	v.used++
	return nil
}

// Pop removes and returns the last used element. The slot itself is not
// cleared. Fails with ErrEmpty on a zero-length vector.
func (v *Vec[T]) Pop() (T, error) {
	if v.used == 0 {
		var zero T
		return zero, api.NewError(api.ErrCodeEmpty, "vec.Pop", 1, 0)
	}
	v.used--
	return v.slots[v.used], nil
}

// FillUsed overwrites every used slot with val. The logical length stays
// unchanged.
func (v *Vec[T]) FillUsed(val T) {
	for i := 0; i < v.used; i++ {
		v.slots[i] = val
	}
}

// FillAll extends the logical length to the full capacity and overwrites
// every slot with val.
func (v *Vec[T]) FillAll(val T) {
	v.used = len(v.slots)
	for i := range v.slots {
		v.slots[i] = val
	}
}

// All iterates over the used prefix in index order. The sequence is
// restartable and reads live state; shrinking the vector mid-iteration
// ends the walk at the new length.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.used; i++ {
			if !yield(i, v.slots[i]) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the used prefix.
func (v *Vec[T]) ToSlice() []T {
	out := make([]T, v.used)
	copy(out, v.slots[:v.used])
	return out
}

// Underlying returns the raw backing store over the full capacity.
// Access through it bypasses the logical length entirely; it neither
// raises ErrOutOfRange nor extends Len.
func (v *Vec[T]) Underlying() []T {
	return v.slots
}

// String returns a short debug form.
func (v *Vec[T]) String() string {
	return fmt.Sprintf("vec.Vec{len=%d cap=%d}", v.used, len(v.slots))
}
