// File: ring/fifo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity circular FIFO queue with two-segment bulk transfer.
// This implementation is NOT thread-safe and avoids locks in hot paths.

package ring

import (
	"fmt"
	"iter"

	"github.com/momentics/fixcap/api"
)

// Ensure compile-time interface compliance.
var _ api.BulkQueue[any] = (*Fifo[any])(nil)

// Fifo is a fixed-capacity circular FIFO queue.
//
// tail is the logical index of the next element to read, head the
// logical index of the next element to write; head-tail is the stored
// count. A logical index i addresses the physical slot i mod Cap.
//
// Invariants: 0 <= head-tail <= Cap always; between operations the tail
// rests in [0, Cap) and the head in [0, 2*Cap). Pushes advance the head
// without reducing it; the tail advance rule in advanceTail rebases both
// counters together once the tail passes the capacity.
type Fifo[T any] struct {
	slots []T
	tail  int // logical index of the next element to read
	head  int // logical index of the next element to write; may exceed Cap
}

// New allocates a queue with the given fixed capacity. Capacities below
// one clamp to one so the slot modulus stays well defined.
func New[T any](capacity int) *Fifo[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Fifo[T]{slots: make([]T, capacity)}
}

// Wrap adopts caller storage as the backing store without copying. The
// queue starts empty; existing values count as stale slots. An empty
// slice falls back to capacity one.
func Wrap[T any](storage []T) *Fifo[T] {
	if len(storage) == 0 {
		return New[T](1)
	}
	return &Fifo[T]{slots: storage}
}

// Len returns the number of stored elements.
func (f *Fifo[T]) Len() int {
	return f.head - f.tail
}

// Cap returns the fixed capacity.
func (f *Fifo[T]) Cap() int {
	return len(f.slots)
}

// Free returns the number of elements that can still be pushed.
func (f *Fifo[T]) Free() int {
	return len(f.slots) - f.Len()
}

// IsEmpty reports whether no elements are stored.
func (f *Fifo[T]) IsEmpty() bool {
	return f.head == f.tail
}

// IsFull reports whether the queue is at capacity.
func (f *Fifo[T]) IsFull() bool {
	return f.head == f.tail+len(f.slots)
}

// Clear empties the queue by resetting both counters. Stored values are
// not erased.
func (f *Fifo[T]) Clear() {
	f.tail = 0
	f.head = 0
}

// Push appends v after the newest element. Fails with ErrFull at
// capacity; a full queue never overwrites its oldest element.
func (f *Fifo[T]) Push(v T) error {
	if f.IsFull() {
		return api.NewError(api.ErrCodeFull, "ring.Push", 1, 0)
	}
	f.slots[f.head%len(f.slots)] = v
	f.head++ // not reduced here; only the tail advance rebases
	return nil
}

// Pop removes and returns the oldest element. Fails with ErrEmpty.
func (f *Fifo[T]) Pop() (T, error) {
	if f.IsEmpty() {
		var zero T
		return zero, api.NewError(api.ErrCodeEmpty, "ring.Pop", 1, 0)
	}
	v := f.slots[f.tail] // tail rests below the capacity
	f.advanceTail(1)
	return v, nil
}

// Peek returns the oldest element without removing it. Fails with
// ErrEmpty.
func (f *Fifo[T]) Peek() (T, error) {
	if f.IsEmpty() {
		var zero T
		return zero, api.NewError(api.ErrCodeEmpty, "ring.Peek", 1, 0)
	}
	return f.slots[f.tail], nil
}

// At returns the element i positions past the oldest one, without
// removing it. Fails with ErrOutOfRange when i does not address a
// stored element.
func (f *Fifo[T]) At(i int) (T, error) {
	if i < 0 || i >= f.Len() {
		var zero T
		return zero, api.NewError(api.ErrCodeOutOfRange, "ring.At", i, f.Len())
	}
	return f.slots[(f.tail+i)%len(f.slots)], nil
}

// PushSlice appends all of src in order. Fails with ErrInsufficientSpace
// when fewer than len(src) slots are free; nothing is written then.
func (f *Fifo[T]) PushSlice(src []T) error {
	n := len(src)
	if n > f.Free() {
		return api.NewError(api.ErrCodeInsufficientSpace, "ring.PushSlice", n, f.Free())
	}
	f.writeAt(f.head, src)
	f.head += n // not reduced here; only the tail advance rebases
	return nil
}

// PopSlice removes the len(dst) oldest elements into dst in FIFO order.
// Fails with ErrInsufficientItems when fewer elements are stored;
// nothing is removed then.
func (f *Fifo[T]) PopSlice(dst []T) error {
	n := len(dst)
	if n > f.Len() {
		return api.NewError(api.ErrCodeInsufficientItems, "ring.PopSlice", n, f.Len())
	}
	f.readAt(f.tail, dst)
	f.advanceTail(n)
	return nil
}

// Drain removes every stored element into dst in FIFO order and returns
// the count. Fails with ErrInsufficientSpace when dst cannot hold them;
// nothing is removed then.
func (f *Fifo[T]) Drain(dst []T) (int, error) {
	n := f.Len()
	if n > len(dst) {
		return 0, api.NewError(api.ErrCodeInsufficientSpace, "ring.Drain", n, len(dst))
	}
	f.readAt(f.tail, dst[:n])
	f.advanceTail(n)
	return n, nil
}

// Values iterates over the stored elements in FIFO order. The sequence
// is restartable and reads live state, not a snapshot; any intervening
// push or pop invalidates the walk.
func (f *Fifo[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := f.tail; i < f.head; i++ {
			if !yield(f.slots[i%len(f.slots)]) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the stored elements in FIFO order.
func (f *Fifo[T]) ToSlice() []T {
	out := make([]T, f.Len())
	f.readAt(f.tail, out)
	return out
}

// Begin returns a cursor at the oldest element.
func (f *Fifo[T]) Begin() Cursor[T] {
	return Cursor[T]{slots: f.slots, index: f.tail}
}

// End returns a cursor one past the newest element.
func (f *Fifo[T]) End() Cursor[T] {
	return Cursor[T]{slots: f.slots, index: f.head}
}

// String returns a short debug form including both logical counters.
func (f *Fifo[T]) String() string {
	return fmt.Sprintf("ring.Fifo{len=%d cap=%d tail=%d head=%d}", f.Len(), len(f.slots), f.tail, f.head)
}

// writeAt copies src into the store starting at logical index at. The
// copy splits at the physical end: whatever does not fit before it
// continues from slot zero. Callers have checked the free space, so the
// wrapped segment never reaches unconsumed elements.
func (f *Fifo[T]) writeAt(at int, src []T) {
	n1 := copy(f.slots[at%len(f.slots):], src)
	copy(f.slots, src[n1:])
}

// readAt copies stored elements into dst starting at logical index at,
// splitting at the physical end like writeAt. Callers have checked that
// len(dst) elements are stored.
func (f *Fifo[T]) readAt(at int, dst []T) {
	n1 := copy(dst, f.slots[at%len(f.slots):])
	copy(dst[n1:], f.slots)
}

// advanceTail moves the tail k elements forward and applies the rebase
// rule: once the tail passes the capacity, both counters drop by one
// capacity together, so the tail rests in [0, Cap) again. A single
// subtraction always suffices because k never exceeds the stored count.
func (f *Fifo[T]) advanceTail(k int) {
	f.tail += k
	if f.tail >= len(f.slots) {
		f.tail -= len(f.slots)
		f.head -= len(f.slots)
	}
}
