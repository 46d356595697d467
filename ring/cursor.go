// File: ring/cursor.go
// Author: momentics <momentics@gmail.com>
//
// Explicit modular cursor over a Fifo's backing store.

package ring

// Cursor addresses a Fifo element by its unbounded logical index. The
// index reduces onto a physical slot only at dereference time, so a
// cursor can run past the capacity without losing its place in the
// logical [tail, head) range.
//
// Cursors are live views, not snapshots: Value reads whatever the slot
// currently holds. Any operation that advances the tail (Pop, PopSlice,
// Drain, Clear) may rebase the queue's counters and invalidates
// outstanding cursors. Valid cursors never carry a negative index; the
// tail never rests below zero.
type Cursor[T any] struct {
	slots []T
	index int
}

// Index returns the unbounded logical index.
func (c Cursor[T]) Index() int {
	return c.index
}

// Value returns the element at the cursor's physical slot, which is
// slots[Index() mod Cap].
func (c Cursor[T]) Value() T {
	return c.slots[c.index%len(c.slots)]
}

// Next returns a copy of the cursor advanced by one element.
func (c Cursor[T]) Next() Cursor[T] {
	return Cursor[T]{slots: c.slots, index: c.index + 1}
}

// Add returns a copy of the cursor advanced by n elements. Stepping
// before the queue's Begin leaves the logical range and is not valid.
func (c Cursor[T]) Add(n int) Cursor[T] {
	return Cursor[T]{slots: c.slots, index: c.index + n}
}

// Equal reports whether both cursors address the same logical index.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.index == other.index
}
