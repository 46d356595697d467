// Package ring
// Author: momentics <momentics@gmail.com>
//
// Circular FIFO queue over a fixed backing store, for environments
// without dynamic allocation. Wraparound is handled by modular index
// arithmetic instead of shifting data; bulk transfers split into at most
// two contiguous copies at the physical end of the store.
//
// The head and tail are monotonic logical counters. Pushing never
// reduces the head; only advancing the tail past the capacity rebases
// both counters together. This keeps the size an exact difference and
// both counters bounded without per-operation modulo on each end.
//
// All operations are single-threaded and synchronous.
// See fifo.go and cursor.go for implementation details.
package ring
