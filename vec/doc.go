// Package vec
// Author: momentics <momentics@gmail.com>
//
// Size-tracking bounded vector for environments without dynamic allocation.
// A Vec presents a variable logical length over a backing store whose
// capacity is fixed at construction; no operation allocates after that.
// All operations are single-threaded and synchronous.
// See vec.go for implementation details.
package vec
