// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the fixcap library.

package api

import "fmt"

// Sentinel errors, one per failure kind. Every error produced by the
// containers unwraps to exactly one of these, so callers branch on the
// kind with errors.Is. All of them signal caller bugs, not recoverable
// runtime conditions: the containers never retry, truncate, or overwrite
// on a failed operation.
var (
	ErrOutOfRange        = fmt.Errorf("index out of range")
	ErrEmpty             = fmt.Errorf("container is empty")
	ErrFull              = fmt.Errorf("container is full")
	ErrInsufficientSpace = fmt.Errorf("insufficient free space")
	ErrInsufficientItems = fmt.Errorf("insufficient items available")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOutOfRange
	ErrCodeEmpty
	ErrCodeFull
	ErrCodeInsufficientSpace
	ErrCodeInsufficientItems
)

// String returns the mnemonic name of the code.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeOutOfRange:
		return "out_of_range"
	case ErrCodeEmpty:
		return "empty"
	case ErrCodeFull:
		return "full"
	case ErrCodeInsufficientSpace:
		return "insufficient_space"
	case ErrCodeInsufficientItems:
		return "insufficient_items"
	default:
		return "unknown"
	}
}

// sentinel maps the code to its sentinel error.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeOutOfRange:
		return ErrOutOfRange
	case ErrCodeEmpty:
		return ErrEmpty
	case ErrCodeFull:
		return ErrFull
	case ErrCodeInsufficientSpace:
		return ErrInsufficientSpace
	case ErrCodeInsufficientItems:
		return ErrInsufficientItems
	default:
		return nil
	}
}

// Error represents a structured container error with code and bounds
// context. Want carries the requested index or element count, Have the
// bound it was checked against. Two plain ints keep construction
// allocation-free on hot paths.
type Error struct {
	Code ErrorCode
	Op   string // failing operation, e.g. "ring.Push"
	Want int
	Have int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v (want %d, have %d)", e.Op, e.Code.sentinel(), e.Want, e.Have)
}

// Unwrap maps the error onto its sentinel for errors.Is.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, op string, want, have int) *Error {
	return &Error{
		Code: code,
		Op:   op,
		Want: want,
		Have: have,
	}
}
