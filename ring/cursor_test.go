// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// cursor_test.go — Tests for the explicit modular cursor.
package ring_test

import (
	"testing"

	"github.com/momentics/fixcap/ring"
)

// TestCursor_Walk checks a Begin-to-End traversal, including indices
// past the physical capacity.
func TestCursor_Walk(t *testing.T) {
	f := ring.New[int](4)
	f.Push(-1)
	f.Push(-1)
	f.Pop()
	f.Pop()
	for i := 1; i <= 4; i++ {
		f.Push(i * 5)
	}

	want := 5
	for c := f.Begin(); !c.Equal(f.End()); c = c.Next() {
		if c.Value() != want {
			t.Fatalf("Index %d: expected %d, got %d", c.Index(), want, c.Value())
		}
		want += 5
	}
	if want != 25 {
		t.Fatalf("Walk covered %d elements, expected 4", (want-5)/5)
	}
	// The last two logical indices exceed the capacity before reduction.
	if f.End().Index() != 6 {
		t.Fatalf("End index: expected 6, got %d", f.End().Index())
	}
}

// TestCursor_Add checks multi-step advancement with value semantics.
func TestCursor_Add(t *testing.T) {
	f := ring.New[int](4)
	for i := 0; i < 4; i++ {
		f.Push(i * 2)
	}
	begin := f.Begin()
	third := begin.Add(3)
	if third.Value() != 6 {
		t.Fatalf("Add(3): expected 6, got %d", third.Value())
	}
	// The original cursor is unchanged.
	if begin.Value() != 0 || begin.Index() != 0 {
		t.Fatalf("Add mutated the original: index=%d value=%d", begin.Index(), begin.Value())
	}
	if !third.Next().Equal(f.End()) {
		t.Fatal("Add(3).Next() should reach End")
	}
}

// TestCursor_LiveView checks that a cursor observes later writes rather
// than snapshotting.
func TestCursor_LiveView(t *testing.T) {
	f := ring.New[int](3)
	f.Push(1)
	c := f.Begin()
	if c.Value() != 1 {
		t.Fatalf("Expected 1, got %d", c.Value())
	}
	// The popped slot keeps its value until the head wraps onto it.
	f.Pop()
	f.Push(2)
	f.Push(3)
	if c.Value() != 1 {
		t.Fatalf("Slot 0 rewritten early: %d", c.Value())
	}
	// One more push wraps the head back onto slot 0; the held cursor
	// observes the overwrite.
	f.Push(4)
	if c.Value() != 4 {
		t.Fatalf("Expected live view of 4, got %d", c.Value())
	}
}

// TestCursor_EndIsPureView checks that taking End does not consume
// elements.
func TestCursor_EndIsPureView(t *testing.T) {
	f := ring.New[int](3)
	f.Push(1)
	f.Push(2)
	_ = f.End()
	_ = f.End()
	if f.Len() != 2 {
		t.Fatalf("End consumed elements: len=%d", f.Len())
	}
	got, err := f.Pop()
	if err != nil || got != 1 {
		t.Fatalf("Expected 1, got %d (err=%v)", got, err)
	}
}
