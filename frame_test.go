// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texpaint

import "testing"

func TestFrameContext(t *testing.T) {
	fc := NewFrameContext(42)
	if fc.Index() != 42 {
		t.Errorf("Index() = %d, want 42", fc.Index())
	}
	if fc.Resolved() || fc.Painting() {
		t.Error("new frame context should be unresolved and not painting")
	}
	fc.SetPainting(true)
	if !fc.Resolved() || !fc.Painting() {
		t.Error("SetPainting(true) not reflected")
	}
	fc.SetPainting(false)
	if !fc.Resolved() || fc.Painting() {
		t.Error("SetPainting(false) not reflected")
	}
}

func TestLoop_CompositorRunsFirst(t *testing.T) {
	h := newHarness(t, Collaborators{})

	var order []string
	var sawResolved, sawPainting []bool
	camera := SystemFunc(func(fc *FrameContext) {
		order = append(order, "camera")
		sawResolved = append(sawResolved, fc.Resolved())
		sawPainting = append(sawPainting, fc.Painting())
	})
	hud := SystemFunc(func(*FrameContext) { order = append(order, "hud") })

	loop := NewLoop(h.c, camera)
	loop.Add(hud)

	res := loop.Tick()
	if !res.Gesture.Active {
		t.Fatalf("first tick gesture = %+v, want active", res.Gesture)
	}
	h.pointer.down = false
	res = loop.Tick()
	if res.Gesture.Active {
		t.Fatal("second tick gesture should be idle")
	}

	if want := []string{"camera", "hud", "camera", "hud"}; len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	} else {
		for i := range want {
			if order[i] != want[i] {
				t.Fatalf("order = %v, want %v", order, want)
			}
		}
	}
	for i, r := range sawResolved {
		if !r {
			t.Errorf("tick %d: painting flag unresolved when camera ran", i)
		}
	}
	if !sawPainting[0] || sawPainting[1] {
		t.Errorf("camera saw painting = %v, want [true false]", sawPainting)
	}
	if loop.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", loop.Frames())
	}
	if res.Frame != 1 {
		t.Errorf("second result Frame = %d, want 1", res.Frame)
	}
}

// TestLoop_ExclusiveSystemSuspendsPainting models a camera drag that owns
// the pointer: while it is active the compositor declines to paint.
func TestLoop_ExclusiveSystemSuspendsPainting(t *testing.T) {
	drag := &dragState{}
	h := newHarness(t, Collaborators{Exclusive: drag})
	loop := NewLoop(h.c, drag)

	drag.active = true
	if res := loop.Tick(); res.Gesture.Reason != ReasonExclusive {
		t.Errorf("Reason = %v, want exclusive", res.Gesture.Reason)
	}
	drag.active = false
	if res := loop.Tick(); !res.Gesture.Active {
		t.Errorf("gesture = %+v, want active", res.Gesture)
	}
	if drag.suspended != 1 {
		t.Errorf("drag suspended %d times, want 1", drag.suspended)
	}
}

type dragState struct {
	active    bool
	suspended int
}

func (d *dragState) ExclusiveInputActive() bool { return d.active }

func (d *dragState) Update(fc *FrameContext) {
	if fc.Painting() {
		d.suspended++
	}
}
