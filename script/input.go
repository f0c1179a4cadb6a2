// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package script

import "github.com/gogpu/texpaint"

// step is one expanded input frame.
type step struct {
	down      bool
	pos       texpaint.Vec2
	overUI    bool
	exclusive bool
	brush     *BrushSpec
}

// expand turns frames into one step per replayed frame. Repeat 0 counts
// as 1. A brush change applies to the first step of its frame only.
func expand(frames []Frame) []step {
	var steps []step
	for _, f := range frames {
		n := max(f.Repeat, 1)
		from := texpaint.V2(f.X, f.Y)
		to := from
		if len(f.To) == 2 {
			to = texpaint.V2(f.To[0], f.To[1])
		}
		for i := 0; i < n; i++ {
			t := float32(0)
			if n > 1 {
				t = float32(i) / float32(n-1)
			}
			st := step{
				down:      f.Down,
				pos:       texpaint.V2(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t),
				overUI:    f.OverUI,
				exclusive: f.Exclusive,
			}
			if i == 0 {
				st.brush = f.Brush
			}
			steps = append(steps, st)
		}
	}
	return steps
}

// Input serves scripted pointer, UI capture and exclusive input state.
type Input struct {
	cur step
}

// PrimaryButtonDown implements texpaint.Pointer.
func (in *Input) PrimaryButtonDown() bool { return in.cur.down }

// Position implements texpaint.Pointer.
func (in *Input) Position() texpaint.Vec2 { return in.cur.pos }

// PointerOverUI implements texpaint.UICapture.
func (in *Input) PointerOverUI() bool { return in.cur.overUI }

// ExclusiveInputActive implements texpaint.ExclusiveInput.
func (in *Input) ExclusiveInputActive() bool { return in.cur.exclusive }

var (
	_ texpaint.Pointer        = (*Input)(nil)
	_ texpaint.UICapture      = (*Input)(nil)
	_ texpaint.ExclusiveInput = (*Input)(nil)
)
