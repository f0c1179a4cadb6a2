// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texpaint

// FrameContext carries frame-scoped state shared between systems during
// one tick. The compositor publishes the painting flag into it before any
// other system of the same tick runs.
type FrameContext struct {
	index    uint64
	painting bool
	resolved bool
}

// NewFrameContext returns a context for frame index with the painting
// flag not yet resolved.
func NewFrameContext(index uint64) *FrameContext {
	return &FrameContext{index: index}
}

// Index returns the frame number.
func (fc *FrameContext) Index() uint64 {
	return fc.index
}

// SetPainting publishes whether a paint gesture is active this frame.
func (fc *FrameContext) SetPainting(painting bool) {
	fc.painting = painting
	fc.resolved = true
}

// Painting reports whether a paint gesture is active this frame.
// Systems such as camera controls suspend pointer handling while it is true.
func (fc *FrameContext) Painting() bool {
	return fc.painting
}

// Resolved reports whether the painting flag has been published yet.
func (fc *FrameContext) Resolved() bool {
	return fc.resolved
}

// System is updated once per tick after the compositor.
type System interface {
	Update(fc *FrameContext)
}

// SystemFunc adapts an ordinary function to the System interface.
type SystemFunc func(fc *FrameContext)

// Update calls f(fc).
func (f SystemFunc) Update(fc *FrameContext) {
	f(fc)
}

// Loop drives a compositor and its dependent systems in a fixed order:
// the compositor first, then systems in registration order.
//
// Loop is not safe for concurrent use.
type Loop struct {
	compositor *Compositor
	systems    []System
	next       uint64
}

// NewLoop creates a loop around c.
func NewLoop(c *Compositor, systems ...System) *Loop {
	return &Loop{compositor: c, systems: systems}
}

// Add registers a system to run after the compositor each tick.
func (l *Loop) Add(s System) {
	l.systems = append(l.systems, s)
}

// Tick runs one frame and returns the compositor's result.
func (l *Loop) Tick() FrameResult {
	fc := NewFrameContext(l.next)
	l.next++

	res := l.compositor.Update(fc)
	for _, s := range l.systems {
		s.Update(fc)
	}
	return res
}

// Frames returns the number of ticks run so far.
func (l *Loop) Frames() uint64 {
	return l.next
}
