// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texpaint

import "image"

// Camera converts a screen position into a world-space view ray.
type Camera interface {
	ScreenPointToRay(screen Vec2) Ray
}

// Raycaster casts a ray against scene geometry and returns the nearest hit.
type Raycaster interface {
	Raycast(ray Ray) (Hit, bool)
}

// Pointer reports the primary pointer state for the current frame.
type Pointer interface {
	PrimaryButtonDown() bool
	Position() Vec2
}

// UICapture reports whether the pointer is over a UI control, in which
// case painting is suppressed.
type UICapture interface {
	PointerOverUI() bool
}

// ExclusiveInput reports whether a higher-priority input mode, such as a
// camera drag, owns the pointer this frame.
type ExclusiveInput interface {
	ExclusiveInputActive() bool
}

// Publisher receives every newly composited surface.
//
// The surface is read-only. A Publisher may keep a reference to the most
// recent surface only: after the next Publish the previous surface's
// memory can be reused for a later stamp.
type Publisher interface {
	Publish(s *Surface)
}

// DirtyPublisher is an optional Publisher extension that also receives
// the pixel rectangle changed since the previous publish. An empty
// rectangle means no pixel changed; a freshly attached surface reports
// its full bounds.
type DirtyPublisher interface {
	Publisher
	PublishDirty(s *Surface, dirty image.Rectangle)
}

// PublisherFunc adapts an ordinary function to the Publisher interface.
type PublisherFunc func(s *Surface)

// Publish calls f(s).
func (f PublisherFunc) Publish(s *Surface) {
	f(s)
}

// Collaborators groups the external services a Compositor consumes.
// UI and Exclusive are optional; a nil Sink means surfaces are kept but
// never presented.
type Collaborators struct {
	Camera    Camera
	Raycaster Raycaster
	Pointer   Pointer
	UI        UICapture
	Exclusive ExclusiveInput
	Sink      Publisher
}
