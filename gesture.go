// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texpaint

import (
	"fmt"
	"image"
)

// Reason explains the outcome of gesture resolution for one frame.
type Reason uint8

const (
	// ReasonIdle means the primary button is up.
	ReasonIdle Reason = iota

	// ReasonOverUI means the pointer is over a UI control.
	ReasonOverUI

	// ReasonExclusive means another input mode owns the pointer.
	ReasonExclusive

	// ReasonNoSurface means no paint surface is attached.
	ReasonNoSurface

	// ReasonMiss means the view ray hit nothing.
	ReasonMiss

	// ReasonGrazing means the hit surface faces away from the viewer or is
	// hit at too shallow an angle.
	ReasonGrazing

	// ReasonPainted means the gesture is active and a stamp is applied.
	ReasonPainted

	reasonCount
)

// String returns a human-readable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonIdle:
		return "idle"
	case ReasonOverUI:
		return "over-ui"
	case ReasonExclusive:
		return "exclusive"
	case ReasonNoSurface:
		return "no-surface"
	case ReasonMiss:
		return "miss"
	case ReasonGrazing:
		return "grazing"
	case ReasonPainted:
		return "painted"
	default:
		return fmt.Sprintf("Reason(%d)", r)
	}
}

// Gesture is the per-frame paint gesture. UV is meaningful only when
// Active is true; Facing is set once a hit was found.
type Gesture struct {
	Active bool
	UV     Vec2
	Facing float32
	Reason Reason
}

// FrameResult describes what one compositor update did.
type FrameResult struct {
	Frame   uint64
	Gesture Gesture

	// Dirty is the pixel rectangle the stamp touched. Empty when nothing
	// was painted.
	Dirty image.Rectangle

	// Err is set when an active gesture could not be composited.
	Err error
}

// Stats counts compositor activity since creation.
type Stats struct {
	Frames   uint64
	Stamps   uint64
	outcomes [reasonCount]uint64
}

// Count returns how many frames resolved with reason r.
func (s Stats) Count(r Reason) uint64 {
	if r >= reasonCount {
		return 0
	}
	return s.outcomes[r]
}
