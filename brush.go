// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texpaint

import (
	"fmt"
	"image/color"
	"math"
)

// Brush is the brush state read by the compositor once per frame.
//
// Radius is a fraction of the texture size in UV space. Opacity is the
// interpolation factor towards Color. Color's alpha is not used: painted
// pixels are always opaque.
// Falloff is the width of the soft edge band as a fraction of Radius:
// 0 gives a hard edge, 0.1 fades over the outermost tenth.
type Brush struct {
	Color   color.NRGBA
	Radius  float64
	Opacity float64
	Falloff float64
}

// DefaultBrush returns a red, fully opaque brush of radius 0.1 with a
// soft edge over the outermost 10% of the radius.
func DefaultBrush() Brush {
	return Brush{
		Color:   Red,
		Radius:  0.1,
		Opacity: 1,
		Falloff: 0.1,
	}
}

// Validate reports whether the brush can be stamped.
func (b Brush) Validate() error {
	switch {
	case !(b.Radius > 0) || math.IsInf(b.Radius, 1):
		return fmt.Errorf("%w: radius %v must be positive", ErrInvalidBrush, b.Radius)
	case !(b.Opacity >= 0 && b.Opacity <= 1):
		return fmt.Errorf("%w: opacity %v outside [0, 1]", ErrInvalidBrush, b.Opacity)
	case !(b.Falloff >= 0 && b.Falloff <= 1):
		return fmt.Errorf("%w: falloff %v outside [0, 1]", ErrInvalidBrush, b.Falloff)
	}
	return nil
}

// strength is the blend factor at full coverage.
func (b Brush) strength() float64 {
	return b.Opacity
}
