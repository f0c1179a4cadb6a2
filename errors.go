// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texpaint

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// Common errors for surface and brush operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("texpaint: invalid surface dimensions")

	// ErrUnsupportedFormat is returned when a surface format is not a
	// 4-channel 8-bit format.
	ErrUnsupportedFormat = errors.New("texpaint: unsupported surface format")

	// ErrNoBaseTexture is returned by Attach when the model has no texture
	// and the compositor is configured with MissingTextureDecline.
	ErrNoBaseTexture = errors.New("texpaint: model has no base texture")

	// ErrInvalidBrush is returned when a brush has a non-positive radius or
	// an opacity or falloff outside [0, 1].
	ErrInvalidBrush = errors.New("texpaint: invalid brush")

	// ErrSizeMismatch is returned when stamp source and target differ in
	// dimensions or format.
	ErrSizeMismatch = errors.New("texpaint: surface size mismatch")

	// ErrAliasedSurface is returned when a stamp would read and write the
	// same surface.
	ErrAliasedSurface = errors.New("texpaint: stamp source and target are the same surface")
)

// AllocationError reports that a paint surface could not be created.
// The model that requested painting receives no surface.
type AllocationError struct {
	Width  int
	Height int
	Format gputypes.TextureFormat
	Err    error
}

// Error implements the error interface.
func (e *AllocationError) Error() string {
	return fmt.Sprintf("texpaint: allocate %dx%d surface (format %v): %v", e.Width, e.Height, e.Format, e.Err)
}

// Unwrap returns the underlying cause so errors.Is matches the sentinels.
func (e *AllocationError) Unwrap() error {
	return e.Err
}
