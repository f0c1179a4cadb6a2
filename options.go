// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texpaint

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	pool "github.com/gogpu/texpaint/internal/image"
)

// DefaultFacingThreshold is the facing ratio at or below which hits are
// rejected: roughly 60 degrees away from head-on.
const DefaultFacingThreshold = 0.5

// Default blank surface size used when a model has no base texture.
const (
	DefaultSurfaceWidth  = 1024
	DefaultSurfaceHeight = 1024
)

// UVOrigin selects where texture coordinate (0, 0) lies.
type UVOrigin uint8

const (
	// UVOriginTopLeft maps v=0 to the first pixel row (image order).
	UVOriginTopLeft UVOrigin = iota

	// UVOriginBottomLeft maps v=0 to the last pixel row, as most 3D
	// engines do. Hit UVs are flipped before stamping.
	UVOriginBottomLeft
)

// MissingTexture selects what Attach does for a model without a texture.
type MissingTexture uint8

const (
	// MissingTextureBlank paints onto an opaque default-colored surface.
	MissingTextureBlank MissingTexture = iota

	// MissingTextureDecline returns ErrNoBaseTexture and disables painting.
	MissingTextureDecline
)

// Option configures a Compositor during creation.
//
// Example:
//
//	c := texpaint.NewCompositor(collab,
//	    texpaint.WithFacingThreshold(0.6),
//	    texpaint.WithUVOrigin(texpaint.UVOriginBottomLeft),
//	)
type Option func(*options)

// options holds optional configuration for Compositor creation.
type options struct {
	facingThreshold float32
	uvOrigin        UVOrigin
	missing         MissingTexture
	blankSize       image.Point
	blankColor      color.Color
	format          gputypes.TextureFormat
	resolution      image.Point
	pool            *pool.Pool
	brush           Brush
	onBrush         func(Brush)
}

// defaultOptions returns the default compositor options.
func defaultOptions() options {
	return options{
		facingThreshold: DefaultFacingThreshold,
		uvOrigin:        UVOriginTopLeft,
		missing:         MissingTextureBlank,
		blankSize:       image.Pt(DefaultSurfaceWidth, DefaultSurfaceHeight),
		blankColor:      White,
		format:          gputypes.TextureFormatRGBA8Unorm,
		pool:            pool.Default(),
		brush:           DefaultBrush(),
	}
}

// WithFacingThreshold sets the facing ratio at or below which hits are
// rejected as grazing.
func WithFacingThreshold(threshold float32) Option {
	return func(o *options) {
		o.facingThreshold = threshold
	}
}

// WithUVOrigin sets the texture coordinate convention of the raycaster.
func WithUVOrigin(origin UVOrigin) Option {
	return func(o *options) {
		o.uvOrigin = origin
	}
}

// WithMissingTexture sets the policy for models without a base texture.
func WithMissingTexture(policy MissingTexture) Option {
	return func(o *options) {
		o.missing = policy
	}
}

// WithBlankSurface sets the size and color of the surface created for
// models without a base texture.
func WithBlankSurface(width, height int, c color.Color) Option {
	return func(o *options) {
		o.blankSize = image.Pt(width, height)
		if c != nil {
			o.blankColor = c
		}
	}
}

// WithFormat sets the pixel format of paint surfaces.
// Unsupported formats make Attach fail with an *AllocationError.
func WithFormat(format gputypes.TextureFormat) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithResolution resamples attached base textures to width × height.
// By default the surface matches the base texture resolution.
func WithResolution(width, height int) Option {
	return func(o *options) {
		o.resolution = image.Pt(width, height)
	}
}

// WithScratchPool sets the pool scratch buffers are drawn from and
// released to. Passing nil disables recycling: every stamp allocates a
// new buffer and published surfaces are never reused.
func WithScratchPool(p *pool.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithBrush sets the initial brush. Invalid brushes are ignored.
func WithBrush(b Brush) Option {
	return func(o *options) {
		if b.Validate() == nil {
			o.brush = b
		}
	}
}

// WithBrushListener registers a callback invoked after every brush change,
// for example to update a preview swatch.
func WithBrushListener(fn func(Brush)) Option {
	return func(o *options) {
		o.onBrush = fn
	}
}
