// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texpaint

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"github.com/gogpu/gputypes"
)

// CloneTexture builds a paint surface from a model's base texture.
//
// The base image is copied, never referenced, so the source asset is not
// mutated by painting. A non-zero resolution resamples the copy with
// bilinear filtering; otherwise the surface matches the base texture.
func CloneTexture(base image.Image, format gputypes.TextureFormat, resolution image.Point) (*Surface, error) {
	b := base.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &AllocationError{Width: b.Dx(), Height: b.Dy(), Format: format, Err: ErrInvalidDimensions}
	}
	if !SupportedFormat(format) {
		return nil, &AllocationError{Width: b.Dx(), Height: b.Dy(), Format: format, Err: ErrUnsupportedFormat}
	}

	var rgba *image.RGBA
	switch {
	case resolution == (image.Point{}) || resolution == b.Size():
		rgba = clone.AsRGBA(base)
	case resolution.X <= 0 || resolution.Y <= 0:
		return nil, &AllocationError{Width: resolution.X, Height: resolution.Y, Format: format, Err: ErrInvalidDimensions}
	default:
		rgba = transform.Resize(base, resolution.X, resolution.Y, transform.Linear)
	}
	return NewSurfaceFromRGBA(rgba, format)
}

// BlankSurface allocates a surface filled with c, fully opaque.
func BlankSurface(width, height int, format gputypes.TextureFormat, c color.Color) (*Surface, error) {
	s, err := NewSurface(width, height, format)
	if err != nil {
		return nil, err
	}
	s.Fill(c)
	for i := 3; i < len(s.pix); i += bytesPerPixel {
		s.pix[i] = 255
	}
	return s, nil
}

// Attach makes base the texture being painted, replacing any previous
// surface. A nil base is handled by the missing-texture policy.
//
// On failure the compositor is left without a surface and declines to
// paint until the next successful Attach. The new surface is published
// immediately so the model shows its paintable copy.
func (c *Compositor) Attach(base image.Image) error {
	c.surface = nil
	log := Logger()

	var (
		s   *Surface
		err error
	)
	if base == nil {
		if c.opts.missing == MissingTextureDecline {
			log.Warn("texpaint: model has no base texture, painting disabled")
			return ErrNoBaseTexture
		}
		s, err = BlankSurface(c.opts.blankSize.X, c.opts.blankSize.Y, c.opts.format, c.opts.blankColor)
		if err == nil {
			log.Warn("texpaint: model has no base texture, using blank surface",
				"width", s.Width(), "height", s.Height())
		}
	} else {
		s, err = CloneTexture(base, c.opts.format, c.opts.resolution)
	}
	if err != nil {
		log.Warn("texpaint: paint surface setup failed", "err", err)
		return err
	}

	c.surface = s
	log.Info("texpaint: paint surface attached", "width", s.Width(), "height", s.Height(), "format", s.Format())
	c.publish(s, s.Bounds())
	return nil
}

// Detach discards the paint surface. Painting is declined until the next
// Attach.
func (c *Compositor) Detach() {
	if c.surface != nil {
		Logger().Info("texpaint: paint surface detached")
	}
	c.surface = nil
}
