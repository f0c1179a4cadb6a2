// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/texpaint"
)

// RenderTarget is a CPU-visible presentation target.
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to pixel data.
	// For RGBA format, each pixel is 4 bytes: R, G, B, A.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}

// ImageTarget mirrors the latest published surface into an *image.RGBA.
//
// Publishes that carry a dirty rectangle copy only that region, the way a
// texture upload of a sub-rectangle would. A change of surface size, or a
// publish without a dirty rectangle, copies everything.
//
// Example:
//
//	target := render.NewImageTarget()
//	c := texpaint.NewCompositor(texpaint.Collaborators{Sink: target})
//	_ = c.Attach(base)
//	img := target.Image()
type ImageTarget struct {
	img      *image.RGBA
	latest   *texpaint.Surface
	uploads  int
	uploaded int // bytes copied across all uploads
}

// NewImageTarget creates an empty target. It takes its size from the
// first published surface.
func NewImageTarget() *ImageTarget {
	return &ImageTarget{img: image.NewRGBA(image.Rectangle{})}
}

// Publish copies the whole surface.
func (t *ImageTarget) Publish(s *texpaint.Surface) {
	t.PublishDirty(s, s.Bounds())
}

// PublishDirty copies the dirty region of s.
func (t *ImageTarget) PublishDirty(s *texpaint.Surface, dirty image.Rectangle) {
	if t.img.Bounds() != s.Bounds() {
		t.img = image.NewRGBA(s.Bounds())
		dirty = s.Bounds()
	}
	t.latest = s
	t.uploads++

	dirty = dirty.Intersect(s.Bounds())
	if dirty.Empty() {
		return
	}
	t.upload(s, dirty)
}

// upload converts the rows of r into RGBA order.
func (t *ImageTarget) upload(s *texpaint.Surface, r image.Rectangle) {
	bgra := s.Format() == gputypes.TextureFormatBGRA8Unorm
	src := s.Pix()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		so := y*s.Stride() + r.Min.X*4
		do := t.img.PixOffset(r.Min.X, y)
		n := r.Dx() * 4
		row := t.img.Pix[do : do+n]
		copy(row, src[so:so+n])
		if bgra {
			for i := 0; i < n; i += 4 {
				row[i], row[i+2] = row[i+2], row[i]
			}
		}
		t.uploaded += n
	}
}

// Image returns the mirrored image. It shares memory with the target and
// changes on the next publish.
func (t *ImageTarget) Image() *image.RGBA {
	return t.img
}

// Latest returns the most recently published surface, or nil.
func (t *ImageTarget) Latest() *texpaint.Surface {
	return t.latest
}

// Uploads returns the number of publishes received.
func (t *ImageTarget) Uploads() int {
	return t.uploads
}

// UploadedBytes returns the number of pixel bytes copied so far.
func (t *ImageTarget) UploadedBytes() int {
	return t.uploaded
}

// Width returns the target width in pixels.
func (t *ImageTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *ImageTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *ImageTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *ImageTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *ImageTarget) Stride() int {
	return t.img.Stride
}

// Ensure ImageTarget implements RenderTarget and texpaint.DirtyPublisher.
var (
	_ RenderTarget            = (*ImageTarget)(nil)
	_ texpaint.DirtyPublisher = (*ImageTarget)(nil)
)
