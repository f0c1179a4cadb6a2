// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texpaint

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/gputypes"
)

// bytesPerPixel is fixed: every supported format is 4-channel 8-bit.
const bytesPerPixel = 4

// Surface is the paint surface: a fixed-size 4-channel pixel buffer that
// accumulates brush stamps.
//
// A Surface handed to a Publisher is a published snapshot and must be
// treated as read-only. The compositor never writes into a surface after
// publishing it; new stamps go into a fresh scratch surface.
type Surface struct {
	width  int
	height int
	format gputypes.TextureFormat
	pix    []uint8
}

// SupportedFormat reports whether a surface can be allocated in format f.
func SupportedFormat(f gputypes.TextureFormat) bool {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return true
	default:
		return false
	}
}

// NewSurface allocates a zeroed surface.
// It returns an *AllocationError when the dimensions are non-positive or
// the format is not supported.
func NewSurface(width, height int, format gputypes.TextureFormat) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, &AllocationError{Width: width, Height: height, Format: format, Err: ErrInvalidDimensions}
	}
	if !SupportedFormat(format) {
		return nil, &AllocationError{Width: width, Height: height, Format: format, Err: ErrUnsupportedFormat}
	}
	return &Surface{
		width:  width,
		height: height,
		format: format,
		pix:    make([]uint8, width*height*bytesPerPixel),
	}, nil
}

// newSurfaceWithPix wraps an existing pixel slice. The caller guarantees
// len(pix) == width*height*4 and a supported format.
func newSurfaceWithPix(width, height int, format gputypes.TextureFormat, pix []uint8) *Surface {
	return &Surface{width: width, height: height, format: format, pix: pix}
}

// NewSurfaceFromRGBA copies img into a new surface of the given format.
func NewSurfaceFromRGBA(img *image.RGBA, format gputypes.TextureFormat) (*Surface, error) {
	b := img.Bounds()
	s, err := NewSurface(b.Dx(), b.Dy(), format)
	if err != nil {
		return nil, err
	}
	ri, gi, bi := s.channels()
	for y := 0; y < s.height; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		dst := s.pix[y*s.Stride():]
		for x := 0; x < s.width; x++ {
			i := x * bytesPerPixel
			dst[i+ri] = src[i+0]
			dst[i+gi] = src[i+1]
			dst[i+bi] = src[i+2]
			dst[i+3] = src[i+3]
		}
	}
	return s, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Format returns the pixel format of the surface.
func (s *Surface) Format() gputypes.TextureFormat {
	return s.format
}

// Stride returns the number of bytes per row.
func (s *Surface) Stride() int {
	return s.width * bytesPerPixel
}

// Pix returns the raw pixel data in the surface format's channel order.
// Uploaders use it directly; callers must not modify a published surface.
func (s *Surface) Pix() []uint8 {
	return s.pix
}

// channels returns the byte offsets of red, green and blue in a pixel.
func (s *Surface) channels() (r, g, b int) {
	if s.format == gputypes.TextureFormatBGRA8Unorm {
		return 2, 1, 0
	}
	return 0, 1, 2
}

// RGBAAt returns the pixel at (x, y). Out of range coordinates return
// transparent black.
func (s *Surface) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.RGBA{}
	}
	i := y*s.Stride() + x*bytesPerPixel
	ri, gi, bi := s.channels()
	return color.RGBA{R: s.pix[i+ri], G: s.pix[i+gi], B: s.pix[i+bi], A: s.pix[i+3]}
}

// setRGBA writes one pixel. Out of range coordinates are ignored.
func (s *Surface) setRGBA(x, y int, c color.RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.Stride() + x*bytesPerPixel
	ri, gi, bi := s.channels()
	s.pix[i+ri] = c.R
	s.pix[i+gi] = c.G
	s.pix[i+bi] = c.B
	s.pix[i+3] = c.A
}

// Fill sets every pixel to c. It is meant for surfaces that have not been
// published yet.
func (s *Surface) Fill(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	ri, gi, bi := s.channels()
	var px [bytesPerPixel]uint8
	px[ri], px[gi], px[bi], px[3] = rgba.R, rgba.G, rgba.B, rgba.A
	for i := 0; i < len(s.pix); i += bytesPerPixel {
		copy(s.pix[i:i+bytesPerPixel], px[:])
	}
}

// Sample returns the pixel nearest to uv, clamped to the surface.
// UV (0, 0) is the top-left corner.
func (s *Surface) Sample(uv Vec2) color.RGBA {
	x := int(clampUnit(float64(uv.X)) * float64(s.width))
	y := int(clampUnit(float64(uv.Y)) * float64(s.height))
	return s.RGBAAt(min(x, s.width-1), min(y, s.height-1))
}

// Clone returns an independent copy of the surface.
func (s *Surface) Clone() *Surface {
	pix := make([]uint8, len(s.pix))
	copy(pix, s.pix)
	return newSurfaceWithPix(s.width, s.height, s.format, pix)
}

// CopyFrom overwrites s with the contents of src.
// Both surfaces must have identical dimensions and format.
func (s *Surface) CopyFrom(src *Surface) error {
	if !s.sameShape(src) {
		return ErrSizeMismatch
	}
	copy(s.pix, src.pix)
	return nil
}

// Equal reports whether two surfaces have the same shape and identical bytes.
func (s *Surface) Equal(other *Surface) bool {
	return s.sameShape(other) && bytes.Equal(s.pix, other.pix)
}

func (s *Surface) sameShape(o *Surface) bool {
	return o != nil && s.width == o.width && s.height == o.height && s.format == o.format
}

// ToImage converts the surface to a new *image.RGBA.
func (s *Surface) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	if s.format == gputypes.TextureFormatRGBA8Unorm {
		copy(img.Pix, s.pix)
		return img
	}
	for i := 0; i < len(s.pix); i += bytesPerPixel {
		img.Pix[i+0] = s.pix[i+2]
		img.Pix[i+1] = s.pix[i+1]
		img.Pix[i+2] = s.pix[i+0]
		img.Pix[i+3] = s.pix[i+3]
	}
	return img
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.ToImage())
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// Ensure Surface implements image.Image.
var _ image.Image = (*Surface)(nil)
