// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texpaint

import (
	"image"
	"math"

	"github.com/gogpu/texpaint/internal/blend"
)

// Stamp composites one circular brush stamp centred at uv into dst,
// reading pixels only from src. It returns the clamped pixel rectangle
// the stamp may have touched.
//
// dst and src must be distinct surfaces of the same shape; dst is
// expected to hold a copy of src outside the stamp. UV (0, 0) is the
// top-left texel corner and uv is clamped to [0, 1]² first. Pixels whose
// centre lies farther than b.Radius from uv are left untouched, and every
// painted pixel becomes fully opaque. A zero effective opacity is a no-op.
func Stamp(dst, src *Surface, uv Vec2, b Brush) (image.Rectangle, error) {
	if err := b.Validate(); err != nil {
		return image.Rectangle{}, err
	}
	if dst == nil || !dst.sameShape(src) {
		return image.Rectangle{}, ErrSizeMismatch
	}
	if dst == src {
		return image.Rectangle{}, ErrAliasedSurface
	}

	strength := b.strength()
	if strength <= 0 {
		return image.Rectangle{}, nil
	}

	st := newStamper(dst, src, uv, b, strength)
	for y := st.rect.Min.Y; y < st.rect.Max.Y; y++ {
		for x := st.rect.Min.X; x < st.rect.Max.X; x++ {
			st.pixel(x, y)
		}
	}
	return st.rect, nil
}

// Stamped returns a new surface holding s with one stamp applied.
// s itself is not modified.
func (s *Surface) Stamped(uv Vec2, b Brush) (*Surface, error) {
	out := s.Clone()
	if _, err := Stamp(out, s, uv, b); err != nil {
		return nil, err
	}
	return out, nil
}

// stamper holds the per-stamp constants. Each pixel is computed from src
// alone, so the result does not depend on visiting order.
type stamper struct {
	dst, src   *Surface
	u, v       float64
	radius     float64
	falloff    float64
	strength   float64
	r, g, b    uint8
	ri, gi, bi int
	rect       image.Rectangle
}

func newStamper(dst, src *Surface, uv Vec2, b Brush, strength float64) *stamper {
	u := clampUnit(float64(uv.X))
	v := clampUnit(float64(uv.Y))
	w, h := float64(src.width), float64(src.height)

	// Bounds are clamped in UV space so huge radii never overflow int.
	rect := image.Rect(
		int(math.Floor(clampUnit(u-b.Radius)*w)),
		int(math.Floor(clampUnit(v-b.Radius)*h)),
		int(math.Ceil(clampUnit(u+b.Radius)*w)),
		int(math.Ceil(clampUnit(v+b.Radius)*h)),
	).Intersect(src.Bounds())

	ri, gi, bi := src.channels()
	return &stamper{
		dst:      dst,
		src:      src,
		u:        u,
		v:        v,
		radius:   b.Radius,
		falloff:  b.Falloff,
		strength: strength,
		r:        b.Color.R,
		g:        b.Color.G,
		b:        b.Color.B,
		ri:       ri,
		gi:       gi,
		bi:       bi,
		rect:     rect,
	}
}

// distance returns the UV-space distance from the centre of pixel (x, y)
// to the stamp centre.
func (st *stamper) distance(x, y int) float64 {
	du := (float64(x)+0.5)/float64(st.src.width) - st.u
	dv := (float64(y)+0.5)/float64(st.src.height) - st.v
	return math.Hypot(du, dv)
}

func (st *stamper) pixel(x, y int) {
	t := st.strength * blend.Coverage(st.distance(x, y), st.radius, st.falloff)
	if t <= 0 {
		return
	}

	i := y*st.src.Stride() + x*bytesPerPixel
	s := st.src.pix[i : i+bytesPerPixel : i+bytesPerPixel]
	d := st.dst.pix[i : i+bytesPerPixel : i+bytesPerPixel]
	d[st.ri] = blend.Lerp(s[st.ri], st.r, t)
	d[st.gi] = blend.Lerp(s[st.gi], st.g, t)
	d[st.bi] = blend.Lerp(s[st.bi], st.b, t)
	d[3] = 255
}
