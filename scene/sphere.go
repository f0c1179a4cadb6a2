// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/texpaint"
)

// Sphere is an analytic sphere with an equirectangular UV mapping:
// u wraps around the Y axis (u=0.5 at +X, u=0.25 at +Z) and v runs from
// the north pole (v=0) to the south pole (v=1).
type Sphere struct {
	Center texpaint.Vec3
	Radius float32
}

// Intersect returns the nearest hit in front of the ray origin.
func (s Sphere) Intersect(ray texpaint.Ray) (texpaint.Hit, bool) {
	dir := ray.Direction.Normalize()
	oc := ray.Origin.Sub(s.Center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return texpaint.Hit{}, false
	}

	sq := math32.Sqrt(disc)
	t := -b - sq
	if t < epsilon {
		// Origin inside the sphere: take the far side.
		t = -b + sq
		if t < epsilon {
			return texpaint.Hit{}, false
		}
	}

	p := ray.Origin.Add(dir.Mul(t))
	n := p.Sub(s.Center).Mul(1 / s.Radius)
	return texpaint.Hit{
		Point:    p,
		Normal:   n,
		UV:       sphereUV(n),
		Distance: t,
	}, true
}

// sphereUV maps a unit normal to equirectangular texture coordinates.
func sphereUV(n texpaint.Vec3) texpaint.Vec2 {
	u := 0.5 - math32.Atan2(n.Z, n.X)/(2*math32.Pi)
	v := 0.5 - math32.Asin(clamp(n.Y, -1, 1))/math32.Pi
	return texpaint.V2(u, v)
}

func clamp(x, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, x))
}
