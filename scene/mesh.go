// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/texpaint"
)

// ErrInvalidMesh is returned by NewMesh for inconsistent mesh data.
var ErrInvalidMesh = errors.New("scene: invalid mesh")

// Vertex is a mesh vertex with a texture coordinate.
type Vertex struct {
	Position texpaint.Vec3
	UV       texpaint.Vec2
}

// Mesh is an indexed triangle mesh. Triangles wind counter-clockwise when
// seen from their front side; the hit normal is the geometric face normal,
// so back faces report a normal pointing away from the viewer.
type Mesh struct {
	vertices []Vertex
	indices  []int
}

// NewMesh validates and wraps mesh data. indices holds three vertex
// indices per triangle.
func NewMesh(vertices []Vertex, indices []int) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices is not a multiple of 3", ErrInvalidMesh, len(indices))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= len(vertices) {
			return nil, fmt.Errorf("%w: index %d at %d out of range", ErrInvalidMesh, idx, i)
		}
	}
	return &Mesh{vertices: vertices, indices: indices}, nil
}

// NewQuad returns a width × height rectangle centred at center, facing +Z.
// UV (0, 0) is its top-left corner.
func NewQuad(center texpaint.Vec3, width, height float32) *Mesh {
	hw, hh := width/2, height/2
	vertices := []Vertex{
		{Position: center.Add(texpaint.V3(-hw, hh, 0)), UV: texpaint.V2(0, 0)},
		{Position: center.Add(texpaint.V3(hw, hh, 0)), UV: texpaint.V2(1, 0)},
		{Position: center.Add(texpaint.V3(hw, -hh, 0)), UV: texpaint.V2(1, 1)},
		{Position: center.Add(texpaint.V3(-hw, -hh, 0)), UV: texpaint.V2(0, 1)},
	}
	// Counter-clockwise seen from +Z.
	return &Mesh{vertices: vertices, indices: []int{0, 3, 2, 0, 2, 1}}
}

// Triangles returns the number of triangles.
func (m *Mesh) Triangles() int {
	return len(m.indices) / 3
}

// Intersect returns the nearest triangle hit in front of the ray origin.
// Both faces are hit.
func (m *Mesh) Intersect(ray texpaint.Ray) (texpaint.Hit, bool) {
	dir := ray.Direction.Normalize()
	best := texpaint.Hit{Distance: math32.Inf(1)}
	found := false

	for i := 0; i+2 < len(m.indices); i += 3 {
		a := m.vertices[m.indices[i]]
		b := m.vertices[m.indices[i+1]]
		c := m.vertices[m.indices[i+2]]

		t, u, v, ok := intersectTriangle(ray.Origin, dir, a.Position, b.Position, c.Position)
		if !ok || t >= best.Distance {
			continue
		}
		w := 1 - u - v
		normal := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position)).Normalize()
		best = texpaint.Hit{
			Point:  ray.Origin.Add(dir.Mul(t)),
			Normal: normal,
			UV: texpaint.V2(
				w*a.UV.X+u*b.UV.X+v*c.UV.X,
				w*a.UV.Y+u*b.UV.Y+v*c.UV.Y,
			),
			Distance: t,
		}
		found = true
	}
	return best, found
}

// intersectTriangle is the Möller–Trumbore ray/triangle test. It returns
// the ray parameter and the barycentric weights of b and c.
func intersectTriangle(orig, dir, a, b, c texpaint.Vec3) (t, u, v float32, ok bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := dir.Cross(e2)
	det := e1.Dot(p)
	if math32.Abs(det) < 1e-8 {
		return 0, 0, 0, false // parallel
	}
	inv := 1 / det

	s := orig.Sub(a)
	u = s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}
	q := s.Cross(e1)
	v = dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}
	t = e2.Dot(q) * inv
	if t < epsilon {
		return 0, 0, 0, false
	}
	return t, u, v, true
}
