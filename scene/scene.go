// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "github.com/gogpu/texpaint"

// epsilon rejects self-intersections at the ray origin.
const epsilon = 1e-4

// Object is anything a ray can hit.
type Object interface {
	Intersect(ray texpaint.Ray) (texpaint.Hit, bool)
}

// Scene is a flat list of objects. It implements texpaint.Raycaster by
// returning the nearest hit across all objects.
type Scene struct {
	objects []Object
}

// New creates a scene holding objects.
func New(objects ...Object) *Scene {
	return &Scene{objects: objects}
}

// Add appends an object to the scene.
func (s *Scene) Add(o Object) {
	s.objects = append(s.objects, o)
}

// Raycast returns the nearest hit along ray.
func (s *Scene) Raycast(ray texpaint.Ray) (texpaint.Hit, bool) {
	var (
		best  texpaint.Hit
		found bool
	)
	for _, o := range s.objects {
		h, ok := o.Intersect(ray)
		if ok && (!found || h.Distance < best.Distance) {
			best, found = h, true
		}
	}
	return best, found
}

var _ texpaint.Raycaster = (*Scene)(nil)
