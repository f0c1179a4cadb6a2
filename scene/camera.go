// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/texpaint"
)

// Camera is a pinhole perspective camera.
type Camera struct {
	eye     texpaint.Vec3
	forward texpaint.Vec3
	right   texpaint.Vec3
	up      texpaint.Vec3

	width, height float32
	tanHalfFOV    float32
}

// NewCamera creates a camera for a width × height viewport, placed at
// (0, 0, 3) looking at the origin with a 60 degree vertical field of view.
func NewCamera(width, height int) *Camera {
	c := &Camera{}
	c.SetViewport(width, height)
	c.SetFOV(60)
	c.LookAt(texpaint.V3(0, 0, 3), texpaint.Vec3{}, texpaint.V3(0, 1, 0))
	return c
}

// SetViewport sets the viewport size in pixels. Non-positive sizes are
// treated as 1.
func (c *Camera) SetViewport(width, height int) {
	c.width = float32(max(width, 1))
	c.height = float32(max(height, 1))
}

// Viewport returns the viewport size in pixels.
func (c *Camera) Viewport() (width, height int) {
	return int(c.width), int(c.height)
}

// SetFOV sets the vertical field of view in degrees.
func (c *Camera) SetFOV(degrees float32) {
	c.tanHalfFOV = math32.Tan(degrees * math32.Pi / 360)
}

// LookAt positions the camera at eye, facing target.
func (c *Camera) LookAt(eye, target, up texpaint.Vec3) {
	c.eye = eye
	c.forward = target.Sub(eye).Normalize()
	c.right = c.forward.Cross(up).Normalize()
	c.up = c.right.Cross(c.forward)
}

// Eye returns the camera position.
func (c *Camera) Eye() texpaint.Vec3 {
	return c.eye
}

// ScreenPointToRay returns the view ray through a screen position in
// pixels, origin at the top-left of the viewport.
func (c *Camera) ScreenPointToRay(screen texpaint.Vec2) texpaint.Ray {
	ndcX := 2*screen.X/c.width - 1
	ndcY := 1 - 2*screen.Y/c.height
	aspect := c.width / c.height

	dir := c.forward.
		Add(c.right.Mul(ndcX * c.tanHalfFOV * aspect)).
		Add(c.up.Mul(ndcY * c.tanHalfFOV))
	return texpaint.Ray{Origin: c.eye, Direction: dir.Normalize()}
}

var _ texpaint.Camera = (*Camera)(nil)
