// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/gogpu/texpaint"
)

// Shader renders a preview of a textured scene as seen by a camera, with
// Lambert lighting from a single directional light.
type Shader struct {
	Camera     texpaint.Camera
	World      texpaint.Raycaster
	Light      texpaint.Vec3 // direction towards the light
	Ambient    float32
	Background color.RGBA
}

// NewShader returns a shader lit from the upper left front.
func NewShader(cam texpaint.Camera, world texpaint.Raycaster) *Shader {
	return &Shader{
		Camera:     cam,
		World:      world,
		Light:      texpaint.V3(-0.5, 0.7, 1).Normalize(),
		Ambient:    0.3,
		Background: color.RGBA{R: 24, G: 24, B: 32, A: 255},
	}
}

// Render fills dst, sampling tex at each hit's texture coordinate.
// A nil tex shades hits in flat grey.
func (s *Shader) Render(dst *image.RGBA, tex *texpaint.Surface) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetRGBA(x, y, s.Shade(texpaint.V2(float32(x-b.Min.X)+0.5, float32(y-b.Min.Y)+0.5), tex))
		}
	}
}

// Shade returns the color seen through one screen position.
func (s *Shader) Shade(screen texpaint.Vec2, tex *texpaint.Surface) color.RGBA {
	ray := s.Camera.ScreenPointToRay(screen)
	hit, ok := s.World.Raycast(ray)
	if !ok {
		return s.Background
	}

	albedo := color.RGBA{R: 180, G: 180, B: 180, A: 255}
	if tex != nil {
		albedo = tex.Sample(hit.UV)
	}

	n := hit.Normal.Normalize()
	if n.Dot(ray.Direction) > 0 {
		n = n.Neg() // back face
	}
	k := s.Ambient + (1-s.Ambient)*math32.Max(0, n.Dot(s.Light))
	return color.RGBA{
		R: scale(albedo.R, k),
		G: scale(albedo.G, k),
		B: scale(albedo.B, k),
		A: 255,
	}
}

func scale(c uint8, k float32) uint8 {
	return uint8(clamp(float32(c)*k+0.5, 0, 255))
}
