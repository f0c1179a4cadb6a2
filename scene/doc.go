// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene provides software implementations of the camera and
// raycast collaborators used by the texpaint compositor.
//
// It is intentionally small: a perspective camera, analytic spheres,
// triangle meshes with per-vertex texture coordinates and a Lambert
// preview shader. Hosts with a real engine implement texpaint.Camera and
// texpaint.Raycaster on top of their own scene graph instead.
//
// Texture coordinates follow the texpaint default: (0, 0) is the top-left
// corner of the texture.
package scene
