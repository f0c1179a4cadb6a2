// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texpaint paints brush strokes onto a 3D model's texture at
// runtime.
//
// # Overview
//
// A Compositor owns a paint surface cloned from the model's base texture.
// Each frame in which the primary pointer button is held, it casts the
// pointer through the camera into the scene, rejects hits that face away
// from the viewer, converts the hit into a texture coordinate and
// composites one circular brush stamp there. The host engine is reached
// only through small interfaces (Camera, Raycaster, Pointer, UICapture,
// ExclusiveInput, Publisher), so the package has no rendering or physics
// dependency of its own.
//
// # Quick Start
//
//	c := texpaint.NewCompositor(texpaint.Collaborators{
//	    Camera:    cam,
//	    Raycaster: world,
//	    Pointer:   mouse,
//	    Sink:      material,
//	})
//	if err := c.Attach(baseTexture); err != nil {
//	    return err
//	}
//
//	loop := texpaint.NewLoop(c, cameraControls)
//	for running {
//	    loop.Tick()
//	}
//
// # Double Buffering
//
// A stamp never reads and writes the same buffer. The published surface is
// the snapshot; a scratch copy receives the stamp and is then published in
// its place. Scratch buffers come from a pool, so a Publisher must not hold
// on to anything but the latest surface.
//
// # Coordinate System
//
// Texture coordinates are in [0, 1]². By default (0, 0) is the top-left
// texel corner, matching image row order; use WithUVOrigin for engines
// whose v axis points up. Brush radius is measured in the same UV units.
//
// # Logging
//
// The package is silent by default. See SetLogger.
package texpaint

// Version is the current version of the library.
const Version = "0.1.0"
