// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render provides presentation sinks for published paint surfaces.
//
// A sink plays the role of the model's material: it receives every newly
// composited surface from a texpaint.Compositor and makes it visible.
//
// # Sinks
//
//   - ImageTarget: CPU-backed *image.RGBA mirror, updated with dirty-rect
//     uploads like a GPU texture would be
//   - Recorder: keeps an independent copy of every published frame
//   - PNGSequence: writes every published frame to a directory
//   - Tee: fans one publish out to several sinks
//
// # Usage
//
//	target := render.NewImageTarget()
//	c := texpaint.NewCompositor(texpaint.Collaborators{..., Sink: target})
//	...
//	img := target.Image()
package render
