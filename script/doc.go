// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package script replays recorded painting strokes through a compositor.
//
// A stroke script describes the canvas, the brush, the camera, the model
// and a list of input frames. Scripts are YAML or TOML, chosen by file
// extension:
//
//	canvas: {width: 256, height: 256, color: "#ffffff"}
//	brush: {color: "#ff0000", radius: 0.05, opacity: 1, falloff: 0.1}
//	camera: {width: 200, height: 200}
//	model: {kind: sphere, radius: 1}
//	frames:
//	  - {down: true, x: 100, y: 100, to: [140, 100], repeat: 10}
//	  - {down: true, x: 60, y: 60, over_ui: true}
//	  - brush: {color: "#0000ff"}
//	    down: true
//	    x: 100
//	    y: 140
//
// Replays are deterministic: the same script and base texture always
// produce the same surface.
package script
