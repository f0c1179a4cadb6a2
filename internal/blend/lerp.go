// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package blend provides the per-channel math used to composite brush
// stamps.
//
// All functions are exact at their endpoints: a factor of 0 returns the
// destination unchanged and a factor of 1 returns the source bit for bit.
package blend

import "math"

// Lerp interpolates linearly from dst towards src by t and rounds to the
// nearest byte: dst*(1-t) + src*t.
//
// t <= 0 (and NaN) returns dst, t >= 1 returns src.
func Lerp(dst, src uint8, t float64) uint8 {
	if !(t > 0) {
		return dst
	}
	if t >= 1 {
		return src
	}
	d := float64(dst)
	return uint8(math.Round(d + (float64(src)-d)*t))
}

// Coverage returns the brush coverage at distance d from the stamp centre.
//
// Coverage is 1 up to radius*(1-falloff), falls linearly to 0 at radius and
// is 0 beyond. A falloff of 0 is a hard edge: every d <= radius is covered.
func Coverage(d, radius, falloff float64) float64 {
	if d > radius || !(radius > 0) {
		return 0
	}
	inner := radius * (1 - falloff)
	if d <= inner {
		return 1
	}
	return (radius - d) / (radius - inner)
}
