// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package textureio loads base textures and saves painted surfaces.
//
// Decoding auto-detects PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding picks
// the format from the file extension: .png, .jpg/.jpeg, .bmp or .tif/.tiff.
package textureio
