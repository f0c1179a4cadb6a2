// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package textureio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when a file extension has no encoder.
	ErrUnsupportedFormat = errors.New("textureio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("textureio: empty data")
)

// DefaultJPEGQuality is used by Save for .jpg and .jpeg files.
const DefaultJPEGQuality = 90

// Load reads a texture from path, auto-detecting the format from content.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("textureio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, format, err := decode(f)
	if err != nil {
		return nil, err
	}
	logger().Debug("textureio: loaded texture", "path", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}

// LoadBytes decodes a texture held in memory.
func LoadBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	img, _, err := decode(bytes.NewReader(data))
	return img, err
}

// Decode decodes a texture from r and reports the detected format name.
func Decode(r io.Reader) (image.Image, string, error) {
	return decode(r)
}

func decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("textureio: decode: %w", err)
	}
	return img, format, nil
}

// Save writes img to path in the format named by its extension.
func Save(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !canEncode(ext) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("textureio: create file: %w", err)
	}
	if err := Encode(f, img, ext); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Encode writes img to w. ext selects the format and may be given with or
// without the leading dot.
func Encode(w io.Writer, img image.Image, ext string) error {
	ext = "." + strings.TrimPrefix(strings.ToLower(ext), ".")

	var err error
	switch ext {
	case ".png":
		err = png.Encode(w, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case ".bmp":
		err = bmp.Encode(w, img)
	case ".tif", ".tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("textureio: encode %s: %w", strings.TrimPrefix(ext, "."), err)
	}
	return nil
}

func canEncode(ext string) bool {
	switch ext {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}
