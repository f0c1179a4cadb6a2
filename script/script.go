// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package script

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/texpaint"
)

// Script errors.
var (
	// ErrUnknownFormat is returned for script files that are neither YAML
	// nor TOML.
	ErrUnknownFormat = errors.New("script: unknown script format")

	// ErrInvalidScript is returned when a script fails validation.
	ErrInvalidScript = errors.New("script: invalid script")
)

// Format is a script encoding.
type Format uint8

const (
	// FormatYAML is YAML 1.2 (gopkg.in/yaml.v3).
	FormatYAML Format = iota

	// FormatTOML is TOML 1.0.
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Script is a stroke script.
type Script struct {
	Canvas     Canvas     `yaml:"canvas" toml:"canvas"`
	Resolution []int      `yaml:"resolution" toml:"resolution"`
	Facing     *float32   `yaml:"facing_threshold" toml:"facing_threshold"`
	UVOrigin   string     `yaml:"uv_origin" toml:"uv_origin"`
	Format     string     `yaml:"format" toml:"format"`
	Brush      BrushSpec  `yaml:"brush" toml:"brush"`
	Camera     CameraSpec `yaml:"camera" toml:"camera"`
	Model      ModelSpec  `yaml:"model" toml:"model"`
	Frames     []Frame    `yaml:"frames" toml:"frames"`
}

// Canvas describes the blank surface used when no base texture is given.
type Canvas struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Color  string `yaml:"color" toml:"color"`
}

// BrushSpec is a full or partial brush. Empty fields leave the current
// value unchanged.
type BrushSpec struct {
	Color   string   `yaml:"color" toml:"color"`
	Radius  *float64 `yaml:"radius" toml:"radius"`
	Opacity *float64 `yaml:"opacity" toml:"opacity"`
	Falloff *float64 `yaml:"falloff" toml:"falloff"`
}

// CameraSpec places the preview camera. Zero values select the defaults
// of scene.NewCamera.
type CameraSpec struct {
	Width  int       `yaml:"width" toml:"width"`
	Height int       `yaml:"height" toml:"height"`
	Eye    []float32 `yaml:"eye" toml:"eye"`
	Target []float32 `yaml:"target" toml:"target"`
	FOV    float32   `yaml:"fov" toml:"fov"`
}

// ModelSpec selects the paintable model.
type ModelSpec struct {
	Kind   string  `yaml:"kind" toml:"kind"` // "sphere" (default) or "quad"
	Radius float32 `yaml:"radius" toml:"radius"`
	Width  float32 `yaml:"width" toml:"width"`
	Height float32 `yaml:"height" toml:"height"`
}

// Frame is one scripted input frame. With To set and Repeat > 1 the
// pointer moves linearly from (X, Y) to To over Repeat frames.
type Frame struct {
	Down      bool       `yaml:"down" toml:"down"`
	X         float32    `yaml:"x" toml:"x"`
	Y         float32    `yaml:"y" toml:"y"`
	To        []float32  `yaml:"to" toml:"to"`
	Repeat    int        `yaml:"repeat" toml:"repeat"`
	OverUI    bool       `yaml:"over_ui" toml:"over_ui"`
	Exclusive bool       `yaml:"exclusive" toml:"exclusive"`
	Brush     *BrushSpec `yaml:"brush" toml:"brush"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("script: read file: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes and validates a script. Unknown keys are errors.
func Parse(data []byte, format Format) (*Script, error) {
	var s Script
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("script: decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("script: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks value ranges and list lengths.
func (s *Script) Validate() error {
	if s.Canvas.Width < 0 || s.Canvas.Height < 0 {
		return fmt.Errorf("%w: negative canvas size", ErrInvalidScript)
	}
	if s.Canvas.Color != "" {
		if _, err := texpaint.ParseHexColor(s.Canvas.Color); err != nil {
			return fmt.Errorf("%w: canvas color: %w", ErrInvalidScript, err)
		}
	}
	if s.Resolution != nil && len(s.Resolution) != 2 {
		return fmt.Errorf("%w: resolution needs 2 values", ErrInvalidScript)
	}
	if _, err := s.uvOrigin(); err != nil {
		return err
	}
	if _, err := s.format(); err != nil {
		return err
	}
	if _, err := s.Brush.apply(texpaint.DefaultBrush()); err != nil {
		return err
	}
	if err := s.Camera.validate(); err != nil {
		return err
	}
	switch s.Model.Kind {
	case "", "sphere", "quad":
	default:
		return fmt.Errorf("%w: unknown model kind %q", ErrInvalidScript, s.Model.Kind)
	}
	for i, f := range s.Frames {
		if f.Repeat < 0 {
			return fmt.Errorf("%w: frame %d: negative repeat", ErrInvalidScript, i)
		}
		if f.To != nil && len(f.To) != 2 {
			return fmt.Errorf("%w: frame %d: to needs 2 values", ErrInvalidScript, i)
		}
		if f.Brush != nil {
			if _, err := f.Brush.apply(texpaint.DefaultBrush()); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
	}
	return nil
}

func (s *Script) uvOrigin() (texpaint.UVOrigin, error) {
	switch strings.ToLower(s.UVOrigin) {
	case "", "top-left":
		return texpaint.UVOriginTopLeft, nil
	case "bottom-left":
		return texpaint.UVOriginBottomLeft, nil
	default:
		return 0, fmt.Errorf("%w: unknown uv_origin %q", ErrInvalidScript, s.UVOrigin)
	}
}

func (s *Script) format() (gputypes.TextureFormat, error) {
	switch strings.ToLower(s.Format) {
	case "", "rgba8":
		return gputypes.TextureFormatRGBA8Unorm, nil
	case "bgra8":
		return gputypes.TextureFormatBGRA8Unorm, nil
	default:
		return 0, fmt.Errorf("%w: unknown format %q", ErrInvalidScript, s.Format)
	}
}

func (s *Script) canvasColor() color.Color {
	if s.Canvas.Color == "" {
		return nil
	}
	c, _ := texpaint.ParseHexColor(s.Canvas.Color)
	return c
}

// apply returns b with the fields of spec overridden.
func (spec BrushSpec) apply(b texpaint.Brush) (texpaint.Brush, error) {
	if spec.Color != "" {
		c, err := texpaint.ParseHexColor(spec.Color)
		if err != nil {
			return b, fmt.Errorf("%w: brush color: %w", ErrInvalidScript, err)
		}
		b.Color = c
	}
	if spec.Radius != nil {
		b.Radius = *spec.Radius
	}
	if spec.Opacity != nil {
		b.Opacity = *spec.Opacity
	}
	if spec.Falloff != nil {
		b.Falloff = *spec.Falloff
	}
	if err := b.Validate(); err != nil {
		return b, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	return b, nil
}

func (c CameraSpec) validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: negative camera size", ErrInvalidScript)
	}
	if c.Eye != nil && len(c.Eye) != 3 {
		return fmt.Errorf("%w: camera eye needs 3 values", ErrInvalidScript)
	}
	if c.Target != nil && len(c.Target) != 3 {
		return fmt.Errorf("%w: camera target needs 3 values", ErrInvalidScript)
	}
	if c.FOV < 0 || c.FOV >= 180 {
		return fmt.Errorf("%w: camera fov %v out of range", ErrInvalidScript, c.FOV)
	}
	return nil
}
