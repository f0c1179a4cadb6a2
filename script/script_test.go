// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package script

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/texpaint"
	"github.com/gogpu/texpaint/render"
)

// The camera looks at a unit sphere from (0, 0, 3). The view centre hits
// the sphere head-on at uv (0.25, 0.5); x=158 is close to the silhouette.
const strokesYAML = `
canvas: {width: 64, height: 64, color: "#ffffff"}
brush: {color: "#ff0000", radius: 0.05, opacity: 1, falloff: 0}
camera: {width: 200, height: 200}
model: {kind: sphere, radius: 1}
frames:
  - {down: false, x: 100, y: 100}
  - {down: true, x: 100, y: 100}
  - {down: true, x: 100, y: 100, over_ui: true}
  - {down: true, x: 100, y: 100, exclusive: true}
  - {down: true, x: 0, y: 0}
  - {down: true, x: 158, y: 100}
  - brush: {color: "#0000ff"}
    down: true
    x: 100
    y: 100
`

const strokesTOML = `
[canvas]
width = 64
height = 64
color = "#ffffff"

[brush]
color = "#ff0000"
radius = 0.05
opacity = 1.0
falloff = 0.0

[camera]
width = 200
height = 200

[model]
kind = "sphere"
radius = 1.0

[[frames]]
down = false
x = 100.0
y = 100.0

[[frames]]
down = true
x = 100.0
y = 100.0

[[frames]]
down = true
x = 100.0
y = 100.0
over_ui = true

[[frames]]
down = true
x = 100.0
y = 100.0
exclusive = true

[[frames]]
down = true
x = 0.0
y = 0.0

[[frames]]
down = true
x = 158.0
y = 100.0

[[frames]]
down = true
x = 100.0
y = 100.0
[frames.brush]
color = "#0000ff"
`

func parseYAML(t *testing.T, src string) *Script {
	t.Helper()
	s, err := Parse([]byte(src), FormatYAML)
	require.NoError(t, err)
	return s
}

func TestParse_YAMLAndTOMLAgree(t *testing.T) {
	y := parseYAML(t, strokesYAML)
	tm, err := Parse([]byte(strokesTOML), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, y, tm)
	assert.Len(t, y.Frames, 7)
	require.NotNil(t, y.Brush.Radius)
	assert.InDelta(t, 0.05, *y.Brush.Radius, 1e-12)
	require.NotNil(t, y.Frames[6].Brush)
	assert.Equal(t, "#0000ff", y.Frames[6].Brush.Color)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("canvas: {widht: 10}\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte("[canvas]\nwidht = 10\n"), FormatTOML)
	assert.Error(t, err)

	_, err = Parse(nil, Format(9))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"negative canvas", "canvas: {width: -1}"},
		{"bad canvas color", "canvas: {color: nope}"},
		{"resolution arity", "resolution: [1]"},
		{"uv origin", "uv_origin: sideways"},
		{"format", "format: r8"},
		{"zero radius", "brush: {radius: 0}"},
		{"opacity range", "brush: {opacity: 1.5}"},
		{"bad brush color", "brush: {color: '#12'}"},
		{"camera eye arity", "camera: {eye: [1, 2]}"},
		{"camera fov", "camera: {fov: 180}"},
		{"model kind", "model: {kind: teapot}"},
		{"negative repeat", "frames: [{repeat: -1}]"},
		{"to arity", "frames: [{to: [1]}]"},
		{"frame brush", "frames: [{brush: {falloff: 2}}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), FormatYAML)
			assert.ErrorIs(t, err, ErrInvalidScript)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yaml": FormatYAML,
		"b.YML":  FormatYAML,
		"c.toml": FormatTOML,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := FormatFromPath("strokes.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, "toml", FormatTOML.String())
}

func TestExpand(t *testing.T) {
	red := &BrushSpec{Color: "#ff0000"}
	steps := expand([]Frame{
		{Down: true, X: 0, Y: 10, To: []float32{30, 10}, Repeat: 4, Brush: red},
		{Down: false, X: 5, Y: 5},
	})
	require.Len(t, steps, 5)

	for i, want := range []float32{0, 10, 20, 30} {
		assert.InDelta(t, want, steps[i].pos.X, 1e-5, "step %d", i)
		assert.InDelta(t, 10, steps[i].pos.Y, 1e-5, "step %d", i)
		assert.True(t, steps[i].down)
	}
	assert.Same(t, red, steps[0].brush)
	assert.Nil(t, steps[1].brush)
	assert.False(t, steps[4].down)
}

func TestSession_Run(t *testing.T) {
	s := parseYAML(t, strokesYAML)
	var rec render.Recorder
	sess, err := s.NewSession(nil, &rec)
	require.NoError(t, err)
	assert.Equal(t, 7, sess.Steps())

	results, err := sess.Run()
	require.NoError(t, err)
	require.Len(t, results, 7)

	want := []texpaint.Reason{
		texpaint.ReasonIdle,
		texpaint.ReasonPainted,
		texpaint.ReasonOverUI,
		texpaint.ReasonExclusive,
		texpaint.ReasonMiss,
		texpaint.ReasonGrazing,
		texpaint.ReasonPainted,
	}
	for i, r := range results {
		assert.Equal(t, want[i], r.Gesture.Reason, "frame %d", i)
		assert.Equal(t, uint64(i), r.Frame)
	}
	assert.False(t, results[1].Dirty.Empty())

	// Head-on at the view centre, about 0.30 near the silhouette.
	assert.InDelta(t, 1, results[1].Gesture.Facing, 1e-4)
	assert.InDelta(t, 0.25, results[1].Gesture.UV.X, 1e-4)
	assert.InDelta(t, 0.5, results[1].Gesture.UV.Y, 1e-4)
	assert.InDelta(t, 0.304, results[5].Gesture.Facing, 0.01)

	sum := sess.Summary()
	assert.Equal(t, 7, sum.Frames)
	assert.Equal(t, 2, sum.Painted)
	assert.Equal(t, 2, sum.Outcomes[texpaint.ReasonPainted])
	assert.Equal(t, results[1].Dirty.Union(results[6].Dirty), sum.Dirty)

	// attach plus two stamps
	require.Len(t, rec.Frames(), 3)
	after1 := rec.Frames()[1]
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, after1.RGBAAt(16, 32))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, after1.RGBAAt(48, 32))

	final := sess.Compositor.Surface()
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, final.RGBAAt(16, 32))
	assert.Equal(t, 64, final.Width())
}

func TestSession_Deterministic(t *testing.T) {
	run := func() *texpaint.Surface {
		sess, err := parseYAML(t, strokesYAML).NewSession(nil, nil)
		require.NoError(t, err)
		_, err = sess.Run()
		require.NoError(t, err)
		return sess.Compositor.Surface()
	}
	assert.True(t, run().Equal(run()))
}

func TestSession_BaseTexture(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 32, 16))
	for i := range base.Pix {
		base.Pix[i] = 128
	}
	s := parseYAML(t, strokesYAML)
	sess, err := s.NewSession(base, nil)
	require.NoError(t, err)

	surf := sess.Compositor.Surface()
	require.NotNil(t, surf)
	assert.Equal(t, 32, surf.Width())
	assert.Equal(t, 16, surf.Height())

	_, err = sess.Run()
	require.NoError(t, err)
	assert.Equal(t, uint8(128), base.Pix[0], "base texture must not be modified")
}

func TestSession_QuadBottomLeft(t *testing.T) {
	src := `
canvas: {width: 10, height: 10}
uv_origin: bottom-left
brush: {radius: 0.05, falloff: 0}
camera: {width: 100, height: 100}
model: {kind: quad, width: 2, height: 2}
frames:
  - {down: true, x: 50, y: 40}
`
	sess, err := parseYAML(t, src).NewSession(nil, nil)
	require.NoError(t, err)
	results, err := sess.Run()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, texpaint.ReasonPainted, results[0].Gesture.Reason)
	// The hit is at world y = 0.2*tan(30°)*3 above the quad centre.
	assert.InDelta(t, 0.5, results[0].Gesture.UV.X, 1e-3)
	assert.InDelta(t, 0.6732, results[0].Gesture.UV.Y, 1e-3)
}

func TestSession_RenderView(t *testing.T) {
	sess, err := parseYAML(t, strokesYAML).NewSession(nil, nil)
	require.NoError(t, err)
	_, err = sess.Run()
	require.NoError(t, err)

	img := sess.RenderView()
	assert.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())
	c := img.RGBAAt(100, 100)
	assert.Greater(t, c.B, c.R, "painted spot should look blue")
	assert.Equal(t, uint8(255), c.A)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "strokes.yaml")
	tomlPath := filepath.Join(dir, "strokes.toml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(strokesYAML), 0o600))
	require.NoError(t, os.WriteFile(tomlPath, []byte(strokesTOML), 0o600))

	y, err := Load(yamlPath)
	require.NoError(t, err)
	tm, err := Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, y, tm)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
