// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/texpaint"
)

func solidSurface(t *testing.T, w, h int, format gputypes.TextureFormat, c color.Color) *texpaint.Surface {
	t.Helper()
	s, err := texpaint.NewSurface(w, h, format)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	s.Fill(c)
	return s
}

func TestImageTarget_Empty(t *testing.T) {
	target := NewImageTarget()
	if target.Width() != 0 || target.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", target.Width(), target.Height())
	}
	if target.Latest() != nil {
		t.Error("Latest() should be nil before any publish")
	}
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", target.Format())
	}
}

func TestImageTarget_Publish(t *testing.T) {
	s := solidSurface(t, 8, 4, gputypes.TextureFormatRGBA8Unorm, color.RGBA{10, 20, 30, 255})
	target := NewImageTarget()
	target.Publish(s)

	if target.Width() != 8 || target.Height() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", target.Width(), target.Height())
	}
	if target.Stride() != 32 {
		t.Errorf("Stride() = %d, want 32", target.Stride())
	}
	if got := target.Image().RGBAAt(7, 3); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("pixel = %v", got)
	}
	if target.Latest() != s {
		t.Error("Latest() should return the published surface")
	}
	if target.Uploads() != 1 {
		t.Errorf("Uploads() = %d, want 1", target.Uploads())
	}
	if target.UploadedBytes() != 8*4*4 {
		t.Errorf("UploadedBytes() = %d, want %d", target.UploadedBytes(), 8*4*4)
	}
}

func TestImageTarget_DirtyRegion(t *testing.T) {
	white := solidSurface(t, 16, 16, gputypes.TextureFormatRGBA8Unorm, color.White)
	target := NewImageTarget()
	target.Publish(white)
	before := target.UploadedBytes()

	red := solidSurface(t, 16, 16, gputypes.TextureFormatRGBA8Unorm, color.RGBA{255, 0, 0, 255})
	dirty := image.Rect(4, 4, 8, 6)
	target.PublishDirty(red, dirty)

	if got := target.UploadedBytes() - before; got != 4*2*4 {
		t.Errorf("dirty upload copied %d bytes, want %d", got, 4*2*4)
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := color.RGBA{255, 255, 255, 255}
			if image.Pt(x, y).In(dirty) {
				want = color.RGBA{255, 0, 0, 255}
			}
			if got := target.Image().RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestImageTarget_EmptyDirtyCopiesNothing(t *testing.T) {
	s := solidSurface(t, 4, 4, gputypes.TextureFormatRGBA8Unorm, color.White)
	target := NewImageTarget()
	target.Publish(s)
	before := target.UploadedBytes()

	target.PublishDirty(s, image.Rectangle{})
	if target.UploadedBytes() != before {
		t.Error("empty dirty rectangle should copy nothing")
	}
	if target.Uploads() != 2 {
		t.Errorf("Uploads() = %d, want 2", target.Uploads())
	}
}

func TestImageTarget_SizeChangeForcesFullCopy(t *testing.T) {
	target := NewImageTarget()
	target.Publish(solidSurface(t, 4, 4, gputypes.TextureFormatRGBA8Unorm, color.White))

	big := solidSurface(t, 6, 5, gputypes.TextureFormatRGBA8Unorm, color.RGBA{0, 0, 255, 255})
	target.PublishDirty(big, image.Rect(0, 0, 1, 1))

	if target.Width() != 6 || target.Height() != 5 {
		t.Fatalf("size = %dx%d, want 6x5", target.Width(), target.Height())
	}
	if got := target.Image().RGBAAt(5, 4); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("corner pixel = %v, want blue", got)
	}
}

func TestImageTarget_BGRASwizzle(t *testing.T) {
	s := solidSurface(t, 2, 2, gputypes.TextureFormatBGRA8Unorm, color.RGBA{200, 100, 50, 255})
	target := NewImageTarget()
	target.Publish(s)

	if got := target.Image().RGBAAt(1, 1); got != (color.RGBA{200, 100, 50, 255}) {
		t.Errorf("pixel = %v, want {200 100 50 255}", got)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	if r.Last() != nil {
		t.Error("Last() should be nil on empty recorder")
	}

	s := solidSurface(t, 2, 2, gputypes.TextureFormatRGBA8Unorm, color.White)
	r.Publish(s)
	s.Fill(color.Black)
	r.Publish(s)

	frames := r.Frames()
	if len(frames) != 2 {
		t.Fatalf("len(Frames()) = %d, want 2", len(frames))
	}
	if got := frames[0].RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("first frame changed after source mutation: %v", got)
	}
	if got := r.Last().RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("last frame = %v, want black", got)
	}
}

func TestPNGSequence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	seq, err := NewPNGSequence(dir)
	if err != nil {
		t.Fatalf("NewPNGSequence: %v", err)
	}

	s := solidSurface(t, 3, 3, gputypes.TextureFormatRGBA8Unorm, color.White)
	seq.Publish(s)
	seq.Publish(s)

	if seq.Written() != 2 {
		t.Errorf("Written() = %d, want 2", seq.Written())
	}
	if seq.Err() != nil {
		t.Errorf("Err() = %v", seq.Err())
	}
	for _, name := range []string{"frame_00000.png", "frame_00001.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestPNGSequence_WriteError(t *testing.T) {
	dir := t.TempDir()
	seq, err := NewPNGSequence(dir)
	if err != nil {
		t.Fatalf("NewPNGSequence: %v", err)
	}
	seq.Dir = filepath.Join(dir, "missing", "nested")

	seq.Publish(solidSurface(t, 1, 1, gputypes.TextureFormatRGBA8Unorm, color.White))
	if seq.Err() == nil {
		t.Error("expected write error for missing directory")
	}
}

type plainSink struct{ n int }

func (p *plainSink) Publish(*texpaint.Surface) { p.n++ }

func TestTee(t *testing.T) {
	target := NewImageTarget()
	plain := &plainSink{}
	var rec Recorder
	tee := Tee{target, plain, &rec}

	s := solidSurface(t, 4, 4, gputypes.TextureFormatRGBA8Unorm, color.White)
	tee.Publish(s)
	tee.PublishDirty(s, image.Rect(0, 0, 1, 1))

	if target.Uploads() != 2 {
		t.Errorf("target uploads = %d, want 2", target.Uploads())
	}
	if target.UploadedBytes() != 4*4*4+4 {
		t.Errorf("target bytes = %d, want %d", target.UploadedBytes(), 4*4*4+4)
	}
	if plain.n != 2 {
		t.Errorf("plain sink publishes = %d, want 2", plain.n)
	}
	if len(rec.Frames()) != 2 {
		t.Errorf("recorder frames = %d, want 2", len(rec.Frames()))
	}
}

func TestImageTarget_WithCompositor(t *testing.T) {
	target := NewImageTarget()
	c := texpaint.NewCompositor(texpaint.Collaborators{Sink: target},
		texpaint.WithBlankSurface(32, 32, nil))
	if err := c.Attach(nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if target.Width() != 32 || target.Height() != 32 {
		t.Fatalf("size = %dx%d, want 32x32", target.Width(), target.Height())
	}
	if got := target.Image().RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel = %v, want white", got)
	}
}
