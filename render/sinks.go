// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/gogpu/texpaint"
)

// Recorder keeps an independent copy of every published surface.
// It is meant for tests and replays; memory grows with every frame.
type Recorder struct {
	frames []*texpaint.Surface
}

// Publish stores a clone of s.
func (r *Recorder) Publish(s *texpaint.Surface) {
	r.frames = append(r.frames, s.Clone())
}

// Frames returns the recorded surfaces in publish order.
func (r *Recorder) Frames() []*texpaint.Surface {
	return r.frames
}

// Last returns the most recent recorded surface, or nil.
func (r *Recorder) Last() *texpaint.Surface {
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}

// PNGSequence writes every published surface to Dir as frame_00000.png,
// frame_00001.png and so on. Write failures are logged and the first one is
// kept; publishing never fails.
type PNGSequence struct {
	Dir string

	next int
	err  error
}

// NewPNGSequence creates dir if needed and returns a sequence writer.
func NewPNGSequence(dir string) (*PNGSequence, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create frame directory: %w", err)
	}
	return &PNGSequence{Dir: dir}, nil
}

// Publish writes s to the next frame file.
func (p *PNGSequence) Publish(s *texpaint.Surface) {
	path := filepath.Join(p.Dir, fmt.Sprintf("frame_%05d.png", p.next))
	p.next++
	if err := s.SavePNG(path); err != nil {
		texpaint.Logger().Warn("render: write frame failed", "path", path, "err", err)
		if p.err == nil {
			p.err = err
		}
	}
}

// Written returns the number of frames attempted.
func (p *PNGSequence) Written() int {
	return p.next
}

// Err returns the first write error, if any.
func (p *PNGSequence) Err() error {
	return p.err
}

// Tee forwards each publish to every sink in order. Sinks implementing
// texpaint.DirtyPublisher receive the dirty rectangle.
type Tee []texpaint.Publisher

// Publish forwards s to every sink.
func (t Tee) Publish(s *texpaint.Surface) {
	t.PublishDirty(s, s.Bounds())
}

// PublishDirty forwards s and dirty to every sink.
func (t Tee) PublishDirty(s *texpaint.Surface, dirty image.Rectangle) {
	for _, p := range t {
		if dp, ok := p.(texpaint.DirtyPublisher); ok {
			dp.PublishDirty(s, dirty)
			continue
		}
		p.Publish(s)
	}
}

var (
	_ texpaint.Publisher      = (*Recorder)(nil)
	_ texpaint.Publisher      = (*PNGSequence)(nil)
	_ texpaint.DirtyPublisher = Tee(nil)
)
