// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package script

import (
	"fmt"
	"image"

	"github.com/gogpu/texpaint"
	"github.com/gogpu/texpaint/scene"
)

// Default preview camera size used when a script leaves it unset.
const (
	DefaultViewWidth  = 256
	DefaultViewHeight = 256
)

// Session is a script bound to a compositor, a camera and a scene.
type Session struct {
	Compositor *texpaint.Compositor
	Loop       *texpaint.Loop
	Camera     *scene.Camera
	Scene      *scene.Scene

	input   *Input
	steps   []step
	summary Summary
}

// Summary counts what happened during a replay.
type Summary struct {
	Frames   int
	Painted  int
	Outcomes map[texpaint.Reason]int
	Dirty    image.Rectangle // union of all stamp rectangles
}

// NewSession builds a session. base is the model's texture and may be nil,
// in which case the script canvas is used. sink receives every published
// surface and may be nil.
func (s *Script) NewSession(base image.Image, sink texpaint.Publisher, opts ...texpaint.Option) (*Session, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cam := s.camera()
	world := scene.New(s.model())
	in := &Input{}

	origin, _ := s.uvOrigin()
	format, _ := s.format()
	brush, _ := s.Brush.apply(texpaint.DefaultBrush())

	w, h := s.Canvas.Width, s.Canvas.Height
	if w == 0 {
		w = texpaint.DefaultSurfaceWidth
	}
	if h == 0 {
		h = texpaint.DefaultSurfaceHeight
	}
	copts := []texpaint.Option{
		texpaint.WithUVOrigin(origin),
		texpaint.WithFormat(format),
		texpaint.WithBrush(brush),
		texpaint.WithBlankSurface(w, h, s.canvasColor()),
	}
	if s.Facing != nil {
		copts = append(copts, texpaint.WithFacingThreshold(*s.Facing))
	}
	if len(s.Resolution) == 2 {
		copts = append(copts, texpaint.WithResolution(s.Resolution[0], s.Resolution[1]))
	}

	c := texpaint.NewCompositor(texpaint.Collaborators{
		Camera:    cam,
		Raycaster: world,
		Pointer:   in,
		UI:        in,
		Exclusive: in,
		Sink:      sink,
	}, append(copts, opts...)...)
	if err := c.Attach(base); err != nil {
		return nil, fmt.Errorf("script: attach texture: %w", err)
	}

	sess := &Session{
		Compositor: c,
		Camera:     cam,
		Scene:      world,
		input:      in,
		steps:      expand(s.Frames),
		summary:    Summary{Outcomes: make(map[texpaint.Reason]int)},
	}
	sess.Loop = texpaint.NewLoop(c, texpaint.SystemFunc(sess.observe))
	return sess, nil
}

// observe runs after the compositor each frame.
func (sess *Session) observe(fc *texpaint.FrameContext) {
	sess.summary.Frames++
	if fc.Painting() {
		sess.summary.Painted++
	}
}

// Steps returns the number of frames the session replays.
func (sess *Session) Steps() int {
	return len(sess.steps)
}

// Run replays every frame and returns the per-frame results. It stops at
// the first frame whose brush change is rejected or whose stamp fails.
func (sess *Session) Run() ([]texpaint.FrameResult, error) {
	results := make([]texpaint.FrameResult, 0, len(sess.steps))
	for i, st := range sess.steps {
		if st.brush != nil {
			b, err := st.brush.apply(sess.Compositor.Brush())
			if err != nil {
				return results, fmt.Errorf("script: frame %d: %w", i, err)
			}
			if err := sess.Compositor.SetBrush(b); err != nil {
				return results, fmt.Errorf("script: frame %d: %w", i, err)
			}
		}
		sess.input.cur = st

		res := sess.Loop.Tick()
		results = append(results, res)
		sess.summary.Outcomes[res.Gesture.Reason]++
		sess.summary.Dirty = sess.summary.Dirty.Union(res.Dirty)
		if res.Err != nil {
			return results, fmt.Errorf("script: frame %d: %w", i, res.Err)
		}
	}
	texpaint.Logger().Info("script: replay finished",
		"frames", sess.summary.Frames, "painted", sess.summary.Painted)
	return results, nil
}

// Summary returns counts for the frames replayed so far.
func (sess *Session) Summary() Summary {
	return sess.summary
}

// RenderView shades the model as seen by the session camera.
func (sess *Session) RenderView() *image.RGBA {
	w, h := sess.Camera.Viewport()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scene.NewShader(sess.Camera, sess.Scene).Render(img, sess.Compositor.Surface())
	return img
}

func (s *Script) camera() *scene.Camera {
	w, h := s.Camera.Width, s.Camera.Height
	if w == 0 {
		w = DefaultViewWidth
	}
	if h == 0 {
		h = DefaultViewHeight
	}
	cam := scene.NewCamera(w, h)
	if s.Camera.FOV > 0 {
		cam.SetFOV(s.Camera.FOV)
	}
	eye, target := cam.Eye(), texpaint.Vec3{}
	if len(s.Camera.Eye) == 3 {
		eye = texpaint.V3(s.Camera.Eye[0], s.Camera.Eye[1], s.Camera.Eye[2])
	}
	if len(s.Camera.Target) == 3 {
		target = texpaint.V3(s.Camera.Target[0], s.Camera.Target[1], s.Camera.Target[2])
	}
	cam.LookAt(eye, target, texpaint.V3(0, 1, 0))
	return cam
}

func (s *Script) model() scene.Object {
	m := s.Model
	if m.Kind == "quad" {
		w, h := m.Width, m.Height
		if w <= 0 {
			w = 2
		}
		if h <= 0 {
			h = 2
		}
		return scene.NewQuad(texpaint.Vec3{}, w, h)
	}
	r := m.Radius
	if r <= 0 {
		r = 1
	}
	return scene.Sphere{Radius: r}
}
