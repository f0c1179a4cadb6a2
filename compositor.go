// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texpaint

import (
	"image"
	"image/color"
)

// Compositor owns a paint surface and applies at most one brush stamp per
// frame while a paint gesture is active.
//
// Every stamp reads the published snapshot, writes into a scratch copy
// and publishes the scratch as the new surface, so the sink never sees a
// partially composited buffer.
//
// Compositor is not safe for concurrent use; call it from the frame loop.
type Compositor struct {
	camera    Camera
	raycaster Raycaster
	pointer   Pointer
	ui        UICapture
	exclusive ExclusiveInput
	sink      Publisher

	opts    options
	brush   Brush
	surface *Surface
	stats   Stats
}

// NewCompositor creates a compositor without a surface. Call Attach to
// start painting a model.
func NewCompositor(collab Collaborators, opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Compositor{
		camera:    collab.Camera,
		raycaster: collab.Raycaster,
		pointer:   collab.Pointer,
		ui:        collab.UI,
		exclusive: collab.Exclusive,
		sink:      collab.Sink,
		opts:      o,
		brush:     o.brush,
	}
}

// Surface returns the most recently published surface, or nil when no
// model is attached. The returned surface is read-only and, when scratch
// recycling is enabled, valid only until the next painted frame.
func (c *Compositor) Surface() *Surface {
	return c.surface
}

// Stats returns activity counters.
func (c *Compositor) Stats() Stats {
	return c.stats
}

// Brush returns the current brush.
func (c *Compositor) Brush() Brush {
	return c.brush
}

// SetBrush replaces the brush. Invalid brushes are rejected and the
// current brush is kept.
func (c *Compositor) SetBrush(b Brush) error {
	if err := b.Validate(); err != nil {
		return err
	}
	c.brush = b
	if c.opts.onBrush != nil {
		c.opts.onBrush(b)
	}
	return nil
}

// SetBrushColor sets the brush color.
func (c *Compositor) SetBrushColor(col color.NRGBA) {
	b := c.brush
	b.Color = col
	_ = c.SetBrush(b)
}

// SetBrushColorRGB sets an opaque brush color from slider values in [0, 1].
func (c *Compositor) SetBrushColorRGB(r, g, b float64) {
	c.SetBrushColor(RGB(r, g, b))
}

// SetBrushSize sets the brush radius as a fraction of the texture size.
func (c *Compositor) SetBrushSize(radius float64) error {
	b := c.brush
	b.Radius = radius
	return c.SetBrush(b)
}

// SetBrushOpacity sets the brush opacity in [0, 1].
func (c *Compositor) SetBrushOpacity(opacity float64) error {
	b := c.brush
	b.Opacity = opacity
	return c.SetBrush(b)
}

// Update runs one frame: it resolves the gesture, publishes the painting
// flag into fc and, when the gesture is active, applies exactly one stamp.
// A nil fc is allowed for callers without dependent systems.
func (c *Compositor) Update(fc *FrameContext) FrameResult {
	if fc == nil {
		fc = NewFrameContext(c.stats.Frames)
	}
	c.stats.Frames++

	g := c.Resolve()
	fc.SetPainting(g.Active)
	c.stats.outcomes[g.Reason]++

	res := FrameResult{Frame: fc.Index(), Gesture: g}
	if !g.Active {
		if g.Reason != ReasonIdle {
			Logger().Debug("texpaint: gesture rejected", "frame", fc.Index(), "reason", g.Reason, "facing", g.Facing)
		}
		return res
	}

	dirty, err := c.apply(g.UV)
	if err != nil {
		Logger().Warn("texpaint: stamp failed", "frame", fc.Index(), "err", err)
		res.Err = err
		return res
	}
	c.stats.Stamps++
	res.Dirty = dirty
	Logger().Debug("texpaint: stamp", "frame", fc.Index(), "u", g.UV.X, "v", g.UV.Y, "dirty", dirty)
	return res
}

// Resolve derives this frame's gesture from the collaborators without
// touching the surface.
func (c *Compositor) Resolve() Gesture {
	if c.pointer == nil || !c.pointer.PrimaryButtonDown() {
		return Gesture{Reason: ReasonIdle}
	}
	if c.ui != nil && c.ui.PointerOverUI() {
		return Gesture{Reason: ReasonOverUI}
	}
	if c.exclusive != nil && c.exclusive.ExclusiveInputActive() {
		return Gesture{Reason: ReasonExclusive}
	}
	if c.surface == nil {
		return Gesture{Reason: ReasonNoSurface}
	}
	if c.camera == nil || c.raycaster == nil {
		return Gesture{Reason: ReasonMiss}
	}

	ray := c.camera.ScreenPointToRay(c.pointer.Position())
	hit, ok := c.raycaster.Raycast(ray)
	if !ok || !hit.UV.finite() {
		return Gesture{Reason: ReasonMiss}
	}

	facing := FacingRatio(hit.Normal, ray.Direction)
	if !(facing > c.opts.facingThreshold) {
		return Gesture{Facing: facing, Reason: ReasonGrazing}
	}

	uv := hit.UV
	if c.opts.uvOrigin == UVOriginBottomLeft {
		uv.Y = 1 - uv.Y
	}
	return Gesture{Active: true, UV: uv, Facing: facing, Reason: ReasonPainted}
}

// apply stamps the brush at uv: snapshot, scratch copy, stamp, publish,
// release snapshot.
func (c *Compositor) apply(uv Vec2) (image.Rectangle, error) {
	snapshot := c.surface

	var buf []byte
	if c.opts.pool != nil {
		buf = c.opts.pool.Get(len(snapshot.pix))
	} else {
		buf = make([]byte, len(snapshot.pix))
	}
	scratch := newSurfaceWithPix(snapshot.width, snapshot.height, snapshot.format, buf)
	copy(scratch.pix, snapshot.pix)

	dirty, err := Stamp(scratch, snapshot, uv, c.brush)
	if err != nil {
		c.release(scratch)
		return image.Rectangle{}, err
	}

	c.surface = scratch
	c.publish(scratch, dirty)
	c.release(snapshot)
	return dirty, nil
}

func (c *Compositor) publish(s *Surface, dirty image.Rectangle) {
	switch sink := c.sink.(type) {
	case nil:
	case DirtyPublisher:
		sink.PublishDirty(s, dirty)
	default:
		sink.Publish(s)
	}
}

func (c *Compositor) release(s *Surface) {
	if c.opts.pool != nil {
		c.opts.pool.Put(s.pix)
	}
}
