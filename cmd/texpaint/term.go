// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/texpaint"
	"github.com/gogpu/texpaint/render"
	"github.com/gogpu/texpaint/scene"
	"github.com/gogpu/texpaint/textureio"
)

// palette is the colour strip drawn on the last terminal row.
var palette = []color.NRGBA{
	texpaint.Red,
	{R: 255, G: 140, A: 255},
	{R: 255, G: 220, A: 255},
	texpaint.Green,
	{G: 200, B: 200, A: 255},
	texpaint.Blue,
	{R: 160, B: 220, A: 255},
	texpaint.White,
	texpaint.Black,
}

const swatchWidth = 4

// termInput tracks the terminal mouse in half-block pixel space.
type termInput struct {
	x, y    int // cell
	down    bool
	rows    int // terminal rows; the last one holds the palette
	picking bool
}

func (in *termInput) PrimaryButtonDown() bool { return in.down }

// Position maps the cell to the centre of its lower half-block pixel pair.
func (in *termInput) Position() texpaint.Vec2 {
	return texpaint.V2(float32(in.x)+0.5, float32(in.y*2)+1)
}

func (in *termInput) PointerOverUI() bool { return in.y >= in.rows-1 }

func (in *termInput) ExclusiveInputActive() bool { return in.picking }

// termPainter is the interactive terminal session.
type termPainter struct {
	screen tcell.Screen
	input  *termInput
	comp   *texpaint.Compositor
	loop   *texpaint.Loop
	camera *scene.Camera
	world  *scene.Scene
	shader *scene.Shader
	target *render.ImageTarget
	view   *image.RGBA
	out    string
	status string
}

func runTerm(args []string) error {
	fs := flag.NewFlagSet("term", flag.ContinueOnError)
	var (
		texPath = fs.String("texture", "", "base texture; a white 512x512 canvas when empty")
		outPath = fs.String("out", "painted.png", "file written by the 's' key")
		logPath = fs.String("log", "", "debug log file")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		setupLogging(f, true)
	}

	var base image.Image
	if *texPath != "" {
		var err error
		if base, err = textureio.Load(*texPath); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	p, err := newTermPainter(screen, base, *outPath)
	if err != nil {
		return err
	}
	p.run()
	return nil
}

func newTermPainter(screen tcell.Screen, base image.Image, out string) (*termPainter, error) {
	cols, rows := screen.Size()
	p := &termPainter{
		screen: screen,
		input:  &termInput{rows: rows},
		camera: scene.NewCamera(cols, max(rows-1, 1)*2),
		world:  scene.New(scene.Sphere{Radius: 1}),
		target: render.NewImageTarget(),
		out:    out,
	}
	p.shader = scene.NewShader(p.camera, p.world)
	p.comp = texpaint.NewCompositor(texpaint.Collaborators{
		Camera:    p.camera,
		Raycaster: p.world,
		Pointer:   p.input,
		UI:        p.input,
		Exclusive: p.input,
		Sink:      p.target,
	},
		texpaint.WithBlankSurface(512, 512, nil),
		texpaint.WithBrush(texpaint.Brush{Color: texpaint.Red, Radius: 0.03, Opacity: 1, Falloff: 0.3}),
	)
	if err := p.comp.Attach(base); err != nil {
		return nil, err
	}
	p.loop = texpaint.NewLoop(p.comp, texpaint.SystemFunc(p.pickColor))
	p.resize()
	return p, nil
}

// pickColor samples the texture under the pointer while the eyedropper
// owns the pointer. It never runs on a frame that painted.
func (p *termPainter) pickColor(fc *texpaint.FrameContext) {
	if fc.Painting() || !p.input.picking || !p.input.down || p.input.PointerOverUI() {
		return
	}
	hit, ok := p.world.Raycast(p.camera.ScreenPointToRay(p.input.Position()))
	if !ok {
		return
	}
	c := p.comp.Surface().Sample(hit.UV)
	p.comp.SetBrushColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	p.input.picking = false
}

func (p *termPainter) resize() {
	cols, rows := p.screen.Size()
	p.input.rows = rows
	p.camera.SetViewport(cols, max(rows-1, 1)*2)
	w, h := p.camera.Viewport()
	p.view = image.NewRGBA(image.Rect(0, 0, w, h))
	p.screen.Sync()
}

func (p *termPainter) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(p.screen.PollEvent, events, done)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !p.handle(ev) {
				return
			}
		case <-ticker.C:
			res := p.loop.Tick()
			if res.Err != nil {
				p.status = res.Err.Error()
			}
			p.draw()
		}
	}
}

// pumpEvents forwards polled events until poll returns nil or done is
// closed. events is closed when poll runs dry.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handle processes one event and reports whether to keep running.
func (p *termPainter) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.resize()
	case *tcell.EventMouse:
		p.input.x, p.input.y = ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !p.input.down && p.input.PointerOverUI() {
			p.choose(p.input.x)
		}
		p.input.down = down
	case *tcell.EventKey:
		return p.key(ev)
	}
	return true
}

func (p *termPainter) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	b := p.comp.Brush()
	switch ev.Rune() {
	case 'q':
		return false
	case '+', '=':
		_ = p.comp.SetBrushSize(min(b.Radius*1.25, 0.5))
	case '-':
		_ = p.comp.SetBrushSize(max(b.Radius/1.25, 0.005))
	case ']':
		_ = p.comp.SetBrushOpacity(min(b.Opacity+0.1, 1))
	case '[':
		_ = p.comp.SetBrushOpacity(max(b.Opacity-0.1, 0))
	case 'e':
		p.input.picking = !p.input.picking
	case 's':
		if err := textureio.Save(p.out, p.target.Image()); err != nil {
			p.status = err.Error()
		} else {
			p.status = "saved " + p.out
		}
	}
	return true
}

// choose selects the palette swatch under column x.
func (p *termPainter) choose(x int) {
	if i := x / swatchWidth; i < len(palette) {
		p.comp.SetBrushColor(palette[i])
	}
}

func (p *termPainter) draw() {
	p.shader.Render(p.view, p.target.Latest())

	cols, rows := p.screen.Size()
	for y := 0; y < rows-1; y++ {
		for x := 0; x < cols; x++ {
			top := p.view.RGBAAt(x, y*2)
			bottom := p.view.RGBAAt(x, y*2+1)
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			p.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	p.drawPalette(cols, rows-1)
	p.screen.Show()
}

func (p *termPainter) drawPalette(cols, y int) {
	for x := 0; x < cols; x++ {
		p.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
	for i, c := range palette {
		style := tcell.StyleDefault.Background(rgb(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}))
		for dx := 0; dx < swatchWidth-1; dx++ {
			p.screen.SetContent(i*swatchWidth+dx, y, ' ', nil, style)
		}
	}

	b := p.comp.Brush()
	mode := "paint"
	if p.input.picking {
		mode = "pick"
	}
	info := fmt.Sprintf(" %s size %.3f opacity %.1f  +/- [/] e s q  %s", mode, b.Radius, b.Opacity, p.status)
	x0 := len(palette) * swatchWidth
	for i, r := range info {
		if x0+i >= cols {
			break
		}
		p.screen.SetContent(x0+i, y, r, nil, tcell.StyleDefault)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
