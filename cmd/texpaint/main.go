// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command texpaint paints brush strokes onto textured 3D models.
//
// Usage:
//
//	texpaint replay -script strokes.yaml [-texture base.png] -out painted.png [-view view.png] [-frames dir] [-v]
//	texpaint term [-texture base.png] [-out painted.png] [-log texpaint.log]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/texpaint"
	"github.com/gogpu/texpaint/render"
	"github.com/gogpu/texpaint/script"
	"github.com/gogpu/texpaint/textureio"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "replay":
		err = runReplay(os.Args[2:])
	case "term":
		err = runTerm(os.Args[2:])
	case "-h", "-help", "--help", "help":
		usage(os.Stdout)
		return
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("texpaint: %v", err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: texpaint <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  replay   replay a YAML or TOML stroke script and save the painted texture")
	fmt.Fprintln(w, "  term     paint interactively in the terminal")
}

func runReplay(args []string) error {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	var (
		scriptPath = fs.String("script", "", "stroke script (.yaml, .yml or .toml)")
		texPath    = fs.String("texture", "", "base texture; the script canvas is used when empty")
		outPath    = fs.String("out", "painted.png", "painted texture output (.png, .jpg, .bmp, .tiff)")
		viewPath   = fs.String("view", "", "optional shaded preview of the model")
		framesDir  = fs.String("frames", "", "optional directory receiving every published frame")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scriptPath == "" {
		fs.Usage()
		return errors.New("replay: -script is required")
	}

	setupLogging(os.Stderr, *verbose)

	s, err := script.Load(*scriptPath)
	if err != nil {
		return err
	}

	var base image.Image
	if *texPath != "" {
		if base, err = textureio.Load(*texPath); err != nil {
			return err
		}
	}

	target := render.NewImageTarget()
	sinks := render.Tee{target}
	var seq *render.PNGSequence
	if *framesDir != "" {
		if seq, err = render.NewPNGSequence(*framesDir); err != nil {
			return err
		}
		sinks = append(sinks, seq)
	}

	sess, err := s.NewSession(base, sinks)
	if err != nil {
		return err
	}
	if _, err := sess.Run(); err != nil {
		return err
	}
	if seq != nil && seq.Err() != nil {
		return fmt.Errorf("replay: write frames: %w", seq.Err())
	}

	if err := textureio.Save(*outPath, target.Image()); err != nil {
		return err
	}
	if *viewPath != "" {
		if err := textureio.Save(*viewPath, sess.RenderView()); err != nil {
			return err
		}
	}

	sum := sess.Summary()
	fmt.Printf("replayed %d frames, %d painted, %d uploads; saved %s (%dx%d)\n",
		sum.Frames, sum.Painted, target.Uploads(), *outPath, target.Width(), target.Height())
	for r := texpaint.ReasonIdle; r <= texpaint.ReasonPainted; r++ {
		if n := sum.Outcomes[r]; n > 0 {
			fmt.Printf("  %-10s %d\n", r, n)
		}
	}
	return nil
}

// setupLogging routes library logs to w: Info and above by default, Debug
// with verbose.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	texpaint.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
