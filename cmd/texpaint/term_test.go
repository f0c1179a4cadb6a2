// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPumpEvents_StopsWhenDone(t *testing.T) {
	poll := func() tcell.Event { return tcell.NewEventInterrupt(nil) }
	events := make(chan tcell.Event) // nobody reads
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		pumpEvents(poll, events, done)
		close(finished)
	}()
	close(done)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("pumpEvents kept blocking after done was closed")
	}
}

func TestPumpEvents_ClosesOnNilEvent(t *testing.T) {
	n := 0
	poll := func() tcell.Event {
		n++
		if n > 3 {
			return nil
		}
		return tcell.NewEventInterrupt(n)
	}
	events := make(chan tcell.Event, 8)
	pumpEvents(poll, events, make(chan struct{}))

	got := 0
	for range events {
		got++
	}
	if got != 3 {
		t.Errorf("forwarded %d events, want 3", got)
	}
}

func TestTermInput(t *testing.T) {
	in := &termInput{x: 3, y: 2, rows: 10}
	if got := in.Position(); got.X != 3.5 || got.Y != 5 {
		t.Errorf("Position() = %v, want (3.5, 5)", got)
	}
	if in.PointerOverUI() {
		t.Error("row 2 of 10 should not be over the palette")
	}
	in.y = 9
	if !in.PointerOverUI() {
		t.Error("last row should be over the palette")
	}
}
