// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"context"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/hasnatsamiul/3D-Model-Dashboard/events"
	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
)

// DefaultInterval is the default frame interval of a [Loop].
const DefaultInterval = time.Second / 60

// Frame describes one rendered frame.
type Frame struct {

	// Index counts the frames rendered by the loop, starting at 0.
	Index int

	// Rebuilt is whether the scene was rebuilt since the last frame.
	Rebuilt bool
}

// Loop is the frame-paced render loop of a [Viewer]. All viewer mutation
// happens on the goroutine running [Loop.Run]; the other methods can be
// called from any goroutine. New lattices and color modes are latest-wins
// mailboxes: a value that has not been applied yet is replaced, never
// queued. Input events are queued, with motion compressed.
type Loop struct {

	// Viewer is the viewer driven by the loop.
	Viewer *Viewer

	// Interval is the time between frames.
	Interval time.Duration

	// OnFrame, if set, is called on the loop goroutine after each frame.
	OnFrame func(v *Viewer, fr Frame)

	// OnError, if set, is called on the loop goroutine with errors of
	// rebuilds and renders. They are logged otherwise.
	OnError func(err error)

	mu      sync.Mutex
	lat     *lattice.Lattice
	hasLat  bool
	mode    lattice.ColorModes
	hasMode bool
	size    image.Point
	hasSize bool
	wake    chan struct{}
	queue   events.Queue
}

// NewLoop returns a new loop driving the given viewer at [DefaultInterval].
func NewLoop(v *Viewer) *Loop {
	return &Loop{Viewer: v, Interval: DefaultInterval, wake: make(chan struct{}, 1)}
}

// SetLattice requests the viewer to show the given lattice, replacing
// any lattice requested before that has not been applied yet.
func (lp *Loop) SetLattice(lat *lattice.Lattice) {
	lp.mu.Lock()
	lp.lat, lp.hasLat = lat, true
	lp.mu.Unlock()
	lp.signal()
}

// SetColorMode requests the viewer to use the given color mode.
func (lp *Loop) SetColorMode(mode lattice.ColorModes) {
	lp.mu.Lock()
	lp.mode, lp.hasMode = mode, true
	lp.mu.Unlock()
	lp.signal()
}

// Resize requests the viewer to resize its surface.
func (lp *Loop) Resize(size image.Point) {
	lp.mu.Lock()
	lp.size, lp.hasSize = size, true
	lp.mu.Unlock()
	lp.signal()
}

// Post queues an input event for the viewer.
func (lp *Loop) Post(ev events.Event) {
	lp.queue.Send(ev)
	lp.signal()
}

func (lp *Loop) signal() {
	select {
	case lp.wake <- struct{}{}:
	default:
	}
}

// Run runs the loop until the context is done, then closes the viewer,
// releasing all of its resources. Frames are only rendered while the
// viewer has a running scene.
func (lp *Loop) Run(ctx context.Context) error {
	if lp.wake == nil {
		lp.wake = make(chan struct{}, 1)
	}
	interval := lp.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer lp.Viewer.Close()

	frame := 0
	rebuilt := false
	for {
		select {
		case <-ctx.Done():
			slog.Debug("viewer: loop stopped", "frames", frame)
			return nil
		case <-lp.wake:
			rebuilt = lp.apply() || rebuilt
			lp.dispatch()
		case <-ticker.C:
			rebuilt = lp.apply() || rebuilt
			lp.dispatch()
			if !lp.Viewer.Running() {
				continue
			}
			if err := lp.Viewer.RenderFrame(); err != nil {
				lp.report(err)
				continue
			}
			if lp.OnFrame != nil {
				lp.OnFrame(lp.Viewer, Frame{Index: frame, Rebuilt: rebuilt})
			}
			frame++
			rebuilt = false
		}
	}
}

// apply applies the pending mailbox values, returning whether the
// scene was rebuilt.
func (lp *Loop) apply() bool {
	lp.mu.Lock()
	lat, hasLat := lp.lat, lp.hasLat
	mode, hasMode := lp.mode, lp.hasMode
	size, hasSize := lp.size, lp.hasSize
	lp.lat, lp.hasLat, lp.hasMode, lp.hasSize = nil, false, false, false
	lp.mu.Unlock()

	v := lp.Viewer
	wasRunning := v.Running()
	if hasSize {
		if err := v.Resize(size); err != nil {
			lp.report(err)
		}
	}
	var err error
	switch {
	case hasLat:
		if hasMode {
			v.mode = mode
		}
		err = v.SetLattice(lat)
	case hasMode:
		err = v.SetColorMode(mode)
	default:
		return !wasRunning && v.Running()
	}
	if err != nil {
		lp.report(err)
		return false
	}
	return v.Running()
}

// dispatch sends all queued events to the viewer.
func (lp *Loop) dispatch() {
	for ev := lp.queue.NextEvent(); ev != nil; ev = lp.queue.NextEvent() {
		lp.Viewer.HandleEvent(ev)
	}
}

func (lp *Loop) report(err error) {
	if lp.OnError != nil {
		lp.OnError(err)
		return
	}
	slog.Error("viewer", "err", err)
}
