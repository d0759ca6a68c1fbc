// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/hasnatsamiul/3D-Model-Dashboard/events"
	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
	"github.com/hasnatsamiul/3D-Model-Dashboard/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runLoop runs the loop in the background, returning a function
// that stops it and waits for it to return.
func runLoop(t *testing.T, lp *Loop) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- lp.Run(ctx)
	}()
	return func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("loop did not stop")
		}
	}
}

type frameInfo struct {
	Frame
	mode  lattice.ColorModes
	nodes int
	live  int
}

func newTestLoop() (*Loop, *xyz.Raster, chan frameInfo) {
	v, rs := newTestViewer()
	lp := NewLoop(v)
	lp.Interval = time.Millisecond
	frames := make(chan frameInfo, 1000)
	lp.OnFrame = func(v *Viewer, fr Frame) {
		select {
		case frames <- frameInfo{Frame: fr, mode: v.Mode(), nodes: v.Lattice().NumNodes(), live: rs.Live()}:
		default:
		}
	}
	return lp, rs, frames
}

func waitInfo(t *testing.T, frames <-chan frameInfo, cond func(fi frameInfo) bool) frameInfo {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case fi := <-frames:
			if cond(fi) {
				return fi
			}
		case <-timeout:
			t.Fatal("no matching frame")
			return frameInfo{}
		}
	}
}

func TestLoopLifecycle(t *testing.T) {
	lp, rs, frames := newTestLoop()
	stop := runLoop(t, lp)

	// nothing renders without a lattice
	select {
	case <-frames:
		t.Fatal("frame rendered without a scene")
	case <-time.After(20 * time.Millisecond):
	}

	lp.SetLattice(twoNodes())
	fi := waitInfo(t, frames, func(fi frameInfo) bool { return fi.Rebuilt })
	assert.Equal(t, 2, fi.nodes)
	assert.Equal(t, 2, fi.live)

	// frames continue without changes
	fi = waitInfo(t, frames, func(fi frameInfo) bool { return !fi.Rebuilt })
	assert.Equal(t, lattice.ModeStress, fi.mode)

	lp.SetColorMode(lattice.ModeDefect)
	fi = waitInfo(t, frames, func(fi frameInfo) bool { return fi.mode == lattice.ModeDefect })
	assert.True(t, fi.Rebuilt)
	assert.Equal(t, 2, fi.live)

	for range 10 {
		lp.SetLattice(lattice.NewGrid(2, 2, 2, 1))
	}
	fi = waitInfo(t, frames, func(fi frameInfo) bool { return fi.nodes == 8 })
	assert.Equal(t, 2, fi.live)

	stop()
	assert.Equal(t, 0, rs.Live())
	assert.False(t, lp.Viewer.Running())
}

func TestLoopLatestWins(t *testing.T) {
	lp, rs, frames := newTestLoop()
	lp.SetLattice(twoNodes())
	lp.SetColorMode(lattice.ModeDelta)
	lp.SetLattice(lattice.NewGrid(3, 1, 1, 1))
	lp.SetColorMode(lattice.ModeAluminium)
	stop := runLoop(t, lp)

	fi := waitInfo(t, frames, func(fi frameInfo) bool { return true })
	assert.True(t, fi.Rebuilt)
	assert.Equal(t, 3, fi.nodes)
	assert.Equal(t, lattice.ModeAluminium, fi.mode)
	assert.Equal(t, 0, fi.Index)

	lp.SetLattice(nil)
	require.Eventually(t, func() bool { return rs.Live() == 0 }, 5*time.Second, time.Millisecond)
	stop()
	assert.Equal(t, 0, rs.Live())
}

func TestLoopEvents(t *testing.T) {
	lp, _, frames := newTestLoop()
	selected := make(chan int, 10)
	lp.Viewer.OnSelect(func(se SelectionEvent) {
		selected <- se.Index
	})
	// the camera is fit to the lattice before any event is handled,
	// so the node projects to the center
	lat := &lattice.Lattice{Nodes: []lattice.Node{{ID: 7, X: 3, Y: 3, Z: 3}}}
	lp.SetLattice(lat)
	stop := runLoop(t, lp)
	defer stop()
	waitInfo(t, frames, func(fi frameInfo) bool { return fi.Rebuilt })

	center := image.Pt(testSize.X/2, testSize.Y/2)
	lp.Post(events.NewMouse(events.MouseDown, events.Left, center, 0))
	lp.Post(events.NewMouse(events.MouseUp, events.Left, center, 0))
	select {
	case i := <-selected:
		assert.Equal(t, 0, i)
	case <-time.After(5 * time.Second):
		t.Fatal("no selection")
	}
}

func TestLoopResourceError(t *testing.T) {
	lp, rs, frames := newTestLoop()
	errs := make(chan error, 10)
	lp.OnError = func(err error) {
		errs <- err
	}
	lp.Resize(image.Point{})
	lp.SetLattice(twoNodes())
	stop := runLoop(t, lp)
	defer stop()

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, xyz.ErrResourceAcquisition)
	case <-time.After(5 * time.Second):
		t.Fatal("no error")
	}
	assert.Equal(t, 0, rs.Live())
	assert.Empty(t, frames)

	lp.Resize(testSize)
	lp.SetColorMode(lattice.ModeStress)
	fi := waitInfo(t, frames, func(fi frameInfo) bool { return fi.Rebuilt })
	assert.Equal(t, 2, fi.nodes)
}
