// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image"

	"github.com/hasnatsamiul/3D-Model-Dashboard/events"
	"github.com/hasnatsamiul/3D-Model-Dashboard/math32"
)

// NavStates are the states of the camera [Navigator].
type NavStates int32 //enums:enum

const (
	// Idle is the state when no drag is in progress.
	Idle NavStates = iota

	// Orbiting is a drag that rotates the camera around the target.
	Orbiting

	// Panning is a drag that translates the camera and the
	// target in the view plane.
	Panning

	// Zooming is the transient state while a scroll event
	// changes the camera distance.
	Zooming
)

var navStatesNames = [...]string{"Idle", "Orbiting", "Panning", "Zooming"}

func (ns NavStates) String() string {
	if ns < Idle || ns > Zooming {
		return fmt.Sprintf("NavStates(%d)", int32(ns))
	}
	return navStatesNames[ns]
}

// NavParams are the parameters of camera navigation.
type NavParams struct {

	// OrbitSpeed is the orbit angle in degrees per pixel of drag.
	OrbitSpeed float32 `default:"0.5"`

	// ZoomSpeed scales scroll deltas, in pixels, into the exponent of
	// the zoom factor: each scroll multiplies the distance to the target
	// by exp(ZoomSpeed * delta.Y).
	ZoomSpeed float32 `default:"0.002"`

	// MinDist is the closest the camera can zoom to the target.
	MinDist float32 `default:"0.5"`

	// MaxDist is the farthest the camera can zoom from the target.
	MaxDist float32 `default:"500"`

	// ClickSlop is the farthest, in pixels, the pointer can move between
	// press and release for the pair to count as a click.
	ClickSlop int `default:"3"`
}

// Defaults sets the default navigation parameters.
func (np *NavParams) Defaults() {
	np.OrbitSpeed = 0.5
	np.ZoomSpeed = 0.002
	np.MinDist = 0.5
	np.MaxDist = 500
	np.ClickSlop = 3
}

// Navigator is the interaction state machine that turns pointer events
// into camera motion. A primary-button drag orbits; a secondary or middle
// button drag, or a Shift primary drag, pans; scrolling zooms. Scrolling
// is ignored while a drag is in progress, and releasing the button that
// started a drag always ends it.
type Navigator struct {

	// Params are the navigation parameters.
	Params NavParams

	// State is the current state.
	State NavStates

	// button that started the current drag
	button events.Buttons

	// start is the pointer position at the start of the drag
	start image.Point

	// startCam is the camera at the start of the drag
	startCam Camera

	// moved is whether the pointer went beyond the click slop
	moved bool
}

// NewNavigator returns a new idle [Navigator] with default parameters.
func NewNavigator() *Navigator {
	nv := &Navigator{}
	nv.Params.Defaults()
	return nv
}

// Reset ends any drag in progress.
func (nv *Navigator) Reset() {
	nv.State = Idle
	nv.button = events.NoButton
	nv.moved = false
}

// HandleEvent updates the camera from the given event, for a surface of
// the given size. It marks the event as handled if it used it, and
// returns true if the event completed a click: a press and release of
// the primary button without moving beyond the click slop.
func (nv *Navigator) HandleEvent(cam *Camera, size image.Point, ev events.Event) bool {
	switch ev.Type() {
	case events.MouseDown:
		if nv.State != Idle {
			return false
		}
		switch {
		case ev.MouseButton() == events.Left && !ev.Modifiers().HasFlag(events.Shift):
			nv.State = Orbiting
		case ev.MouseButton() == events.Left, ev.MouseButton() == events.Right, ev.MouseButton() == events.Middle:
			nv.State = Panning
		default:
			return false
		}
		nv.button = ev.MouseButton()
		nv.start = ev.Pos()
		nv.startCam = *cam
		nv.moved = false
		ev.SetHandled()
	case events.MouseDrag, events.MouseMove:
		if nv.State != Orbiting && nv.State != Panning {
			return false
		}
		del := ev.Pos().Sub(nv.start)
		if !nv.moved && max(abs(del.X), abs(del.Y)) <= nv.Params.ClickSlop {
			return false
		}
		nv.moved = true
		nv.drag(cam, size, del)
		ev.SetHandled()
	case events.MouseUp:
		if nv.State == Idle || ev.MouseButton() != nv.button {
			return false
		}
		click := !nv.moved && nv.button == events.Left
		nv.Reset()
		ev.SetHandled()
		return click
	case events.Scroll:
		if nv.State != Idle {
			return false
		}
		se, ok := ev.(*events.MouseScroll)
		if !ok {
			return false
		}
		nv.State = Zooming
		// never closer than the near plane, where the target is clipped
		minDist := max(nv.Params.MinDist, cam.Near)
		cam.Zoom(math32.Exp(nv.Params.ZoomSpeed*se.Delta.Y), minDist, max(nv.Params.MaxDist, minDist))
		nv.State = Idle
		ev.SetHandled()
	}
	return false
}

// drag applies the total pointer motion del since the start of the drag
// to the camera as it was at the start.
func (nv *Navigator) drag(cam *Camera, size image.Point, del image.Point) {
	*cam = nv.startCam
	switch nv.State {
	case Orbiting:
		cam.Orbit(-float32(del.X)*nv.Params.OrbitSpeed, -float32(del.Y)*nv.Params.OrbitSpeed)
	case Panning:
		// world units per pixel at the target, so the target follows the pointer
		scale := cam.PixelScale(cam.DistTo(), size.Y)
		if scale <= 0 {
			return
		}
		cam.Pan(float32(del.X)/scale, -float32(del.Y)/scale)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
