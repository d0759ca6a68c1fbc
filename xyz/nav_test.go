// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"testing"

	"github.com/hasnatsamiul/3D-Model-Dashboard/base/tolassert"
	"github.com/hasnatsamiul/3D-Model-Dashboard/events"
	"github.com/hasnatsamiul/3D-Model-Dashboard/math32"
	"github.com/stretchr/testify/assert"
)

var navSize = image.Pt(400, 300)

func drag(but events.Buttons, to, start image.Point, mods events.Modifiers) events.Event {
	return events.NewMouseDrag(but, to, start, start, mods)
}

func TestNavigatorOrbit(t *testing.T) {
	nv := NewNavigator()
	cm := defaultCamera()
	start := image.Pt(200, 150)

	assert.False(t, nv.HandleEvent(cm, navSize, events.NewMouse(events.MouseDown, events.Left, start, 0)))
	assert.Equal(t, Orbiting, nv.State)

	ev := drag(events.Left, image.Pt(380, 150), start, 0)
	nv.HandleEvent(cm, navSize, ev)
	assert.True(t, ev.IsHandled())
	assert.Equal(t, Orbiting, nv.State)
	// 180 pixels at 0.5 degrees per pixel
	assertVec3(t, math32.Vec3(-20, 0, 0), cm.Pos)
	tolassert.EqualTol(t, 20, cm.DistTo(), tol)

	// motion is relative to the start of the drag, not cumulative
	nv.HandleEvent(cm, navSize, drag(events.Left, image.Pt(380, 150), start, 0))
	assertVec3(t, math32.Vec3(-20, 0, 0), cm.Pos)

	// scroll is ignored while dragging
	nv.HandleEvent(cm, navSize, events.NewScroll(start, math32.Vec2(0, 500), 0))
	tolassert.EqualTol(t, 20, cm.DistTo(), tol)

	assert.False(t, nv.HandleEvent(cm, navSize, events.NewMouse(events.MouseUp, events.Left, image.Pt(380, 150), 0)))
	assert.Equal(t, Idle, nv.State)
}

func TestNavigatorPan(t *testing.T) {
	for _, tc := range []struct {
		but  events.Buttons
		mods events.Modifiers
	}{{events.Right, 0}, {events.Middle, 0}, {events.Left, events.Shift}} {
		nv := NewNavigator()
		cm := defaultCamera()
		cm.Aspect = float32(navSize.X) / float32(navSize.Y)
		cm.UpdateMatrix()
		start := image.Pt(200, 150)
		nv.HandleEvent(cm, navSize, events.NewMouse(events.MouseDown, tc.but, start, tc.mods))
		assert.Equal(t, Panning, nv.State)

		// the target follows the pointer: moving right and down puts
		// the original target to the right of and below the center
		nv.HandleEvent(cm, navSize, drag(tc.but, image.Pt(250, 200), start, tc.mods))
		p, ok := cm.Project(math32.Vector3Zero, navSize)
		assert.True(t, ok)
		tolassert.EqualTol(t, 250, p.X, 0.1)
		tolassert.EqualTol(t, 200, p.Y, 0.1)
		tolassert.EqualTol(t, 20, cm.DistTo(), tol)

		nv.HandleEvent(cm, navSize, events.NewMouse(events.MouseUp, tc.but, image.Pt(250, 200), 0))
		assert.Equal(t, Idle, nv.State)
	}
}

func TestNavigatorZoom(t *testing.T) {
	nv := NewNavigator()
	cm := defaultCamera()
	ev := events.NewScroll(image.Pt(10, 10), math32.Vec2(0, -100), 0)
	nv.HandleEvent(cm, navSize, ev)
	assert.True(t, ev.IsHandled())
	assert.Equal(t, Idle, nv.State)
	tolassert.EqualTol(t, 20*math32.Exp(-0.2), cm.DistTo(), tol)

	// clamped to the distance limits
	nv.HandleEvent(cm, navSize, events.NewScroll(image.Pt(10, 10), math32.Vec2(0, -1e5), 0))
	tolassert.EqualTol(t, nv.Params.MinDist, cm.DistTo(), tol)
	nv.HandleEvent(cm, navSize, events.NewScroll(image.Pt(10, 10), math32.Vec2(0, 1e5), 0))
	tolassert.EqualTol(t, nv.Params.MaxDist, cm.DistTo(), tol)

	// a zero limit still stops at the near plane
	nv.Params.MinDist = 0
	nv.HandleEvent(cm, navSize, events.NewScroll(image.Pt(10, 10), math32.Vec2(0, -1e5), 0))
	tolassert.EqualTol(t, cm.Near, cm.DistTo(), tol)
	assert.Equal(t, math32.Vec3(0, 0, 0), cm.Target)
}

func TestNavigatorClick(t *testing.T) {
	nv := NewNavigator()
	cm := defaultCamera()
	pos := image.Pt(100, 100)
	nv.HandleEvent(cm, navSize, events.NewMouse(events.MouseDown, events.Left, pos, 0))
	// jitter within the click slop does not move the camera
	nv.HandleEvent(cm, navSize, drag(events.Left, image.Pt(102, 99), pos, 0))
	assert.Equal(t, math32.Vec3(0, 0, 20), cm.Pos)
	assert.True(t, nv.HandleEvent(cm, navSize, events.NewMouse(events.MouseUp, events.Left, image.Pt(102, 99), 0)))

	// a real drag is not a click
	nv.HandleEvent(cm, navSize, events.NewMouse(events.MouseDown, events.Left, pos, 0))
	nv.HandleEvent(cm, navSize, drag(events.Left, image.Pt(140, 100), pos, 0))
	assert.False(t, nv.HandleEvent(cm, navSize, events.NewMouse(events.MouseUp, events.Left, image.Pt(100, 100), 0)))

	// right button release is never a click
	nv.HandleEvent(cm, navSize, events.NewMouse(events.MouseDown, events.Right, pos, 0))
	assert.False(t, nv.HandleEvent(cm, navSize, events.NewMouse(events.MouseUp, events.Right, pos, 0)))
}

func TestNavigatorExclusive(t *testing.T) {
	nv := NewNavigator()
	cm := defaultCamera()
	pos := image.Pt(100, 100)
	nv.HandleEvent(cm, navSize, events.NewMouse(events.MouseDown, events.Left, pos, 0))
	// a second button does not change the drag
	ev := events.NewMouse(events.MouseDown, events.Right, pos, 0)
	nv.HandleEvent(cm, navSize, ev)
	assert.False(t, ev.IsHandled())
	assert.Equal(t, Orbiting, nv.State)
	// nor does releasing it
	nv.HandleEvent(cm, navSize, events.NewMouse(events.MouseUp, events.Right, pos, 0))
	assert.Equal(t, Orbiting, nv.State)

	// moves without a drag do nothing
	nv.Reset()
	nv.HandleEvent(cm, navSize, events.NewMouseMove(events.NoButton, image.Pt(300, 300), pos, 0))
	assert.Equal(t, math32.Vec3(0, 0, 20), cm.Pos)
	assert.Equal(t, "Panning", Panning.String())
}
