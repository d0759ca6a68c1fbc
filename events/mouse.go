// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"github.com/hasnatsamiul/3D-Model-Dashboard/math32"
)

// Buttons is a mouse button.
type Buttons int32 //enums:enum

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonsNames = [...]string{"NoButton", "Left", "Middle", "Right"}

func (b Buttons) String() string {
	if b < NoButton || b > Right {
		return fmt.Sprintf("Buttons(%d)", int32(b))
	}
	return buttonsNames[b]
}

// Mouse is a basic mouse event for all mouse events except Scroll
type Mouse struct {
	Base
}

// NewMouse returns a new unique [Mouse] event of the given type
// (typically [MouseDown] or [MouseUp]).
func NewMouse(typ Types, but Buttons, where image.Point, mods Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Init()
	ev.Typ = typ
	ev.Unique = true
	ev.Button = but
	ev.Where = where
	ev.Start = where
	ev.Prev = where
	ev.Mods = mods
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}

// NewMouseMove returns a new [MouseMove] event.
func NewMouseMove(but Buttons, where, prev image.Point, mods Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Init()
	ev.Typ = MouseMove
	// not unique
	ev.Button = but
	ev.Where = where
	ev.Prev = prev
	ev.Mods = mods
	return ev
}

// NewMouseDrag returns a new [MouseDrag] event, with start
// being where the button was first pressed.
func NewMouseDrag(but Buttons, where, prev, start image.Point, mods Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Init()
	ev.Typ = MouseDrag
	// not unique
	ev.Button = but
	ev.Where = where
	ev.Prev = prev
	ev.Start = start
	ev.Mods = mods
	return ev
}

// MouseScroll is for mouse scrolling, recording the delta of the scroll
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis, in pixel units.
	// Positive Y scrolls toward the user (zooming out).
	Delta math32.Vector2
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Delta, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}

// NewScroll returns a new [Scroll] event.
func NewScroll(where image.Point, delta math32.Vector2, mods Modifiers) *MouseScroll {
	ev := &MouseScroll{}
	ev.Init()
	ev.Typ = Scroll
	// not unique, but delta integrated!
	ev.Where = where
	ev.Prev = where
	ev.Delta = delta
	ev.Mods = mods
	return ev
}
