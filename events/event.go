// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer events that drive lattice
// navigation and selection, and the listeners that receive them.
package events

import (
	"image"
	"time"
)

// Event is the interface for all pointer events.
type Event interface {
	// Type returns the type of event
	Type() Types

	// Time returns the time at which the event was generated
	Time() time.Time

	// Pos returns the current pointer position in the
	// coordinates of the viewer surface
	Pos() image.Point

	// PrevDelta returns the amount the pointer moved
	// since the previous event
	PrevDelta() image.Point

	// StartDelta returns the amount the pointer moved
	// since the button was first pressed
	StartDelta() image.Point

	// MouseButton returns the button associated with the event
	MouseButton() Buttons

	// Modifiers returns the modifier keys held during the event
	Modifiers() Modifiers

	// IsHandled returns whether this event has already been processed
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// so it is no longer passed to other listeners
	SetHandled()

	// ClearHandled resets the handled state
	ClearHandled()
}

// Base is the base type for events.
// It is designed to support most event types, so no
// further subtypes are needed.
type Base struct {

	// Typ is the type of event
	Typ Types

	// Unique, if true, indicates that the event is unique and
	// must always be sent, even if it matches the previous event
	Unique bool

	// Handled indicates that the event has been handled
	Handled bool

	// GenTime records the time when the event was first generated
	GenTime time.Time

	// Where is the event location
	Where image.Point

	// Prev is the previous event location for move events
	Prev image.Point

	// Start is the starting location of a drag
	Start image.Point

	// Button is the mouse button for mouse events
	Button Buttons

	// Mods are the modifier keys held down
	Mods Modifiers
}

// Init sets the generation time to now.
func (ev *Base) Init() {
	ev.GenTime = time.Now()
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) Pos() image.Point {
	return ev.Where
}

func (ev *Base) PrevDelta() image.Point {
	return ev.Where.Sub(ev.Prev)
}

func (ev *Base) StartDelta() image.Point {
	return ev.Where.Sub(ev.Start)
}

func (ev *Base) MouseButton() Buttons {
	return ev.Button
}

func (ev *Base) Modifiers() Modifiers {
	return ev.Mods
}

func (ev *Base) IsHandled() bool {
	return ev.Handled
}

func (ev *Base) SetHandled() {
	ev.Handled = true
}

func (ev *Base) ClearHandled() {
	ev.Handled = false
}
