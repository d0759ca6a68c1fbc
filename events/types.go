// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Types determines the type of pointer event delivered to a viewer.
// The type includes both the source and the "action" of the event
// (e.g., MouseDown and MouseUp are separate event types).
type Types int32 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See Button() for which.
	MouseDown

	// MouseUp happens when a mouse button is released.
	// See Button() for which.
	MouseUp

	// MouseMove is sent when the mouse is moving but no button is down.
	// Not unique, and Prev position is updated during compression.
	MouseMove

	// MouseDrag is sent when the mouse is moving and there
	// is a button down. The start pos indicates where the button
	// was first pressed. Not unique, and Prev position is
	// updated during compression.
	MouseDrag

	// Scroll is for scroll wheel or other scrolling events (gestures).
	// These are not unique and Delta is updated during compression.
	Scroll

	// TypesN is the number of event types
	TypesN
)

var typesNames = [...]string{"UnknownType", "MouseDown", "MouseUp", "MouseMove", "MouseDrag", "Scroll"}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return fmt.Sprintf("Types(%d)", int32(tp))
	}
	return typesNames[tp]
}

// IsUnique returns true if events of this type must always be
// delivered, instead of being compressed with the previous event.
func (tp Types) IsUnique() bool {
	return tp != MouseMove && tp != MouseDrag && tp != Scroll
}
