// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strings"

// Modifiers is a bitflag set of the modifier keys held during an event.
type Modifiers int32 //enums:bitflag

const (
	// Shift is the shift key
	Shift Modifiers = 1 << iota

	// Control is the control key
	Control

	// Alt is the alt or option key
	Alt

	// Meta is the command or windows key
	Meta
)

var modifierNames = []string{"Shift", "Control", "Alt", "Meta"}

// HasFlag returns whether all of the given flags are set.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&f == f
}

// SetFlag sets or clears the given flags.
func (m *Modifiers) SetFlag(on bool, f Modifiers) {
	if on {
		*m |= f
	} else {
		*m &^= f
	}
}

// ModifiersString returns the modifiers as a string joined by |,
// in the form used for key chords.
func (m Modifiers) ModifiersString() string {
	var names []string
	for i, nm := range modifierNames {
		if m.HasFlag(1 << i) {
			names = append(names, nm)
		}
	}
	return strings.Join(names, "|")
}
