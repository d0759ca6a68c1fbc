// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"fmt"
	"strings"
)

// ColorModes selects which metric, or derived metric, drives node coloring.
type ColorModes int32 //enums:enum -trim-prefix Mode

const (
	// ModeStress colors by the stress metric.
	ModeStress ColorModes = iota

	// ModeDefect colors by the predicted defect probability,
	// falling back to the true defect probability.
	ModeDefect

	// ModeAluminium colors by the aluminium mass.
	ModeAluminium

	// ModeRecommended colors by the recommended aluminium mass.
	ModeRecommended

	// ModeDelta colors by the recommended minus the current aluminium mass.
	ModeDelta

	// ColorModesN is the number of color modes.
	ColorModesN
)

var colorModesNames = [...]string{"stress", "defect", "aluminium", "recommended", "delta"}

// ColorModesValues returns all possible values for the type ColorModes.
func ColorModesValues() []ColorModes {
	return []ColorModes{ModeStress, ModeDefect, ModeAluminium, ModeRecommended, ModeDelta}
}

// String returns the string representation of this ColorModes value.
func (i ColorModes) String() string {
	if i < 0 || i >= ColorModesN {
		return fmt.Sprintf("ColorModes(%d)", int32(i))
	}
	return colorModesNames[i]
}

// IsValid returns whether the value is a valid option for type ColorModes.
func (i ColorModes) IsValid() bool {
	return i >= 0 && i < ColorModesN
}

// SetString sets the ColorModes value from its string representation,
// and returns an error if the string is invalid.
func (i *ColorModes) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for j, nm := range colorModesNames {
		if nm == s {
			*i = ColorModes(j)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type ColorModes (valid: %s)", s, strings.Join(colorModesNames[:], ", "))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i ColorModes) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *ColorModes) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
