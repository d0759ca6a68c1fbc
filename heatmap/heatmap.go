// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heatmap maps lattice metric values onto the blue to red
// hue ramp used to color nodes, and reports the legend for the
// active color mode.
package heatmap

import (
	"image/color"
	"math"

	"github.com/hasnatsamiul/3D-Model-Dashboard/colors"
	"github.com/hasnatsamiul/3D-Model-Dashboard/colors/hsl"
	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
)

const (
	// HueMin is the hue in degrees of the lowest value (blue).
	HueMin = 216

	// Saturation and Lightness of every color on the ramp.
	Saturation = 1
	Lightness  = 0.5
)

// Range is the minimum and maximum of a set of values.
// It is not Valid if the set was empty.
type Range struct {
	Min, Max float64
	Valid    bool
}

// RangeOf returns the range of the given values, ignoring NaNs.
func RangeOf(vals []float64) Range {
	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		r.Min = min(r.Min, v)
		r.Max = max(r.Max, v)
		r.Valid = true
	}
	if !r.Valid {
		return Range{}
	}
	return r
}

// Norm returns the normalized position of v in the range, clamped to
// [0, 1]. It is 0 when the range is degenerate (Max == Min), invalid,
// or v is NaN.
func (r Range) Norm(v float64) float64 {
	// halves keep the differences finite for ranges wider than MaxFloat64
	d := r.Max/2 - r.Min/2
	if !r.Valid || d <= 0 || math.IsNaN(v) {
		return 0
	}
	t := (v/2 - r.Min/2) / d
	if math.IsNaN(t) {
		return 0
	}
	return min(max(t, 0), 1)
}

// Ramp returns the color at normalized position t on the hue ramp,
// going from hue 216 (blue) at 0 to hue 0 (red) at 1.
// t is clamped to [0, 1].
func Ramp(t float64) color.RGBA {
	if math.IsNaN(t) {
		t = 0
	}
	t = min(max(t, 0), 1)
	return hsl.New(float32(HueMin-HueMin*t), Saturation, Lightness).AsRGBA()
}

// Mapper is the color mapper of one lattice under one color mode.
type Mapper struct {

	// Mode is the color mode values are taken from.
	Mode lattice.ColorModes

	// Range is the range of all values present for Mode.
	Range Range
}

// New returns a new [Mapper] for the given lattice and color mode,
// with the range computed over all the values present for the mode.
func New(lat *lattice.Lattice, mode lattice.ColorModes) *Mapper {
	return &Mapper{Mode: mode, Range: RangeOf(lat.Values(mode))}
}

// Norm returns the normalized value of v; see [Range.Norm].
func (m *Mapper) Norm(v float64) float64 {
	return m.Range.Norm(v)
}

// ColorOf returns the ramp color of the given value.
func (m *Mapper) ColorOf(v float64) color.RGBA {
	return Ramp(m.Norm(v))
}

// NodeColor returns the color of the given node: the ramp color of its
// value, or [colors.NoValue] if it has no value for the mode or
// no node has one.
func (m *Mapper) NodeColor(n *lattice.Node) color.RGBA {
	if !m.Range.Valid {
		return colors.NoValue
	}
	v, ok := lattice.Value(n, m.Mode)
	if !ok {
		return colors.NoValue
	}
	return m.ColorOf(v)
}

// Legend returns the legend of the mapper, and false if
// there is none because no node has a value for the mode.
func (m *Mapper) Legend() (Legend, bool) {
	return LegendFor(m.Mode, m.Range)
}
