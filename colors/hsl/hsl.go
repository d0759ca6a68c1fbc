// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides a color in the HSL (hue, saturation, lightness)
// color space, which is what the heatmap hue ramp is expressed in.
package hsl

import (
	"fmt"
	"image/color"

	"github.com/hasnatsamiul/3D-Model-Dashboard/math32"
)

// HSL represents the Hue [0..360], Saturation [0..1], and Luminance
// (lightness) [0..1] of the color using float32 values.
// In general, HSL is a poor perceptual color space and should only
// be used where it is the specified model, as for hue ramps.
type HSL struct {

	// the hue of the color, in degrees [0..360)
	H float32

	// the saturation of the color [0..1]
	S float32

	// the luminance (lightness) of the color [0..1]
	L float32

	// the transparency of the color [0..1]
	A float32
}

// New returns a new HSL representation for given parameters:
// hue = 0..360
// saturation = 0..1
// lightness = 0..1
// A is automatically set to 1.
func New(hue, saturation, lightness float32) HSL {
	return HSL{hue, saturation, lightness, 1}
}

// FromColor constructs a new HSL color from a standard [color.Color]
func FromColor(c color.Color) HSL {
	h := HSL{}
	h.SetColor(c)
	return h
}

// Model is the standard [color.Model] that converts colors to HSL.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	return FromColor(c)
}

// RGBA implements the color.Color interface.
// Performs the premultiplication of the RGB components by alpha at this point.
func (h HSL) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := HSLtoRGBf32(h.H, h.S, h.L)
	r = uint32(fr*h.A*65535.0 + 0.5)
	g = uint32(fg*h.A*65535.0 + 0.5)
	b = uint32(fb*h.A*65535.0 + 0.5)
	a = uint32(h.A*65535.0 + 0.5)
	return
}

// AsRGBA returns a standard color.RGBA type
func (h HSL) AsRGBA() color.RGBA {
	fr, fg, fb := HSLtoRGBf32(h.H, h.S, h.L)
	return color.RGBA{
		uint8(fr*h.A*255.0 + 0.5),
		uint8(fg*h.A*255.0 + 0.5),
		uint8(fb*h.A*255.0 + 0.5),
		uint8(h.A*255.0 + 0.5),
	}
}

// SetUint32 sets components from unsigned 32bit integers (alpha-premultiplied)
func (h *HSL) SetUint32(r, g, b, a uint32) {
	fa := float32(a) / 65535
	if fa == 0 {
		*h = HSL{}
		return
	}
	fr := (float32(r) / 65535) / fa
	fg := (float32(g) / 65535) / fa
	fb := (float32(b) / 65535) / fa
	h.H, h.S, h.L = RGBtoHSLf32(fr, fg, fb)
	h.A = fa
}

// SetColor sets from a standard color.Color
func (h *HSL) SetColor(ci color.Color) {
	if ci == nil {
		*h = HSL{}
		return
	}
	r, g, b, a := ci.RGBA()
	h.SetUint32(r, g, b, a)
}

// HSLtoRGBf32 converts HSL values to RGB float32 0..1 values (non alpha-premultiplied),
// based on https://en.wikipedia.org/wiki/HSL_and_HSV#From_HSL
func HSLtoRGBf32(h, s, l float32) (r, g, b float32) {
	if s == 0 {
		return l, l, l
	}
	h = h - 360*math32.Floor(h/360)
	c := (1 - math32.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math32.Abs(hp-2*math32.Floor(hp/2)-1))
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return math32.Clamp(r+m, 0, 1), math32.Clamp(g+m, 0, 1), math32.Clamp(b+m, 0, 1)
}

// RGBtoHSLf32 converts RGB 0..1 values (non alpha-premultiplied) to HSL,
// with hue in degrees [0..360).
func RGBtoHSLf32(r, g, b float32) (h, s, l float32) {
	mx := math32.Max(math32.Max(r, g), b)
	mn := math32.Min(math32.Min(r, g), b)
	l = (mx + mn) / 2
	if mx == mn {
		return 0, 0, l
	}
	d := mx - mn
	if l > 0.5 {
		s = d / (2 - mx - mn)
	} else {
		s = d / (mx + mn)
	}
	switch mx {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	return
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", h.H, h.S, h.L)
}
