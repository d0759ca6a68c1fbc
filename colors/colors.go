// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the fixed palette of the lattice viewer and
// helpers for converting between colors and their hex representations.
package colors

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// Background is the clear color of the viewer surface.
	Background = color.RGBA{0x11, 0x11, 0x11, 0xff}

	// Edge is the color of every lattice edge segment.
	Edge = color.RGBA{0x44, 0x44, 0x44, 0xff}

	// NoValue is the neutral mid-tone given to nodes that have no value
	// for the active color mode. It is deliberately not on the heat ramp.
	NoValue = color.RGBA{0x88, 0x88, 0x88, 0xff}

	// Text is the color of overlay text.
	Text = color.RGBA{0xee, 0xee, 0xee, 0xff}
)

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromHex parses the given non-alpha-premultiplied hex color string
// and returns the resulting alpha-premultiplied color.
// It supports the #rgb and #rrggbb forms; the leading # is optional.
func FromHex(hex string) (color.RGBA, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// AsHex returns the color as a standard #RRGGBB
// hexadecimal string, ignoring alpha.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := AsRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
}

// Uniform returns a new [image.Uniform] filled completely with the given color.
func Uniform(c color.Color) image.Image {
	return image.NewUniform(c)
}
