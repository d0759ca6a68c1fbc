// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hasnatsamiul/3D-Model-Dashboard/colors"
	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Labels are the fixed human-readable names of the color modes.
var Labels = map[lattice.ColorModes]string{
	lattice.ModeStress:      "Stress",
	lattice.ModeDefect:      "Defect probability",
	lattice.ModeAluminium:   "Aluminium mass",
	lattice.ModeRecommended: "Recommended aluminium (ML)",
	lattice.ModeDelta:       "Delta (rec – current aluminium)",
}

// Label returns the legend label of the given mode.
func Label(mode lattice.ColorModes) string {
	if lb, ok := Labels[mode]; ok {
		return lb
	}
	return mode.String()
}

// Legend is the label and value range displayed for the active color mode.
type Legend struct {
	Label    string
	Min, Max float64
}

// LegendFor returns the legend of the given mode and range,
// and false if the range is not valid (no value is present).
func LegendFor(mode lattice.ColorModes, r Range) (Legend, bool) {
	if !r.Valid {
		return Legend{}, false
	}
	return Legend{Label: Label(mode), Min: r.Min, Max: r.Max}, true
}

func (lg Legend) String() string {
	return fmt.Sprintf("%s  min: %.3f  max: %.3f", lg.Label, lg.Min, lg.Max)
}

// RampImage is an [image.Image] of the hue ramp running
// horizontally across Rect, from blue at the left to red at the right.
type RampImage struct {
	Rect image.Rectangle
}

func (ri *RampImage) ColorModel() color.Model { return color.RGBAModel }

func (ri *RampImage) Bounds() image.Rectangle { return ri.Rect }

func (ri *RampImage) At(x, y int) color.Color {
	w := ri.Rect.Dx() - 1
	if w <= 0 {
		return Ramp(0)
	}
	return Ramp(float64(x-ri.Rect.Min.X) / float64(w))
}

// Overlay layout, in pixels.
const (
	legendMargin = 10
	legendPad    = 8
	legendWidth  = 236
	legendHeight = 62
	barHeight    = 12
)

// DrawLegend draws the legend overlay in the bottom left corner of dst:
// the label, the hue ramp bar, and the min and max values under the bar.
// It returns the rectangle of the whole overlay and of the bar.
func DrawLegend(dst *image.RGBA, lg Legend) (panel, bar image.Rectangle) {
	b := dst.Bounds()
	panel = image.Rect(b.Min.X+legendMargin, b.Max.Y-legendMargin-legendHeight,
		b.Min.X+legendMargin+legendWidth, b.Max.Y-legendMargin)
	draw.Draw(dst, panel, image.NewUniform(color.RGBA{0, 0, 0, 0xc0}), image.Point{}, draw.Over)

	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: colors.Uniform(colors.Text), Face: face}
	ascent := face.Metrics().Ascent.Ceil()

	y := panel.Min.Y + legendPad + ascent
	d.Dot = fixed.P(panel.Min.X+legendPad, y)
	d.DrawString(lg.Label)

	y += legendPad / 2
	bar = image.Rect(panel.Min.X+legendPad, y, panel.Max.X-legendPad, y+barHeight)
	draw.Draw(dst, bar, &RampImage{Rect: bar}, bar.Min, draw.Src)

	y = bar.Max.Y + legendPad/2 + ascent
	d.Dot = fixed.P(bar.Min.X, y)
	d.DrawString(fmt.Sprintf("%.3f", lg.Min))
	maxs := fmt.Sprintf("%.3f", lg.Max)
	d.Dot = fixed.P(bar.Max.X-font.MeasureString(face, maxs).Ceil(), y)
	d.DrawString(maxs)
	return panel, bar
}
