// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/hasnatsamiul/3D-Model-Dashboard/base/tolassert"
	"github.com/hasnatsamiul/3D-Model-Dashboard/colors"
	"github.com/hasnatsamiul/3D-Model-Dashboard/colors/hsl"
	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
	"github.com/stretchr/testify/assert"
)

var (
	blue = color.RGBA{0, 102, 255, 255}
	red  = color.RGBA{255, 0, 0, 255}
)

func twoNodes() *lattice.Lattice {
	return &lattice.Lattice{
		Nodes: []lattice.Node{
			{ID: 0, Data: lattice.Metrics{lattice.Stress: 1}},
			{ID: 1, X: 1, Data: lattice.Metrics{lattice.Stress: 3}},
		},
		Edges: []lattice.Edge{{Start: 0, End: 1}},
	}
}

func TestRange(t *testing.T) {
	r := RangeOf([]float64{3, math.NaN(), -1, 2})
	assert.Equal(t, Range{Min: -1, Max: 3, Valid: true}, r)
	assert.Equal(t, Range{}, RangeOf(nil))
	assert.Equal(t, Range{}, RangeOf([]float64{math.NaN()}))

	tolassert.Equal(t, 0.5, r.Norm(1))
	assert.Equal(t, 0.0, r.Norm(-5))
	assert.Equal(t, 1.0, r.Norm(7))
	assert.Equal(t, 0.0, r.Norm(math.NaN()))

	flat := RangeOf([]float64{2, 2})
	assert.Equal(t, 0.0, flat.Norm(2))
	assert.Equal(t, 0.0, flat.Norm(9))
	assert.Equal(t, 0.0, Range{}.Norm(1))

	wide := RangeOf([]float64{-math.MaxFloat64, math.MaxFloat64})
	assert.Equal(t, 1.0, wide.Norm(math.MaxFloat64))
	assert.Equal(t, 0.0, wide.Norm(-math.MaxFloat64))
	tolassert.Equal(t, 0.5, wide.Norm(0))
	assert.Equal(t, 1.0, wide.Norm(math.Inf(1)))
	assert.Equal(t, 0.0, wide.Norm(math.Inf(-1)))

	lat := &lattice.Lattice{Nodes: []lattice.Node{
		{ID: 0, Data: lattice.Metrics{lattice.Stress: -1e308}},
		{ID: 1, Data: lattice.Metrics{lattice.Stress: 1e308}},
	}}
	mp := New(lat, lattice.ModeStress)
	assert.Equal(t, blue, mp.NodeColor(&lat.Nodes[0]))
	assert.Equal(t, red, mp.NodeColor(&lat.Nodes[1]))
}

func TestRamp(t *testing.T) {
	assert.Equal(t, blue, Ramp(0))
	assert.Equal(t, red, Ramp(1))
	assert.Equal(t, Ramp(0), Ramp(-3))
	assert.Equal(t, Ramp(1), Ramp(3))
	assert.Equal(t, Ramp(0), Ramp(math.NaN()))

	// hue decreases monotonically along the ramp
	prev := float32(HueMin + 1)
	for i := 0; i <= 20; i++ {
		h := hsl.FromColor(Ramp(float64(i) / 20)).H
		assert.Less(t, h, prev)
		prev = h
	}
}

func TestMapperStress(t *testing.T) {
	lat := twoNodes()
	m := New(lat, lattice.ModeStress)
	assert.Equal(t, 1.0, m.Range.Min)
	assert.Equal(t, 3.0, m.Range.Max)
	assert.Equal(t, blue, m.NodeColor(&lat.Nodes[0]))
	assert.Equal(t, red, m.NodeColor(&lat.Nodes[1]))
	assert.Equal(t, m.ColorOf(2), Ramp(0.5))

	lg, ok := m.Legend()
	assert.True(t, ok)
	assert.Equal(t, Legend{Label: "Stress", Min: 1, Max: 3}, lg)
	assert.Equal(t, "Stress  min: 1.000  max: 3.000", lg.String())

	// every node's t lies in [0, 1]
	for i := range lat.Nodes {
		v, _ := lattice.Value(&lat.Nodes[i], m.Mode)
		nt := m.Norm(v)
		assert.True(t, nt >= 0 && nt <= 1)
	}
}

func TestMapperEmpty(t *testing.T) {
	lat := twoNodes()
	m := New(lat, lattice.ModeDelta)
	assert.False(t, m.Range.Valid)
	_, ok := m.Legend()
	assert.False(t, ok)
	for i := range lat.Nodes {
		assert.Equal(t, colors.NoValue, m.NodeColor(&lat.Nodes[i]))
	}
}

func TestMapperAbsent(t *testing.T) {
	lat := twoNodes()
	lat.Nodes = append(lat.Nodes, lattice.Node{ID: 2})
	m := New(lat, lattice.ModeStress)
	assert.Equal(t, Range{Min: 1, Max: 3, Valid: true}, m.Range)
	assert.Equal(t, colors.NoValue, m.NodeColor(&lat.Nodes[2]))
}

func TestMapperFlat(t *testing.T) {
	lat := twoNodes()
	lat.Nodes[1].Data[lattice.Stress] = 1
	m := New(lat, lattice.ModeStress)
	assert.Equal(t, blue, m.NodeColor(&lat.Nodes[0]))
	assert.Equal(t, blue, m.NodeColor(&lat.Nodes[1]))
}

func TestLabels(t *testing.T) {
	for _, mode := range lattice.ColorModesValues() {
		assert.NotEmpty(t, Labels[mode], mode.String())
	}
	assert.Equal(t, "Recommended aluminium (ML)", Label(lattice.ModeRecommended))
	assert.Equal(t, "ColorModes(12)", Label(lattice.ColorModes(12)))
}

func TestDrawLegend(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 320, 200))
	panel, bar := DrawLegend(img, Legend{Label: "Stress", Min: 1, Max: 3})
	assert.True(t, panel.In(img.Bounds()))
	assert.True(t, bar.In(panel))
	assert.Equal(t, blue, img.RGBAAt(bar.Min.X, bar.Min.Y+1))
	assert.Equal(t, red, img.RGBAAt(bar.Max.X-1, bar.Min.Y+1))

	// some label text is drawn above the bar
	lit := false
	for y := panel.Min.Y; y < bar.Min.Y && !lit; y++ {
		for x := panel.Min.X; x < panel.Max.X; x++ {
			if img.RGBAAt(x, y).R > 0x80 {
				lit = true
				break
			}
		}
	}
	assert.True(t, lit)
}
