// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"errors"
	"image/color"
	"testing"

	"github.com/hasnatsamiul/3D-Model-Dashboard/colors"
	"github.com/hasnatsamiul/3D-Model-Dashboard/heatmap"
	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
	"github.com/hasnatsamiul/3D-Model-Dashboard/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	blue = color.RGBA{0, 102, 255, 255}
	red  = color.RGBA{255, 0, 0, 255}
)

func defaultParams() *BuildParams {
	bp := &BuildParams{}
	bp.Defaults()
	return bp
}

func twoNodes() *lattice.Lattice {
	return &lattice.Lattice{
		Nodes: []lattice.Node{
			{ID: 0, Data: lattice.Metrics{lattice.Stress: 1}},
			{ID: 1, X: 1, Data: lattice.Metrics{lattice.Stress: 3}},
		},
		Edges: []lattice.Edge{{Start: 0, End: 1}},
	}
}

func TestBuildStress(t *testing.T) {
	ps, warns := Build(twoNodes(), lattice.ModeStress, defaultParams())
	assert.Empty(t, warns)
	require.Len(t, ps.Spheres, 2)
	require.Len(t, ps.Segments, 1)

	assert.Equal(t, Sphere{Center: math32.Vec3(0, 0, 0), Radius: 0.15, Color: blue, Node: 0}, ps.Spheres[0])
	assert.Equal(t, Sphere{Center: math32.Vec3(1, 0, 0), Radius: 0.15, Color: red, Node: 1}, ps.Spheres[1])
	assert.Equal(t, Segment{Start: math32.Vec3(0, 0, 0), End: math32.Vec3(1, 0, 0), Color: colors.Edge}, ps.Segments[0])

	lg, ok := ps.Mapper.Legend()
	assert.True(t, ok)
	assert.Equal(t, heatmap.Legend{Label: "Stress", Min: 1, Max: 3}, lg)
	assert.Equal(t, math32.B3(0, 0, 0, 1, 0, 0), ps.Bounds)
}

func TestBuildDelta(t *testing.T) {
	ps, warns := Build(twoNodes(), lattice.ModeDelta, defaultParams())
	assert.Empty(t, warns)
	for _, sp := range ps.Spheres {
		assert.Equal(t, colors.NoValue, sp.Color)
	}
	_, ok := ps.Mapper.Legend()
	assert.False(t, ok)
}

func TestBuildNil(t *testing.T) {
	var ps *Primitives
	var warns []error
	require.NotPanics(t, func() {
		ps, warns = Build(nil, lattice.ModeStress, defaultParams())
	})
	assert.Empty(t, warns)
	assert.Empty(t, ps.Spheres)
	assert.Empty(t, ps.Segments)
	assert.True(t, ps.Bounds.IsEmpty())

	ps, _ = Build(twoNodes(), lattice.ModeStress, nil)
	require.Len(t, ps.Spheres, 2)
	assert.Equal(t, float32(0.15), ps.Spheres[0].Radius)
	assert.Equal(t, colors.Edge, ps.Segments[0].Color)
}

func TestBuildMalformedEdge(t *testing.T) {
	lat := twoNodes()
	lat.Edges = append(lat.Edges, lattice.Edge{Start: 0, End: 5}, lattice.Edge{Start: -1, End: 1})
	ps, warns := Build(lat, lattice.ModeStress, defaultParams())
	require.Len(t, warns, 2)
	assert.Len(t, ps.Spheres, 2)
	assert.Len(t, ps.Segments, 1)

	assert.True(t, errors.Is(warns[0], ErrIndexOutOfRange))
	var ee *EdgeError
	require.True(t, errors.As(warns[0], &ee))
	assert.Equal(t, 1, ee.Index)
	assert.Equal(t, lattice.Edge{Start: 0, End: 5}, ee.Edge)
	assert.Equal(t, "xyz: edge 1 {0 5} refers to a node outside [0, 2)", ee.Error())

	assert.NoError(t, CheckEdge(lat, 0))
	assert.ErrorIs(t, CheckEdge(lat, 2), ErrIndexOutOfRange)
}

func TestBuildModeSwitch(t *testing.T) {
	lat := lattice.NewGrid(3, 3, 2, 1)
	lat.SetMetric(lattice.Stress, func(n *lattice.Node) float64 { return n.X })
	lat.SetMetric(lattice.AluminiumMass, func(n *lattice.Node) float64 { return n.Y })
	bp := defaultParams()

	first, _ := Build(lat, lattice.ModeStress, bp)
	second, _ := Build(lat, lattice.ModeAluminium, bp)
	assert.NotEqual(t, first.Gen, second.Gen)
	assert.Equal(t, lattice.ModeAluminium, second.Mode)

	m := heatmap.New(lat, lattice.ModeAluminium)
	for i, sp := range second.Spheres {
		assert.Equal(t, m.NodeColor(&lat.Nodes[sp.Node]), sp.Color, "sphere %d", i)
	}
	// the first set is untouched by the second build
	m = heatmap.New(lat, lattice.ModeStress)
	for _, sp := range first.Spheres {
		assert.Equal(t, m.NodeColor(&lat.Nodes[sp.Node]), sp.Color)
	}
}

func TestNewMaterials(t *testing.T) {
	ps, _ := Build(twoNodes(), lattice.ModeStress, defaultParams())
	ms := NewMaterials(ps)
	assert.Len(t, ms.Library, 3)
	assert.Equal(t, blue, ms.Library[ms.Spheres[0]].Color)
	assert.Equal(t, red, ms.Library[ms.Spheres[1]].Color)
	assert.Equal(t, colors.Edge, ms.Library[ms.Segments[0]].Color)
	assert.Len(t, ms.Outlines, 3)
}
