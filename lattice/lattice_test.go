// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"strings"
	"testing"

	"github.com/hasnatsamiul/3D-Model-Dashboard/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoNodes = `{
  "nodes": [
    {"id": 0, "x": 0, "y": 0, "z": 0, "data": {"stress": 1}},
    {"id": 1, "x": 1, "y": 0, "z": 0, "data": {"stress": 3, "aluminium_mass": null, "label": "a"}}
  ],
  "edges": [{"start": 0, "end": 1}]
}`

func TestDecode(t *testing.T) {
	l, err := Decode(strings.NewReader(twoNodes))
	require.NoError(t, err)
	assert.Equal(t, 2, l.NumNodes())
	assert.Equal(t, []Edge{{0, 1}}, l.Edges)
	assert.Equal(t, math32.Vec3(1, 0, 0), l.Nodes[1].Pos())

	// null and non-numeric metrics are absent
	assert.Equal(t, Metrics{"stress": 3}, l.Nodes[1].Data)
	_, ok := l.Nodes[1].Data.Get(AluminiumMass)
	assert.False(t, ok)

	_, err = Decode(strings.NewReader(`{"nodes": [`))
	assert.Error(t, err)

	var nl *Lattice
	assert.Equal(t, 0, nl.NumNodes())
}

func TestValue(t *testing.T) {
	n := &Node{Data: Metrics{
		Stress:                   2,
		DefectProbTrue:           0.4,
		AluminiumMass:            0.5,
		RecommendedAluminiumMass: 0.75,
	}}
	v, ok := Value(n, ModeStress)
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	// falls back to the true defect probability
	v, ok = Value(n, ModeDefect)
	assert.True(t, ok)
	assert.Equal(t, 0.4, v)
	n.Data[DefectProbPred] = 0.1
	v, _ = Value(n, ModeDefect)
	assert.Equal(t, 0.1, v)

	v, _ = Value(n, ModeAluminium)
	assert.Equal(t, 0.5, v)
	v, _ = Value(n, ModeRecommended)
	assert.Equal(t, 0.75, v)
	v, ok = Value(n, ModeDelta)
	assert.True(t, ok)
	assert.Equal(t, 0.25, v)

	// delta needs both metrics
	delete(n.Data, AluminiumMass)
	_, ok = Value(n, ModeDelta)
	assert.False(t, ok)

	_, ok = Value(&Node{}, ModeStress)
	assert.False(t, ok)
	_, ok = Value(n, ColorModes(99))
	assert.False(t, ok)
}

func TestValues(t *testing.T) {
	l, err := Decode(strings.NewReader(twoNodes))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, l.Values(ModeStress))
	assert.Empty(t, l.Values(ModeDelta))
}

func TestColorModes(t *testing.T) {
	assert.Len(t, ColorModesValues(), int(ColorModesN))
	assert.Equal(t, "recommended", ModeRecommended.String())
	assert.Equal(t, "ColorModes(9)", ColorModes(9).String())

	var m ColorModes
	require.NoError(t, m.SetString("Delta"))
	assert.Equal(t, ModeDelta, m)
	assert.Error(t, m.SetString("strain"))
	assert.Equal(t, ModeDelta, m)

	b, err := ModeDefect.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "defect", string(b))
	require.NoError(t, m.UnmarshalText([]byte("aluminium")))
	assert.Equal(t, ModeAluminium, m)
	assert.True(t, m.IsValid())
	assert.False(t, ColorModesN.IsValid())
}

func TestDetails(t *testing.T) {
	n := &Node{ID: 7, X: 1, Y: 2.5, Z: -1, Data: Metrics{StrengthScore: 0.51234, SteelRatio: 0}}
	ds := Details(n)
	assert.Equal(t, Detail{"ID", "7"}, ds[0])
	assert.Equal(t, Detail{"Position", "(1.00, 2.50, -1.00)"}, ds[1])
	assert.Equal(t, Detail{"Strength score", "0.512"}, ds[2])
	assert.Equal(t, Detail{"Material mass", "N/A"}, ds[3])
	assert.Equal(t, Detail{"Steel ratio", "0.000"}, ds[7])
	assert.Len(t, ds, 9)

	s := FormatDetails(ds[:2])
	assert.Equal(t, "ID:        7\nPosition:  (1.00, 2.50, -1.00)\n", s)
}

func TestClone(t *testing.T) {
	l, err := Decode(strings.NewReader(twoNodes))
	require.NoError(t, err)
	c, err := l.Clone()
	require.NoError(t, err)
	assert.Equal(t, l, c)

	l.Nodes[0].Data[Stress] = 100
	l.Edges[0].End = 0
	assert.Equal(t, 1.0, c.Nodes[0].Data[Stress])
	assert.Equal(t, 1, c.Edges[0].End)
}

func TestBounds(t *testing.T) {
	l := NewGrid(3, 2, 2, 0.5)
	bb := l.Bounds()
	assert.Equal(t, math32.Vec3(0, 0, 0), bb.Min)
	assert.Equal(t, math32.Vec3(1, 0.5, 0.5), bb.Max)
	assert.True(t, (&Lattice{}).Bounds().IsEmpty())
}

func TestNewGrid(t *testing.T) {
	l := NewGrid(2, 2, 2, 1)
	assert.Equal(t, 8, l.NumNodes())
	// 3 axes * 4 edges per axis
	assert.Len(t, l.Edges, 12)
	for i, n := range l.Nodes {
		assert.Equal(t, i, n.ID)
	}
	// node order is x, then y, then z index
	assert.Equal(t, Node{ID: 1, X: 0, Y: 0, Z: 1}, l.Nodes[1])
	assert.Equal(t, Node{ID: 4, X: 1, Y: 0, Z: 0}, l.Nodes[4])
	assert.Equal(t, []Edge{{0, 4}, {0, 2}, {0, 1}}, l.Edges[:3])

	l = NewGrid(6, 6, 3, 1)
	assert.Equal(t, 108, l.NumNodes())
	assert.Len(t, l.Edges, 5*6*3+6*5*3+6*6*2)

	assert.Equal(t, 0, NewGrid(0, 3, 3, 1).NumNodes())

	l.SetMetric(Stress, func(n *Node) float64 { return n.X })
	assert.Equal(t, []float64{0, 5}, []float64{l.Values(ModeStress)[0], l.Values(ModeStress)[107]})
}

func TestEnrich(t *testing.T) {
	a := NewGrid(3, 3, 2, 1)
	a.Enrich(7)
	b := NewGrid(3, 3, 2, 1)
	b.Enrich(7)
	assert.Equal(t, a, b)

	for _, mode := range ColorModesValues() {
		assert.Len(t, a.Values(mode), a.NumNodes(), mode.String())
	}
	for i := range a.Nodes {
		d := a.Nodes[i].Data
		rec := 0.6*d[MaterialMass] + 0.3*d[StrengthScore] + 0.1*d[CostFactor]
		assert.InDelta(t, rec, d[RecommendedAluminiumMass], 1e-12)
		assert.InDelta(t, rec*0.2, d[DefectProbPred], 1e-12)
		assert.GreaterOrEqual(t, d[StrengthScore], 0.2)
		assert.Less(t, d[StrengthScore], 0.9)
		assert.Greater(t, d[Stress], 0.0)
	}

	c := NewGrid(3, 3, 2, 1)
	c.Enrich(8)
	assert.NotEqual(t, a, c)

	var empty Lattice
	empty.Enrich(1)
	assert.Equal(t, 0, empty.NumNodes())
}

func TestEnriched(t *testing.T) {
	g := NewGrid(2, 2, 1, 1)
	e, err := g.Enriched(3)
	require.NoError(t, err)
	for i := range g.Nodes {
		assert.Empty(t, g.Nodes[i].Data)
		assert.NotEmpty(t, e.Nodes[i].Data)
	}
	assert.Equal(t, g.Edges, e.Edges)

	want := NewGrid(2, 2, 1, 1)
	want.Enrich(3)
	assert.Equal(t, want, e)
}
