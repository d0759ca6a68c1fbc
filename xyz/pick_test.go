// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"testing"

	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
	"github.com/hasnatsamiul/3D-Model-Dashboard/math32"
	"github.com/stretchr/testify/assert"
)

func TestPickNearest(t *testing.T) {
	// two nodes on the view axis, the second nearer to the camera
	lat := &lattice.Lattice{Nodes: []lattice.Node{{ID: 10}, {ID: 11, Z: 5}, {ID: 12, X: 4}}}
	ps, _ := Build(lat, lattice.ModeStress, defaultParams())
	cm := defaultCamera()
	size := image.Pt(320, 320)

	i, ok := Pick(image.Pt(160, 160), size, cm, ps)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	// idempotent for a static scene and camera
	for range 5 {
		j, ok := Pick(image.Pt(160, 160), size, cm, ps)
		assert.True(t, ok)
		assert.Equal(t, i, j)
	}

	px, _ := cm.Project(math32.Vec3(4, 0, 0), size)
	i, ok = Pick(px.ToPoint(), size, cm, ps)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = Pick(image.Pt(5, 5), size, cm, ps)
	assert.False(t, ok)
	_, ok = Pick(image.Pt(160, 160), image.Point{}, cm, ps)
	assert.False(t, ok)
	_, ok = Pick(image.Pt(160, 160), size, cm, nil)
	assert.False(t, ok)
}

func TestPickIgnoresSegments(t *testing.T) {
	lat := &lattice.Lattice{
		Nodes: []lattice.Node{{ID: 0, X: -4}, {ID: 1, X: 4}},
		Edges: []lattice.Edge{{Start: 0, End: 1}},
	}
	ps, _ := Build(lat, lattice.ModeStress, defaultParams())
	// the middle of the edge
	_, ok := Pick(image.Pt(160, 160), image.Pt(320, 320), defaultCamera(), ps)
	assert.False(t, ok)
}

func TestPickRay(t *testing.T) {
	ps := &Primitives{Spheres: []Sphere{
		{Center: math32.Vec3(0, 0, -10), Radius: 1, Node: 0},
		{Center: math32.Vec3(0, 0, -5), Radius: 1, Node: 1},
		{Center: math32.Vec3(0, 0, 5), Radius: 1, Node: 2},
	}}
	i, ok := PickRay(math32.Ray{Dir: math32.Vec3(0, 0, -1)}, ps)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	// equal distance: either is acceptable
	ps.Spheres[0].Center.Z = -5
	i, ok = PickRay(math32.Ray{Dir: math32.Vec3(0, 0, -1)}, ps)
	assert.True(t, ok)
	assert.Contains(t, []int{0, 1}, i)

	_, ok = PickRay(math32.Ray{Dir: math32.Vec3(1, 0, 0)}, ps)
	assert.False(t, ok)
}
