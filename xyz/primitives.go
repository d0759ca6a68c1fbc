// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz turns a lattice into a set of drawable primitives and
// provides the camera, navigation, picking and rendering of that set
// for one viewer.
package xyz

import (
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/hasnatsamiul/3D-Model-Dashboard/base/errors"
	"github.com/hasnatsamiul/3D-Model-Dashboard/colors"
	"github.com/hasnatsamiul/3D-Model-Dashboard/heatmap"
	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
	"github.com/hasnatsamiul/3D-Model-Dashboard/math32"
)

// ErrIndexOutOfRange is the condition of an edge that refers
// to a node index outside of the lattice nodes.
var ErrIndexOutOfRange = errors.New("xyz: node index out of range")

// EdgeError is the error of a malformed edge. It wraps [ErrIndexOutOfRange].
type EdgeError struct {

	// Index is the index of the edge in the lattice edges.
	Index int

	// Edge is the malformed edge.
	Edge lattice.Edge

	// NumNodes is the number of nodes in the lattice.
	NumNodes int
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("xyz: edge %d {%d %d} refers to a node outside [0, %d)", e.Index, e.Edge.Start, e.Edge.End, e.NumNodes)
}

func (e *EdgeError) Unwrap() error {
	return ErrIndexOutOfRange
}

// CheckEdge returns an [*EdgeError] if edge i of the lattice
// refers to a node index that does not exist.
func CheckEdge(lat *lattice.Lattice, i int) error {
	ed := lat.Edges[i]
	n := len(lat.Nodes)
	if ed.Start < 0 || ed.Start >= n || ed.End < 0 || ed.End >= n {
		return &EdgeError{Index: i, Edge: ed, NumNodes: n}
	}
	return nil
}

// Sphere is the drawable primitive of one lattice node.
type Sphere struct {
	Center math32.Vector3
	Radius float32
	Color  color.RGBA

	// Node is the index of the source node in the lattice nodes.
	// It is a lookup handle only.
	Node int
}

// Bounds returns the bounding sphere used for picking.
func (sp *Sphere) Bounds() math32.Sphere {
	return math32.Sphere{Center: sp.Center, Radius: sp.Radius}
}

// Segment is the drawable primitive of one lattice edge.
// Segments are never pickable.
type Segment struct {
	Start, End math32.Vector3
	Color      color.RGBA
}

// Primitives is the complete set of drawable primitives of one build.
// A set is never modified after it is built: a rebuild makes a new set
// that replaces the old one as a whole.
type Primitives struct {
	Spheres  []Sphere
	Segments []Segment

	// Mode is the color mode the spheres were colored with.
	Mode lattice.ColorModes

	// Mapper is the color mapper used for the spheres.
	Mapper *heatmap.Mapper

	// Bounds is the bounding box of all sphere centers.
	Bounds math32.Box3

	// Gen uniquely identifies the set, for resource tracking.
	Gen uint64
}

var primitivesGen atomic.Uint64

// BuildParams are the parameters of [Build].
type BuildParams struct {

	// Radius is the radius of every node sphere.
	Radius float32 `default:"0.15"`

	// EdgeColor is the color of every edge segment.
	EdgeColor color.RGBA
}

// Defaults sets the default build parameters.
func (bp *BuildParams) Defaults() {
	bp.Radius = 0.15
	bp.EdgeColor = colors.Edge
}

// Build returns the primitives of the given lattice colored by the given
// mode: one sphere per node and one segment per valid edge. Edges that
// refer to nodes out of range are skipped and logged, and their errors are
// returned as non-fatal warnings; the build itself never fails.
// A nil lattice gives an empty set, and nil params the default ones.
func Build(lat *lattice.Lattice, mode lattice.ColorModes, params *BuildParams) (*Primitives, []error) {
	if lat == nil {
		lat = &lattice.Lattice{}
	}
	if params == nil {
		params = &BuildParams{}
		params.Defaults()
	}
	ps := &Primitives{
		Mode:    mode,
		Mapper:  heatmap.New(lat, mode),
		Bounds:  math32.B3Empty(),
		Gen:     primitivesGen.Add(1),
		Spheres: make([]Sphere, len(lat.Nodes)),
	}
	for i := range lat.Nodes {
		nd := &lat.Nodes[i]
		pos := nd.Pos()
		ps.Spheres[i] = Sphere{Center: pos, Radius: params.Radius, Color: ps.Mapper.NodeColor(nd), Node: i}
		ps.Bounds.ExpandByPoint(pos)
	}
	var warns []error
	ps.Segments = make([]Segment, 0, len(lat.Edges))
	for i, ed := range lat.Edges {
		if err := CheckEdge(lat, i); err != nil {
			warns = append(warns, errors.Warn(err))
			continue
		}
		ps.Segments = append(ps.Segments, Segment{
			Start: lat.Nodes[ed.Start].Pos(),
			End:   lat.Nodes[ed.End].Pos(),
			Color: params.EdgeColor,
		})
	}
	return ps, warns
}
