// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lattice provides the node and edge graph of material
// simulation results that is visualized by the viewer, along with
// the metric accessor that extracts per-node values for a color mode.
package lattice

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/hasnatsamiul/3D-Model-Dashboard/math32"
	"github.com/jinzhu/copier"
)

// Lattice is the full node and edge graph under visualization.
// It is immutable once received: the viewer only ever reads it.
type Lattice struct {

	// Nodes is the ordered sequence of lattice nodes.
	Nodes []Node `json:"nodes"`

	// Edges is the ordered sequence of edges, which refer to
	// nodes by their index in Nodes.
	Edges []Edge `json:"edges"`
}

// Node is one lattice node with its position and metrics.
type Node struct {

	// ID is unique within the lattice.
	ID int `json:"id"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	// Data holds the metrics of the node. A missing key is absent.
	Data Metrics `json:"data,omitempty"`
}

// Pos returns the position of the node.
func (n *Node) Pos() math32.Vector3 {
	return math32.Vec3From64(n.X, n.Y, n.Z)
}

func (n *Node) String() string {
	return fmt.Sprintf("node %d (%g, %g, %g)", n.ID, n.X, n.Y, n.Z)
}

// Edge connects two nodes by their index in [Lattice.Nodes].
type Edge struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Metrics maps a metric name to its value. Metrics that are null,
// non-numeric or NaN in the source data are dropped, so a lookup
// miss is the only way a metric is absent.
type Metrics map[string]float64

// Get returns the named metric and whether it is present.
func (m Metrics) Get(name string) (float64, bool) {
	v, ok := m[name]
	if !ok || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// UnmarshalJSON decodes a metrics object, keeping only the numeric values.
func (m *Metrics) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*m = nil
		return nil
	}
	mt := make(Metrics, len(raw))
	for k, v := range raw {
		if f, ok := v.(float64); ok && !math.IsNaN(f) {
			mt[k] = f
		}
	}
	*m = mt
	return nil
}

// NumNodes returns the number of nodes; it is safe on a nil lattice.
func (l *Lattice) NumNodes() int {
	if l == nil {
		return 0
	}
	return len(l.Nodes)
}

// Bounds returns the bounding box of all node positions.
// It is empty if there are no nodes.
func (l *Lattice) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for i := range l.Nodes {
		bb.ExpandByPoint(l.Nodes[i].Pos())
	}
	return bb
}

// Clone returns a deep copy of the lattice, so that a caller can
// hand it to another goroutine and keep mutating its own copy.
func (l *Lattice) Clone() (*Lattice, error) {
	nl := &Lattice{}
	if err := copier.CopyWithOption(nl, l, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("lattice.Clone: %w", err)
	}
	return nl, nil
}
