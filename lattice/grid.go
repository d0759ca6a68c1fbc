// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

// NewGrid returns a regular nx by ny by nz lattice with the given
// spacing between neighboring nodes. Nodes are ordered by x, then y,
// then z index, and each node has an edge to its +x, +y and +z
// neighbor where one exists. The nodes have no metrics.
func NewGrid(nx, ny, nz int, spacing float64) *Lattice {
	nx, ny, nz = max(nx, 0), max(ny, 0), max(nz, 0)
	l := &Lattice{Nodes: make([]Node, 0, nx*ny*nz)}
	index := func(i, j, k int) int {
		return (i*ny+j)*nz + k
	}
	for i := range nx {
		for j := range ny {
			for k := range nz {
				l.Nodes = append(l.Nodes, Node{
					ID: index(i, j, k),
					X:  float64(i) * spacing,
					Y:  float64(j) * spacing,
					Z:  float64(k) * spacing,
				})
			}
		}
	}
	for i := range nx {
		for j := range ny {
			for k := range nz {
				this := index(i, j, k)
				if i+1 < nx {
					l.Edges = append(l.Edges, Edge{this, index(i+1, j, k)})
				}
				if j+1 < ny {
					l.Edges = append(l.Edges, Edge{this, index(i, j+1, k)})
				}
				if k+1 < nz {
					l.Edges = append(l.Edges, Edge{this, index(i, j, k+1)})
				}
			}
		}
	}
	return l
}

// SetMetric sets the named metric on every node to the value
// returned by fn for that node.
func (l *Lattice) SetMetric(name string, fn func(n *Node) float64) {
	for i := range l.Nodes {
		n := &l.Nodes[i]
		if n.Data == nil {
			n.Data = Metrics{}
		}
		n.Data[name] = fn(n)
	}
}
