// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"math"
	"math/rand/v2"
)

// Enrich fills every node of the lattice with sample material metrics
// drawn from a generator seeded with seed, so that the same seed always
// gives the same metrics. The recommended aluminium mass is the fixed
// linear blend 0.6 mass + 0.3 strength + 0.1 cost, and stress grows
// toward the base of the lattice and with lower strength.
func (l *Lattice) Enrich(seed uint64) {
	if l.NumNodes() == 0 {
		return
	}
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	uniform := func(lo, hi float64) float64 {
		return lo + (hi-lo)*rnd.Float64()
	}
	bb := l.Bounds()
	height := float64(bb.Size().Y)
	for i := range l.Nodes {
		n := &l.Nodes[i]
		strength := uniform(0.2, 0.9)
		mass := uniform(0.2, 0.9)
		cost := uniform(0.1, 0.7)
		rec := 0.6*mass + 0.3*strength + 0.1*cost
		al := mass * uniform(0.3, 0.8)
		load := 1.0
		if height > 0 {
			load = 2 - (n.Y-float64(bb.Min.Y))/height
		}
		n.Data = Metrics{
			StrengthScore:            strength,
			MaterialMass:             mass,
			CostFactor:               cost,
			RecommendedAluminiumMass: rec,
			AluminiumMass:            al,
			AluminiumRatio:           math.Min(1, rec),
			SteelRatio:               math.Max(0, 1-rec),
			DefectProbPred:           math.Abs(rec * 0.2),
			Stress:                   load * (1 - strength) * 100,
		}
	}
}

// Enriched returns a deep copy of the lattice with the sample metrics
// of [Lattice.Enrich] for the given seed. The lattice is unchanged.
func (l *Lattice) Enriched(seed uint64) (*Lattice, error) {
	c, err := l.Clone()
	if err != nil {
		return nil, err
	}
	c.Enrich(seed)
	return c, nil
}
