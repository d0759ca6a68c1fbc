// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

// Names of the node metrics read by the viewer.
const (
	Stress                   = "stress"
	DefectProbPred           = "defect_prob_pred"
	DefectProbTrue           = "defect_prob_true"
	AluminiumMass            = "aluminium_mass"
	RecommendedAluminiumMass = "recommended_aluminium_mass"
	StrengthScore            = "strength_score"
	MaterialMass             = "material_mass"
	CostFactor               = "cost_factor"
	AluminiumRatio           = "aluminium_ratio"
	SteelRatio               = "steel_ratio"
)

// Value returns the value of the given node under the given color mode,
// and false if the value is absent. Absent values must be excluded from
// every aggregate; they are never zero.
func Value(n *Node, mode ColorModes) (float64, bool) {
	switch mode {
	case ModeStress:
		return n.Data.Get(Stress)
	case ModeDefect:
		if v, ok := n.Data.Get(DefectProbPred); ok {
			return v, true
		}
		return n.Data.Get(DefectProbTrue)
	case ModeAluminium:
		return n.Data.Get(AluminiumMass)
	case ModeRecommended:
		return n.Data.Get(RecommendedAluminiumMass)
	case ModeDelta:
		rec, ok := n.Data.Get(RecommendedAluminiumMass)
		if !ok {
			return 0, false
		}
		al, ok := n.Data.Get(AluminiumMass)
		if !ok {
			return 0, false
		}
		return rec - al, true
	}
	return 0, false
}

// Values returns the values present for the given mode over all nodes,
// in node order.
func (l *Lattice) Values(mode ColorModes) []float64 {
	if l == nil {
		return nil
	}
	vals := make([]float64, 0, len(l.Nodes))
	for i := range l.Nodes {
		if v, ok := Value(&l.Nodes[i], mode); ok {
			vals = append(vals, v)
		}
	}
	return vals
}
