// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"fmt"
	"strings"
)

// Detail is one labeled line of the node details panel.
type Detail struct {
	Label string
	Value string
}

// detailFields are the material metrics shown for a selected node.
var detailFields = []Detail{
	{"Strength score", StrengthScore},
	{"Material mass", MaterialMass},
	{"Cost factor", CostFactor},
	{"Recommended aluminium (ML)", RecommendedAluminiumMass},
	{"Aluminium ratio", AluminiumRatio},
	{"Steel ratio", SteelRatio},
	{"Defect probability (ML)", DefectProbPred},
}

// Details returns the details of the given node for display
// in a details panel, with absent metrics shown as N/A.
func Details(n *Node) []Detail {
	ds := make([]Detail, 0, len(detailFields)+2)
	ds = append(ds, Detail{"ID", fmt.Sprint(n.ID)},
		Detail{"Position", fmt.Sprintf("(%.2f, %.2f, %.2f)", n.X, n.Y, n.Z)})
	for _, f := range detailFields {
		ds = append(ds, Detail{f.Label, formatMetric(n.Data, f.Value)})
	}
	return ds
}

// FormatDetails returns the details as aligned "label: value" lines.
func FormatDetails(ds []Detail) string {
	w := 0
	for _, d := range ds {
		w = max(w, len(d.Label))
	}
	var b strings.Builder
	for _, d := range ds {
		fmt.Fprintf(&b, "%-*s  %s\n", w+1, d.Label+":", d.Value)
	}
	return b.String()
}

func formatMetric(m Metrics, name string) string {
	v, ok := m.Get(name)
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.3f", v)
}
