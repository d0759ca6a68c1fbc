// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"image/color"
	"slices"

	"github.com/hasnatsamiul/3D-Model-Dashboard/colors"
)

// Material is a uniform color source that primitives are filled with.
type Material struct {
	Color color.RGBA
	src   image.Image
}

// NewMaterial returns a new material of the given color.
func NewMaterial(c color.RGBA) *Material {
	return &Material{Color: c, src: colors.Uniform(c)}
}

// Source returns the image that fills with the material color.
func (mt *Material) Source() image.Image {
	return mt.src
}

// shade returns a darker version of the material color, used for outlines.
func shade(c color.RGBA, f float32) color.RGBA {
	return color.RGBA{uint8(float32(c.R) * f), uint8(float32(c.G) * f), uint8(float32(c.B) * f), c.A}
}

// Materials is the material library of one primitives set: one material
// per distinct color, plus the material index of every sphere and segment.
type Materials struct {
	Library  []*Material
	Spheres  []int
	Segments []int
	Outlines []*Material
}

// NewMaterials returns the materials of the given primitives set.
func NewMaterials(ps *Primitives) *Materials {
	ms := &Materials{
		Spheres:  make([]int, len(ps.Spheres)),
		Segments: make([]int, len(ps.Segments)),
	}
	index := map[color.RGBA]int{}
	get := func(c color.RGBA) int {
		if i, ok := index[c]; ok {
			return i
		}
		i := len(ms.Library)
		index[c] = i
		ms.Library = append(ms.Library, NewMaterial(c))
		ms.Outlines = append(ms.Outlines, NewMaterial(shade(c, 0.6)))
		return i
	}
	for i := range ps.Spheres {
		ms.Spheres[i] = get(ps.Spheres[i].Color)
	}
	for i := range ps.Segments {
		ms.Segments[i] = get(ps.Segments[i].Color)
	}
	ms.Library = slices.Clip(ms.Library)
	return ms
}
