// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"

	"github.com/hasnatsamiul/3D-Model-Dashboard/math32"
)

// PickRay returns the index of the sphere in ps nearest along the given
// ray that the ray intersects, and false if there is none. Among
// spheres hit at exactly the same ray parameter the first one wins.
func PickRay(ray math32.Ray, ps *Primitives) (int, bool) {
	if ps == nil {
		return -1, false
	}
	best := -1
	var bestT float32
	for i := range ps.Spheres {
		t, ok := ray.IntersectSphere(ps.Spheres[i].Bounds())
		if !ok {
			continue
		}
		if best < 0 || t < bestT {
			best, bestT = i, t
		}
	}
	return best, best >= 0
}

// Pick returns the lattice node index of the nearest sphere under the
// given pixel position on a surface of the given size, seen through the
// given camera, and false if there is none.
func Pick(pt image.Point, size image.Point, cam *Camera, ps *Primitives) (int, bool) {
	if size.X <= 0 || size.Y <= 0 {
		return -1, false
	}
	ray := cam.RayFromPoint(math32.FromPoint(pt), size)
	i, ok := PickRay(ray, ps)
	if !ok {
		return -1, false
	}
	return ps.Spheres[i].Node, true
}
