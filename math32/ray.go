// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit lattice viewing.

package math32

// Ray represents an oriented 3D line segment defined by an origin point and a direction vector.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// IntersectSphere returns the ray parameter t of the first point
// where the ray enters the sphere, and whether there is an intersection
// at all. The direction must be normalized. A ray starting inside the
// sphere intersects at the point where it leaves it; spheres entirely
// behind the origin are not intersected.
func (ray *Ray) IntersectSphere(sphere Sphere) (float32, bool) {
	v1 := sphere.Center.Sub(ray.Origin)
	tca := v1.Dot(ray.Dir)
	d2 := v1.Dot(v1) - tca*tca
	radius2 := sphere.Radius * sphere.Radius
	if d2 > radius2 {
		return 0, false
	}

	thc := Sqrt(radius2 - d2)
	t0 := tca - thc // entering
	t1 := tca + thc // leaving

	// both behind the origin
	if t0 < 0 && t1 < 0 {
		return 0, false
	}
	// origin is inside the sphere
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}
