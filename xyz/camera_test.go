// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"testing"

	"github.com/hasnatsamiul/3D-Model-Dashboard/base/tolassert"
	"github.com/hasnatsamiul/3D-Model-Dashboard/math32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-3

func assertVec3(t *testing.T, want, have math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, want.X, have.X, tol, "X")
	tolassert.EqualTol(t, want.Y, have.Y, tol, "Y")
	tolassert.EqualTol(t, want.Z, have.Z, tol, "Z")
}

func assertVec2(t *testing.T, want, have math32.Vector2) {
	t.Helper()
	tolassert.EqualTol(t, want.X, have.X, tol, "X")
	tolassert.EqualTol(t, want.Y, have.Y, tol, "Y")
}

func defaultCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

func TestCameraDefaults(t *testing.T) {
	cm := defaultCamera()
	assert.Equal(t, float32(60), cm.FOV)
	assert.Equal(t, float32(.1), cm.Near)
	assert.Equal(t, float32(1000), cm.Far)
	assert.Equal(t, math32.Vec3(0, 0, 20), cm.Pos)
	assert.Equal(t, math32.Vector3Zero, cm.Target)
	tolassert.EqualTol(t, 20, cm.DistTo(), tol)
	assertVec3(t, math32.Vector3X, cm.Right())
	assertVec3(t, math32.Vector3Y, cm.Up())
}

func TestCameraProject(t *testing.T) {
	cm := defaultCamera()
	size := image.Pt(320, 240)
	cm.Aspect = 320.0 / 240
	cm.UpdateMatrix()

	p, ok := cm.Project(math32.Vector3Zero, size)
	assert.True(t, ok)
	assertVec2(t, math32.Vec2(160, 120), p)

	// +X is to the right and +Y is up, so lower pixel Y
	p, _ = cm.Project(math32.Vec3(1, 1, 0), size)
	assert.Greater(t, p.X, float32(160))
	assert.Less(t, p.Y, float32(120))

	_, ok = cm.Project(math32.Vec3(0, 0, 30), size)
	assert.False(t, ok)

	tolassert.EqualTol(t, 20, cm.ViewDepth(math32.Vector3Zero), tol)
}

func TestRayFromPoint(t *testing.T) {
	cm := defaultCamera()
	size := image.Pt(320, 240)
	cm.Aspect = 320.0 / 240
	cm.UpdateMatrix()

	ray := cm.RayFromPoint(math32.Vec2(160, 120), size)
	assertVec3(t, cm.Pos, ray.Origin)
	assertVec3(t, math32.Vec3(0, 0, -1), ray.Dir)

	// the ray through a projected point passes through it
	for _, pt := range []math32.Vector3{{1, 2, 0}, {-3, 0.5, 2}, {4, -4, -6}} {
		px, ok := cm.Project(pt, size)
		assert.True(t, ok)
		ray := cm.RayFromPoint(px, size)
		_, hit := ray.IntersectSphere(math32.Sphere{Center: pt, Radius: 0.01})
		assert.True(t, hit, pt.String())
	}
}

func TestCameraOrbit(t *testing.T) {
	cm := defaultCamera()
	cm.Orbit(90, 0)
	assertVec3(t, math32.Vec3(20, 0, 0), cm.Pos)
	tolassert.EqualTol(t, 20, cm.DistTo(), tol)

	cm = defaultCamera()
	cm.Orbit(0, 45)
	tolassert.EqualTol(t, 20, cm.DistTo(), tol)
	assert.NotEqual(t, float32(0), cm.Pos.Y)
	// the target stays in the middle of the view
	assertVec3(t, math32.Vector3Zero, cm.Target)
	p, _ := cm.Project(cm.Target, image.Pt(100, 100))
	assertVec2(t, math32.Vec2(50, 50), p)
}

func TestCameraPan(t *testing.T) {
	cm := defaultCamera()
	cm.Pan(1, 2)
	assertVec3(t, math32.Vec3(-1, -2, 0), cm.Target)
	assertVec3(t, math32.Vec3(-1, -2, 20), cm.Pos)
	tolassert.EqualTol(t, 20, cm.DistTo(), tol)
}

func TestCameraZoom(t *testing.T) {
	cm := defaultCamera()
	cm.Zoom(0.5, 1, 100)
	tolassert.EqualTol(t, 10, cm.DistTo(), tol)
	assertVec3(t, math32.Vec3(0, 0, 10), cm.Pos)

	cm.Zoom(0.0001, 1, 100)
	tolassert.EqualTol(t, 1, cm.DistTo(), tol)
	cm.Zoom(1e6, 1, 100)
	tolassert.EqualTol(t, 100, cm.DistTo(), tol)

	// never reaches or passes through the target
	cm.Zoom(0, 1, 100)
	tolassert.EqualTol(t, 1, cm.DistTo(), tol)
	assert.Greater(t, cm.Pos.Z, float32(0))
	cm.Zoom(-2, 1, 100)
	tolassert.EqualTol(t, 1, cm.DistTo(), tol)
}

func TestCameraFit(t *testing.T) {
	cm := defaultCamera()
	size := image.Pt(200, 200)
	bb := math32.B3(0, 0, 0, 10, 4, 2)
	cm.Fit(bb)
	assertVec3(t, bb.Center(), cm.Target)
	for _, pt := range []math32.Vector3{bb.Min, bb.Max, math32.Vec3(10, 0, 0), math32.Vec3(0, 4, 2)} {
		p, ok := cm.Project(pt, size)
		assert.True(t, ok)
		assert.True(t, p.X >= 0 && p.X <= 200 && p.Y >= 0 && p.Y <= 200, pt.String())
	}

	cm.Fit(math32.B3Empty())
	assert.Equal(t, math32.Vec3(0, 0, 20), cm.Pos)
}
