// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"

	"github.com/hasnatsamiul/3D-Model-Dashboard/base/errors"
	"github.com/hasnatsamiul/3D-Model-Dashboard/math32"
)

// Camera defines the properties of the perspective camera
// that views the lattice.
type Camera struct {

	// Pos is the position of the camera in world coordinates.
	Pos math32.Vector3

	// Target is the location the camera is pointing at. It defaults to the
	// origin, moves with panning, and is reset by a call to [Camera.LookAt].
	Target math32.Vector3

	// UpDir is the up direction for the camera, which defaults to the
	// positive Y axis. It is rotated by vertical orbiting.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"60"`

	// Aspect is the aspect ratio (width/height).
	Aspect float32 `default:"1"`

	// Near is the near plane distance.
	Near float32 `default:"0.1"`

	// Far is the far plane distance.
	Far float32 `default:"1000"`

	// View is the view matrix, the inverse of the camera's world transform.
	View math32.Matrix4 `json:"-"`

	// InvView is the inverse of the view matrix.
	InvView math32.Matrix4 `json:"-"`

	// Prjn is the projection matrix, defining the camera perspective.
	Prjn math32.Matrix4 `json:"-"`

	// InvPrjn is the inverse of the projection matrix.
	InvPrjn math32.Matrix4 `json:"-"`
}

// Defaults sets the camera to a 60 degree field of view at (0, 0, 20),
// looking at the origin with the Y axis up.
func (cm *Camera) Defaults() {
	cm.FOV = 60
	cm.Aspect = 1
	cm.Near = .1
	cm.Far = 1000
	cm.DefaultPose()
}

// DefaultPose resets the camera pose to the default location and
// orientation, looking at the origin from (0, 0, 20), with up Y axis.
func (cm *Camera) DefaultPose() {
	cm.Pos.Set(0, 0, 20)
	cm.LookAtOrigin()
}

// UpdateMatrix updates the view and projection matrices.
func (cm *Camera) UpdateMatrix() {
	cm.View.SetLookAt(cm.Pos, cm.Target, cm.UpDir)
	errors.Log(cm.InvView.SetInverse(&cm.View))
	cm.Prjn.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	errors.Log(cm.InvPrjn.SetInverse(&cm.Prjn))
}

// LookAt points the camera at the given target location, using the given
// up direction, and sets the Target and UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir.IsNil() {
		upDir = math32.Vector3Y
	}
	cm.UpDir = upDir
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at origin with Y axis pointing up.
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3Zero, math32.Vector3Y)
}

// LookAtTarget points the camera at the current target
// using the current up direction.
func (cm *Camera) LookAtTarget() {
	cm.LookAt(cm.Target, cm.UpDir)
}

// ViewVector is the vector between the camera position and target.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pos.Sub(cm.Target)
}

// DistTo returns the distance from the camera to the target.
func (cm *Camera) DistTo() float32 {
	return cm.ViewVector().Length()
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down),
// relative to current position and orientation,
// keeping the same distance from the Target, and rotating the camera and
// the Up direction vector to keep looking at the target.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir.IsNil() {
		ctdir.Set(0, 0, 1)
	}
	dir := ctdir.Normal()

	up := cm.UpDir
	right := cm.UpDir.Cross(dir).Normal()

	// delX rotates around the up vector
	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	dx := ctdir.MulQuat(dxq).Sub(ctdir)
	// delY rotates around the right vector
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	dy := ctdir.MulQuat(dyq).Sub(ctdir)

	cm.Pos = cm.Pos.Add(dx).Add(dy)
	cm.UpDir.SetMulQuat(dyq) // this is only one that affects up

	cm.LookAtTarget()
}

// Right returns the unit right vector of the current view.
func (cm *Camera) Right() math32.Vector3 {
	return math32.Vec3(cm.View[0], cm.View[4], cm.View[8])
}

// Up returns the unit up vector of the current view, which is
// UpDir made orthogonal to the view direction.
func (cm *Camera) Up() math32.Vector3 {
	return math32.Vec3(cm.View[1], cm.View[5], cm.View[9])
}

// Pan moves the camera along the given 2D axes (left/right, up/down),
// in the plane of the current view, and moves the target by the
// same increment.
func (cm *Camera) Pan(delX, delY float32) {
	td := cm.Right().MulScalar(-delX).Add(cm.Up().MulScalar(-delY))
	cm.Pos.SetAdd(td)
	cm.Target.SetAdd(td)
	cm.UpdateMatrix()
}

// Zoom multiplies the distance from the camera to the target by the given
// factor (< 1 moves closer), clamping the resulting distance to
// [minDist, maxDist] so the camera can never reach or pass the target.
func (cm *Camera) Zoom(factor, minDist, maxDist float32) {
	ctaxis := cm.ViewVector()
	if ctaxis.IsNil() {
		ctaxis.Set(0, 0, 1)
	}
	if factor < 0 || math32.IsNaN(factor) {
		factor = 1
	}
	dist := math32.Clamp(ctaxis.Length()*factor, minDist, maxDist)
	cm.Pos = cm.Target.Add(ctaxis.Normal().MulScalar(dist))
	cm.UpdateMatrix()
}

// Fit places the camera on the +Z side of the given bounding box, looking
// at its center from a distance that shows the whole box, with the Y
// axis up. The far plane is extended if needed to contain the box.
func (cm *Camera) Fit(bb math32.Box3) {
	if bb.IsEmpty() {
		cm.DefaultPose()
		return
	}
	sp := bb.BoundingSphere()
	radius := max(sp.Radius, 0.5)
	dist := 1.2 * radius / math32.Sin(math32.DegToRad(cm.FOV*0.5))
	cm.Pos = sp.Center.Add(math32.Vec3(0, 0, dist))
	cm.Far = max(cm.Far, 2*(dist+radius))
	cm.LookAt(sp.Center, math32.Vector3Y)
}

// Project returns the pixel position of the given world point on a surface
// of the given size, and false if the point is behind the camera.
func (cm *Camera) Project(pt math32.Vector3, size image.Point) (math32.Vector2, bool) {
	clip := math32.Vector4FromVector3(pt, 1).MulMatrix4(&cm.View).MulMatrix4(&cm.Prjn)
	if clip.W <= 0 {
		return math32.Vector2{}, false
	}
	ndc := clip.PerspDiv()
	return NDCToPixel(ndc, size), true
}

// ViewDepth returns the distance of the given world point in front
// of the camera along the view direction.
func (cm *Camera) ViewDepth(pt math32.Vector3) float32 {
	return -pt.MulMatrix4(&cm.View).Z
}

// PixelScale returns the number of pixels per world unit at the given
// view depth, for a surface of the given height.
func (cm *Camera) PixelScale(depth float32, height int) float32 {
	if depth <= 0 {
		return 0
	}
	return float32(height) / (2 * depth * math32.Tan(math32.DegToRad(cm.FOV*0.5)))
}

// RayFromPoint returns the ray from the camera through the given pixel
// position on a surface of the given size. The ray direction is normalized.
func (cm *Camera) RayFromPoint(pt math32.Vector2, size image.Point) math32.Ray {
	ndc := PixelToNDC(pt, size)
	// a point on the near plane, in world coordinates
	np := math32.Vec3(ndc.X, ndc.Y, -1).MulMatrix4(&cm.InvPrjn).MulMatrix4(&cm.InvView)
	return math32.Ray{Origin: cm.Pos, Dir: np.Sub(cm.Pos).Normal()}
}

// NDCToPixel converts normalized device coordinates to a pixel position
// on a surface of the given size, with Y pointing down.
func NDCToPixel(ndc math32.Vector3, size image.Point) math32.Vector2 {
	return math32.Vec2((ndc.X+1)*0.5*float32(size.X), (1-ndc.Y)*0.5*float32(size.Y))
}

// PixelToNDC converts a pixel position on a surface of the given size
// to normalized device X and Y coordinates.
func PixelToNDC(pt math32.Vector2, size image.Point) math32.Vector2 {
	return math32.Vec2(2*pt.X/float32(size.X)-1, 1-2*pt.Y/float32(size.Y))
}
