// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"image/color"

	"github.com/hasnatsamiul/3D-Model-Dashboard/base/errors"
)

// ErrResourceAcquisition is the condition of a rendering surface
// that cannot be created or sized, such as a zero-size container.
var ErrResourceAcquisition = errors.New("xyz: cannot acquire rendering surface")

// Renderer is a rendering backend. It owns a rendering surface and the
// per-set resources (geometries and materials) uploaded for a
// [Primitives] set. Every acquisition has a matching release.
type Renderer interface {

	// Acquire creates or resizes the rendering surface.
	Acquire(size image.Point) error

	// Upload creates the resources of the given primitives set.
	Upload(ps *Primitives) error

	// Free releases the resources of the given primitives set.
	// It is a no-op if the set has no resources.
	Free(ps *Primitives)

	// Render renders the given primitives set, which must have been
	// uploaded, as seen through the camera, over the background color.
	Render(cam *Camera, ps *Primitives, bg color.RGBA) error

	// Release releases the rendering surface and any remaining resources.
	Release()

	// Live returns the number of primitives sets with live resources,
	// plus one if the surface is acquired.
	Live() int
}
