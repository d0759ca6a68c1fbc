// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/hasnatsamiul/3D-Model-Dashboard/colors"
)

// Scene owns the camera, the active primitives set and the renderer of
// one viewer. It is not safe for concurrent use: all calls must come
// from the goroutine that drives the viewer.
type Scene struct {

	// Camera determines the view onto the scene.
	Camera Camera

	// Background is the clear color of the surface.
	Background color.RGBA

	// Renderer is the rendering backend.
	Renderer Renderer

	// size of the rendering surface
	size image.Point

	// prims is the active primitives set
	prims *Primitives

	// configured is whether the surface has been acquired
	configured bool
}

// NewScene returns a new scene rendering with the given renderer.
func NewScene(r Renderer) *Scene {
	sc := &Scene{Renderer: r}
	sc.Defaults()
	return sc
}

// Defaults sets default scene parameters.
func (sc *Scene) Defaults() {
	sc.Camera.Defaults()
	sc.Background = colors.Background
}

// Config acquires the rendering surface at the given size, or resizes it,
// and updates the camera aspect ratio. It returns an error wrapping
// [ErrResourceAcquisition] if the surface cannot be acquired.
func (sc *Scene) Config(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("%w: size %v", ErrResourceAcquisition, size)
	}
	if err := sc.Renderer.Acquire(size); err != nil {
		return err
	}
	sc.size = size
	sc.configured = true
	sc.Camera.Aspect = float32(size.X) / float32(size.Y)
	sc.Camera.UpdateMatrix()
	return nil
}

// IsConfigured returns whether the rendering surface is acquired.
func (sc *Scene) IsConfigured() bool {
	return sc.configured
}

// Size returns the size of the rendering surface.
func (sc *Scene) Size() image.Point {
	return sc.size
}

// Primitives returns the active primitives set, which may be nil.
func (sc *Scene) Primitives() *Primitives {
	return sc.prims
}

// Install uploads the resources of the given set and makes it the active
// set, then frees the resources of the previous set. If the upload fails
// the previous set stays active.
func (sc *Scene) Install(ps *Primitives) error {
	if !sc.configured {
		return fmt.Errorf("%w: scene not configured", ErrResourceAcquisition)
	}
	if err := sc.Renderer.Upload(ps); err != nil {
		sc.Renderer.Free(ps)
		return err
	}
	old := sc.prims
	sc.prims = ps
	if old != nil && old != ps {
		sc.Renderer.Free(old)
	}
	slog.Debug("installed primitives", "gen", ps.Gen, "spheres", len(ps.Spheres), "segments", len(ps.Segments))
	return nil
}

// Uninstall frees the resources of the active set and clears it.
func (sc *Scene) Uninstall() {
	if sc.prims == nil {
		return
	}
	sc.Renderer.Free(sc.prims)
	sc.prims = nil
}

// Render renders the active set from the current camera.
func (sc *Scene) Render() error {
	if !sc.configured {
		return fmt.Errorf("%w: scene not configured", ErrResourceAcquisition)
	}
	return sc.Renderer.Render(&sc.Camera, sc.prims, sc.Background)
}

// Image returns the most recently rendered image, if the
// renderer keeps one, and nil otherwise.
func (sc *Scene) Image() *image.RGBA {
	if ir, ok := sc.Renderer.(interface{ Image() *image.RGBA }); ok {
		return ir.Image()
	}
	return nil
}

// Destroy frees the active set and releases the rendering surface.
// It can be called any number of times.
func (sc *Scene) Destroy() {
	sc.Uninstall()
	if sc.configured {
		sc.Renderer.Release()
		sc.configured = false
	}
	sc.size = image.Point{}
}
