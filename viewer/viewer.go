// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer provides one mounted lattice viewer: it turns a lattice
// and a color mode into a navigable scene, renders it, and reports
// picked nodes and the legend to its owner.
package viewer

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/hasnatsamiul/3D-Model-Dashboard/colors"
	"github.com/hasnatsamiul/3D-Model-Dashboard/events"
	"github.com/hasnatsamiul/3D-Model-Dashboard/heatmap"
	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
	"github.com/hasnatsamiul/3D-Model-Dashboard/xyz"
)

// SelectionEvent is emitted when a click picks a node.
// The viewer keeps no selection state of its own.
type SelectionEvent struct {

	// Node is the picked node. It belongs to the lattice and must not
	// be modified.
	Node *lattice.Node

	// Index is the index of Node in the lattice nodes.
	Index int
}

// Options are the parameters of a [Viewer].
type Options struct {

	// Size is the size of the rendering surface in pixels.
	Size image.Point

	// Legend is whether to draw the legend overlay onto rendered frames.
	Legend bool

	// Background is the clear color of the surface.
	Background color.RGBA

	// Build are the scene build parameters.
	Build xyz.BuildParams

	// Nav are the camera navigation parameters.
	Nav xyz.NavParams
}

// Defaults sets the default options.
func (o *Options) Defaults() {
	o.Size = image.Pt(800, 600)
	o.Legend = true
	o.Background = colors.Background
	o.Build.Defaults()
	o.Nav.Defaults()
}

// Viewer is one mounted viewer instance. It owns its scene, camera and
// primitives exclusively and is not safe for concurrent use: every call
// must come from the goroutine that owns it, which is what [Loop] does.
type Viewer struct {

	// Options are the viewer options.
	Options Options

	// Scene holds the camera, the active primitives and the renderer.
	Scene *xyz.Scene

	// Nav is the camera interaction state machine.
	Nav *xyz.Navigator

	lattice   *lattice.Lattice
	mode      lattice.ColorModes
	warnings  []error
	listeners events.Listeners
	onSelect  []func(SelectionEvent)
}

// New returns a new viewer rendering with the given renderer.
// If opts is nil the default options are used.
func New(r xyz.Renderer, opts *Options) *Viewer {
	v := &Viewer{Scene: xyz.NewScene(r), Nav: xyz.NewNavigator()}
	if opts != nil {
		v.Options = *opts
	} else {
		v.Options.Defaults()
	}
	v.Scene.Background = v.Options.Background
	v.Nav.Params = v.Options.Nav
	for _, typ := range []events.Types{events.MouseDown, events.MouseUp, events.MouseMove, events.MouseDrag, events.Scroll} {
		v.listeners.Add(typ, v.navigate)
	}
	return v
}

// On adds a listener for the given event type. Listeners added later are
// called first, and a listener that marks the event as handled stops it
// from reaching camera navigation.
func (v *Viewer) On(typ events.Types, fun func(ev events.Event)) {
	v.listeners.Add(typ, fun)
}

// OnSelect adds a function called synchronously with every selection.
func (v *Viewer) OnSelect(fun func(se SelectionEvent)) {
	v.onSelect = append(v.onSelect, fun)
}

// Lattice returns the current lattice, which is nil if none is loaded.
func (v *Viewer) Lattice() *lattice.Lattice {
	return v.lattice
}

// Mode returns the current color mode.
func (v *Viewer) Mode() lattice.ColorModes {
	return v.mode
}

// Camera returns the camera of the viewer.
func (v *Viewer) Camera() *xyz.Camera {
	return &v.Scene.Camera
}

// Running returns whether a scene exists, which is when frames are rendered.
func (v *Viewer) Running() bool {
	return v.Scene.IsConfigured() && v.Scene.Primitives() != nil
}

// Warnings returns the non-fatal problems of the last build, such as
// edges that refer to nodes out of range.
func (v *Viewer) Warnings() []error {
	return v.warnings
}

// SetLattice sets the lattice to view, tearing down the previous scene.
// The camera is fit to the new lattice. A nil lattice means none is
// loaded: the scene is torn down and rendering stops. It returns an error
// wrapping [xyz.ErrResourceAcquisition] if the rendering surface cannot be
// acquired, in which case no scene is running.
func (v *Viewer) SetLattice(lat *lattice.Lattice) error {
	v.lattice = lat
	if lat == nil {
		v.teardown()
		return nil
	}
	if err := v.rebuild(); err != nil {
		return err
	}
	v.fit()
	return nil
}

// fit fits the camera to the scene bounds. The navigation distance limit
// is widened to twice the fit distance for lattices too large to fit
// within the configured one, so that zooming out is never a jump closer.
func (v *Viewer) fit() {
	cam := &v.Scene.Camera
	cam.Fit(v.Scene.Primitives().Bounds)
	np := &v.Nav.Params
	np.MaxDist = max(v.Options.Nav.MaxDist, 2*cam.DistTo())
	cam.Zoom(1, np.MinDist, np.MaxDist)
}

// SetColorMode sets the color mode and rebuilds the scene if a lattice is
// loaded. The camera is kept.
func (v *Viewer) SetColorMode(mode lattice.ColorModes) error {
	v.mode = mode
	if v.lattice == nil {
		return nil
	}
	return v.rebuild()
}

// rebuild builds the primitives for the current lattice and mode and
// installs them in place of the previous set, which is released.
func (v *Viewer) rebuild() error {
	if !v.Scene.IsConfigured() {
		if err := v.Scene.Config(v.Options.Size); err != nil {
			slog.Error("viewer: cannot start scene", "err", err)
			v.teardown()
			return err
		}
	}
	ps, warns := xyz.Build(v.lattice, v.mode, &v.Options.Build)
	if err := v.Scene.Install(ps); err != nil {
		slog.Error("viewer: cannot install primitives", "err", err)
		v.teardown()
		return err
	}
	v.warnings = warns
	v.Nav.Reset()
	slog.Info("viewer: scene built", "mode", v.mode, "nodes", len(ps.Spheres), "edges", len(ps.Segments), "skipped", len(warns))
	return nil
}

// teardown releases the scene and its resources.
func (v *Viewer) teardown() {
	v.Scene.Destroy()
	v.Nav.Reset()
	v.warnings = nil
}

// Resize sets the surface size, resizing a running scene. If a lattice
// is loaded but its scene could not be started, it is started again.
func (v *Viewer) Resize(size image.Point) error {
	v.Options.Size = size
	if !v.Scene.IsConfigured() {
		if v.lattice == nil {
			return nil
		}
		return v.SetLattice(v.lattice)
	}
	return v.Scene.Config(size)
}

// HandleEvent processes one input event: listeners added with [Viewer.On]
// first, then camera navigation. A click selects the node under the pointer.
func (v *Viewer) HandleEvent(ev events.Event) {
	if !v.Running() {
		return
	}
	v.listeners.Call(ev)
}

func (v *Viewer) navigate(ev events.Event) {
	if !v.Nav.HandleEvent(&v.Scene.Camera, v.Scene.Size(), ev) {
		return
	}
	if nd, i, ok := v.Pick(ev.Pos()); ok {
		v.emit(SelectionEvent{Node: nd, Index: i})
	}
}

func (v *Viewer) emit(se SelectionEvent) {
	slog.Debug("viewer: selected", "node", se.Node.ID, "index", se.Index)
	for _, fun := range v.onSelect {
		fun(se)
	}
}

// Pick returns the nearest node under the given pixel position with its
// index, and false if there is none.
func (v *Viewer) Pick(pt image.Point) (*lattice.Node, int, bool) {
	if !v.Running() {
		return nil, -1, false
	}
	i, ok := xyz.Pick(pt, v.Scene.Size(), &v.Scene.Camera, v.Scene.Primitives())
	if !ok || i >= v.lattice.NumNodes() {
		return nil, -1, false
	}
	return &v.lattice.Nodes[i], i, true
}

// Select picks at the given pixel position and emits a selection if a
// node is there, returning whether one was.
func (v *Viewer) Select(pt image.Point) bool {
	nd, i, ok := v.Pick(pt)
	if ok {
		v.emit(SelectionEvent{Node: nd, Index: i})
	}
	return ok
}

// Legend returns the legend of the active scene, and false if there is
// no scene or its color mode has no values.
func (v *Viewer) Legend() (heatmap.Legend, bool) {
	ps := v.Scene.Primitives()
	if ps == nil {
		return heatmap.Legend{}, false
	}
	return ps.Mapper.Legend()
}

// RenderFrame renders the active scene from the current camera, drawing
// the legend overlay if enabled. It does nothing if no scene is running.
func (v *Viewer) RenderFrame() error {
	if !v.Running() {
		return nil
	}
	if err := v.Scene.Render(); err != nil {
		return err
	}
	if !v.Options.Legend {
		return nil
	}
	img := v.Scene.Image()
	if lg, ok := v.Legend(); ok && img != nil {
		heatmap.DrawLegend(img, lg)
	}
	return nil
}

// Image returns the most recently rendered frame, if the renderer keeps one.
func (v *Viewer) Image() *image.RGBA {
	return v.Scene.Image()
}

// Close tears down the scene and releases all resources.
// It can be called any number of times.
func (v *Viewer) Close() {
	v.teardown()
	v.lattice = nil
}
