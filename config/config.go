// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the configuration of the lattice viewer:
// defaults from struct tags, overridden by a TOML or YAML file.
package config

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hasnatsamiul/3D-Model-Dashboard/base/errors"
	"github.com/hasnatsamiul/3D-Model-Dashboard/colors"
	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
	"github.com/hasnatsamiul/3D-Model-Dashboard/viewer"
	"github.com/hasnatsamiul/3D-Model-Dashboard/xyz"
)

// Config is the main config struct of the lattice viewer.
type Config struct {

	// Lattice is the lattice file or URL to view.
	Lattice string `toml:"lattice" yaml:"lattice"`

	// Mode is the initial color mode.
	Mode lattice.ColorModes `toml:"mode" yaml:"mode" default:"stress"`

	// Scene is the rendering surface configuration.
	Scene Scene `toml:"scene" yaml:"scene"`

	// Camera is the initial camera configuration.
	Camera Camera `toml:"camera" yaml:"camera"`

	// Nav is the camera navigation configuration.
	Nav Nav `toml:"nav" yaml:"nav"`

	// Build is the scene build configuration.
	Build Build `toml:"build" yaml:"build"`

	// Load is the lattice loading configuration.
	Load Load `toml:"load" yaml:"load"`
}

// Scene is the rendering surface configuration.
type Scene struct {
	Width  int `toml:"width" yaml:"width" default:"800"`
	Height int `toml:"height" yaml:"height" default:"600"`

	// Background is the clear color.
	Background Color `toml:"background" yaml:"background" default:"#111111"`

	// Legend is whether to draw the legend overlay.
	Legend bool `toml:"legend" yaml:"legend" default:"true"`

	// Interval is the time between frames of the render loop.
	Interval Duration `toml:"interval" yaml:"interval" default:"16ms"`
}

// Size returns the surface size.
func (sc *Scene) Size() image.Point {
	return image.Pt(sc.Width, sc.Height)
}

// Camera is the initial camera configuration. The camera is first fit
// to the lattice, then orbited and zoomed by the given amounts.
type Camera struct {
	FOV  float32 `toml:"fov" yaml:"fov" default:"60"`
	Near float32 `toml:"near" yaml:"near" default:"0.1"`
	Far  float32 `toml:"far" yaml:"far" default:"1000"`

	// Orbit is the horizontal orbit angle in degrees.
	Orbit float32 `toml:"orbit" yaml:"orbit" default:"0"`

	// Elevation is the vertical orbit angle in degrees.
	Elevation float32 `toml:"elevation" yaml:"elevation" default:"0"`

	// Zoom multiplies the distance to the target.
	Zoom float32 `toml:"zoom" yaml:"zoom" default:"1"`
}

// Nav is the camera navigation configuration.
type Nav struct {
	OrbitSpeed float32 `toml:"orbit_speed" yaml:"orbit_speed" default:"0.5"`
	ZoomSpeed  float32 `toml:"zoom_speed" yaml:"zoom_speed" default:"0.002"`
	MinDist    float32 `toml:"min_dist" yaml:"min_dist" default:"0.5"`
	MaxDist    float32 `toml:"max_dist" yaml:"max_dist" default:"500"`
	ClickSlop  int     `toml:"click_slop" yaml:"click_slop" default:"3"`
}

// Build is the scene build configuration.
type Build struct {
	Radius    float32 `toml:"radius" yaml:"radius" default:"0.15"`
	EdgeColor Color   `toml:"edge_color" yaml:"edge_color" default:"#444444"`
}

// Load is the lattice loading configuration.
type Load struct {

	// Timeout is the longest a lattice fetch can take.
	Timeout Duration `toml:"timeout" yaml:"timeout" default:"120s"`

	// Watch is whether to reload the lattice file when it changes.
	Watch bool `toml:"watch" yaml:"watch" default:"false"`
}

// ErrInvalid is wrapped by the errors of [Config.Validate].
var ErrInvalid = errors.New("invalid config")

// Validate returns an error wrapping [ErrInvalid] for each value that
// cannot give a usable camera or scene, joined together.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, key string, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalid, key, fmt.Sprintf(format, args...)))
		}
	}
	check(c.Camera.FOV > 0 && c.Camera.FOV < 180, "camera.fov", "%g is not in (0, 180)", c.Camera.FOV)
	check(c.Camera.Near > 0, "camera.near", "%g must be positive", c.Camera.Near)
	check(c.Camera.Far > c.Camera.Near, "camera.far", "%g must be beyond near %g", c.Camera.Far, c.Camera.Near)
	check(c.Camera.Zoom > 0, "camera.zoom", "%g must be positive", c.Camera.Zoom)
	check(c.Nav.MinDist > 0, "nav.min_dist", "%g must be positive", c.Nav.MinDist)
	check(c.Nav.MaxDist >= c.Nav.MinDist, "nav.max_dist", "%g is less than min_dist %g", c.Nav.MaxDist, c.Nav.MinDist)
	check(c.Nav.ClickSlop >= 0, "nav.click_slop", "%d is negative", c.Nav.ClickSlop)
	check(c.Build.Radius > 0, "build.radius", "%g must be positive", c.Build.Radius)
	check(c.Scene.Width >= 0 && c.Scene.Height >= 0, "scene", "size %v is negative", c.Scene.Size())
	return errors.Join(errs...)
}

// ViewerOptions returns the viewer options of the config.
func (c *Config) ViewerOptions() *viewer.Options {
	return &viewer.Options{
		Size:       c.Scene.Size(),
		Legend:     c.Scene.Legend,
		Background: c.Scene.Background.AsRGBA(),
		Build: xyz.BuildParams{
			Radius:    c.Build.Radius,
			EdgeColor: c.Build.EdgeColor.AsRGBA(),
		},
		Nav: xyz.NavParams{
			OrbitSpeed: c.Nav.OrbitSpeed,
			ZoomSpeed:  c.Nav.ZoomSpeed,
			MinDist:    c.Nav.MinDist,
			MaxDist:    c.Nav.MaxDist,
			ClickSlop:  c.Nav.ClickSlop,
		},
	}
}

// ApplyLens sets the lens of the given camera. It is applied before
// the camera is fit to a lattice, so that the fit uses the lens.
func (c *Config) ApplyLens(cam *xyz.Camera) {
	cam.FOV = c.Camera.FOV
	cam.Near = c.Camera.Near
	cam.Far = max(cam.Far, c.Camera.Far)
	cam.UpdateMatrix()
}

// ApplyPose moves the given camera by the configured orbit and zoom,
// relative to its current pose, within the distance limits of nav.
func (c *Config) ApplyPose(cam *xyz.Camera, nav *xyz.NavParams) {
	if c.Camera.Orbit != 0 || c.Camera.Elevation != 0 {
		cam.Orbit(c.Camera.Orbit, c.Camera.Elevation)
	}
	if c.Camera.Zoom != 1 {
		cam.Zoom(c.Camera.Zoom, nav.MinDist, nav.MaxDist)
	}
	cam.UpdateMatrix()
}

// ApplyCamera applies both [Config.ApplyLens] and [Config.ApplyPose].
func (c *Config) ApplyCamera(cam *xyz.Camera, nav *xyz.NavParams) {
	c.ApplyLens(cam)
	c.ApplyPose(cam, nav)
}

// Color is a color that is represented in config files as a hex string.
type Color color.RGBA

// AsRGBA returns the color as a [color.RGBA].
func (c Color) AsRGBA() color.RGBA {
	return color.RGBA(c)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(colors.AsHex(color.RGBA(c))), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	rgba, err := colors.FromHex(string(text))
	if err != nil {
		return err
	}
	*c = Color(rgba)
	return nil
}

// Duration is a duration that is represented in config files
// as a string such as "1m30s".
type Duration time.Duration

// Duration returns the duration as a [time.Duration].
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
