// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli provides the latticeview command line interface.
package cli

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/hasnatsamiul/3D-Model-Dashboard/base/logx"
	"github.com/hasnatsamiul/3D-Model-Dashboard/config"
	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
	"github.com/hasnatsamiul/3D-Model-Dashboard/viewer"
	"github.com/hasnatsamiul/3D-Model-Dashboard/xyz"
	"github.com/spf13/cobra"
)

// app holds the state shared by all commands of one command tree.
type app struct {
	cfgFile string
	verbose int
	quiet   bool

	// flag overrides of the config
	mode   string
	width  int
	height int

	cfg *config.Config
}

// NewRootCmd returns a new latticeview command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "latticeview",
		Short: "latticeview renders and inspects material simulation lattices",
		Long: "latticeview renders a lattice of material simulation nodes as a 3D scene\n" +
			"colored by a metric, picks nodes, and reports the color legend.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(a.verbose >= 2, a.verbose == 1, a.quiet)
			logx.SetDefaultLogger()
			return a.loadConfig(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (.toml or .yaml); default ~/"+config.DefaultFile)
	pf.CountVarP(&a.verbose, "verbose", "v", "verbose output; -vv for debug output")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only print errors")
	pf.StringVarP(&a.mode, "mode", "m", "", "color mode: stress, defect, aluminium, recommended or delta")
	pf.IntVar(&a.width, "width", 0, "surface width in pixels")
	pf.IntVar(&a.height, "height", 0, "surface height in pixels")

	root.AddCommand(
		renderCmd(a),
		pickCmd(a),
		legendCmd(a),
		watchCmd(a),
		gridCmd(a),
		configCmd(a),
	)
	return root
}

// Execute runs the latticeview command tree.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// loadConfig loads the config file and applies the flag overrides.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.mode != "" {
		if err := cfg.Mode.SetString(a.mode); err != nil {
			return err
		}
	}
	if a.width > 0 {
		cfg.Scene.Width = a.width
	}
	if a.height > 0 {
		cfg.Scene.Height = a.height
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	slog.Debug("config loaded", "file", a.cfgFile, "mode", cfg.Mode, "size", cfg.Scene.Size())
	return nil
}

// source returns the lattice source from the arguments or the config.
func (a *app) source(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if a.cfg.Lattice != "" {
		return a.cfg.Lattice, nil
	}
	return "", fmt.Errorf("no lattice given: pass a file or URL, or set lattice in the config")
}

// load loads the lattice from the given source, printing the load status.
func (a *app) load(cmd *cobra.Command, source string) (*lattice.Lattice, error) {
	ld := &lattice.Loader{Timeout: a.cfg.Load.Timeout.Duration()}
	lat, err := ld.Load(cmd.Context(), source)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), lattice.StatusMessage(err))
		return nil, err
	}
	slog.Info(lattice.StatusMessage(nil), "source", source, "nodes", lat.NumNodes(), "edges", len(lat.Edges))
	return lat, nil
}

// newViewer returns a viewer showing the given lattice, with the
// camera configured, and reports build warnings.
func (a *app) newViewer(cmd *cobra.Command, lat *lattice.Lattice) (*viewer.Viewer, *xyz.Raster, error) {
	rs := xyz.NewRaster()
	v := viewer.New(rs, a.cfg.ViewerOptions())
	a.cfg.ApplyLens(v.Camera())
	if err := v.SetColorMode(a.cfg.Mode); err != nil {
		return nil, nil, err
	}
	if err := v.SetLattice(lat); err != nil {
		v.Close()
		return nil, nil, err
	}
	a.cfg.ApplyPose(v.Camera(), &v.Nav.Params)
	for _, w := range v.Warnings() {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
	}
	return v, rs, nil
}

// parsePoint parses a pixel position from two arguments.
func parsePoint(xs, ys string) (image.Point, error) {
	var pt image.Point
	if _, err := fmt.Sscan(xs, &pt.X); err != nil {
		return pt, fmt.Errorf("invalid x %q: %w", xs, err)
	}
	if _, err := fmt.Sscan(ys, &pt.Y); err != nil {
		return pt, fmt.Errorf("invalid y %q: %w", ys, err)
	}
	return pt, nil
}
