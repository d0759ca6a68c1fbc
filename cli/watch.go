// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
	"github.com/hasnatsamiul/3D-Model-Dashboard/viewer"
	"github.com/hasnatsamiul/3D-Model-Dashboard/xyz"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func watchCmd(a *app) *cobra.Command {
	var out string
	var frames int
	cmd := &cobra.Command{
		Use:   "watch [lattice-file]",
		Short: "Re-render a lattice file every time it changes",
		Long: "Watch runs the render loop on a lattice file, rebuilding the scene every\n" +
			"time the file is written and saving a snapshot of the first frame after\n" +
			"each rebuild. It runs until interrupted, or until the given number of\n" +
			"snapshots has been saved.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.source(args)
			if err != nil {
				return err
			}
			return a.watch(cmd, src, out, frames)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "lattice.png", "snapshot image file")
	cmd.Flags().IntVarP(&frames, "frames", "n", 0, "stop after saving this many snapshots; 0 runs until interrupted")
	return cmd
}

// watch runs the render loop on the given lattice file, saving a snapshot
// to out after each rebuild, until the context is done or frames snapshots
// are saved, if frames > 0.
func (a *app) watch(cmd *cobra.Command, src, out string, frames int) error {
	if lattice.IsURL(src) {
		return fmt.Errorf("watch needs a lattice file, not a URL")
	}
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	rs := xyz.NewRaster()
	v := viewer.New(rs, a.cfg.ViewerOptions())
	a.cfg.ApplyLens(v.Camera())
	lp := viewer.NewLoop(v)
	lp.Interval = a.cfg.Scene.Interval.Duration()
	lp.SetColorMode(a.cfg.Mode)
	w := cmd.OutOrStdout()
	saved := 0
	lp.OnFrame = func(v *viewer.Viewer, fr viewer.Frame) {
		if !fr.Rebuilt {
			return
		}
		if err := xyz.SaveImage(out, v.Image()); err != nil {
			slog.Error("saving snapshot", "file", out, "err", err)
			return
		}
		saved++
		fmt.Fprintf(w, "%s: frame %d, %d nodes\n", out, fr.Index, v.Lattice().NumNodes())
		printLegend(w, v)
		if frames > 0 && saved >= frames {
			cancel()
		}
	}
	lp.OnError = func(err error) {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return lp.Run(gctx)
	})
	g.Go(func() error {
		return lattice.Watch(gctx, src, func(lat *lattice.Lattice, err error) {
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), lattice.StatusMessage(err))
				return
			}
			slog.Info(lattice.StatusMessage(nil), "file", src, "nodes", lat.NumNodes())
			lp.SetLattice(lat)
		})
	})
	return g.Wait()
}
