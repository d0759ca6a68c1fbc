// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
	"github.com/hasnatsamiul/3D-Model-Dashboard/viewer"
	"github.com/hasnatsamiul/3D-Model-Dashboard/xyz"
	"github.com/spf13/cobra"
)

func renderCmd(a *app) *cobra.Command {
	var out string
	var noLegend, watch bool
	cmd := &cobra.Command{
		Use:   "render [lattice]",
		Short: "Render a lattice to an image file",
		Long: "Render loads a lattice file or URL, builds the scene for the color mode,\n" +
			"renders one frame with the legend overlay, and saves it to an image file\n" +
			"whose format is given by its extension (png, jpg, bmp or tiff).\n" +
			"With --watch, or watch set in the load config, a lattice file is\n" +
			"watched as by the watch command and rendered on every change.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.source(args)
			if err != nil {
				return err
			}
			if noLegend {
				a.cfg.Scene.Legend = false
			}
			if watch {
				a.cfg.Load.Watch = true
			}
			if a.cfg.Load.Watch && !lattice.IsURL(src) {
				return a.watch(cmd, src, out, 0)
			}
			lat, err := a.load(cmd, src)
			if err != nil {
				return err
			}
			v, _, err := a.newViewer(cmd, lat)
			if err != nil {
				return err
			}
			defer v.Close()
			if err := v.RenderFrame(); err != nil {
				return err
			}
			if err := xyz.SaveImage(out, v.Image()); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d nodes, %d edges\n", out, lat.NumNodes(), len(v.Scene.Primitives().Segments))
			printLegend(w, v)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "lattice.png", "output image file")
	cmd.Flags().BoolVar(&noLegend, "no-legend", false, "do not draw the legend overlay")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-render every time the lattice file changes")
	return cmd
}

func pickCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pick <lattice> <x> <y>",
		Short: "Print the details of the node at a pixel position",
		Long: "Pick renders the lattice as the render command does and prints the\n" +
			"details of the nearest node under the given pixel position.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := parsePoint(args[1], args[2])
			if err != nil {
				return err
			}
			lat, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			v, _, err := a.newViewer(cmd, lat)
			if err != nil {
				return err
			}
			defer v.Close()
			w := cmd.OutOrStdout()
			v.OnSelect(func(se viewer.SelectionEvent) {
				fmt.Fprint(w, lattice.FormatDetails(lattice.Details(se.Node)))
			})
			if !v.Select(pt) {
				fmt.Fprintf(w, "no node at %v\n", pt)
			}
			return nil
		},
	}
}
