// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/hasnatsamiul/3D-Model-Dashboard/colors"
	"github.com/hasnatsamiul/3D-Model-Dashboard/heatmap"
	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
	"github.com/hasnatsamiul/3D-Model-Dashboard/viewer"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func legendCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "legend [lattice]",
		Short: "Print the color legend of a lattice",
		Long: "Legend prints the label and value range of the color mode, with the\n" +
			"ramp colors of the minimum and maximum as swatches on color terminals.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.source(args)
			if err != nil {
				return err
			}
			lat, err := a.load(cmd, src)
			if err != nil {
				return err
			}
			modes := []lattice.ColorModes{a.cfg.Mode}
			if all {
				modes = lattice.ColorModesValues()
			}
			out := termenv.NewOutput(cmd.OutOrStdout())
			for _, mode := range modes {
				lg, ok := heatmap.New(lat, mode).Legend()
				if !ok {
					fmt.Fprintf(out, "%-12s none (%s)\n", mode, heatmap.Label(mode))
					continue
				}
				fmt.Fprintf(out, "%-12s %s %s %s\n", mode, swatch(out, 0), swatch(out, 1), lg)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "print the legend of every color mode")
	return cmd
}

// swatch returns a swatch of the ramp color at t for the given output.
// It is a bracketed hex color on outputs without color.
func swatch(out *termenv.Output, t float64) string {
	hex := colors.AsHex(heatmap.Ramp(t))
	if out.Profile == termenv.Ascii {
		return "[" + hex + "]"
	}
	return out.String("  ").Background(out.Color(hex)).String()
}

// printLegend prints the legend of the viewer, or that there is none.
func printLegend(w io.Writer, v *viewer.Viewer) {
	if lg, ok := v.Legend(); ok {
		fmt.Fprintln(w, lg)
		return
	}
	fmt.Fprintf(w, "no values for %s: legend suppressed\n", v.Mode())
}
