// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/hasnatsamiul/3D-Model-Dashboard/config"
	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func gridCmd(a *app) *cobra.Command {
	var nx, ny, nz int
	var spacing float64
	var seed uint64
	var bare bool
	cmd := &cobra.Command{
		Use:   "grid <file>",
		Short: "Write a sample lattice file",
		Long: "Grid writes a regular lattice of nx by ny by nz nodes, each connected to\n" +
			"its neighbors, with sample material metrics unless --bare is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if nx <= 0 || ny <= 0 || nz <= 0 {
				return fmt.Errorf("grid size must be positive, not %dx%dx%d", nx, ny, nz)
			}
			lat := lattice.NewGrid(nx, ny, nz, spacing)
			if !bare {
				var err error
				if lat, err = lat.Enriched(seed); err != nil {
					return err
				}
			}
			if err := lat.Save(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d nodes, %d edges\n", args[0], lat.NumNodes(), len(lat.Edges))
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&nx, "nx", 6, "number of nodes along x")
	f.IntVar(&ny, "ny", 6, "number of nodes along y")
	f.IntVar(&nz, "nz", 3, "number of nodes along z")
	f.Float64Var(&spacing, "spacing", 1, "distance between neighboring nodes")
	f.Uint64Var(&seed, "seed", 1, "seed of the sample metrics")
	f.BoolVar(&bare, "bare", false, "write nodes without metrics")
	return cmd
}

func configCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config [file]",
		Short: "Print or save the effective configuration",
		Long: "Config prints the configuration in effect, after the config file and\n" +
			"flags are applied, as TOML, or saves it to the given .toml or .yaml file.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return config.Save(a.cfg, args[0])
			}
			b, err := toml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
