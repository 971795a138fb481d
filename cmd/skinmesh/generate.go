package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skinmesh/skeleton"
)

type generateFlags struct {
	output  string
	spacing float64
	radius  float64
}

func newGenerateCmd() *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated skeleton as YAML",
		Long:  "Generate a ring, grid, tube or cube skeleton and write it to a file or standard output.",
	}
	cmd.PersistentFlags().StringVarP(&f.output, "output", "o", "", "Output file (default: standard output)")
	cmd.PersistentFlags().Float64Var(&f.spacing, "spacing", skeleton.DefaultSpacing, "Edge length")
	cmd.PersistentFlags().Float64Var(&f.radius, "radius", skeleton.DefaultRadius, "Node radius")

	var ringNodes int
	ring := &cobra.Command{
		Use:   "ring",
		Short: "A closed loop of nodes on a circle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return f.write(cmd, skeleton.Ring(ringNodes))
		},
	}
	ring.Flags().IntVarP(&ringNodes, "nodes", "n", 8, "Number of nodes")

	var rows, cols int
	grid := &cobra.Command{
		Use:   "grid",
		Short: "A planar lattice of square cells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return f.write(cmd, skeleton.Grid(rows, cols))
		},
	}
	grid.Flags().IntVar(&rows, "rows", 3, "Number of node rows")
	grid.Flags().IntVar(&cols, "cols", 3, "Number of node columns")

	var tubeNodes, rings int
	tube := &cobra.Command{
		Use:   "tube",
		Short: "Stacked rings joined by rungs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return f.write(cmd, skeleton.Tube(tubeNodes, rings))
		},
	}
	tube.Flags().IntVarP(&tubeNodes, "nodes", "n", 4, "Nodes per ring")
	tube.Flags().IntVar(&rings, "rings", 3, "Number of rings")

	cube := &cobra.Command{
		Use:   "cube",
		Short: "The wireframe of a cube",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return f.write(cmd, skeleton.Cube())
		},
	}

	cmd.AddCommand(ring, grid, tube, cube)

	return cmd
}

func (f *generateFlags) write(cmd *cobra.Command, ctor skeleton.Constructor) error {
	if !(f.spacing > 0) {
		return fmt.Errorf("--spacing must be positive, got %v", f.spacing)
	}
	if !(f.radius >= 0) {
		return fmt.Errorf("--radius must not be negative, got %v", f.radius)
	}

	s, err := skeleton.Build([]skeleton.Option{
		skeleton.WithSpacing(f.spacing),
		skeleton.WithRadius(f.radius),
	}, ctor)
	if err != nil {
		return err
	}

	if f.output == "" {
		return s.Encode(cmd.OutOrStdout())
	}
	if err := s.Save(f.output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d nodes, %d edges to %s\n", len(s.Nodes), len(s.Edges), f.output)

	return nil
}
