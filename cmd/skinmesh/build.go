package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/skinmesh/geom"
	"github.com/katalvlaran/skinmesh/gridmesh"
	"github.com/katalvlaran/skinmesh/regionfiller"
)

func newBuildCmd(s *settings) *cobra.Command {
	var subdivide bool

	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Build the skin mesh of a skeleton",
		Long: `Build the closed two-sheet shell of a skeleton file and print a summary:
skeleton size, discovered cycles, mesh size, fill branches and the bounding
box of the shell. Use "-" to read standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, closeLog, err := s.load(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			sk, err := readSkeleton(cmd, args[0])
			if err != nil {
				return err
			}

			b := gridmesh.New(cfg.BuilderOptions(log)...)
			if cmd.Flags().Changed("subdivide") {
				b.SetSubdived(subdivide)
			}
			if err := sk.ApplyTo(b); err != nil {
				return err
			}
			if !b.Build() {
				return fmt.Errorf("build %s: %w", args[0], b.Err())
			}
			log.Info("mesh ready",
				zap.String("file", args[0]),
				zap.Int("vertices", len(b.Vertices())),
				zap.Int("faces", len(b.Faces())),
			)

			printSummary(cmd.OutOrStdout(), len(sk.Nodes), b)

			return nil
		},
	}
	cmd.Flags().BoolVar(&subdivide, "subdivide", false, "Split long edges before meshing (overrides config)")

	return cmd
}

func printSummary(out io.Writer, nodes int, b *gridmesh.Builder) {
	st := b.Stats()

	fmt.Fprintln(out, "Skeleton:")
	fmt.Fprintf(out, "  Nodes: %d\n", nodes)
	fmt.Fprintf(out, "  Meshed nodes: %d\n", st.Nodes)
	fmt.Fprintf(out, "  Meshed edges: %d\n", st.Edges)
	fmt.Fprintf(out, "Cycles: %d\n", st.Cycles)
	fmt.Fprintf(out, "  Filled: %d\n", st.Filled)
	fmt.Fprintf(out, "  Fallbacks: %d\n", st.Fallbacks)
	fmt.Fprintf(out, "  Polygons: %d\n", st.NGons)
	fmt.Fprintln(out, "Mesh:")
	fmt.Fprintf(out, "  Vertices: %d\n", st.Vertices)
	fmt.Fprintf(out, "  Faces: %d\n", st.Faces)
	fmt.Fprintf(out, "  Open edges: %d\n", st.OpenEdges)
	fmt.Fprintf(out, "  Conflicts: %d\n", st.Conflicts)
	fmt.Fprintf(out, "  Pruned: %d\n", st.Pruned)

	if len(st.Branches) > 0 {
		branches := make([]regionfiller.Branch, 0, len(st.Branches))
		for br := range st.Branches {
			branches = append(branches, br)
		}
		sort.Slice(branches, func(i, j int) bool { return branches[i] < branches[j] })
		fmt.Fprintln(out, "Branches:")
		for _, br := range branches {
			fmt.Fprintf(out, "  %s: %d\n", br, st.Branches[br])
		}
	}

	lo, hi := bounds(b.Vertices())
	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: (%.4f, %.4f, %.4f)\n", lo.X, lo.Y, lo.Z)
	fmt.Fprintf(out, "  Max: (%.4f, %.4f, %.4f)\n", hi.X, hi.Y, hi.Z)
}

func bounds(verts []gridmesh.Vertex) (lo, hi geom.Vec) {
	if len(verts) == 0 {
		return lo, hi
	}
	lo, hi = verts[0].Position, verts[0].Position
	for _, v := range verts[1:] {
		p := v.Position
		lo = geom.V(min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z))
		hi = geom.V(max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z))
	}

	return lo, hi
}
