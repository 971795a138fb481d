package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skinmesh/cyclefinder"
	"github.com/katalvlaran/skinmesh/geom"
	"github.com/katalvlaran/skinmesh/shortestpath"
	"github.com/katalvlaran/skinmesh/skeleton"
)

func newCyclesCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "cycles [file]",
		Short: "List the faces enclosed by a skeleton",
		Long: `Run cycle discovery on a skeleton file and print every accepted cycle
with its node indices, followed by search statistics. Use "-" to read
standard input.`,
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

			positions, edges := graphOf(sk)
			f := cyclefinder.New(positions, edges, cfg.CycleOptions(log)...)
			cycles := f.Find()

			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Cycles: %d\n", len(cycles))
			for i, c := range cycles {
				fmt.Fprintf(out, "  %d: %v (length %d)\n", i, c.Nodes, c.Length)
			}

			st := f.Stats()
			fmt.Fprintln(out, "Search:")
			fmt.Fprintf(out, "  Queries: %d\n", st.Searches)
			fmt.Fprintf(out, "  No detour: %d\n", st.NoDetour)
			fmt.Fprintf(out, "  Candidates: %d\n", st.Candidates)
			fmt.Fprintf(out, "  Skipped edges: %d\n", st.Skipped)
			if len(st.Rejected) > 0 {
				reasons := make([]cyclefinder.RejectReason, 0, len(st.Rejected))
				for r := range st.Rejected {
					reasons = append(reasons, r)
				}
				sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })
				fmt.Fprintln(out, "Rejected:")
				for _, r := range reasons {
					fmt.Fprintf(out, "  %s: %d\n", r, st.Rejected[r])
				}
			}

			return nil
		},
	}
}

// graphOf flattens a skeleton into the position and edge slices the cycle
// search takes.
func graphOf(sk *skeleton.Skeleton) ([]geom.Vec, []shortestpath.Edge) {
	positions := make([]geom.Vec, len(sk.Nodes))
	for i, n := range sk.Nodes {
		positions[i] = n.Position
	}
	edges := make([]shortestpath.Edge, len(sk.Edges))
	for i, e := range sk.Edges {
		edges[i] = shortestpath.Edge{U: e[0], V: e[1]}
	}

	return positions, edges
}
