// Package skinmesh turns a skeleton graph, points with radii joined by
// edges, into a closed quad-dominant shell that wraps it.
//
// The work is split into small packages, each usable on its own:
//
//	geom/         — vector helpers over gonum's r3.Vec: turns, normals, areas
//	shortestpath/ — Dijkstra over an undirected, integer-weighted edge
//	                list; weights at or above a threshold are impassable
//	cyclefinder/  — discovers the faces a skeleton encloses as a set of
//	                minimal, non-overlapping, roughly planar cycles
//	regionfiller/ — meshes one region bounded by polylines with quads,
//	                choosing a construction by side count and segment parity
//	gridmesh/     — the pipeline: subdivide, find cycles, fill, orient,
//	                prune and extrude into a two-sheet shell
//	skeleton/     — skeleton values, generators (Ring, Grid, Tube, Cube)
//	                and YAML files
//	config/       — YAML settings mapped onto the package options
//	cmd/skinmesh  — command line front end
//
// A square skeleton:
//
//	    3───2
//	    │   │
//	    0───1
//
// encloses one cycle, is filled by a single quad and is extruded into a
// closed box of 8 vertices and 6 faces.
//
// Every stage is deterministic. Failures are returned as wrapped sentinel
// errors; regions that cannot be partitioned fall back to a single polygon
// and are reported through zap loggers passed in with WithLogger options.
//
//	go install github.com/katalvlaran/skinmesh/cmd/skinmesh@latest
package skinmesh
