package config

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/skinmesh/cyclefinder"
	"github.com/katalvlaran/skinmesh/gridmesh"
)

// CycleOptions converts the cycle settings. The config must be valid.
func (c *Config) CycleOptions(log *zap.Logger) []cyclefinder.Option {
	return []cyclefinder.Option{
		cyclefinder.WithOppositeOverlapRatio(c.Cycles.OppositeOverlapRatio),
		cyclefinder.WithFlatnessThreshold(c.Cycles.FlatnessThreshold),
		cyclefinder.WithFlatnessCornerDegrees(c.Cycles.FlatnessCornerDegrees),
		cyclefinder.WithReusePenalty(c.Cycles.ReusePenalty),
		cyclefinder.WithLogger(log),
	}
}

// BuilderOptions converts the mesh and cycle settings into gridmesh options
// that log to log. The config must be valid.
func (c *Config) BuilderOptions(log *zap.Logger) []gridmesh.Option {
	return []gridmesh.Option{
		gridmesh.WithSubdivide(c.Mesh.Subdivide),
		gridmesh.WithTargetEdgeLength(c.Mesh.TargetEdgeLength),
		gridmesh.WithCornerDegrees(c.Mesh.CornerDegrees),
		gridmesh.WithMaxBigRingSize(c.Mesh.MaxBigRingSize),
		gridmesh.WithCycleOptions(c.CycleOptions(log)...),
		gridmesh.WithLogger(log),
	}
}
