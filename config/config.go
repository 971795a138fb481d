// Package config holds skinmesh settings: mesh building thresholds, cycle
// discovery tuning and logging.
package config

import (
	"github.com/katalvlaran/skinmesh/cyclefinder"
	"github.com/katalvlaran/skinmesh/gridmesh"
)

// Config holds all settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Cycles  CyclesConfig  `yaml:"cycles"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig holds gridmesh settings.
type MeshConfig struct {
	Subdivide        bool    `yaml:"subdivide"`
	TargetEdgeLength float64 `yaml:"target_edge_length"` // longest edge kept whole when subdividing
	CornerDegrees    float64 `yaml:"corner_degrees"`     // turn that splits a cycle into sides
	MaxBigRingSize   int     `yaml:"max_big_ring_size"`  // foreign faces a face may border
}

// CyclesConfig holds cyclefinder settings.
type CyclesConfig struct {
	OppositeOverlapRatio  float64 `yaml:"opposite_overlap_ratio"`
	FlatnessThreshold     float64 `yaml:"flatness_threshold"`
	FlatnessCornerDegrees float64 `yaml:"flatness_corner_degrees"`
	ReusePenalty          int64   `yaml:"reuse_penalty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the library defaults.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			Subdivide:        false,
			TargetEdgeLength: gridmesh.DefaultTargetEdgeLength,
			CornerDegrees:    gridmesh.DefaultCornerDegrees,
			MaxBigRingSize:   gridmesh.DefaultMaxBigRingSize,
		},
		Cycles: CyclesConfig{
			OppositeOverlapRatio:  cyclefinder.DefaultOppositeOverlapRatio,
			FlatnessThreshold:     cyclefinder.DefaultFlatnessThreshold,
			FlatnessCornerDegrees: cyclefinder.DefaultFlatnessCornerDegrees,
			ReusePenalty:          cyclefinder.DefaultReusePenalty,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
