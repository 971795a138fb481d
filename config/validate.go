package config

import (
	"errors"
	"fmt"
)

// ErrInvalid indicates a setting outside its meaningful range.
var ErrInvalid = errors.New("config: invalid setting")

var levels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks every setting the library options would reject.
func (c *Config) Validate() error {
	m, cy := c.Mesh, c.Cycles
	switch {
	case m.TargetEdgeLength <= 0:
		return fmt.Errorf("%w: mesh.target_edge_length %v must be positive", ErrInvalid, m.TargetEdgeLength)
	case m.CornerDegrees <= 0 || m.CornerDegrees >= 180:
		return fmt.Errorf("%w: mesh.corner_degrees %v must be in (0, 180)", ErrInvalid, m.CornerDegrees)
	case m.MaxBigRingSize < 1:
		return fmt.Errorf("%w: mesh.max_big_ring_size %d must be at least 1", ErrInvalid, m.MaxBigRingSize)
	case cy.OppositeOverlapRatio <= 0 || cy.OppositeOverlapRatio > 1:
		return fmt.Errorf("%w: cycles.opposite_overlap_ratio %v must be in (0, 1]", ErrInvalid, cy.OppositeOverlapRatio)
	case cy.FlatnessThreshold < 0:
		return fmt.Errorf("%w: cycles.flatness_threshold %v must not be negative", ErrInvalid, cy.FlatnessThreshold)
	case cy.FlatnessCornerDegrees < 0 || cy.FlatnessCornerDegrees >= 180:
		return fmt.Errorf("%w: cycles.flatness_corner_degrees %v must be in [0, 180)", ErrInvalid, cy.FlatnessCornerDegrees)
	case cy.ReusePenalty < 0:
		return fmt.Errorf("%w: cycles.reuse_penalty %d must not be negative", ErrInvalid, cy.ReusePenalty)
	case !levels[c.Logging.Level]:
		return fmt.Errorf("%w: logging.level %q must be one of debug, info, warn, error", ErrInvalid, c.Logging.Level)
	}

	return nil
}
