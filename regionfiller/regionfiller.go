package regionfiller

import (
	"fmt"

	"go.uber.org/zap"
)

// Filler meshes one closed region. The input vertices keep their indices;
// generated vertices are appended after them.
type Filler struct {
	options   Options
	input     []Node
	polylines [][]int

	vertices  []Node
	faces     [][]int
	synthetic map[int]bool // fan centers
	report    Report
}

// New copies vertices and polylines into a Filler. Consecutive polylines must
// share an endpoint (the last point of polyline i is the first of i+1, and
// the last polyline closes back onto the first).
func New(vertices []Node, polylines [][]int, opts ...Option) *Filler {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	lines := make([][]int, len(polylines))
	for i, pl := range polylines {
		lines[i] = append([]int(nil), pl...)
	}

	f := &Filler{
		options:   cfg,
		input:     append([]Node(nil), vertices...),
		polylines: lines,
	}
	f.reset()

	return f
}

// Vertices returns the input vertices followed by the generated ones.
func (f *Filler) Vertices() []Node { return f.vertices }

// Faces returns the faces of the last fill.
func (f *Filler) Faces() [][]int { return f.faces }

// Report describes the last fill.
func (f *Filler) Report() Report { return f.report }

// reset restores the output to the untouched input.
func (f *Filler) reset() {
	f.vertices = append(f.vertices[:0:0], f.input...)
	f.faces = nil
	f.synthetic = make(map[int]bool)
	f.report = Report{Sides: len(f.polylines)}
	for _, pl := range f.polylines {
		if len(pl) > 0 {
			f.report.Segments += len(pl) - 1
		}
	}
}

func (f *Filler) appendVertex(n Node) int {
	f.vertices = append(f.vertices, n)

	return len(f.vertices) - 1
}

// validate checks the region shape.
func (f *Filler) validate() error {
	k := len(f.polylines)
	if k < 3 {
		return fmt.Errorf("%w: %d polylines, need at least 3", ErrInvalidRegion, k)
	}
	for i, pl := range f.polylines {
		if len(pl) < 2 {
			return fmt.Errorf("%w: polyline %d has %d points", ErrInvalidRegion, i, len(pl))
		}
		for _, idx := range pl {
			if idx < 0 || idx >= len(f.input) {
				return fmt.Errorf("%w: polyline %d references vertex %d", ErrInvalidRegion, i, idx)
			}
		}
		next := f.polylines[(i+1)%k]
		if pl[len(pl)-1] != next[0] {
			return fmt.Errorf("%w: polyline %d ends at %d, polyline %d starts at %d",
				ErrInvalidRegion, i, pl[len(pl)-1], (i+1)%k, next[0])
		}
	}

	return nil
}

// Fill meshes the region with quads (and at most a few corner triangles).
//
// Returns an error wrapping ErrInvalidRegion for malformed input and
// ErrInfeasibleFill when the side counts admit no layout. On error the
// output is the unmodified input with no faces.
func (f *Filler) Fill() error {
	// 1) Start from the input.
	f.reset()
	if err := f.validate(); err != nil {
		return err
	}

	// 2) Plan without touching the buffers.
	p := planner{verts: f.input}
	pl, err := p.plan(f.polylines)
	if err != nil {
		f.options.Logger.Debug("region plan failed",
			zap.Int("sides", f.report.Sides),
			zap.Int("segments", f.report.Segments),
			zap.Error(err),
		)

		return err
	}

	// 3) Build.
	f.report.Branch = pl.branch
	f.report.PQSwapped = pl.swapped
	for _, tri := range pl.clips {
		f.faces = append(f.faces, []int{tri[0], tri[1], tri[2]})
		f.report.Clipped++
	}
	if pl.rays == nil {
		s := pl.sides
		f.coons(s[0], s[1], s[2], s[3])
	} else {
		f.report.Rays = append([]int(nil), pl.rays...)
		f.fan(pl.sides, pl.rays)
	}

	f.report.Vertices = len(f.vertices) - len(f.input)
	f.report.Faces = len(f.faces)
	f.options.Logger.Debug("region filled",
		zap.Stringer("branch", pl.branch),
		zap.Int("sides", f.report.Sides),
		zap.Int("faces", f.report.Faces),
	)

	return nil
}

// FillWithoutPartition emits the whole boundary as a single n-gon, in the
// cyclic order of the polylines. Each polyline contributes all points but
// its last, which is the first point of the next one.
func (f *Filler) FillWithoutPartition() {
	f.reset()

	var face []int
	for _, pl := range f.polylines {
		if len(pl) == 0 {
			continue
		}
		face = append(face, pl[:len(pl)-1]...)
	}
	if len(face) > 0 {
		f.faces = [][]int{face}
	}

	f.report.Branch = BranchUnpartitioned
	f.report.Faces = len(f.faces)
}
