package march

import (
	"fmt"

	"github.com/aboyer/marchgo/volume"
)

// Axis describes one of the nAxes distinct intersect directions a Tables
// scans for crossings. Delta is the grid-step (in volume-axis units, one
// component per volume axis) from an edge's lower corner to its upper
// corner — (1,0) for an x-axis edge, (1,1) for the forward diagonal of a
// split square cell, and so on. Its position in the Axes slice is the
// direction code baked into every EdgeId involving that axis.
type Axis struct {
	Delta []int
}

// AmbiguityResolver mutates a cell-type array in place to break a face
// ambiguity the base cell-type bitmask cannot express on its own (the 2D
// saddle case; see spec.md §4.3). vol is the (possibly step-sampled) volume
// the types were classified from; cellShape is its per-axis cell count
// (one less than its sample count per axis).
type AmbiguityResolver func(types []int, cellShape []int, vol *volume.Volume)

// Tables binds every dimension- and geometry-specific constant the five-
// stage pipeline needs — this is the Go counterpart of the Python
// original's marching_factory closures, minus the closure: instead of a
// factory returning a bound function, NewTables returns a bound, reusable
// *Tables whose March method is the entry point.
type Tables struct {
	NDim               int
	Axes               []Axis
	CornerDeltas       [][]int
	EdgeDelta          [][]int
	EdgeDirection      []int
	Geometry           [][]int
	VerticesPerSimplex int
	Ambiguity          AmbiguityResolver
}

// NewTables validates and constructs a Tables. It never mutates its
// arguments; callers typically build one package-level Tables per bound
// operation (squares, triangles, triangles-reversed, cubes) at init time
// and reuse it across every call.
//
// Returns ErrInvalidTable for any internal inconsistency (corner count not
// 2^NDim, EdgeDelta/EdgeDirection length mismatch, an EdgeDirection or
// geometry edge-number value out of range, a geometry row whose length
// isn't a multiple of verticesPerSimplex) and ErrTypeTooNarrow if geometry
// has fewer rows than the cell-type bitmask range requires.
func NewTables(ndim int, axes []Axis, cornerDeltas, edgeDelta [][]int, edgeDirection []int, geometry [][]int, verticesPerSimplex int, ambiguity AmbiguityResolver) (*Tables, error) {
	if ndim <= 0 {
		return nil, fmt.Errorf("march.NewTables: ndim must be positive: %w", ErrInvalidTable)
	}
	cornerCount := len(cornerDeltas)
	if cornerCount != 1<<uint(ndim) {
		return nil, fmt.Errorf("march.NewTables: %d corners for %d dims, want %d: %w", cornerCount, ndim, 1<<uint(ndim), ErrInvalidTable)
	}
	for _, c := range cornerDeltas {
		if len(c) != ndim {
			return nil, fmt.Errorf("march.NewTables: corner delta %v has wrong dimensionality: %w", c, ErrInvalidTable)
		}
	}
	if len(axes) == 0 {
		return nil, fmt.Errorf("march.NewTables: at least one axis required: %w", ErrInvalidTable)
	}
	for _, a := range axes {
		if len(a.Delta) != ndim {
			return nil, fmt.Errorf("march.NewTables: axis delta %v has wrong dimensionality: %w", a.Delta, ErrInvalidTable)
		}
	}
	if len(edgeDelta) != len(edgeDirection) {
		return nil, fmt.Errorf("march.NewTables: %d edge deltas vs %d edge directions: %w", len(edgeDelta), len(edgeDirection), ErrInvalidTable)
	}
	for _, d := range edgeDirection {
		if d < 0 || d >= len(axes) {
			return nil, fmt.Errorf("march.NewTables: edge direction %d outside [0,%d): %w", d, len(axes), ErrInvalidTable)
		}
	}
	for _, d := range edgeDelta {
		if len(d) != ndim {
			return nil, fmt.Errorf("march.NewTables: edge delta %v has wrong dimensionality: %w", d, ErrInvalidTable)
		}
	}
	if verticesPerSimplex <= 0 {
		return nil, fmt.Errorf("march.NewTables: verticesPerSimplex must be positive: %w", ErrInvalidTable)
	}
	if len(geometry) < 1<<uint(cornerCount) {
		return nil, fmt.Errorf("march.NewTables: %d geometry rows for %d possible cell types: %w", len(geometry), 1<<uint(cornerCount), ErrTypeTooNarrow)
	}
	for _, row := range geometry {
		if len(row)%verticesPerSimplex != 0 {
			return nil, fmt.Errorf("march.NewTables: geometry row length %d not a multiple of %d: %w", len(row), verticesPerSimplex, ErrInvalidTable)
		}
		for _, edgeNum := range row {
			if edgeNum != -1 && (edgeNum < 0 || edgeNum >= len(edgeDelta)) {
				return nil, fmt.Errorf("march.NewTables: geometry edge number %d outside [0,%d): %w", edgeNum, len(edgeDelta), ErrInvalidTable)
			}
		}
	}
	return &Tables{
		NDim:               ndim,
		Axes:               axes,
		CornerDeltas:       cornerDeltas,
		EdgeDelta:          edgeDelta,
		EdgeDirection:      edgeDirection,
		Geometry:           geometry,
		VerticesPerSimplex: verticesPerSimplex,
		Ambiguity:          ambiguity,
	}, nil
}
