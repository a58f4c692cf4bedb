// Package marchgo collects the bound marching operations this module
// ships: 2D marching squares and marching triangles, and 3D marching
// cubes, each a thin re-export of its subpackage's March function so a
// caller who only needs one algorithm can import the root package alone
// rather than reaching into march/squares/triangles/cubes directly.
//
// Grounded on original_source/MarchingNumPy/__init__.py, which re-exports
// the same four operations from the package root.
package marchgo

import (
	"github.com/aboyer/marchgo/cubes"
	"github.com/aboyer/marchgo/march"
	"github.com/aboyer/marchgo/squares"
	"github.com/aboyer/marchgo/triangles"
	"github.com/aboyer/marchgo/volume"
)

// Re-exported so callers can reference these types without importing the
// march package directly.
type (
	Option        = march.Option
	Vertices      = march.Vertices
	Geometry      = march.Geometry
	Interpolation = march.Interpolation
	Volume        = volume.Volume
)

const (
	Linear  = march.Linear
	Halfway = march.Halfway
	Cosine  = march.Cosine
)

var (
	WithInterpolation       = march.WithInterpolation
	WithStepSize            = march.WithStepSize
	WithResolveAmbiguous    = march.WithResolveAmbiguous
	WithDenseRemapThreshold = march.WithDenseRemapThreshold
)

// MarchingSquares extracts iso-contour line segments from a 2D volume,
// resolving saddle ambiguity with the asymptotic-decider face test by
// default.
func MarchingSquares(vol *volume.Volume, level float64, opts ...Option) (Vertices, Geometry, error) {
	return squares.March(vol, level, opts...)
}

// MarchingTriangles extracts iso-contour line segments from a 2D volume
// after splitting every cell along its (0,0)-(1,1) diagonal, sidestepping
// saddle ambiguity entirely.
func MarchingTriangles(vol *volume.Volume, level float64, opts ...Option) (Vertices, Geometry, error) {
	return triangles.March(vol, level, opts...)
}

// MarchingTrianglesReversed is MarchingTriangles split along the
// (1,0)-(0,1) diagonal instead.
func MarchingTrianglesReversed(vol *volume.Volume, level float64, opts ...Option) (Vertices, Geometry, error) {
	return triangles.MarchReversed(vol, level, opts...)
}

// MarchingCubesLorensen extracts an iso-surface triangle mesh from a 3D
// volume using the classic Lorensen & Cline corner/edge/triangle tables.
func MarchingCubesLorensen(vol *volume.Volume, level float64, opts ...Option) (Vertices, Geometry, error) {
	return cubes.March(vol, level, opts...)
}
