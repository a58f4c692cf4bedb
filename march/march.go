// Package march implements the dimension-agnostic marching pipeline: a
// bound Tables plus a volume and an iso level go in, a deduplicated vertex
// list and simplex index list come out. It has no notion of "2D" or "3D"
// by itself — packages squares, triangles, and cubes each construct a
// *Tables describing one concrete marching operation and expose it as a
// plain function; this package only supplies the five-stage engine and the
// EdgeId scheme that lets that engine dedup vertices without a hash set
// over coordinates.
package march

import (
	"fmt"

	"github.com/aboyer/marchgo/volume"
)

// March runs the five-stage pipeline described in spec.md §2 over vol at
// the given iso level, using t as the bound dimension/geometry tables.
//
//  1. (optional) resample vol per WithStepSize
//  2. IntersectFinder: find every sign-flip crossing, interpolate its
//     position
//  3. CellTypeClassifier: bitmask every cell by which corners are inside
//  4. AmbiguityResolver: break 2D saddle ambiguities, if t has one and the
//     caller didn't disable it
//  5. GeometryLookup + IndexRemapper: turn cell types into simplices over
//     deduplicated vertex ordinals
//
// Returns ErrInvalidInput if vol's dimensionality doesn't match t, or any
// axis (after step-size resampling) has fewer than two samples.
func (t *Tables) March(vol *volume.Volume, level float64, opts ...Option) (Vertices, Geometry, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if vol.NDim() != t.NDim {
		return Vertices{}, Geometry{}, fmt.Errorf("march: tables are %d-dimensional, volume is %d-dimensional: %w", t.NDim, vol.NDim(), ErrInvalidInput)
	}
	for axis, n := range vol.Shape() {
		if n < 2 {
			return Vertices{}, Geometry{}, fmt.Errorf("march: axis %d has only %d samples, need >= 2: %w", axis, n, ErrInvalidInput)
		}
	}

	sampled := vol
	if cfg.stepSize != 1 {
		var err error
		sampled, err = vol.Strided(cfg.stepSize)
		if err != nil {
			return Vertices{}, Geometry{}, fmt.Errorf("march: %v: %w", err, ErrInvalidInput)
		}
	}

	shape := sampled.Shape()
	cellShape := make([]int, len(shape))
	for k, n := range shape {
		cellShape[k] = n - 1
	}

	bf := sampled.Threshold(level)
	sizeMul := sizeMultiplier(shape, len(t.Axes))

	crossings := findIntersects(bf, sampled, level, t.Axes, sizeMul, cfg.interpolation)

	types := classifyTypes(bf, t.CornerDeltas, cellShape)
	if t.Ambiguity != nil && cfg.resolveAmbiguous {
		t.Ambiguity(types, cellShape, sampled)
	}

	offsets := edgeOffsets(t.EdgeDelta, t.EdgeDirection, sizeMul)
	rawGeometry := lookupGeometry(types, cellShape, sizeMul, offsets, t.Geometry, t.VerticesPerSimplex)

	return remapIndexes(t.NDim, crossings, rawGeometry, t.VerticesPerSimplex, cfg.denseRemapThreshold)
}
