package march

import "fmt"

// remapIndexes is IndexRemapper (spec.md §4.5): assign each distinct EdgeId
// an ordinal equal to its position in crossings (already correctly
// ordered by findIntersects), then translate every raw EdgeId reference in
// rawGeometry to that ordinal. Below denseThreshold it scatters into a
// plain slice (remapDense); at or above it, into a map (remapSparse) — the
// two strategies documented as NUMPY/DICT in original_source's
// ConvertIndexes.py (see SPEC_FULL.md §12) — observably identical, chosen
// purely so a pathologically sparse EdgeId range doesn't force an
// enormous backing array.
func remapIndexes(ndim int, crossings []crossing, rawGeometry []int, verticesPerSimplex, denseThreshold int) (Vertices, Geometry, error) {
	maxID := -1
	for _, c := range crossings {
		if c.edgeID > maxID {
			maxID = c.edgeID
		}
	}

	var lookup func(id int) (int, bool)
	if maxID >= 0 && maxID < denseThreshold {
		lookup = remapDense(crossings, maxID)
	} else {
		lookup = remapSparse(crossings)
	}

	indices := make([]uint32, len(rawGeometry))
	for i, id := range rawGeometry {
		ord, ok := lookup(id)
		if !ok {
			return Vertices{}, Geometry{}, fmt.Errorf("march: edge id %d: %w", id, ErrMissingVertex)
		}
		indices[i] = uint32(ord)
	}

	vdata := make([]float32, 0, len(crossings)*ndim)
	for _, c := range crossings {
		vdata = append(vdata, c.coord...)
	}

	return Vertices{Dim: ndim, Data: vdata}, Geometry{VerticesPerSimplex: verticesPerSimplex, Indices: indices}, nil
}

func remapDense(crossings []crossing, maxID int) func(int) (int, bool) {
	dense := make([]int, maxID+1)
	for i := range dense {
		dense[i] = -1
	}
	for ord, c := range crossings {
		dense[c.edgeID] = ord
	}
	return func(id int) (int, bool) {
		if id < 0 || id > maxID {
			return 0, false
		}
		v := dense[id]
		return v, v >= 0
	}
}

func remapSparse(crossings []crossing) func(int) (int, bool) {
	sparse := make(map[int]int, len(crossings))
	for ord, c := range crossings {
		sparse[c.edgeID] = ord
	}
	return func(id int) (int, bool) {
		v, ok := sparse[id]
		return v, ok
	}
}
