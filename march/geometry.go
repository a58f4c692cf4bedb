package march

// edgeOffsets precomputes, for every cell-local edge number e, the flat
// offset from a cell's origin corner id to that edge's absolute EdgeId:
// offset[e] = dot(EdgeDelta[e], sizeMultiplier) + EdgeDirection[e]. This is
// shape-dependent (sizeMultiplier is), so it is rebuilt once per March call
// rather than cached on Tables.
func edgeOffsets(edgeDelta [][]int, edgeDirection []int, sizeMul []int) []int {
	offsets := make([]int, len(edgeDelta))
	for e, delta := range edgeDelta {
		offsets[e] = dot(delta, sizeMul) + edgeDirection[e]
	}
	return offsets
}

// lookupGeometry is GeometryLookup (spec.md §4.4): for every cell, walk its
// type row in VerticesPerSimplex-wide groups until a -1 sentinel, emitting
// one absolute EdgeId per simplex vertex. Cell iteration order matches
// classifyTypes's, so types[i] always describes the i-th visited cell.
func lookupGeometry(types []int, cellShape []int, sizeMul []int, offsets []int, table [][]int, verticesPerSimplex int) []int {
	var raw []int
	idx := 0
	forEachCell(cellShape, func(cell []int) {
		code := types[idx]
		idx++
		originID := dot(cell, sizeMul)
		row := table[code]
		for s := 0; s+verticesPerSimplex <= len(row); s += verticesPerSimplex {
			if row[s] == -1 {
				break
			}
			for k := 0; k < verticesPerSimplex; k++ {
				raw = append(raw, originID+offsets[row[s+k]])
			}
		}
	})
	return raw
}
