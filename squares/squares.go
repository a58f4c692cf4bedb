// Package squares binds the 2D square marching tables: every cell is a
// unit square with 4 corners and up to 2 line segments, one asymptotic-
// decider ambiguity resolver for the two saddle cell types, and 2
// crossing directions (horizontal, vertical).
//
// Corner order matches spec.md's bit assignment: bit0=(0,0), bit1=(1,0),
// bit2=(1,1), bit3=(0,1) — axis 0 is the first volume axis, axis 1 the
// second. Edge numbers within a cell: 0=bottom (axis-0 edge at the cell's
// low axis-1 side), 1=right (axis-1 edge at the cell's high axis-0 side),
// 2=top (axis-0 edge at the cell's high axis-1 side), 3=left (axis-1 edge
// at the cell's low axis-0 side) — the same naming original_source's
// MarchingSquares.py uses.
package squares

import (
	"github.com/aboyer/marchgo/march"
	"github.com/aboyer/marchgo/volume"
)

var tables = mustTables()

func mustTables() *march.Tables {
	tbl, err := march.NewTables(
		2,
		[]march.Axis{
			{Delta: []int{1, 0}},
			{Delta: []int{0, 1}},
		},
		[][]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		[][]int{{0, 0}, {1, 0}, {0, 1}, {0, 0}}, // bottom, right, top, left
		[]int{0, 1, 0, 1},
		geometryTable,
		2,
		resolveSaddles,
	)
	if err != nil {
		panic(err)
	}
	return tbl
}

// geometryTable holds one row per 4-bit cell type (0-15) plus two extra
// rows (16, 17) squareAmbiguityResolution remaps the two saddle types into.
// Each row is up to 2 line segments (4 slots), -1 padded. Ported from the
// classic marching-squares case table as exercised in
// original_source/MarchingCuPy/MarchingSquares.py.
var geometryTable = [][]int{
	{-1, -1, -1, -1}, // 0000
	{3, 0, -1, -1},   // 0001
	{0, 1, -1, -1},   // 0010
	{3, 1, -1, -1},   // 0011
	{1, 2, -1, -1},   // 0100
	{0, 1, 2, 3},     // 0101 (saddle, default resolution)
	{0, 2, -1, -1},   // 0110
	{2, 3, -1, -1},   // 0111 (complement of 1000, same pair: top,left)
	{2, 3, -1, -1},   // 1000
	{0, 2, -1, -1},   // 1001
	{0, 1, 2, 3},     // 1010 (saddle, default resolution)
	{1, 2, -1, -1},   // 1011
	{3, 1, -1, -1},   // 1100
	{0, 1, -1, -1},   // 1101
	{3, 0, -1, -1},   // 1110
	{-1, -1, -1, -1}, // 1111
	{3, 0, 1, 2},     // 16: 0101 resolved the other way
	{3, 0, 1, 2},     // 17: 1010 resolved the other way
}

// squareAmbiguityResolution maps a saddle cell type to its resolved-type
// row, chosen by the face test.
var squareAmbiguityResolution = map[int]int{5: 16, 10: 17}

// resolveSaddles is the bespoke in-place AmbiguityResolver for squares
// (spec.md §4.3): for every cell classified as one of the two saddle
// types, apply the asymptotic-decider face test
// v(0,0)*v(1,1) < v(0,1)*v(1,0) and remap to the alternative geometry row
// when it holds. Mirrors original_source/MarchingCuPy/MarchingSquares.py's
// ambiguity_resolution; MarchingCuPy's generic resolve_ambiguous_types
// helper is not used (see SPEC_FULL.md §12 — it is dead code per spec.md
// §9).
func resolveSaddles(types []int, cellShape []int, vol *volume.Volume) {
	nx, ny := cellShape[0], cellShape[1]
	idx := 0
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			target, ambiguous := squareAmbiguityResolution[types[idx]]
			if ambiguous {
				v00, _ := vol.At(x, y)
				v10, _ := vol.At(x+1, y)
				v11, _ := vol.At(x+1, y+1)
				v01, _ := vol.At(x, y+1)
				if v00*v11 < v01*v10 {
					types[idx] = target
				}
			}
			idx++
		}
	}
}

// March extracts iso-contour line segments from a 2D volume at level,
// resolving saddle ambiguities by default (see march.WithResolveAmbiguous
// to disable).
func March(vol *volume.Volume, level float64, opts ...march.Option) (march.Vertices, march.Geometry, error) {
	return tables.March(vol, level, opts...)
}
