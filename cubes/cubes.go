// Package cubes binds the classic Lorensen marching-cubes tables: a 3D
// cell has 8 corners and 12 edges, and the 256 possible inside/outside
// corner patterns map onto a fixed triangle table in which every pattern,
// ambiguous ones included, has one fixed triangulation (Lorensen & Cline's original formulation simply
// accepts the rare topological inconsistency rather than disambiguating
// it, so no AmbiguityResolver is bound here — matching
// original_source/MarchingNumPy/MarchingCubesLorensen.py, which also
// ships the plain table without a resolver).
package cubes

import (
	"github.com/aboyer/marchgo/march"
	"github.com/aboyer/marchgo/volume"
)

// Corner bit order: bit k set means corner k is inside the surface.
//
//	0: (0,0,0)  1: (1,0,0)  2: (1,1,0)  3: (0,1,0)
//	4: (0,0,1)  5: (1,0,1)  6: (1,1,1)  7: (0,1,1)
var cornerDeltas = [][]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// Edge numbering follows the classic Bourke layout: edges 0-3 run around
// the z=0 face, 4-7 around the z=1 face, 8-11 are the vertical edges
// connecting matching corners.
var edgeDelta = [][]int{
	{0, 0, 0}, // 0: corner0 -> corner1, +x
	{1, 0, 0}, // 1: corner1 -> corner2, +y
	{0, 1, 0}, // 2: corner3 -> corner2, +x
	{0, 0, 0}, // 3: corner0 -> corner3, +y
	{0, 0, 1}, // 4: corner4 -> corner5, +x
	{1, 0, 1}, // 5: corner5 -> corner6, +y
	{0, 1, 1}, // 6: corner7 -> corner6, +x
	{0, 0, 1}, // 7: corner4 -> corner7, +y
	{0, 0, 0}, // 8: corner0 -> corner4, +z
	{1, 0, 0}, // 9: corner1 -> corner5, +z
	{1, 1, 0}, // 10: corner2 -> corner6, +z
	{0, 1, 0}, // 11: corner3 -> corner7, +z
}

var edgeDirection = []int{0, 1, 0, 1, 0, 1, 0, 1, 2, 2, 2, 2}

var boundTables = mustTables()

func mustTables() *march.Tables {
	geometry := make([][]int, len(triTable))
	for i, row := range triTable {
		// Each 16-slot row ends in a -1 pad slot; keep the first 15 (five
		// whole triangles) so the row length is a multiple of 3.
		n := len(row) - len(row)%3
		r := make([]int, n)
		for j, v := range row[:n] {
			r[j] = int(v)
		}
		geometry[i] = r
	}

	tbl, err := march.NewTables(
		3,
		[]march.Axis{
			{Delta: []int{1, 0, 0}},
			{Delta: []int{0, 1, 0}},
			{Delta: []int{0, 0, 1}},
		},
		cornerDeltas,
		edgeDelta,
		edgeDirection,
		geometry,
		3,
		nil,
	)
	if err != nil {
		panic(err)
	}
	return tbl
}

// March extracts an iso-surface triangle mesh from a 3D volume at level,
// using the classic Lorensen marching-cubes corner/edge/triangle tables.
func March(vol *volume.Volume, level float64, opts ...march.Option) (march.Vertices, march.Geometry, error) {
	return boundTables.March(vol, level, opts...)
}
