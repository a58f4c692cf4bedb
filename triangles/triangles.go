// Package triangles binds the 2D triangle-split marching tables: every
// square cell is pre-split by one diagonal into two triangles, each
// independently contributing at most one line segment — since a triangle's
// three corners can never produce the saddle ambiguity a square's four
// can, neither binding needs an AmbiguityResolver.
//
// March splits along the forward diagonal (corner (0,0)-(1,1));
// MarchReversed splits along the other diagonal (corner (1,0)-(0,1)).
// Corner and edge numbering matches package squares: bottom=0, right=1,
// top=2, left=3; edge 4 is the diagonal, grounded on
// original_source/MarchingNumPy/MarchingTriangles.py's
// marching_triangles/marching_triangles_reversed pair.
package triangles

import (
	"github.com/aboyer/marchgo/march"
	"github.com/aboyer/marchgo/volume"
)

var (
	forwardTables  = mustTables(forwardGeometry, march.Axis{Delta: []int{1, 1}}, []int{0, 0})
	reversedTables = mustTables(reversedGeometry, march.Axis{Delta: []int{-1, 1}}, []int{1, 0})
)

func mustTables(geometry [][]int, diagonalAxis march.Axis, diagonalOrigin []int) *march.Tables {
	tbl, err := march.NewTables(
		2,
		[]march.Axis{
			{Delta: []int{1, 0}},
			{Delta: []int{0, 1}},
			diagonalAxis,
		},
		[][]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		[][]int{{0, 0}, {1, 0}, {0, 1}, {0, 0}, diagonalOrigin}, // bottom, right, top, left, diagonal
		[]int{0, 1, 0, 1, 2},
		geometry,
		2,
		nil,
	)
	if err != nil {
		panic(err)
	}
	return tbl
}

// forwardGeometry holds one row per 4-bit square cell type, each cell split
// along the (0,0)-(1,1) diagonal into two triangles sharing edge 4.
var forwardGeometry = [][]int{
	{-1, -1, -1, -1}, // 0000
	{0, 4, 4, 3},      // 0001
	{0, 1, -1, -1},   // 0010
	{1, 4, 4, 3},      // 0011
	{1, 4, 4, 2},      // 0100
	{0, 1, 2, 3},     // 0101
	{0, 4, 4, 2},      // 0110
	{2, 3, -1, -1},   // 0111
	{2, 3, -1, -1},   // 1000
	{0, 4, 4, 2},      // 1001
	{0, 1, 2, 3},     // 1010
	{1, 4, 4, 2},      // 1011
	{1, 4, 4, 3},      // 1100
	{0, 1, -1, -1},   // 1101
	{0, 4, 4, 3},      // 1110
	{-1, -1, -1, -1}, // 1111
}

// reversedGeometry is forwardGeometry's counterpart for the (1,0)-(0,1)
// diagonal split.
var reversedGeometry = [][]int{
	{-1, -1, -1, -1}, // 0000
	{0, 3, -1, -1},   // 0001
	{0, 4, 1, 4},      // 0010
	{3, 4, 1, 4},      // 0011
	{1, 2, -1, -1},   // 0100
	{0, 3, 1, 2},     // 0101
	{0, 4, 2, 4},      // 0110
	{3, 4, 2, 4},      // 0111
	{3, 4, 2, 4},      // 1000
	{0, 4, 2, 4},      // 1001
	{0, 3, 1, 2},     // 1010
	{1, 2, -1, -1},   // 1011
	{3, 4, 1, 4},      // 1100
	{0, 4, 1, 4},      // 1101
	{0, 3, -1, -1},   // 1110
	{-1, -1, -1, -1}, // 1111
}

// March extracts iso-contour line segments from a 2D volume at level,
// splitting every cell along its (0,0)-(1,1) diagonal.
func March(vol *volume.Volume, level float64, opts ...march.Option) (march.Vertices, march.Geometry, error) {
	return forwardTables.March(vol, level, opts...)
}

// MarchReversed is March split along the (1,0)-(0,1) diagonal instead.
func MarchReversed(vol *volume.Volume, level float64, opts ...march.Option) (march.Vertices, march.Geometry, error) {
	return reversedTables.March(vol, level, opts...)
}
