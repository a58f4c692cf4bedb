package march

import "github.com/aboyer/marchgo/volume"

// classifyTypes is CellTypeClassifier (spec.md §4.2): for every cell, OR
// together one bit per corner that tests true, producing one integer type
// code per cell in row-major cell order. Tables.NewTables already verified
// Geometry has at least 2^cornerCount rows, so every code this produces is
// guaranteed to be a valid row index before any ambiguity remap runs.
func classifyTypes(bf *volume.BoolField, cornerDeltas [][]int, cellShape []int) []int {
	strides := bf.Strides()
	types := make([]int, 0, product(cellShape))
	forEachCell(cellShape, func(cell []int) {
		code := 0
		for bit, delta := range cornerDeltas {
			off := 0
			for k, c := range cell {
				off += (c + delta[k]) * strides[k]
			}
			if bf.At(off) {
				code |= 1 << uint(bit)
			}
		}
		types = append(types, code)
	})
	return types
}
