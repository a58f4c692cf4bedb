package march

import "github.com/aboyer/marchgo/volume"

// crossing is one flagged edge: the grid-point id of its lower corner plus
// the direction code of the axis it runs along, and the interpolated
// vertex position in volume-index space.
type crossing struct {
	edgeID int
	coord  []float32
}

// findIntersects is IntersectFinder (spec.md §4.1): for every bound axis,
// in axis-enumeration order, scan every pair of grid points a step apart
// along that axis and emit a crossing wherever the volume test flips.
// Crossings come out already ordered by axis then row-major origin
// coordinate, which is exactly the determinism contract (spec.md §8
// property: emission order) the rest of the pipeline relies on.
func findIntersects(bf *volume.BoolField, vol *volume.Volume, level float64, axes []Axis, sizeMul []int, interp Interpolation) []crossing {
	shape := vol.Shape()
	strides := bf.Strides()
	var out []crossing

	for direction, axis := range axes {
		lo := make([]int, len(shape))
		hi := make([]int, len(shape))
		for k, d := range axis.Delta {
			switch {
			case d > 0:
				lo[k], hi[k] = 0, shape[k]-d
			case d < 0:
				lo[k], hi[k] = -d, shape[k]
			default:
				lo[k], hi[k] = 0, shape[k]
			}
		}
		forEachCoord(lo, hi, func(a []int) {
			offA := dot(a, strides)
			b := make([]int, len(a))
			offB := 0
			for k, d := range axis.Delta {
				b[k] = a[k] + d
				offB += b[k] * strides[k]
			}
			testA, testB := bf.At(offA), bf.At(offB)
			if testA == testB {
				return
			}
			vA, _ := vol.At(a...)
			vB, _ := vol.At(b...)
			t := crossingFraction(vA, vB, level, interp)
			pos := make([]float32, len(a))
			for k := range a {
				pos[k] = float32(a[k]) + float32(t)*float32(axis.Delta[k])
			}
			out = append(out, crossing{
				edgeID: dot(a, sizeMul) + direction,
				coord:  pos,
			})
		})
	}
	return out
}
