// Package volume provides the n-dimensional dense scalar field that feeds the
// marching pipeline in package march, plus its boolean derivative (the
// "volume test") and the strided resampling used to honor a caller-supplied
// step size.
//
// Volume is deliberately the same shape of type as a row-major dense matrix:
// a flat backing slice plus a shape/strides pair, following the same pattern
// as a 2D dense matrix generalized to N axes. There is no sparse or
// device-resident representation; file I/O, visualization, and backend
// selection are explicitly out of scope (see SPEC_FULL.md §1, §11).
package volume

import "fmt"

// Volume is a flat, row-major, N-dimensional array of float64 samples.
// shape[k] is the sample count along axis k; strides[k] is the flat-index
// step for a unit move along axis k (strides[len-1] == 1).
type Volume struct {
	shape   []int
	strides []int
	data    []float64
}

// New builds a Volume from an explicit shape and a flat, row-major data
// slice. Returns ErrEmptyVolume if shape is empty or any axis is <= 0, and
// ErrShapeMismatch if len(data) does not equal the product of shape.
// Complexity: O(1) — data is taken by reference, not copied.
func New(shape []int, data []float64) (*Volume, error) {
	if len(shape) == 0 {
		return nil, ErrEmptyVolume
	}
	size := 1
	for _, s := range shape {
		if s <= 0 {
			return nil, ErrEmptyVolume
		}
		size *= s
	}
	if len(data) != size {
		return nil, fmt.Errorf("volume.New: shape %v wants %d samples, got %d: %w", shape, size, len(data), ErrShapeMismatch)
	}
	shapeCopy := append([]int(nil), shape...)
	return &Volume{
		shape:   shapeCopy,
		strides: stridesFor(shapeCopy),
		data:    data,
	}, nil
}

// From2D builds a Volume from a rectangular (non-ragged) 2D slice, rows
// first then columns, i.e. shape = [len(rows), len(rows[0])].
func From2D(rows [][]float64) (*Volume, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyVolume
	}
	ny, nx := len(rows), len(rows[0])
	data := make([]float64, 0, ny*nx)
	for _, row := range rows {
		if len(row) != nx {
			return nil, ErrRaggedVolume
		}
		data = append(data, row...)
	}
	return New([]int{ny, nx}, data)
}

// From3D builds a Volume from a rectangular (non-ragged) 3D slice, ordered
// [z][y][x], i.e. shape = [len(planes), len(planes[0]), len(planes[0][0])].
func From3D(planes [][][]float64) (*Volume, error) {
	if len(planes) == 0 || len(planes[0]) == 0 || len(planes[0][0]) == 0 {
		return nil, ErrEmptyVolume
	}
	nz, ny, nx := len(planes), len(planes[0]), len(planes[0][0])
	data := make([]float64, 0, nz*ny*nx)
	for _, plane := range planes {
		if len(plane) != ny {
			return nil, ErrRaggedVolume
		}
		for _, row := range plane {
			if len(row) != nx {
				return nil, ErrRaggedVolume
			}
			data = append(data, row...)
		}
	}
	return New([]int{nz, ny, nx}, data)
}

func stridesFor(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= shape[k]
	}
	return strides
}

// NDim returns the number of axes.
func (v *Volume) NDim() int { return len(v.shape) }

// Shape returns a copy of the per-axis sample counts.
func (v *Volume) Shape() []int { return append([]int(nil), v.shape...) }

// Strides returns a copy of the per-axis flat-index strides.
func (v *Volume) Strides() []int { return append([]int(nil), v.strides...) }

// Raw exposes the underlying flat backing slice without copying. Callers
// outside this module should prefer At/Set.
func (v *Volume) Raw() []float64 { return v.data }

// flatIndex computes the offset for coord without bounds checking.
func (v *Volume) flatIndex(coord []int) int {
	off := 0
	for k, c := range coord {
		off += c * v.strides[k]
	}
	return off
}

// index validates coord against shape and returns its flat offset.
func (v *Volume) index(coord []int) (int, error) {
	if len(coord) != len(v.shape) {
		return 0, fmt.Errorf("volume: coordinate has %d components, volume has %d axes: %w", len(coord), len(v.shape), ErrIndexOutOfRange)
	}
	for k, c := range coord {
		if c < 0 || c >= v.shape[k] {
			return 0, fmt.Errorf("volume: axis %d index %d out of [0,%d): %w", k, c, v.shape[k], ErrIndexOutOfRange)
		}
	}
	return v.flatIndex(coord), nil
}

// At returns the sample at coord, bounds-checked against Shape.
func (v *Volume) At(coord ...int) (float64, error) {
	off, err := v.index(coord)
	if err != nil {
		return 0, err
	}
	return v.data[off], nil
}

// Set writes value at coord, bounds-checked against Shape.
func (v *Volume) Set(value float64, coord ...int) error {
	off, err := v.index(coord)
	if err != nil {
		return err
	}
	v.data[off] = value
	return nil
}

// Threshold computes the boolean "volume test" array: true where the sample
// is on or above level. This is the input the intersect finder XORs across
// neighboring slices to find sign-flip crossings.
func (v *Volume) Threshold(level float64) *BoolField {
	out := make([]bool, len(v.data))
	for i, sample := range v.data {
		out[i] = sample >= level
	}
	return &BoolField{shape: v.Shape(), strides: v.Strides(), data: out}
}

// Strided returns a new Volume sampling every step-th element along every
// axis, starting at index 0 — the moral equivalent of NumPy's
// volume[::step, ::step, ...]. Used to honor march.Option's step-size
// knob. Returns ErrInvalidStep if step < 1, ErrTooFewSamples if the
// resulting shape would degenerate below 2 samples on some axis.
func (v *Volume) Strided(step int) (*Volume, error) {
	if step < 1 {
		return nil, ErrInvalidStep
	}
	if step == 1 {
		return v, nil
	}
	newShape := make([]int, len(v.shape))
	for k, s := range v.shape {
		newShape[k] = (s + step - 1) / step
		if newShape[k] < 2 {
			return nil, fmt.Errorf("volume.Strided: axis %d shrinks to %d samples at step %d: %w", k, newShape[k], step, ErrTooFewSamples)
		}
	}
	size := 1
	for _, s := range newShape {
		size *= s
	}
	data := make([]float64, size)
	coord := make([]int, len(v.shape))
	dst := 0
	var walk func(axis int)
	walk = func(axis int) {
		if axis == len(v.shape) {
			src := make([]int, len(coord))
			for k, c := range coord {
				src[k] = c * step
			}
			data[dst] = v.data[v.flatIndex(src)]
			dst++
			return
		}
		for c := 0; c < newShape[axis]; c++ {
			coord[axis] = c
			walk(axis + 1)
		}
	}
	walk(0)
	return New(newShape, data)
}

// BoolField is the boolean companion to Volume produced by Threshold: one
// bit (stored as bool) per sample, same shape and strides.
type BoolField struct {
	shape   []int
	strides []int
	data    []bool
}

// Shape returns a copy of the per-axis sample counts.
func (b *BoolField) Shape() []int { return append([]int(nil), b.shape...) }

// At returns the flag at the given flat offset, unchecked. march computes
// offsets itself via precomputed strides, so this is deliberately the
// narrow, fast accessor rather than a variadic-coordinate one.
func (b *BoolField) At(off int) bool { return b.data[off] }

// Strides returns a copy of the per-axis flat-index strides.
func (b *BoolField) Strides() []int { return append([]int(nil), b.strides...) }
