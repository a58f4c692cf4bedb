package volume

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		shape   []int
		data    []float64
		wantErr error
	}{
		{name: "ok 2x3", shape: []int{2, 3}, data: make([]float64, 6)},
		{name: "empty shape", shape: nil, data: nil, wantErr: ErrEmptyVolume},
		{name: "zero axis", shape: []int{0, 3}, data: nil, wantErr: ErrEmptyVolume},
		{name: "mismatched length", shape: []int{2, 3}, data: make([]float64, 5), wantErr: ErrShapeMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := New(tc.shape, tc.data)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.shape, v.Shape())
		})
	}
}

func TestFrom2D(t *testing.T) {
	v, err := From2D([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, v.Shape())
	got, err := v.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)

	_, err = From2D([][]float64{{1, 2}, {3}})
	assert.True(t, errors.Is(err, ErrRaggedVolume))

	_, err = From2D(nil)
	assert.True(t, errors.Is(err, ErrEmptyVolume))
}

func TestFrom3D(t *testing.T) {
	v, err := From3D([][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, v.Shape())
	got, err := v.At(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 8.0, got)
}

func TestAtSetBounds(t *testing.T) {
	v, err := New([]int{2, 2}, make([]float64, 4))
	require.NoError(t, err)

	require.NoError(t, v.Set(9, 1, 0))
	got, err := v.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)

	_, err = v.At(2, 0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = v.At(0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestThreshold(t *testing.T) {
	v, err := From2D([][]float64{{-1, 1}, {0, 2}})
	require.NoError(t, err)
	bf := v.Threshold(0)
	assert.Equal(t, []bool{false, true, true, true}, []bool{bf.At(0), bf.At(1), bf.At(2), bf.At(3)})
}

func TestStrided(t *testing.T) {
	v, err := From2D([][]float64{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
		{12, 13, 14, 15},
	})
	require.NoError(t, err)

	s, err := v.Strided(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, s.Shape())
	got, err := s.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)

	_, err = v.Strided(0)
	assert.True(t, errors.Is(err, ErrInvalidStep))

	_, err = v.Strided(10)
	assert.True(t, errors.Is(err, ErrTooFewSamples))
}
