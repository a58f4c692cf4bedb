package march

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aboyer/marchgo/volume"
)

func synthetic1D(t *testing.T) *Tables {
	t.Helper()
	tbl, err := NewTables(
		1,
		[]Axis{{Delta: []int{1}}},
		[][]int{{0}, {1}},
		[][]int{{0}},
		[]int{0},
		synthetic1DGeometry(),
		1,
		nil,
	)
	require.NoError(t, err)
	return tbl
}

func TestMarchSynthetic1D(t *testing.T) {
	tbl := synthetic1D(t)
	vol, err := volume.New([]int{4}, []float64{-1, 1, 1, -1})
	require.NoError(t, err)

	verts, geom, err := tbl.March(vol, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, verts.Len())
	assert.InDeltaSlice(t, []float32{0.5, 2.5}, []float32{verts.At(0)[0], verts.At(1)[0]}, 1e-6)
	assert.Equal(t, []uint32{0, 1}, geom.Indices)
}

func TestMarchWrongDimensionality(t *testing.T) {
	tbl := synthetic1D(t)
	vol, err := volume.From2D([][]float64{{-1, 1}, {1, -1}})
	require.NoError(t, err)

	_, _, err = tbl.March(vol, 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestMarchTooFewSamples(t *testing.T) {
	tbl := synthetic1D(t)
	vol, err := volume.New([]int{1}, []float64{0})
	require.NoError(t, err)

	_, _, err = tbl.March(vol, 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestMarchMissingVertex(t *testing.T) {
	malformed, err := NewTables(
		1,
		[]Axis{{Delta: []int{1}}},
		[][]int{{0}, {1}},
		[][]int{{0}},
		[]int{0},
		[][]int{{0}, {0}, {0}, {0}},
		1,
		nil,
	)
	require.NoError(t, err)

	vol, err := volume.New([]int{2}, []float64{-1, -1})
	require.NoError(t, err)

	_, _, err = malformed.March(vol, 0)
	assert.True(t, errors.Is(err, ErrMissingVertex))
}

func TestMarchHalfwayAndCosineAgreeAtMidpoint(t *testing.T) {
	tbl := synthetic1D(t)
	vol, err := volume.New([]int{2}, []float64{-1, 1})
	require.NoError(t, err)

	linear, _, err := tbl.March(vol, 0, WithInterpolation(Linear))
	require.NoError(t, err)
	halfway, _, err := tbl.March(vol, 0, WithInterpolation(Halfway))
	require.NoError(t, err)
	cosine, _, err := tbl.March(vol, 0, WithInterpolation(Cosine))
	require.NoError(t, err)

	// Symmetric crossing: all three modes land on the exact midpoint.
	assert.InDelta(t, 0.5, linear.At(0)[0], 1e-6)
	assert.InDelta(t, 0.5, halfway.At(0)[0], 1e-6)
	assert.InDelta(t, 0.5, cosine.At(0)[0], 1e-6)
}

func TestMarchStepSize(t *testing.T) {
	tbl := synthetic1D(t)
	vol, err := volume.New([]int{5}, []float64{-1, -1, -1, 1, 1})
	require.NoError(t, err)

	verts, _, err := tbl.March(vol, 0, WithStepSize(2))
	require.NoError(t, err)
	// Strided([-1,-1,-1,1,1], step=2) -> [-1,-1,1]; crossing between
	// index 1 and 2 of the strided volume.
	require.Equal(t, 1, verts.Len())
	assert.InDelta(t, 1.5, verts.At(0)[0], 1e-6)
}

func TestMarchDeterministic(t *testing.T) {
	tbl := synthetic1D(t)
	vol, err := volume.New([]int{6}, []float64{-1, 1, -1, 1, -1, 1})
	require.NoError(t, err)

	v1, g1, err := tbl.March(vol, 0)
	require.NoError(t, err)
	v2, g2, err := tbl.March(vol, 0)
	require.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Equal(t, g1, g2)
}
