package cubes

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aboyer/marchgo/march"
	"github.com/aboyer/marchgo/volume"
)

func cornerVolume(inside ...[3]int) (*volume.Volume, error) {
	data := make([]float64, 8)
	for i := range data {
		data[i] = -1
	}
	set := make(map[[3]int]bool)
	for _, c := range inside {
		set[c] = true
	}
	shape := []int{2, 2, 2}
	idx := 0
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				if set[[3]int{x, y, z}] {
					data[idx] = 1
				}
				idx++
			}
		}
	}
	return volume.New(shape, data)
}

func vertexLabels(t *testing.T, verts march.Vertices) []string {
	t.Helper()
	labels := make([]string, verts.Len())
	for i := 0; i < verts.Len(); i++ {
		p := verts.At(i)
		labels[i] = fmt.Sprintf("%.1f,%.1f,%.1f", p[0], p[1], p[2])
	}
	sort.Strings(labels)
	return labels
}

func TestMarchSingleCorner(t *testing.T) {
	vol, err := cornerVolume([3]int{0, 0, 0})
	require.NoError(t, err)

	verts, geom, err := March(vol, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, verts.Len())
	assert.Equal(t, 1, geom.Len())
	assert.Equal(t, 3, geom.VerticesPerSimplex)

	labels := vertexLabels(t, verts)
	assert.Equal(t, []string{"0.0,0.0,0.5", "0.0,0.5,0.0", "0.5,0.0,0.0"}, labels)
}

func TestMarchEmptyVolumeHasNoGeometry(t *testing.T) {
	vol, err := cornerVolume()
	require.NoError(t, err)

	verts, geom, err := March(vol, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, verts.Len())
	assert.Equal(t, 0, geom.Len())
}

func TestMarchFullVolumeHasNoGeometry(t *testing.T) {
	vol, err := cornerVolume(
		[3]int{0, 0, 0}, [3]int{1, 0, 0}, [3]int{1, 1, 0}, [3]int{0, 1, 0},
		[3]int{0, 0, 1}, [3]int{1, 0, 1}, [3]int{1, 1, 1}, [3]int{0, 1, 1},
	)
	require.NoError(t, err)

	verts, geom, err := March(vol, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, verts.Len())
	assert.Equal(t, 0, geom.Len())
}

func TestMarchWrongDimensionality(t *testing.T) {
	vol, err := volume.From2D([][]float64{{1, -1}, {-1, -1}})
	require.NoError(t, err)

	_, _, err = March(vol, 0)
	assert.ErrorIs(t, err, march.ErrInvalidInput)
}

func TestMarchOppositeCornersProducesTwoTriangles(t *testing.T) {
	vol, err := cornerVolume([3]int{0, 0, 0}, [3]int{1, 1, 1})
	require.NoError(t, err)

	verts, geom, err := March(vol, 0)
	require.NoError(t, err)

	assert.Equal(t, 6, verts.Len())
	assert.Equal(t, 2, geom.Len())
}
