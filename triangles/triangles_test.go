package triangles

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aboyer/marchgo/march"
	"github.com/aboyer/marchgo/volume"
)

func segmentSet(t *testing.T, verts march.Vertices, geom march.Geometry) map[string]bool {
	t.Helper()
	set := make(map[string]bool)
	for i := 0; i < geom.Len(); i++ {
		idx := geom.At(i)
		a, b := verts.At(int(idx[0])), verts.At(int(idx[1]))
		labels := []string{
			fmt.Sprintf("%.1f,%.1f", a[0], a[1]),
			fmt.Sprintf("%.1f,%.1f", b[0], b[1]),
		}
		sort.Strings(labels)
		set[labels[0]+"|"+labels[1]] = true
	}
	return set
}

func TestMarchSingleCornerProducesDiagonalVertex(t *testing.T) {
	vol, err := volume.From2D([][]float64{{1, -1}, {-1, -1}})
	require.NoError(t, err)

	verts, geom, err := March(vol, 0, march.WithInterpolation(march.Halfway))
	require.NoError(t, err)

	assert.Equal(t, 3, verts.Len())
	assert.Equal(t, 2, geom.Len())
	segs := segmentSet(t, verts, geom)
	assert.True(t, segs["0.0,0.5|0.5,0.5"])
	assert.True(t, segs["0.5,0.0|0.5,0.5"])
}

func TestMarchSaddleNeedsNoDiagonalVertex(t *testing.T) {
	vol, err := volume.From2D([][]float64{{1, -1}, {-1, 1}})
	require.NoError(t, err)

	verts, geom, err := March(vol, 0, march.WithInterpolation(march.Halfway))
	require.NoError(t, err)
	assert.Equal(t, 4, verts.Len())
	assert.Equal(t, 2, geom.Len())

	segs := segmentSet(t, verts, geom)
	assert.True(t, segs["0.5,0.0|1.0,0.5"])
	assert.True(t, segs["0.0,0.5|0.5,1.0"])
}

func TestMarchReversedDiffersFromMarch(t *testing.T) {
	vol, err := volume.From2D([][]float64{{1, -1}, {-1, 1}})
	require.NoError(t, err)

	_, geomFwd, err := March(vol, 0, march.WithInterpolation(march.Halfway))
	require.NoError(t, err)
	vertsRev, geomRev, err := MarchReversed(vol, 0, march.WithInterpolation(march.Halfway))
	require.NoError(t, err)

	assert.Equal(t, 2, geomFwd.Len())
	assert.Equal(t, 2, geomRev.Len())

	segs := segmentSet(t, vertsRev, geomRev)
	assert.True(t, segs["0.0,0.5|0.5,0.0"])
	assert.True(t, segs["0.5,1.0|1.0,0.5"])
}

func TestMarchEmptyVolume(t *testing.T) {
	vol, err := volume.From2D([][]float64{{-1, -1}, {-1, -1}})
	require.NoError(t, err)

	verts, geom, err := March(vol, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, verts.Len())
	assert.Equal(t, 0, geom.Len())
}
