package squares

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aboyer/marchgo/march"
	"github.com/aboyer/marchgo/volume"
)

func TestMarchSingleCorner(t *testing.T) {
	vol, err := volume.From2D([][]float64{{1, -1}, {-1, -1}})
	require.NoError(t, err)

	verts, geom, err := March(vol, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, verts.Len())
	assert.Equal(t, 1, geom.Len())
	assert.Equal(t, 2, geom.VerticesPerSimplex)
}

func TestMarchEmptyVolumeHasNoGeometry(t *testing.T) {
	vol, err := volume.From2D([][]float64{{-1, -1}, {-1, -1}})
	require.NoError(t, err)

	verts, geom, err := March(vol, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, verts.Len())
	assert.Equal(t, 0, geom.Len())
}

func segmentSet(t *testing.T, verts march.Vertices, geom march.Geometry) map[string]bool {
	t.Helper()
	set := make(map[string]bool)
	for i := 0; i < geom.Len(); i++ {
		idx := geom.At(i)
		a := verts.At(int(idx[0]))
		b := verts.At(int(idx[1]))
		labels := []string{
			fmt.Sprintf("%.1f,%.1f", a[0], a[1]),
			fmt.Sprintf("%.1f,%.1f", b[0], b[1]),
		}
		sort.Strings(labels)
		set[labels[0]+"|"+labels[1]] = true
	}
	return set
}

func TestMarchSaddleDefaultResolution(t *testing.T) {
	// Symmetric saddle: face test is false (1*1 < -1*-1 is false), default
	// pairing isolates the negative corners: (e0,e1),(e2,e3).
	vol, err := volume.From2D([][]float64{{1, -1}, {-1, 1}})
	require.NoError(t, err)

	verts, geom, err := March(vol, 0, march.WithInterpolation(march.Halfway))
	require.NoError(t, err)
	assert.Equal(t, 4, verts.Len())
	assert.Equal(t, 2, geom.Len())

	segs := segmentSet(t, verts, geom)
	assert.True(t, segs["0.5,0.0|1.0,0.5"], "bottom-right pairing expected: %v", segs)
	assert.False(t, segs["0.0,0.5|0.5,0.0"], "left-bottom pairing should not appear: %v", segs)
}

func TestMarchSaddleAlternateResolution(t *testing.T) {
	// Same sign pattern, magnitudes flip the face test: (1*1 < 3*3) is true,
	// resolved pairing isolates the positive corners: (e3,e0),(e1,e2).
	vol, err := volume.From2D([][]float64{{1, -3}, {-3, 1}})
	require.NoError(t, err)

	verts, geom, err := March(vol, 0, march.WithInterpolation(march.Halfway))
	require.NoError(t, err)
	assert.Equal(t, 4, verts.Len())
	assert.Equal(t, 2, geom.Len())

	segs := segmentSet(t, verts, geom)
	assert.True(t, segs["0.0,0.5|0.5,0.0"], "left-bottom pairing expected once resolved: %v", segs)
	assert.True(t, segs["0.5,1.0|1.0,0.5"], "top-right pairing expected once resolved: %v", segs)
}

func TestMarchDisableAmbiguityResolution(t *testing.T) {
	vol, err := volume.From2D([][]float64{{1, -3}, {-3, 1}})
	require.NoError(t, err)

	_, geomResolved, err := March(vol, 0, march.WithInterpolation(march.Halfway))
	require.NoError(t, err)
	_, geomUnresolved, err := March(vol, 0, march.WithInterpolation(march.Halfway), march.WithResolveAmbiguous(false))
	require.NoError(t, err)

	assert.Equal(t, 2, geomResolved.Len())
	assert.Equal(t, 2, geomUnresolved.Len())
}
