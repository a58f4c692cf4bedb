package march

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func synthetic1DGeometry() [][]int {
	return [][]int{
		{},  // 00: no crossing
		{0}, // 01: corner0 in, corner1 out
		{0}, // 10: corner0 out, corner1 in
		{},  // 11: no crossing
	}
}

func TestNewTablesValid(t *testing.T) {
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
	assert.Equal(t, 1, tbl.NDim)
}

func TestNewTablesWrongCornerCount(t *testing.T) {
	_, err := NewTables(1, []Axis{{Delta: []int{1}}}, [][]int{{0}}, [][]int{{0}}, []int{0}, synthetic1DGeometry(), 1, nil)
	assert.True(t, errors.Is(err, ErrInvalidTable))
}

func TestNewTablesEdgeDirectionOutOfRange(t *testing.T) {
	_, err := NewTables(1, []Axis{{Delta: []int{1}}}, [][]int{{0}, {1}}, [][]int{{0}}, []int{5}, synthetic1DGeometry(), 1, nil)
	assert.True(t, errors.Is(err, ErrInvalidTable))
}

func TestNewTablesTooNarrow(t *testing.T) {
	_, err := NewTables(1, []Axis{{Delta: []int{1}}}, [][]int{{0}, {1}}, [][]int{{0}}, []int{0}, [][]int{{}, {0}}, 1, nil)
	assert.True(t, errors.Is(err, ErrTypeTooNarrow))
}

func TestNewTablesBadGeometryRowLength(t *testing.T) {
	_, err := NewTables(1, []Axis{{Delta: []int{1}}}, [][]int{{0}, {1}}, [][]int{{0}}, []int{0}, [][]int{{0}, {0}, {0}, {0, 0, 0}}, 2, nil)
	assert.True(t, errors.Is(err, ErrInvalidTable))
}

func TestNewTablesBadGeometryEdgeNumber(t *testing.T) {
	_, err := NewTables(1, []Axis{{Delta: []int{1}}}, [][]int{{0}, {1}}, [][]int{{0}}, []int{0}, [][]int{{}, {7}, {}, {}}, 1, nil)
	assert.True(t, errors.Is(err, ErrInvalidTable))
}
