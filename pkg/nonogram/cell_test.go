package nonogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellString(t *testing.T) {
	assert.Equal(t, ".", Empty.String())
	assert.Equal(t, "X", Filled.String())
	assert.Equal(t, "?", Unknown.String())
}

func TestCellFromInt(t *testing.T) {
	c, err := CellFromInt(0)
	require.NoError(t, err)
	assert.Equal(t, Empty, c)

	c, err = CellFromInt(1)
	require.NoError(t, err)
	assert.Equal(t, Filled, c)

	c, err = CellFromInt(-1)
	require.NoError(t, err)
	assert.Equal(t, Unknown, c)

	_, err = CellFromInt(7)
	assert.Error(t, err)
}

func TestCellIntRoundTrip(t *testing.T) {
	for _, c := range []Cell{Empty, Filled, Unknown} {
		got, err := CellFromInt(c.Int())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestConstraintListSumAndMinLength(t *testing.T) {
	cl := ConstraintList{2, 3, 1}
	assert.Equal(t, 6, cl.Sum())
	assert.Equal(t, 8, cl.MinLength()) // 6 + (3-1) separators

	empty := ConstraintList{}
	assert.Equal(t, 0, empty.Sum())
	assert.Equal(t, 0, empty.MinLength())
}

func TestConstraintListValidate(t *testing.T) {
	assert.NoError(t, ConstraintList{1, 2, 3}.Validate())
	assert.Error(t, ConstraintList{1, 0, 3}.Validate())
	assert.Error(t, ConstraintList{-2}.Validate())
}
