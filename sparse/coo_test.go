package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/sparse"
)

// TestNewCOO_BadShape rejects non-positive dimensions.
func TestNewCOO_BadShape(t *testing.T) {
	_, err := sparse.NewCOO(0, 4)
	assert.ErrorIs(t, err, sparse.ErrBadShape)

	_, err = sparse.NewCOO(4, -2)
	assert.ErrorIs(t, err, sparse.ErrBadShape)
}

// TestCOO_AppendGuards verifies bounds and finiteness checks at ingestion.
func TestCOO_AppendGuards(t *testing.T) {
	c, err := sparse.NewCOO(2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, c.Append(2, 0, 1), sparse.ErrOutOfRange, "row past end")
	assert.ErrorIs(t, c.Append(0, -1, 1), sparse.ErrOutOfRange, "negative column")
	assert.ErrorIs(t, c.Append(0, 0, math.NaN()), sparse.ErrNaNInf)
	assert.ErrorIs(t, c.Append(0, 0, math.Inf(-1)), sparse.ErrNaNInf)
	assert.Equal(t, 0, c.NNZ(), "rejected entries must not be recorded")
}

// TestCOO_ToCSR_SortsAndMerges appends out of order with duplicates and
// expects canonical CSR with duplicates summed.
func TestCOO_ToCSR_SortsAndMerges(t *testing.T) {
	c, err := sparse.NewCOO(3, 3)
	require.NoError(t, err)

	// Row 1 appended before row 0, columns out of order, (1,1) twice.
	require.NoError(t, c.Append(1, 2, 3))
	require.NoError(t, c.Append(1, 1, 4))
	require.NoError(t, c.Append(0, 1, 7))
	require.NoError(t, c.Append(1, 1, -1))
	require.NoError(t, c.Append(0, 0, 5))

	m := c.ToCSR()
	assert.Equal(t, 3, m.Rows)
	assert.Equal(t, 3, m.Cols)
	assert.Equal(t, []int{0, 2, 4, 4}, m.RowPtr, "row 2 stays empty")
	assert.Equal(t, []int{0, 1, 1, 2}, m.ColIdx, "ascending within rows")
	assert.Equal(t, []float64{5, 7, 3, 3}, m.Values, "duplicates summed: 4 + (-1) = 3")
}

// TestCOO_ToCSR_BufferReusable converts, appends more, converts again.
func TestCOO_ToCSR_BufferReusable(t *testing.T) {
	c, err := sparse.NewCOO(1, 2)
	require.NoError(t, err)
	require.NoError(t, c.Append(0, 0, 1))

	first := c.ToCSR()
	require.NoError(t, c.Append(0, 1, 2))
	second := c.ToCSR()

	assert.Equal(t, 1, first.NNZ(), "first snapshot unaffected by later appends")
	assert.Equal(t, 2, second.NNZ())
	assert.Equal(t, []float64{1, 2}, second.Values)
}
