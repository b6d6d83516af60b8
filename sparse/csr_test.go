package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/sparse"
)

// TestNewCSR_Validation drives the ingestion gate through every rejection
// path and one accepted canonical matrix.
func TestNewCSR_Validation(t *testing.T) {
	cases := []struct {
		name   string
		rows   int
		cols   int
		rowPtr []int
		colIdx []int
		values []float64
		err    error
	}{
		{"ZeroRows", 0, 3, []int{0}, nil, nil, sparse.ErrBadShape},
		{"NegativeCols", 2, -1, []int{0, 0, 0}, nil, nil, sparse.ErrBadShape},
		{"ShortRowPtr", 2, 2, []int{0, 1}, []int{0}, []float64{1}, sparse.ErrBadStructure},
		{"RowPtrNotZero", 1, 1, []int{1, 1}, nil, nil, sparse.ErrBadStructure},
		{"LengthDisagree", 1, 2, []int{0, 2}, []int{0}, []float64{1, 2}, sparse.ErrBadStructure},
		{"Decreasing", 2, 2, []int{0, 2, 1}, []int{0, 1}, []float64{1, 2}, sparse.ErrBadStructure},
		{"UnsortedRow", 1, 3, []int{0, 2}, []int{2, 0}, []float64{1, 2}, sparse.ErrBadStructure},
		{"DuplicateCol", 1, 3, []int{0, 2}, []int{1, 1}, []float64{1, 2}, sparse.ErrBadStructure},
		{"ColOutOfRange", 1, 2, []int{0, 1}, []int{2}, []float64{1}, sparse.ErrOutOfRange},
		{"NaNValue", 1, 1, []int{0, 1}, []int{0}, []float64{math.NaN()}, sparse.ErrNaNInf},
		{"InfValue", 1, 1, []int{0, 1}, []int{0}, []float64{math.Inf(1)}, sparse.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sparse.NewCSR(tc.rows, tc.cols, tc.rowPtr, tc.colIdx, tc.values)
			assert.ErrorIs(t, err, tc.err, "NewCSR must reject with the matching sentinel")
		})
	}

	m, err := sparse.NewCSR(2, 3,
		[]int{0, 2, 3},
		[]int{0, 2, 1},
		[]float64{1, 2, 3},
	)
	require.NoError(t, err, "canonical input must be accepted")
	assert.Equal(t, 3, m.NNZ(), "structural count")
}

// TestCSR_Clone verifies deep-copy independence.
func TestCSR_Clone(t *testing.T) {
	m, err := sparse.NewCSR(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{1, 2})
	require.NoError(t, err)

	c := m.Clone()
	c.Values[0] = 42
	c.ColIdx[1] = 0

	assert.Equal(t, 1.0, m.Values[0], "clone must not share value storage")
	assert.Equal(t, 1, m.ColIdx[1], "clone must not share index storage")
}

// TestCSR_Diagonal covers stored, missing and rectangular diagonals.
func TestCSR_Diagonal(t *testing.T) {
	// [ 4 0 1 ]
	// [ 0 0 2 ]  -- (1,1) not stored
	m, err := sparse.NewCSR(2, 3,
		[]int{0, 2, 3},
		[]int{0, 2, 2},
		[]float64{4, 1, 2},
	)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0}, m.Diagonal(), "missing diagonal entries read as zero")
}

// TestCSR_ScaleRows checks in-place row scaling and the mismatch guard.
func TestCSR_ScaleRows(t *testing.T) {
	m, err := sparse.NewCSR(2, 2, []int{0, 2, 3}, []int{0, 1, 1}, []float64{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, m.ScaleRows([]float64{2, -1}))
	assert.Equal(t, []float64{2, 4, -3}, m.Values, "each row scaled by its factor")

	assert.ErrorIs(t, m.ScaleRows([]float64{1}), sparse.ErrDimensionMismatch)
}

// TestCSR_ToDense verifies entry placement, including absent entries as zero.
func TestCSR_ToDense(t *testing.T) {
	m, err := sparse.NewCSR(2, 2, []int{0, 1, 2}, []int{1, 0}, []float64{5, 7})
	require.NoError(t, err)

	d := m.ToDense()
	assert.Equal(t, 0.0, d.At(0, 0))
	assert.Equal(t, 5.0, d.At(0, 1))
	assert.Equal(t, 7.0, d.At(1, 0))
	assert.Equal(t, 0.0, d.At(1, 1))
}
