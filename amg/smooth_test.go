package amg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlgrid/amg"
)

// TestSmoothProlongator_Guards verifies the rejection matrix: nil operands,
// rectangular operators, mismatched shapes and bad weights.
func TestSmoothProlongator_Guards(t *testing.T) {
	a := mustPoisson1D(t, 4)
	tent, _, err := amg.FitCandidates([]int{0, 0, 1, 1}, 2, []float64{1, 1, 1, 1})
	require.NoError(t, err)

	_, err = amg.SmoothProlongator(nil, tent, 1, 1)
	assert.ErrorIs(t, err, amg.ErrNilMatrix, "nil operator")
	_, err = amg.SmoothProlongator(a, nil, 1, 1)
	assert.ErrorIs(t, err, amg.ErrNilMatrix, "nil tentative prolongator")

	rect := mustCSR(t, 2, 3, []int{0, 0, 0}, nil, nil)
	_, err = amg.SmoothProlongator(rect, tent, 1, 1)
	assert.ErrorIs(t, err, amg.ErrNotSquare, "rectangular operator")

	short, _, err := amg.FitCandidates([]int{0, 0}, 1, []float64{1, 1})
	require.NoError(t, err)
	_, err = amg.SmoothProlongator(a, short, 1, 1)
	assert.ErrorIs(t, err, amg.ErrDimensionMismatch, "row counts must agree")

	_, err = amg.SmoothProlongator(a, tent, 0, 1)
	assert.ErrorIs(t, err, amg.ErrBadDamping, "zero damping")
	_, err = amg.SmoothProlongator(a, tent, 1, math.NaN())
	assert.ErrorIs(t, err, amg.ErrBadSpectralRadius, "NaN radius")
	_, err = amg.SmoothProlongator(a, tent, 1, 0)
	assert.ErrorIs(t, err, amg.ErrBadSpectralRadius, "zero radius")
}

// TestSmoothProlongator_HandComputed pins the formula on a 2×2 system with
// ω = damping/ρ = 0.5: for A = [[2,−1],[−1,2]] and T the unit constant
// column, P = (I − ω·D⁻¹A)·T has both entries (1 − 0.5·0.5·1)/√2.
func TestSmoothProlongator_HandComputed(t *testing.T) {
	a := mustCSR(t, 2, 2,
		[]int{0, 2, 4},
		[]int{0, 1, 0, 1},
		[]float64{2, -1, -1, 2},
	)
	tent, _, err := amg.FitCandidates([]int{0, 0}, 1, []float64{1, 1})
	require.NoError(t, err)

	p, err := amg.SmoothProlongator(a, tent, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, p.Rows)
	assert.Equal(t, 1, p.Cols)
	// A·T column is (1/√2, 1/√2); ω·D⁻¹ scales it by 0.25; T − that.
	want := (1 - 0.25) / math.Sqrt2
	require.Equal(t, 2, p.NNZ())
	assert.InDelta(t, want, p.Values[0], 1e-15)
	assert.InDelta(t, want, p.Values[1], 1e-15)
}

// TestSmoothProlongator_MatchesDense cross-checks the sparse computation
// against the dense formula (I − ω·D⁻¹·A)·T on the 2-D model operator.
func TestSmoothProlongator_MatchesDense(t *testing.T) {
	a := mustPoisson2D(t, 5, 4) // 20 rows
	agg := make([]int, 20)
	b := make([]float64, 20)
	for i := range agg {
		agg[i] = i / 4
		b[i] = 1 + 0.1*float64(i)
	}
	tent, _, err := amg.FitCandidates(agg, 5, b)
	require.NoError(t, err)

	const damping, rho = 4.0 / 3.0, 1.8
	p, err := amg.SmoothProlongator(a, tent, damping, rho)
	require.NoError(t, err)

	// Dense oracle.
	omega := damping / rho
	ad := a.ToDense()
	step := mat.NewDense(20, 20, nil)
	for i := 0; i < 20; i++ {
		dinv := 1 / ad.At(i, i)
		for j := 0; j < 20; j++ {
			v := -omega * dinv * ad.At(i, j)
			if i == j {
				v++
			}
			step.Set(i, j, v)
		}
	}
	var want mat.Dense
	want.Mul(step, tent.ToDense())

	got := p.ToDense()
	for i := 0; i < 20; i++ {
		for j := 0; j < 5; j++ {
			assert.InDelta(t, want.At(i, j), got.At(i, j), 1e-13,
				"entry (%d,%d)", i, j)
		}
	}
}
