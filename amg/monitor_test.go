package amg_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/amg"
)

// TestNewMonitor_PanicsOnNonsense verifies that impossible criteria are
// treated as programmer error.
func TestNewMonitor_PanicsOnNonsense(t *testing.T) {
	b := []float64{1, 2}

	assert.Panics(t, func() {
		amg.NewMonitor(b, amg.StoppingCriteria{IterationLimit: 0, RelTol: 1e-5})
	}, "zero iteration limit")
	assert.Panics(t, func() {
		amg.NewMonitor(b, amg.StoppingCriteria{IterationLimit: 10, RelTol: -1})
	}, "negative relative tolerance")
	assert.Panics(t, func() {
		amg.NewMonitor(b, amg.StoppingCriteria{IterationLimit: 10, RelTol: math.NaN()})
	}, "NaN relative tolerance")
	assert.Panics(t, func() {
		amg.NewMonitor(b, amg.StoppingCriteria{IterationLimit: 10, AbsTol: -0.5})
	}, "negative absolute tolerance")
	assert.Panics(t, func() {
		amg.NewVerboseMonitor(b, amg.DefaultCriteria(), nil)
	}, "nil writer")
}

// TestResidualMonitor_ConvergenceTarget checks the fixed target
// AbsTol + RelTol·‖b‖₂ on a 3-4-5 right-hand side: ‖b‖ = 5, RelTol = 0.2,
// so the monitor converges exactly at residual norm 1.
func TestResidualMonitor_ConvergenceTarget(t *testing.T) {
	crit := amg.StoppingCriteria{IterationLimit: 100, RelTol: 0.2}
	m := amg.NewMonitor([]float64{3, 4}, crit)

	assert.Equal(t, 1.0, m.Tolerance(), "target is RelTol·‖b‖")

	assert.False(t, m.Finished([]float64{3, 4}), "initial residual is above target")
	assert.False(t, m.Converged())
	assert.Equal(t, 5.0, m.ResidualNorm())
	m.Next()

	assert.True(t, m.Finished([]float64{0.6, 0.8}), "‖r‖ = 1 meets the target")
	assert.True(t, m.Converged())
	assert.Equal(t, 1, m.Iterations())
}

// TestResidualMonitor_AbsoluteFloor verifies that AbsTol keeps a usable
// target when the right-hand side is zero: RelTol·0 contributes nothing.
func TestResidualMonitor_AbsoluteFloor(t *testing.T) {
	crit := amg.StoppingCriteria{IterationLimit: 100, RelTol: 1e-5, AbsTol: 1e-8}
	m := amg.NewMonitor([]float64{0, 0, 0}, crit)

	assert.Equal(t, 1e-8, m.Tolerance())
	assert.True(t, m.Finished([]float64{0, 0, 0}), "zero residual meets any target")
	assert.True(t, m.Converged())
}

// TestResidualMonitor_IterationLimit drives an unconvergeable residual into
// the limit: Finished turns true while Converged stays false.
func TestResidualMonitor_IterationLimit(t *testing.T) {
	crit := amg.StoppingCriteria{IterationLimit: 3, RelTol: 0, AbsTol: 0}
	m := amg.NewMonitor([]float64{1}, crit)

	r := []float64{0.5}
	for !m.Finished(r) {
		m.Next()
	}

	assert.Equal(t, 3, m.Iterations(), "limit reached after exactly 3 advances")
	assert.False(t, m.Converged(), "hitting the limit is not convergence")
	assert.Equal(t, 0.5, m.ResidualNorm())
}

// TestDefaultCriteria pins the documented defaults.
func TestDefaultCriteria(t *testing.T) {
	crit := amg.DefaultCriteria()
	assert.Equal(t, amg.DefaultIterationLimit, crit.IterationLimit)
	assert.Equal(t, amg.DefaultRelTol, crit.RelTol)
	assert.Equal(t, amg.DefaultAbsTol, crit.AbsTol)
}

// TestVerboseMonitor_Narration checks the emitted report: header, one line
// per inspection, and the closing verdict on both outcomes.
func TestVerboseMonitor_Narration(t *testing.T) {
	var buf bytes.Buffer
	crit := amg.StoppingCriteria{IterationLimit: 50, RelTol: 0.2}
	m := amg.NewVerboseMonitor([]float64{3, 4}, crit, &buf)

	require.False(t, m.Finished([]float64{3, 4}))
	m.Next()
	require.True(t, m.Finished([]float64{0.6, 0.8}))

	out := buf.String()
	assert.Contains(t, out, "solving until residual norm 1.000000e+00 or 50 iterations\n")
	assert.Contains(t, out, "iteration    residual norm\n")
	assert.Contains(t, out, "        0     5.000000e+00\n")
	assert.Contains(t, out, "        1     1.000000e+00\n")
	assert.Contains(t, out, "converged after 1 iterations\n")

	buf.Reset()
	m = amg.NewVerboseMonitor([]float64{1}, amg.StoppingCriteria{IterationLimit: 1, RelTol: 0}, &buf)
	require.False(t, m.Finished([]float64{1}))
	m.Next()
	require.True(t, m.Finished([]float64{1}))
	assert.Contains(t, buf.String(), "failed to converge within 1 iterations\n")
}
