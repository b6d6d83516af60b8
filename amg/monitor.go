// SPDX-License-Identifier: MIT
// Package amg: convergence monitors for the outer iteration.

package amg

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
)

// Outer iteration defaults.
const (
	// DefaultIterationLimit bounds the outer fixed-point iteration.
	DefaultIterationLimit = 500

	// DefaultRelTol is the relative residual reduction target: converged
	// means ‖b − A·x‖₂ ≤ AbsTol + RelTol·‖b‖₂.
	DefaultRelTol = 1e-5

	// DefaultAbsTol is the absolute residual floor (disabled by default).
	DefaultAbsTol = 0.0
)

const (
	panicCriteriaInvalid = "amg: NewMonitor: criteria must be finite, non-negative, limit > 0"
	panicWriterNil       = "amg: NewVerboseMonitor: writer must be non-nil"
)

// Monitor decides when the outer iteration stops. Finished inspects the
// current residual vector and reports whether iteration should end — because
// of convergence, exhaustion, or any custom policy; Next advances the
// iteration count. The solve loop calls Finished first, so a monitor sees
// the initial residual at iteration zero.
type Monitor interface {
	Finished(residual []float64) bool
	Next()
}

// StoppingCriteria parametrizes a ResidualMonitor. The zero value stops
// immediately; start from DefaultCriteria and adjust.
type StoppingCriteria struct {
	// IterationLimit caps the outer iteration count.
	IterationLimit int
	// RelTol scales ‖b‖₂ into the convergence target.
	RelTol float64
	// AbsTol is an absolute addition to the target, for driving residuals
	// under a fixed floor regardless of the right-hand side.
	AbsTol float64
}

// DefaultCriteria returns the documented defaults.
func DefaultCriteria() StoppingCriteria {
	return StoppingCriteria{
		IterationLimit: DefaultIterationLimit,
		RelTol:         DefaultRelTol,
		AbsTol:         DefaultAbsTol,
	}
}

// ResidualMonitor is the standard stopping policy: finished when
// ‖r‖₂ ≤ AbsTol + RelTol·‖b‖₂ or the iteration limit is reached. The target
// is fixed against ‖b‖₂ at construction time, so one monitor tracks one
// right-hand side.
type ResidualMonitor struct {
	crit      StoppingCriteria
	bNorm     float64
	tol       float64
	iter      int
	rNorm     float64
	converged bool
}

// NewMonitor builds a ResidualMonitor for the right-hand side b.
// Panics with a stable message on nonsensical criteria (negative tolerances,
// NaN, limit <= 0); a zero right-hand side is legal and makes the target
// AbsTol exactly.
func NewMonitor(b []float64, crit StoppingCriteria) *ResidualMonitor {
	if crit.IterationLimit <= 0 ||
		!(crit.RelTol >= 0) || !(crit.AbsTol >= 0) { // NaN fails both
		panic(panicCriteriaInvalid)
	}
	bNorm := floats.Norm(b, 2)

	return &ResidualMonitor{
		crit:  crit,
		bNorm: bNorm,
		tol:   crit.AbsTol + crit.RelTol*bNorm,
	}
}

// Finished records ‖residual‖₂ and reports whether iteration should stop.
func (m *ResidualMonitor) Finished(residual []float64) bool {
	m.rNorm = floats.Norm(residual, 2)
	m.converged = m.rNorm <= m.tol

	return m.converged || m.iter >= m.crit.IterationLimit
}

// Next advances the iteration count.
func (m *ResidualMonitor) Next() { m.iter++ }

// Iterations returns the number of outer iterations performed so far.
func (m *ResidualMonitor) Iterations() int { return m.iter }

// Converged reports whether the last inspected residual met the target.
func (m *ResidualMonitor) Converged() bool { return m.converged }

// ResidualNorm returns the 2-norm of the last inspected residual.
func (m *ResidualMonitor) ResidualNorm() float64 { return m.rNorm }

// Tolerance returns the fixed convergence target AbsTol + RelTol·‖b‖₂.
func (m *ResidualMonitor) Tolerance() float64 { return m.tol }

// VerboseMonitor is a ResidualMonitor that narrates the iteration to a
// writer: a header at construction, one line per residual inspection, and a
// closing verdict. Intended for command-line tools and experiments.
type VerboseMonitor struct {
	*ResidualMonitor
	w io.Writer
}

// NewVerboseMonitor builds a VerboseMonitor writing to w.
// Panics with a stable message when w is nil; criteria rules match NewMonitor.
func NewVerboseMonitor(b []float64, crit StoppingCriteria, w io.Writer) *VerboseMonitor {
	if w == nil {
		panic(panicWriterNil)
	}
	m := &VerboseMonitor{ResidualMonitor: NewMonitor(b, crit), w: w}
	_, _ = fmt.Fprintf(w, "solving until residual norm %.6e or %d iterations\n",
		m.Tolerance(), crit.IterationLimit)
	_, _ = fmt.Fprintf(w, "iteration    residual norm\n")

	return m
}

// Finished logs the inspected residual, then defers to the embedded policy.
func (m *VerboseMonitor) Finished(residual []float64) bool {
	done := m.ResidualMonitor.Finished(residual)
	_, _ = fmt.Fprintf(m.w, "%9d    %13.6e\n", m.Iterations(), m.ResidualNorm())
	if done {
		if m.Converged() {
			_, _ = fmt.Fprintf(m.w, "converged after %d iterations\n", m.Iterations())
		} else {
			_, _ = fmt.Fprintf(m.w, "failed to converge within %d iterations\n", m.Iterations())
		}
	}

	return done
}
