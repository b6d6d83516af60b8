// SPDX-License-Identifier: MIT
// Package amg: hierarchy introspection and reporting.

package amg

import (
	"fmt"
	"io"
)

// LevelStat describes one level of a built hierarchy.
type LevelStat struct {
	Unknowns int // rows of the level operator
	Nonzeros int // stored entries of the level operator
}

// Levels returns the number of levels in the hierarchy, finest included.
func (h *Hierarchy) Levels() int { return len(h.levels) }

// Stats returns per-level operator sizes, ordered fine to coarse.
func (h *Hierarchy) Stats() []LevelStat {
	out := make([]LevelStat, len(h.levels))
	for i, lv := range h.levels {
		out[i] = LevelStat{Unknowns: lv.a.Rows, Nonzeros: lv.a.NNZ()}
	}

	return out
}

// OperatorComplexity is the sum of stored nonzeros over all levels divided
// by the finest level's nonzeros. It bounds the cost of one V-cycle relative
// to a single fine-level matrix-vector product; values close to 1 mean
// cheap cycles. A single-level hierarchy reports exactly 1.
func (h *Hierarchy) OperatorComplexity() float64 {
	total := 0
	for _, lv := range h.levels {
		total += lv.a.NNZ()
	}

	return float64(total) / float64(h.levels[0].a.NNZ())
}

// GridComplexity is the sum of unknowns over all levels divided by the
// finest level's unknowns. A single-level hierarchy reports exactly 1.
func (h *Hierarchy) GridComplexity() float64 {
	total := 0
	for _, lv := range h.levels {
		total += lv.a.Rows
	}

	return float64(total) / float64(h.levels[0].a.Rows)
}

// WriteSummary writes a fixed-width report of the hierarchy to w: level
// count, complexities, and a per-level table with each level's share of the
// stored nonzeros.
func (h *Hierarchy) WriteSummary(w io.Writer) error {
	stats := h.Stats()
	total := 0
	for _, s := range stats {
		total += s.Nonzeros
	}

	if _, err := fmt.Fprintf(w, "number of levels:    %d\n", len(stats)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "operator complexity: %.4f\n", h.OperatorComplexity()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "grid complexity:     %.4f\n", h.GridComplexity()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "level      unknowns      nonzeros"); err != nil {
		return err
	}
	for i, s := range stats {
		share := 100 * float64(s.Nonzeros) / float64(total)
		if _, err := fmt.Fprintf(w, "%5d  %12d  %12d   %5.1f%%\n",
			i, s.Unknowns, s.Nonzeros, share); err != nil {
			return err
		}
	}

	return nil
}
