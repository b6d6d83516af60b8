// SPDX-License-Identifier: MIT
// Package sparse: row-range work partitioning for the parallel kernels.

package sparse

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minParallelWork is the stored-entry count below which kernels stay serial;
// goroutine fan-out costs more than it buys on small operands.
const minParallelWork = 1 << 14

// parallelRows invokes fn over disjoint, contiguous row ranges covering
// [0, rows). Ranges never overlap, so fn may write freely to per-row outputs.
// The serial fast path (single range) is taken when the estimated work is
// below minParallelWork or only one CPU is available. Partitioning depends
// only on rows and GOMAXPROCS; per-row results are identical either way.
func parallelRows(rows, work int, fn func(lo, hi int)) {
	procs := runtime.GOMAXPROCS(0)
	if work < minParallelWork || procs <= 1 || rows <= 1 {
		fn(0, rows)

		return
	}
	if procs > rows {
		procs = rows
	}
	chunk := (rows + procs - 1) / procs

	var g errgroup.Group
	g.SetLimit(procs)
	for lo := 0; lo < rows; lo += chunk {
		hi := min(lo+chunk, rows)
		g.Go(func() error {
			fn(lo, hi)

			return nil
		})
	}
	_ = g.Wait() // kernels are pure numeric code; no errors to surface
}
