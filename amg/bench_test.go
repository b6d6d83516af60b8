// Package amg_test provides benchmarks for hierarchy setup and cycling on
// the 2-D model problem.
package amg_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlgrid/amg"
	"github.com/katalvlaran/lvlgrid/gallery"
)

// benchMeshes are the square mesh widths to benchmark; unknowns grow as n².
var benchMeshes = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkH     *amg.Hierarchy
	sinkX     []float64
	sinkIters int
)

func BenchmarkNewHierarchy(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchMeshes {
		b.Run(fmt.Sprintf("n=%d", n*n), func(b *testing.B) {
			a, err := gallery.Poisson2D(n, n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				h, err := amg.NewHierarchy(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkH = h
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchMeshes {
		b.Run(fmt.Sprintf("n=%d", n*n), func(b *testing.B) {
			a, err := gallery.Poisson2D(n, n)
			if err != nil {
				b.Fatal(err)
			}
			h, err := amg.NewHierarchy(a)
			if err != nil {
				b.Fatal(err)
			}
			rhs := make([]float64, a.Rows)
			x := make([]float64, a.Rows)
			for i := range rhs {
				rhs[i] = float64(i%5) - 2
			}
			b.SetBytes(int64(a.NNZ()) * 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := h.Apply(rhs, x); err != nil {
					b.Fatal(err)
				}
			}
			sinkX = x
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchMeshes {
		b.Run(fmt.Sprintf("n=%d", n*n), func(b *testing.B) {
			a, err := gallery.Poisson2D(n, n)
			if err != nil {
				b.Fatal(err)
			}
			h, err := amg.NewHierarchy(a)
			if err != nil {
				b.Fatal(err)
			}
			rhs := make([]float64, a.Rows)
			for i := range rhs {
				rhs[i] = 1
			}
			x := make([]float64, a.Rows)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				clear(x)
				iters, err := h.Solve(rhs, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkIters = iters
			}
		})
	}
}
