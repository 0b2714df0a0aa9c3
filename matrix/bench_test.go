// Package matrix_test provides benchmarks for the determinant engine and
// the Grid kernels, using deterministic random integer fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/leonickl/pxp-matrix/matrix"
)

// detSizes are the dimensions benchmarked for cofactor expansion; cost is O(n!).
var detSizes = []int{4, 6, 8}

// kernelSizes are the dimensions benchmarked for polynomial kernels.
var kernelSizes = []int{16, 64}

// sinks to defeat dead-code elimination
var (
	sinkG *matrix.Grid
	sinkF float64
)

func BenchmarkDet(b *testing.B) {
	engines := map[string]*matrix.Engine{
		"plain": matrix.NewEngine(),
		"memo":  matrix.NewEngine(matrix.WithMemo()),
		"lu":    matrix.NewEngine(matrix.WithLUThreshold(3)),
	}
	for _, n := range detSizes {
		A := randomIntGrid(b, n, n, 1337)
		for name, e := range engines {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					d, err := e.Det(A)
					if err != nil {
						b.Fatal(err)
					}
					sinkF = d
				}
			})
		}
	}
}

func BenchmarkInvert(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{3, 5, 7} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomIntGrid(b, n, n, 4242)
			e := matrix.NewEngine(matrix.WithMemo())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g, err := e.Invert(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkG = g
			}
		})
	}
}

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range kernelSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomIntGrid(b, n, n, 11)
			B := randomIntGrid(b, n, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g, err := matrix.Product(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkG = g
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range kernelSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomIntGrid(b, n, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g, err := A.Transpose()
				if err != nil {
					b.Fatal(err)
				}
				sinkG = g
			}
		})
	}
}

func BenchmarkString(b *testing.B) {
	b.ReportAllocs()
	A := randomIntGrid(b, 16, 16, 99)
	var s string
	for i := 0; i < b.N; i++ {
		s = A.String()
	}
	sinkF = float64(len(s))
}
