package discriminant

import (
	"math"

	"github.com/YuminosukeSato/mda/core/parallel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// scatter holds the class statistics of one fit.
type scatter struct {
	mean      []float64     // global mean m
	centroids *mat.Dense    // C×n, row c is mc
	sizes     []int         // Nc
	within    *mat.SymDense // Σ_c (Xc−mc)ᵗ(Xc−mc)
	between   *mat.SymDense // M'ᵗM', M' = (M−m) ⊙ sqrt(Nc)
}

// computeScatter accumulates the within- and between-class scatter of X
// for the given class partition. Each class is visited once.
func computeScatter(X mat.Matrix, groups [][]int, parallelThreshold int) *scatter {
	nSamples, n := X.Dims()

	mean := make([]float64, n)
	col := make([]float64, nSamples)
	for j := 0; j < n; j++ {
		mat.Col(col, j, X)
		mean[j] = stat.Mean(col, nil)
	}

	within := mat.NewSymDense(n, nil)
	centroids := mat.NewDense(len(groups), n, nil)
	sizes := make([]int, len(groups))

	for c, rows := range groups {
		nc := len(rows)
		xc := mat.NewDense(nc, n, nil)
		for r, i := range rows {
			mat.Row(xc.RawRowView(r), i, X)
		}

		mc := centroids.RawRowView(c)
		for r := 0; r < nc; r++ {
			floats.Add(mc, xc.RawRowView(r))
		}
		floats.Scale(1/float64(nc), mc)

		parallel.ParallelizeWithThreshold(nc, parallelThreshold, func(start, end int) {
			for r := start; r < end; r++ {
				floats.Sub(xc.RawRowView(r), mc)
			}
		})

		var sc mat.SymDense
		sc.SymOuterK(1, xc.T())
		within.AddSym(within, &sc)
		sizes[c] = nc
	}

	weighted := mat.NewDense(len(groups), n, nil)
	for c := range groups {
		row := weighted.RawRowView(c)
		floats.SubTo(row, centroids.RawRowView(c), mean)
		floats.Scale(math.Sqrt(float64(sizes[c])), row)
	}
	between := mat.NewSymDense(n, nil)
	between.SymOuterK(1, weighted.T())

	return &scatter{
		mean:      mean,
		centroids: centroids,
		sizes:     sizes,
		within:    within,
		between:   between,
	}
}
