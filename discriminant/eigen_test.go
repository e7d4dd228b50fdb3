package discriminant

import (
	"testing"

	"github.com/YuminosukeSato/mda/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestRankByMagnitude(t *testing.T) {
	values := []complex128{1, -3, complex(2, 2), complex(2, -2), 3}

	// |-3| == |3| and the conjugate pair tie; both keep their input order.
	assert.Equal(t, []int{1, 4, 2, 3, 0}, rankByMagnitude(values))
	assert.Empty(t, rankByMagnitude(nil))
}

func TestSolveScatter_LU(t *testing.T) {
	within := mat.NewSymDense(2, []float64{4, 1, 1, 3})
	between := mat.NewSymDense(2, []float64{2, 0, 0, 1})

	sol := solveScatter(within, between)
	assert.Equal(t, SolverLU, sol.solver)
	assert.Equal(t, 2, sol.rank)
	assert.NoError(t, sol.cause)

	var back mat.Dense
	back.Mul(within, sol.s)
	assert.True(t, mat.EqualApprox(&back, between, 1e-12))
}

func TestSolveScatter_SingularFallsBack(t *testing.T) {
	within := mat.NewSymDense(3, []float64{
		2, 0, 0,
		0, 0, 0,
		0, 0, 5,
	})
	between := mat.NewSymDense(3, []float64{
		4, 0, 2,
		0, 0, 0,
		2, 0, 10,
	})

	sol := solveScatter(within, between)
	require.Equal(t, SolverLeastSquares, sol.solver)
	assert.Equal(t, 2, sol.rank)
	assert.True(t, errors.Is(sol.cause, errors.ErrSingularMatrix), "cause %v", sol.cause)

	want := mat.NewDense(3, 3, []float64{
		2, 0, 1,
		0, 0, 0,
		0.4, 0, 2,
	})
	assert.True(t, mat.EqualApprox(want, sol.s, 1e-12), "got\n%v", mat.Formatted(sol.s))
}

func TestLeastSquares_MatchesExactSolveWhenInvertible(t *testing.T) {
	a := mat.NewDense(3, 3, []float64{
		4, 1, 0,
		1, 3, 1,
		0, 1, 2,
	})
	b := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
	})

	var exact mat.Dense
	require.NoError(t, exact.Solve(a, b))

	got, rank := leastSquares(a, b)
	assert.Equal(t, 3, rank)
	assert.True(t, mat.EqualApprox(&exact, got, 1e-12))
}

func TestLeastSquares_ZeroMatrix(t *testing.T) {
	got, rank := leastSquares(mat.NewDense(2, 2, nil), mat.NewDense(2, 1, []float64{1, 1}))
	assert.Equal(t, 0, rank)
	assert.True(t, mat.Equal(mat.NewDense(2, 1, nil), got))
}

func TestDecompose_ComplexPairKeepsRealParts(t *testing.T) {
	// rotation by 90°: eigenvalues ±i
	rot := mat.NewDense(2, 2, []float64{0, -1, 1, 0})

	pairs, ok := decompose(rot)
	require.True(t, ok)
	require.Len(t, pairs.values, 2)
	for _, v := range pairs.values {
		assert.InDelta(t, 0, real(v), 1e-12)
		assert.InDelta(t, 1, imag(v)*imag(v), 1e-12)
		assert.True(t, significantImag(v, DefaultImagTolerance))
	}

	order := rankByMagnitude(pairs.values)
	vectors, values, raw := pairs.selectReal(order[:1])
	r, c := vectors.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 1, c)
	assert.InDelta(t, 0, values[0], 1e-12)
	assert.Equal(t, pairs.values[order[0]], raw[0])
}

func TestDecompose_DiagonalMatrix(t *testing.T) {
	pairs, ok := decompose(mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, -5, 0,
		0, 0, 2,
	}))
	require.True(t, ok)

	order := rankByMagnitude(pairs.values)
	vectors, values, _ := pairs.selectReal(order)
	assert.InDeltaSlice(t, []float64{-5, 2, 1}, values, 1e-12)

	// columns are signed unit axes
	for col, axis := range []int{1, 2, 0} {
		assert.InDelta(t, 1, vectors.At(axis, col)*vectors.At(axis, col), 1e-12)
	}
}

func TestSignificantImag(t *testing.T) {
	tests := []struct {
		name string
		v    complex128
		tol  float64
		want bool
	}{
		{"real", complex(5, 0), 1e-8, false},
		{"rounding noise on large value", complex(1e6, 1e-4), 1e-8, false},
		{"noise above tolerance", complex(1e6, 1e-1), 1e-8, true},
		{"small value uses absolute floor", complex(1e-3, 1e-9), 1e-8, false},
		{"purely imaginary", complex(0, 1), 1e-8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, significantImag(tt.v, tt.tol))
		})
	}
}

func TestExplainedRatio(t *testing.T) {
	values := []complex128{3, -1, 0}
	assert.InDeltaSlice(t, []float64{0.75, 0.25}, explainedRatio(values, []int{0, 1}), 1e-12)
	assert.InDeltaSlice(t, []float64{0.25}, explainedRatio(values, []int{1}), 1e-12)
	assert.Equal(t, []float64{0, 0}, explainedRatio([]complex128{0, 0}, []int{0, 1}))
}
