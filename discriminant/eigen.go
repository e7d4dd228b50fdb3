package discriminant

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/YuminosukeSato/mda/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solver names reported by FittedState.Solver.
const (
	// SolverLU means Sw·S = Sb was solved exactly through an LU factorization.
	SolverLU = "lu"
	// SolverLeastSquares means the minimum-norm least-squares solution was used.
	SolverLeastSquares = "lstsq"
)

// solution is S = Sw⁻¹·Sb together with how it was obtained.
type solution struct {
	s      *mat.Dense
	solver string
	rank   int    // singular values kept by the least-squares path; n for LU
	cause  error  // why LU was rejected; wraps errors.ErrSingularMatrix
}

// solveScatter solves within·S = between. Any LU failure, including a
// gonum Condition error or a non-finite result, switches to least squares.
func solveScatter(within, between mat.Matrix) solution {
	n, _ := within.Dims()

	var s mat.Dense
	err := s.Solve(within, between)
	if err == nil {
		err = errors.CheckMatrix("within_solve", &s)
	}
	if err == nil {
		return solution{s: &s, solver: SolverLU, rank: n}
	}

	ls, rank := leastSquares(within, between)
	return solution{
		s:      ls,
		solver: SolverLeastSquares,
		rank:   rank,
		cause:  errors.Wrap(errors.ErrSingularMatrix, err.Error()),
	}
}

// leastSquares returns the minimum-norm solution of a·x = b via the SVD
// pseudo-inverse x = V Σ⁺ Uᵗ b. Singular values at or below
// eps·max(rows, cols)·σmax are treated as zero.
func leastSquares(a, b mat.Matrix) (*mat.Dense, int) {
	r, c := a.Dims()
	_, bc := b.Dims()

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return mat.NewDense(c, bc, nil), 0
	}
	values := svd.Values(nil)

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	cutoff := 0.0
	if len(values) > 0 {
		cutoff = eps * float64(max(r, c)) * values[0]
	}

	var utb mat.Dense
	utb.Mul(u.T(), b)
	rank := 0
	for i, sv := range values {
		row := utb.RawRowView(i)
		if sv > cutoff {
			floats.Scale(1/sv, row)
			rank++
			continue
		}
		for j := range row {
			row[j] = 0
		}
	}

	var x mat.Dense
	x.Mul(&v, &utb)
	return &x, rank
}

// eps is the float64 machine epsilon.
var eps = math.Nextafter(1, 2) - 1

// eigenpairs are the right eigenpairs of a general real matrix.
type eigenpairs struct {
	values  []complex128
	vectors mat.CDense // column i pairs with values[i]
}

// decompose computes the eigenvalues and right eigenvectors of s.
func decompose(s mat.Matrix) (*eigenpairs, bool) {
	var eig mat.Eigen
	if !eig.Factorize(s, mat.EigenRight) {
		return nil, false
	}
	ep := &eigenpairs{values: eig.Values(nil)}
	eig.VectorsTo(&ep.vectors)
	return ep, true
}

// rankByMagnitude returns eigenvalue indices ordered by decreasing |λ|.
// Equal magnitudes keep the decomposition's native order.
func rankByMagnitude(values []complex128) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return cmplx.Abs(values[order[a]]) > cmplx.Abs(values[order[b]])
	})
	return order
}

// selectReal copies the real parts of the chosen eigenpairs, in order, into
// an n×k direction matrix and a length-k eigenvalue slice.
func (ep *eigenpairs) selectReal(order []int) (*mat.Dense, []float64, []complex128) {
	n, _ := ep.vectors.Dims()
	k := len(order)

	vectors := mat.NewDense(n, k, nil)
	values := make([]float64, k)
	raw := make([]complex128, k)
	for col, idx := range order {
		raw[col] = ep.values[idx]
		values[col] = real(ep.values[idx])
		for i := 0; i < n; i++ {
			vectors.Set(i, col, real(ep.vectors.At(i, idx)))
		}
	}
	return vectors, values, raw
}

// explainedRatio is |λ_i| / Σ_j |λ_j| over all eigenvalues, for the chosen indices.
func explainedRatio(values []complex128, order []int) []float64 {
	total := 0.0
	for _, v := range values {
		total += cmplx.Abs(v)
	}
	ratio := make([]float64, len(order))
	if total == 0 {
		return ratio
	}
	for i, idx := range order {
		ratio[i] = cmplx.Abs(values[idx]) / total
	}
	return ratio
}

// significantImag reports whether λ has an imaginary part above tol relative
// to max(1, |λ|).
func significantImag(v complex128, tol float64) bool {
	return math.Abs(imag(v)) > tol*math.Max(1, cmplx.Abs(v))
}
