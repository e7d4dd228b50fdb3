package discriminant

import (
	"fmt"

	"github.com/YuminosukeSato/mda/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// FittedState is the result of one fit. It is never modified after Fit
// returns it, so it can be shared between goroutines without locking.
// Accessors return copies.
type FittedState struct {
	nComponents int
	nFeatures   int
	nClasses    int
	nSamples    int

	within       *mat.SymDense
	between      *mat.SymDense
	eigenvectors *mat.Dense // nFeatures×nComponents
	eigenvalues  []float64
	rawValues    []complex128
	explained    []float64

	solver string
	rank   int
}

// Transform projects the rows of X onto the discriminant directions,
// returning Z = X·V with one column per retained direction.
func (s *FittedState) Transform(X mat.Matrix) (*mat.Dense, error) {
	r, c := X.Dims()
	if c != s.nFeatures {
		return nil, errors.NewDimensionError("FittedState.Transform", s.nFeatures, c, 1)
	}
	if r == 0 {
		return nil, errors.NewDimensionError("FittedState.Transform", 1, 0, 0)
	}

	z := mat.NewDense(r, s.nComponents, nil)
	z.Mul(X, s.eigenvectors)
	return z, nil
}

// NComponents returns the target dimensionality k.
func (s *FittedState) NComponents() int { return s.nComponents }

// NFeatures returns the feature count seen during fitting.
func (s *FittedState) NFeatures() int { return s.nFeatures }

// NClasses returns the number of distinct labels seen during fitting.
func (s *FittedState) NClasses() int { return s.nClasses }

// NSamples returns the number of training rows.
func (s *FittedState) NSamples() int { return s.nSamples }

// Within returns a copy of the within-class scatter matrix.
func (s *FittedState) Within() *mat.SymDense {
	return copySym(s.within)
}

// Between returns a copy of the between-class scatter matrix.
func (s *FittedState) Between() *mat.SymDense {
	return copySym(s.between)
}

// Eigenvectors returns a copy of the discriminant directions as columns,
// ordered by decreasing eigenvalue magnitude.
func (s *FittedState) Eigenvectors() *mat.Dense {
	return mat.DenseCopyOf(s.eigenvectors)
}

// Eigenvalues returns the real parts of the retained eigenvalues, paired
// with the columns of Eigenvectors.
func (s *FittedState) Eigenvalues() []float64 {
	return append([]float64(nil), s.eigenvalues...)
}

// ComplexEigenvalues returns the retained eigenvalues as produced by the
// eigensolver, before the imaginary parts were dropped.
func (s *FittedState) ComplexEigenvalues() []complex128 {
	return append([]complex128(nil), s.rawValues...)
}

// ExplainedRatio returns, per retained direction, its eigenvalue magnitude
// as a fraction of the summed magnitude of all eigenvalues.
func (s *FittedState) ExplainedRatio() []float64 {
	return append([]float64(nil), s.explained...)
}

// Solver reports how the generalized eigenproblem was reduced:
// SolverLU or SolverLeastSquares.
func (s *FittedState) Solver() string { return s.solver }

// Rank is the number of singular values kept by the least-squares solve,
// or the feature count when the LU solve succeeded.
func (s *FittedState) Rank() int { return s.rank }

// String returns a short description of the state.
func (s *FittedState) String() string {
	return fmt.Sprintf("FittedState(n_components=%d, n_features=%d, n_classes=%d, solver=%s)",
		s.nComponents, s.nFeatures, s.nClasses, s.solver)
}

func copySym(a *mat.SymDense) *mat.SymDense {
	out := mat.NewSymDense(a.SymmetricDim(), nil)
	out.CopySym(a)
	return out
}
