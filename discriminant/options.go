package discriminant

import "github.com/YuminosukeSato/mda/pkg/log"

const (
	// DefaultImagTolerance is the relative imaginary-part tolerance above
	// which a retained eigenvalue triggers a DataConversionWarning.
	DefaultImagTolerance = 1e-8

	// DefaultParallelThreshold is the class size above which row centering
	// is split across goroutines.
	DefaultParallelThreshold = 1000
)

// Option is a function that configures MultipleDiscriminantAnalysis
type Option func(*MultipleDiscriminantAnalysis)

// WithTargetDimensions fixes the number of discriminant directions k.
// Fit rejects k outside [1, min(n_classes-1, n_features)]. Without this
// option k defaults to min(n_classes-1, n_features).
func WithTargetDimensions(k int) Option {
	return func(m *MultipleDiscriminantAnalysis) {
		m.targetDims = k
		m.targetSet = true
	}
}

// WithImagTolerance sets the relative tolerance for discarding imaginary
// parts of eigenvalues.
func WithImagTolerance(tol float64) Option {
	return func(m *MultipleDiscriminantAnalysis) {
		m.imagTol = tol
	}
}

// WithLogger sets the logger used by Fit. By default the package-level
// provider from pkg/log is consulted on every fit.
func WithLogger(l log.Logger) Option {
	return func(m *MultipleDiscriminantAnalysis) {
		m.logger = l
	}
}

// WithParallelThreshold sets the class size above which centering runs in parallel.
func WithParallelThreshold(rows int) Option {
	return func(m *MultipleDiscriminantAnalysis) {
		m.parallelThreshold = rows
	}
}
