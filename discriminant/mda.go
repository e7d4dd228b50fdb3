package discriminant

import (
	"fmt"
	"time"

	"github.com/YuminosukeSato/mda/core/classes"
	"github.com/YuminosukeSato/mda/core/model"
	"github.com/YuminosukeSato/mda/pkg/errors"
	"github.com/YuminosukeSato/mda/pkg/log"
	"gonum.org/v1/gonum/mat"
)

const modelName = "MultipleDiscriminantAnalysis"

// MultipleDiscriminantAnalysis learns a supervised linear projection that
// maximizes between-class scatter relative to within-class scatter.
//
// The estimator keeps the state of its most recent successful fit. Fitting
// the same instance from several goroutines is safe but last-writer-wins;
// use separate instances for independent models.
type MultipleDiscriminantAnalysis struct {
	targetDims        int
	targetSet         bool
	imagTol           float64
	parallelThreshold int
	logger            log.Logger

	state *model.StateManager[*FittedState]
}

var _ model.SupervisedTransformer = (*MultipleDiscriminantAnalysis)(nil)

// NewMultipleDiscriminantAnalysis creates an unfitted estimator.
//
// 使用例:
//
//	lda := discriminant.NewMultipleDiscriminantAnalysis(discriminant.WithTargetDimensions(1))
//	if err := lda.Fit(X, y); err != nil {
//	    return err
//	}
//	Z, err := lda.Transform(X)
func NewMultipleDiscriminantAnalysis(opts ...Option) *MultipleDiscriminantAnalysis {
	m := &MultipleDiscriminantAnalysis{
		imagTol:           DefaultImagTolerance,
		parallelThreshold: DefaultParallelThreshold,
		state:             model.NewStateManager[*FittedState](),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Fit learns the discriminant directions from X (n_samples×n_features) and
// the label column y (n_samples×1). Labels are compared by equality.
func (m *MultipleDiscriminantAnalysis) Fit(X, y mat.Matrix) error {
	_, err := m.FitState(X, y)
	return err
}

// FitState is Fit returning the new state.
func (m *MultipleDiscriminantAnalysis) FitState(X, y mat.Matrix) (*FittedState, error) {
	const op = modelName + ".Fit"
	nSamples, _ := X.Dims()
	labels, err := classes.Column(op, y, nSamples)
	if err != nil {
		return nil, err
	}
	return m.fit(X, classes.Partition(labels))
}

// FitLabels fits m with labels of any comparable type, such as strings.
// labels[i] is the class of row i of X.
func FitLabels[L comparable](m *MultipleDiscriminantAnalysis, X mat.Matrix, labels []L) (*FittedState, error) {
	nSamples, _ := X.Dims()
	if len(labels) != nSamples {
		return nil, errors.NewDimensionError(modelName+".Fit", nSamples, len(labels), 0)
	}
	return m.fit(X, classes.Partition(labels))
}

func (m *MultipleDiscriminantAnalysis) fit(X mat.Matrix, groups [][]int) (st *FittedState, err error) {
	const op = modelName + ".Fit"
	defer errors.Recover(&err, op)

	start := time.Now()
	nSamples, nFeatures := X.Dims()
	if nSamples == 0 || nFeatures == 0 {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}

	nClasses := len(groups)
	if nClasses < 2 {
		return nil, errors.NewValidationError("y", "at least two distinct classes are required", nClasses)
	}

	maxDims := min(nClasses-1, nFeatures)
	k := maxDims
	if m.targetSet {
		if m.targetDims < 1 || m.targetDims > maxDims {
			return nil, errors.NewInvalidDimensionError(op, m.targetDims, maxDims)
		}
		k = m.targetDims
	}

	logger := m.getLogger()
	logger.Debug("fitting",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, nSamples,
		log.FeaturesKey, nFeatures,
		log.ClassesKey, nClasses,
		log.ComponentsKey, k,
	)

	sc := computeScatter(X, groups, m.parallelThreshold)

	sol := solveScatter(sc.within, sc.between)
	if sol.solver == SolverLeastSquares {
		logger.Warn("within-class scatter is degenerate, using least-squares solution",
			log.OperationKey, log.OperationFit,
			log.ErrorCodeKey, log.ErrorSingularMatrix,
			log.RankKey, sol.rank,
			log.FeaturesKey, nFeatures,
			log.SuggestionKey, "remove constant or collinear features, or add samples",
		)
		errors.Warn(errors.NewNumericDegeneracyWarning(op, sol.cause, sol.rank, nFeatures))
	}

	pairs, ok := decompose(sol.s)
	if !ok {
		return nil, errors.NewModelError(op, "eigendecomposition failed", errors.ErrEigenFailed)
	}

	order := rankByMagnitude(pairs.values)[:k]
	vectors, values, raw := pairs.selectReal(order)
	for i, v := range raw {
		if significantImag(v, m.imagTol) {
			errors.Warn(errors.NewDataConversionWarning("complex128", "float64",
				fmt.Sprintf("eigenvalue %d = %v has a non-negligible imaginary part; keeping the real part", i, v)))
		}
	}

	st = &FittedState{
		nComponents:  k,
		nFeatures:    nFeatures,
		nClasses:     nClasses,
		nSamples:     nSamples,
		within:       sc.within,
		between:      sc.between,
		eigenvectors: vectors,
		eigenvalues:  values,
		rawValues:    raw,
		explained:    explainedRatio(pairs.values, order),
		solver:       sol.solver,
		rank:         sol.rank,
	}
	m.state.Store(st, nFeatures, nSamples)

	logger.Info("fit completed",
		log.OperationKey, log.OperationFit,
		log.ComponentsKey, k,
		log.SolverKey, sol.solver,
		log.LeadingEigenvalueKey, values[0],
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return st, nil
}

// Transform projects X with the most recently fitted state.
func (m *MultipleDiscriminantAnalysis) Transform(X mat.Matrix) (mat.Matrix, error) {
	st, ok := m.state.Load()
	if !ok {
		return nil, errors.NewNotFittedError(modelName, "Transform")
	}
	z, err := st.Transform(X)
	if err != nil {
		return nil, err
	}
	return z, nil
}

// FitTransform fits on (X, y) and returns the projection of X.
func (m *MultipleDiscriminantAnalysis) FitTransform(X, y mat.Matrix) (mat.Matrix, error) {
	st, err := m.FitState(X, y)
	if err != nil {
		return nil, err
	}
	z, err := st.Transform(X)
	if err != nil {
		return nil, err
	}
	return z, nil
}

// State returns the most recent fitted state, or nil before the first fit.
func (m *MultipleDiscriminantAnalysis) State() *FittedState {
	st, _ := m.state.Load()
	return st
}

// IsFitted reports whether Fit has succeeded at least once.
func (m *MultipleDiscriminantAnalysis) IsFitted() bool {
	return m.state.IsFitted()
}

// GetParams returns the estimator's hyperparameters.
func (m *MultipleDiscriminantAnalysis) GetParams() map[string]interface{} {
	var target interface{}
	if m.targetSet {
		target = m.targetDims
	}
	return map[string]interface{}{
		"target_dimensions":  target,
		"imag_tolerance":     m.imagTol,
		"parallel_threshold": m.parallelThreshold,
	}
}

// String returns the estimator's string representation.
func (m *MultipleDiscriminantAnalysis) String() string {
	target := "auto"
	if m.targetSet {
		target = fmt.Sprint(m.targetDims)
	}
	st, ok := m.state.Load()
	if !ok {
		return fmt.Sprintf("%s(target_dimensions=%s)", modelName, target)
	}
	return fmt.Sprintf("%s(target_dimensions=%s, n_features=%d, n_classes=%d)",
		modelName, target, st.nFeatures, st.nClasses)
}

func (m *MultipleDiscriminantAnalysis) getLogger() log.Logger {
	if m.logger != nil {
		return m.logger
	}
	return log.GetLoggerWithName("discriminant").With(log.ModelNameKey, modelName)
}
