// Package discriminant implements Multiple Discriminant Analysis (MDA), the
// multi-class generalization of Fisher's linear discriminant.
//
// Fitting builds the within-class scatter Sw = Σ_c (Xc−mc)ᵗ(Xc−mc) and the
// size-weighted between-class scatter Sb = Σ_c Nc (mc−m)(mc−m)ᵗ, solves
// Sw·S = Sb for S without forming Sw⁻¹, and keeps the k eigenvectors of S
// with the largest eigenvalue magnitude. Projection is Z = X·V.
//
// When Sw is singular or too ill-conditioned for an LU solve (for example
// when there are fewer samples than features) the minimum-norm least-squares
// solution is used instead and a NumericDegeneracyWarning is raised through
// pkg/errors.Warn. Fit does not fail in that case.
//
// S is in general not symmetric, so its eigenpairs are computed with a
// complex-capable solver (gonum's mat.Eigen). Only real parts are retained;
// an eigenvalue whose imaginary part exceeds the configured tolerance raises
// a DataConversionWarning. Eigenpairs with equal magnitude (complex
// conjugates, repeated eigenvalues) keep the solver's native order.
//
// A fit produces an immutable FittedState. Its Transform method may be
// called concurrently; the estimator keeps the most recent state for
// convenience.
//
//	lda := discriminant.NewMultipleDiscriminantAnalysis(
//	    discriminant.WithTargetDimensions(2),
//	)
//	state, err := lda.FitState(X, y)
//	if err != nil {
//	    return err
//	}
//	Z, err := state.Transform(XNew)
package discriminant
