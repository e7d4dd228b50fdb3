// Package mda provides Multiple Discriminant Analysis for Go: a supervised
// linear dimensionality reduction that projects labelled data onto the
// directions that best separate its classes.
//
// The API follows the fit/transform shape familiar from scikit-learn, on top
// of gonum matrices.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/mda/discriminant"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(6, 2, []float64{
//	        0, 0, 1, 0.5, 0.5, 1,
//	        5, 5, 6, 5.5, 5.5, 6,
//	    })
//	    y := mat.NewDense(6, 1, []float64{0, 0, 0, 1, 1, 1})
//
//	    lda := discriminant.NewMultipleDiscriminantAnalysis()
//	    Z, err := lda.FitTransform(X, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(Z))
//	}
//
// # Packages
//
//   - discriminant: the MultipleDiscriminantAnalysis estimator and its FittedState
//   - preprocessing: StandardScaler
//   - core/model: estimator interfaces and thread-safe fitted-state storage
//   - core/parallel: row-range parallelization helpers
//   - pkg/errors: typed errors, warnings and panic recovery
//   - pkg/log: structured logging (zerolog by default, slog optional)
//
// # Warnings
//
// Non-fatal conditions, such as a singular within-class scatter matrix, are
// reported through errors.Warn. Install a handler with
// errors.SetWarningHandler, or call log.SetupZerolog to route them into the
// structured log.
//
// # License
//
// Released under the MIT License.
package mda
