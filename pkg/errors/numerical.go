package errors

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// maxReportedValues bounds how many offending values an error carries.
const maxReportedValues = 10

// NumericalInstabilityError reports NaN or Inf values produced by a numerical step.
type NumericalInstabilityError struct {
	Operation string    // e.g. "within_solve", "eigen"
	Values    []float64 // offending values, at most maxReportedValues
	Row, Col  int       // position of the first offending value, -1 for vectors
}

func (e *NumericalInstabilityError) Error() string {
	vals := make([]string, 0, len(e.Values))
	for i, v := range e.Values {
		if i >= 5 {
			vals = append(vals, "...")
			break
		}
		vals = append(vals, fmt.Sprintf("%.6g", v))
	}
	return fmt.Sprintf("mda: numerical instability detected in %s at (%d, %d). Values: [%s]",
		e.Operation, e.Row, e.Col, strings.Join(vals, ", "))
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Floats64("values", e.Values).
		Int("row", e.Row).
		Int("col", e.Col).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError creates a NumericalInstabilityError with a stack trace.
func NewNumericalInstabilityError(operation string, values []float64, row, col int) error {
	err := &NumericalInstabilityError{Operation: operation, Values: values, Row: row, Col: col}
	return errors.WithStack(err)
}

// CheckNumericalStability checks if values contain NaN or Inf
// and returns an error if numerical instability is detected.
func CheckNumericalStability(operation string, values []float64) error {
	for i, v := range values {
		if !isFinite(v) {
			return NewNumericalInstabilityError(operation, collectUnstable(values), i, -1)
		}
	}
	return nil
}

// CheckMatrix checks all values in a matrix for numerical instability.
func CheckMatrix(operation string, matrix interface {
	At(int, int) float64
	Dims() (int, int)
}) error {
	rows, cols := matrix.Dims()
	var unstable []float64
	firstRow, firstCol := -1, -1

	for i := 0; i < rows && len(unstable) < maxReportedValues; i++ {
		for j := 0; j < cols; j++ {
			v := matrix.At(i, j)
			if isFinite(v) {
				continue
			}
			if firstRow < 0 {
				firstRow, firstCol = i, j
			}
			unstable = append(unstable, v)
			if len(unstable) >= maxReportedValues {
				break
			}
		}
	}

	if len(unstable) > 0 {
		return NewNumericalInstabilityError(operation, unstable, firstRow, firstCol)
	}
	return nil
}

func collectUnstable(values []float64) []float64 {
	var out []float64
	for _, v := range values {
		if !isFinite(v) {
			out = append(out, v)
			if len(out) >= maxReportedValues {
				break
			}
		}
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
