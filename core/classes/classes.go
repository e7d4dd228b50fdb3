// Package classes groups sample rows by class label.
package classes

import (
	"github.com/YuminosukeSato/mda/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Partition groups row indices by label. Classes are numbered in order of
// first appearance and every group is non-empty.
//
// Labels are map keys, so a float64 NaN never equals another NaN and each
// NaN row forms a class of its own.
func Partition[L comparable](labels []L) [][]int {
	index := make(map[L]int)
	var groups [][]int
	for i, l := range labels {
		c, ok := index[l]
		if !ok {
			c = len(groups)
			index[l] = c
			groups = append(groups, nil)
		}
		groups[c] = append(groups[c], i)
	}
	return groups
}

// Column reads y as an nSamples×1 label column.
func Column(op string, y mat.Matrix, nSamples int) ([]float64, error) {
	rows, cols := y.Dims()
	if rows != nSamples {
		return nil, errors.NewDimensionError(op, nSamples, rows, 0)
	}
	if cols != 1 {
		return nil, errors.NewDimensionError(op, 1, cols, 1)
	}
	return mat.Col(nil, 0, y), nil
}
