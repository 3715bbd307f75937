// SPDX-License-Identifier: MIT

// Package preprocess scales feature matrices before dimensionality reduction.
package preprocess

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/heartlens/matrix"
)

// ErrEmptyInput is returned when Standardize receives a nil matrix.
var ErrEmptyInput = errors.New("preprocess: empty input")

// Scaled is a column-wise z-scored matrix together with the statistics that
// produced it. Stds[j] == 0 marks a zero-variance source column, which is
// all zeros in Matrix.
type Scaled struct {
	Matrix matrix.Matrix
	Means  []float64
	Stds   []float64
}

// Standardize z-scores every column of m: (x − μⱼ)/σⱼ with the population
// standard deviation (N denominator). Constant columns map to zeros; any
// other column is scaled to unit variance however small its spread.
// m is not modified.
//
// Complexity: O(N*F) time and space.
func Standardize(m matrix.Matrix) (Scaled, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Scaled{}, fmt.Errorf("preprocess: standardize: %w", ErrEmptyInput)
	}
	Z, means, stds, err := matrix.StandardizeColumns(m)
	if err != nil {
		return Scaled{}, fmt.Errorf("preprocess: standardize: %w", err)
	}

	return Scaled{Matrix: Z, Means: means, Stds: stds}, nil
}

// ZeroVariance returns the indices of columns that were constant in the source.
func (s Scaled) ZeroVariance() []int {
	var out []int
	for j, sd := range s.Stds {
		if sd == 0 {
			out = append(out, j)
		}
	}

	return out
}
