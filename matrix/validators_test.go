// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heartlens/matrix"
)

// TestValidateNotNil includes a typed-nil *Dense behind the interface.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}

// TestValidateSymmetric covers tolerance handling and structural errors.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := NewFilledDense(t, 2, 2, []float64{1, 2, 2 + 1e-12, 1})
	require.NoError(t, matrix.ValidateSymmetric(sym, 1e-9))
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, 0), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)

	rect := NewFilledDense(t, 1, 2, []float64{1, 2})
	require.ErrorIs(t, matrix.ValidateSymmetric(rect, 1e-9), matrix.ErrDimensionMismatch)
}

// TestValidateMulCompatible checks inner-dimension agreement.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, matrix.ValidateMulCompatible(a, hide{NewFilledDense(t, 3, 1, []float64{1, 1, 1})}))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
}
