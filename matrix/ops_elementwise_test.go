// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heartlens/matrix"
)

// --- ewBroadcastSubCols -------------------------------------------------------

func TestEwBroadcastSubCols_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})
	colMeans := []float64{4, 5, 6}

	gotFast, err := matrix.EwBroadcastSubCols_TestOnly(X, colMeans)
	require.NoError(t, err)
	gotSlow, err := matrix.EwBroadcastSubCols_TestOnly(hide{X}, colMeans)
	require.NoError(t, err)

	want := NewFilledDense(t, 2, 3, []float64{-3, -3, -3, 6, 15, 24})
	CompareClose(t, gotFast, want, 0, 0)
	CompareClose(t, gotSlow, want, 0, 0)
}

func TestEwBroadcastSubCols_DimMismatch_Err(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	_, err := matrix.EwBroadcastSubCols_TestOnly(X, []float64{0, 0})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// --- ewBroadcastSubRows -------------------------------------------------------

func TestEwBroadcastSubRows_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})
	rowMeans := []float64{2, 20}

	gotFast, err := matrix.EwBroadcastSubRows_TestOnly(X, rowMeans)
	require.NoError(t, err)
	gotSlow, err := matrix.EwBroadcastSubRows_TestOnly(hide{X}, rowMeans)
	require.NoError(t, err)

	want := NewFilledDense(t, 2, 3, []float64{-1, 0, 1, -10, 0, 10})
	CompareClose(t, gotFast, want, 0, 0)
	CompareClose(t, gotSlow, want, 0, 0)

	_, err = matrix.EwBroadcastSubRows_TestOnly(X, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// --- ewScaleCols --------------------------------------------------------------

func TestEwScaleCols_ZeroFactorZeroesColumn(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	got, err := matrix.EwScaleCols_TestOnly(hide{X}, []float64{0, 0.5})
	require.NoError(t, err)
	CompareClose(t, got, NewFilledDense(t, 2, 2, []float64{0, 1, 0, 2}), 0, 0)

	_, err = matrix.EwScaleCols_TestOnly(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
