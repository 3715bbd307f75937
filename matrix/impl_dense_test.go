// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heartlens/matrix"
)

func TestNewDense_InvalidShape(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 3.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, MustAt(t, m, 1, 2))

	// The matrix owns its storage.
	src[0][0] = 100
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFromRows([][]float64{{1, math.Inf(1)}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_RowAndToRowsAreCopies(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)
	row[0] = -1
	assert.Equal(t, 3.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	rows := m.ToRows()
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)
	rows[0][1] = 42
	assert.Equal(t, 2.0, MustAt(t, m, 0, 1))
}

func TestDense_CloneIndependent(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 1, 2, []float64{1, 2})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 9))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, "[1, 2]\n", m.String())
}
