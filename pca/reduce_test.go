// SPDX-License-Identifier: MIT

package pca_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/heartlens/matrix"
	"github.com/katalvlaran/heartlens/pca"
)

// ReduceSuite runs the projection contract over a fixed random table.
type ReduceSuite struct {
	suite.Suite
	rows [][]float64
	X    *matrix.Dense
}

func (s *ReduceSuite) SetupTest() {
	rng := rand.New(rand.NewSource(42))
	s.rows = make([][]float64, 30)
	for i := range s.rows {
		base := rng.NormFloat64()
		s.rows[i] = []float64{
			base + 0.1*rng.NormFloat64(),
			2*base + 0.3*rng.NormFloat64(),
			rng.NormFloat64(),
			-base + rng.NormFloat64(),
			0.5 * rng.NormFloat64(),
		}
	}
	var err error
	s.X, err = matrix.NewDenseFromRows(s.rows)
	s.Require().NoError(err)
}

func (s *ReduceSuite) TestShape() {
	for n := 1; n <= 5; n++ {
		opts := pca.DefaultOptions()
		opts.Components = n
		res, err := pca.Reduce(s.X, opts)
		s.Require().NoError(err)
		s.Equal(30, res.Coordinates.Rows())
		s.Equal(n, res.Coordinates.Cols())
		s.Len(res.Pairs, 5)
		s.Len(res.ExplainedVariance(), n)
	}
}

func (s *ReduceSuite) TestPairsDescending() {
	res, err := pca.Reduce(s.X, pca.DefaultOptions())
	s.Require().NoError(err)
	for i := 1; i < len(res.Pairs); i++ {
		s.GreaterOrEqual(res.Pairs[i-1].Value, res.Pairs[i].Value)
	}
}

func (s *ReduceSuite) TestExplainedVarianceBound() {
	for _, c := range []pca.Centering{pca.CenterRows, pca.CenterColumns} {
		opts := pca.DefaultOptions()
		opts.Centering = c

		res, err := pca.Reduce(s.X, opts)
		s.Require().NoError(err)
		s.LessOrEqual(res.Retained(), res.TotalVariance*(1+1e-12), c.String())

		var ratio float64
		for _, r := range res.ExplainedVariance() {
			ratio += r
		}
		s.LessOrEqual(ratio, 1+1e-12)

		opts.Components = 5
		full, err := pca.Reduce(s.X, opts)
		s.Require().NoError(err)
		s.InDelta(full.TotalVariance, full.Retained(), 1e-9, c.String())
	}
}

// TestRowCenteringNullSpace: every centered row sums to zero, so the smallest
// eigenvalue is zero with an eigenvector parallel to (1,…,1).
func (s *ReduceSuite) TestRowCenteringNullSpace() {
	opts := pca.DefaultOptions()
	opts.Components = 5
	res, err := pca.Reduce(s.X, opts)
	s.Require().NoError(err)

	last := res.Pairs[4]
	s.InDelta(0, last.Value, 1e-9)
	want := 1 / math.Sqrt(5)
	for _, v := range last.Vector {
		s.InDelta(want, math.Abs(v), 1e-6)
	}
}

// TestRowCenteringMatchesEigenSym rebuilds the default projection with gonum:
// row-centered data, (XcᵀXc)/(N−1), mat.EigenSym; coordinates agree up to sign.
func (s *ReduceSuite) TestRowCenteringMatchesEigenSym() {
	const n, f, k = 30, 5, 2
	res, err := pca.Reduce(s.X, pca.DefaultOptions())
	s.Require().NoError(err)
	s.Require().Equal(k, res.Coordinates.Cols())

	xc := mat.NewDense(n, f, nil)
	for i, r := range s.rows {
		var mean float64
		for _, v := range r {
			mean += v
		}
		mean /= f
		for j, v := range r {
			xc.Set(i, j, v-mean)
		}
	}
	var gram mat.Dense
	gram.Mul(xc.T(), xc)
	cov := mat.NewSymDense(f, nil)
	for i := 0; i < f; i++ {
		for j := i; j < f; j++ {
			cov.SetSym(i, j, gram.At(i, j)/(n-1))
		}
	}
	var eig mat.EigenSym
	s.Require().True(eig.Factorize(cov, true))
	vals := eig.Values(nil) // ascending
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	for c := 0; c < k; c++ {
		src := f - 1 - c
		s.InDelta(vals[src], res.Pairs[c].Value, 1e-9, "eigenvalue %d", c)

		want := make([]float64, n)
		got := make([]float64, n)
		var dot float64
		for i := 0; i < n; i++ {
			for j := 0; j < f; j++ {
				want[i] += xc.At(i, j) * vecs.At(j, src)
			}
			got[i], _ = res.Coordinates.At(i, c)
			dot += want[i] * got[i]
		}
		sign := 1.0
		if dot < 0 {
			sign = -1
		}
		for i := range want {
			s.InDelta(sign*want[i], got[i], 1e-7, "coordinate (%d,%d)", i, c)
		}
	}
}

// TestColumnCenteringMatchesGonum compares the spectrum with gonum's stat.PC.
func (s *ReduceSuite) TestColumnCenteringMatchesGonum() {
	opts := pca.DefaultOptions()
	opts.Centering = pca.CenterColumns
	opts.Components = 2
	res, err := pca.Reduce(s.X, opts)
	s.Require().NoError(err)

	flat := make([]float64, 0, 150)
	for _, r := range s.rows {
		flat = append(flat, r...)
	}
	var pc stat.PC
	s.Require().True(pc.PrincipalComponents(mat.NewDense(30, 5, flat), nil))
	vars := pc.VarsTo(nil)
	for i := range vars {
		s.InDelta(vars[i], res.Pairs[i].Value, 1e-8, "eigenvalue %d", i)
	}

	// Projected columns carry exactly their eigenvalue as sample variance.
	for k := 0; k < 2; k++ {
		col := make([]float64, 30)
		for i := range col {
			col[i], _ = res.Coordinates.At(i, k)
		}
		s.InDelta(res.Pairs[k].Value, stat.Variance(col, nil), 1e-8)
	}
}

func TestReduceSuite(t *testing.T) {
	suite.Run(t, new(ReduceSuite))
}

func TestReduce_AxisAlignedExample(t *testing.T) {
	X, err := matrix.NewDenseFromRows([][]float64{{2, 0}, {-2, 0}, {0, 1}, {0, -1}})
	require.NoError(t, err)

	opts := pca.DefaultOptions()
	opts.Centering = pca.CenterColumns
	res, err := pca.Reduce(X, opts)
	require.NoError(t, err)

	assert.InDelta(t, 8.0/3, res.Pairs[0].Value, 1e-12)
	assert.InDelta(t, 2.0/3, res.Pairs[1].Value, 1e-12)
	assert.InDelta(t, 10.0/3, res.TotalVariance, 1e-12)
	assert.InDeltaSlice(t, []float64{0.8, 0.2}, res.ExplainedVariance(), 1e-12)

	x0, _ := res.Coordinates.At(0, 0)
	y2, _ := res.Coordinates.At(2, 1)
	assert.InDelta(t, 2, math.Abs(x0), 1e-12)
	assert.InDelta(t, 1, math.Abs(y2), 1e-12)
}

func TestReduce_Errors(t *testing.T) {
	X, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 6, 9}})
	require.NoError(t, err)

	_, err = pca.Reduce(nil, pca.DefaultOptions())
	assert.ErrorIs(t, err, pca.ErrEmptyInput)

	for _, c := range []int{0, -1, 4} {
		opts := pca.DefaultOptions()
		opts.Components = c
		_, err = pca.Reduce(X, opts)
		assert.ErrorIs(t, err, pca.ErrInvalidComponents, "components=%d", c)
	}

	one, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}})
	require.NoError(t, err)
	_, err = pca.Reduce(one, pca.DefaultOptions())
	assert.ErrorIs(t, err, pca.ErrDegenerate)

	flat, err := matrix.NewDenseFromRows([][]float64{{5, 5, 5}, {1, 1, 1}})
	require.NoError(t, err)
	_, err = pca.Reduce(flat, pca.DefaultOptions())
	assert.ErrorIs(t, err, pca.ErrDegenerate, "row centering of constant rows leaves no variance")

	opts := pca.DefaultOptions()
	opts.EigenMaxIter = 1
	X3, err := matrix.NewDenseFromRows([][]float64{{1, 5, 2}, {4, 1, 7}, {0, 3, 9}, {8, 2, 1}})
	require.NoError(t, err)
	_, err = pca.Reduce(X3, opts)
	assert.ErrorIs(t, err, pca.ErrDegenerate)
	assert.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}

func TestCentering_String(t *testing.T) {
	assert.Equal(t, "rows", pca.CenterRows.String())
	assert.Equal(t, "columns", pca.CenterColumns.String())
	assert.Equal(t, "unknown", pca.Centering(9).String())
}
