// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	jbsparse "github.com/james-bowman/sparse"
	"github.com/katalvlaran/spinlab/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestGonum_KernelsAgree checks our Gustavson product and MatVec against the
// james-bowman implementations on the same operands.
func TestGonum_KernelsAgree(t *testing.T) {
	t.Parallel()

	_, a := randSparse(t, 17, 13, 0.2, 3)
	_, b := randSparse(t, 13, 11, 0.2, 4)

	got, err := a.Mul(b)
	require.NoError(t, err)
	var want jbsparse.CSR
	want.Mul(a.Gonum(), b.Gonum())
	back, err := sparse.FromGonum(&want, 0)
	require.NoError(t, err)
	gd, err := got.ToDense()
	require.NoError(t, err)
	wd, err := back.ToDense()
	require.NoError(t, err)
	requireDenseClose(t, wd, gd, 1e-12)

	x := make([]float64, 13)
	for i := range x {
		x[i] = math.Cos(float64(i))
	}
	y, err := a.MatVec(x)
	require.NoError(t, err)
	ref := make([]float64, 17)
	a.Gonum().MulVecTo(ref, false, x)
	assert.InDeltaSlice(t, ref, y, 1e-12)
}

func TestGonum_CopiesArrays(t *testing.T) {
	t.Parallel()

	lap, err := sparse.Laplacian1D(5, 1)
	require.NoError(t, err)
	g := lap.Gonum()
	r, c := g.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 5, c)
	assert.Equal(t, lap.NNZ(), g.NNZ())

	g.Set(0, 0, 42)
	v, err := lap.At(0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, 42.0, v)
}

func TestFromGonum(t *testing.T) {
	t.Parallel()

	d := mat.NewDense(2, 3, []float64{
		1, 0, 1e-9,
		0, -2, 0,
	})
	s, err := sparse.FromGonum(d, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, 2, s.NNZ())
	v, err := s.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, -2.0, v)

	d.Set(0, 1, math.NaN())
	_, err = sparse.FromGonum(d, 0)
	require.ErrorIs(t, err, sparse.ErrNaNInf)
	_, err = sparse.FromGonum(d, math.Inf(1))
	require.ErrorIs(t, err, sparse.ErrNaNInf)
	_, err = sparse.FromGonum(nil, 0)
	require.ErrorIs(t, err, sparse.ErrBadShape)
}
