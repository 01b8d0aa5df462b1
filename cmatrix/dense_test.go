// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/spinlab/cmatrix"
	"github.com/katalvlaran/spinlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	_, err := cmatrix.New(0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	id, err := cmatrix.Identity(3)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), mustAt(t, id, 2, 2))
	assert.Equal(t, complex(0, 0), mustAt(t, id, 0, 1))

	re, err := matrix.NewDenseFrom(1, 2, []float64{1, 2})
	require.NoError(t, err)
	im, err := matrix.NewDenseFrom(1, 2, []float64{-3, 4})
	require.NoError(t, err)
	z, err := cmatrix.FromParts(re, im)
	require.NoError(t, err)
	assert.Equal(t, complex(2, 4), mustAt(t, z, 0, 1))

	// inputs are copied
	require.NoError(t, re.Set(0, 0, 100))
	assert.Equal(t, complex(1, -3), mustAt(t, z, 0, 0))

	fr, err := cmatrix.FromReal(re)
	require.NoError(t, err)
	assert.True(t, cmatrix.IsReal(fr, 0))

	bad, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = cmatrix.FromParts(re, bad)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = cmatrix.FromParts(nil, bad)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAtSet_Errors(t *testing.T) {
	t.Parallel()

	d, err := cmatrix.New(2, 2)
	require.NoError(t, err)
	_, err = d.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, 5, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, 0, cmplx.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, d.Set(0, 0, complex(math.Inf(1), 0)), matrix.ErrNaNInf)
}

// The planes handed out by Real and Imag reject non-finite writes too.
func TestPlanesRejectNonFinite(t *testing.T) {
	t.Parallel()

	d, err := cmatrix.New(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, d.Real().Set(0, 1, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, d.Imag().Set(1, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.NoError(t, d.Imag().Set(1, 0, 0.5))
	assert.Equal(t, 0.5i, mustAt(t, d, 1, 0))

	id, err := cmatrix.Identity(2)
	require.NoError(t, err)
	require.ErrorIs(t, id.Real().Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, id.Clone().Imag().Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestCloneAndString(t *testing.T) {
	t.Parallel()

	d := mustFrom(t, 1, 2, []complex128{1 + 2i, -1i})
	c := d.Clone()
	require.NoError(t, c.Set(0, 0, 7))
	assert.Equal(t, 1+2i, mustAt(t, d, 0, 0))
	assert.Equal(t, "[(1+2i), (0-1i)]\n", d.String())
	assert.Equal(t, 1, d.Rows())
	assert.Equal(t, 2, d.Cols())
	assert.Same(t, d.Real(), d.Real())
}
