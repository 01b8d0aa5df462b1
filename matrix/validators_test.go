// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/spinlab/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquareNonNil covers nil inputs, square and non-square cases.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquareNonNil(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquareNonNil(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 3, 2)), matrix.ErrDimensionMismatch)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := NewFilledDense(t, 2, 2, []float64{1, 2, 2, 1})
	near := NewFilledDense(t, 2, 2, []float64{1, 2, 2 + 1e-12, 1})
	far := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 1})

	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(near, 1e-9))
	require.NoError(t, matrix.ValidateSymmetric(near, -1e-9)) // negative tol is flipped
	require.ErrorIs(t, matrix.ValidateSymmetric(near, 0), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(far, 1e-9), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
}

func TestIsZeroOffDiagonal(t *testing.T) {
	t.Parallel()

	diag := NewFilledDense(t, 2, 2, []float64{4, 0, 1e-12, 5})
	ok, err := matrix.IsZeroOffDiagonal(diag, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.IsZeroOffDiagonal(diag, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.IsZeroOffDiagonal(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValidateVecAndMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, MustDense(t, 2, 3)), matrix.ErrNilMatrix)

	require.ErrorIs(t, matrix.ValidateKronOperands(), matrix.ErrBadShape)
	require.ErrorIs(t, matrix.ValidateKronOperands(MustDense(t, 1, 1), nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateKronOperands(MustDense(t, 1, 1), MustDense(t, 2, 2)))
}
