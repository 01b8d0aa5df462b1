// SPDX-License-Identifier: MIT
// Package matrix_test - kernel correctness for Add/Sub/Mul/Transpose/Scale/Hadamard/MatVec/Eigen.
// Each kernel is exercised on both the *Dense fast path and the hide{} fallback.

package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/spinlab/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSubHadamard_FastAndFallback(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 2, 3, []float64{6, 5, 4, 3, 2, 1})

	cases := []struct {
		name string
		op   func(x, y matrix.Matrix) (matrix.Matrix, error)
		want [][]float64
	}{
		{"Add", matrix.Add, [][]float64{{7, 7, 7}, {7, 7, 7}}},
		{"Sub", matrix.Sub, [][]float64{{-5, -3, -1}, {1, 3, 5}}},
		{"Hadamard", matrix.Hadamard, [][]float64{{6, 10, 12}, {12, 10, 6}}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			fast, err := tc.op(a, b)
			require.NoError(t, err)
			CompareExact(t, tc.want, fast)

			slow, err := tc.op(hide{a}, hide{b})
			require.NoError(t, err)
			CompareExact(t, tc.want, slow)
		})
	}
}

func TestBinaryKernels_Errors(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 2)
	b := MustDense(t, 3, 2)

	_, err := matrix.Add(a, b)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(a, b) // 2x2 · 3x2
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, []float64{1})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Scale(a, math.NaN())
	AssertErrorIs(t, err, matrix.ErrNaNInf)
}

func TestMul_FastAndFallback(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 0, 2, -1, 3, 1})
	b := NewFilledDense(t, 3, 2, []float64{3, 1, 2, 1, 1, 0})
	want := [][]float64{{5, 1}, {4, 2}}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, want, fast)

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, want, slow)
}

func TestTransposeScaleMatVec(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at)
	at2, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at2)

	s, err := matrix.Scale(hide{a}, -2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}, s)

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)
	y2, err := matrix.MatVec(hide{a}, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, y, y2)
}

func TestEigen_Errors(t *testing.T) {
	t.Parallel()

	// non-square → ErrDimensionMismatch
	_, _, err := matrix.Eigen(MustDense(t, 3, 4), 1e-10, 50)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	// not symmetric within tol → ErrAsymmetry
	asym := NewFilledDense(t, 2, 2, []float64{0, 1, 2, 0})
	_, _, err = matrix.Eigen(asym, 1e-12, 50)
	AssertErrorIs(t, err, matrix.ErrAsymmetry)

	// zero budget with nonzero off-diagonals → ErrMatrixEigenFailed
	sym := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 3})
	_, _, err = matrix.Eigen(sym, 1e-12, 0)
	AssertErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}

// TestEigen_Diagonal_NoRotation: diagonal matrices return exact diagonal as eigenvalues and Q=I.
func TestEigen_Diagonal_NoRotation(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 3, 3, []float64{1, 0, 0, 0, -2, 0, 0, 0, 5})
	vals, Q, err := matrix.Eigen(A, 1e-12, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, -2, 5}, vals)
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Q)
	CompareClose(t, Q, I, 0, 0)
}

// TestEigen_NearDiagonalShortcut: off-diagonals within tol skip the sweeps on
// both the *Dense path and the hide{} fallback, and Q is a fresh identity.
func TestEigen_NearDiagonalShortcut(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []float64{4, 1e-13, 1e-13, -1})
	for _, m := range []matrix.Matrix{A, hide{A}} {
		vals, Q, err := matrix.Eigen(m, 1e-12, 0)
		require.NoError(t, err)
		require.Equal(t, []float64{4, -1}, vals)
		CompareExact(t, [][]float64{{1, 0}, {0, 1}}, Q)
	}

	// the shortcut must not alias the input
	_, Q, err := matrix.Eigen(A, 1e-12, 0)
	require.NoError(t, err)
	MustSet(t, Q.(*matrix.Dense), 0, 1, 7)
	require.Equal(t, 1e-13, MustAt(t, A, 0, 1))
}

// TestEigen_2x2_Analytic: [[2,1],[1,2]] has eigenvalues {1,3}.
func TestEigen_2x2_Analytic(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	vals, _, err := matrix.Eigen(hide{A}, 1e-12, 100)
	require.NoError(t, err)
	sort.Float64s(vals)
	require.InDelta(t, 1.0, vals[0], 1e-12)
	require.InDelta(t, 3.0, vals[1], 1e-12)
}

// TestEigen_Reconstruction: A·Q ≈ Q·Λ and QᵀQ ≈ I for a random symmetric 8×8.
func TestEigen_Reconstruction(t *testing.T) {
	t.Parallel()

	const n = 8
	A := RandSymmetric(t, n, 42)
	vals, Q, err := matrix.EigenSym(A, matrix.WithEpsilon(1e-12))
	require.NoError(t, err)
	require.True(t, sort.Float64sAreSorted(vals))

	AQ, err := matrix.Mul(A, Q)
	require.NoError(t, err)
	lambda := MustDense(t, n, n)
	for i, v := range vals {
		MustSet(t, lambda, i, i, v)
	}
	QL, err := matrix.Mul(Q, lambda)
	require.NoError(t, err)
	CompareClose(t, AQ, QL, 0, 1e-9)

	Qt, err := matrix.Transpose(Q)
	require.NoError(t, err)
	QtQ, err := matrix.Mul(Qt, Q)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	CompareClose(t, QtQ, I, 0, 1e-9)

	tr, err := matrix.Trace(A)
	require.NoError(t, err)
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	require.InDelta(t, tr, sum, 1e-9)
}

// TestEigen_Tridiagonal_Analytic: spectrum of tridiag(1,-2,1) is -2+2cos(kπ/(n+1)).
func TestEigen_Tridiagonal_Analytic(t *testing.T) {
	t.Parallel()

	const n = 12
	A, err := matrix.NewTridiagonal(n, 1, -2, 1)
	require.NoError(t, err)
	vals, _, err := matrix.EigenSym(A, matrix.WithEpsilon(1e-13))
	require.NoError(t, err)

	want := make([]float64, n)
	for k := 1; k <= n; k++ {
		want[k-1] = -2 + 2*math.Cos(float64(k)*math.Pi/float64(n+1))
	}
	sort.Float64s(want)
	for i := range want {
		require.InDeltaf(t, want[i], vals[i], 1e-10, "eigenvalue %d", i)
	}
}
