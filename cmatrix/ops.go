// SPDX-License-Identifier: MIT

package cmatrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/spinlab/matrix"
)

func validatePair(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}

	return nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, matrix.ErrDimensionMismatch.
func Add(a, b *Dense) (*Dense, error) {
	if err := validatePair(a, b); err != nil {
		return nil, cmatrixErrorf(opAdd, err)
	}
	re, err := asDense(matrix.Add(a.re, b.re))
	if err != nil {
		return nil, cmatrixErrorf(opAdd, err)
	}
	im, err := asDense(matrix.Add(a.im, b.im))
	if err != nil {
		return nil, cmatrixErrorf(opAdd, err)
	}

	return &Dense{re: re, im: im}, nil
}

// Sub returns a − b.
// Errors: ErrNilMatrix, matrix.ErrDimensionMismatch.
func Sub(a, b *Dense) (*Dense, error) {
	if err := validatePair(a, b); err != nil {
		return nil, cmatrixErrorf(opSub, err)
	}
	re, err := asDense(matrix.Sub(a.re, b.re))
	if err != nil {
		return nil, cmatrixErrorf(opSub, err)
	}
	im, err := asDense(matrix.Sub(a.im, b.im))
	if err != nil {
		return nil, cmatrixErrorf(opSub, err)
	}

	return &Dense{re: re, im: im}, nil
}

// Scale returns alpha·a for complex alpha:
// (α+iβ)(X+iY) = (αX − βY) + i(βX + αY).
// Errors: ErrNilMatrix, matrix.ErrNaNInf.
func Scale(a *Dense, alpha complex128) (*Dense, error) {
	if a == nil {
		return nil, cmatrixErrorf(opScale, ErrNilMatrix)
	}
	if cmplx.IsNaN(alpha) || cmplx.IsInf(alpha) {
		return nil, cmatrixErrorf(opScale, matrix.ErrNaNInf)
	}
	out, err := New(a.Rows(), a.Cols())
	if err != nil {
		return nil, cmatrixErrorf(opScale, err)
	}
	ar, ai := real(alpha), imag(alpha)
	xr, xi := a.re.RawData(), a.im.RawData()
	or, oi := out.re.RawData(), out.im.RawData()
	for k := range xr {
		or[k] = ar*xr[k] - ai*xi[k]
		oi[k] = ai*xr[k] + ar*xi[k]
	}

	return out, nil
}

// Mul returns the product a·b via four real products.
// Errors: ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: 4 real GEMMs, O(r·k·c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := validatePair(a, b); err != nil {
		return nil, cmatrixErrorf(opMul, err)
	}
	re, im, err := combine(a, b, matrix.Mul)
	if err != nil {
		return nil, cmatrixErrorf(opMul, err)
	}

	return &Dense{re: re, im: im}, nil
}

// Kron returns a ⊗ b with the layout of matrix.Kron.
// Errors: ErrNilMatrix.
func Kron(a, b *Dense) (*Dense, error) {
	if err := validatePair(a, b); err != nil {
		return nil, cmatrixErrorf(opKron, err)
	}
	re, im, err := combine(a, b, matrix.Kron)
	if err != nil {
		return nil, cmatrixErrorf(opKron, err)
	}

	return &Dense{re: re, im: im}, nil
}

// KronChain folds Kron left to right over ms. A single factor returns a copy.
// Errors: matrix.ErrBadShape (no factors), ErrNilMatrix.
func KronChain(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, cmatrixErrorf(opKron, matrix.ErrBadShape)
	}
	if ms[0] == nil {
		return nil, cmatrixErrorf(opKron, ErrNilMatrix)
	}
	acc := ms[0].Clone()
	var err error
	for idx := 1; idx < len(ms); idx++ {
		if acc, err = Kron(acc, ms[idx]); err != nil {
			return nil, fmt.Errorf("factor %d: %w", idx, err)
		}
	}

	return acc, nil
}

// combine evaluates a bilinear real kernel on complex operands:
// f(A+iB, C+iD) = (f(A,C) − f(B,D)) + i(f(A,D) + f(B,C)).
// Imaginary-free operands skip the products that are identically zero.
func combine(a, b *Dense, f func(x, y matrix.Matrix) (matrix.Matrix, error)) (re, im *matrix.Dense, err error) {
	ac, err := asDense(f(a.re, b.re))
	if err != nil {
		return nil, nil, err
	}
	aReal, bReal := isZero(a.im), isZero(b.im)

	re = ac
	if !aReal && !bReal {
		bd, err := asDense(f(a.im, b.im))
		if err != nil {
			return nil, nil, err
		}
		if re, err = asDense(matrix.Sub(ac, bd)); err != nil {
			return nil, nil, err
		}
	}

	im, err = matrix.NewDense(ac.Rows(), ac.Cols())
	if err != nil {
		return nil, nil, err
	}
	if !bReal {
		ad, err := asDense(f(a.re, b.im))
		if err != nil {
			return nil, nil, err
		}
		if im, err = asDense(matrix.Add(im, ad)); err != nil {
			return nil, nil, err
		}
	}
	if !aReal {
		bc, err := asDense(f(a.im, b.re))
		if err != nil {
			return nil, nil, err
		}
		if im, err = asDense(matrix.Add(im, bc)); err != nil {
			return nil, nil, err
		}
	}

	return re, im, nil
}

func isZero(m *matrix.Dense) bool {
	for _, v := range m.RawData() {
		if v != 0 {
			return false
		}
	}

	return true
}

// AbsSquared returns the real matrix of squared moduli |a_ij|² = X∘X + Y∘Y.
// Errors: ErrNilMatrix.
func AbsSquared(a *Dense) (*matrix.Dense, error) {
	if a == nil {
		return nil, cmatrixErrorf(opAbsSq, ErrNilMatrix)
	}
	xx, err := matrix.Hadamard(a.re, a.re)
	if err != nil {
		return nil, cmatrixErrorf(opAbsSq, err)
	}
	yy, err := matrix.Hadamard(a.im, a.im)
	if err != nil {
		return nil, cmatrixErrorf(opAbsSq, err)
	}
	out, err := asDense(matrix.Add(xx, yy))
	if err != nil {
		return nil, cmatrixErrorf(opAbsSq, err)
	}

	return out, nil
}

// Adjoint returns the conjugate transpose aᴴ.
func Adjoint(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, cmatrixErrorf(opAdjoint, ErrNilMatrix)
	}
	re, err := asDense(matrix.Transpose(a.re))
	if err != nil {
		return nil, cmatrixErrorf(opAdjoint, err)
	}
	im, err := asDense(matrix.Transpose(a.im))
	if err != nil {
		return nil, cmatrixErrorf(opAdjoint, err)
	}
	if im, err = asDense(matrix.Scale(im, -1)); err != nil {
		return nil, cmatrixErrorf(opAdjoint, err)
	}

	return &Dense{re: re, im: im}, nil
}

// MatVec returns y = a·x.
// Errors: ErrNilMatrix, matrix.ErrDimensionMismatch.
func MatVec(a *Dense, x []complex128) ([]complex128, error) {
	if a == nil {
		return nil, cmatrixErrorf(opMatVec, ErrNilMatrix)
	}
	r, c := a.Rows(), a.Cols()
	if len(x) != c {
		return nil, cmatrixErrorf(opMatVec, matrix.ErrDimensionMismatch)
	}
	xr, xi := a.re.RawData(), a.im.RawData()
	y := make([]complex128, r)
	var sum complex128
	for i := 0; i < r; i++ {
		sum = 0
		for j := 0; j < c; j++ {
			sum += complex(xr[i*c+j], xi[i*c+j]) * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Trace returns Σ a[i,i].
// Errors: ErrNilMatrix, matrix.ErrDimensionMismatch.
func Trace(a *Dense) (complex128, error) {
	if a == nil {
		return 0, cmatrixErrorf(opTrace, ErrNilMatrix)
	}
	re, err := matrix.Trace(a.re)
	if err != nil {
		return 0, cmatrixErrorf(opTrace, err)
	}
	im, err := matrix.Trace(a.im)
	if err != nil {
		return 0, cmatrixErrorf(opTrace, err)
	}

	return complex(re, im), nil
}

// IsHermitian reports whether |a[i,j] − conj(a[j,i])| ≤ tol for all i, j.
// Non-square or nil input reports false.
func IsHermitian(a *Dense, tol float64) bool {
	if a == nil || a.Rows() != a.Cols() {
		return false
	}
	tol = math.Abs(tol)
	n := a.Rows()
	xr, xi := a.re.RawData(), a.im.RawData()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if math.Abs(xr[i*n+j]-xr[j*n+i]) > tol || math.Abs(xi[i*n+j]+xi[j*n+i]) > tol {
				return false
			}
		}
	}

	return true
}

// IsReal reports whether every imaginary part is within tol of zero.
func IsReal(a *Dense, tol float64) bool {
	if a == nil {
		return false
	}

	return maxAbs(a.im.RawData()) <= math.Abs(tol)
}

// AllClose reports elementwise |a−b| ≤ atol + rtol·|b| on both planes.
// Errors: ErrNilMatrix, matrix.ErrDimensionMismatch.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := validatePair(a, b); err != nil {
		return false, err
	}
	ok, err := matrix.AllClose(a.re, b.re, rtol, atol)
	if err != nil || !ok {
		return false, err
	}

	return matrix.AllClose(a.im, b.im, rtol, atol)
}
