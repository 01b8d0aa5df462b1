// SPDX-License-Identifier: MIT

// Package matrix - structured constructors, reductions and spectrum ordering.

package matrix

import (
	"math"
	"sort"
)

// NewTridiagonal builds the n×n matrix with constant bands:
// sub on the first sub-diagonal, diag on the main diagonal, super on the first super-diagonal.
//
// Implementation:
//   - Stage 1: validate n>0 and finite band values.
//   - Stage 2: one pass over rows writing at most three entries each.
//
// Errors:
//   - ErrInvalidDimensions (n ≤ 0), ErrNaNInf (non-finite band).
//
// Complexity:
//   - Time O(n²) (zero-init dominates), Space O(n²). The sparse twin in package
//     sparse stores the same operator in O(n).
//
// AI-Hints:
//   - NewTridiagonal(n, 1, -2, 1) is the unscaled 1-D second-difference operator.
func NewTridiagonal(n int, sub, diag, super float64) (*Dense, error) {
	for _, v := range [...]float64{sub, diag, super} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opTridiag, ErrNaNInf)
		}
	}
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opTridiag, err)
	}
	for i := 0; i < n; i++ {
		res.data[i*n+i] = diag
		if i > 0 {
			res.data[i*n+i-1] = sub
		}
		if i+1 < n {
			res.data[i*n+i+1] = super
		}
	}

	return res, nil
}

// Trace returns Σ m[i,i] of a square matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, atErr(opTrace, i, i, err)
		}
		sum += v
	}

	return sum, nil
}

// FrobeniusNorm returns √(Σ m[i,j]²), accumulated with math.Hypot to avoid overflow.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	norm := NormZero
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			norm = math.Hypot(norm, v)
		}

		return norm, nil
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, atErr(opFrobenius, i, j, err)
			}
			norm = math.Hypot(norm, v)
		}
	}

	return norm, nil
}

// SortEigen orders eigenpairs by ascending eigenvalue.
// Returns new slices/matrices; inputs are not mutated. Ties keep their input
// order (stable), so degenerate levels stay reproducible.
//
// Errors:
//   - ErrNilMatrix (vecs nil), ErrDimensionMismatch (len(vals) != vecs.Cols()).
//
// Complexity:
//   - Time O(n log n + n²), Space O(n²).
func SortEigen(vals []float64, vecs Matrix) ([]float64, *Dense, error) {
	if err := ValidateNotNil(vecs); err != nil {
		return nil, nil, matrixErrorf(opSortEigen, err)
	}
	if len(vals) != vecs.Cols() {
		return nil, nil, matrixErrorf(opSortEigen, ErrDimensionMismatch)
	}

	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return vals[order[x]] < vals[order[y]] })

	rows := make([]int, vecs.Rows())
	for i := range rows {
		rows[i] = i
	}
	src, err := toDense(vecs)
	if err != nil {
		return nil, nil, matrixErrorf(opSortEigen, err)
	}
	sortedVecs, err := src.Induced(rows, order)
	if err != nil {
		return nil, nil, matrixErrorf(opSortEigen, err)
	}
	sortedVals := make([]float64, len(vals))
	for i, o := range order {
		sortedVals[i] = vals[o]
	}

	return sortedVals, sortedVecs, nil
}
