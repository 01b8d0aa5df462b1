// SPDX-License-Identifier: MIT

// Package matrix - Kronecker (tensor) products.
//
// Purpose:
//   - Expand single-particle operators into a composite Hilbert space:
//     I ⊗ … ⊗ op ⊗ … ⊗ I is how spin operators acquire their place in a
//     multi-spin Hamiltonian.
//
// Layout:
//   - For A (ra×ca) and B (rb×cb): (A⊗B)[i·rb+k, j·cb+l] = A[i,j]·B[k,l].
//     Block (i,j) of the result is A[i,j]·B, so the left factor is the slow index.

package matrix

import "fmt"

// Kron returns the Kronecker product A ⊗ B as a fresh Dense.
// Implementation:
//   - Stage 1: ValidateKronOperands(a, b); allocate (ra·rb)×(ca·cb).
//   - Stage 2: *Dense fast path writes each non-zero A[i,j] block with flat strides;
//     the generic path materializes both operands once via toDense.
//
// Errors:
//   - ErrNilMatrix (nil operand).
//
// Determinism:
//   - Fixed i→j→k→l order.
//
// Complexity:
//   - Time O(ra·ca·rb·cb), Space O(ra·ca·rb·cb). Zero blocks of A are skipped.
//
// AI-Hints:
//   - Chains grow multiplicatively; for more than a handful of spins prefer sparse.Kron.
func Kron(a, b Matrix) (Matrix, error) {
	if err := ValidateKronOperands(a, b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	ra, ca, rb, cb := da.r, da.c, db.r, db.c
	res, err := NewDense(ra*rb, ca*cb)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	cols := ca * cb

	var i, j, k, l, rowBase int
	var aij float64
	for i = 0; i < ra; i++ {
		for j = 0; j < ca; j++ {
			aij = da.data[i*ca+j]
			if aij == 0 {
				continue // whole block is zero
			}
			for k = 0; k < rb; k++ {
				rowBase = (i*rb+k)*cols + j*cb
				for l = 0; l < cb; l++ {
					res.data[rowBase+l] = aij * db.data[k*cb+l]
				}
			}
		}
	}

	return res, nil
}

// KronChain folds Kron left-to-right: ms[0] ⊗ ms[1] ⊗ … ⊗ ms[k−1].
// A single factor returns a copy.
// Errors: ErrBadShape (no factors), ErrNilMatrix (any nil factor).
// Complexity: dominated by the final product, O(Π rows·cols).
func KronChain(ms ...Matrix) (Matrix, error) {
	if err := ValidateKronOperands(ms...); err != nil {
		return nil, matrixErrorf(opKron, err)
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
