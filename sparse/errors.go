// SPDX-License-Identifier: MIT

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates non-positive dimensions or malformed compressed arrays.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrIndexOutOfRange indicates a row or column index outside the matrix.
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNotSymmetric is returned by Lanczos for a non-symmetric operator.
	ErrNotSymmetric = errors.New("sparse: matrix is not symmetric")

	// ErrNoConvergence is returned when Lanczos exhausts its iteration budget.
	ErrNoConvergence = errors.New("sparse: Lanczos did not converge")

	// ErrNaNInf indicates a non-finite value where finite values are required.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")
)

func sparseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
