// SPDX-License-Identifier: MIT

package cmatrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNotHermitian is returned when an operator that must satisfy H = Hᴴ does not,
	// within the requested tolerance.
	ErrNotHermitian = errors.New("cmatrix: matrix is not Hermitian within tol")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")
)

// Operation tags used in wrapped errors.
const (
	opNew       = "New"
	opFromParts = "FromParts"
	opAt        = "At"
	opSet       = "Set"
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opAdjoint   = "Adjoint"
	opKron      = "Kron"
	opMatVec    = "MatVec"
	opTrace     = "Trace"
	opEigen     = "EigenHermitian"
	opAbsSq     = "AbsSquared"
)

func cmatrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
