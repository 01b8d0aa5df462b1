// SPDX-License-Identifier: MIT

package spin

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpin is returned for a twice-spin value < 1 where a spin is required.
	ErrInvalidSpin = errors.New("spin: invalid spin quantum number")

	// ErrInvalidSystem flags a System with non-finite parameters or missing fields.
	ErrInvalidSystem = errors.New("spin: invalid system")

	// ErrDimensionTooLarge is returned when the product space exceeds MaxDimension.
	ErrDimensionTooLarge = errors.New("spin: Hilbert space too large")

	// ErrSiteOutOfRange is returned by Embed for a site outside dims.
	ErrSiteOutOfRange = errors.New("spin: site out of range")

	// ErrNotHermitian is returned when an assembled Hamiltonian fails the Hermiticity check.
	ErrNotHermitian = errors.New("spin: Hamiltonian is not Hermitian")
)

func spinErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
