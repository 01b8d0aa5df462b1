// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spinlab/cmatrix"
	"github.com/katalvlaran/spinlab/sparse"
	"github.com/katalvlaran/spinlab/spin"
	"github.com/spf13/cobra"
)

// addFieldFlag registers --field, which overrides system.field for one run.
func addFieldFlag(cmd *cobra.Command) {
	cmd.Flags().Float64Slice("field", nil, "Field in tesla: one value along z, or x,y,z")
}

// spinSystem resolves the configured system, applying --field when set.
func spinSystem(cmd *cobra.Command) (spin.System, error) {
	sys, err := cfg.SpinSystem()
	if err != nil {
		return spin.System{}, err
	}
	if !cmd.Flags().Changed("field") {
		return sys, nil
	}
	f, _ := cmd.Flags().GetFloat64Slice("field")
	switch len(f) {
	case 1:
		sys = sys.WithField(spin.Vector{0, 0, f[0]})
	case 3:
		sys = sys.WithField(spin.Vector{f[0], f[1], f[2]})
	default:
		return spin.System{}, fmt.Errorf("--field takes 1 or 3 values, got %d", len(f))
	}
	if err := sys.Validate(); err != nil {
		return spin.System{}, err
	}

	return sys, nil
}

// finiteFlag rejects NaN and ±Inf given on the command line, which bypass config validation.
func finiteFlag(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("--%s must be finite, got %g", name, v)
	}

	return nil
}

func solverOptions() []spin.Option {
	return []spin.Option{
		spin.WithTolerance(cfg.Solver.Tolerance),
		spin.WithMaxIter(cfg.Solver.MaxIter),
	}
}

// laplacian returns the n-point Dirichlet Laplacian on the unit interval.
func laplacian(n int) (*sparse.CSR, float64, error) {
	if n < 1 {
		return nil, 0, fmt.Errorf("size must be positive, got %d", n)
	}
	h := 1 / float64(n+1)
	l, err := sparse.Laplacian1D(n, h)
	if err != nil {
		return nil, 0, err
	}

	return l, h, nil
}

// hamiltonianPattern keeps every entry of h whose modulus exceeds tol, as |h_ij|.
func hamiltonianPattern(h *cmatrix.Dense, tol float64) (*sparse.CSR, error) {
	coo, err := sparse.NewCOO(h.Rows(), h.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < h.Rows(); i++ {
		for j := 0; j < h.Cols(); j++ {
			z, err := h.At(i, j)
			if err != nil {
				return nil, err
			}
			if v := math.Hypot(real(z), imag(z)); v > tol {
				if err := coo.Append(i, j, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return coo.ToCSR(), nil
}
