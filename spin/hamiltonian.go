// SPDX-License-Identifier: MIT

package spin

import (
	"github.com/katalvlaran/spinlab/cmatrix"
)

// hermitianTol is the absolute tolerance (MHz) of the post-assembly Hermiticity check.
const hermitianTol = 1e-9

// Build assembles the spin Hamiltonian of sys in MHz.
//
// Implementation:
//   - Stage 1: Validate; build single-spin operators for the electron and each nucleus.
//   - Stage 2: embed every component into the product space (electron first).
//   - Stage 3: accumulate the electron Zeeman, nuclear Zeeman and hyperfine terms;
//     zero coefficients are skipped.
//   - Stage 4: check Hermiticity.
//
// Errors: ErrInvalidSpin, ErrInvalidSystem, ErrDimensionTooLarge, ErrNotHermitian.
func Build(sys System) (*cmatrix.Dense, error) {
	if err := sys.Validate(); err != nil {
		return nil, spinErrorf("Build", err)
	}
	b, err := newBasis(sys)
	if err != nil {
		return nil, spinErrorf("Build", err)
	}

	h, err := cmatrix.New(b.dim, b.dim)
	if err != nil {
		return nil, spinErrorf("Build", err)
	}
	acc := accumulator{h: h}

	// Electron Zeeman: ge·μB/h·(B·S).
	ez := sys.GE * BohrMHzPerTesla
	for a := 0; a < 3; a++ {
		acc.add(ez*sys.Field[a], b.electron[a])
	}

	for k, n := range sys.Nuclei {
		// Nuclear Zeeman: −gn·μN/h·(B·I).
		nz := -n.GN * NuclearMHzPerTesla
		for a := 0; a < 3; a++ {
			acc.add(nz*sys.Field[a], b.nuclei[k][a])
		}
		// Hyperfine: Σ_ab A_ab·S_a·I_b.
		t := n.Coupling()
		for a := 0; a < 3; a++ {
			for c := 0; c < 3; c++ {
				if t[a][c] == 0 {
					continue
				}
				prod, err := cmatrix.Mul(b.electron[a], b.nuclei[k][c])
				if err != nil {
					return nil, spinErrorf("Build", err)
				}
				acc.add(t[a][c], prod)
			}
		}
	}
	if acc.err != nil {
		return nil, spinErrorf("Build", acc.err)
	}
	if !cmatrix.IsHermitian(acc.h, hermitianTol) {
		return nil, spinErrorf("Build", ErrNotHermitian)
	}

	return acc.h, nil
}

// basis holds the embedded Cartesian spin components of a System.
type basis struct {
	dims     []int
	dim      int
	electron [3]*cmatrix.Dense
	nuclei   [][3]*cmatrix.Dense
}

func newBasis(sys System) (*basis, error) {
	b := &basis{dims: sys.Dims(), dim: sys.Dimension()}
	var err error
	if b.electron, err = embedded(sys.TwoS, 0, b.dims); err != nil {
		return nil, err
	}
	b.nuclei = make([][3]*cmatrix.Dense, len(sys.Nuclei))
	for k, n := range sys.Nuclei {
		if b.nuclei[k], err = embedded(n.TwoI, k+1, b.dims); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func embedded(twoS TwoS, site int, dims []int) ([3]*cmatrix.Dense, error) {
	var out [3]*cmatrix.Dense
	ops, err := NewOperators(twoS)
	if err != nil {
		return out, err
	}
	for a, op := range ops.Components() {
		if out[a], err = Embed(op, site, dims); err != nil {
			return out, err
		}
	}

	return out, nil
}

// accumulator sums coefficient·operator terms and remembers the first error.
type accumulator struct {
	h   *cmatrix.Dense
	err error
}

func (a *accumulator) add(coef float64, op *cmatrix.Dense) {
	if a.err != nil || coef == 0 {
		return
	}
	term, err := cmatrix.Scale(op, complex(coef, 0))
	if err != nil {
		a.err = err
		return
	}
	a.h, a.err = cmatrix.Add(a.h, term)
}
