// SPDX-License-Identifier: MIT

package spin

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/spinlab/cmatrix"
)

// Defaults for Diagonalize.
const (
	DefaultTolerance = 1e-9
	DefaultMaxIter   = 0 // 0 lets cmatrix pick a budget from the dimension
)

const panicTolInvalid = "spin: WithTolerance: tol must be finite, non-negative"

// Option tunes Diagonalize.
type Option func(*options)

type options struct {
	tol     float64
	maxIter int
}

// WithTolerance sets the Hermiticity and convergence tolerance (MHz).
// Panics on NaN, Inf or negative tol.
func WithTolerance(tol float64) Option {
	if !finite(tol) || tol < 0 {
		panic(panicTolInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithMaxIter sets the Jacobi rotation budget; n ≤ 0 keeps the automatic budget.
func WithMaxIter(n int) Option {
	return func(o *options) { o.maxIter = n }
}

// Spectrum is the eigen-decomposition of a spin Hamiltonian.
type Spectrum struct {
	// Energies in MHz, ascending.
	Energies []float64
	// Vectors holds eigenvectors as columns, matching Energies.
	Vectors *cmatrix.Dense
	// Basis labels every product state, e.g. "|+1/2,-1/2⟩".
	Basis []string
	// Dominant is the index into Basis of the largest |amplitude|² per level.
	Dominant []int
	// Dims are the factor dimensions of the product space.
	Dims []int
}

// Len returns the number of levels.
func (s *Spectrum) Len() int { return len(s.Energies) }

// DominantLabel returns the basis label that dominates level i.
func (s *Spectrum) DominantLabel(i int) string { return s.Basis[s.Dominant[i]] }

// Weight returns |⟨basis j|level i⟩|².
func (s *Spectrum) Weight(i, j int) (float64, error) {
	z, err := s.Vectors.At(j, i)
	if err != nil {
		return 0, err
	}

	return real(z)*real(z) + imag(z)*imag(z), nil
}

// Diagonalize builds the Hamiltonian of sys and returns its spectrum.
// Errors: as Build, plus cmatrix/matrix sentinels from EigenHermitian.
func Diagonalize(sys System, opts ...Option) (*Spectrum, error) {
	o := options{tol: DefaultTolerance, maxIter: DefaultMaxIter}
	for _, set := range opts {
		set(&o)
	}

	h, err := Build(sys)
	if err != nil {
		return nil, spinErrorf("Diagonalize", err)
	}
	vals, vecs, err := cmatrix.EigenHermitian(h, o.tol, o.maxIter)
	if err != nil {
		return nil, spinErrorf("Diagonalize", err)
	}

	spec := &Spectrum{
		Energies: vals,
		Vectors:  vecs,
		Basis:    BasisLabels(sys),
		Dominant: make([]int, len(vals)),
		Dims:     sys.Dims(),
	}
	weights, err := cmatrix.AbsSquared(vecs)
	if err != nil {
		return nil, spinErrorf("Diagonalize", err)
	}
	n, ws := len(vals), weights.RawData()
	for i := range vals {
		best := -1.0
		for j := range spec.Basis {
			// Row j is the basis state, column i the level.
			if w := ws[j*n+i]; w > best+1e-12 {
				best, spec.Dominant[i] = w, j
			}
		}
	}

	return spec, nil
}

// BasisLabels lists the product basis in matrix order, e.g. for hydrogen
// |+1/2,+1/2⟩, |+1/2,-1/2⟩, |-1/2,+1/2⟩, |-1/2,-1/2⟩.
func BasisLabels(sys System) []string {
	spins := make([]TwoS, 0, 1+len(sys.Nuclei))
	spins = append(spins, sys.TwoS)
	for _, n := range sys.Nuclei {
		spins = append(spins, n.TwoI)
	}

	labels := []string{""}
	for _, s := range spins {
		next := make([]string, 0, len(labels)*s.Dim())
		for _, prefix := range labels {
			for k := 0; k < s.Dim(); k++ {
				m := FormatTwoM(int(s) - 2*k)
				if prefix == "" {
					next = append(next, m)
				} else {
					next = append(next, prefix+","+m)
				}
			}
		}
		labels = next
	}
	for i, l := range labels {
		labels[i] = "|" + l + "⟩"
	}

	return labels
}

// FormatTwoM renders a projection given as twice m: 1 → "+1/2", -2 → "-1", 0 → "0".
func FormatTwoM(twoM int) string {
	switch {
	case twoM == 0:
		return "0"
	case twoM%2 == 0:
		return fmt.Sprintf("%+d", twoM/2)
	default:
		return fmt.Sprintf("%+d/2", twoM)
	}
}

// String prints one line per level: index, energy and dominant basis state.
func (s *Spectrum) String() string {
	var b strings.Builder
	for i, e := range s.Energies {
		w, _ := s.Weight(i, s.Dominant[i])
		fmt.Fprintf(&b, "%3d %14.6f MHz  %s (%.3f)\n", i, e, s.DominantLabel(i), w)
	}

	return b.String()
}

// Gaps returns consecutive level spacings E[i+1] − E[i].
func (s *Spectrum) Gaps() []float64 {
	if len(s.Energies) < 2 {
		return nil
	}
	out := make([]float64, len(s.Energies)-1)
	for i := range out {
		out[i] = math.Abs(s.Energies[i+1] - s.Energies[i])
	}

	return out
}
