// SPDX-License-Identifier: MIT

package spin

import "math"

// MaxDimension caps the product-space dimension Build accepts. Dense complex
// diagonalization beyond it is out of reach for the Jacobi solver.
const MaxDimension = 512

// Vector is a Cartesian 3-vector (x, y, z).
type Vector [3]float64

// Norm returns the Euclidean length.
func (v Vector) Norm() float64 { return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]) }

// Unit returns v/|v|, or ẑ for the zero vector.
func (v Vector) Unit() Vector {
	n := v.Norm()
	if n == 0 {
		return Vector{0, 0, 1}
	}

	return Vector{v[0] / n, v[1] / n, v[2] / n}
}

// Scaled returns s·v.
func (v Vector) Scaled(s float64) Vector { return Vector{s * v[0], s * v[1], s * v[2]} }

// Tensor is a 3×3 hyperfine coupling tensor in MHz, indexed [S component][I component].
type Tensor [3][3]float64

// IsotropicTensor returns a·𝟙.
func IsotropicTensor(a float64) Tensor {
	return Tensor{{a, 0, 0}, {0, a, 0}, {0, 0, a}}
}

// AxialTensor returns diag(perp, perp, par), the common axial hyperfine form.
func AxialTensor(perp, par float64) Tensor {
	return Tensor{{perp, 0, 0}, {0, perp, 0}, {0, 0, par}}
}

// Nucleus is one nuclear spin coupled to the electron.
// When Tensor is nil the coupling is the isotropic A.
type Nucleus struct {
	Label  string
	TwoI   TwoS
	GN     float64
	A      float64
	Tensor *Tensor
}

// Coupling returns the effective hyperfine tensor.
func (n Nucleus) Coupling() Tensor {
	if n.Tensor != nil {
		return *n.Tensor
	}

	return IsotropicTensor(n.A)
}

// NucleusFor fills spin and g-factor from the isotope table.
func NucleusFor(label string, a float64) (Nucleus, bool) {
	iso, ok := LookupIsotope(label)
	if !ok {
		return Nucleus{}, false
	}

	return Nucleus{Label: iso.Label, TwoI: iso.TwoI, GN: iso.GN, A: a}, true
}

// System is an electron spin plus nuclei in a static field (tesla).
type System struct {
	TwoS   TwoS
	GE     float64
	Field  Vector
	Nuclei []Nucleus
}

// Hydrogen returns the ground-state hydrogen atom in a field of b tesla along z.
func Hydrogen(b float64) System {
	h, _ := NucleusFor("1H", HydrogenHyperfineMHz)

	return System{
		TwoS:   Half,
		GE:     GFreeElectron,
		Field:  Vector{0, 0, b},
		Nuclei: []Nucleus{h},
	}
}

// Dims returns the factor dimensions: electron first, then nuclei in order.
func (s System) Dims() []int {
	dims := make([]int, 0, 1+len(s.Nuclei))
	dims = append(dims, s.TwoS.Dim())
	for _, n := range s.Nuclei {
		dims = append(dims, n.TwoI.Dim())
	}

	return dims
}

// Dimension returns the product-space dimension (2S+1)·Π(2I_k+1).
func (s System) Dimension() int {
	d := 1
	for _, k := range s.Dims() {
		d *= k
	}

	return d
}

// WithField returns a copy of s with the field replaced.
func (s System) WithField(b Vector) System {
	out := s
	out.Nuclei = append([]Nucleus(nil), s.Nuclei...)
	out.Field = b

	return out
}

// Validate checks spins, finiteness of every parameter and the size cap.
func (s System) Validate() error {
	if s.TwoS < 1 {
		return spinErrorf("Validate", ErrInvalidSpin)
	}
	if !finite(s.GE) || !finite(s.Field[0]) || !finite(s.Field[1]) || !finite(s.Field[2]) {
		return spinErrorf("Validate", ErrInvalidSystem)
	}
	dim := s.TwoS.Dim()
	if dim > MaxDimension {
		return spinErrorf("Validate", ErrDimensionTooLarge)
	}
	for _, n := range s.Nuclei {
		if n.TwoI < 1 {
			return spinErrorf("Validate", ErrInvalidSpin)
		}
		if !finite(n.GN) || !finite(n.A) {
			return spinErrorf("Validate", ErrInvalidSystem)
		}
		if n.Tensor != nil {
			for _, row := range n.Tensor {
				for _, v := range row {
					if !finite(v) {
						return spinErrorf("Validate", ErrInvalidSystem)
					}
				}
			}
		}
		// dim·d > MaxDimension, tested by division so huge spins cannot overflow.
		if n.TwoI.Dim() > MaxDimension/dim {
			return spinErrorf("Validate", ErrDimensionTooLarge)
		}
		dim *= n.TwoI.Dim()
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
