// SPDX-License-Identifier: MIT

package spin

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/spinlab/cmatrix"
)

// TwoS is twice a spin quantum number: 1 for S=1/2, 2 for S=1, and so on.
type TwoS int

// Common spins.
const (
	Half        TwoS = 1
	One         TwoS = 2
	ThreeHalves TwoS = 3
	Two         TwoS = 4
	FiveHalves  TwoS = 5
)

// Dim returns the multiplicity 2S+1.
func (s TwoS) Dim() int { return int(s) + 1 }

// Float returns S as a float64.
func (s TwoS) Float() float64 { return float64(s) / 2 }

// String renders S as "1/2", "1", "3/2", ...
func (s TwoS) String() string {
	if s%2 == 0 {
		return fmt.Sprintf("%d", s/2)
	}

	return fmt.Sprintf("%d/2", int(s))
}

// ParseTwoS reads "1/2", "3/2", "1" or "2" into a TwoS.
// Errors: ErrInvalidSpin for anything else, including zero and negative spins.
func ParseTwoS(s string) (TwoS, error) {
	s = strings.TrimSpace(s)
	if num, ok := strings.CutSuffix(s, "/2"); ok {
		n, err := strconv.Atoi(num)
		if err != nil || n < 1 || n%2 == 0 {
			return 0, spinErrorf("ParseTwoS", ErrInvalidSpin)
		}
		return TwoS(n), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, spinErrorf("ParseTwoS", ErrInvalidSpin)
	}

	return TwoS(2 * n), nil
}

// Operators holds the matrices of one spin in the |S, m⟩ basis, m = S … −S.
type Operators struct {
	X, Y, Z     *cmatrix.Dense
	Plus, Minus *cmatrix.Dense
	Identity    *cmatrix.Dense
}

// Components returns (Sx, Sy, Sz) in Cartesian order.
func (o Operators) Components() [3]*cmatrix.Dense {
	return [3]*cmatrix.Dense{o.X, o.Y, o.Z}
}

// NewOperators returns the spin matrices for twice-spin twoS ≥ 1.
// ⟨m+1|S+|m⟩ = √(S(S+1) − m(m+1)); Sx = (S+ + S−)/2; Sy = (S+ − S−)/(2i).
func NewOperators(twoS TwoS) (Operators, error) {
	if twoS < 1 {
		return Operators{}, spinErrorf("NewOperators", ErrInvalidSpin)
	}
	n := twoS.Dim()
	s := twoS.Float()

	var ops Operators
	var err error
	for _, p := range []**cmatrix.Dense{&ops.X, &ops.Y, &ops.Z, &ops.Plus, &ops.Minus} {
		if *p, err = cmatrix.New(n, n); err != nil {
			return Operators{}, spinErrorf("NewOperators", err)
		}
	}
	if ops.Identity, err = cmatrix.Identity(n); err != nil {
		return Operators{}, spinErrorf("NewOperators", err)
	}

	for k := 0; k < n; k++ {
		m := s - float64(k)
		if err = ops.Z.Set(k, k, complex(m, 0)); err != nil {
			return Operators{}, spinErrorf("NewOperators", err)
		}
		if k == 0 {
			continue
		}
		// S+ raises column k (m) to row k−1 (m+1).
		c := math.Sqrt(s*(s+1) - m*(m+1))
		for _, set := range []struct {
			op   *cmatrix.Dense
			i, j int
			v    complex128
		}{
			{ops.Plus, k - 1, k, complex(c, 0)},
			{ops.Minus, k, k - 1, complex(c, 0)},
			{ops.X, k - 1, k, complex(c/2, 0)},
			{ops.X, k, k - 1, complex(c/2, 0)},
			{ops.Y, k - 1, k, complex(0, -c/2)},
			{ops.Y, k, k - 1, complex(0, c/2)},
		} {
			if err = set.op.Set(set.i, set.j, set.v); err != nil {
				return Operators{}, spinErrorf("NewOperators", err)
			}
		}
	}

	return ops, nil
}

// Embed returns I ⊗ … ⊗ op ⊗ … ⊗ I with op at position site of the product
// space whose factor dimensions are dims.
// Errors: ErrSiteOutOfRange, ErrInvalidSystem (op shape differs from dims[site]).
func Embed(op *cmatrix.Dense, site int, dims []int) (*cmatrix.Dense, error) {
	if site < 0 || site >= len(dims) {
		return nil, spinErrorf("Embed", ErrSiteOutOfRange)
	}
	if op == nil || op.Rows() != dims[site] || op.Cols() != dims[site] {
		return nil, spinErrorf("Embed", ErrInvalidSystem)
	}
	factors := make([]*cmatrix.Dense, len(dims))
	for k, d := range dims {
		if k == site {
			factors[k] = op
			continue
		}
		id, err := cmatrix.Identity(d)
		if err != nil {
			return nil, spinErrorf("Embed", err)
		}
		factors[k] = id
	}
	out, err := cmatrix.KronChain(factors...)
	if err != nil {
		return nil, spinErrorf("Embed", err)
	}

	return out, nil
}
