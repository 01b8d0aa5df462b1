// SPDX-License-Identifier: MIT

package cmatrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/katalvlaran/spinlab/matrix"
)

// Dense is a complex r×c matrix stored as real and imaginary planes.
// Both planes always share one shape.
type Dense struct {
	re, im *matrix.Dense
}

// New returns a zero r×c complex matrix.
// Errors: matrix.ErrInvalidDimensions.
func New(rows, cols int) (*Dense, error) {
	re, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, cmatrixErrorf(opNew, err)
	}
	im, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, cmatrixErrorf(opNew, err)
	}

	return &Dense{re: re, im: im}, nil
}

// Identity returns the n×n complex identity.
func Identity(n int) (*Dense, error) {
	d, err := New(n, n)
	if err != nil {
		return nil, err
	}
	re := d.re.RawData()
	for i := 0; i < n; i++ {
		re[i*n+i] = 1
	}

	return d, nil
}

// FromReal lifts a real matrix into the complex plane (imaginary part zero).
// The input is copied.
func FromReal(m matrix.Matrix) (*Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opFromParts, err)
	}
	re, err := denseCopy(m)
	if err != nil {
		return nil, cmatrixErrorf(opFromParts, err)
	}
	im, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, cmatrixErrorf(opFromParts, err)
	}

	return &Dense{re: re, im: im}, nil
}

// FromParts builds re + i·im. Both inputs are copied and must share a shape.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func FromParts(re, im matrix.Matrix) (*Dense, error) {
	if err := matrix.ValidateBinarySameShape(re, im); err != nil {
		return nil, cmatrixErrorf(opFromParts, err)
	}
	r, err := denseCopy(re)
	if err != nil {
		return nil, cmatrixErrorf(opFromParts, err)
	}
	i, err := denseCopy(im)
	if err != nil {
		return nil, cmatrixErrorf(opFromParts, err)
	}

	return &Dense{re: r, im: i}, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.re.Rows() }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.re.Cols() }

// Real returns the real plane. The result aliases d.
func (d *Dense) Real() *matrix.Dense { return d.re }

// Imag returns the imaginary plane. The result aliases d.
func (d *Dense) Imag() *matrix.Dense { return d.im }

// At returns d[i,j].
// Errors: matrix.ErrOutOfRange.
func (d *Dense) At(i, j int) (complex128, error) {
	x, err := d.re.At(i, j)
	if err != nil {
		return 0, cmatrixErrorf(opAt, err)
	}
	y, err := d.im.At(i, j)
	if err != nil {
		return 0, cmatrixErrorf(opAt, err)
	}

	return complex(x, y), nil
}

// Set writes d[i,j] = v.
// Errors: matrix.ErrOutOfRange, matrix.ErrNaNInf.
func (d *Dense) Set(i, j int, v complex128) error {
	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		return cmatrixErrorf(opSet, matrix.ErrNaNInf)
	}
	if err := d.re.Set(i, j, real(v)); err != nil {
		return cmatrixErrorf(opSet, err)
	}
	if err := d.im.Set(i, j, imag(v)); err != nil {
		return cmatrixErrorf(opSet, err)
	}

	return nil
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	return &Dense{re: d.re.Clone().(*matrix.Dense), im: d.im.Clone().(*matrix.Dense)}
}

// String formats rows as "[a, b]" with complex entries printed by %g.
func (d *Dense) String() string {
	var b strings.Builder
	re, im := d.re.RawData(), d.im.RawData()
	c := d.Cols()
	for i := 0; i < d.Rows(); i++ {
		b.WriteString("[")
		for j := 0; j < c; j++ {
			fmt.Fprintf(&b, "%g", complex(re[i*c+j], im[i*c+j]))
			if j+1 < c {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// denseCopy materializes any matrix.Matrix as an independent *matrix.Dense.
func denseCopy(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}
	out, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// asDense narrows a kernel result to *matrix.Dense. Every matrix kernel used in
// this package allocates through NewDense, so the assertion is total.
func asDense(m matrix.Matrix, err error) (*matrix.Dense, error) {
	if err != nil {
		return nil, err
	}

	return m.(*matrix.Dense), nil
}

func maxAbs(xs []float64) float64 {
	var out float64
	for _, x := range xs {
		out = math.Max(out, math.Abs(x))
	}

	return out
}
