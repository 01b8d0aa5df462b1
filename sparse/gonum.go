// SPDX-License-Identifier: MIT

package sparse

import (
	"math"

	jbsparse "github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Gonum returns a copy of m as a github.com/james-bowman/sparse CSR, which
// satisfies gonum's mat.Matrix. The arrays are copied, so the result may be
// mutated without touching m.
func (m *CSR) Gonum() *jbsparse.CSR {
	indptr := append([]int(nil), m.indptr...)
	indices := append([]int(nil), m.indices...)
	data := append([]float64(nil), m.data...)

	return jbsparse.NewCSR(m.r, m.c, indptr, indices, data)
}

// FromGonum compresses any gonum matrix, dropping entries with |x| ≤ tol.
// Sparse james-bowman matrices are walked by their non-zeros only.
// Errors: ErrBadShape (empty), ErrNaNInf (tol or an entry).
func FromGonum(a mat.Matrix, tol float64) (*CSR, error) {
	if a == nil {
		return nil, sparseErrorf("FromGonum", ErrBadShape)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return nil, sparseErrorf("FromGonum", ErrNaNInf)
	}
	r, c := a.Dims()
	coo, err := NewCOO(r, c)
	if err != nil {
		return nil, sparseErrorf("FromGonum", err)
	}
	keep := func(i, j int, v float64) {
		// NaN fails every comparison and must reach Append to be rejected.
		if err == nil && !(math.Abs(v) <= tol) {
			err = coo.Append(i, j, v)
		}
	}
	if nz, ok := a.(mat.NonZeroDoer); ok {
		nz.DoNonZero(keep)
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				keep(i, j, a.At(i, j))
			}
		}
	}
	if err != nil {
		return nil, sparseErrorf("FromGonum", err)
	}

	return coo.ToCSR(), nil
}
