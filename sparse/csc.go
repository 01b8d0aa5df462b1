// SPDX-License-Identifier: MIT

package sparse

import (
	"sort"

	"github.com/katalvlaran/spinlab/matrix"
)

// CSC is a compressed sparse column matrix. Column j owns
// indices[indptr[j]:indptr[j+1]] (ascending rows) and the matching data.
type CSC struct {
	r, c    int
	indptr  []int
	indices []int
	data    []float64
}

// Rows returns the number of rows.
func (m *CSC) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CSC) Cols() int { return m.c }

// NNZ returns the number of stored entries.
func (m *CSC) NNZ() int { return len(m.data) }

// Bytes returns the footprint of indptr, indices and data.
func (m *CSC) Bytes() int64 {
	return int64(len(m.indptr))*intBytes + int64(len(m.indices))*intBytes + int64(len(m.data))*floatBytes
}

// At returns m[i,j] (0 for structural zeros).
// Errors: ErrIndexOutOfRange.
func (m *CSC) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, sparseErrorf("CSC.At", ErrIndexOutOfRange)
	}
	lo, hi := m.indptr[j], m.indptr[j+1]
	p := lo + sort.SearchInts(m.indices[lo:hi], i)
	if p < hi && m.indices[p] == i {
		return m.data[p], nil
	}

	return 0, nil
}

// MatVec returns y = m·x by scattering columns.
// Errors: ErrDimensionMismatch.
func (m *CSC) MatVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, sparseErrorf("CSC.MatVec", ErrDimensionMismatch)
	}
	y := make([]float64, m.r)
	for j := 0; j < m.c; j++ {
		if x[j] == 0 {
			continue
		}
		for p := m.indptr[j]; p < m.indptr[j+1]; p++ {
			y[m.indices[p]] += m.data[p] * x[j]
		}
	}

	return y, nil
}

// ToCSR converts back to compressed rows.
func (m *CSC) ToCSR() *CSR {
	// the CSC arrays are the CSR arrays of mᵀ
	t := &CSR{r: m.c, c: m.r, indptr: m.indptr, indices: m.indices, data: m.data}

	return t.Transpose()
}

// ToDense expands m into a *matrix.Dense.
func (m *CSC) ToDense() (*matrix.Dense, error) {
	out, err := matrix.NewDense(m.r, m.c)
	if err != nil {
		return nil, sparseErrorf("CSC.ToDense", err)
	}
	raw := out.RawData()
	for j := 0; j < m.c; j++ {
		for p := m.indptr[j]; p < m.indptr[j+1]; p++ {
			raw[m.indices[p]*m.c+j] = m.data[p]
		}
	}

	return out, nil
}
