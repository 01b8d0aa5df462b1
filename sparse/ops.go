// SPDX-License-Identifier: MIT

package sparse

import (
	"math"
	"sort"
)

// Mul returns m·b with Gustavson's row-by-row SpGEMM.
//
// Implementation:
//   - For each row i of m, scatter m[i,k]·b[k,:] into a dense accumulator
//     indexed by column, remembering which columns were touched.
//   - Gather touched columns in ascending order; exact zeros are dropped.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(flops + nnz(out)·log) with an O(cols) workspace.
func (m *CSR) Mul(b *CSR) (*CSR, error) {
	if m.c != b.r {
		return nil, sparseErrorf("CSR.Mul", ErrDimensionMismatch)
	}
	out := &CSR{r: m.r, c: b.c, indptr: make([]int, m.r+1)}
	acc := make([]float64, b.c)
	mark := make([]int, b.c)
	for j := range mark {
		mark[j] = -1
	}
	touched := make([]int, 0, b.c)

	for i := 0; i < m.r; i++ {
		touched = touched[:0]
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			k, a := m.indices[p], m.data[p]
			for q := b.indptr[k]; q < b.indptr[k+1]; q++ {
				j := b.indices[q]
				if mark[j] != i {
					mark[j] = i
					acc[j] = 0
					touched = append(touched, j)
				}
				acc[j] += a * b.data[q]
			}
		}
		sort.Ints(touched)
		for _, j := range touched {
			if acc[j] != 0 {
				out.indices = append(out.indices, j)
				out.data = append(out.data, acc[j])
			}
		}
		out.indptr[i+1] = len(out.data)
	}

	return out, nil
}

// Add returns m + b by merging sorted rows. Entries that cancel are dropped.
// Errors: ErrDimensionMismatch.
// Complexity: O(nnz(m) + nnz(b)).
func (m *CSR) Add(b *CSR) (*CSR, error) {
	if m.r != b.r || m.c != b.c {
		return nil, sparseErrorf("CSR.Add", ErrDimensionMismatch)
	}
	out := &CSR{r: m.r, c: m.c, indptr: make([]int, m.r+1)}
	emit := func(j int, v float64) {
		if v != 0 {
			out.indices = append(out.indices, j)
			out.data = append(out.data, v)
		}
	}
	for i := 0; i < m.r; i++ {
		p, pe := m.indptr[i], m.indptr[i+1]
		q, qe := b.indptr[i], b.indptr[i+1]
		for p < pe || q < qe {
			switch {
			case q >= qe || (p < pe && m.indices[p] < b.indices[q]):
				emit(m.indices[p], m.data[p])
				p++
			case p >= pe || b.indices[q] < m.indices[p]:
				emit(b.indices[q], b.data[q])
				q++
			default:
				emit(m.indices[p], m.data[p]+b.data[q])
				p++
				q++
			}
		}
		out.indptr[i+1] = len(out.data)
	}

	return out, nil
}

// Scale returns alpha·m. alpha = 0 yields an empty pattern.
// Errors: ErrNaNInf.
func (m *CSR) Scale(alpha float64) (*CSR, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, sparseErrorf("CSR.Scale", ErrNaNInf)
	}
	if alpha == 0 {
		return &CSR{r: m.r, c: m.c, indptr: make([]int, m.r+1)}, nil
	}
	out := &CSR{
		r: m.r, c: m.c,
		indptr:  append([]int(nil), m.indptr...),
		indices: append([]int(nil), m.indices...),
		data:    make([]float64, len(m.data)),
	}
	for p, v := range m.data {
		out.data[p] = alpha * v
	}

	return out, nil
}

// Kron returns a ⊗ b with the layout of matrix.Kron:
// (a⊗b)[i·rb+k, j·cb+l] = a[i,j]·b[k,l].
// Complexity: O(nnz(a)·nnz(b)); rows come out sorted without a sort pass.
func Kron(a, b *CSR) (*CSR, error) {
	if a == nil || b == nil {
		return nil, sparseErrorf("Kron", ErrBadShape)
	}
	rows, cols := a.r*b.r, a.c*b.c
	nnz := len(a.data) * len(b.data)
	out := &CSR{
		r: rows, c: cols,
		indptr:  make([]int, rows+1),
		indices: make([]int, 0, nnz),
		data:    make([]float64, 0, nnz),
	}
	for i := 0; i < a.r; i++ {
		for k := 0; k < b.r; k++ {
			for p := a.indptr[i]; p < a.indptr[i+1]; p++ {
				j, av := a.indices[p], a.data[p]
				for q := b.indptr[k]; q < b.indptr[k+1]; q++ {
					out.indices = append(out.indices, j*b.c+b.indices[q])
					out.data = append(out.data, av*b.data[q])
				}
			}
			out.indptr[i*b.r+k+1] = len(out.data)
		}
	}

	return out, nil
}
