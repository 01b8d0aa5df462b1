// SPDX-License-Identifier: MIT

package sparse

import (
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/spinlab/matrix"
)

const (
	intBytes   = int64(strconv.IntSize / 8)
	floatBytes = int64(8)
)

// CSR is a compressed sparse row matrix. Row i owns
// indices[indptr[i]:indptr[i+1]] (ascending columns) and the matching data.
type CSR struct {
	r, c    int
	indptr  []int
	indices []int
	data    []float64
}

// NewCSR validates and wraps compressed arrays. The slices are not copied.
// Errors: ErrBadShape (dims, lengths, non-monotone indptr or unsorted row),
// ErrIndexOutOfRange (column index), ErrNaNInf.
func NewCSR(rows, cols int, indptr, indices []int, data []float64) (*CSR, error) {
	if rows <= 0 || cols <= 0 || len(indptr) != rows+1 || len(indices) != len(data) ||
		indptr[0] != 0 || indptr[rows] != len(data) {
		return nil, sparseErrorf("NewCSR", ErrBadShape)
	}
	// indptr must be fully checked before any row slice is taken from it.
	for i := 0; i < rows; i++ {
		if indptr[i+1] < indptr[i] || indptr[i+1] > len(data) {
			return nil, sparseErrorf("NewCSR", ErrBadShape)
		}
	}
	for i := 0; i < rows; i++ {
		for p := indptr[i]; p < indptr[i+1]; p++ {
			if indices[p] < 0 || indices[p] >= cols {
				return nil, sparseErrorf("NewCSR", ErrIndexOutOfRange)
			}
			if p > indptr[i] && indices[p] <= indices[p-1] {
				return nil, sparseErrorf("NewCSR", ErrBadShape)
			}
			if math.IsNaN(data[p]) || math.IsInf(data[p], 0) {
				return nil, sparseErrorf("NewCSR", ErrNaNInf)
			}
		}
	}

	return &CSR{r: rows, c: cols, indptr: indptr, indices: indices, data: data}, nil
}

// FromDense compresses m, dropping entries with |x| ≤ tol.
// Errors: matrix.ErrNilMatrix, ErrNaNInf (tol).
func FromDense(m matrix.Matrix, tol float64) (*CSR, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, sparseErrorf("FromDense", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return nil, sparseErrorf("FromDense", ErrNaNInf)
	}
	tol = math.Abs(tol)
	rows, cols := m.Rows(), m.Cols()
	out := &CSR{r: rows, c: cols, indptr: make([]int, rows+1)}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, sparseErrorf("FromDense", err)
			}
			if math.Abs(v) <= tol {
				continue
			}
			out.indices = append(out.indices, j)
			out.data = append(out.data, v)
		}
		out.indptr[i+1] = len(out.data)
	}

	return out, nil
}

// Identity returns the n×n sparse identity.
func Identity(n int) (*CSR, error) {
	if n <= 0 {
		return nil, sparseErrorf("Identity", ErrBadShape)
	}
	out := &CSR{r: n, c: n, indptr: make([]int, n+1), indices: make([]int, n), data: make([]float64, n)}
	for i := 0; i < n; i++ {
		out.indptr[i+1] = i + 1
		out.indices[i] = i
		out.data[i] = 1
	}

	return out, nil
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.c }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.data) }

// Density returns nnz / (rows·cols).
func (m *CSR) Density() float64 { return float64(len(m.data)) / (float64(m.r) * float64(m.c)) }

// Bytes returns the footprint of indptr, indices and data.
func (m *CSR) Bytes() int64 {
	return int64(len(m.indptr))*intBytes + int64(len(m.indices))*intBytes + int64(len(m.data))*floatBytes
}

// DenseBytes is the footprint of a rows×cols float64 dense matrix.
func DenseBytes(rows, cols int) int64 { return int64(rows) * int64(cols) * floatBytes }

// At returns m[i,j] by binary search in row i (0 for structural zeros).
// Errors: ErrIndexOutOfRange.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, sparseErrorf("CSR.At", ErrIndexOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	p := lo + sort.SearchInts(m.indices[lo:hi], j)
	if p < hi && m.indices[p] == j {
		return m.data[p], nil
	}

	return 0, nil
}

// Do calls f for every stored entry in row-major order.
func (m *CSR) Do(f func(i, j int, v float64)) {
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			f(i, m.indices[p], m.data[p])
		}
	}
}

// MatVec returns y = m·x.
// Errors: ErrDimensionMismatch.
// Complexity: O(nnz).
func (m *CSR) MatVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, sparseErrorf("CSR.MatVec", ErrDimensionMismatch)
	}
	y := make([]float64, m.r)
	m.matVecInto(y, x)

	return y, nil
}

func (m *CSR) matVecInto(y, x []float64) {
	var sum float64
	for i := 0; i < m.r; i++ {
		sum = 0
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			sum += m.data[p] * x[m.indices[p]]
		}
		y[i] = sum
	}
}

// ToDense expands m into a *matrix.Dense.
func (m *CSR) ToDense() (*matrix.Dense, error) {
	out, err := matrix.NewDense(m.r, m.c)
	if err != nil {
		return nil, sparseErrorf("CSR.ToDense", err)
	}
	raw := out.RawData()
	m.Do(func(i, j int, v float64) { raw[i*m.c+j] = v })

	return out, nil
}

// ToCOO returns the triplets of m in row-major order.
func (m *CSR) ToCOO() *COO {
	out := &COO{
		r: m.r, c: m.c,
		row: make([]int, 0, len(m.data)),
		col: make([]int, 0, len(m.data)),
		val: make([]float64, 0, len(m.data)),
	}
	m.Do(func(i, j int, v float64) {
		out.row = append(out.row, i)
		out.col = append(out.col, j)
		out.val = append(out.val, v)
	})

	return out
}

// Transpose returns mᵀ as CSR. Complexity: O(nnz + rows + cols).
func (m *CSR) Transpose() *CSR {
	counts := make([]int, m.c+1)
	for _, j := range m.indices {
		counts[j+1]++
	}
	for j := 0; j < m.c; j++ {
		counts[j+1] += counts[j]
	}
	out := &CSR{
		r: m.c, c: m.r,
		indptr:  append([]int(nil), counts...),
		indices: make([]int, len(m.indices)),
		data:    make([]float64, len(m.data)),
	}
	next := counts[:m.c]
	// rows are visited in ascending order, so each output row stays sorted
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			j := m.indices[p]
			q := next[j]
			out.indices[q] = i
			out.data[q] = m.data[p]
			next[j]++
		}
	}

	return out
}

// ToCSC converts to compressed columns.
func (m *CSR) ToCSC() *CSC {
	t := m.Transpose()

	return &CSC{r: m.r, c: m.c, indptr: t.indptr, indices: t.indices, data: t.data}
}

// IsSymmetric reports whether |m[i,j] − m[j,i]| ≤ tol for every stored entry.
func (m *CSR) IsSymmetric(tol float64) bool {
	if m.r != m.c {
		return false
	}
	tol = math.Abs(tol)
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			vt, _ := m.At(m.indices[p], i)
			if math.Abs(m.data[p]-vt) > tol {
				return false
			}
		}
	}

	return true
}
