// SPDX-License-Identifier: MIT

package sparse

import (
	"math"
	"sort"
)

// COO stores a matrix as (row, col, value) triplets.
type COO struct {
	r, c int
	row  []int
	col  []int
	val  []float64
}

// NewCOO returns an empty r×c triplet matrix.
// Errors: ErrBadShape.
func NewCOO(rows, cols int) (*COO, error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf("NewCOO", ErrBadShape)
	}

	return &COO{r: rows, c: cols}, nil
}

// Rows returns the number of rows.
func (m *COO) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *COO) Cols() int { return m.c }

// NNZ returns the number of stored triplets, duplicates included.
func (m *COO) NNZ() int { return len(m.val) }

// Append stores v at (i, j). Repeated positions are summed on conversion.
// Errors: ErrIndexOutOfRange, ErrNaNInf.
func (m *COO) Append(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return sparseErrorf("COO.Append", ErrIndexOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return sparseErrorf("COO.Append", ErrNaNInf)
	}
	m.row = append(m.row, i)
	m.col = append(m.col, j)
	m.val = append(m.val, v)

	return nil
}

// Do calls f for every stored triplet in insertion order.
func (m *COO) Do(f func(i, j int, v float64)) {
	for k := range m.val {
		f(m.row[k], m.col[k], m.val[k])
	}
}

// ToCSR compresses rows: triplets are ordered by (row, col), duplicates are
// summed and entries that sum to exactly zero are dropped.
// Complexity: O(nnz log nnz).
func (m *COO) ToCSR() *CSR {
	return compress(m.r, m.c, m.row, m.col, m.val)
}

// ToCSC compresses columns. It is the CSR compression of the transpose.
func (m *COO) ToCSC() *CSC {
	t := compress(m.c, m.r, m.col, m.row, m.val)

	return &CSC{r: m.r, c: m.c, indptr: t.indptr, indices: t.indices, data: t.data}
}

// Bytes returns the footprint of the triplet arrays.
func (m *COO) Bytes() int64 {
	return int64(len(m.val))*(2*intBytes+floatBytes) + 2*intBytes
}

// compress builds a CSR of shape major×minor from triplets keyed (major, minor).
func compress(major, minor int, maj, mnr []int, val []float64) *CSR {
	order := make([]int, len(val))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if maj[ka] != maj[kb] {
			return maj[ka] < maj[kb]
		}

		return mnr[ka] < mnr[kb]
	})

	out := &CSR{r: major, c: minor, indptr: make([]int, major+1)}
	out.indices = make([]int, 0, len(val))
	out.data = make([]float64, 0, len(val))
	for p := 0; p < len(order); {
		k := order[p]
		i, j, sum := maj[k], mnr[k], val[k]
		p++
		for p < len(order) && maj[order[p]] == i && mnr[order[p]] == j {
			sum += val[order[p]]
			p++
		}
		if sum == 0 {
			continue
		}
		out.indices = append(out.indices, j)
		out.data = append(out.data, sum)
		out.indptr[i+1]++
	}
	for i := 0; i < major; i++ {
		out.indptr[i+1] += out.indptr[i]
	}

	return out
}
