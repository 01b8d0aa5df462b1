// SPDX-License-Identifier: MIT

package sparse

import "math"

// Tridiagonal assembles the n×n matrix with constant bands (sub, diag, super)
// in triplet form; zero bands are not stored.
// Errors: ErrBadShape (n ≤ 0), ErrNaNInf.
func Tridiagonal(n int, sub, diag, super float64) (*COO, error) {
	m, err := NewCOO(n, n)
	if err != nil {
		return nil, sparseErrorf("Tridiagonal", err)
	}
	for i := 0; i < n; i++ {
		for _, e := range [...]struct {
			j int
			v float64
		}{{i - 1, sub}, {i, diag}, {i + 1, super}} {
			if e.j < 0 || e.j >= n || e.v == 0 {
				continue
			}
			if err = m.Append(i, e.j, e.v); err != nil {
				return nil, sparseErrorf("Tridiagonal", err)
			}
		}
	}

	return m, nil
}

// Laplacian1D returns the second-difference operator [1, −2, 1]/h² on n
// interior points with Dirichlet boundaries.
// Its eigenvalues are (−2 + 2cos(kπ/(n+1)))/h², k = 1…n.
// Errors: ErrBadShape (n ≤ 0 or h ≤ 0), ErrNaNInf.
func Laplacian1D(n int, h float64) (*CSR, error) {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return nil, sparseErrorf("Laplacian1D", ErrNaNInf)
	}
	if h <= 0 {
		return nil, sparseErrorf("Laplacian1D", ErrBadShape)
	}
	inv := 1 / (h * h)
	coo, err := Tridiagonal(n, inv, -2*inv, inv)
	if err != nil {
		return nil, sparseErrorf("Laplacian1D", err)
	}

	return coo.ToCSR(), nil
}

// LaplacianEigenvalues returns the analytic spectrum of Laplacian1D(n, h), ascending.
func LaplacianEigenvalues(n int, h float64) []float64 {
	out := make([]float64, n)
	inv := 1 / (h * h)
	for k := n; k >= 1; k-- {
		out[n-k] = (-2 + 2*math.Cos(float64(k)*math.Pi/float64(n+1))) * inv
	}

	return out
}
