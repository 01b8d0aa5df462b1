// SPDX-License-Identifier: MIT

package cmatrix

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/spinlab/matrix"
)

const (
	// jacobiFloor bounds the Jacobi tolerance from below, relative to ‖H‖_F,
	// so tol = 0 still converges in floating point.
	jacobiFloor = 1e-13

	// clusterRel groups embedded eigenvalues closer than clusterRel·max(1, ρ)
	// into one degenerate cluster (ρ: spectral radius).
	clusterRel = 1e-10

	// rankTol is the minimum residual norm for a candidate to extend a cluster basis.
	rankTol = 1e-6
)

// EigenHermitian diagonalizes a Hermitian matrix.
//
// Implementation:
//   - Stage 1: validate (nil, square, Hermitian within tol) and symmetrize the
//     planes: X ← (X+Xᵀ)/2, Y ← (Y−Yᵀ)/2.
//   - Stage 2: real input (Y = 0 within tol) goes straight to matrix.Eigen.
//   - Stage 3: complex input is lifted to M = [[X, −Y], [Y, X]] and solved with
//     matrix.Eigen; eigenvalues of M come in equal pairs.
//   - Stage 4: sorted eigenpairs of M are grouped into clusters; each real
//     eigenvector [u; v] becomes the complex candidate u + iv, and a pivoted
//     complex Gram–Schmidt keeps half of each cluster as an orthonormal basis.
//   - Stage 5: eigenvalues are recomputed as Rayleigh quotients, each vector is
//     phase-fixed so its largest component is real and positive, and the pairs
//     are sorted ascending.
//
// Inputs:
//   - tol: Hermiticity tolerance and Jacobi convergence threshold (absolute).
//   - maxIter: Jacobi rotation budget; ≤ 0 selects matrix.DefaultMaxSweeps·N².
//
// Returns:
//   - ascending real eigenvalues and a unitary matrix whose columns are the
//     matching eigenvectors. Degenerate levels get an arbitrary orthonormal basis.
//
// Errors:
//   - ErrNilMatrix, matrix.ErrDimensionMismatch, ErrNotHermitian,
//     matrix.ErrMatrixEigenFailed (no convergence or rank loss).
//
// Complexity:
//   - Jacobi on 2n×2n: O(sweeps·n³), with a small constant for spin-sized n.
func EigenHermitian(h *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if h == nil {
		return nil, nil, cmatrixErrorf(opEigen, ErrNilMatrix)
	}
	if err := matrix.ValidateSquareNonNil(h.re); err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return nil, nil, cmatrixErrorf(opEigen, matrix.ErrNaNInf)
	}
	tol = math.Abs(tol)
	if !IsHermitian(h, tol) {
		return nil, nil, cmatrixErrorf(opEigen, ErrNotHermitian)
	}

	n := h.Rows()
	x, y, err := hermitianParts(h)
	if err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}
	norm, err := matrix.FrobeniusNorm(h.re)
	if err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}
	normIm, err := matrix.FrobeniusNorm(h.im)
	if err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}
	jtol := math.Max(tol, jacobiFloor*math.Hypot(norm, normIm))

	if IsReal(h, tol) {
		if maxIter <= 0 {
			maxIter = matrix.DefaultMaxSweeps * n * n
		}
		vals, vecs, err := matrix.Eigen(x, jtol, maxIter)
		if err != nil {
			return nil, nil, cmatrixErrorf(opEigen, err)
		}
		sv, sq, err := matrix.SortEigen(vals, vecs)
		if err != nil {
			return nil, nil, cmatrixErrorf(opEigen, err)
		}
		out, err := FromReal(sq)
		if err != nil {
			return nil, nil, cmatrixErrorf(opEigen, err)
		}
		fixPhases(out)

		return sv, out, nil
	}

	if maxIter <= 0 {
		maxIter = matrix.DefaultMaxSweeps * 4 * n * n
	}
	emb, err := embed(x, y)
	if err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}
	vals, vecs, err := matrix.Eigen(emb, jtol, maxIter)
	if err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}
	sv, sq, err := matrix.SortEigen(vals, vecs)
	if err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}

	basis := collapsePairs(sv, sq, n, math.Max(clusterRel*math.Max(1, maxAbs(sv)), jtol))
	if len(basis) != n {
		return nil, nil, cmatrixErrorf(opEigen, matrix.ErrMatrixEigenFailed)
	}

	sym := &Dense{re: x, im: y}
	energies := make([]float64, n)
	for k, v := range basis {
		hv, err := MatVec(sym, v)
		if err != nil {
			return nil, nil, cmatrixErrorf(opEigen, err)
		}
		energies[k] = real(dot(v, hv))
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return energies[order[a]] < energies[order[b]] })

	out, err := New(n, n)
	if err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}
	sorted := make([]float64, n)
	re, im := out.re.RawData(), out.im.RawData()
	for col, k := range order {
		sorted[col] = energies[k]
		for row, z := range basis[k] {
			re[row*n+col], im[row*n+col] = real(z), imag(z)
		}
	}
	fixPhases(out)

	return sorted, out, nil
}

// hermitianParts returns the exactly symmetric real plane and the exactly
// antisymmetric imaginary plane of h.
func hermitianParts(h *Dense) (*matrix.Dense, *matrix.Dense, error) {
	x, err := asDense(matrix.Symmetrize(h.re))
	if err != nil {
		return nil, nil, err
	}
	n := h.Rows()
	y, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	src, dst := h.im.RawData(), y.RawData()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[i*n+j] = 0.5 * (src[i*n+j] - src[j*n+i])
		}
	}

	return x, y, nil
}

// embed builds the 2n×2n real symmetric lift [[X, −Y], [Y, X]].
func embed(x, y *matrix.Dense) (*matrix.Dense, error) {
	n := x.Rows()
	m, err := matrix.NewDense(2*n, 2*n)
	if err != nil {
		return nil, err
	}
	xs, ys, ms := x.RawData(), y.RawData(), m.RawData()
	w := 2 * n
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ms[i*w+j] = xs[i*n+j]
			ms[i*w+n+j] = -ys[i*n+j]
			ms[(n+i)*w+j] = ys[i*n+j]
			ms[(n+i)*w+n+j] = xs[i*n+j]
		}
	}

	return m, nil
}

// collapsePairs turns sorted eigenpairs of the 2n lift into n complex vectors.
func collapsePairs(vals []float64, vecs *matrix.Dense, n int, clusterTol float64) [][]complex128 {
	w := 2 * n
	data := vecs.RawData()
	candidate := func(col int) []complex128 {
		v := make([]complex128, n)
		for i := 0; i < n; i++ {
			v[i] = complex(data[i*w+col], data[(n+i)*w+col])
		}
		normalize(v)

		return v
	}

	var basis [][]complex128
	for start := 0; start < len(vals); {
		end := start + 1
		for end < len(vals) && vals[end]-vals[end-1] <= clusterTol {
			end++
		}
		size := end - start
		want := (size + 1) / 2

		cands := make([][]complex128, 0, size)
		for col := start; col < end; col++ {
			cands = append(cands, candidate(col))
		}
		basis = pivotedGramSchmidt(cands, want, basis)
		start = end
	}

	return basis
}

// pivotedGramSchmidt extends the orthonormal set basis by up to want vectors
// from cands, always taking the candidate with the largest residual. Projecting
// against the whole basis keeps a pair split across two clusters from being
// counted twice.
func pivotedGramSchmidt(cands [][]complex128, want int, basis [][]complex128) [][]complex128 {
	out := basis
	used := make([]bool, len(cands))
	for added := 0; added < want; added++ {
		best, bestNorm := -1, rankTol
		var bestVec []complex128
		for idx, c := range cands {
			if used[idx] {
				continue
			}
			r := residual(c, out)
			if nr := norm2(r); nr > bestNorm {
				best, bestNorm, bestVec = idx, nr, r
			}
		}
		if best < 0 {
			break
		}
		used[best] = true
		normalize(bestVec)
		out = append(out, bestVec)
	}

	return out
}

// residual removes the components of v along the orthonormal set q (two passes).
func residual(v []complex128, q [][]complex128) []complex128 {
	r := append([]complex128(nil), v...)
	for pass := 0; pass < 2; pass++ {
		for _, b := range q {
			p := dot(b, r)
			for i := range r {
				r[i] -= p * b[i]
			}
		}
	}

	return r
}

// dot returns ⟨a|b⟩ = Σ conj(a_i)·b_i.
func dot(a, b []complex128) complex128 {
	var s complex128
	for i := range a {
		s += cmplx.Conj(a[i]) * b[i]
	}

	return s
}

func norm2(v []complex128) float64 {
	var s float64
	for _, z := range v {
		s = math.Hypot(s, cmplx.Abs(z))
	}

	return s
}

func normalize(v []complex128) {
	nrm := norm2(v)
	if nrm == 0 {
		return
	}
	inv := complex(1/nrm, 0)
	for i := range v {
		v[i] *= inv
	}
}

// fixPhases rotates every column so its largest-magnitude entry is real and
// positive (first such entry on ties).
func fixPhases(d *Dense) {
	n, c := d.Rows(), d.Cols()
	re, im := d.re.RawData(), d.im.RawData()
	for col := 0; col < c; col++ {
		pivot, best := 0, -1.0
		for row := 0; row < n; row++ {
			if a := math.Hypot(re[row*c+col], im[row*c+col]); a > best+1e-12 {
				pivot, best = row, a
			}
		}
		if best <= 0 {
			continue
		}
		z := complex(re[pivot*c+col], im[pivot*c+col])
		phase := cmplx.Conj(z) / complex(cmplx.Abs(z), 0)
		for row := 0; row < n; row++ {
			v := complex(re[row*c+col], im[row*c+col]) * phase
			re[row*c+col], im[row*c+col] = real(v), imag(v)
		}
		im[pivot*c+col] = 0
	}
}
