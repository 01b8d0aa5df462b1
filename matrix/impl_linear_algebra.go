// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling and the symmetric eigensolver. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across spinlab.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel has a *Dense fast path (flat slices) and an At/Set fallback.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot products and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opEigen     = "Eigen"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opKron      = "Kron"
	opTrace     = "Trace"
	opFrobenius = "FrobeniusNorm"
	opTridiag   = "NewTridiagonal"
	opSortEigen = "SortEigen"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErr and setErr attach coordinates to a fallback-path failure.
func atErr(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

func setErr(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
}

// elementwise computes out[i,j] = f(a[i,j], b[i,j]) into a fresh Dense.
// Shared by Add, Sub and Hadamard so validation and loop order live in one place.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate the result.
//   - Stage 2: flat loop when both are *Dense, otherwise i→j via At/Set.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func elementwise(a, b Matrix, tag string, f func(x, y float64) float64) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = f(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErr(tag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErr(tag, i, j, err)
			}
			if err = res.Set(i, j, f(av, bv)); err != nil {
				return nil, setErr(tag, i, j, err)
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	return elementwise(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	return elementwise(a, b, opSub, func(x, y float64) float64 { return x - y })
}

// Hadamard computes the element-wise product C = A ∘ B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Hadamard(a, b Matrix) (Matrix, error) {
	return elementwise(a, b, opHadamard, func(x, y float64) float64 { return x * y })
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). The zero-skip is the only concession to
//     sparsity; the dense/sparse comparison measures what it leaves on the table.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var av, bv, acc float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA, rowR = i*aCols, i*bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErr(opMul, i, k, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErr(opMul, k, j, err)
				}
				acc += av * bv
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, setErr(opMul, i, j, err)
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErr(opTranspose, i, j, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, setErr(opTranspose, j, i, err)
			}
		}
	}

	return res, nil
}

// Scale returns alpha·m as a fresh Dense.
// Errors: ErrNilMatrix; ErrNaNInf when alpha is not finite.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = alpha * v
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErr(opScale, i, j, err)
			}
			if err = res.Set(i, j, alpha*v); err != nil {
				return nil, setErr(opScale, i, j, err)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
// Errors: ErrNilMatrix (nil m or x), ErrDimensionMismatch (len(x) != Cols).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j, base int
	var acc, mv float64
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, atErr(opMatVec, i, j, err)
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via cyclic Jacobi sweeps.
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol); if IsZeroOffDiagonal(m, tol) return diag(m)
//     and I at once, otherwise copy m into a *Dense work buffer A; Q := I.
//   - Stage 2: Sweep all pairs (p<q) in fixed row-major order. For each |A[p,q]| > tol,
//     annihilate A[p,q] with the rotation t = sign(θ)/(|θ|+√(θ²+1)), θ = (A[q,q]−A[p,p])/(2A[p,q]),
//     and accumulate the rotation into Q.
//   - Stage 3: Stop once a sweep finds max off-diagonal ≤ tol. maxIter bounds the
//     number of individual rotations (not sweeps).
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: convergence threshold on the largest off-diagonal magnitude.
//   - maxIter: rotation budget; 0 fails immediately unless m is already diagonal.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, unsorted).
//   - Matrix: Q whose columns are orthonormal eigenvectors (A·Q = Q·Λ).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetry,
//     ErrMatrixEigenFailed (budget exhausted with off-diagonal > tol).
//
// Determinism:
//   - Fixed pair order; identical input gives bit-identical output.
//
// Complexity:
//   - Time O(sweeps·n³), Space O(n²). Typical sweeps: 5–10 for float64.
//
// AI-Hints:
//   - Pass SortEigen the result when ordered spectra are needed.
//   - Budget n²·50 rotations (see Options.MaxIter) is comfortably above need.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	tol = math.Abs(tol)
	n := m.Rows()

	// Already diagonal: Q = I and the diagonal is the spectrum; no copy or sweep.
	diag, err := IsZeroOffDiagonal(m, tol)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if diag {
		vals := make([]float64, n)
		for i := range vals {
			if vals[i], err = m.At(i, i); err != nil {
				return nil, nil, matrixErrorf(opEigen, err)
			}
		}
		id, err := NewIdentity(n)
		if err != nil {
			return nil, nil, matrixErrorf(opEigen, err)
		}

		return vals, id, nil
	}

	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	A, Q := a.data, q.data

	var (
		p, r, i          int
		rotations        int
		apq, app, aqq    float64
		theta, t, c, s   float64
		aip, aiq         float64
		qip, qiq         float64
		maxOff, magnitude float64
	)
	for {
		// Measure the current off-diagonal mass; converged sweeps exit here.
		maxOff = NormZero
		for p = 0; p < n; p++ {
			for r = p + 1; r < n; r++ {
				if magnitude = math.Abs(A[p*n+r]); magnitude > maxOff {
					maxOff = magnitude
				}
			}
		}
		if maxOff <= tol {
			break
		}
		if rotations >= maxIter {
			return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
		}

		for p = 0; p < n-1; p++ {
			for r = p + 1; r < n; r++ {
				apq = A[p*n+r]
				if math.Abs(apq) <= tol {
					continue
				}
				if rotations >= maxIter {
					break
				}
				rotations++

				app, aqq = A[p*n+p], A[r*n+r]
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1 / math.Sqrt(t*t+1)
				s = t * c

				for i = 0; i < n; i++ {
					if i == p || i == r {
						continue
					}
					aip, aiq = A[i*n+p], A[i*n+r]
					A[i*n+p] = c*aip - s*aiq
					A[p*n+i] = A[i*n+p]
					A[i*n+r] = s*aip + c*aiq
					A[r*n+i] = A[i*n+r]
				}
				A[p*n+p] = app - t*apq
				A[r*n+r] = aqq + t*apq
				A[p*n+r], A[r*n+p] = 0, 0

				for i = 0; i < n; i++ {
					qip, qiq = Q[i*n+p], Q[i*n+r]
					Q[i*n+p] = c*qip - s*qiq
					Q[i*n+r] = s*qip + c*qiq
				}
			}
		}
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = A[i*n+i]
	}

	return eigs, q, nil
}

// toDense returns a private *Dense copy of m (fast copy for *Dense, At loop otherwise).
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
