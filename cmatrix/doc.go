// SPDX-License-Identifier: MIT

// Package cmatrix provides complex dense matrices built on top of package matrix.
//
// A complex matrix Z = X + iY is stored as two real *matrix.Dense of the same
// shape. Every complex kernel is expressed through real kernels, so the
// validation, error sentinels and fast paths of package matrix carry over:
//
//	(A+iB)(C+iD) = (AC − BD) + i(AD + BC)
//	(A+iB)⊗(C+iD) = (A⊗C − B⊗D) + i(A⊗D + B⊗C)
//
// EigenHermitian diagonalizes Hermitian matrices with the real Jacobi solver
// from package matrix. Real input is solved directly; complex input goes
// through the real-symmetric embedding
//
//	M = [ X  −Y ]
//	    [ Y   X ]
//
// whose spectrum repeats each Hermitian eigenvalue twice. Eigenvector pairs
// (u, v) of M map back to complex eigenvectors u + iv and are
// re-orthonormalized per degenerate cluster.
//
// Errors are the matrix sentinels (matched with errors.Is) plus ErrNotHermitian.
package cmatrix
