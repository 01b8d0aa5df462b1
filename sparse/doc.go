// SPDX-License-Identifier: MIT

// Package sparse implements the compressed formats used in the dense/sparse
// comparison: COO triplets, CSR (compressed rows) and CSC (compressed columns).
//
// What:
//   - COO is the assembly format: Append triplets in any order; duplicates
//     are summed when converting.
//   - CSR is the compute format: MatVec, SpGEMM (Gustavson), Add, Scale,
//     Transpose, Kron and the Lanczos eigensolver run on it.
//   - CSC mirrors CSR column-wise; CSR.ToCSC and CSC.ToCSR are O(nnz + n).
//
// Memory:
//   - Bytes reports the footprint of the backing arrays and DenseBytes the
//     footprint of the equivalent dense float64 matrix, which is the number the
//     comparison prints next to the timings.
//
// Determinism:
//   - Column indices inside a CSR row (row indices inside a CSC column) are
//     strictly increasing after every constructor and kernel.
package sparse
