// Package matrix provides the real dense linear-algebra core of spinlab.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     refuse NaN/±Inf.
//   - Element-wise and algebraic kernels (Add, Sub, Mul, Scale, Transpose,
//     Hadamard, MatVec) with *Dense fast paths and interface fallbacks.
//   - Kronecker products (Kron, KronChain), the building block for
//     multi-spin operators.
//   - A Jacobi eigensolver (Eigen) for symmetric matrices plus SortEigen.
//   - Structured constructors (NewIdentity, NewTridiagonal) and reductions
//     (Trace, FrobeniusNorm, AllClose).
//
// Dense storage costs O(r·c) memory regardless of how many entries are zero;
// see package sparse for the compressed counterparts used in comparisons.
package matrix
