// Package spinlab builds, diagonalizes and inspects small spin Hamiltonians,
// and measures what sparse storage buys over dense storage for banded operators.
//
// 🚀 What is spinlab?
//
//	A numerics toolkit in pure Go (plus a small CLI) that brings together:
//		• Dense real matrices: arithmetic, Kronecker products, Jacobi eigensolver
//		• Dense complex matrices: Hermitian eigensolver on top of the real one
//		• Spin systems: electron Zeeman, nuclear Zeeman and hyperfine terms in MHz
//		• Spectra: energy levels, field sweeps, EPR transitions, Breit–Rabi checks
//		• Sparse storage: COO, CSR, CSC, SpGEMM, Kronecker, Lanczos
//		• Timing: repeat-and-measure loops comparing dense and CSR kernels
//		• Terminal plots: heatmaps with a colorbar and spy plots
//
// Packages:
//
//	matrix/   dense float64 matrices, Kron, EigenSym, validators
//	cmatrix/  dense complex128 matrices, EigenHermitian
//	spin/     spin operators, System, Build, Diagonalize, Sweep, Transitions
//	sparse/   COO/CSR/CSC formats, Tridiagonal, Laplacian1D, Lanczos
//	timing/   Measure, Compare
//	render/   Heatmap, Spy
//	cmd/spinlab  the command-line front end (config via YAML and SPINLAB_* env)
//
// Quick example (hydrogen at 0.35 T):
//
//	spec, err := spin.Diagonalize(spin.Hydrogen(0.35))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(spec)
//
// Units: fields in tesla, couplings and energies in MHz (E/h). The product
// basis puts the electron first, each factor ordered m = +S … −S.
//
// See the package docs for invariants and complexity notes.
package spinlab
