// SPDX-License-Identifier: MIT

// Package spin builds and diagonalizes hyperfine spin Hamiltonians.
//
// A System is one electron spin S coupled to zero or more nuclear spins I_k
// in a static magnetic field B. Build assembles, in frequency units (MHz),
//
//	H = ge·μB/h·(B·S) − Σ_k gn_k·μN/h·(B·I_k) + Σ_k S·A_k·I_k
//
// on the product basis electron ⊗ nucleus_1 ⊗ … ⊗ nucleus_N, where every
// factor is ordered m = +S, S−1, …, −S. Single-spin operators are placed in
// the product space with Kronecker products (Embed).
//
// Spin quantum numbers are carried as twice-spin integers (TwoS) so that
// half-integer spins stay exact.
//
// Diagonalize returns a Spectrum (ascending energies, eigenvectors, basis
// labels, dominant basis state per level). Sweep and Transitions derive the
// Breit–Rabi diagram and the EPR line list from it; BreitRabi is the closed
// form for S = I = 1/2 with isotropic coupling and serves as a reference.
package spin
