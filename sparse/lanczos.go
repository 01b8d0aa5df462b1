// SPDX-License-Identifier: MIT

package sparse

import (
	"context"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Lanczos defaults.
const (
	DefaultLanczosTol   = 1e-10
	DefaultLanczosSeed  = 1
	lanczosCheckEvery   = 8
	lanczosBreakdownTol = 1e-12
	lanczosMinSteps     = 100
	// lanczosBasisFloats bounds the stored Krylov basis (32 MiB) under the
	// default budget; below that every step up to n is allowed.
	lanczosBasisFloats = 1 << 22
)

// DefaultLanczosMaxIter is the Krylov budget used without WithMaxIter: as
// many steps as a basis of lanczosBasisFloats allows, never fewer than
// 10·k+100, capped at n. Up to n = 2048 this reaches the invariant space,
// so clustered spectra such as the 1-D Laplacian always converge.
func DefaultLanczosMaxIter(n, k int) int {
	steps := max(10*k+lanczosMinSteps, lanczosBasisFloats/max(n, 1))

	return min(steps, n)
}

// Which selects the end of the spectrum Lanczos reports.
type Which int

const (
	// Smallest selects the algebraically smallest eigenvalues.
	Smallest Which = iota
	// Largest selects the algebraically largest eigenvalues.
	Largest
)

// LanczosOption tunes Lanczos.
type LanczosOption func(*lanczosOptions)

type lanczosOptions struct {
	tol     float64
	maxIter int
	seed    int64
	which   Which
}

// WithTol sets the relative residual tolerance. Panics on tol ≤ 0 or non-finite.
func WithTol(tol float64) LanczosOption {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("sparse: WithTol: tol must be finite and > 0")
	}

	return func(o *lanczosOptions) { o.tol = tol }
}

// WithMaxIter caps the Krylov dimension. Panics on n ≤ 0.
func WithMaxIter(n int) LanczosOption {
	if n <= 0 {
		panic("sparse: WithMaxIter: n must be > 0")
	}

	return func(o *lanczosOptions) { o.maxIter = n }
}

// WithSeed sets the seed of the random start vector.
func WithSeed(seed int64) LanczosOption {
	return func(o *lanczosOptions) { o.seed = seed }
}

// WithWhich selects Smallest or Largest.
func WithWhich(w Which) LanczosOption {
	return func(o *lanczosOptions) { o.which = w }
}

// LanczosResult carries the Ritz values and convergence data.
type LanczosResult struct {
	// Values are the k selected Ritz values, ascending. An invariant Krylov
	// space smaller than k yields fewer values.
	Values []float64
	// Residuals are |β_m·s_m| bounds matching Values.
	Residuals []float64
	// Iterations is the final Krylov dimension.
	Iterations int
}

// Lanczos computes k extremal eigenvalues of a symmetric CSR matrix.
//
// Implementation:
//   - Stage 1: validate (square, symmetric, 0 < k ≤ n) and draw a seeded
//     random unit start vector.
//   - Stage 2: three-term recurrence w = A·v_j − β_{j−1}·v_{j−1}, α_j = ⟨w,v_j⟩,
//     followed by full reorthogonalization against every stored v (twice).
//   - Stage 3: at geometrically spaced steps the tridiagonal T_j is
//     diagonalized with gonum's mat.EigenSym; Ritz value θ_i is converged
//     when |β_j·s_{j,i}| ≤ tol·max(1,|θ_i|).
//   - Stage 4: breakdown (β ≈ 0) or j = n means the Krylov space is invariant,
//     so the Ritz values are exact.
//
// Errors:
//   - ErrDimensionMismatch (not square), ErrNotSymmetric, ErrBadShape (k),
//     ErrNoConvergence (budget exhausted; the partial result is returned),
//     ctx.Err() on cancellation, matrix sentinels from the tridiagonal solve.
//
// Complexity:
//   - O(m·nnz + m²·n) for m steps plus O(m³) over all convergence checks,
//     since the check interval grows by a quarter each time.
func Lanczos(ctx context.Context, a *CSR, k int, opts ...LanczosOption) (LanczosResult, error) {
	if a == nil || a.r != a.c {
		return LanczosResult{}, sparseErrorf("Lanczos", ErrDimensionMismatch)
	}
	n := a.r
	if k <= 0 || k > n {
		return LanczosResult{}, sparseErrorf("Lanczos", ErrBadShape)
	}
	if !a.IsSymmetric(0) {
		return LanczosResult{}, sparseErrorf("Lanczos", ErrNotSymmetric)
	}

	o := lanczosOptions{
		tol:     DefaultLanczosTol,
		maxIter: DefaultLanczosMaxIter(n, k),
		seed:    DefaultLanczosSeed,
		which:   Smallest,
	}
	for _, set := range opts {
		set(&o)
	}
	if o.maxIter > n {
		o.maxIter = n
	}

	rng := rand.New(rand.NewSource(o.seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64() - 0.5
	}
	scaleTo(v, 1/norm(v))

	var (
		basis  = [][]float64{v}
		alphas []float64
		betas  []float64
		res    LanczosResult
		w      = make([]float64, n)
		check  = max(k, lanczosCheckEvery)
	)
	for j := 0; j < o.maxIter; j++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		a.matVecInto(w, basis[j])
		alpha := dot(w, basis[j])
		alphas = append(alphas, alpha)
		for pass := 0; pass < 2; pass++ {
			for _, q := range basis {
				axpy(w, -dot(w, q), q)
			}
		}
		beta := norm(w)

		last := j+1 == o.maxIter
		invariant := beta <= lanczosBreakdownTol*math.Max(1, math.Abs(alpha)) || j+1 == n
		if invariant || last || j+1 >= check {
			check = j + 1 + max(lanczosCheckEvery, (j+1)/4)
			var err error
			res, err = ritz(alphas, betas, beta, k, o.which)
			if err != nil {
				return res, sparseErrorf("Lanczos", err)
			}
			if invariant || converged(res, o.tol) {
				if invariant {
					for i := range res.Residuals {
						res.Residuals[i] = 0
					}
				}
				return res, nil
			}
			if last {
				return res, sparseErrorf("Lanczos", ErrNoConvergence)
			}
		}

		betas = append(betas, beta)
		next := make([]float64, n)
		copy(next, w)
		scaleTo(next, 1/beta)
		basis = append(basis, next)
	}

	return res, sparseErrorf("Lanczos", ErrNoConvergence)
}

// ritz diagonalizes T_m (diagonal alphas, off-diagonal betas) and selects k values.
func ritz(alphas, betas []float64, beta float64, k int, which Which) (LanczosResult, error) {
	m := len(alphas)
	t := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		t.SetSym(i, i, alphas[i])
		if i+1 < m {
			t.SetSym(i, i+1, betas[i])
		}
	}
	var eig mat.EigenSym
	if !eig.Factorize(t, true) {
		return LanczosResult{}, ErrNoConvergence
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	if k > m {
		k = m
	}
	start := 0
	if which == Largest {
		start = m - k
	}
	out := LanczosResult{Values: make([]float64, k), Residuals: make([]float64, k), Iterations: m}
	for i := 0; i < k; i++ {
		out.Values[i] = vals[start+i]
		out.Residuals[i] = math.Abs(beta * vecs.At(m-1, start+i))
	}

	return out, nil
}

func converged(r LanczosResult, tol float64) bool {
	for i, v := range r.Values {
		if r.Residuals[i] > tol*math.Max(1, math.Abs(v)) {
			return false
		}
	}

	return true
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func norm(a []float64) float64 { return math.Sqrt(dot(a, a)) }

func axpy(y []float64, alpha float64, x []float64) {
	for i := range y {
		y[i] += alpha * x[i]
	}
}

func scaleTo(a []float64, s float64) {
	for i := range a {
		a[i] *= s
	}
}
