// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spinlab/cmatrix"
	"github.com/stretchr/testify/require"
)

// mustFrom builds an r×c complex matrix from row-major values or fails the test.
func mustFrom(t testing.TB, r, c int, vals []complex128) *cmatrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c)
	d, err := cmatrix.New(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, d.Set(i, j, vals[i*c+j]))
		}
	}

	return d
}

func mustAt(t testing.TB, d *cmatrix.Dense, i, j int) complex128 {
	t.Helper()
	v, err := d.At(i, j)
	require.NoError(t, err)

	return v
}

// randHermitian returns a reproducible n×n Hermitian matrix with entries in [-1,1].
func randHermitian(t testing.TB, n int, seed int64) *cmatrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d, err := cmatrix.New(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, d.Set(i, i, complex(2*rng.Float64()-1, 0)))
		for j := i + 1; j < n; j++ {
			z := complex(2*rng.Float64()-1, 2*rng.Float64()-1)
			require.NoError(t, d.Set(i, j, z))
			require.NoError(t, d.Set(j, i, complex(real(z), -imag(z))))
		}
	}

	return d
}

// requireClose asserts elementwise closeness of two complex matrices.
func requireClose(t testing.TB, want, got *cmatrix.Dense, atol float64) {
	t.Helper()
	ok, err := cmatrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant\n%vgot\n%v", want, got)
}

var (
	pauliX = []complex128{0, 1, 1, 0}
	pauliY = []complex128{0, -1i, 1i, 0}
	pauliZ = []complex128{1, 0, 0, -1}
)
