// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spinlab/matrix"
	"github.com/katalvlaran/spinlab/sparse"
	"github.com/stretchr/testify/require"
)

// randSparse returns a reproducible r×c dense matrix with roughly density·r·c
// non-zeros, together with its CSR compression.
func randSparse(t testing.TB, r, c int, density float64, seed int64) (*matrix.Dense, *sparse.CSR) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() < density {
				require.NoError(t, d.Set(i, j, 2*rng.Float64()-1))
			}
		}
	}
	s, err := sparse.FromDense(d, 0)
	require.NoError(t, err)

	return d, s
}

func requireDenseClose(t testing.TB, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%vgot\n%v", want, got)
}

func toDense(t testing.TB, s *sparse.CSR) *matrix.Dense {
	t.Helper()
	d, err := s.ToDense()
	require.NoError(t, err)

	return d
}
