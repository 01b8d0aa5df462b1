// SPDX-License-Identifier: MIT

package spin_test

import (
	"testing"

	"github.com/katalvlaran/spinlab/cmatrix"
	"github.com/katalvlaran/spinlab/spin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mul(t *testing.T, a, b *cmatrix.Dense) *cmatrix.Dense {
	t.Helper()
	out, err := cmatrix.Mul(a, b)
	require.NoError(t, err)

	return out
}

func requireClose(t *testing.T, want, got *cmatrix.Dense) {
	t.Helper()
	ok, err := cmatrix.AllClose(got, want, 0, 1e-12)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%vgot\n%v", want, got)
}

// TestOperators_Algebra checks [Sx,Sy] = iSz and S² = S(S+1)·𝟙 for several spins.
func TestOperators_Algebra(t *testing.T) {
	t.Parallel()

	for _, s := range []spin.TwoS{spin.Half, spin.One, spin.ThreeHalves, spin.Two, spin.FiveHalves} {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			ops, err := spin.NewOperators(s)
			require.NoError(t, err)
			require.Equal(t, s.Dim(), ops.Z.Rows())

			for _, op := range ops.Components() {
				require.True(t, cmatrix.IsHermitian(op, 0))
			}

			comm, err := cmatrix.Sub(mul(t, ops.X, ops.Y), mul(t, ops.Y, ops.X))
			require.NoError(t, err)
			iz, err := cmatrix.Scale(ops.Z, 1i)
			require.NoError(t, err)
			requireClose(t, iz, comm)

			s2 := mul(t, ops.X, ops.X)
			for _, op := range []*cmatrix.Dense{ops.Y, ops.Z} {
				s2, err = cmatrix.Add(s2, mul(t, op, op))
				require.NoError(t, err)
			}
			want, err := cmatrix.Scale(ops.Identity, complex(s.Float()*(s.Float()+1), 0))
			require.NoError(t, err)
			requireClose(t, want, s2)

			// S− = (S+)ᴴ
			adj, err := cmatrix.Adjoint(ops.Plus)
			require.NoError(t, err)
			requireClose(t, ops.Minus, adj)
		})
	}
}

func TestOperators_SpinHalfMatrices(t *testing.T) {
	t.Parallel()

	ops, err := spin.NewOperators(spin.Half)
	require.NoError(t, err)

	y01, err := ops.Y.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, complex(0, -0.5), y01)
	z11, err := ops.Z.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, complex(-0.5, 0), z11)
	p01, err := ops.Plus.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), p01)

	_, err = spin.NewOperators(0)
	require.ErrorIs(t, err, spin.ErrInvalidSpin)
}

func TestTwoS_Formatting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1/2", spin.Half.String())
	assert.Equal(t, "1", spin.One.String())
	assert.Equal(t, "5/2", spin.FiveHalves.String())
	assert.Equal(t, 4, spin.ThreeHalves.Dim())

	assert.Equal(t, "+1/2", spin.FormatTwoM(1))
	assert.Equal(t, "-3/2", spin.FormatTwoM(-3))
	assert.Equal(t, "-1", spin.FormatTwoM(-2))
	assert.Equal(t, "0", spin.FormatTwoM(0))
}

func TestParseTwoS(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]spin.TwoS{"1/2": spin.Half, " 3/2 ": spin.ThreeHalves, "1": spin.One, "2": spin.Two} {
		got, err := spin.ParseTwoS(in)
		require.NoErrorf(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}
	for _, in := range []string{"", "0", "-1/2", "2/2", "x", "1/3"} {
		_, err := spin.ParseTwoS(in)
		require.ErrorIsf(t, err, spin.ErrInvalidSpin, "input %q", in)
	}
}

func TestEmbed(t *testing.T) {
	t.Parallel()

	ops, err := spin.NewOperators(spin.Half)
	require.NoError(t, err)

	e, err := spin.Embed(ops.Z, 1, []int{3, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, 12, e.Rows())
	// basis index 0 = (0,0,0): nucleus-1 m=+1/2
	v, err := e.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(0.5, 0), v)
	// index 2 = (0,1,0): nucleus-1 m=-1/2
	v, err = e.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, complex(-0.5, 0), v)

	_, err = spin.Embed(ops.Z, 3, []int{2, 2})
	require.ErrorIs(t, err, spin.ErrSiteOutOfRange)
	_, err = spin.Embed(ops.Z, 0, []int{3, 2})
	require.ErrorIs(t, err, spin.ErrInvalidSystem)
}

func TestLookupIsotope(t *testing.T) {
	t.Parallel()

	n, ok := spin.LookupIsotope("14n")
	require.True(t, ok)
	assert.Equal(t, spin.One, n.TwoI)

	_, ok = spin.LookupIsotope("99X")
	assert.False(t, ok)
	assert.Len(t, spin.Isotopes(), 6)
}
