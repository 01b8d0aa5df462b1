// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spinlab/matrix"
)

// TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()

	if o.Epsilon() != matrix.DefaultEpsilon {
		t.Fatalf("eps default mismatch: got %v, want %v", o.Epsilon(), matrix.DefaultEpsilon)
	}
	if got, want := o.MaxIter(4), matrix.DefaultMaxSweeps*16; got != want {
		t.Fatalf("maxIter default mismatch: got %d, want %d", got, want)
	}
}

// TestOptions_LastWriterWins checks that later setters override earlier ones.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(
		matrix.WithEpsilon(1e-3),
		matrix.WithMaxSweeps(5),
		matrix.WithEpsilon(1e-6),
		matrix.WithMaxSweeps(2),
	)
	if o.Epsilon() != 1e-6 {
		t.Fatalf("eps: got %v, want 1e-6", o.Epsilon())
	}
	if o.MaxIter(3) != 18 {
		t.Fatalf("maxIter: got %d, want 18", o.MaxIter(3))
	}
}

// TestOptions_PanicsOnNonsense asserts that invalid constructor arguments panic.
func TestOptions_PanicsOnNonsense(t *testing.T) {
	cases := map[string]func(){
		"eps NaN":      func() { matrix.WithEpsilon(math.NaN()) },
		"eps negative": func() { matrix.WithEpsilon(-1) },
		"eps +Inf":     func() { matrix.WithEpsilon(math.Inf(1)) },
		"sweeps zero":  func() { matrix.WithMaxSweeps(0) },
	}
	for name, fn := range cases {
		fn := fn
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			fn()
		})
	}
}

// TestEigenSym_BudgetFromOptions: a single sweep budget is too small for a dense 6×6.
func TestEigenSym_BudgetFromOptions(t *testing.T) {
	A := RandSymmetric(t, 6, 7)
	if _, _, err := matrix.EigenSym(A, matrix.WithMaxSweeps(1), matrix.WithEpsilon(0)); err == nil {
		// With eps=0 convergence needs exact zeros; 36 rotations cannot achieve that.
		t.Fatalf("expected ErrMatrixEigenFailed with tiny budget")
	}
	if _, _, err := matrix.EigenSym(A); err != nil {
		t.Fatalf("default budget: unexpected error %v", err)
	}
}
