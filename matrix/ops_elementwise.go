// SPDX-License-Identifier: MIT

// Package matrix - element-wise comparison kernel backing the public AllClose facade.

package matrix

import "math"

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Time: O(r*c). Space: O(1). Deterministic; exits on the first violation.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	within := func(x, y float64) bool { return math.Abs(x-y) <= atol+rtol*math.Abs(y) }

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !within(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, atErr("AllClose", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, atErr("AllClose", i, j, err)
			}
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
