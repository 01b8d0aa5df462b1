// SPDX-License-Identifier: MIT

package spin

import (
	"context"
	"math"
)

// SweepPoint is the spectrum at one field magnitude.
type SweepPoint struct {
	Field    float64   `json:"field_t"`
	Energies []float64 `json:"energies_mhz"`
}

// Sweep diagonalizes sys at every field magnitude in fields (tesla), keeping
// the direction of sys.Field (ẑ when it is zero). The result is the data of a
// Breit–Rabi diagram.
//
// Cancellation is checked between field points; on cancellation the points
// computed so far are returned together with ctx.Err().
func Sweep(ctx context.Context, sys System, fields []float64, opts ...Option) ([]SweepPoint, error) {
	dir := sys.Field.Unit()
	out := make([]SweepPoint, 0, len(fields))
	for _, b := range fields {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if !finite(b) {
			return out, spinErrorf("Sweep", ErrInvalidSystem)
		}
		spec, err := Diagonalize(sys.WithField(dir.Scaled(b)), opts...)
		if err != nil {
			return out, spinErrorf("Sweep", err)
		}
		out = append(out, SweepPoint{Field: b, Energies: spec.Energies})
	}

	return out, nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive (n ≥ 2),
// or []float64{lo} for n == 1.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi

	return out
}

// BreitRabi returns the four hyperfine levels (MHz, ascending) of an
// S = I = 1/2 system with isotropic coupling a in a field of b tesla along z.
//
// With ωe = ge·μB·B/h and ωn = gn·μN·B/h:
//
//	E(+1/2,+1/2) = ( ωe − ωn)/2 + a/4
//	E(−1/2,−1/2) = (−ωe + ωn)/2 + a/4
//	E±           = −a/4 ± √(((ωe + ωn)/2)² + a²/4)
func BreitRabi(a, ge, gn, b float64) [4]float64 {
	we := ge * BohrMHzPerTesla * b
	wn := gn * NuclearMHzPerTesla * b
	root := math.Hypot((we+wn)/2, a/2)

	levels := [4]float64{
		(we-wn)/2 + a/4,
		(-we+wn)/2 + a/4,
		-a/4 + root,
		-a/4 - root,
	}
	// insertion sort on four entries
	for i := 1; i < len(levels); i++ {
		for j := i; j > 0 && levels[j] < levels[j-1]; j-- {
			levels[j], levels[j-1] = levels[j-1], levels[j]
		}
	}

	return levels
}
