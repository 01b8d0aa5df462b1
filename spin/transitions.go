// SPDX-License-Identifier: MIT

package spin

import (
	"math"
	"sort"

	"github.com/katalvlaran/spinlab/cmatrix"
)

// intensityFloor hides round-off residue of symmetry-forbidden lines.
const intensityFloor = 1e-12

// Transition is one line between levels From < To.
type Transition struct {
	From      int     `json:"from"`
	To        int     `json:"to"`
	Frequency float64 `json:"frequency_mhz"`
	Intensity float64 `json:"intensity"`
}

// ElectronProbe returns the electron Sx embedded in the spectrum's product
// space, the usual perpendicular-mode EPR excitation operator.
func ElectronProbe(spec *Spectrum) (*cmatrix.Dense, error) {
	if spec == nil || len(spec.Dims) == 0 {
		return nil, spinErrorf("ElectronProbe", ErrInvalidSystem)
	}
	ops, err := NewOperators(TwoS(spec.Dims[0] - 1))
	if err != nil {
		return nil, spinErrorf("ElectronProbe", err)
	}

	return Embed(ops.X, 0, spec.Dims)
}

// Transitions lists every pair of levels with intensity |⟨i|probe|j⟩|² ≥ minIntensity,
// sorted by frequency |E_j − E_i| (ties by From, then To). A nil probe selects
// ElectronProbe. Pairs below intensityFloor are never reported. A NaN
// minIntensity is rejected with ErrInvalidSystem.
func Transitions(spec *Spectrum, probe *cmatrix.Dense, minIntensity float64) ([]Transition, error) {
	if spec == nil || spec.Vectors == nil || len(spec.Dims) == 0 || math.IsNaN(minIntensity) {
		return nil, spinErrorf("Transitions", ErrInvalidSystem)
	}
	var err error
	if probe == nil {
		if probe, err = ElectronProbe(spec); err != nil {
			return nil, spinErrorf("Transitions", err)
		}
	}

	pv, err := cmatrix.Mul(probe, spec.Vectors)
	if err != nil {
		return nil, spinErrorf("Transitions", err)
	}
	vh, err := cmatrix.Adjoint(spec.Vectors)
	if err != nil {
		return nil, spinErrorf("Transitions", err)
	}
	m, err := cmatrix.Mul(vh, pv)
	if err != nil {
		return nil, spinErrorf("Transitions", err)
	}

	weights, err := cmatrix.AbsSquared(m)
	if err != nil {
		return nil, spinErrorf("Transitions", err)
	}

	var out []Transition
	n := spec.Len()
	ws := weights.RawData()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := ws[i*n+j]
			if w < intensityFloor || w < minIntensity {
				continue
			}
			out = append(out, Transition{
				From:      i,
				To:        j,
				Frequency: spec.Energies[j] - spec.Energies[i],
				Intensity: w,
			})
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Frequency != out[b].Frequency {
			return out[a].Frequency < out[b].Frequency
		}
		if out[a].From != out[b].From {
			return out[a].From < out[b].From
		}

		return out[a].To < out[b].To
	})

	return out, nil
}
