// SPDX-License-Identifier: MIT

package spin

import "strings"

// Physical constants in frequency units (CODATA 2018).
const (
	// BohrMHzPerTesla is μB/h.
	BohrMHzPerTesla = 13996.24493
	// NuclearMHzPerTesla is μN/h.
	NuclearMHzPerTesla = 7.6225932291
	// GFreeElectron is the free-electron g-factor (magnitude).
	GFreeElectron = 2.00231930436256
	// GProton is the proton g-factor.
	GProton = 5.5856946893
	// HydrogenHyperfineMHz is the ground-state hyperfine splitting of atomic hydrogen.
	HydrogenHyperfineMHz = 1420.405751768
)

// Isotope describes a magnetic nucleus.
type Isotope struct {
	Label string
	TwoI  TwoS
	GN    float64
}

var isotopes = []Isotope{
	{Label: "1H", TwoI: Half, GN: GProton},
	{Label: "2H", TwoI: One, GN: 0.8574382338},
	{Label: "13C", TwoI: Half, GN: 1.4048236},
	{Label: "14N", TwoI: One, GN: 0.4037610},
	{Label: "15N", TwoI: Half, GN: -0.5663777},
	{Label: "31P", TwoI: Half, GN: 2.2632},
}

// LookupIsotope finds an isotope by label ("1H", "14N", ...). Matching ignores case.
func LookupIsotope(label string) (Isotope, bool) {
	for _, iso := range isotopes {
		if strings.EqualFold(iso.Label, label) {
			return iso, true
		}
	}

	return Isotope{}, false
}

// Isotopes returns a copy of the built-in isotope table.
func Isotopes() []Isotope {
	return append([]Isotope(nil), isotopes...)
}
