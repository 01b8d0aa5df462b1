// SPDX-License-Identifier: MIT

package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiverging_EndpointsAndLightness(t *testing.T) {
	assert.Equal(t, NeutralColor, diverging(0))
	assert.Equal(t, PositiveColor, diverging(1))
	assert.Equal(t, NegativeColor, diverging(-1))
	assert.Equal(t, PositiveColor, diverging(3), "|t| is clamped to 1")

	// Lab blending darkens both ramps steadily away from the neutral midpoint.
	for _, sign := range []float64{1, -1} {
		prev := 101.0
		for _, f := range []float64{0, 0.25, 0.5, 0.75, 1} {
			c, err := colorful.Hex(string(diverging(sign * f)))
			require.NoError(t, err)
			l, _, _ := c.Lab()
			assert.Less(t, l, prev, "t=%g", sign*f)
			prev = l
		}
	}
}

func TestDiverging_NonHexPalette(t *testing.T) {
	saved := PositiveColor
	t.Cleanup(func() { PositiveColor = saved })

	PositiveColor = lipgloss.Color("9")
	assert.Equal(t, lipgloss.Color("9"), diverging(0.5))
}
