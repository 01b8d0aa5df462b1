// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/spinlab/matrix"
)

// legendSteps is the number of swatches in the colorbar.
const legendSteps = 9

// Heatmap renders m as a grid of coloured cells on a symmetric diverging scale
// [−v, +v], v = max|m[i,j]|, followed by a colorbar legend labelled −v, 0, +v
// and the actual data range. Inputs larger than the cell cap are downsampled:
// every block shows its largest-magnitude entry.
func Heatmap(m matrix.Matrix, opts ...Option) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", fmt.Errorf("Heatmap: %w", ErrEmpty)
	}
	o := gather(opts)

	rb, cb := blocks(m.Rows(), o.maxCells), blocks(m.Cols(), o.maxCells)
	grid := make([][]float64, len(rb)-1)
	lo, hi, vmax := math.Inf(1), math.Inf(-1), 0.0
	for bi := range grid {
		grid[bi] = make([]float64, len(cb)-1)
		for bj := range grid[bi] {
			var pick float64
			for i := rb[bi]; i < rb[bi+1]; i++ {
				for j := cb[bj]; j < cb[bj+1]; j++ {
					v, err := m.At(i, j)
					if err != nil {
						return "", fmt.Errorf("Heatmap: %w", err)
					}
					lo, hi = math.Min(lo, v), math.Max(hi, v)
					if math.Abs(v) > math.Abs(pick) {
						pick = v
					}
				}
			}
			grid[bi][bj] = pick
			vmax = math.Max(vmax, math.Abs(pick))
		}
	}

	var b strings.Builder
	if o.title != "" {
		b.WriteString(o.renderer.NewStyle().Bold(true).Render(o.title))
		b.WriteString("\n")
	}
	for _, row := range grid {
		for _, v := range row {
			b.WriteString(cell(o, v, vmax))
		}
		b.WriteString("\n")
	}
	b.WriteString(legend(o, vmax))
	fmt.Fprintf(&b, "range [%s, %s]  %d×%d", fmtValue(lo), fmtValue(hi), m.Rows(), m.Cols())
	if len(rb)-1 != m.Rows() || len(cb)-1 != m.Cols() {
		fmt.Fprintf(&b, " shown as %d×%d", len(rb)-1, len(cb)-1)
	}
	b.WriteString("\n")

	return b.String(), nil
}

// cell renders one value: glyph density by |v|/vmax, colour by sign.
func cell(o options, v, vmax float64) string {
	t := 0.0
	if vmax > 0 {
		t = v / vmax
	}
	level := int(math.Round(math.Abs(t) * float64(len(shades)-1)))
	if level == 0 && v != 0 {
		level = 1
	}
	glyph := strings.Repeat(shades[level], o.cellWidth)

	return o.renderer.NewStyle().Foreground(diverging(t)).Render(glyph)
}

// legend draws −vmax … +vmax swatches with the three labels underneath.
func legend(o options, vmax float64) string {
	var bar strings.Builder
	for k := 0; k < legendSteps; k++ {
		t := -1 + 2*float64(k)/float64(legendSteps-1)
		bar.WriteString(cell(o, t*vmax, vmax))
	}
	width := legendSteps * o.cellWidth
	left, right := fmtValue(0-vmax), fmtValue(vmax) // 0-vmax avoids printing "-0"
	pad := width - len(left) - len(right) - 1
	if pad < 2 {
		pad = 2
	}
	labels := left + strings.Repeat(" ", pad/2) + "0" + strings.Repeat(" ", pad-pad/2) + right
	muted := o.renderer.NewStyle().Foreground(MutedColor)

	return bar.String() + "\n" + muted.Render(labels) + "\n"
}

// diverging blends NeutralColor toward PositiveColor (t > 0) or NegativeColor
// (t < 0) by |t| ∈ [0, 1] in CIE L*a*b*, so equal steps look equally far apart.
// A palette entry that is not a hex colour is used as is.
func diverging(t float64) lipgloss.Color {
	end := PositiveColor
	if t < 0 {
		end = NegativeColor
	}
	from, err := colorful.Hex(string(NeutralColor))
	if err != nil {
		return end
	}
	to, err := colorful.Hex(string(end))
	if err != nil {
		return end
	}

	return lipgloss.Color(from.BlendLab(to, math.Min(1, math.Abs(t))).Clamped().Hex())
}

func fmtValue(v float64) string { return strconv.FormatFloat(v, 'g', 4, 64) }
