// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/spinlab/sparse"
)

const (
	spyFilled = "█"
	spyEmpty  = "·"
)

// Spy renders the sparsity pattern of m inside a rounded border. A cell is
// filled when its block holds at least one stored entry; blocks appear once
// the matrix exceeds the cell cap on either axis. The footer reports nnz and density.
func Spy(m *sparse.CSR, opts ...Option) (string, error) {
	if m == nil {
		return "", fmt.Errorf("Spy: %w", ErrEmpty)
	}
	o := gather(opts)

	rb, cb := blocks(m.Rows(), o.maxCells), blocks(m.Cols(), o.maxCells)
	rowOf := blockIndex(rb, m.Rows())
	colOf := blockIndex(cb, m.Cols())
	filled := make([][]bool, len(rb)-1)
	for i := range filled {
		filled[i] = make([]bool, len(cb)-1)
	}
	m.Do(func(i, j int, _ float64) { filled[rowOf[i]][colOf[j]] = true })

	on := o.renderer.NewStyle().Foreground(PositiveColor)
	off := o.renderer.NewStyle().Foreground(MutedColor)
	var grid strings.Builder
	for i, row := range filled {
		for _, f := range row {
			if f {
				grid.WriteString(on.Render(spyFilled))
			} else {
				grid.WriteString(off.Render(spyEmpty))
			}
		}
		if i+1 < len(filled) {
			grid.WriteString("\n")
		}
	}

	box := o.renderer.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(MutedColor)
	var b strings.Builder
	if o.title != "" {
		b.WriteString(o.renderer.NewStyle().Bold(true).Render(o.title))
		b.WriteString("\n")
	}
	b.WriteString(box.Render(grid.String()))
	fmt.Fprintf(&b, "\n%d×%d  nnz=%d  density=%.4f\n", m.Rows(), m.Cols(), m.NNZ(), m.Density())

	return b.String(), nil
}

// blockIndex maps every index in [0, n) to its block number.
func blockIndex(bounds []int, n int) []int {
	out := make([]int, n)
	for k := 0; k+1 < len(bounds); k++ {
		for i := bounds[k]; i < bounds[k+1]; i++ {
			out[i] = k
		}
	}

	return out
}
