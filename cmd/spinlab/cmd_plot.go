// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/spinlab/matrix"
	"github.com/katalvlaran/spinlab/render"
	"github.com/katalvlaran/spinlab/sparse"
	"github.com/katalvlaran/spinlab/spin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// patternTol drops round-off when a Hamiltonian is turned into a sparsity pattern (MHz).
const patternTol = 1e-9

func addPlotFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", "hamiltonian", "Matrix to draw: hamiltonian or laplacian")
	cmd.Flags().Int("n", 32, "Laplacian size")
	cmd.Flags().Int("max-cells", render.DefaultMaxCells, "Downsample beyond this many rows/columns")
}

// plotOptions builds render options bound to the command's output, so the
// colour profile follows the real destination.
func plotOptions(cmd *cobra.Command, title string) []render.Option {
	maxCells, _ := cmd.Flags().GetInt("max-cells")
	if maxCells < 1 {
		maxCells = render.DefaultMaxCells
	}

	return []render.Option{
		render.WithTitle(title),
		render.WithMaxCells(maxCells),
		render.WithRenderer(lipgloss.NewRenderer(cmd.OutOrStdout())),
	}
}

func newHeatmapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Draw the Hamiltonian or the Laplacian as a terminal heatmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			part, _ := cmd.Flags().GetString("part")
			width, _ := cmd.Flags().GetInt("cell-width")
			if width < 1 {
				return fmt.Errorf("--cell-width must be at least 1, got %d", width)
			}

			var (
				m     matrix.Matrix
				title string
			)
			switch source {
			case "hamiltonian":
				sys, err := spinSystem(cmd)
				if err != nil {
					return err
				}
				h, err := spin.Build(sys)
				if err != nil {
					return err
				}
				switch part {
				case "real":
					m = h.Real()
				case "imag":
					m = h.Imag()
				default:
					return fmt.Errorf("--part must be real or imag, got %q", part)
				}
				title = fmt.Sprintf("%s H (MHz), %d×%d", part, h.Rows(), h.Cols())
			case "laplacian":
				n, _ := cmd.Flags().GetInt("n")
				l, _, err := laplacian(n)
				if err != nil {
					return err
				}
				if m, err = l.ToDense(); err != nil {
					return err
				}
				title = fmt.Sprintf("1-D Laplacian, n=%d", n)
			default:
				return fmt.Errorf("--source must be hamiltonian or laplacian, got %q", source)
			}

			logger.Debug("rendering heatmap", zap.String("source", source), zap.Int("rows", m.Rows()))
			out, err := render.Heatmap(m, append(plotOptions(cmd, title), render.WithCellWidth(width))...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
	addFieldFlag(cmd)
	addPlotFlags(cmd)
	cmd.Flags().String("part", "real", "Hamiltonian part: real or imag")
	cmd.Flags().Int("cell-width", render.DefaultCellWidth, "Columns per cell")

	return cmd
}

func newSpyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spy",
		Short: "Draw the sparsity pattern of the Hamiltonian or the Laplacian",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")

			var (
				pattern *sparse.CSR
				title   string
			)
			switch source {
			case "hamiltonian":
				sys, err := spinSystem(cmd)
				if err != nil {
					return err
				}
				h, err := spin.Build(sys)
				if err != nil {
					return err
				}
				if pattern, err = hamiltonianPattern(h, patternTol); err != nil {
					return err
				}
				title = fmt.Sprintf("Hamiltonian, %d×%d", h.Rows(), h.Cols())
			case "laplacian":
				n, _ := cmd.Flags().GetInt("n")
				var err error
				if pattern, _, err = laplacian(n); err != nil {
					return err
				}
				title = fmt.Sprintf("1-D Laplacian, n=%d", n)
			default:
				return fmt.Errorf("--source must be hamiltonian or laplacian, got %q", source)
			}

			logger.Debug("rendering spy", zap.String("source", source), zap.Int("nnz", pattern.NNZ()))
			out, err := render.Spy(pattern, plotOptions(cmd, title)...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
	addFieldFlag(cmd)
	addPlotFlags(cmd)

	return cmd
}
