// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/spinlab/spin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// levelJSON is one eigenstate in --json output.
type levelJSON struct {
	Index    int     `json:"index"`
	Energy   float64 `json:"energy_mhz"`
	Dominant string  `json:"dominant"`
	Weight   float64 `json:"weight"`
}

func newLevelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "levels",
		Aliases: []string{"hamiltonian"},
		Short:   "Diagonalize the spin Hamiltonian and list energy levels",
		Long: `Builds H = ge·μB·B·S − Σ gn·μN·B·I + Σ S·A·I for the configured system
(energies in MHz) and prints every level with its dominant product state.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := spinSystem(cmd)
			if err != nil {
				return err
			}
			showMatrix, _ := cmd.Flags().GetBool("matrix")

			logger.Debug("diagonalizing",
				zap.Int("dimension", sys.Dimension()),
				zap.Float64s("field_t", sys.Field[:]))
			spec, err := spin.Diagonalize(sys, solverOptions()...)
			if err != nil {
				return fmt.Errorf("diagonalize: %w", err)
			}
			logger.Info("levels computed", zap.Int("levels", spec.Len()))

			out := cmd.OutOrStdout()
			if jsonOutput(cmd) {
				levels := make([]levelJSON, spec.Len())
				for i := range levels {
					w, err := spec.Weight(i, spec.Dominant[i])
					if err != nil {
						return err
					}
					levels[i] = levelJSON{Index: i, Energy: spec.Energies[i], Dominant: spec.DominantLabel(i), Weight: w}
				}

				return writeJSON(out, map[string]any{
					"dimension": sys.Dimension(),
					"field_t":   sys.Field,
					"basis":     spec.Basis,
					"levels":    levels,
				})
			}

			if showMatrix {
				h, err := spin.Build(sys)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "H (MHz), basis %v\n%s\n", spec.Basis, h)
			}
			fmt.Fprintf(out, "dimension %d, field (%g, %g, %g) T\n", sys.Dimension(), sys.Field[0], sys.Field[1], sys.Field[2])
			fmt.Fprint(out, spec)

			return nil
		},
	}
	addFieldFlag(cmd)
	cmd.Flags().Bool("matrix", false, "Also print the Hamiltonian matrix")

	return cmd
}
