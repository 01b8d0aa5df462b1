// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/spinlab/spin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTransitionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transitions",
		Short: "List allowed EPR transitions",
		Long: `Diagonalizes the configured system and lists level pairs whose electron Sx
matrix element |⟨i|Sx|j⟩|² reaches --min-intensity, sorted by frequency.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := spinSystem(cmd)
			if err != nil {
				return err
			}
			minIntensity := cfg.Transitions.MinIntensity
			if cmd.Flags().Changed("min-intensity") {
				minIntensity, _ = cmd.Flags().GetFloat64("min-intensity")
				if err := finiteFlag("min-intensity", minIntensity); err != nil {
					return err
				}
			}

			spec, err := spin.Diagonalize(sys, solverOptions()...)
			if err != nil {
				return fmt.Errorf("diagonalize: %w", err)
			}
			lines, err := spin.Transitions(spec, nil, minIntensity)
			if err != nil {
				return fmt.Errorf("transitions: %w", err)
			}
			logger.Info("transitions found", zap.Int("count", len(lines)), zap.Float64("min_intensity", minIntensity))

			out := cmd.OutOrStdout()
			if jsonOutput(cmd) {
				return writeJSON(out, lines)
			}
			if len(lines) == 0 {
				fmt.Fprintln(out, "no transitions above threshold")
				return nil
			}
			fmt.Fprintf(out, "%-22s %-22s %14s %10s\n", "from", "to", "MHz", "intensity")
			for _, l := range lines {
				fmt.Fprintf(out, "%-22s %-22s %14.4f %10.4f\n",
					fmt.Sprintf("%d %s", l.From, spec.DominantLabel(l.From)),
					fmt.Sprintf("%d %s", l.To, spec.DominantLabel(l.To)),
					l.Frequency, l.Intensity)
			}

			return nil
		},
	}
	addFieldFlag(cmd)
	cmd.Flags().Float64("min-intensity", 0, "Intensity threshold (default from config)")

	return cmd
}
